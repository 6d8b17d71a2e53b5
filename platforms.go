package scout

import "strings"

// Platform identifies a known social or creator-monetization platform.
type Platform string

// Recognized platforms.
const (
	PlatformInstagram    Platform = "instagram"
	PlatformTwitter      Platform = "twitter"
	PlatformFacebook     Platform = "facebook"
	PlatformTikTok       Platform = "tiktok"
	PlatformLinkedIn     Platform = "linkedin"
	PlatformPatreon      Platform = "patreon"
	PlatformKofi         Platform = "kofi"
	PlatformBuyMeACoffee Platform = "buymeacoffee"
	PlatformDiscord      Platform = "discord"
	PlatformTwitch       Platform = "twitch"
	PlatformReddit       Platform = "reddit"
	PlatformPinterest    Platform = "pinterest"
	PlatformSnapchat     Platform = "snapchat"
	PlatformThreads      Platform = "threads"
	PlatformOnlyFans     Platform = "onlyfans"
	PlatformSubstack     Platform = "substack"
	PlatformMedium       Platform = "medium"
	PlatformGitHub       Platform = "github"
	PlatformTelegram     Platform = "telegram"
	PlatformLinktree     Platform = "linktree"
	PlatformBluesky      Platform = "bluesky"
)

// hostRule maps hostname patterns to a platform. A hostname matches when
// it contains any of Contains or equals any of Exact. Rules are
// evaluated top to bottom; the first match wins.
type hostRule struct {
	Contains []string
	Exact    []string
	Platform Platform
}

// platformRules is the ordered classification table. Adding a platform
// is a table edit, not a logic change.
var platformRules = []hostRule{
	{Contains: []string{"instagram.com"}, Platform: PlatformInstagram},
	{Contains: []string{"twitter.com"}, Exact: []string{"x.com"}, Platform: PlatformTwitter},
	{Contains: []string{"facebook.com"}, Exact: []string{"fb.com"}, Platform: PlatformFacebook},
	{Contains: []string{"tiktok.com"}, Platform: PlatformTikTok},
	{Contains: []string{"linkedin.com"}, Platform: PlatformLinkedIn},
	{Contains: []string{"patreon.com"}, Platform: PlatformPatreon},
	{Contains: []string{"ko-fi.com"}, Platform: PlatformKofi},
	{Contains: []string{"buymeacoffee.com"}, Platform: PlatformBuyMeACoffee},
	{Contains: []string{"discord.gg", "discord.com"}, Platform: PlatformDiscord},
	{Contains: []string{"twitch.tv"}, Platform: PlatformTwitch},
	{Contains: []string{"reddit.com"}, Platform: PlatformReddit},
	{Contains: []string{"pinterest.com"}, Platform: PlatformPinterest},
	{Contains: []string{"snapchat.com"}, Platform: PlatformSnapchat},
	{Contains: []string{"threads.net", "threads.com"}, Platform: PlatformThreads},
	{Contains: []string{"onlyfans.com"}, Platform: PlatformOnlyFans},
	{Contains: []string{"substack.com"}, Platform: PlatformSubstack},
	{Contains: []string{"medium.com"}, Platform: PlatformMedium},
	{Contains: []string{"github.com"}, Platform: PlatformGitHub},
	{Contains: []string{"telegram.me", "telegram.org"}, Exact: []string{"t.me"}, Platform: PlatformTelegram},
	{Exact: []string{"linktr.ee"}, Platform: PlatformLinktree},
	{Exact: []string{"bsky.app"}, Platform: PlatformBluesky},
}

// hostSiteSuffixes lists the source platform's own domains and its
// content-delivery/image hosts. Links to these are self-referential
// noise, not contact channels, and are discarded silently.
var hostSiteSuffixes = []string{
	"youtube.com",
	"youtu.be",
	"ytimg.com",
	"ggpht.com",
	"googleusercontent.com",
	"gstatic.com",
	"google.com",
}

// MatchPlatform tests a hostname against the platform table. The
// hostname must already be case-folded with any leading "www." stripped.
func MatchPlatform(host string) (Platform, bool) {
	for _, rule := range platformRules {
		for _, e := range rule.Exact {
			if host == e {
				return rule.Platform, true
			}
		}
		for _, c := range rule.Contains {
			if strings.Contains(host, c) {
				return rule.Platform, true
			}
		}
	}
	return "", false
}

// IsHostSite reports whether the hostname belongs to the platform that
// hosted the analyzed page or to its CDN/image hosts.
func IsHostSite(host string) bool {
	for _, suffix := range hostSiteSuffixes {
		if host == suffix || strings.HasSuffix(host, "."+suffix) {
			return true
		}
	}
	return false
}

// NormalizeHost case-folds a hostname and strips a leading "www." prefix.
func NormalizeHost(host string) string {
	return strings.TrimPrefix(strings.ToLower(host), "www.")
}
