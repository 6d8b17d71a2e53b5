package scout

import (
	"net/url"
	"regexp"
	"strings"
)

// emailPattern matches local@domain.tld with a 2+ letter top-level label.
var emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)

// businessPhrases are the fixed business-intent phrases searched for in
// the lower-cased page text.
var businessPhrases = []string{
	"business inquiries",
	"business inquiry",
	"business enquiries",
	"for business",
	"business email",
	"collaboration",
	"collaborations",
	"sponsorship",
	"sponsorships",
	"brand deals",
	"work with me",
	"contact me",
	"contact us",
	"get in touch",
	"partnerships",
	"press inquiries",
}

// captionKeywords are searched for in interactive-element captions.
var captionKeywords = []string{"business", "inquiry", "contact"}

// Classify turns a page's text and harvested link list into a
// ClassifiedResult. It is a pure function of its input: no I/O, no
// shared state, safe for concurrent use on independent signals.
//
// Classify never fails. Unparseable URLs degrade to OtherLinks, absent
// text yields zero emails, and a malformed structured-data block is
// skipped. The worst case is an all-empty, well-formed result.
func Classify(sig *PageSignal) *ClassifiedResult {
	res := &ClassifiedResult{
		Emails:     []string{},
		Social:     make(map[Platform]string),
		Websites:   []string{},
		OtherLinks: []string{},
	}
	if sig == nil {
		return res
	}

	res.Emails = extractEmails(sig.Text)

	links := HarvestLinks(sig)
	hasMailto := false
	seenWebsites := make(map[string]bool)
	seenOther := make(map[string]bool)

	for _, raw := range links {
		u, err := url.Parse(raw)
		if err != nil || !u.IsAbs() || u.Hostname() == "" {
			// Not an absolute web URL. mailto: parses but has no
			// host, so it lands here too.
			if err == nil && strings.EqualFold(u.Scheme, "mailto") {
				hasMailto = true
			}
			if !seenOther[raw] {
				seenOther[raw] = true
				res.OtherLinks = append(res.OtherLinks, raw)
			}
			continue
		}

		host := NormalizeHost(u.Hostname())
		if IsHostSite(host) {
			continue
		}

		if platform, ok := MatchPlatform(host); ok {
			// First URL per platform wins; later ones are dropped.
			if _, taken := res.Social[platform]; !taken {
				res.Social[platform] = raw
			}
			continue
		}

		if !seenWebsites[raw] {
			seenWebsites[raw] = true
			res.Websites = append(res.Websites, raw)
		}
	}

	res.HasBusinessInquiry = hasBusinessInquiry(sig, hasMailto, len(res.Emails) > 0)
	res.TotalLinksFound = len(links)
	res.SocialLinksFound = len(res.Social)

	return res
}

// extractEmails finds email addresses in text, lower-cases them, and
// deduplicates preserving first occurrence.
func extractEmails(text string) []string {
	emails := []string{}
	seen := make(map[string]bool)
	for _, match := range emailPattern.FindAllString(text, -1) {
		email := strings.ToLower(match)
		if seen[email] {
			continue
		}
		seen[email] = true
		emails = append(emails, email)
	}
	return emails
}

// hasBusinessInquiry evaluates the business-contactability heuristic.
// Any one condition firing makes the page count as contactable: a
// business-intent phrase in the text, a mailto: link in the inventory,
// a business/inquiry/contact caption, or any extracted email.
func hasBusinessInquiry(sig *PageSignal, hasMailto, hasEmail bool) bool {
	if hasMailto || hasEmail {
		return true
	}

	text := strings.ToLower(sig.Text)
	for _, phrase := range businessPhrases {
		if strings.Contains(text, phrase) {
			return true
		}
	}

	for _, caption := range sig.ButtonCaptions {
		lower := strings.ToLower(caption)
		for _, kw := range captionKeywords {
			if strings.Contains(lower, kw) {
				return true
			}
		}
	}

	return false
}
