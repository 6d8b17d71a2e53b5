package scout

import "context"

// Channel holds the metadata of a creator profile page.
type Channel struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ChannelID   string `json:"channelId"`
}

// FeedURL returns the Atom feed URL for the channel's recent uploads.
// Returns an empty string when the channel ID is unknown.
func (c *Channel) FeedURL() string {
	if c.ChannelID == "" {
		return ""
	}
	return "https://www.youtube.com/feeds/videos.xml?channel_id=" + c.ChannelID
}

// Video is one recent upload, used as outreach context.
type Video struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ChannelProfile is the input to outreach-text generation.
type ChannelProfile struct {
	ChannelName  string  `json:"channelName"`
	Description  string  `json:"description"`
	RecentVideos []Video `json:"recentVideos"`
	OwnerName    string  `json:"ownerName,omitempty"`
}

// Pitch is a generated outreach opener.
type Pitch struct {
	SubjectLine string `json:"subjectLine"`
	FirstLine   string `json:"firstLine"`
}

// ChannelReader extracts channel metadata from rendered HTML.
type ChannelReader interface {
	ReadChannel(html string) (*Channel, error)
}

// FeedService retrieves a channel's recent uploads.
type FeedService interface {
	// RecentVideos fetches and parses the channel's video feed,
	// returning at most limit entries in feed order.
	RecentVideos(ctx context.Context, feedURL string, limit int) ([]Video, error)
}

// Pitcher generates outreach text for a channel profile.
// Implementations must degrade to a deterministic templated fallback
// when no credential is configured or the upstream call fails; upstream
// failure is never propagated to the caller.
type Pitcher interface {
	Pitch(ctx context.Context, profile ChannelProfile) (*Pitch, error)
}
