// Package gemini implements outreach-text generation using Google
// Gemini, with a deterministic templated fallback when no credential is
// configured or the upstream call fails.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kaptinlin/jsonrepair"
	"github.com/mstanek/scout"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// Ensure Pitcher implements scout.Pitcher at compile time.
var _ scout.Pitcher = (*Pitcher)(nil)

// Pitcher implements scout.Pitcher using Google Gemini. A nil client is
// valid and always produces the fallback pitch, so callers without an
// API key get deterministic output instead of an error.
type Pitcher struct {
	client *genai.Client
}

// NewPitcher creates a new Pitcher. client may be nil.
func NewPitcher(client *genai.Client) *Pitcher {
	return &Pitcher{client: client}
}

// Pitch generates an outreach opener for the channel profile. Upstream
// failures degrade to FallbackPitch and are never returned to the
// caller; the only error is a canceled context.
func (p *Pitcher) Pitch(ctx context.Context, profile scout.ChannelProfile) (*scout.Pitch, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if p.client == nil {
		return FallbackPitch(profile), nil
	}

	result, err := p.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: BuildUserPrompt(profile)}},
		}},
		BuildConfig(),
	)
	if err != nil || result == nil {
		return FallbackPitch(profile), nil
	}

	pitch, ok := parsePitch(result.Text())
	if !ok {
		return FallbackPitch(profile), nil
	}
	return pitch, nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.7)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You write short, specific, friendly cold-outreach openers to content creators. " +
					"Reference something concrete from their channel. Never sound like a mass email. " +
					`Respond with JSON: {"subjectLine": "...", "firstLine": "..."}.`,
			}},
		},
		Temperature:      &temp,
		ResponseMIMEType: "application/json",
	}
}

// BuildUserPrompt builds the user prompt containing the channel context.
func BuildUserPrompt(profile scout.ChannelProfile) string {
	var sb strings.Builder
	sb.WriteString("<channel>\n")
	fmt.Fprintf(&sb, "<name>%s</name>\n", profile.ChannelName)
	if profile.OwnerName != "" {
		fmt.Fprintf(&sb, "<owner>%s</owner>\n", profile.OwnerName)
	}
	fmt.Fprintf(&sb, "<description>%s</description>\n", profile.Description)
	sb.WriteString("<recentVideos>\n")
	for i, video := range profile.RecentVideos {
		sb.WriteString("<video>\n")
		fmt.Fprintf(&sb, "<index>%d</index>\n", i+1)
		fmt.Fprintf(&sb, "<title>%s</title>\n", video.Title)
		fmt.Fprintf(&sb, "<description>%s</description>\n", video.Description)
		sb.WriteString("</video>\n")
	}
	sb.WriteString("</recentVideos>\n")
	sb.WriteString("</channel>\n\n")
	sb.WriteString("Write the subject line and first line of an outreach email to this creator.")
	return sb.String()
}

// FallbackPitch builds the deterministic templated pitch from the first
// recent-video title and the owner's first name.
func FallbackPitch(profile scout.ChannelProfile) *scout.Pitch {
	name := firstName(profile.OwnerName)
	if name == "" {
		name = profile.ChannelName
	}

	if len(profile.RecentVideos) > 0 && profile.RecentVideos[0].Title != "" {
		title := profile.RecentVideos[0].Title
		return &scout.Pitch{
			SubjectLine: fmt.Sprintf("Loved your video %q", title),
			FirstLine:   fmt.Sprintf("Hi %s, I just watched %q and had to reach out.", name, title),
		}
	}

	return &scout.Pitch{
		SubjectLine: fmt.Sprintf("Big fan of %s", profile.ChannelName),
		FirstLine:   fmt.Sprintf("Hi %s, I've been following your channel and had to reach out.", name),
	}
}

// parsePitch decodes the model's JSON response, repairing near-JSON
// output when possible.
func parsePitch(text string) (*scout.Pitch, bool) {
	var pitch scout.Pitch
	if err := json.Unmarshal([]byte(text), &pitch); err != nil {
		repaired, repairErr := jsonrepair.JSONRepair(text)
		if repairErr != nil {
			return nil, false
		}
		if err := json.Unmarshal([]byte(repaired), &pitch); err != nil {
			return nil, false
		}
	}
	if pitch.SubjectLine == "" || pitch.FirstLine == "" {
		return nil, false
	}
	return &pitch, true
}

// firstName returns the first whitespace-separated token of a full name.
func firstName(full string) string {
	fields := strings.Fields(full)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
