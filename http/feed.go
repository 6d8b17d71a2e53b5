// Package http implements feed retrieval over HTTP.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/beevik/etree"
	"github.com/mstanek/scout"
)

// Ensure FeedService implements scout.FeedService.
var _ scout.FeedService = (*FeedService)(nil)

// FeedService retrieves a channel's recent uploads from its Atom video
// feed via HTTP.
type FeedService struct {
	client *http.Client
}

// NewFeedService creates a new FeedService with the given HTTP client.
// If client is nil, http.DefaultClient is used.
func NewFeedService(client *http.Client) *FeedService {
	if client == nil {
		client = http.DefaultClient
	}
	return &FeedService{client: client}
}

// RecentVideos fetches the feed and returns at most limit entries in
// feed order. A limit of 0 or less means all entries.
func (s *FeedService) RecentVideos(ctx context.Context, feedURL string, limit int) ([]scout.Video, error) {
	if feedURL == "" {
		return nil, scout.Errorf(scout.EINVALID, "feed URL required")
	}

	body, err := s.fetchURL(ctx, feedURL)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(body); err != nil {
		return nil, fmt.Errorf("parsing feed XML: %w", err)
	}

	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("empty feed XML")
	}

	videos := parseEntries(root)
	if limit > 0 && len(videos) > limit {
		videos = videos[:limit]
	}
	return videos, nil
}

// parseEntries extracts videos from a feed's <entry> elements. The
// description lives in the media:group extension when present.
func parseEntries(root *etree.Element) []scout.Video {
	videos := []scout.Video{}
	for _, entry := range root.SelectElements("entry") {
		var video scout.Video

		if title := entry.SelectElement("title"); title != nil {
			video.Title = strings.TrimSpace(title.Text())
		}
		if group := entry.SelectElement("group"); group != nil {
			if desc := group.SelectElement("description"); desc != nil {
				video.Description = strings.TrimSpace(desc.Text())
			}
		}

		if video.Title != "" {
			videos = append(videos, video)
		}
	}
	return videos
}

// fetchURL fetches a URL and returns the response body.
func (s *FeedService) fetchURL(ctx context.Context, targetURL string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", targetURL, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, scout.Errorf(scout.EUNAVAILABLE, "fetching %s: status %d", targetURL, resp.StatusCode)
	}

	return resp.Body, nil
}
