package mock

import (
	"context"

	"github.com/mstanek/scout"
)

var _ scout.Pitcher = (*Pitcher)(nil)

// Pitcher is a mock implementation of scout.Pitcher.
type Pitcher struct {
	PitchFn func(ctx context.Context, profile scout.ChannelProfile) (*scout.Pitch, error)
}

func (p *Pitcher) Pitch(ctx context.Context, profile scout.ChannelProfile) (*scout.Pitch, error) {
	return p.PitchFn(ctx, profile)
}

var _ scout.FeedService = (*FeedService)(nil)

// FeedService is a mock implementation of scout.FeedService.
type FeedService struct {
	RecentVideosFn func(ctx context.Context, feedURL string, limit int) ([]scout.Video, error)
}

func (s *FeedService) RecentVideos(ctx context.Context, feedURL string, limit int) ([]scout.Video, error) {
	return s.RecentVideosFn(ctx, feedURL, limit)
}
