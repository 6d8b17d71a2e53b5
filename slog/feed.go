package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/mstanek/scout"
)

// Ensure LoggingFeedService implements scout.FeedService.
var _ scout.FeedService = (*LoggingFeedService)(nil)

// LoggingFeedService wraps a FeedService with debug logging.
type LoggingFeedService struct {
	next   scout.FeedService
	logger *slog.Logger
}

// NewLoggingFeedService creates a new LoggingFeedService.
func NewLoggingFeedService(next scout.FeedService, logger *slog.Logger) *LoggingFeedService {
	return &LoggingFeedService{next: next, logger: logger}
}

// RecentVideos delegates to the wrapped service and logs the operation.
func (s *LoggingFeedService) RecentVideos(ctx context.Context, feedURL string, limit int) (videos []scout.Video, err error) {
	defer func(begin time.Time) {
		s.logger.Info("feed fetch",
			"url", feedURL,
			"count", len(videos),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.RecentVideos(ctx, feedURL, limit)
}
