package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/mstanek/scout"
	"github.com/mstanek/scout/mock"
	scoutslog "github.com/mstanek/scout/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingFeedService_RecentVideos(t *testing.T) {
	t.Parallel()

	t.Run("logs fetch with count and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.FeedService{
			RecentVideosFn: func(ctx context.Context, feedURL string, limit int) ([]scout.Video, error) {
				return []scout.Video{{Title: "a"}, {Title: "b"}}, nil
			},
		}

		svc := scoutslog.NewLoggingFeedService(inner, logger)
		videos, err := svc.RecentVideos(context.Background(), "https://www.youtube.com/feeds/videos.xml?channel_id=UC1", 5)

		require.NoError(t, err)
		assert.Len(t, videos, 2)
		output := buf.String()
		assert.Contains(t, output, "feed fetch")
		assert.Contains(t, output, "count=2")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.FeedService{
			RecentVideosFn: func(ctx context.Context, feedURL string, limit int) ([]scout.Video, error) {
				return nil, errors.New("connection failed")
			},
		}

		svc := scoutslog.NewLoggingFeedService(inner, logger)
		_, err := svc.RecentVideos(context.Background(), "https://example.com/feed", 5)

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=\"connection failed\"")
	})
}
