// Package slog provides logging decorators for service interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/mstanek/scout"
)

// Ensure LoggingPitcher implements scout.Pitcher.
var _ scout.Pitcher = (*LoggingPitcher)(nil)

// LoggingPitcher wraps a Pitcher with debug logging.
type LoggingPitcher struct {
	next   scout.Pitcher
	logger *slog.Logger
}

// NewLoggingPitcher creates a new LoggingPitcher.
func NewLoggingPitcher(next scout.Pitcher, logger *slog.Logger) *LoggingPitcher {
	return &LoggingPitcher{next: next, logger: logger}
}

// Pitch delegates to the wrapped pitcher and logs the operation.
func (p *LoggingPitcher) Pitch(ctx context.Context, profile scout.ChannelProfile) (pitch *scout.Pitch, err error) {
	defer func(begin time.Time) {
		subject := ""
		if pitch != nil {
			subject = pitch.SubjectLine
		}
		p.logger.Info("pitch generation",
			"channel", profile.ChannelName,
			"videos", len(profile.RecentVideos),
			"subject", subject,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.Pitch(ctx, profile)
}
