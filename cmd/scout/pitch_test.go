package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/mstanek/scout"
	main "github.com/mstanek/scout/cmd/scout"
	"github.com/mstanek/scout/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPitchCommand(t *testing.T) {
	t.Parallel()

	t.Run("prints the generated opener", func(t *testing.T) {
		t.Parallel()

		var gotProfile scout.ChannelProfile
		m := main.NewMain()
		m.Fetcher = &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return channelHTML, nil
			},
		}
		m.Feeds = &mock.FeedService{
			RecentVideosFn: func(ctx context.Context, feedURL string, limit int) ([]scout.Video, error) {
				assert.Contains(t, feedURL, "UCtrains123")
				assert.Equal(t, 3, limit)
				return []scout.Video{{Title: "Restoring a 1923 steam engine"}}, nil
			},
		}
		m.Pitcher = &mock.Pitcher{
			PitchFn: func(ctx context.Context, profile scout.ChannelProfile) (*scout.Pitch, error) {
				gotProfile = profile
				return &scout.Pitch{SubjectLine: "Loved the restoration video", FirstLine: "Hi, that 1923 engine is stunning."}, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		err := m.Run(context.Background(), []string{"pitch", "https://youtube.com/@trains"}, stdout, stderr)
		require.NoError(t, err)

		assert.Contains(t, stdout.String(), "Subject: Loved the restoration video")
		assert.Contains(t, stdout.String(), "Hi, that 1923 engine is stunning.")
		assert.Equal(t, "Train Channel", gotProfile.ChannelName)
		require.Len(t, gotProfile.RecentVideos, 1)
	})

	t.Run("feed failure is a warning, not an error", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		m.Fetcher = &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return channelHTML, nil
			},
		}
		m.Feeds = &mock.FeedService{
			RecentVideosFn: func(ctx context.Context, feedURL string, limit int) ([]scout.Video, error) {
				return nil, scout.Errorf(scout.EUNAVAILABLE, "feed returned status 503")
			},
		}
		m.Pitcher = &mock.Pitcher{
			PitchFn: func(ctx context.Context, profile scout.ChannelProfile) (*scout.Pitch, error) {
				assert.Empty(t, profile.RecentVideos)
				return &scout.Pitch{SubjectLine: "Big fan", FirstLine: "Hello!"}, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		err := m.Run(context.Background(), []string{"pitch", "https://youtube.com/@trains"}, stdout, stderr)
		require.NoError(t, err)

		assert.Contains(t, stderr.String(), "could not fetch recent videos")
		assert.Contains(t, stdout.String(), "Subject: Big fan")
	})

	t.Run("fetch failure is an error", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		m.Fetcher = &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "", scout.Errorf(scout.EUNAVAILABLE, "navigation timeout")
			},
		}
		m.Pitcher = &mock.Pitcher{
			PitchFn: func(ctx context.Context, profile scout.ChannelProfile) (*scout.Pitch, error) {
				t.Fatal("pitcher should not be called")
				return nil, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		err := m.Run(context.Background(), []string{"pitch", "https://youtube.com/@trains"}, stdout, stderr)
		require.Error(t, err)
		assert.Contains(t, stderr.String(), "navigation timeout")
	})
}
