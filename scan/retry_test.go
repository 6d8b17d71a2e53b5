package scan_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/mstanek/scout/scan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchWithRetryDelays(t *testing.T) {
	t.Parallel()

	t.Run("returns on first success", func(t *testing.T) {
		t.Parallel()

		calls := 0
		fetch := func(ctx context.Context, url string) (string, error) {
			calls++
			return "<html></html>", nil
		}

		html, err := scan.FetchWithRetryDelays(context.Background(), "https://example.com", fetch, nil, []time.Duration{time.Millisecond})

		require.NoError(t, err)
		assert.Equal(t, "<html></html>", html)
		assert.Equal(t, 1, calls)
	})

	t.Run("retries until success", func(t *testing.T) {
		t.Parallel()

		calls := 0
		fetch := func(ctx context.Context, url string) (string, error) {
			calls++
			if calls < 3 {
				return "", errors.New("flaky")
			}
			return "ok", nil
		}

		html, err := scan.FetchWithRetryDelays(context.Background(), "https://example.com", fetch, nil, []time.Duration{time.Millisecond, time.Millisecond})

		require.NoError(t, err)
		assert.Equal(t, "ok", html)
		assert.Equal(t, 3, calls)
	})

	t.Run("exhausts attempts and returns last error", func(t *testing.T) {
		t.Parallel()

		calls := 0
		fetch := func(ctx context.Context, url string) (string, error) {
			calls++
			return "", fmt.Errorf("fail %d", calls)
		}

		_, err := scan.FetchWithRetryDelays(context.Background(), "https://example.com", fetch, nil, []time.Duration{time.Millisecond, time.Millisecond})

		require.Error(t, err)
		assert.EqualError(t, err, "fail 3")
		assert.Equal(t, 3, calls)
	})

	t.Run("empty delays means a single attempt", func(t *testing.T) {
		t.Parallel()

		calls := 0
		fetch := func(ctx context.Context, url string) (string, error) {
			calls++
			return "", errors.New("down")
		}

		_, err := scan.FetchWithRetryDelays(context.Background(), "https://example.com", fetch, nil, []time.Duration{})

		require.Error(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("logs each retry", func(t *testing.T) {
		t.Parallel()

		var logged []string
		logger := func(format string, args ...any) {
			logged = append(logged, fmt.Sprintf(format, args...))
		}
		fetch := func(ctx context.Context, url string) (string, error) {
			return "", errors.New("down")
		}

		_, err := scan.FetchWithRetryDelays(context.Background(), "https://example.com", fetch, logger, []time.Duration{time.Millisecond, time.Millisecond})

		require.Error(t, err)
		require.Len(t, logged, 2)
		assert.Contains(t, logged[0], "attempt 2")
		assert.Contains(t, logged[1], "attempt 3")
	})

	t.Run("stops when the context is canceled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		fetch := func(ctx context.Context, url string) (string, error) {
			cancel()
			return "", errors.New("down")
		}

		_, err := scan.FetchWithRetryDelays(ctx, "https://example.com", fetch, nil, []time.Duration{time.Hour})

		require.ErrorIs(t, err, context.Canceled)
	})
}
