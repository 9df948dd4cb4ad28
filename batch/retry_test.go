package batch_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JLcilliers/web-page-content-extractor/batch"
)

func TestFetchWithRetryDelays(t *testing.T) {
	t.Parallel()

	t.Run("returns on first success", func(t *testing.T) {
		t.Parallel()

		calls := 0
		html, err := batch.FetchWithRetryDelays(context.Background(), "https://a.example/",
			func(ctx context.Context, url string) (string, error) {
				calls++
				return "<html></html>", nil
			}, []time.Duration{time.Hour})
		require.NoError(t, err)
		assert.Equal(t, "<html></html>", html)
		assert.Equal(t, 1, calls)
	})

	t.Run("makes len(delays)+1 attempts and returns the last error", func(t *testing.T) {
		t.Parallel()

		calls := 0
		_, err := batch.FetchWithRetryDelays(context.Background(), "https://a.example/",
			func(ctx context.Context, url string) (string, error) {
				calls++
				return "", errors.New("boom")
			}, []time.Duration{0, 0})
		require.EqualError(t, err, "boom")
		assert.Equal(t, 3, calls)
	})

	t.Run("stops waiting when the context is canceled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		_, err := batch.FetchWithRetryDelays(ctx, "https://a.example/",
			func(ctx context.Context, url string) (string, error) {
				cancel()
				return "", errors.New("boom")
			}, []time.Duration{time.Hour})
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestDomainLimiter(t *testing.T) {
	t.Parallel()

	t.Run("throttles repeat requests to the same domain", func(t *testing.T) {
		t.Parallel()

		l := batch.NewDomainLimiter(20) // 50ms between requests
		ctx := context.Background()

		start := time.Now()
		require.NoError(t, l.Wait(ctx, "https://a.example/one"))
		require.NoError(t, l.Wait(ctx, "https://a.example/two"))
		assert.GreaterOrEqual(t, time.Since(start), 40*time.Millisecond)
	})

	t.Run("different domains are independent", func(t *testing.T) {
		t.Parallel()

		l := batch.NewDomainLimiter(1)
		ctx := context.Background()

		start := time.Now()
		require.NoError(t, l.Wait(ctx, "https://a.example/"))
		require.NoError(t, l.Wait(ctx, "https://b.example/"))
		assert.Less(t, time.Since(start), 500*time.Millisecond)
	})

	t.Run("returns the context error when canceled mid-wait", func(t *testing.T) {
		t.Parallel()

		l := batch.NewDomainLimiter(0.001)
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		require.NoError(t, l.Wait(ctx, "https://a.example/"))
		assert.Error(t, l.Wait(ctx, "https://a.example/"))
	})
}
