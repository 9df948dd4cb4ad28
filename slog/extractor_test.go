package slog_test

import (
	"bytes"
	"context"
	"errors"
	stdslog "log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	webextract "github.com/JLcilliers/web-page-content-extractor"
	"github.com/JLcilliers/web-page-content-extractor/mock"
	"github.com/JLcilliers/web-page-content-extractor/slog"
)

func newTestLogger() (*stdslog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return stdslog.New(stdslog.NewTextHandler(&buf, nil)), &buf
}

func TestLoggingExtractor(t *testing.T) {
	t.Parallel()

	t.Run("logs successful extractions", func(t *testing.T) {
		t.Parallel()

		logger, buf := newTestLogger()
		e := slog.NewLoggingExtractor(&mock.Extractor{
			ExtractFn: func(url, html string) (*webextract.ExtractedContent, error) {
				return &webextract.ExtractedContent{
					ID:       "id",
					URL:      url,
					Headings: []webextract.Heading{{Level: 2, Text: "A"}},
				}, nil
			},
		}, logger)

		content, err := e.Extract("https://a.example/", "<html></html>")
		require.NoError(t, err)
		require.NotNil(t, content)

		out := buf.String()
		assert.Contains(t, out, "extraction")
		assert.Contains(t, out, "url=https://a.example/")
		assert.Contains(t, out, "headings=1")
	})

	t.Run("logs and propagates errors", func(t *testing.T) {
		t.Parallel()

		logger, buf := newTestLogger()
		e := slog.NewLoggingExtractor(&mock.Extractor{
			ExtractFn: func(url, html string) (*webextract.ExtractedContent, error) {
				return nil, errors.New("parse blew up")
			},
		}, logger)

		_, err := e.Extract("https://a.example/", "<html></html>")
		require.EqualError(t, err, "parse blew up")

		out := buf.String()
		assert.Contains(t, out, "extraction failed")
		assert.Contains(t, out, "parse blew up")
	})
}

func TestLoggingFetcher(t *testing.T) {
	t.Parallel()

	t.Run("logs fetched byte counts", func(t *testing.T) {
		t.Parallel()

		logger, buf := newTestLogger()
		f := slog.NewLoggingFetcher(&mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "<html></html>", nil
			},
		}, logger)

		html, err := f.Fetch(context.Background(), "https://a.example/")
		require.NoError(t, err)
		assert.Equal(t, "<html></html>", html)

		out := buf.String()
		assert.Contains(t, out, "fetch")
		assert.Contains(t, out, "bytes=13")
	})

	t.Run("delegates Close", func(t *testing.T) {
		t.Parallel()

		logger, _ := newTestLogger()
		closed := false
		f := slog.NewLoggingFetcher(&mock.Fetcher{
			CloseFn: func() error {
				closed = true
				return nil
			},
		}, logger)

		require.NoError(t, f.Close())
		assert.True(t, closed)
	})
}
