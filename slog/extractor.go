// Package slog provides logging decorators for webextract services.
// Decorators keep the engine and fetcher implementations log-free while
// giving callers structured visibility into every call.
package slog

import (
	"log/slog"
	"time"

	webextract "github.com/JLcilliers/web-page-content-extractor"
)

// Ensure LoggingExtractor implements webextract.Extractor.
var _ webextract.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with structured logging of extraction
// outcomes.
type LoggingExtractor struct {
	next   webextract.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next webextract.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the outcome.
func (e *LoggingExtractor) Extract(url, html string) (*webextract.ExtractedContent, error) {
	begin := time.Now()
	content, err := e.next.Extract(url, html)
	if err != nil {
		e.logger.Error("extraction failed",
			"url", url,
			"error", err,
			"duration", time.Since(begin),
		)
		return nil, err
	}

	fallback := "(none)"
	if content.Fallback != nil {
		fallback = string(content.Fallback.Source)
	}
	e.logger.Info("extraction",
		"url", url,
		"headings", len(content.Headings),
		"fallback", fallback,
		"duration", time.Since(begin),
	)
	return content, nil
}
