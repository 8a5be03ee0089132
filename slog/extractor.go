// Package slog provides logging decorators for pipeline components.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/bodymd"
)

// Ensure LoggingExtractor implements bodymd.Extractor.
var _ bodymd.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with logging of extraction results.
type LoggingExtractor struct {
	next   bodymd.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next bodymd.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the outcome.
func (e *LoggingExtractor) Extract(html string) (*bodymd.Fragment, error) {
	begin := time.Now()
	frag, err := e.next.Extract(html)
	if err != nil {
		e.logger.Error("body extraction failed",
			"error", bodymd.ErrorMessage(err),
			"duration", time.Since(begin),
		)
		return nil, err
	}

	title := frag.Title
	if title == "" {
		title = "(untitled)"
	}
	e.logger.Info("body extraction",
		"title", title,
		"bytes", len(frag.BodyHTML),
		"duration", time.Since(begin),
	)
	return frag, nil
}
