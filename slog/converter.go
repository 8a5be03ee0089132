package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/bodymd"
)

// Ensure LoggingConverter implements bodymd.Converter.
var _ bodymd.Converter = (*LoggingConverter)(nil)

// LoggingConverter wraps a Converter with logging of conversion results.
type LoggingConverter struct {
	next   bodymd.Converter
	logger *slog.Logger
}

// NewLoggingConverter creates a new LoggingConverter.
func NewLoggingConverter(next bodymd.Converter, logger *slog.Logger) *LoggingConverter {
	return &LoggingConverter{next: next, logger: logger}
}

// Convert delegates to the wrapped converter and logs the outcome.
func (c *LoggingConverter) Convert(html string) (string, error) {
	begin := time.Now()
	md, err := c.next.Convert(html)
	if err != nil {
		c.logger.Error("markdown conversion failed",
			"error", bodymd.ErrorMessage(err),
			"duration", time.Since(begin),
		)
		return "", err
	}

	c.logger.Info("markdown conversion",
		"input_bytes", len(html),
		"output_bytes", len(md),
		"duration", time.Since(begin),
	)
	return md, nil
}
