// Package slog provides logging decorators for the collaborator
// interfaces, wrapping implementations with structured operation logs.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/utrumsit/dlm"
)

// Ensure LoggingExtractor implements dlm.MetadataExtractor.
var _ dlm.MetadataExtractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps a MetadataExtractor with debug logging.
type LoggingExtractor struct {
	next   dlm.MetadataExtractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next dlm.MetadataExtractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the operation.
func (e *LoggingExtractor) Extract(ctx context.Context, path string) (md *dlm.Metadata, err error) {
	defer func(begin time.Time) {
		e.logger.Debug("metadata extraction",
			"path", path,
			"found", md != nil,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(ctx, path)
}
