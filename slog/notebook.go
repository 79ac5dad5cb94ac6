package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/utrumsit/dlm"
)

// Ensure LoggingNotebook implements dlm.NotebookService.
var _ dlm.NotebookService = (*LoggingNotebook)(nil)

// LoggingNotebook wraps a NotebookService with operation logging.
type LoggingNotebook struct {
	next   dlm.NotebookService
	logger *slog.Logger
}

// NewLoggingNotebook creates a new LoggingNotebook.
func NewLoggingNotebook(next dlm.NotebookService, logger *slog.Logger) *LoggingNotebook {
	return &LoggingNotebook{next: next, logger: logger}
}

// CreateOrUpdateNote delegates to the wrapped service and logs the export.
func (n *LoggingNotebook) CreateOrUpdateNote(ctx context.Context, note *dlm.Note) (err error) {
	defer func(begin time.Time) {
		n.logger.Info("note export",
			"title", note.Title,
			"tags", len(note.Tags),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return n.next.CreateOrUpdateNote(ctx, note)
}
