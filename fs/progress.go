package fs

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/utrumsit/dlm"
)

// Ensure ProgressService implements dlm.ProgressService at compile time.
var _ dlm.ProgressService = (*ProgressService)(nil)

// ProgressService persists the reading-progress overlay as a JSON mapping
// from entry ID to progress record. The overlay is re-read from disk before
// every mutation so concurrent process instances see each other's updates;
// there is no locking, last writer wins.
type ProgressService struct {
	path   string
	logger *slog.Logger

	// now is swappable for tests.
	now func() time.Time
}

// NewProgressService creates a ProgressService for the given overlay path.
func NewProgressService(path string, logger *slog.Logger) *ProgressService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProgressService{path: path, logger: logger, now: time.Now}
}

// Snapshot returns the current overlay. A missing file means no progress
// has been recorded; a corrupt file reads as empty so a bad overlay never
// takes the search session down with it.
func (s *ProgressService) Snapshot(ctx context.Context) (map[string]*dlm.ProgressRecord, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]*dlm.ProgressRecord{}, nil
	}
	if err != nil {
		return nil, err
	}

	var overlay map[string]*dlm.ProgressRecord
	if err := json.Unmarshal(data, &overlay); err != nil {
		s.logger.Warn("progress overlay is unreadable, treating as empty",
			"path", s.path,
			"err", err,
		)
		return map[string]*dlm.ProgressRecord{}, nil
	}
	if overlay == nil {
		overlay = map[string]*dlm.ProgressRecord{}
	}
	return overlay, nil
}

// RecordOpen refreshes last_opened for the entry and stores the page only
// when one is given. A previously saved page is never cleared.
func (s *ProgressService) RecordOpen(ctx context.Context, entryID string, page *int) error {
	if entryID == "" {
		return dlm.Errorf(dlm.EINVALID, "entry ID required")
	}

	overlay, err := s.Snapshot(ctx)
	if err != nil {
		return err
	}

	rec := overlay[entryID]
	if rec == nil {
		rec = &dlm.ProgressRecord{}
		overlay[entryID] = rec
	}
	rec.LastOpened = s.now().Format("2006-01-02")
	if page != nil {
		p := *page
		rec.Page = &p
	}

	return s.persist(overlay)
}

// SetPage stores a mandatory page and refreshes last_opened.
func (s *ProgressService) SetPage(ctx context.Context, entryID string, page int) error {
	if page < 0 {
		return dlm.Errorf(dlm.EINVALID, "page must not be negative")
	}
	return s.RecordOpen(ctx, entryID, &page)
}

// persist writes the overlay atomically. Unlike reads, write failures are
// loud.
func (s *ProgressService) persist(overlay map[string]*dlm.ProgressRecord) error {
	data, err := json.MarshalIndent(overlay, "", "  ")
	if err != nil {
		return err
	}
	return writeAtomic(s.path, data)
}
