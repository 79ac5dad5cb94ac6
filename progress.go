package dlm

import "context"

// ProgressRecord tracks reading progress for a single catalog entry. Records
// are created lazily on first open and updated, never removed, on every
// subsequent open or explicit page set.
type ProgressRecord struct {
	// LastOpened is a date string in YYYY-MM-DD form; the most recent open
	// wins.
	LastOpened string `json:"last_opened,omitempty"`

	// Page is the last known reading position. Only present once explicitly
	// set, and never cleared implicitly.
	Page *int `json:"page,omitempty"`
}

// ProgressService owns the mutable reading-progress overlay keyed by entry
// ID. It is the single writer; persisted state is reloaded before every
// mutation so concurrent process instances observe each other's updates
// (last-writer-wins, no locking).
type ProgressService interface {
	// Snapshot returns the current overlay. A corrupt or missing overlay
	// reads as empty rather than failing the search session.
	Snapshot(ctx context.Context) (map[string]*ProgressRecord, error)

	// RecordOpen refreshes last_opened for the entry and, only when page is
	// non-nil, stores the page. A previously set page is never cleared.
	RecordOpen(ctx context.Context, entryID string, page *int) error

	// SetPage stores a mandatory page and refreshes last_opened, without
	// the entry being opened.
	SetPage(ctx context.Context, entryID string, page int) error
}
