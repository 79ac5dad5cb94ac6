package mock

import (
	"context"

	"github.com/utrumsit/dlm"
)

var _ dlm.ProgressService = (*ProgressService)(nil)

// ProgressService is a mock implementation of dlm.ProgressService.
type ProgressService struct {
	SnapshotFn   func(ctx context.Context) (map[string]*dlm.ProgressRecord, error)
	RecordOpenFn func(ctx context.Context, entryID string, page *int) error
	SetPageFn    func(ctx context.Context, entryID string, page int) error
}

func (s *ProgressService) Snapshot(ctx context.Context) (map[string]*dlm.ProgressRecord, error) {
	return s.SnapshotFn(ctx)
}

func (s *ProgressService) RecordOpen(ctx context.Context, entryID string, page *int) error {
	return s.RecordOpenFn(ctx, entryID, page)
}

func (s *ProgressService) SetPage(ctx context.Context, entryID string, page int) error {
	return s.SetPageFn(ctx, entryID, page)
}
