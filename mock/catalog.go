// Package mock provides function-field mock implementations of the dlm
// interfaces for testing.
package mock

import (
	"context"

	"github.com/utrumsit/dlm"
)

var _ dlm.CatalogService = (*CatalogService)(nil)

// CatalogService is a mock implementation of dlm.CatalogService.
type CatalogService struct {
	LoadCatalogFn func(ctx context.Context) ([]*dlm.CatalogEntry, error)
	SaveCatalogFn func(ctx context.Context, entries []*dlm.CatalogEntry) error
}

func (s *CatalogService) LoadCatalog(ctx context.Context) ([]*dlm.CatalogEntry, error) {
	return s.LoadCatalogFn(ctx)
}

func (s *CatalogService) SaveCatalog(ctx context.Context, entries []*dlm.CatalogEntry) error {
	return s.SaveCatalogFn(ctx, entries)
}
