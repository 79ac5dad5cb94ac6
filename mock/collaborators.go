package mock

import (
	"context"

	"github.com/utrumsit/dlm"
)

var _ dlm.Picker = (*Picker)(nil)

// Picker is a mock implementation of dlm.Picker.
type Picker struct {
	PickFn func(ctx context.Context, items []dlm.Item, initialQuery string) (string, error)
}

func (p *Picker) Pick(ctx context.Context, items []dlm.Item, initialQuery string) (string, error) {
	return p.PickFn(ctx, items, initialQuery)
}

var _ dlm.Opener = (*Opener)(nil)

// Opener is a mock implementation of dlm.Opener.
type Opener struct {
	OpenFn func(ctx context.Context, entry *dlm.CatalogEntry) error
}

func (o *Opener) Open(ctx context.Context, entry *dlm.CatalogEntry) error {
	return o.OpenFn(ctx, entry)
}

var _ dlm.NotebookService = (*NotebookService)(nil)

// NotebookService is a mock implementation of dlm.NotebookService.
type NotebookService struct {
	CreateOrUpdateNoteFn func(ctx context.Context, note *dlm.Note) error
}

func (s *NotebookService) CreateOrUpdateNote(ctx context.Context, note *dlm.Note) error {
	return s.CreateOrUpdateNoteFn(ctx, note)
}

var _ dlm.AnnotationSource = (*AnnotationSource)(nil)

// AnnotationSource is a mock implementation of dlm.AnnotationSource.
type AnnotationSource struct {
	NotesFn func(ctx context.Context, entry *dlm.CatalogEntry) (*dlm.BookNotes, error)
}

func (s *AnnotationSource) Notes(ctx context.Context, entry *dlm.CatalogEntry) (*dlm.BookNotes, error) {
	return s.NotesFn(ctx, entry)
}

var _ dlm.MetadataExtractor = (*MetadataExtractor)(nil)

// MetadataExtractor is a mock implementation of dlm.MetadataExtractor.
type MetadataExtractor struct {
	ExtractFn func(ctx context.Context, path string) (*dlm.Metadata, error)
}

func (e *MetadataExtractor) Extract(ctx context.Context, path string) (*dlm.Metadata, error) {
	return e.ExtractFn(ctx, path)
}

var _ dlm.ContextSource = (*ContextSource)(nil)

// ContextSource is a mock implementation of dlm.ContextSource.
type ContextSource struct {
	CurrentContextFn func(ctx context.Context) (string, error)
}

func (s *ContextSource) CurrentContext(ctx context.Context) (string, error) {
	return s.CurrentContextFn(ctx)
}

var _ dlm.Asker = (*Asker)(nil)

// Asker is a mock implementation of dlm.Asker.
type Asker struct {
	AskFn func(ctx context.Context, contextText, question string) (string, error)
}

func (a *Asker) Ask(ctx context.Context, contextText, question string) (string, error) {
	return a.AskFn(ctx, contextText, question)
}
