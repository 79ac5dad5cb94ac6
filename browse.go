package dlm

import (
	"cmp"
	"slices"
	"strings"
)

// BrowseFilter narrows the candidate set handed to the incremental search
// UI. Filtering here is exact; the fuzzy matching itself is delegated to
// the external line-filter interface.
type BrowseFilter struct {
	// DDC keeps entries whose classification code starts with this string.
	DDC string

	// FileType keeps entries of this type (case-insensitive).
	FileType string

	// Recent keeps entries with any progress record, most recently opened
	// first.
	Recent bool

	// InProgress keeps entries with a saved page number.
	InProgress bool
}

// FilterCatalog applies a BrowseFilter against the catalog and the progress
// overlay. Progress influences membership and ordering here only because
// the filter explicitly asks for it; search ranking never consults it.
func FilterCatalog(entries []*CatalogEntry, progress map[string]*ProgressRecord, f BrowseFilter) []*CatalogEntry {
	filtered := make([]*CatalogEntry, 0, len(entries))
	for _, entry := range entries {
		if f.DDC != "" && (entry.DDC == "" || !strings.HasPrefix(entry.DDC, f.DDC)) {
			continue
		}
		if f.FileType != "" && !strings.EqualFold(entry.FileType, f.FileType) {
			continue
		}
		rec := progress[entry.ID]
		if f.Recent && rec == nil {
			continue
		}
		if f.InProgress && (rec == nil || rec.Page == nil) {
			continue
		}
		filtered = append(filtered, entry)
	}

	if f.Recent {
		slices.SortStableFunc(filtered, func(a, b *CatalogEntry) int {
			return cmp.Compare(lastOpened(progress, b.ID), lastOpened(progress, a.ID))
		})
	}
	return filtered
}

// RecentEntries returns entries with progress records, most recently opened
// first, capped at limit (50 when limit <= 0).
func RecentEntries(entries []*CatalogEntry, progress map[string]*ProgressRecord, limit int) []*CatalogEntry {
	if limit <= 0 {
		limit = 50
	}
	recent := FilterCatalog(entries, progress, BrowseFilter{Recent: true})
	if len(recent) > limit {
		recent = recent[:limit]
	}
	return recent
}

// lastOpened is comparable as a plain string because dates are stored in
// YYYY-MM-DD form.
func lastOpened(progress map[string]*ProgressRecord, id string) string {
	if rec := progress[id]; rec != nil {
		return rec.LastOpened
	}
	return ""
}
