package dlm

import (
	"cmp"
	"slices"
	"strings"
)

// Field selects which catalog field a text query is scored against.
type Field string

// Field values. FieldAll (the zero value) scores title, author, category
// and the best subject, taking the maximum.
const (
	FieldAll      Field = ""
	FieldTitle    Field = "title"
	FieldAuthor   Field = "author"
	FieldSubject  Field = "subject"
	FieldCategory Field = "category"
)

// FuzzyThreshold is the minimum score for a fuzzy match. With fuzziness
// disabled only exact/substring matches (score 1.0) qualify.
const FuzzyThreshold = 0.6

// SearchQuery describes a single search invocation.
type SearchQuery struct {
	// Query is the free-text query; empty means no text filter.
	Query string

	// Field restricts scoring to one field; FieldAll scores all of them.
	Field Field

	// FileType filters entries by type (case-insensitive) before scoring.
	FileType string

	// DDC filters by literal classification-code string prefix. When set,
	// Query is ignored for matching purposes.
	DDC string

	// Fuzzy enables approximate matching against FuzzyThreshold.
	Fuzzy bool
}

// ScoredEntry pairs a catalog entry with its score for the current query.
// It exists only for ranking and presentation; the underlying entry is
// shared with the input catalog and never mutated.
type ScoredEntry struct {
	Entry *CatalogEntry
	Score float64
}

// Search filters and ranks catalog entries for the given query.
//
// The file-type filter is applied first and excludes entries
// unconditionally. A classification filter matches by literal string
// prefix at score 1.0 and takes priority over the free-text query. With no
// criteria at all, every entry matches at 1.0 in catalog order. Results
// are ordered by descending score; equal scores keep their catalog order.
func Search(entries []*CatalogEntry, q SearchQuery) []*ScoredEntry {
	noCriteria := q.Query == "" && q.Field == FieldAll && q.FileType == "" && q.DDC == ""

	threshold := 1.0
	if q.Fuzzy {
		threshold = FuzzyThreshold
	}

	var results []*ScoredEntry
	for _, entry := range entries {
		if q.FileType != "" && !strings.EqualFold(entry.FileType, q.FileType) {
			continue
		}

		var match bool
		var score float64
		switch {
		case noCriteria, q.DDC == "" && q.Query == "":
			match, score = true, 1.0
		case q.DDC != "":
			if entry.DDC != "" && strings.HasPrefix(entry.DDC, q.DDC) {
				match, score = true, 1.0
			}
		default:
			score = scoreEntry(entry, q.Query, q.Field)
			match = score >= threshold
		}

		if match {
			results = append(results, &ScoredEntry{Entry: entry, Score: score})
		}
	}

	slices.SortStableFunc(results, func(a, b *ScoredEntry) int {
		return cmp.Compare(b.Score, a.Score)
	})
	return results
}

// scoreEntry computes the entry's score for query against the selected
// field, or the maximum across title, author, category and subjects when
// no field is selected.
func scoreEntry(entry *CatalogEntry, query string, field Field) float64 {
	switch field {
	case FieldTitle:
		return Score(query, entry.Title)
	case FieldAuthor:
		return Score(query, entry.Author)
	case FieldCategory:
		return Score(query, entry.Category)
	case FieldSubject:
		return maxSubjectScore(entry, query)
	default:
		best := Score(query, entry.Title)
		for _, s := range []float64{
			Score(query, entry.Author),
			Score(query, entry.Category),
			maxSubjectScore(entry, query),
		} {
			if s > best {
				best = s
			}
		}
		return best
	}
}

func maxSubjectScore(entry *CatalogEntry, query string) float64 {
	var best float64
	for _, subject := range entry.Subjects {
		if s := Score(query, subject); s > best {
			best = s
		}
	}
	return best
}

// ResolveTitle finds the single entry whose title contains the given
// substring (case-insensitive). It returns ENOTFOUND when nothing matches
// and ECONFLICT listing the candidates when the substring is ambiguous, so
// callers never act on an implicit first match.
func ResolveTitle(entries []*CatalogEntry, substring string) (*CatalogEntry, error) {
	needle := strings.ToLower(substring)

	var matches []*CatalogEntry
	for _, entry := range entries {
		if strings.Contains(strings.ToLower(entry.Title), needle) {
			matches = append(matches, entry)
		}
	}

	switch len(matches) {
	case 0:
		return nil, Errorf(ENOTFOUND, "no entry matching %q", substring)
	case 1:
		return matches[0], nil
	}

	titles := make([]string, 0, 5)
	for _, m := range matches[:min(len(matches), 5)] {
		titles = append(titles, m.Title)
	}
	return nil, Errorf(ECONFLICT, "multiple entries match %q (%s), be more specific",
		substring, strings.Join(titles, "; "))
}
