package dlm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/utrumsit/dlm"
)

func testCatalog() []*dlm.CatalogEntry {
	return []*dlm.CatalogEntry{
		{
			ID:       "780001",
			Title:    "Beethoven Sonatas",
			Author:   "Ludwig van Beethoven",
			Subjects: []string{"Music", "Piano"},
			DDC:      "780",
			Category: "780_Music",
			FilePath: "780_Music/Beethoven_Sonatas.pdf",
			FileType: "pdf",
		},
		{
			ID:       "780002",
			Title:    "Beethoven Symphonies",
			Subjects: []string{"Music", "Orchestral Music"},
			DDC:      "781.65",
			Category: "780_Music/781.65_Jazz",
			FilePath: "780_Music/Beethoven_Symphonies.epub",
			FileType: "epub",
		},
		{
			ID:       "000001",
			Title:    "Introduction to Algorithms",
			Author:   "Thomas Cormen",
			Subjects: []string{"Computer Science", "Programming"},
			DDC:      "005",
			Category: "000_Computer_Science/005_Programming",
			FilePath: "000_Computer_Science/005_Programming/CLRS.pdf",
			FileType: "pdf",
		},
	}
}

func TestSearch_NoCriteriaReturnsEverything(t *testing.T) {
	t.Parallel()

	catalog := testCatalog()
	results := dlm.Search(catalog, dlm.SearchQuery{Fuzzy: true})

	require.Len(t, results, len(catalog))
	for i, res := range results {
		assert.Equal(t, catalog[i].ID, res.Entry.ID)
		assert.Equal(t, 1.0, res.Score)
	}
}

func TestSearch_EmptyQueryWithTypeFilterReturnsAllOfType(t *testing.T) {
	t.Parallel()

	results := dlm.Search(testCatalog(), dlm.SearchQuery{FileType: "pdf", Fuzzy: true})

	require.Len(t, results, 2)
	assert.Equal(t, "780001", results[0].Entry.ID)
	assert.Equal(t, "000001", results[1].Entry.ID)
	for _, res := range results {
		assert.Equal(t, 1.0, res.Score)
	}
}

func TestSearch_TypeFilterShortCircuitsScoring(t *testing.T) {
	t.Parallel()

	// Both titles match the query perfectly; the epub must still be gone.
	results := dlm.Search(testCatalog(), dlm.SearchQuery{
		Query:    "Beethoven",
		FileType: "pdf",
		Fuzzy:    true,
	})

	require.Len(t, results, 1)
	assert.Equal(t, "780001", results[0].Entry.ID)
}

func TestSearch_SubstringMatchesBothInCatalogOrder(t *testing.T) {
	t.Parallel()

	results := dlm.Search(testCatalog(), dlm.SearchQuery{Query: "Beethoven", Fuzzy: true})

	require.Len(t, results, 2)
	assert.Equal(t, "780001", results[0].Entry.ID)
	assert.Equal(t, "780002", results[1].Entry.ID)
	assert.Equal(t, 1.0, results[0].Score)
	assert.Equal(t, 1.0, results[1].Score)
}

func TestSearch_TypoMatchesFuzzyOnly(t *testing.T) {
	t.Parallel()

	fuzzy := dlm.Search(testCatalog(), dlm.SearchQuery{Query: "Beetoven", Fuzzy: true})
	require.Len(t, fuzzy, 2)

	exact := dlm.Search(testCatalog(), dlm.SearchQuery{Query: "Beetoven", Fuzzy: false})
	assert.Empty(t, exact)
}

func TestSearch_ThresholdMonotonicity(t *testing.T) {
	t.Parallel()

	// Disabling fuzziness raises the effective threshold to 1.0 and must
	// never grow the match set.
	queries := []string{"Beethoven", "Beetoven", "algorithm", "sympony", "x"}
	for _, q := range queries {
		fuzzy := dlm.Search(testCatalog(), dlm.SearchQuery{Query: q, Fuzzy: true})
		exact := dlm.Search(testCatalog(), dlm.SearchQuery{Query: q, Fuzzy: false})
		assert.LessOrEqual(t, len(exact), len(fuzzy), "query %q", q)
	}
}

func TestSearch_DDCPrefixIsLiteral(t *testing.T) {
	t.Parallel()

	// "781.65" does not start with "780": only the exact "780" entry
	// matches. Prefix comparison is on strings, never numeric ranges.
	results := dlm.Search(testCatalog(), dlm.SearchQuery{DDC: "780", Fuzzy: true})

	require.Len(t, results, 1)
	assert.Equal(t, "780001", results[0].Entry.ID)
	assert.Equal(t, 1.0, results[0].Score)
}

func TestSearch_DDCPrefixMatchesSubdivisions(t *testing.T) {
	t.Parallel()

	results := dlm.Search(testCatalog(), dlm.SearchQuery{DDC: "78", Fuzzy: true})

	require.Len(t, results, 2)
}

func TestSearch_DDCTakesPriorityOverQuery(t *testing.T) {
	t.Parallel()

	// The query would match nothing; the classification filter decides.
	results := dlm.Search(testCatalog(), dlm.SearchQuery{
		Query: "zzzzzz",
		DDC:   "005",
		Fuzzy: true,
	})

	require.Len(t, results, 1)
	assert.Equal(t, "000001", results[0].Entry.ID)
}

func TestSearch_FieldSelectors(t *testing.T) {
	t.Parallel()

	t.Run("author field ignores titles", func(t *testing.T) {
		t.Parallel()
		results := dlm.Search(testCatalog(), dlm.SearchQuery{
			Query: "Cormen",
			Field: dlm.FieldAuthor,
			Fuzzy: true,
		})
		require.Len(t, results, 1)
		assert.Equal(t, "000001", results[0].Entry.ID)
	})

	t.Run("subject field takes best subject", func(t *testing.T) {
		t.Parallel()
		results := dlm.Search(testCatalog(), dlm.SearchQuery{
			Query: "orchestral",
			Field: dlm.FieldSubject,
			Fuzzy: true,
		})
		require.Len(t, results, 1)
		assert.Equal(t, "780002", results[0].Entry.ID)
	})

	t.Run("category field", func(t *testing.T) {
		t.Parallel()
		results := dlm.Search(testCatalog(), dlm.SearchQuery{
			Query: "programming",
			Field: dlm.FieldCategory,
			Fuzzy: true,
		})
		require.Len(t, results, 1)
		assert.Equal(t, "000001", results[0].Entry.ID)
	})
}

func TestSearch_StableRankingPreservesCatalogOrderOnTies(t *testing.T) {
	t.Parallel()

	catalog := []*dlm.CatalogEntry{
		{ID: "a", Title: "Greek Grammar", FilePath: "a.pdf", FileType: "pdf"},
		{ID: "b", Title: "Greek Reader", FilePath: "b.pdf", FileType: "pdf"},
		{ID: "c", Title: "Greek Lexicon", FilePath: "c.pdf", FileType: "pdf"},
	}

	results := dlm.Search(catalog, dlm.SearchQuery{Query: "greek", Fuzzy: true})

	require.Len(t, results, 3)
	assert.Equal(t, []string{"a", "b", "c"}, []string{
		results[0].Entry.ID, results[1].Entry.ID, results[2].Entry.ID,
	})
}

func TestSearch_HigherScoresRankFirst(t *testing.T) {
	t.Parallel()

	catalog := []*dlm.CatalogEntry{
		{ID: "far", Title: "Odysseus and the Aegean", FilePath: "a.pdf", FileType: "pdf"},
		{ID: "close", Title: "Odyssey", FilePath: "b.pdf", FileType: "pdf"},
	}

	results := dlm.Search(catalog, dlm.SearchQuery{Query: "odysey", Fuzzy: true})

	require.NotEmpty(t, results)
	assert.Equal(t, "close", results[0].Entry.ID)
}

func TestSearch_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	catalog := testCatalog()
	before := *catalog[0]

	dlm.Search(catalog, dlm.SearchQuery{Query: "beethoven", Fuzzy: true})

	assert.Equal(t, before, *catalog[0])
}

func TestResolveTitle(t *testing.T) {
	t.Parallel()

	t.Run("single match", func(t *testing.T) {
		t.Parallel()
		entry, err := dlm.ResolveTitle(testCatalog(), "algorithms")
		require.NoError(t, err)
		assert.Equal(t, "000001", entry.ID)
	})

	t.Run("no match", func(t *testing.T) {
		t.Parallel()
		_, err := dlm.ResolveTitle(testCatalog(), "nonexistent")
		require.Error(t, err)
		assert.Equal(t, dlm.ENOTFOUND, dlm.ErrorCode(err))
	})

	t.Run("ambiguous match is refused with candidates", func(t *testing.T) {
		t.Parallel()
		_, err := dlm.ResolveTitle(testCatalog(), "beethoven")
		require.Error(t, err)
		assert.Equal(t, dlm.ECONFLICT, dlm.ErrorCode(err))
		assert.Contains(t, dlm.ErrorMessage(err), "Beethoven Sonatas")
		assert.Contains(t, dlm.ErrorMessage(err), "Beethoven Symphonies")
	})
}

func TestCatalogEntry_Validate(t *testing.T) {
	t.Parallel()

	valid := &dlm.CatalogEntry{ID: "780001", Title: "Beethoven Sonatas", FilePath: "a.pdf", FileType: "pdf"}
	require.NoError(t, valid.Validate())

	missingTitle := &dlm.CatalogEntry{ID: "780001", FilePath: "a.pdf", FileType: "pdf"}
	err := missingTitle.Validate()
	require.Error(t, err)
	assert.Equal(t, dlm.EINVALID, dlm.ErrorCode(err))
}
