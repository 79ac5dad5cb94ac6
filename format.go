package dlm

import (
	"fmt"
	"strings"
)

// Display truncation widths for incremental-mode labels.
const (
	labelTitleWidth  = 70
	labelAuthorWidth = 30
)

// FormatResults renders ranked results as a numbered list with progress
// annotations merged in for display. Progress never affects the ranking
// itself.
func FormatResults(results []*ScoredEntry, progress map[string]*ProgressRecord) string {
	if len(results) == 0 {
		return "No results found.\n"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\nFound %d result(s):\n\n", len(results))

	for i, res := range results {
		entry := res.Entry

		line := entry.Title
		if entry.Author != "" {
			line += " by " + entry.Author
		}
		if entry.DDC != "" {
			line += fmt.Sprintf(" [DDC: %s]", entry.DDC)
		}
		fmt.Fprintf(&b, "%d. %s\n", i+1, line)

		if len(entry.Subjects) > 0 {
			fmt.Fprintf(&b, "   Subjects: %s\n", strings.Join(firstN(entry.Subjects, 3), ", "))
		}

		location := "   Location: " + entry.FilePath
		if rec := progress[entry.ID]; rec != nil {
			if rec.Page != nil {
				location += fmt.Sprintf("  last read: p.%d", *rec.Page)
			}
			if rec.LastOpened != "" {
				location += fmt.Sprintf(" (%s)", rec.LastOpened)
			}
		}
		b.WriteString(location + "\n\n")
	}
	return b.String()
}

// FormatEntryLabel renders the one-line display string for the incremental
// fuzzy-filter UI: truncated title and author, classification code, and
// the uppercased file type.
func FormatEntryLabel(entry *CatalogEntry) string {
	title := truncate(entry.Title, labelTitleWidth)
	ddc := entry.DDC
	if ddc == "" {
		ddc = "---"
	}
	fileType := strings.ToUpper(entry.FileType)

	if entry.Author != "" {
		return fmt.Sprintf("%s (%s) [%s] %s", title, truncate(entry.Author, labelAuthorWidth), ddc, fileType)
	}
	return fmt.Sprintf("%s [%s] %s", title, ddc, fileType)
}

// FormatPreview renders the metadata pane shown next to the incremental
// search list.
func FormatPreview(entry *CatalogEntry, rec *ProgressRecord) string {
	var b strings.Builder
	b.WriteString(entry.Title + "\n\n")

	if entry.Author != "" {
		fmt.Fprintf(&b, "Author: %s\n", entry.Author)
	}
	ddc := entry.DDC
	if ddc == "" {
		ddc = "N/A"
	}
	fmt.Fprintf(&b, "DDC: %s\n", ddc)
	fmt.Fprintf(&b, "Type: %s\n", strings.ToUpper(entry.FileType))
	if len(entry.Subjects) > 0 {
		fmt.Fprintf(&b, "\nSubjects: %s\n", strings.Join(firstN(entry.Subjects, 5), ", "))
	}
	fmt.Fprintf(&b, "\nLocation: %s\n", entry.FilePath)

	if rec != nil {
		if rec.LastOpened != "" {
			fmt.Fprintf(&b, "\nLast opened: %s\n", rec.LastOpened)
		}
		if rec.Page != nil {
			fmt.Fprintf(&b, "Last read page: %d\n", *rec.Page)
		}
	}
	return b.String()
}

// truncate limits s to n runes.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

func firstN(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[:n]
}
