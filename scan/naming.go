package scan

import (
	"path/filepath"
	"regexp"
	"strings"
	"unicode"
)

var (
	extensionRE   = regexp.MustCompile(`(?i)\.(pdf|epub|md|html|txt)$`)
	authorRE      = regexp.MustCompile(`^([^-]+?)\s*-\s*(.+)\.(pdf|epub)$`)
	leadAuthorRE  = regexp.MustCompile(`^[^-]+?\s*-\s*`)
	camelSplitRE  = regexp.MustCompile(`([a-z])([A-Z])`)
	trailParenRE  = regexp.MustCompile(`\s*\([^)]*\)\s*$`)
	multiSpaceRE  = regexp.MustCompile(`\s+`)
	leadingDigits = regexp.MustCompile(`^[\d.]+$`)
)

// CleanTitle derives a readable title from a filename: strips the
// extension and a leading "Author - " prefix, expands underscores and
// camelCase, drops trailing parentheticals, and capitalizes each word.
func CleanTitle(filename string) string {
	title := extensionRE.ReplaceAllString(filename, "")
	title = leadAuthorRE.ReplaceAllString(title, "")
	title = strings.NewReplacer("_", " ", "-", " ").Replace(title)
	title = camelSplitRE.ReplaceAllString(title, "$1 $2")
	title = trailParenRE.ReplaceAllString(title, "")
	title = multiSpaceRE.ReplaceAllString(title, " ")
	return strings.TrimSpace(titleCase(title))
}

// AuthorFromFilename recognizes the "Author - Title.pdf" naming pattern.
// Returns "" when the prefix does not look like an author name.
func AuthorFromFilename(filename string) string {
	m := authorRE.FindStringSubmatch(filename)
	if m == nil {
		return ""
	}
	author := strings.TrimSpace(m[1])
	if len(author) >= 50 || isAllUpper(author) {
		return ""
	}
	return author
}

// isAllUpper reports whether s contains at least one letter and no
// lowercase ones. A caseless prefix like "1984" is not shouting and still
// counts as an author.
func isAllUpper(s string) bool {
	hasUpper := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			hasUpper = true
		}
	}
	return hasUpper
}

// subjectsFor combines the category's default subjects with subjects
// derived from the entry's subdirectories, deduplicated in order.
func subjectsFor(info CategoryInfo, relPath string) []string {
	subjects := append([]string(nil), info.DefaultSubjects...)
	for _, part := range pathParts(relPath) {
		if sub, ok := ddcSubcategories[part]; ok {
			subjects = append(subjects, sub.Subjects...)
		}
		if named, ok := namedSubdirSubjects[part]; ok {
			subjects = append(subjects, named...)
		}
	}

	seen := make(map[string]bool, len(subjects))
	deduped := subjects[:0]
	for _, s := range subjects {
		if seen[s] {
			continue
		}
		seen[s] = true
		deduped = append(deduped, s)
	}
	return deduped
}

// ddcFromPath returns the most specific DDC number found along the
// entry's path, falling back to the category's own number.
func ddcFromPath(info CategoryInfo, relPath string) string {
	ddc := info.DDC
	for _, part := range pathParts(relPath) {
		if sub, ok := ddcSubcategories[part]; ok {
			ddc = sub.DDC
		}
	}
	return ddc
}

func pathParts(relPath string) []string {
	return strings.Split(filepath.ToSlash(relPath), "/")
}

// titleCase capitalizes the first letter of each word and lowercases the
// rest.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		runes := []rune(strings.ToLower(w))
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

// categoryShort returns the ID prefix for a category directory, e.g.
// "780_Music" becomes "780".
func categoryShort(category string) string {
	short, _, _ := strings.Cut(category, "_")
	return short
}

// categoryDDCNumber reports the DDC number encoded in a directory name,
// e.g. "781.65_Jazz" yields "781.65".
func categoryDDCNumber(dirname string) string {
	short := categoryShort(dirname)
	if leadingDigits.MatchString(short) {
		return short
	}
	return ""
}
