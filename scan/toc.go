package scan

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// tocSpecialDirs are listed after the classified categories.
var tocSpecialDirs = []string{"Personal", "My_Research"}

// GenerateTOC renders a markdown table of contents for the library tree.
// Category headings carry their DDC number in brackets so the file stays
// greppable by classification.
func GenerateTOC(root string) (string, error) {
	dirs, err := os.ReadDir(root)
	if err != nil {
		return "", fmt.Errorf("failed to read library root %s: %w", root, err)
	}

	special := make(map[string]bool, len(tocSpecialDirs))
	for _, d := range tocSpecialDirs {
		special[d] = true
	}

	var b strings.Builder
	b.WriteString("# Digital Library - Table of Contents\n")
	b.WriteString("\n*Organized using Dewey Decimal Classification (DDC)*\n")

	for _, d := range dirs {
		if !d.IsDir() || strings.HasPrefix(d.Name(), ".") || special[d.Name()] {
			continue
		}

		display := strings.ReplaceAll(d.Name(), "_", " ")
		if ddc := categoryDDCNumber(d.Name()); ddc != "" {
			fmt.Fprintf(&b, "\n## [%s] %s\n", ddc, display)
		} else {
			fmt.Fprintf(&b, "\n## %s\n", display)
		}

		if err := writeCategorySection(&b, root, d.Name()); err != nil {
			return "", err
		}
	}

	for _, name := range tocSpecialDirs {
		if info, err := os.Stat(filepath.Join(root, name)); err != nil || !info.IsDir() {
			continue
		}
		fmt.Fprintf(&b, "\n## %s\n", strings.ReplaceAll(name, "_", " "))
		if err := writeFileLinks(&b, root, name); err != nil {
			return "", err
		}
	}

	return b.String(), nil
}

// WriteTOC renders the table of contents and writes it to TOC.md at the
// library root.
func WriteTOC(root string) error {
	content, err := GenerateTOC(root)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(root, "TOC.md"), []byte(content), 0o644)
}

// writeCategorySection lists a category's files, grouped under a heading
// per subdirectory when the category has any.
func writeCategorySection(b *strings.Builder, root, category string) error {
	entries, err := os.ReadDir(filepath.Join(root, category))
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", category, err)
	}

	var subdirs []string
	for _, e := range entries {
		if e.IsDir() {
			subdirs = append(subdirs, e.Name())
		}
	}
	sort.Strings(subdirs)

	if len(subdirs) == 0 {
		return writeFileLinks(b, root, category)
	}
	for _, sub := range subdirs {
		fmt.Fprintf(b, "\n### %s\n", strings.ReplaceAll(sub, "_", " "))
		if err := writeFileLinks(b, root, filepath.Join(category, sub)); err != nil {
			return err
		}
	}
	return nil
}

// writeFileLinks lists the files directly under dir as markdown links
// with space-encoded relative paths.
func writeFileLinks(b *strings.Builder, root, dir string) error {
	entries, err := os.ReadDir(filepath.Join(root, dir))
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", dir, err)
	}
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		rel := filepath.ToSlash(filepath.Join(dir, e.Name()))
		encoded := strings.ReplaceAll(rel, " ", "%20")
		fmt.Fprintf(b, "- [%s](%s)\n", e.Name(), encoded)
	}
	return nil
}
