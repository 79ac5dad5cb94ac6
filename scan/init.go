package scan

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/utrumsit/dlm"
)

// ddcFolders are the top-level directories a fresh library starts with.
var ddcFolders = []string{
	"000_Computer_Science",
	"100_Philosophy",
	"200_Religion",
	"300_Social_Sciences",
	"400_Language",
	"500_Science",
	"600_Technology",
	"700_Arts",
	"800_Literature",
	"900_History",
}

// inboxDir holds unsorted acquisitions until they are classified.
const inboxDir = "_Inbox"

const configTemplate = `# Digital library configuration.
# Values left empty fall back to built-in defaults.

library_root: %q

# Joplin note export. Enable the web clipper service in Joplin and paste
# its authorization token here.
joplin_token: ""
joplin_api_url: "http://localhost:41184"
notebook_name: "Digital Library Notes"

# Reader applications.
reader_apps:
  pdf: "/Applications/Skim.app"
  ebook: "Books"

# Reading assistant. An API key from Google AI Studio.
google_api_key: ""
`

// InitLibrary scaffolds a library at root: the ten DDC top-level
// directories, an inbox for unsorted files, and a config template. An
// existing config file is never overwritten. Returns ENOTFOUND when root
// does not exist.
func InitLibrary(root string) error {
	if info, err := os.Stat(root); err != nil || !info.IsDir() {
		return dlm.Errorf(dlm.ENOTFOUND, "directory %s does not exist", root)
	}

	for _, name := range append(append([]string(nil), ddcFolders...), inboxDir) {
		if err := os.Mkdir(filepath.Join(root, name), 0o755); err != nil && !os.IsExist(err) {
			return fmt.Errorf("failed to create %s: %w", name, err)
		}
	}

	configPath := filepath.Join(root, "config.yml")
	if _, err := os.Stat(configPath); err == nil {
		return nil
	}
	content := fmt.Sprintf(configTemplate, root)
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write config template: %w", err)
	}
	return nil
}
