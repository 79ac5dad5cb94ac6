package dlm

// Config is the static process configuration. It is constructed once at
// startup from a declarative config file plus the environment, then passed
// by reference into whatever needs it; nothing reads ambient global state.
// Unknown keys in the config file are ignored, missing keys keep the
// defaults below.
type Config struct {
	// LibraryRoot is the directory the catalog's file paths are relative
	// to. Defaults to DLM_LIBRARY_ROOT or the working directory.
	LibraryRoot string `yaml:"library_root"`

	JoplinToken  string `yaml:"joplin_token"`
	JoplinAPIURL string `yaml:"joplin_api_url"`
	NotebookName string `yaml:"notebook_name"`

	ReaderApps ReaderApps `yaml:"reader_apps"`

	GoogleAPIKey      string `yaml:"google_api_key"`
	OAuthClientID     string `yaml:"oauth_client_id"`
	OAuthClientSecret string `yaml:"oauth_client_secret"`
}

// ReaderApps configures the external reader applications the opener
// dispatches to. Empty values fall back to the system default opener.
type ReaderApps struct {
	// PDF is the path to the annotating PDF reader application.
	PDF string `yaml:"pdf"`

	// Ebook is the name or path of the EPUB-family reader application.
	Ebook string `yaml:"ebook"`
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() Config {
	return Config{
		JoplinAPIURL: "http://localhost:41184",
		NotebookName: "Digital Library Notes",
		ReaderApps: ReaderApps{
			PDF:   "/Applications/Skim.app",
			Ebook: "Books",
		},
	}
}
