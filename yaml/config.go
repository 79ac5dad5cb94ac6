// Package yaml loads the process configuration from a YAML file, layered
// over built-in defaults and a few environment variables.
package yaml

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/utrumsit/dlm"
)

// Loader resolves and reads config files. The lookup functions are
// injectable for tests.
type Loader struct {
	getenv     func(string) string
	userConfig func() (string, error)
	workingDir func() (string, error)
}

// NewLoader creates a Loader backed by the real environment.
func NewLoader() *Loader {
	return &Loader{
		getenv: os.Getenv,
		userConfig: func() (string, error) {
			dir, err := os.UserConfigDir()
			if err != nil {
				return "", err
			}
			return filepath.Join(dir, "dlm", "config.yml"), nil
		},
		workingDir: os.Getwd,
	}
}

// Load builds the configuration. Precedence, lowest to highest: built-in
// defaults, the first existing config file (the user config directory,
// then the library root), then the environment (DLM_LIBRARY_ROOT and
// GOOGLE_API_KEY). A missing config file is not an error.
func (l *Loader) Load() (*dlm.Config, error) {
	cfg := dlm.DefaultConfig()

	root := l.getenv("DLM_LIBRARY_ROOT")
	if root == "" {
		wd, err := l.workingDir()
		if err != nil {
			return nil, fmt.Errorf("failed to determine working directory: %w", err)
		}
		root = wd
	}
	cfg.LibraryRoot = root

	path, err := l.findConfigFile(root)
	if err != nil {
		return nil, err
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, dlm.Errorf(dlm.EINVALID, "config file %s is not valid YAML: %v", path, err)
		}
	}

	// The environment wins over the file so a shell session can point at
	// a different library without editing anything.
	if env := l.getenv("DLM_LIBRARY_ROOT"); env != "" {
		cfg.LibraryRoot = env
	}
	if cfg.LibraryRoot == "" {
		cfg.LibraryRoot = root
	}
	if key := l.getenv("GOOGLE_API_KEY"); key != "" {
		cfg.GoogleAPIKey = key
	}

	return &cfg, nil
}

// findConfigFile returns the first existing config file, or "" when
// neither location has one.
func (l *Loader) findConfigFile(libraryRoot string) (string, error) {
	var candidates []string
	if user, err := l.userConfig(); err == nil {
		candidates = append(candidates, user)
	}
	candidates = append(candidates, filepath.Join(libraryRoot, "config.yml"))

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", nil
}
