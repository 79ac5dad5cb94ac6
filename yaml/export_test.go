package yaml

// NewTestLoader builds a Loader with a fixed environment and user config
// location.
func NewTestLoader(getenv func(string) string, userConfigPath string) *Loader {
	l := NewLoader()
	l.getenv = getenv
	l.userConfig = func() (string, error) { return userConfigPath, nil }
	return l
}
