package config

// NewLoaderWith creates a Loader with stubbed process lookups.
func NewLoaderWith(executable func() (string, error), getenv func(string) string) *Loader {
	return &Loader{executable: executable, getenv: getenv}
}
