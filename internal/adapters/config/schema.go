package config

// SettingsVersion is the only supported value of the version key.
const SettingsVersion = "1"

// Settingsfile represents the structure of obtools.yaml.
type Settingsfile struct {
	Version    string `yaml:"version"`
	Obfuscator string `yaml:"obfuscator"`
	Solution   string `yaml:"solution"`
}

// Planfile represents a settings plan passed to the apply command.
type Planfile struct {
	Options        map[string]bool `yaml:"options"`
	SkipNamespaces []string        `yaml:"skipNamespaces"`
	Configurations []RowDTO        `yaml:"configurations"`
}

// RowDTO is the desired state of one configuration/platform pair.
type RowDTO struct {
	Configuration string `yaml:"configuration"`
	Platform      string `yaml:"platform"`
	Enabled       bool   `yaml:"enabled"`
}
