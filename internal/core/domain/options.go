package domain

import "slices"

// Option names a boolean obfuscator setting. The value is the Obfuscar
// variable name used in the config file.
type Option string

// Obfuscar boolean settings exposed by the tool.
const (
	OptKeepPublicAPI       Option = "KeepPublicApi"
	OptHidePrivateAPI      Option = "HidePrivateApi"
	OptRenameProperties    Option = "RenameProperties"
	OptRenameEvents        Option = "RenameEvents"
	OptRenameFields        Option = "RenameFields"
	OptReuseNames          Option = "ReuseNames"
	OptUseUnicodeNames     Option = "UseUnicodeNames"
	OptUseKoreanNames      Option = "UseKoreanNames"
	OptHideStrings         Option = "HideStrings"
	OptOptimizeMethods     Option = "OptimizeMethods"
	OptSuppressIldasm      Option = "SuppressIldasm"
	OptMarkedOnly          Option = "MarkedOnly"
	OptRegenerateDebugInfo Option = "RegenerateDebugInfo"
	OptAnalyzeXaml         Option = "AnalyzeXaml"
)

var defaultOptions = map[Option]bool{
	OptKeepPublicAPI:       true,
	OptHidePrivateAPI:      true,
	OptRenameProperties:    true,
	OptRenameEvents:        true,
	OptRenameFields:        true,
	OptReuseNames:          true,
	OptUseUnicodeNames:     false,
	OptUseKoreanNames:      false,
	OptHideStrings:         true,
	OptOptimizeMethods:     true,
	OptSuppressIldasm:      true,
	OptMarkedOnly:          false,
	OptRegenerateDebugInfo: false,
	OptAnalyzeXaml:         false,
}

// AllOptions returns every known option in a stable order.
func AllOptions() []Option {
	opts := make([]Option, 0, len(defaultOptions))
	for o := range defaultOptions {
		opts = append(opts, o)
	}
	slices.Sort(opts)
	return opts
}

// IsKnown reports whether o is one of the options owned by the tool.
func (o Option) IsKnown() bool {
	_, ok := defaultOptions[o]
	return ok
}

// Options maps each option to its value.
type Options map[Option]bool

// DefaultOptions returns the obfuscator's defaults for every known option.
func DefaultOptions() Options {
	opts := make(Options, len(defaultOptions))
	for o, v := range defaultOptions {
		opts[o] = v
	}
	return opts
}

// Get returns the option's value, falling back to its default.
func (o Options) Get(opt Option) bool {
	if v, ok := o[opt]; ok {
		return v
	}
	return defaultOptions[opt]
}

// BaseConfig is the project-wide obfuscator config.
type BaseConfig struct {
	Options             Options
	NamespacesToSkip    []string
	Module              string
	AssemblySearchPaths []string
}

// DefaultBaseConfig returns a base config with default options and nothing else.
func DefaultBaseConfig() *BaseConfig {
	return &BaseConfig{Options: DefaultOptions()}
}

// RunConfig is the per configuration/platform obfuscator config.
type RunConfig struct {
	InPath         string
	OutPath        string
	BaseConfigPath string
}
