package domain

// Settings holds the tool's own configuration.
type Settings struct {
	// Obfuscator is the executable copied into each project's _Obfuscar folder.
	Obfuscator string
	// SolutionDir overrides solution discovery when set.
	SolutionDir string
}

// Plan is a full settings-form submission: option values, namespaces to
// skip, and the desired enablement of each configuration row.
type Plan struct {
	Options          Options
	NamespacesToSkip []string
	Rows             []PlanRow
}

// PlanRow is the desired state of one configuration/platform pair.
type PlanRow struct {
	Key     StepKey
	Enabled bool
}

// Row is the observed state of one configuration/platform pair.
type Row struct {
	Key     StepKey
	Enabled bool
}
