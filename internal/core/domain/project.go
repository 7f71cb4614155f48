package domain

import (
	"path/filepath"
	"strings"
)

// BuildConfiguration is one configuration/platform row of a project.
type BuildConfiguration struct {
	Name     string
	Platform string
	// OutputPath is the bin directory relative to the project, e.g. bin\Release.
	OutputPath string
	// IntermediatePath is the obj directory relative to the project, e.g. obj\Release.
	IntermediatePath string
}

// Key returns the step key of the configuration.
func (c BuildConfiguration) Key() StepKey {
	return StepKey{Configuration: c.Name, Platform: c.Platform}
}

// Project is a snapshot of a .NET project as needed by the integration.
type Project struct {
	Name string
	// File is the absolute path of the project file.
	File string
	Kind ProjectKind
	// SolutionDir is the directory of the owning solution, if any.
	SolutionDir    string
	AssemblyName   string
	OutputType     string
	Configurations []BuildConfiguration
	// References are absolute paths of referenced assemblies.
	References []string
}

// Dir returns the project directory.
func (p *Project) Dir() string {
	return filepath.Dir(p.File)
}

// ObfuscarDir returns the directory holding the obfuscator and its configs.
func (p *Project) ObfuscarDir() string {
	return filepath.Join(p.Dir(), ObfuscarDirName)
}

// BaseConfigFile returns the path of the base obfuscator config.
func (p *Project) BaseConfigFile() string {
	return filepath.Join(p.ObfuscarDir(), BaseConfigFileName)
}

// RunConfigFile returns the path of the per-configuration config for key.
func (p *Project) RunConfigFile(key StepKey) string {
	return filepath.Join(p.ObfuscarDir(), RunConfigFileName(key))
}

// Target returns the build target used for this project.
func (p *Project) Target() TargetSpec {
	return TargetSpecFor(p.Kind)
}

// OutputFileName returns the file name of the built assembly.
func (p *Project) OutputFileName() string {
	name := p.AssemblyName
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(p.File), filepath.Ext(p.File))
	}
	switch strings.ToLower(p.OutputType) {
	case "exe", "winexe":
		return name + ".exe"
	default:
		return name + ".dll"
	}
}

// Configuration returns the configuration matching name and platform.
func (p *Project) Configuration(name, platform string) (BuildConfiguration, bool) {
	for _, c := range p.Configurations {
		if c.Name == name && c.Platform == platform {
			return c, true
		}
	}
	return BuildConfiguration{}, false
}

// OutputPath returns the directory the obfuscator reads from for c. Legacy
// projects are obfuscated after compile, before the copy to bin.
func (p *Project) OutputPath(c BuildConfiguration) string {
	if p.Kind == KindFramework {
		return TrimSeparator(c.IntermediatePath)
	}
	return TrimSeparator(c.OutputPath)
}

// ProbePaths returns the distinct directories of the project's references.
func (p *Project) ProbePaths() []string {
	var dirs []string
	seen := make(map[string]bool)
	for _, ref := range p.References {
		if ref == "" {
			continue
		}
		dir := filepath.Dir(ref)
		if seen[dir] {
			continue
		}
		seen[dir] = true
		dirs = append(dirs, dir)
	}
	return dirs
}

// IsFrameworkMoniker reports whether a target framework names .NET Framework.
// Both the long form (".NETFramework,Version=v4.8") and short TFMs ("net48")
// are recognized.
func IsFrameworkMoniker(tfm string) bool {
	tfm = strings.TrimSpace(tfm)
	if strings.HasPrefix(strings.ToLower(tfm), ".netframework") {
		return true
	}
	rest, ok := strings.CutPrefix(strings.ToLower(tfm), "net")
	if !ok || rest == "" {
		return false
	}
	for _, r := range rest {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
