// Package integrator keeps a project's post-build steps and obfuscator
// configs in line with the requested obfuscation state.
package integrator

import (
	"context"
	"path/filepath"

	"go.trai.ch/obtools/internal/core/domain"
	"go.trai.ch/obtools/internal/core/ports"
	"go.trai.ch/zerr"
)

// Deps are the adapters an Integrator drives.
type Deps struct {
	Synchronizer ports.TargetSynchronizer
	Store        ports.ConfigStore
	Installer    ports.ToolInstaller
	Logger       ports.Logger
}

// Integrator operates on one loaded project.
type Integrator struct {
	project *domain.Project
	deps    Deps
}

// New creates an Integrator for project.
func New(project *domain.Project, deps Deps) *Integrator {
	return &Integrator{project: project, deps: deps}
}

// Paths lists the locations an Integrator reads and writes.
type Paths struct {
	ProjectFile string
	ProjectDir  string
	SolutionDir string
	ObfuscarDir string
	Executable  string
	BaseConfig  string
}

// Project returns the project the Integrator operates on.
func (i *Integrator) Project() *domain.Project {
	return i.project
}

// Paths returns the project's paths.
func (i *Integrator) Paths() Paths {
	return Paths{
		ProjectFile: i.project.File,
		ProjectDir:  i.project.Dir(),
		SolutionDir: i.project.SolutionDir,
		ObfuscarDir: i.project.ObfuscarDir(),
		Executable:  filepath.Join(i.project.ObfuscarDir(), domain.ConsoleExeName),
		BaseConfig:  i.project.BaseConfigFile(),
	}
}

// IsObfuscated reports whether the project holds a step for key.
func (i *Integrator) IsObfuscated(key domain.StepKey) (bool, error) {
	ok, err := i.deps.Synchronizer.HasStep(i.project.File, i.project.Target(), key)
	if err != nil {
		return false, zerr.With(zerr.Wrap(err, "failed to inspect project"), "key", key.String())
	}
	return ok, nil
}

// Status returns one row per build configuration of the project.
func (i *Integrator) Status() ([]domain.Row, error) {
	rows := make([]domain.Row, 0, len(i.project.Configurations))
	for _, c := range i.project.Configurations {
		enabled, err := i.IsObfuscated(c.Key())
		if err != nil {
			return nil, err
		}
		rows = append(rows, domain.Row{Key: c.Key(), Enabled: enabled})
	}
	return rows, nil
}

// AddCommand writes the run config for key and puts its post-build step.
// A key naming no configuration of the project is skipped with a warning;
// the returned bool reports whether anything was done.
func (i *Integrator) AddCommand(key domain.StepKey) (bool, error) {
	c, ok := i.project.Configuration(key.Configuration, key.Platform)
	if !ok {
		i.deps.Logger.Warn("configuration is not defined", "key", key.String(), "project", i.project.Name)
		return false, nil
	}

	if err := i.WriteRunConfig(c); err != nil {
		return false, err
	}

	cmd := domain.Command{
		Key:           key,
		ConfigXMLName: domain.RunConfigFileName(key),
		OutputPath:    domain.MSBuildPath(i.project.OutputPath(c)),
	}
	if err := i.deps.Synchronizer.PutStep(i.project.File, i.project.Target(), cmd.Step()); err != nil {
		return false, zerr.With(zerr.Wrap(err, "failed to add post-build step"), "key", key.String())
	}
	return true, nil
}

// RemoveCommand removes the post-build step for key. The run config is kept.
func (i *Integrator) RemoveCommand(key domain.StepKey) error {
	if err := i.deps.Synchronizer.RemoveStep(i.project.File, i.project.Target(), key); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to remove post-build step"), "key", key.String())
	}
	return nil
}

// WriteRunConfig writes the per-configuration config for c.
func (i *Integrator) WriteRunConfig(c domain.BuildConfiguration) error {
	out := domain.MSBuildPath(i.project.OutputPath(c))
	path := i.project.RunConfigFile(c.Key())

	cfg, err := i.deps.Store.ReadRun(path)
	if err != nil {
		return zerr.Wrap(err, "failed to read run config")
	}
	cfg.InPath = out
	cfg.OutPath = out + `\Out`
	cfg.BaseConfigPath = domain.RelativePath(i.project.BaseConfigFile(), i.project.Dir())

	if err := i.deps.Store.WriteRun(path, cfg); err != nil {
		return zerr.Wrap(err, "failed to write run config")
	}
	return nil
}

// BaseConfig reads the project's base config.
func (i *Integrator) BaseConfig() (*domain.BaseConfig, error) {
	cfg, err := i.deps.Store.ReadBase(i.project.BaseConfigFile())
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read base config")
	}
	return cfg, nil
}

// UpdateBaseConfig reads the base config, applies fn and writes it back.
func (i *Integrator) UpdateBaseConfig(fn func(*domain.BaseConfig)) error {
	cfg, err := i.BaseConfig()
	if err != nil {
		return err
	}
	fn(cfg)
	if err := i.deps.Store.WriteBase(i.project.BaseConfigFile(), cfg); err != nil {
		return zerr.Wrap(err, "failed to write base config")
	}
	return nil
}

// WriteBaseConfig points the base config at the project's output assembly
// and its reference directories. References under the solution directory
// are written relative to the project directory, others as absolute paths.
// Both use MSBuild separators.
func (i *Integrator) WriteBaseConfig() error {
	return i.UpdateBaseConfig(func(cfg *domain.BaseConfig) {
		cfg.Module = `$(InPath)\` + i.project.OutputFileName()
		cfg.AssemblySearchPaths = cfg.AssemblySearchPaths[:0]
		for _, dir := range i.project.ProbePaths() {
			p := domain.MSBuildPath(dir)
			if domain.IsUnder(dir, i.project.SolutionDir) {
				p = domain.RelativePath(dir, i.project.Dir())
			}
			cfg.AssemblySearchPaths = append(cfg.AssemblySearchPaths, p)
		}
	})
}

// AddBaseConfig installs the obfuscator from src and writes the base config.
func (i *Integrator) AddBaseConfig(ctx context.Context, src string) error {
	copied, err := i.deps.Installer.Install(ctx, src, i.project.ObfuscarDir())
	if err != nil {
		return zerr.Wrap(err, "failed to install obfuscator")
	}
	if copied {
		i.deps.Logger.Info("installed "+domain.ConsoleExeName, "path", i.project.ObfuscarDir())
	}
	return i.WriteBaseConfig()
}
