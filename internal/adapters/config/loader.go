// Package config loads the tool settings and settings plans from YAML.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/obtools/internal/core/domain"
	"go.trai.ch/obtools/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.SettingsLoader = (*Loader)(nil)

// Loader implements ports.SettingsLoader.
type Loader struct {
	executable func() (string, error)
	getenv     func(string) string
}

// NewLoader creates a Loader using the running executable's location for
// the default obfuscator.
func NewLoader() *Loader {
	return &Loader{executable: os.Executable, getenv: os.Getenv}
}

// Load reads the settings at path. An empty path or a missing file yields
// defaults. Relative paths in the file are resolved against its directory.
// The OBTOOLS_OBFUSCATOR environment variable overrides the obfuscator.
func (l *Loader) Load(path string) (*domain.Settings, error) {
	var file Settingsfile
	base := ""

	if path != "" {
		data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, zerr.With(zerr.Wrap(err, "failed to read settings file"), "path", path)
		default:
			if err := yaml.Unmarshal(data, &file); err != nil {
				return nil, zerr.With(zerr.Wrap(err, "failed to parse settings file"), "path", path)
			}
			base = filepath.Dir(path)
		}
	}

	if file.Version != "" && file.Version != SettingsVersion {
		return nil, zerr.With(zerr.With(zerr.Wrap(domain.ErrInvalidSettings, "unsupported settings version"),
			"version", file.Version), "path", path)
	}

	settings := &domain.Settings{
		Obfuscator:  resolve(base, file.Obfuscator),
		SolutionDir: resolve(base, file.Solution),
	}

	if env := strings.TrimSpace(l.getenv(domain.ObfuscatorEnvVar)); env != "" {
		settings.Obfuscator = env
	}

	if settings.Obfuscator == "" {
		exe, err := l.executable()
		if err != nil {
			return nil, zerr.Wrap(err, "failed to locate executable")
		}
		settings.Obfuscator = filepath.Join(filepath.Dir(exe), "files", domain.ConsoleExeName)
	}

	return settings, nil
}

// LoadPlan reads a settings plan from path.
func (l *Loader) LoadPlan(path string) (*domain.Plan, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read plan file"), "path", path)
	}

	var file Planfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse plan file"), "path", path)
	}

	plan := &domain.Plan{Options: domain.Options{}}

	for name, value := range file.Options {
		opt := domain.Option(name)
		if !opt.IsKnown() {
			return nil, zerr.With(zerr.Wrap(domain.ErrInvalidSettings, "unknown option"), "option", name)
		}
		plan.Options[opt] = value
	}

	for _, ns := range file.SkipNamespaces {
		if ns = strings.TrimSpace(ns); ns != "" {
			plan.NamespacesToSkip = append(plan.NamespacesToSkip, ns)
		}
	}

	for i, row := range file.Configurations {
		cfg := strings.TrimSpace(row.Configuration)
		if cfg == "" {
			return nil, zerr.With(zerr.Wrap(domain.ErrInvalidSettings, "configuration name is required"), "row", i)
		}
		platform := strings.TrimSpace(row.Platform)
		if platform == "" {
			platform = domain.AnyCPU
		}
		plan.Rows = append(plan.Rows, domain.PlanRow{
			Key:     domain.StepKey{Configuration: cfg, Platform: domain.PlatformDisplay(platform)},
			Enabled: row.Enabled,
		})
	}

	return plan, nil
}

func resolve(base, p string) string {
	p = strings.TrimSpace(p)
	if p == "" || base == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}
