// Package app implements the application layer for obtools.
package app

import (
	"context"
	"fmt"

	"go.trai.ch/obtools/internal/core/domain"
	"go.trai.ch/obtools/internal/core/ports"
	"go.trai.ch/obtools/internal/engine/integrator"
	"go.trai.ch/zerr"
)

// Scope selects the project and tool settings an operation works on.
type Scope struct {
	// Dir is the directory the project is resolved from.
	Dir string
	// Project is an optional project, solution or directory hint.
	Project string
	// SettingsFile is the optional tool settings file.
	SettingsFile string
}

// App represents the main application logic.
type App struct {
	locator   ports.ProjectLocator
	loader    ports.ProjectLoader
	settings  ports.SettingsLoader
	telemetry ports.Telemetry
	logger    ports.Logger
	deps      integrator.Deps
}

// New creates a new App instance.
func New(
	locator ports.ProjectLocator,
	loader ports.ProjectLoader,
	settings ports.SettingsLoader,
	telemetry ports.Telemetry,
	logger ports.Logger,
	deps integrator.Deps,
) *App {
	return &App{
		locator:   locator,
		loader:    loader,
		settings:  settings,
		telemetry: telemetry,
		logger:    logger,
		deps:      deps,
	}
}

// StatusReport is the obfuscation state of a project.
type StatusReport struct {
	Project *domain.Project
	Rows    []domain.Row
}

// SettingsReport is the base config of a project and where it lives.
type SettingsReport struct {
	Paths  integrator.Paths
	Config *domain.BaseConfig
}

// SettingsChange is a partial update of a project's base config.
type SettingsChange struct {
	// Options holds only the options to change.
	Options domain.Options
	// NamespacesToSkip replaces the skipped namespaces when non-nil.
	NamespacesToSkip []string
}

// Status reports which configurations of the project are obfuscated.
func (a *App) Status(_ context.Context, scope Scope) (*StatusReport, error) {
	integ, _, err := a.open(scope)
	if err != nil {
		return nil, err
	}

	rows, err := integ.Status()
	if err != nil {
		return nil, err
	}
	return &StatusReport{Project: integ.Project(), Rows: rows}, nil
}

// Enable adds the obfuscation step for every configuration matched by
// selectors, or for all configurations when none are given. When a step
// was added, the obfuscator is installed and the base config written.
func (a *App) Enable(ctx context.Context, scope Scope, selectors []string) error {
	integ, settings, err := a.open(scope)
	if err != nil {
		return err
	}

	added := false
	for _, key := range a.selectKeys(integ.Project(), selectors) {
		ok, err := a.record(ctx, integ.Project(), domain.ChangeEnabled, key, func(context.Context) (bool, error) {
			return integ.AddCommand(key)
		})
		if err != nil {
			return err
		}
		added = added || ok
	}

	if !added {
		return nil
	}
	return integ.AddBaseConfig(ctx, settings.Obfuscator)
}

// Disable removes the obfuscation step for every configuration matched by
// selectors, or for all configurations when none are given.
func (a *App) Disable(ctx context.Context, scope Scope, selectors []string) error {
	integ, _, err := a.open(scope)
	if err != nil {
		return err
	}

	for _, key := range a.selectKeys(integ.Project(), selectors) {
		_, err := a.record(ctx, integ.Project(), domain.ChangeDisabled, key, func(context.Context) (bool, error) {
			return removeStep(integ, key)
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// ShowSettings returns the project's base config.
func (a *App) ShowSettings(_ context.Context, scope Scope) (*SettingsReport, error) {
	integ, _, err := a.open(scope)
	if err != nil {
		return nil, err
	}

	cfg, err := integ.BaseConfig()
	if err != nil {
		return nil, err
	}
	return &SettingsReport{Paths: integ.Paths(), Config: cfg}, nil
}

// SetSettings applies change to the project's base config.
func (a *App) SetSettings(_ context.Context, scope Scope, change SettingsChange) error {
	integ, _, err := a.open(scope)
	if err != nil {
		return err
	}
	return integ.UpdateBaseConfig(change.apply)
}

// Apply writes a full settings plan: options first, then the steps of every
// row, then the base config when any row is enabled.
func (a *App) Apply(ctx context.Context, scope Scope, planFile string) error {
	plan, err := a.settings.LoadPlan(planFile)
	if err != nil {
		return zerr.Wrap(err, "failed to load plan")
	}

	integ, settings, err := a.open(scope)
	if err != nil {
		return err
	}

	change := SettingsChange{Options: plan.Options, NamespacesToSkip: plan.NamespacesToSkip}
	if err := integ.UpdateBaseConfig(change.apply); err != nil {
		return err
	}

	anyEnabled := false
	for _, row := range plan.Rows {
		change := domain.ChangeDisabled
		if row.Enabled {
			change = domain.ChangeEnabled
			anyEnabled = true
		}
		_, err := a.record(ctx, integ.Project(), change, row.Key, func(context.Context) (bool, error) {
			if row.Enabled {
				return integ.AddCommand(row.Key)
			}
			return removeStep(integ, row.Key)
		})
		if err != nil {
			return err
		}
	}

	if !anyEnabled {
		return nil
	}
	return integ.AddBaseConfig(ctx, settings.Obfuscator)
}

// removeStep removes the step of key and reports whether one existed.
func removeStep(integ *integrator.Integrator, key domain.StepKey) (bool, error) {
	enabled, err := integ.IsObfuscated(key)
	if err != nil || !enabled {
		return false, err
	}
	return true, integ.RemoveCommand(key)
}

func (c SettingsChange) apply(cfg *domain.BaseConfig) {
	if cfg.Options == nil {
		cfg.Options = domain.DefaultOptions()
	}
	for opt, v := range c.Options {
		cfg.Options[opt] = v
	}
	if c.NamespacesToSkip != nil {
		cfg.NamespacesToSkip = c.NamespacesToSkip
	}
}

// open resolves the scope to an Integrator and the tool settings.
func (a *App) open(scope Scope) (*integrator.Integrator, *domain.Settings, error) {
	settings, err := a.settings.Load(scope.SettingsFile)
	if err != nil {
		return nil, nil, zerr.Wrap(err, "failed to load settings")
	}

	path, err := a.locator.Locate(scope.Dir, scope.Project)
	if err != nil {
		return nil, nil, zerr.Wrap(err, "failed to locate project")
	}

	project, err := a.loader.Load(path)
	if err != nil {
		return nil, nil, zerr.Wrap(err, "failed to load project")
	}
	if settings.SolutionDir != "" {
		project.SolutionDir = settings.SolutionDir
	}

	return integrator.New(project, a.deps), settings, nil
}

// selectKeys returns the keys of the configurations matched by selectors,
// in project order. Selectors matching nothing are reported as warnings.
func (a *App) selectKeys(project *domain.Project, selectors []string) []domain.StepKey {
	var keys []domain.StepKey
	if len(selectors) == 0 {
		for _, c := range project.Configurations {
			keys = append(keys, c.Key())
		}
		return keys
	}

	matched := make(map[string]bool, len(selectors))
	for _, c := range project.Configurations {
		key := c.Key()
		for _, sel := range selectors {
			if key.Matches(sel) {
				matched[sel] = true
				keys = append(keys, key)
				break
			}
		}
	}
	for _, sel := range selectors {
		if !matched[sel] {
			a.logger.Warn("no configuration matches", "selector", sel, "project", project.Name)
		}
	}
	return keys
}

// record runs fn inside a telemetry vertex named after the project and key.
// A run reporting no change is marked cached.
func (a *App) record(
	ctx context.Context,
	project *domain.Project,
	change domain.Change,
	key domain.StepKey,
	fn func(context.Context) (bool, error),
) (bool, error) {
	ctx, vertex := a.telemetry.Record(ctx, fmt.Sprintf("%s %s", project.Name, key))
	changed, err := fn(ctx)
	switch {
	case err != nil:
		vertex.Log(domain.LogLevelError, err.Error())
	case changed:
		vertex.Log(domain.LogLevelInfo, fmt.Sprintf("%s %s", change, key))
	default:
		vertex.Log(domain.LogLevelDebug, fmt.Sprintf("%s %s", domain.ChangeSkipped, key))
		vertex.Cached()
	}
	vertex.Complete(err)
	return changed, err
}
