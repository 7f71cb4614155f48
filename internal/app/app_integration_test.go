package app_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/obtools/internal/adapters/config"
	"go.trai.ch/obtools/internal/adapters/fs"
	"go.trai.ch/obtools/internal/adapters/logger"
	"go.trai.ch/obtools/internal/adapters/msbuild"
	"go.trai.ch/obtools/internal/adapters/obfuscar"
	"go.trai.ch/obtools/internal/adapters/telemetry"
	"go.trai.ch/obtools/internal/app"
	"go.trai.ch/obtools/internal/core/domain"
	"go.trai.ch/obtools/internal/engine/integrator"
)

const appProject = `<Project Sdk="Microsoft.NET.Sdk">

  <PropertyGroup>
    <OutputType>Exe</OutputType>
    <TargetFramework>net8.0</TargetFramework>
  </PropertyGroup>

  <ItemGroup>
    <Reference Include="Vendor">
      <HintPath>..\..\lib\Vendor.dll</HintPath>
    </Reference>
  </ItemGroup>

</Project>
`

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	}
}

func newRealApp(out *bytes.Buffer) *app.App {
	log := logger.New()
	log.SetOutput(out)
	return app.New(
		msbuild.NewLocator(),
		msbuild.NewProjectLoader(),
		config.NewLoader(),
		telemetry.NewNoOp(),
		log,
		integrator.Deps{
			Synchronizer: msbuild.NewSynchronizer(msbuild.NewLogRefresher(log)),
			Store:        obfuscar.NewStore(),
			Installer:    fs.NewInstaller(fs.NewHasher()),
			Logger:       log,
		},
	)
}

func TestApp_EndToEnd(t *testing.T) {
	t.Setenv(domain.ObfuscatorEnvVar, "")
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"All.sln":                    "Microsoft Visual Studio Solution File, Format Version 12.00\n",
		"obtools.yaml":               "version: \"1\"\nobfuscator: tools/Obfuscar.Console.exe\n",
		"tools/Obfuscar.Console.exe": "MZ obfuscar",
		"lib/Vendor.dll":             "MZ vendor",
		"src/App/App.csproj":         appProject,
	})

	var out bytes.Buffer
	a := newRealApp(&out)
	ctx := context.Background()
	scope := app.Scope{
		Dir:          root,
		Project:      filepath.Join("src", "App"),
		SettingsFile: filepath.Join(root, "obtools.yaml"),
	}
	projectFile := filepath.Join(root, "src", "App", "App.csproj")
	obfuscarDir := filepath.Join(root, "src", "App", "_Obfuscar")

	require.NoError(t, a.Enable(ctx, scope, []string{"Release"}))

	data, err := os.ReadFile(projectFile)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, `<Target Name="PostBuild" AfterTargets="PostBuildEvent">`)
	assert.Contains(t, content, `Command="echo Release@@Any CPU&#xD;&#xA;`)
	assert.Equal(t, 1, strings.Count(content, "<Exec "))
	assert.Contains(t, out.String(), "App.csproj: updated")

	exe, err := os.ReadFile(filepath.Join(obfuscarDir, "Obfuscar.Console.exe"))
	require.NoError(t, err)
	assert.Equal(t, "MZ obfuscar", string(exe))

	run, err := obfuscar.NewStore().ReadRun(filepath.Join(obfuscarDir, "obfuscar_Release_Any_CPU.xml"))
	require.NoError(t, err)
	assert.Equal(t, &domain.RunConfig{
		InPath:         `bin\Release\net8.0`,
		OutPath:        `bin\Release\net8.0\Out`,
		BaseConfigPath: `_Obfuscar\obfuscar.xml`,
	}, run)

	base, err := obfuscar.NewStore().ReadBase(filepath.Join(obfuscarDir, "obfuscar.xml"))
	require.NoError(t, err)
	assert.Equal(t, `$(InPath)\App.exe`, base.Module)
	assert.Equal(t, []string{`..\..\lib`}, base.AssemblySearchPaths)

	report, err := a.Status(ctx, scope)
	require.NoError(t, err)
	assert.Equal(t, []domain.Row{
		{Key: domain.StepKey{Configuration: "Debug", Platform: "Any CPU"}},
		{Key: domain.StepKey{Configuration: "Release", Platform: "Any CPU"}, Enabled: true},
	}, report.Rows)

	// Enabling again rewrites nothing.
	before, err := os.Stat(projectFile)
	require.NoError(t, err)
	out.Reset()
	require.NoError(t, a.Enable(ctx, scope, []string{"Release"}))
	after, err := os.Stat(projectFile)
	require.NoError(t, err)
	assert.Equal(t, before.ModTime(), after.ModTime())
	assert.NotContains(t, out.String(), "App.csproj: updated")

	require.NoError(t, a.Disable(ctx, scope, nil))
	data, err = os.ReadFile(projectFile)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "<Exec ")
	assert.Contains(t, string(data), `<Target Name="PostBuild" AfterTargets="PostBuildEvent">`)
}

func TestApp_Apply_EndToEnd(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"Obfuscar.Console.exe": "MZ obfuscar",
		"App.csproj":           appProject,
		"plan.yaml": `options:
  HideStrings: false
  UseKoreanNames: true
skipNamespaces:
  - App.Models
configurations:
  - configuration: Debug
    platform: AnyCPU
    enabled: true
  - configuration: Release
    enabled: false
`,
	})
	t.Setenv(domain.ObfuscatorEnvVar, filepath.Join(root, "Obfuscar.Console.exe"))

	var out bytes.Buffer
	a := newRealApp(&out)
	scope := app.Scope{Dir: root}

	require.NoError(t, a.Apply(context.Background(), scope, filepath.Join(root, "plan.yaml")))

	report, err := a.ShowSettings(context.Background(), scope)
	require.NoError(t, err)
	assert.False(t, report.Config.Options.Get(domain.OptHideStrings))
	assert.True(t, report.Config.Options.Get(domain.OptUseKoreanNames))
	assert.Equal(t, []string{"App.Models"}, report.Config.NamespacesToSkip)
	assert.Equal(t, `$(InPath)\App.exe`, report.Config.Module)
	assert.Equal(t, filepath.Join(root, "_Obfuscar", "obfuscar.xml"), report.Paths.BaseConfig)

	status, err := a.Status(context.Background(), scope)
	require.NoError(t, err)
	assert.Equal(t, []domain.Row{
		{Key: domain.StepKey{Configuration: "Debug", Platform: "Any CPU"}, Enabled: true},
		{Key: domain.StepKey{Configuration: "Release", Platform: "Any CPU"}},
	}, status.Rows)
}

func TestApp_SetSettingsBeforeEnable_EndToEnd(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"Obfuscar.Console.exe": "MZ obfuscar",
		"App.csproj":           appProject,
	})
	t.Setenv(domain.ObfuscatorEnvVar, filepath.Join(root, "Obfuscar.Console.exe"))

	var out bytes.Buffer
	a := newRealApp(&out)
	ctx := context.Background()
	scope := app.Scope{Dir: root}

	require.NoError(t, a.SetSettings(ctx, scope, app.SettingsChange{NamespacesToSkip: []string{"App.Models", "App.Dto"}}))
	require.NoError(t, a.Enable(ctx, scope, []string{"Release"}))

	base, err := obfuscar.NewStore().ReadBase(filepath.Join(root, "_Obfuscar", "obfuscar.xml"))
	require.NoError(t, err)
	assert.Equal(t, `$(InPath)\App.exe`, base.Module)
	assert.Equal(t, []string{"App.Models", "App.Dto"}, base.NamespacesToSkip)
}

func TestApp_UnsupportedProject_EndToEnd(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"App.csproj": "<Package/>\n",
	})

	var out bytes.Buffer
	err := newRealApp(&out).Enable(context.Background(), app.Scope{Dir: root}, nil)
	require.ErrorIs(t, err, domain.ErrUnsupportedProject)

	data, err := os.ReadFile(filepath.Join(root, "App.csproj"))
	require.NoError(t, err)
	assert.Equal(t, "<Package/>\n", string(data))
	assert.NoDirExists(t, filepath.Join(root, "_Obfuscar"))
}
