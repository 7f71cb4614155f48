package obfuscar_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/obtools/internal/adapters/obfuscar"
	"go.trai.ch/obtools/internal/core/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "obfuscar.xml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestStore_ReadBase_Missing(t *testing.T) {
	cfg, err := obfuscar.NewStore().ReadBase(filepath.Join(t.TempDir(), "obfuscar.xml"))
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultBaseConfig(), cfg)
}

func TestStore_ReadBase(t *testing.T) {
	path := writeConfig(t, `<?xml version="1.0"?>
<Obfuscator>
  <Var name="HideStrings" value="false" />
  <Var name="UseUnicodeNames" value="True" />
  <Var name="KeyFile" value="key.snk" />
  <Var name="RenameFields" value="maybe" />
  <AssemblySearchPath path="..\lib\net45" />
  <Module file="$(InPath)\App.dll">
    <SkipNamespace name="App.Models" />
    <SkipType name="App.Program" />
    <SkipNamespace name="App.Dto" />
  </Module>
</Obfuscator>
`)

	cfg, err := obfuscar.NewStore().ReadBase(path)
	require.NoError(t, err)

	assert.False(t, cfg.Options.Get(domain.OptHideStrings))
	assert.True(t, cfg.Options.Get(domain.OptUseUnicodeNames))
	assert.True(t, cfg.Options.Get(domain.OptRenameFields), "unparsable values keep the default")
	assert.True(t, cfg.Options.Get(domain.OptKeepPublicAPI), "absent options keep the default")
	assert.NotContains(t, cfg.Options, domain.Option("KeyFile"))
	assert.Equal(t, []string{`..\lib\net45`}, cfg.AssemblySearchPaths)
	assert.Equal(t, `$(InPath)\App.dll`, cfg.Module)
	assert.Equal(t, []string{"App.Models", "App.Dto"}, cfg.NamespacesToSkip)
}

func TestStore_ReadBase_Malformed(t *testing.T) {
	path := writeConfig(t, `<Configuration />`)

	_, err := obfuscar.NewStore().ReadBase(path)
	require.ErrorIs(t, err, domain.ErrMalformedConfig)

	err = obfuscar.NewStore().WriteBase(path, domain.DefaultBaseConfig())
	require.ErrorIs(t, err, domain.ErrMalformedConfig)
}

func TestStore_WriteBase_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "_Obfuscar", "obfuscar.xml")
	store := obfuscar.NewStore()

	want := domain.DefaultBaseConfig()
	want.Options[domain.OptHideStrings] = false
	want.Options[domain.OptAnalyzeXaml] = true
	want.Module = `$(InPath)\App.dll`
	want.AssemblySearchPaths = []string{`..\lib`, `C:\refs`}
	want.NamespacesToSkip = []string{"App.Models"}

	require.NoError(t, store.WriteBase(path, want))

	got, err := store.ReadBase(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestStore_WriteBase_NamespacesWithoutModule(t *testing.T) {
	path := filepath.Join(t.TempDir(), "obfuscar.xml")
	store := obfuscar.NewStore()

	want := domain.DefaultBaseConfig()
	want.NamespacesToSkip = []string{"App.Models"}
	require.NoError(t, store.WriteBase(path, want))

	got, err := store.ReadBase(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "  <Module>\n    <SkipNamespace name=\"App.Models\"/>\n  </Module>\n")

	// The module file arrives later and keeps the namespaces.
	got.Module = `$(InPath)\App.dll`
	require.NoError(t, store.WriteBase(path, got))

	got, err = store.ReadBase(path)
	require.NoError(t, err)
	assert.Equal(t, `$(InPath)\App.dll`, got.Module)
	assert.Equal(t, []string{"App.Models"}, got.NamespacesToSkip)
}

func TestStore_WriteBase_Layout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "obfuscar.xml")
	cfg := domain.DefaultBaseConfig()
	cfg.Module = `$(InPath)\App.dll`
	cfg.AssemblySearchPaths = []string{`..\lib`}
	cfg.NamespacesToSkip = []string{"App.Models", "App.Dto"}

	require.NoError(t, obfuscar.NewStore().WriteBase(path, cfg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)

	assert.True(t, strings.HasPrefix(content, "<?xml version=\"1.0\" encoding=\"utf-8\"?>\n<Obfuscator>\n  <Var name=\"AnalyzeXaml\" value=\"false\"/>\n"))
	assert.Contains(t, content, "  <Var name=\"UseUnicodeNames\" value=\"false\"/>\n  <AssemblySearchPath path=\"..\\lib\"/>\n")
	assert.True(t, strings.HasSuffix(content,
		"  <Module file=\"$(InPath)\\App.dll\">\n    <SkipNamespace name=\"App.Models\"/>\n    <SkipNamespace name=\"App.Dto\"/>\n  </Module>\n</Obfuscator>\n"),
		content)
}

func TestStore_WriteBase_Merges(t *testing.T) {
	path := writeConfig(t, `<?xml version="1.0"?>
<Obfuscator>
  <Var name="KeyFile" value="key.snk" />
  <Var name="HideStrings" value="true" />
  <AssemblySearchPath path="C:\custom" />
  <Module file="$(InPath)\Old.dll">
    <SkipNamespace name="Old.Ns" />
    <SkipType name="App.Program" />
  </Module>
  <Module file="$(InPath)\Other.dll" />
</Obfuscator>
`)
	store := obfuscar.NewStore()

	cfg, err := store.ReadBase(path)
	require.NoError(t, err)
	cfg.Options[domain.OptHideStrings] = false
	cfg.Module = `$(InPath)\App.dll`
	cfg.NamespacesToSkip = []string{"App.Models"}
	cfg.AssemblySearchPaths = append(cfg.AssemblySearchPaths, `..\lib`)
	require.NoError(t, store.WriteBase(path, cfg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)

	assert.Contains(t, content, `<Var name="KeyFile" value="key.snk"`)
	assert.Contains(t, content, `<Var name="HideStrings" value="false"`)
	assert.Equal(t, 1, strings.Count(content, `name="HideStrings"`))
	assert.Contains(t, content, `<AssemblySearchPath path="C:\custom"`)
	assert.Contains(t, content, `<AssemblySearchPath path="..\lib"`)
	assert.Contains(t, content, `<SkipType name="App.Program"`)
	assert.Contains(t, content, `<Module file="$(InPath)\Other.dll"`)
	assert.NotContains(t, content, "Old.Ns")
	assert.NotContains(t, content, "Old.dll")

	got, err := store.ReadBase(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"App.Models"}, got.NamespacesToSkip)
	assert.Equal(t, []string{`C:\custom`, `..\lib`}, got.AssemblySearchPaths)
}

func TestStore_WriteBase_ReplacesSearchPaths(t *testing.T) {
	path := writeConfig(t, `<Obfuscator>
  <AssemblySearchPath path="C:\stale" />
  <AssemblySearchPath path="..\lib" />
  <Module file="$(InPath)\App.dll" />
</Obfuscator>
`)
	store := obfuscar.NewStore()

	cfg, err := store.ReadBase(path)
	require.NoError(t, err)
	cfg.AssemblySearchPaths = []string{`..\lib`, `..\packages`}
	require.NoError(t, store.WriteBase(path, cfg))

	got, err := store.ReadBase(path)
	require.NoError(t, err)
	assert.Equal(t, []string{`..\lib`, `..\packages`}, got.AssemblySearchPaths)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "stale")
}

func TestStore_WriteBase_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "obfuscar.xml")
	store := obfuscar.NewStore()
	cfg := domain.DefaultBaseConfig()
	cfg.Module = `$(InPath)\App.dll`
	cfg.NamespacesToSkip = []string{"A", "B"}

	require.NoError(t, store.WriteBase(path, cfg))
	first, err := os.ReadFile(path)
	require.NoError(t, err)

	require.NoError(t, store.WriteBase(path, cfg))
	second, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
}

func TestStore_Run_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "_Obfuscar", "obfuscar_Release_Any_CPU.xml")
	store := obfuscar.NewStore()

	want := &domain.RunConfig{
		InPath:         `bin\Release\net8.0`,
		OutPath:        `bin\Release\net8.0\Out`,
		BaseConfigPath: `_Obfuscar\obfuscar.xml`,
	}
	require.NoError(t, store.WriteRun(path, want))

	got, err := store.ReadRun(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `<?xml version="1.0" encoding="utf-8"?>
<Obfuscator>
  <Var name="InPath" value="bin\Release\net8.0"/>
  <Var name="OutPath" value="bin\Release\net8.0\Out"/>
  <Include path="_Obfuscar\obfuscar.xml"/>
</Obfuscator>
`, string(data))
}

func TestStore_ReadRun_Missing(t *testing.T) {
	cfg, err := obfuscar.NewStore().ReadRun(filepath.Join(t.TempDir(), "none.xml"))
	require.NoError(t, err)
	assert.Equal(t, &domain.RunConfig{}, cfg)
}

func TestStore_WriteRun_UpdatesInPlace(t *testing.T) {
	path := writeConfig(t, `<Obfuscator>
  <Var name="InPath" value="old" />
  <Var name="LogFile" value="map.xml" />
  <Include path="base.xml" />
</Obfuscator>
`)
	store := obfuscar.NewStore()

	require.NoError(t, store.WriteRun(path, &domain.RunConfig{InPath: "new", OutPath: `new\Out`, BaseConfigPath: "base.xml"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `<Obfuscator>
  <Var name="InPath" value="new"/>
  <Var name="LogFile" value="map.xml"/>
  <Var name="OutPath" value="new\Out"/>
  <Include path="base.xml"/>
</Obfuscator>
`, string(data))
}
