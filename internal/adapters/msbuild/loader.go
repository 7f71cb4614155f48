package msbuild

import (
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/beevik/etree"
	"go.trai.ch/obtools/internal/adapters/xmlfile"
	"go.trai.ch/obtools/internal/core/domain"
	"go.trai.ch/obtools/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ProjectLoader = (*ProjectLoader)(nil)

var (
	pairCondition   = regexp.MustCompile(`'\$\(Configuration\)\|\$\(Platform\)'\s*==\s*'([^|']+)\|([^']+)'`)
	configCondition = regexp.MustCompile(`'\$\(Configuration\)'\s*==\s*'([^']+)'`)
)

// projectExtensions lists the project file types the tool accepts.
var projectExtensions = []string{".csproj", ".vbproj", ".fsproj"}

// IsProjectFile reports whether path has a supported project extension.
func IsProjectFile(path string) bool {
	return slices.Contains(projectExtensions, strings.ToLower(filepath.Ext(path)))
}

// ProjectLoader implements ports.ProjectLoader by reading the project file
// directly.
type ProjectLoader struct{}

// NewProjectLoader creates a new ProjectLoader.
func NewProjectLoader() *ProjectLoader {
	return &ProjectLoader{}
}

// properties is a flat view of PropertyGroup values.
type properties map[string]string

// configProps holds properties scoped to a configuration, and optionally a platform.
type configProps struct {
	config   string
	platform string
	props    properties
}

// Load reads the project at path.
func (l *ProjectLoader) Load(path string) (*domain.Project, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to resolve project path"), "path", path)
	}
	if !IsProjectFile(abs) {
		return nil, zerr.With(zerr.Wrap(domain.ErrUnsupportedProject, "unknown project extension"), "path", abs)
	}

	doc, err := xmlfile.Read(abs)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read project file"), "path", abs)
	}
	root := doc.SelectElement("Project")
	if root == nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrUnsupportedProject, "missing Project root"), "path", abs)
	}

	global, scoped := collectProperties(root)
	sdk := root.SelectAttrValue("Sdk", "") != ""

	tfm := firstFramework(global)
	kind := domain.KindSDK
	switch {
	case global["TargetFrameworkVersion"] != "":
		kind = domain.KindFramework
	case tfm != "":
		if domain.IsFrameworkMoniker(tfm) {
			kind = domain.KindFramework
		}
	case !sdk:
		kind = domain.KindFramework
	}

	name := strings.TrimSuffix(filepath.Base(abs), filepath.Ext(abs))
	p := &domain.Project{
		Name:         name,
		File:         abs,
		Kind:         kind,
		SolutionDir:  FindSolutionDir(filepath.Dir(abs)),
		AssemblyName: global["AssemblyName"],
		OutputType:   global["OutputType"],
		References:   collectReferences(root, filepath.Dir(abs)),
	}

	for _, pair := range configurationPairs(global, scoped, sdk) {
		p.Configurations = append(p.Configurations, resolveConfiguration(pair[0], pair[1], tfm, sdk, global, scoped))
	}

	return p, nil
}

func collectProperties(root *etree.Element) (properties, []configProps) {
	global := properties{}
	var scoped []configProps

	for _, group := range root.SelectElements("PropertyGroup") {
		cond := group.SelectAttrValue("Condition", "")
		target := global
		if cond != "" {
			cp := configProps{props: properties{}}
			if m := pairCondition.FindStringSubmatch(cond); m != nil {
				cp.config, cp.platform = strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
			} else if m := configCondition.FindStringSubmatch(cond); m != nil {
				cp.config = strings.TrimSpace(m[1])
			} else {
				continue
			}
			scoped = append(scoped, cp)
			target = cp.props
		}

		for _, el := range group.ChildElements() {
			// A conditioned property only applies in some builds; defaults
			// such as Configuration itself carry one.
			if el.SelectAttrValue("Condition", "") != "" && cond == "" {
				if _, ok := target[el.Tag]; ok {
					continue
				}
			}
			target[el.Tag] = strings.TrimSpace(el.Text())
		}
	}
	return global, scoped
}

func firstFramework(global properties) string {
	if tf := global["TargetFramework"]; tf != "" {
		return tf
	}
	if tfs := global["TargetFrameworks"]; tfs != "" {
		first, _, _ := strings.Cut(tfs, ";")
		return strings.TrimSpace(first)
	}
	return ""
}

// configurationPairs returns (configuration, MSBuild platform) pairs in
// declaration order.
func configurationPairs(global properties, scoped []configProps, sdk bool) [][2]string {
	var pairs [][2]string
	add := func(c, p string) {
		pair := [2]string{c, p}
		if !slices.Contains(pairs, pair) {
			pairs = append(pairs, pair)
		}
	}

	if sdk || len(scoped) == 0 {
		configs := splitList(global["Configurations"], "Debug;Release")
		platforms := splitList(global["Platforms"], domain.AnyCPUProperty)
		for _, c := range configs {
			for _, p := range platforms {
				add(c, p)
			}
		}
	}

	for _, cp := range scoped {
		if cp.platform != "" {
			add(cp.config, cp.platform)
		}
	}

	if len(pairs) == 0 {
		add("Debug", domain.AnyCPUProperty)
		add("Release", domain.AnyCPUProperty)
	}
	return pairs
}

func splitList(value, fallback string) []string {
	if strings.TrimSpace(value) == "" {
		value = fallback
	}
	var out []string
	for _, v := range strings.Split(value, ";") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func resolveConfiguration(config, platform, tfm string, sdk bool, global properties, scoped []configProps) domain.BuildConfiguration {
	lookup := func(key string) string {
		value := global[key]
		for _, cp := range scoped {
			if cp.config != config || (cp.platform != "" && cp.platform != platform) {
				continue
			}
			if v, ok := cp.props[key]; ok {
				value = v
			}
		}
		return value
	}

	expand := func(v string) string {
		r := strings.NewReplacer(
			"$(Configuration)", config,
			"$(Platform)", platform,
			"$(TargetFramework)", tfm,
		)
		return r.Replace(v)
	}

	var platformDir string
	if platform != domain.AnyCPUProperty {
		platformDir = platform + `\`
	}
	var frameworkDir string
	if sdk && tfm != "" && !strings.EqualFold(lookup("AppendTargetFrameworkToOutputPath"), "false") {
		frameworkDir = tfm + `\`
	}

	output := lookup("OutputPath")
	if output == "" {
		output = `bin\` + platformDir + config + `\` + frameworkDir
	}

	intermediate := lookup("IntermediateOutputPath")
	if intermediate == "" {
		base := lookup("BaseIntermediateOutputPath")
		if base == "" {
			base = `obj\`
		}
		intermediate = withSeparator(base) + platformDir + config + `\` + frameworkDir
	}

	return domain.BuildConfiguration{
		Name:             config,
		Platform:         domain.PlatformDisplay(platform),
		OutputPath:       domain.TrimSeparator(expand(output)),
		IntermediatePath: domain.TrimSeparator(expand(intermediate)),
	}
}

func withSeparator(p string) string {
	if strings.HasSuffix(p, `\`) || strings.HasSuffix(p, "/") {
		return p
	}
	return p + `\`
}

func collectReferences(root *etree.Element, dir string) []string {
	var refs []string
	for _, group := range root.SelectElements("ItemGroup") {
		for _, ref := range group.SelectElements("Reference") {
			hint := ref.SelectElement("HintPath")
			if hint == nil {
				continue
			}
			path := strings.TrimSpace(hint.Text())
			if path == "" {
				continue
			}
			path = domain.NativePath(path)
			if !filepath.IsAbs(path) {
				path = filepath.Join(dir, path)
			}
			refs = append(refs, filepath.Clean(path))
		}
	}
	return refs
}

// FindSolutionDir walks up from dir and returns the first directory holding
// a solution file, or "" when there is none.
func FindSolutionDir(dir string) string {
	for {
		if sln := solutionFiles(dir); len(sln) > 0 {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

func solutionFiles(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if isSolutionFile(e.Name()) {
			out = append(out, filepath.Join(dir, e.Name()))
		}
	}
	slices.Sort(out)
	return out
}
