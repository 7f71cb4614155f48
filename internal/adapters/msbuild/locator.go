package msbuild

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"go.trai.ch/obtools/internal/adapters/xmlfile"
	"go.trai.ch/obtools/internal/core/domain"
	"go.trai.ch/obtools/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ProjectLocator = (*Locator)(nil)

// slnProject matches a project entry of a Visual Studio solution file:
// Project("{type}") = "Name", "rel\path.csproj", "{guid}".
var slnProject = regexp.MustCompile(`^Project\("\{[^}]*\}"\)\s*=\s*"[^"]*",\s*"([^"]+)"`)

// Locator implements ports.ProjectLocator on the file system.
type Locator struct{}

// NewLocator creates a new Locator.
func NewLocator() *Locator {
	return &Locator{}
}

// Locate resolves the project to operate on. Resolution order:
//  1. hint, when given (a project file, a directory, or a solution file)
//  2. a project file in cwd
//  3. the first project of the nearest enclosing solution
func (l *Locator) Locate(cwd, hint string) (string, error) {
	if hint != "" {
		return l.locateHint(cwd, hint)
	}

	if p := firstProjectIn(cwd); p != "" {
		return p, nil
	}

	if dir := FindSolutionDir(cwd); dir != "" {
		for _, sln := range solutionFiles(dir) {
			if p, err := firstSolutionProject(sln); err == nil && p != "" {
				return p, nil
			}
		}
	}

	return "", zerr.With(zerr.Wrap(domain.ErrNoActiveProject, "no project file or solution found"), "cwd", cwd)
}

func (l *Locator) locateHint(cwd, hint string) (string, error) {
	path := hint
	if !filepath.IsAbs(path) {
		path = filepath.Join(cwd, path)
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to resolve project"), "path", path)
	}

	if info.IsDir() {
		if p := firstProjectIn(path); p != "" {
			return p, nil
		}
		return "", zerr.With(zerr.Wrap(domain.ErrNoActiveProject, "no project file in directory"), "dir", path)
	}

	if isSolutionFile(path) {
		p, err := firstSolutionProject(path)
		if err != nil {
			return "", err
		}
		if p == "" {
			return "", zerr.With(zerr.Wrap(domain.ErrNoActiveProject, "solution lists no existing project"), "solution", path)
		}
		return p, nil
	}

	return path, nil
}

func firstProjectIn(dir string) string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return ""
	}
	var found []string
	for _, e := range entries {
		if !e.IsDir() && IsProjectFile(e.Name()) {
			found = append(found, filepath.Join(dir, e.Name()))
		}
	}
	if len(found) == 0 {
		return ""
	}
	slices.Sort(found)
	return found[0]
}

func isSolutionFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".sln" || ext == ".slnx"
}

// firstSolutionProject returns the first existing .NET project listed in sln.
func firstSolutionProject(sln string) (string, error) {
	if strings.EqualFold(filepath.Ext(sln), ".slnx") {
		return firstXMLSolutionProject(sln)
	}

	f, err := os.Open(sln) //nolint:gosec // path discovered by walking up from cwd
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to open solution"), "path", sln)
	}
	defer f.Close() //nolint:errcheck // read-only

	dir := filepath.Dir(sln)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		m := slnProject.FindStringSubmatch(strings.TrimSpace(scanner.Text()))
		if m == nil || !IsProjectFile(m[1]) {
			continue
		}
		p := filepath.Join(dir, domain.NativePath(m[1]))
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to read solution"), "path", sln)
	}
	return "", nil
}

// firstXMLSolutionProject handles the XML solution format:
// <Solution><Project Path="rel\path.csproj" /></Solution>.
func firstXMLSolutionProject(sln string) (string, error) {
	doc, err := xmlfile.Read(sln)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to read solution"), "path", sln)
	}

	dir := filepath.Dir(sln)
	for _, el := range doc.FindElements("//Project") {
		rel := el.SelectAttrValue("Path", "")
		if !IsProjectFile(rel) {
			continue
		}
		p := filepath.Join(dir, domain.NativePath(rel))
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", nil
}
