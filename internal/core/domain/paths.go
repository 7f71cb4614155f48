package domain

import (
	"path/filepath"
	"strings"
)

// MSBuildPath converts a path to the backslash form used inside MSBuild and
// Obfuscar files.
func MSBuildPath(p string) string {
	return strings.ReplaceAll(filepath.ToSlash(p), "/", `\`)
}

// NativePath converts an MSBuild path to the host's separator.
func NativePath(p string) string {
	return filepath.FromSlash(strings.ReplaceAll(p, `\`, "/"))
}

// TrimSeparator removes trailing path separators of either style.
func TrimSeparator(p string) string {
	return strings.TrimRight(p, `\/`)
}

// RelativePath returns target relative to the base directory, in MSBuild
// form. If no relative path exists the target is returned as-is.
func RelativePath(target, base string) string {
	rel, err := filepath.Rel(base, target)
	if err != nil {
		return MSBuildPath(target)
	}
	return MSBuildPath(rel)
}

// IsUnder reports whether path lies inside dir.
func IsUnder(path, dir string) bool {
	if dir == "" {
		return false
	}
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
