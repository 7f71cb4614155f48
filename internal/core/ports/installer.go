package ports

import "context"

// ToolInstaller copies the obfuscator executable into a project.
//
//go:generate go run go.uber.org/mock/mockgen -source=installer.go -destination=mocks/mock_installer.go -package=mocks
type ToolInstaller interface {
	// Install copies src into dstDir. It reports whether a copy happened;
	// an identical existing file is left alone.
	Install(ctx context.Context, src, dstDir string) (bool, error)
}
