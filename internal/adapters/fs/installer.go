package fs

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/obtools/internal/core/domain"
	"go.trai.ch/obtools/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ToolInstaller = (*Installer)(nil)

// Installer copies the obfuscator executable into a project.
type Installer struct {
	hasher *Hasher
}

// NewInstaller creates a new Installer.
func NewInstaller(hasher *Hasher) *Installer {
	return &Installer{hasher: hasher}
}

// Install copies src to dstDir/Obfuscar.Console.exe. An existing file with
// the same content is left alone and Install reports false.
func (i *Installer) Install(ctx context.Context, src, dstDir string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	info, err := os.Stat(src)
	if err != nil || info.IsDir() {
		return false, zerr.With(zerr.Wrap(domain.ErrObfuscatorNotFound, "cannot install obfuscator"), "path", src)
	}

	dst := filepath.Join(dstDir, domain.ConsoleExeName)
	same, err := i.hasher.SameContent(src, dst)
	if err != nil {
		return false, err
	}
	if same {
		return false, nil
	}

	if err := copyFile(src, dst); err != nil {
		return false, zerr.With(err, "path", dst)
	}
	return true, nil
}

// copyFile writes src to dst through a temporary file in dst's directory,
// so dst is either the old or the new content.
func copyFile(src, dst string) error {
	dir := filepath.Dir(dst)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.Wrap(err, "failed to create directory")
	}

	in, err := os.Open(src) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return zerr.Wrap(err, "failed to open source")
	}
	defer in.Close() //nolint:errcheck // read-only

	tmpFile, err := os.CreateTemp(dir, "obfuscar-*.tmp")
	if err != nil {
		return zerr.Wrap(err, "failed to create temp file")
	}
	tmpName := tmpFile.Name()

	// Clean up temp file on error
	defer func() {
		if _, err := os.Stat(tmpName); err == nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := io.Copy(tmpFile, in); err != nil {
		_ = tmpFile.Close()
		return zerr.Wrap(err, "failed to copy file")
	}
	if err := tmpFile.Close(); err != nil {
		return zerr.Wrap(err, "failed to close temp file")
	}
	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return zerr.Wrap(err, "failed to chmod file")
	}
	if err := os.Rename(tmpName, dst); err != nil {
		return zerr.Wrap(err, "failed to rename temp file")
	}
	return nil
}
