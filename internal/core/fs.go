package core

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
)

// File permission constants used across the codebase.
const (
	// PermOwnerRW is owner read/write (0600), used for generated documents.
	PermOwnerRW os.FileMode = 0o600

	// PermStandard is the conventional 0644 for files shared with other tools.
	PermStandard os.FileMode = 0o644
)

// FileSystem abstracts filesystem access so services can run against the real
// OS or an in-memory mock in tests. All methods honor context cancellation.
type FileSystem interface {
	ReadFile(ctx context.Context, path string) ([]byte, error)
	WriteFile(ctx context.Context, path string, data []byte, perm os.FileMode) error
	Stat(ctx context.Context, path string) (fs.FileInfo, error)
	MkdirAll(ctx context.Context, path string, perm os.FileMode) error
}

// osFileSystem is the production FileSystem backed by the os package.
type osFileSystem struct{}

// NewOSFileSystem returns a FileSystem that operates on the real filesystem.
func NewOSFileSystem() FileSystem {
	return &osFileSystem{}
}

func (o *osFileSystem) ReadFile(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.ReadFile(path)
}

func (o *osFileSystem) WriteFile(ctx context.Context, path string, data []byte, perm os.FileMode) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return os.WriteFile(path, data, perm)
}

func (o *osFileSystem) Stat(ctx context.Context, path string) (fs.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.Stat(path)
}

func (o *osFileSystem) MkdirAll(ctx context.Context, path string, perm os.FileMode) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return os.MkdirAll(path, perm)
}

// EnsureParentDir creates the parent directory of path if it does not exist.
func EnsureParentDir(ctx context.Context, fsys FileSystem, path string) error {
	dir := filepath.Dir(path)
	if dir == "" || dir == "." {
		return nil
	}
	return fsys.MkdirAll(ctx, dir, 0o755)
}
