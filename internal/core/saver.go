package core

import (
	"context"
	"os"
)

// Saver is the single write gate every persisting operation goes through.
// In preview mode Save records the intent and touches nothing; there is no
// other code path that mutates the filesystem.
type Saver struct {
	fsys    FileSystem
	preview bool

	// Skipped lists paths that would have been written in preview mode.
	Skipped []string
}

// NewSaver creates a Saver over fsys. When preview is true every Save call
// becomes a no-op.
func NewSaver(fsys FileSystem, preview bool) *Saver {
	return &Saver{fsys: fsys, preview: preview}
}

// Preview reports whether the saver is in preview mode.
func (s *Saver) Preview() bool {
	return s.preview
}

// Save writes data to path, creating parent directories as needed.
func (s *Saver) Save(ctx context.Context, path string, data []byte, perm os.FileMode) error {
	if s.preview {
		s.Skipped = append(s.Skipped, path)
		return nil
	}
	if err := EnsureParentDir(ctx, s.fsys, path); err != nil {
		return err
	}
	return s.fsys.WriteFile(ctx, path, data, perm)
}
