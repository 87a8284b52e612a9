package project

import (
	"context"
	"fmt"
	"strings"

	"github.com/beevik/etree"

	"github.com/centra-dev/centra/internal/core"
	"github.com/centra-dev/centra/internal/xmlpath"
)

// BackupSuffix is appended to a project path for its pre-mutation backup.
const BackupSuffix = ".bak"

// Rewriter strips version declarations from scanned project files.
type Rewriter struct {
	saver  *core.Saver
	backup bool
}

// NewRewriter creates a Rewriter. When backup is true the pre-mutation file
// content is written to a sibling backup before each mutated save.
func NewRewriter(saver *core.Saver, backup bool) *Rewriter {
	return &Rewriter{saver: saver, backup: backup}
}

// Rewrite removes every Version attribute and Version child element from all
// package references in the file and persists the result if anything was
// removed. Files with nothing to remove are left untouched on disk.
// It reports whether the file changed.
func (rw *Rewriter) Rewrite(ctx context.Context, file *File) (bool, error) {
	changed := false
	for _, el := range xmlpath.Descendants(file.Doc.Root(), referenceElement) {
		if stripVersion(el) {
			changed = true
		}
	}
	if !changed {
		return false, nil
	}

	// The backup must land before the mutated save for the same path.
	if rw.backup {
		if err := rw.saver.Save(ctx, file.Path+BackupSuffix, file.Raw, core.PermStandard); err != nil {
			return false, fmt.Errorf("writing backup for %q: %w", file.Path, err)
		}
	}

	out, err := xmlpath.Marshal(file.Doc)
	if err != nil {
		return false, fmt.Errorf("serializing project %q: %w", file.Path, err)
	}
	if err := rw.saver.Save(ctx, file.Path, out, core.PermStandard); err != nil {
		return false, fmt.Errorf("writing project %q: %w", file.Path, err)
	}
	return true, nil
}

// stripVersion removes version declarations in both loci from one reference
// element, reporting whether anything was removed.
func stripVersion(el *etree.Element) bool {
	removed := xmlpath.RemoveAttr(el, versionName)
	for _, child := range xmlpath.Children(el, versionName) {
		removeWithIndent(el, child)
		removed = true
	}
	return removed
}

// removeWithIndent removes a child element together with the whitespace-only
// text token preceding it, so the surrounding indentation does not pile up.
func removeWithIndent(parent, child *etree.Element) {
	idx := child.Index()
	if idx > 0 {
		if cd, ok := parent.Child[idx-1].(*etree.CharData); ok && strings.TrimSpace(cd.Data) == "" {
			parent.RemoveChildAt(idx - 1)
		}
	}
	parent.RemoveChild(child)
}
