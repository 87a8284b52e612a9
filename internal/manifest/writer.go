package manifest

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/beevik/etree"

	"github.com/centra-dev/centra/internal/core"
	"github.com/centra-dev/centra/internal/xmlpath"
)

// Default artifact file names, placed next to the solution file.
const (
	DefaultBuildPropsName = "Directory.Build.props"
	DefaultPackagesName   = "Directory.Packages.props"
)

const (
	rootElement          = "Project"
	propertyGroupElement = "PropertyGroup"
	itemGroupElement     = "ItemGroup"
	packageVersionItem   = "PackageVersion"

	// centralFlagProperty is the boolean property that switches the build
	// over to centrally managed package versions.
	centralFlagProperty = "ManagePackageVersionsCentrally"
)

// Writer persists the two centralization artifacts through the write gate.
type Writer struct {
	fsys  core.FileSystem
	saver *core.Saver
}

// NewWriter creates a Writer.
func NewWriter(fsys core.FileSystem, saver *core.Saver) *Writer {
	return &Writer{fsys: fsys, saver: saver}
}

// WriteBuildProps sets the centralization flag in the build-property
// document at path. An existing document is mutated in place with all other
// content preserved; a missing one is created with just the flag.
func (w *Writer) WriteBuildProps(ctx context.Context, path string) error {
	created := false
	doc, err := xmlpath.Load(ctx, w.fsys, path)
	switch {
	case err == nil:
		if root := doc.Root(); root.Tag != rootElement {
			return fmt.Errorf("build-property document %q: unexpected root element %q", path, root.Tag)
		}
	case errors.Is(err, fs.ErrNotExist):
		doc = etree.NewDocument()
		doc.CreateElement(rootElement)
		created = true
	default:
		return err
	}

	root := doc.Root()
	group := xmlpath.FirstChild(root, propertyGroupElement)
	if group == nil {
		group = root.CreateElement(propertyGroupElement)
	}
	flag := xmlpath.FirstChild(group, centralFlagProperty)
	if flag == nil {
		flag = group.CreateElement(centralFlagProperty)
	}
	flag.SetText("true")

	if created {
		doc.Indent(2)
	}
	out, err := xmlpath.Marshal(doc)
	if err != nil {
		return fmt.Errorf("serializing build-property document %q: %w", path, err)
	}
	if created && (len(out) == 0 || out[len(out)-1] != '\n') {
		out = append(out, '\n')
	}
	return w.saver.Save(ctx, path, out, core.PermStandard)
}

// WritePackagesManifest regenerates the package-version manifest at path
// from the map, replacing whatever was there before. Entries are ordered
// according to mode.
func (w *Writer) WritePackagesManifest(ctx context.Context, path string, vm *VersionMap, mode SortMode) error {
	doc := etree.NewDocument()
	root := doc.CreateElement(rootElement)

	items := root.CreateElement(itemGroupElement)
	for _, name := range vm.Ordered(mode) {
		version, _ := vm.Get(name)
		entry := items.CreateElement(packageVersionItem)
		entry.CreateAttr("Include", name)
		entry.CreateAttr("Version", version)
	}

	doc.Indent(2)
	out, err := xmlpath.Marshal(doc)
	if err != nil {
		return fmt.Errorf("serializing package manifest %q: %w", path, err)
	}
	if len(out) == 0 || out[len(out)-1] != '\n' {
		out = append(out, '\n')
	}
	return w.saver.Save(ctx, path, out, core.PermStandard)
}

// ReadSeed reads an existing package manifest and returns its name/version
// pairs in document order. Used to make a rerun over an already converted
// solution a no-op: when scanning finds no inline versions, the previous
// manifest is adopted verbatim.
func ReadSeed(ctx context.Context, fsys core.FileSystem, path string) (*VersionMap, error) {
	doc, err := xmlpath.Load(ctx, fsys, path)
	if err != nil {
		return nil, err
	}

	vm := NewVersionMap()
	for _, el := range xmlpath.Descendants(doc.Root(), packageVersionItem) {
		name, _ := xmlpath.Attr(el, "Include")
		version, _ := xmlpath.Attr(el, "Version")
		if name == "" || version == "" {
			continue
		}
		vm.Set(name, version)
	}
	return vm, nil
}
