// Package project reads and rewrites XML project files. The scanner yields
// every package reference in document order together with where its version
// lives (attribute or child element); the rewriter strips those versions so
// the centralized manifest becomes the only version source.
package project

import (
	"context"
	"fmt"
	"strings"

	"github.com/beevik/etree"

	"github.com/centra-dev/centra/internal/core"
	"github.com/centra-dev/centra/internal/xmlpath"
)

// Locus identifies where a reference declares its version.
type Locus int

const (
	// LocusNone means the reference declares no version at all.
	LocusNone Locus = iota

	// LocusAttribute means the version sits in a Version attribute.
	LocusAttribute

	// LocusChildElement means the version sits in a nested Version element.
	LocusChildElement
)

// String returns a human-readable representation of the locus.
func (l Locus) String() string {
	switch l {
	case LocusAttribute:
		return "attribute"
	case LocusChildElement:
		return "child element"
	default:
		return "none"
	}
}

const (
	referenceElement = "PackageReference"
	versionName      = "Version"
)

// Reference is one package declaration found in a project file. The same
// name may appear more than once, within or across projects.
type Reference struct {
	// Name is the package identifier, never empty.
	Name string

	// Version is the raw declared version; empty when Locus is LocusNone.
	Version string

	// Locus records where the version was declared so the rewriter can
	// remove exactly what the scanner found.
	Locus Locus
}

// HasVersion reports whether the reference declares a version.
func (r Reference) HasVersion() bool {
	return r.Locus != LocusNone
}

// File is one scanned project file, held only for the duration of a run.
type File struct {
	// Path is the absolute project file path.
	Path string

	// Raw is the exact on-disk content at scan time, kept for backups.
	Raw []byte

	// Doc is the parsed document the rewriter mutates.
	Doc *etree.Document

	// Refs lists the package references in document order.
	Refs []Reference
}

// HasVersionedRefs reports whether any reference in the file declares a version.
func (f *File) HasVersionedRefs() bool {
	for _, r := range f.Refs {
		if r.HasVersion() {
			return true
		}
	}
	return false
}

// Scan loads one project file and extracts its package references.
// Elements without a usable name are skipped silently; a missing or
// malformed file is an error.
func Scan(ctx context.Context, fsys core.FileSystem, path string) (*File, error) {
	raw, err := fsys.ReadFile(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("reading project %q: %w", path, err)
	}

	doc, err := xmlpath.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parsing project %q: %w", path, err)
	}

	file := &File{Path: path, Raw: raw, Doc: doc}
	for _, el := range xmlpath.Descendants(doc.Root(), referenceElement) {
		ref, ok := referenceFromElement(el)
		if !ok {
			continue
		}
		file.Refs = append(file.Refs, ref)
	}

	return file, nil
}

// referenceFromElement extracts a Reference from a PackageReference element.
// It returns ok=false for elements without a name, which are ignored.
func referenceFromElement(el *etree.Element) (Reference, bool) {
	name, _ := xmlpath.Attr(el, "Include")
	if strings.TrimSpace(name) == "" {
		// Update identifies a reference too, e.g. when the version is
		// overridden for an implicitly included package.
		name, _ = xmlpath.Attr(el, "Update")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return Reference{}, false
	}

	if v, ok := xmlpath.Attr(el, versionName); ok {
		return Reference{Name: name, Version: v, Locus: LocusAttribute}, true
	}
	if child := xmlpath.FirstChild(el, versionName); child != nil {
		return Reference{Name: name, Version: xmlpath.ElementText(child), Locus: LocusChildElement}, true
	}
	return Reference{Name: name, Locus: LocusNone}, true
}
