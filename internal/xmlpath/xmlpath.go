// Package xmlpath provides the small set of XML primitives the conversion
// engine needs: load, select by local name, and serialize. Selection is
// namespace-agnostic on purpose — real project files frequently declare a
// default namespace, and elements must be found regardless.
//
// Documents are handled with etree rather than encoding/xml because updates
// must preserve comments, attribute order, and unknown structure verbatim;
// a marshal/unmarshal round trip through struct types cannot do that.
package xmlpath

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/beevik/etree"

	"github.com/centra-dev/centra/internal/core"
)

// ErrParse is wrapped into errors returned for malformed XML input.
var ErrParse = errors.New("malformed XML")

// Load reads and parses an XML document from the filesystem.
// A missing file surfaces the filesystem error (fs.ErrNotExist preserved);
// malformed content surfaces an error wrapping ErrParse.
func Load(ctx context.Context, fsys core.FileSystem, path string) (*etree.Document, error) {
	data, err := fsys.ReadFile(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %q: %w", path, err)
	}
	return doc, nil
}

// Parse parses raw XML bytes into a document.
func Parse(data []byte) (*etree.Document, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if doc.Root() == nil {
		return nil, fmt.Errorf("%w: no root element", ErrParse)
	}
	return doc, nil
}

// Marshal serializes a document back to bytes. Token order, comments, and
// attribute order survive a Parse/Marshal round trip untouched.
func Marshal(doc *etree.Document) ([]byte, error) {
	return doc.WriteToBytes()
}

// LocalName returns the element tag without any namespace prefix.
func LocalName(el *etree.Element) string {
	return el.Tag
}

// Children returns the direct child elements of parent whose local name
// matches name, in document order.
func Children(parent *etree.Element, name string) []*etree.Element {
	var out []*etree.Element
	for _, child := range parent.ChildElements() {
		if child.Tag == name {
			out = append(out, child)
		}
	}
	return out
}

// FirstChild returns the first direct child element with the given local
// name, or nil.
func FirstChild(parent *etree.Element, name string) *etree.Element {
	for _, child := range parent.ChildElements() {
		if child.Tag == name {
			return child
		}
	}
	return nil
}

// Descendants returns every element under root (excluding root itself)
// whose local name matches, in document order.
func Descendants(root *etree.Element, name string) []*etree.Element {
	var out []*etree.Element
	var walk func(el *etree.Element)
	walk = func(el *etree.Element) {
		for _, child := range el.ChildElements() {
			if child.Tag == name {
				out = append(out, child)
			}
			walk(child)
		}
	}
	walk(root)
	return out
}

// Attr returns the value of the attribute with the given local name,
// ignoring any namespace prefix, and whether it was present.
func Attr(el *etree.Element, name string) (string, bool) {
	for _, a := range el.Attr {
		if a.Key == name {
			return a.Value, true
		}
	}
	return "", false
}

// RemoveAttr removes every attribute with the given local name regardless of
// namespace prefix. It reports whether anything was removed.
func RemoveAttr(el *etree.Element, name string) bool {
	removed := false
	kept := el.Attr[:0]
	for _, a := range el.Attr {
		if a.Key == name {
			removed = true
			continue
		}
		kept = append(kept, a)
	}
	el.Attr = kept
	return removed
}

// ElementText returns the trimmed text content of el.
func ElementText(el *etree.Element) string {
	return strings.TrimSpace(el.Text())
}
