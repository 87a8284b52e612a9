// Package manifest produces and reads the centralization artifacts: the
// build-property document that switches central package management on, and
// the package-version manifest listing one entry per dependency.
package manifest

import (
	"sort"
	"strings"
)

// SortMode selects the ordering of entries in the package manifest.
type SortMode string

const (
	// SortByName orders entries alphabetically by package name,
	// case-insensitively.
	SortByName SortMode = "name"

	// SortByDiscovery keeps the order in which packages were first seen.
	SortByDiscovery SortMode = "discovery"
)

// IsValid returns true if the sort mode is known.
func (m SortMode) IsValid() bool {
	return m == SortByName || m == SortByDiscovery
}

// ParseSortMode converts a string to a SortMode, defaulting to SortByName.
func ParseSortMode(s string) SortMode {
	m := SortMode(strings.ToLower(strings.TrimSpace(s)))
	if m.IsValid() {
		return m
	}
	return SortByName
}

// VersionMap is an insertion-ordered mapping from package name to resolved
// version. Names are unique keys; insertion order is the first time a name
// was recorded, which SortByDiscovery output depends on.
type VersionMap struct {
	names    []string
	versions map[string]string
}

// NewVersionMap creates an empty VersionMap.
func NewVersionMap() *VersionMap {
	return &VersionMap{versions: make(map[string]string)}
}

// Set records or replaces the version for name. The first Set for a name
// fixes its position in discovery order; later calls only change the value.
func (m *VersionMap) Set(name, version string) {
	if _, ok := m.versions[name]; !ok {
		m.names = append(m.names, name)
	}
	m.versions[name] = version
}

// Get returns the version recorded for name, if any.
func (m *VersionMap) Get(name string) (string, bool) {
	v, ok := m.versions[name]
	return v, ok
}

// Len returns the number of entries.
func (m *VersionMap) Len() int {
	return len(m.names)
}

// IsEmpty reports whether the map has no entries.
func (m *VersionMap) IsEmpty() bool {
	return len(m.names) == 0
}

// Compact removes every entry whose version is empty, preserving order.
// A finalized map never carries versionless entries.
func (m *VersionMap) Compact() {
	kept := m.names[:0]
	for _, name := range m.names {
		if m.versions[name] == "" {
			delete(m.versions, name)
			continue
		}
		kept = append(kept, name)
	}
	m.names = kept
}

// Names returns the package names in discovery order.
func (m *VersionMap) Names() []string {
	out := make([]string, len(m.names))
	copy(out, m.names)
	return out
}

// NamesSorted returns the package names ordered case-insensitively, with
// the original spelling breaking exact ties.
func (m *VersionMap) NamesSorted() []string {
	out := m.Names()
	sort.SliceStable(out, func(i, j int) bool {
		li, lj := strings.ToLower(out[i]), strings.ToLower(out[j])
		if li != lj {
			return li < lj
		}
		return out[i] < out[j]
	})
	return out
}

// Ordered returns the names in the order requested by mode.
func (m *VersionMap) Ordered(mode SortMode) []string {
	if mode == SortByDiscovery {
		return m.Names()
	}
	return m.NamesSorted()
}
