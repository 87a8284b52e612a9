// Package solution extracts project file paths from a solution description
// file. Only the narrow quoted-tuple entry form is recognized:
//
//	Project("{TYPE-GUID}") = "Name", "relative\path\App.csproj", "{PROJECT-GUID}"
//
// Everything else in the file is ignored. This is deliberately a text scan,
// not a grammar for the full solution format.
package solution

import (
	"context"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/centra-dev/centra/internal/core"
)

// Solution is the resolved, read-only project list for one run.
type Solution struct {
	// Path is the solution file path as given.
	Path string

	// Dir is the directory containing the solution file; relative project
	// paths resolve against it and it is the root reported in results.
	Dir string

	// Projects holds absolute project file paths, deduplicated, in the
	// order they first appear in the solution text.
	Projects []string
}

// projectEntryRe matches a single quoted-tuple project entry.
// Capture groups: type identifier, display name, relative path, project identifier.
var projectEntryRe = regexp.MustCompile(`(?m)^\s*Project\("([^"]*)"\)\s*=\s*"([^"]*)"\s*,\s*"([^"]*)"\s*,\s*"([^"]*)"`)

// projectExtensions are the recognized project file extensions.
var projectExtensions = []string{".csproj", ".fsproj", ".vbproj"}

// ParseProjectPaths scans solution text and returns the relative project
// paths it references, with separators normalized for the host platform,
// in order of appearance. Entries whose path does not end in a recognized
// project extension are discarded silently. The result may be empty; the
// caller decides whether that is fatal.
func ParseProjectPaths(text string) []string {
	var paths []string
	for _, m := range projectEntryRe.FindAllStringSubmatch(text, -1) {
		rel := strings.TrimSpace(m[3])
		if rel == "" || !hasProjectExtension(rel) {
			continue
		}
		paths = append(paths, filepath.FromSlash(strings.ReplaceAll(rel, `\`, "/")))
	}
	return paths
}

// Load reads a solution file and resolves its project entries to absolute,
// deduplicated paths. A missing solution file is an error; a solution that
// matches no project entries yields an empty Projects list, not an error.
func Load(ctx context.Context, fsys core.FileSystem, path string) (*Solution, error) {
	data, err := fsys.ReadFile(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("reading solution %q: %w", path, err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving solution path %q: %w", path, err)
	}
	dir := filepath.Dir(abs)

	seen := make(map[string]bool)
	var projects []string
	for _, rel := range ParseProjectPaths(string(data)) {
		full := filepath.Clean(filepath.Join(dir, rel))
		if seen[full] {
			continue
		}
		seen[full] = true
		projects = append(projects, full)
	}

	return &Solution{Path: path, Dir: dir, Projects: projects}, nil
}

func hasProjectExtension(path string) bool {
	lower := strings.ToLower(path)
	for _, ext := range projectExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}
