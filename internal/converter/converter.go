// Package converter drives the conversion of a solution from per-project
// pinned package versions to a centralized version manifest. A run walks
// four strictly sequential stages: discover the project list, scan each
// project's references, resolve one version per package, then write the
// two artifacts and rewrite the projects. Completed stages are never rolled
// back; callers needing atomicity snapshot the tree themselves.
package converter

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/centra-dev/centra/internal/core"
	"github.com/centra-dev/centra/internal/manifest"
	"github.com/centra-dev/centra/internal/project"
	"github.com/centra-dev/centra/internal/semver"
	"github.com/centra-dev/centra/internal/solution"
)

// Options configures a single conversion run.
type Options struct {
	// SolutionPath is the solution description file to convert.
	SolutionPath string

	// BuildPropsPath overrides the build-property artifact location.
	// Empty means Directory.Build.props next to the solution.
	BuildPropsPath string

	// PackagesPath overrides the package-manifest artifact location.
	// Empty means Directory.Packages.props next to the solution.
	PackagesPath string

	// Sort selects the manifest entry ordering; invalid values fall back
	// to alphabetical.
	Sort manifest.SortMode

	// Backup writes a sibling .bak copy of each project before mutating it.
	Backup bool

	// Preview suppresses every filesystem write while still running
	// discovery and resolution.
	Preview bool
}

// Result is what a completed run reports back for inspection.
type Result struct {
	// SolutionDir is the resolved solution root directory.
	SolutionDir string

	// BuildPropsPath and PackagesPath are the artifact locations used.
	BuildPropsPath string
	PackagesPath   string

	// ProjectCount is the number of projects scanned.
	ProjectCount int

	// RewrittenCount is the number of projects that actually changed.
	RewrittenCount int

	// Packages is the final resolved version map, in discovery order.
	Packages *manifest.VersionMap

	// Seeded is true when the map was adopted from an existing manifest
	// because no inline versions remained (a rerun over converted input).
	Seeded bool

	// Preview reports whether the run was a dry run.
	Preview bool
}

// PackageCount returns the number of centralized packages.
func (r *Result) PackageCount() int {
	return r.Packages.Len()
}

// Service runs conversions against a filesystem.
type Service struct {
	fsys core.FileSystem
}

// NewService creates a conversion Service.
func NewService(fsys core.FileSystem) *Service {
	return &Service{fsys: fsys}
}

// Run executes one conversion. Any stage failure aborts the run with an
// error naming the stage and path; files written by earlier stages stay.
func (s *Service) Run(ctx context.Context, opts Options) (*Result, error) {
	// Discover.
	sol, err := solution.Load(ctx, s.fsys, opts.SolutionPath)
	if err != nil {
		return nil, err
	}
	if len(sol.Projects) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoProjectsFound, opts.SolutionPath)
	}

	result := &Result{
		SolutionDir:    sol.Dir,
		BuildPropsPath: orDefault(opts.BuildPropsPath, sol.Dir, manifest.DefaultBuildPropsName),
		PackagesPath:   orDefault(opts.PackagesPath, sol.Dir, manifest.DefaultPackagesName),
		Preview:        opts.Preview,
	}

	// Scan.
	files := make([]*project.File, 0, len(sol.Projects))
	for _, path := range sol.Projects {
		file, err := project.Scan(ctx, s.fsys, path)
		if err != nil {
			return nil, err
		}
		files = append(files, file)
	}
	result.ProjectCount = len(files)

	// Resolve.
	vm, seeded, err := s.resolve(ctx, files, result.PackagesPath)
	if err != nil {
		return nil, err
	}
	result.Packages = vm
	result.Seeded = seeded

	// Write: build properties, package manifest, then project rewrites.
	saver := core.NewSaver(s.fsys, opts.Preview)
	writer := manifest.NewWriter(s.fsys, saver)
	if err := writer.WriteBuildProps(ctx, result.BuildPropsPath); err != nil {
		return nil, err
	}
	sortMode := opts.Sort
	if !sortMode.IsValid() {
		sortMode = manifest.SortByName
	}
	if err := writer.WritePackagesManifest(ctx, result.PackagesPath, vm, sortMode); err != nil {
		return nil, err
	}

	rewriter := project.NewRewriter(saver, opts.Backup)
	for _, file := range files {
		if !file.HasVersionedRefs() {
			continue
		}
		changed, err := rewriter.Rewrite(ctx, file)
		if err != nil {
			return nil, err
		}
		if changed {
			result.RewrittenCount++
		}
	}

	return result, nil
}

// resolve aggregates the maximum version per package across all scanned
// files. When aggregation comes up empty (every project is already
// centralized) the existing manifest at packagesPath is adopted verbatim.
func (s *Service) resolve(ctx context.Context, files []*project.File, packagesPath string) (*manifest.VersionMap, bool, error) {
	vm := manifest.NewVersionMap()

	for _, file := range files {
		for _, ref := range file.Refs {
			if !ref.HasVersion() {
				// Versionless references only mark the name as seen.
				if _, ok := vm.Get(ref.Name); !ok {
					vm.Set(ref.Name, "")
				}
				continue
			}

			normalized, err := semver.Normalize(ref.Version)
			if err != nil {
				// A blank version string behaves like no version at all.
				if _, ok := vm.Get(ref.Name); !ok {
					vm.Set(ref.Name, "")
				}
				continue
			}

			current, ok := vm.Get(ref.Name)
			if !ok || current == "" {
				vm.Set(ref.Name, normalized)
				continue
			}
			cmp, err := semver.CompareStrings(normalized, current)
			if err != nil {
				return nil, false, fmt.Errorf("comparing versions for %q in %q: %w", ref.Name, file.Path, err)
			}
			if cmp > 0 {
				vm.Set(ref.Name, normalized)
			}
		}
	}

	vm.Compact()
	if !vm.IsEmpty() {
		return vm, false, nil
	}

	seed, err := manifest.ReadSeed(ctx, s.fsys, packagesPath)
	if err != nil {
		return nil, false, fmt.Errorf("%w: no inline versions and no manifest to adopt: %v", ErrNoVersionsFound, err)
	}
	if seed.IsEmpty() {
		return nil, false, fmt.Errorf("%w: manifest %q has no entries", ErrNoVersionsFound, packagesPath)
	}
	return seed, true, nil
}

func orDefault(path, dir, name string) string {
	if path != "" {
		return path
	}
	return filepath.Join(dir, name)
}
