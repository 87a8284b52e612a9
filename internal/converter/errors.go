package converter

import "errors"

var (
	// ErrNoProjectsFound aborts a run whose solution references no project
	// files; nothing has been written when it is returned.
	ErrNoProjectsFound = errors.New("no project files found in solution")

	// ErrNoVersionsFound aborts a run where scanning yielded no package
	// versions and no existing package manifest was available to seed from.
	ErrNoVersionsFound = errors.New("no package versions found")
)
