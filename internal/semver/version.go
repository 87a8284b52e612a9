// Package semver implements version normalization and precedence comparison
// for package versions as they appear in project files. Versions are reduced
// to a three-component numeric core with an optional pre-release suffix;
// build metadata is discarded. Pre-release identifiers compare numerically
// when both sides are integers and case-insensitively otherwise.
package semver

import (
	"errors"
	"strconv"
	"strings"
)

// Version represents a normalized package version (major.minor.patch-preRelease).
type Version struct {
	Major      int
	Minor      int
	Patch      int
	PreRelease string
}

// errEmptyVersion is returned when a version string is empty or whitespace.
var errEmptyVersion = errors.New("empty version string")

// maxVersionLength is the maximum allowed length for a version string.
const maxVersionLength = 128

// String returns the normalized string form: major.minor.patch[-preRelease].
func (v Version) String() string {
	var sb strings.Builder
	sb.Grow(16)
	sb.WriteString(strconv.Itoa(v.Major))
	sb.WriteByte('.')
	sb.WriteString(strconv.Itoa(v.Minor))
	sb.WriteByte('.')
	sb.WriteString(strconv.Itoa(v.Patch))
	if v.PreRelease != "" {
		sb.WriteByte('-')
		sb.WriteString(v.PreRelease)
	}
	return sb.String()
}

// Parse normalizes a raw version string into a Version.
//
// Normalization rules:
//   - Build metadata (everything after the first "+") is discarded.
//   - The remainder after the first "-" becomes the pre-release suffix.
//   - The leading dot-separated numeric components form the core; missing
//     components are zero-filled and components beyond the third are dropped.
//   - An optional "v" prefix is tolerated.
//
// Only an empty (or overlong) string is an error: project files carry
// free-form version text and normalization has to stay total over it.
func Parse(s string) (Version, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Version{}, errEmptyVersion
	}
	if len(trimmed) > maxVersionLength {
		return Version{}, errors.New("version string exceeds maximum length")
	}
	trimmed = strings.TrimPrefix(trimmed, "v")

	// Build metadata never survives normalization.
	if plus := strings.IndexByte(trimmed, '+'); plus >= 0 {
		trimmed = trimmed[:plus]
	}

	var pre string
	if dash := strings.IndexByte(trimmed, '-'); dash >= 0 {
		pre = trimmed[dash+1:]
		trimmed = trimmed[:dash]
	}

	nums := [3]int{}
	idx := 0
	for _, part := range strings.Split(trimmed, ".") {
		if idx == 3 {
			break
		}
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			break
		}
		nums[idx] = n
		idx++
	}

	return Version{Major: nums[0], Minor: nums[1], Patch: nums[2], PreRelease: pre}, nil
}

// Normalize returns the canonical form of a raw version string.
// Normalize is idempotent: Normalize(Normalize(s)) == Normalize(s).
func Normalize(s string) (string, error) {
	v, err := Parse(s)
	if err != nil {
		return "", err
	}
	return v.String(), nil
}

// Compare compares two versions by precedence.
// It returns -1 if v < other, 0 if v == other, and +1 if v > other.
// On an equal numeric core a release outranks any pre-release
// (e.g. 2.0.0-beta.1 < 2.0.0).
func (v Version) Compare(other Version) int {
	if c := compareInt(v.Major, other.Major); c != 0 {
		return c
	}
	if c := compareInt(v.Minor, other.Minor); c != 0 {
		return c
	}
	if c := compareInt(v.Patch, other.Patch); c != 0 {
		return c
	}

	switch {
	case v.PreRelease == "" && other.PreRelease == "":
		return 0
	case v.PreRelease == "":
		return 1
	case other.PreRelease == "":
		return -1
	default:
		return comparePreRelease(v.PreRelease, other.PreRelease)
	}
}

// CompareStrings compares two raw version strings after normalization.
func CompareStrings(a, b string) (int, error) {
	va, err := Parse(a)
	if err != nil {
		return 0, err
	}
	vb, err := Parse(b)
	if err != nil {
		return 0, err
	}
	return va.Compare(vb), nil
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func comparePreRelease(a, b string) int {
	aIDs := strings.Split(a, ".")
	bIDs := strings.Split(b, ".")

	n := min(len(aIDs), len(bIDs))
	for i := range n {
		if c := compareIdentifier(aIDs[i], bIDs[i]); c != 0 {
			return c
		}
	}

	// Equal so far: the suffix with fewer identifiers has lower precedence.
	switch {
	case len(aIDs) < len(bIDs):
		return -1
	case len(aIDs) > len(bIDs):
		return 1
	default:
		return 0
	}
}

// compareIdentifier compares a single pre-release identifier pair:
// numeric when both sides parse as integers, case-insensitive lexical otherwise.
func compareIdentifier(a, b string) int {
	if isAllDigits(a) && isAllDigits(b) {
		an, _ := strconv.Atoi(a)
		bn, _ := strconv.Atoi(b)
		return compareInt(an, bn)
	}

	al := strings.ToLower(a)
	bl := strings.ToLower(b)
	switch {
	case al < bl:
		return -1
	case al > bl:
		return 1
	default:
		return 0
	}
}

// isAllDigits returns true if s is non-empty and consists entirely of ASCII digits.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
