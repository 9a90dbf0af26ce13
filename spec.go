package stag

import (
	"fmt"

	"github.com/woozymasta/semver"
)

// SnapshotToken is the specifier requesting the latest development
// snapshot instead of a numbered release.
const SnapshotToken = "snapshot"

// Specifier identifies which version family to resolve: either an exact
// (major, minor) pair, or the latest development snapshot.
type Specifier struct {
	Major    int
	Minor    int
	Snapshot bool
}

// String returns the textual form the specifier was parsed from.
func (s Specifier) String() string {
	if s.Snapshot {
		return SnapshotToken
	}

	return fmt.Sprintf("%d.%d", s.Major, s.Minor)
}

// ParseSpecifier parses the user-supplied version specifier. It accepts
// the SnapshotToken literal or exactly two dot-separated numeric
// components ("MAJOR.MINOR"); anything else is ErrInvalidSpecifier.
func ParseSpecifier(in string) (Specifier, error) {
	if in == SnapshotToken {
		return Specifier{Snapshot: true}, nil
	}

	v, ok := parseDotted(in)
	if !ok || has(v.Flags, semver.FlagHasPatch) || !has(v.Flags, semver.FlagHasMinor) {
		return Specifier{}, fmt.Errorf("%w: %q is not MAJOR.MINOR", ErrInvalidSpecifier, in)
	}

	return Specifier{Major: v.Major, Minor: v.Minor}, nil
}

// parseDotted parses a bare dotted version: no leading "v", no prerelease
// or build metadata, just numeric components.
func parseDotted(in string) (semver.Semver, bool) {
	if len(in) == 0 || in[0] < '0' || in[0] > '9' {
		return semver.Semver{}, false
	}

	v, ok := semver.Parse(in)
	if !ok || !v.Valid {
		return semver.Semver{}, false
	}

	if has(v.Flags, semver.FlagHasPre) || has(v.Flags, semver.FlagHasBuild) {
		return semver.Semver{}, false
	}

	return v, true
}

func has(f semver.Flags, bit semver.Flags) bool {
	return (f & bit) != 0
}
