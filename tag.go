package stag

import (
	"strings"

	"github.com/woozymasta/semver"
)

// Match is a release tag whose embedded version belongs to the requested
// major/minor family.
type Match struct {
	// Tag is the full tag name as returned by the endpoint.
	Tag string

	// Version is the dotted version exactly as embedded in the tag,
	// e.g. "5.2" for "swift-5.2-RELEASE" (never normalized to "5.2.0").
	Version string

	patch int // absent patch component counts as 0
}

// parseRelease extracts the dotted version embedded in a release tag.
// The tag must be Prefix + version + ReleaseSuffix, where version is two
// or three bare numeric components. No regex: literal cuts plus a
// structured version parse.
func parseRelease(tag string, opt Options) (string, semver.Semver, bool) {
	rest, ok := strings.CutPrefix(tag, opt.Prefix)
	if !ok {
		return "", semver.Semver{}, false
	}

	version, ok := strings.CutSuffix(rest, opt.ReleaseSuffix)
	if !ok {
		return "", semver.Semver{}, false
	}

	v, ok := parseDotted(version)
	if !ok || !has(v.Flags, semver.FlagHasMinor) {
		return "", semver.Semver{}, false
	}

	return version, v, true
}
