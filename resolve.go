package stag

import (
	"fmt"
	"sort"
	"strings"
)

// Matches filters tags down to releases in the specifier's major/minor
// family, ordered by patch number descending. A tag without an explicit
// patch component ranks as patch 0. Tags with equal patch keep their
// relative endpoint order.
//
// Snapshot specifiers have no release matches; use ResolveSnapshot.
func Matches(tags []string, spec Specifier, opt Options) []Match {
	if spec.Snapshot {
		return nil
	}

	opt = opt.normalized()

	out := make([]Match, 0, len(tags))
	for _, tag := range tags {
		version, v, ok := parseRelease(tag, opt)
		if !ok || v.Major != spec.Major || v.Minor != spec.Minor {
			continue
		}

		out = append(out, Match{Tag: tag, Version: version, patch: v.Patch})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].patch > out[j].patch
	})

	return out
}

// ResolveRelease returns the dotted version of the highest-patch release
// tag matching the specifier. ErrNoMatch when nothing matches.
func ResolveRelease(tags []string, spec Specifier, opt Options) (string, error) {
	ms := Matches(tags, spec, opt)
	if len(ms) == 0 {
		return "", fmt.Errorf("%w for %s", ErrNoMatch, spec)
	}

	return ms[0].Version, nil
}

// ResolveSnapshot returns the identifier of the first tag, in endpoint
// order, containing the snapshot marker. The result is the text after the
// marker with the joining dash removed. ErrSnapshotNotFound when no tag
// carries the marker.
func ResolveSnapshot(tags []string, opt Options) (string, error) {
	opt = opt.normalized()

	for _, tag := range tags {
		i := strings.Index(tag, opt.SnapshotMarker)
		if i < 0 {
			continue
		}

		id := tag[i+len(opt.SnapshotMarker):]

		return strings.TrimPrefix(id, "-"), nil
	}

	return "", fmt.Errorf("%w: no tag contains %q", ErrSnapshotNotFound, opt.SnapshotMarker)
}

// Resolve dispatches on the specifier kind: snapshot identifiers come from
// ResolveSnapshot, numbered versions from ResolveRelease.
func Resolve(tags []string, spec Specifier, opt Options) (string, error) {
	if spec.Snapshot {
		return ResolveSnapshot(tags, opt)
	}

	return ResolveRelease(tags, spec, opt)
}
