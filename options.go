package stag

// Options describes the literal shape of the tags being resolved.
type Options struct {
	// Prefix is the literal text before the embedded version,
	// e.g. "swift-" in "swift-5.2.3-RELEASE".
	Prefix string

	// ReleaseSuffix is the literal text after the embedded version,
	// e.g. "-RELEASE" in "swift-5.2.3-RELEASE".
	ReleaseSuffix string

	// SnapshotMarker is the substring identifying development snapshot
	// tags. Everything after the marker (minus a joining dash) is the
	// snapshot identifier.
	SnapshotMarker string
}

// DefaultOptions returns the tag shape used by the Swift toolchain
// repository:
//
//   - Prefix:         "swift-"
//   - ReleaseSuffix:  "-RELEASE"
//   - SnapshotMarker: "DEVELOPMENT-SNAPSHOT"
func DefaultOptions() Options {
	return Options{
		Prefix:         "swift-",
		ReleaseSuffix:  "-RELEASE",
		SnapshotMarker: "DEVELOPMENT-SNAPSHOT",
	}
}

// normalized returns a copy with zero fields replaced by defaults, so the
// zero Options value behaves like DefaultOptions.
func (o Options) normalized() Options {
	def := DefaultOptions()
	out := o

	if out.Prefix == "" {
		out.Prefix = def.Prefix
	}

	if out.ReleaseSuffix == "" {
		out.ReleaseSuffix = def.ReleaseSuffix
	}

	if out.SnapshotMarker == "" {
		out.SnapshotMarker = def.SnapshotMarker
	}

	return out
}
