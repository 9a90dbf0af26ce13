/*
Package stag (Swift TAG resolver) resolves Swift toolchain release tags
to plain version strings.

The package is network-agnostic: the resolution functions operate purely on
a slice of tag-name strings. Typical flow:

 1. Fetch raw tag names (e.g., via Client.Releases or Client.Tags).
 2. Parse the user-supplied specifier with ParseSpecifier.
 3. Call Resolve (or ResolveRelease / ResolveSnapshot) with Options.
 4. Print the single resulting string.

Tag shape notes:
  - Release tags look like "swift-MAJOR.MINOR[.PATCH]-RELEASE". An absent
    patch component compares as patch 0, so "swift-5.2-RELEASE" ties with
    "swift-5.2.0-RELEASE" rather than losing to it.
  - Snapshot tags carry the "DEVELOPMENT-SNAPSHOT" marker; resolution
    returns the part after the marker (date/identifier), e.g.
    "swift-DEVELOPMENT-SNAPSHOT-2023-01-01-a" -> "2023-01-01-a".
  - The resolved release string is the dotted version exactly as embedded
    in the tag, never a normalized form.

Usage example:

	tags := []string{
		"swift-5.2-RELEASE", "swift-5.2.1-RELEASE",
		"swift-5.2.3-RELEASE", "swift-5.3.0-RELEASE",
	}

	spec, err := stag.ParseSpecifier("5.2")
	if err != nil {
		// specifier was not MAJOR.MINOR or the snapshot token
	}

	out, err := stag.ResolveRelease(tags, spec, stag.DefaultOptions())
	fmt.Println(out, err) // 5.2.3 <nil>
*/
package stag
