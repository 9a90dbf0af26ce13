package stag

import "testing"

func TestParseRelease(t *testing.T) {
	t.Parallel()

	opt := DefaultOptions()

	cases := []struct {
		tag     string
		version string
		patch   int
		ok      bool
	}{
		{"swift-5.2-RELEASE", "5.2", 0, true},
		{"swift-5.2.0-RELEASE", "5.2.0", 0, true},
		{"swift-5.2.3-RELEASE", "5.2.3", 3, true},
		{"swift-10.0.12-RELEASE", "10.0.12", 12, true},

		// missing prefix or suffix
		{"5.2.3-RELEASE", "", 0, false},
		{"swift-5.2.3", "", 0, false},
		{"swift-5.2.3-release", "", 0, false},

		// wrong version shape
		{"swift-5-RELEASE", "", 0, false},
		{"swift-v5.2-RELEASE", "", 0, false},
		{"swift-5.2.x-RELEASE", "", 0, false},
		{"swift--RELEASE", "", 0, false},

		// snapshots are not releases
		{"swift-DEVELOPMENT-SNAPSHOT-2023-01-01-a", "", 0, false},
	}

	for _, tc := range cases {
		version, v, ok := parseRelease(tc.tag, opt)
		if ok != tc.ok {
			t.Fatalf("parseRelease(%q) ok = %v; want %v", tc.tag, ok, tc.ok)
		}

		if !tc.ok {
			continue
		}

		if version != tc.version {
			t.Fatalf("parseRelease(%q) version = %q; want %q", tc.tag, version, tc.version)
		}

		if v.Patch != tc.patch {
			t.Fatalf("parseRelease(%q) patch = %d; want %d", tc.tag, v.Patch, tc.patch)
		}
	}
}

func TestParseRelease_CustomShape(t *testing.T) {
	t.Parallel()

	opt := Options{Prefix: "tool-", ReleaseSuffix: "-GA"}

	version, v, ok := parseRelease("tool-1.4.7-GA", opt)
	if !ok || version != "1.4.7" || v.Major != 1 || v.Minor != 4 || v.Patch != 7 {
		t.Fatalf("parseRelease custom shape = %q (%d.%d.%d), ok=%v", version, v.Major, v.Minor, v.Patch, ok)
	}

	if _, _, ok := parseRelease("tool-1.4.7-RELEASE", opt); ok {
		t.Fatal("parseRelease accepted default suffix under custom shape")
	}
}
