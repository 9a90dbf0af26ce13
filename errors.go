package stag

import "errors"

var (
	// ErrInvalidSpecifier marks a specifier that is neither "MAJOR.MINOR"
	// nor the snapshot token.
	ErrInvalidSpecifier = errors.New("invalid version specifier")

	// ErrNoMatch means no release tag matched the requested major/minor.
	ErrNoMatch = errors.New("no matching release tag")

	// ErrSnapshotNotFound means the tag list contains no snapshot tag.
	ErrSnapshotNotFound = errors.New("no development snapshot tag")
)
