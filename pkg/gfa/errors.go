package gfa

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedTagType is returned by [DecodeTagValue] for the H
	// (hex byte array) and B (numeric array) tag types, which are part
	// of the GFA standard but not implemented here.
	ErrUnsupportedTagType = errors.New("unsupported tag type")

	// ErrUnknownTagType is returned by [DecodeTagValue] when the type
	// letter of a tag is not part of the GFA standard.
	ErrUnknownTagType = errors.New("tag type is not in the GFA standard")

	// ErrUnrepresentableValue is returned by [InferTagType] when a value
	// cannot be expressed as any GFA tag type, not even as a J-encoded
	// structured value.
	ErrUnrepresentableValue = errors.New("value has no GFA tag representation")

	// ErrNotFound is returned by the Graph lookup methods when no
	// segment or path carries the requested name.
	ErrNotFound = errors.New("not found")

	// ErrArityMismatch is returned by [Graph.Split] when the new-name
	// and offset lists differ in length, and by [Graph.Merge] when
	// fewer than two segments are given.
	ErrArityMismatch = errors.New("arity mismatch")

	// ErrInvalidOffset is returned by [Graph.Split] when the split
	// offsets are not ascending positions within the segment's
	// sequence.
	ErrInvalidOffset = errors.New("split offset out of range")
)

// IncompatibleVersionError is returned at parse time when a record kind
// is not legal under the declared GFA style, either because the kind
// postdates the style (a walk in a GFA1 file) or because the style
// predates the kind entirely (a header in rGFA).
type IncompatibleVersionError struct {
	Kind          Kind     // the offending record kind
	RequiredSince GfaStyle // the style that introduced the kind
	Actual        GfaStyle // the style declared for the input
}

// Error implements the error interface.
func (e *IncompatibleVersionError) Error() string {
	return fmt.Sprintf("incompatible version: %s records were added in %s and are absent from %s",
		e.Kind, e.RequiredSince, e.Actual)
}
