package gfa

import "fmt"

// GfaStyle identifies a sub-version of the GFA format family. Styles
// form a total order of increasing feature richness: each style accepts
// every record kind of the styles below it plus its own additions.
type GfaStyle int

const (
	// StyleUnknown is the zero value. It passes every version gate,
	// which makes it useful when the sub-version of an input is not
	// known in advance.
	StyleUnknown GfaStyle = iota
	// StyleRGFA is the reference-GFA subset: segments and links only.
	StyleRGFA
	// StyleGFA1 adds headers, containments, and P-line paths.
	StyleGFA1
	// StyleGFA11 (GFA 1.1) adds W-line walks.
	StyleGFA11
	// StyleGFA12 (GFA 1.2) adds J-line jumps.
	StyleGFA12
	// StyleGFA2 is the richest style and additionally accepts record
	// kinds outside the GFA1 alphabet.
	StyleGFA2
)

var styleNames = map[GfaStyle]string{
	StyleUnknown: "unknown",
	StyleRGFA:    "rGFA",
	StyleGFA1:    "GFA1",
	StyleGFA11:   "GFA1.1",
	StyleGFA12:   "GFA1.2",
	StyleGFA2:    "GFA2",
}

// String returns the conventional spelling of the style ("rGFA",
// "GFA1.1", ...).
func (s GfaStyle) String() string {
	if name, ok := styleNames[s]; ok {
		return name
	}
	return fmt.Sprintf("GfaStyle(%d)", int(s))
}

// ParseStyle converts a style name as it appears in documentation or on
// the command line ("rGFA", "GFA1", "GFA1.1", "GFA1.2", "GFA2") into a
// GfaStyle. Unrecognized names map to StyleUnknown with an error.
func ParseStyle(name string) (GfaStyle, error) {
	for s, n := range styleNames {
		if n == name {
			return s, nil
		}
	}
	return StyleUnknown, fmt.Errorf("unknown GFA style %q", name)
}

// supports reports whether a record kind first introduced in the
// required style is legal under s. StyleUnknown is permissive and
// accepts everything.
func (s GfaStyle) supports(required GfaStyle) bool {
	return s == StyleUnknown || s >= required
}

// Orientation is the direction a segment is read when traversed by a
// link, path, or walk.
type Orientation int8

const (
	// Forward reads the segment on the forward strand.
	Forward Orientation = iota
	// Reverse reads the segment on the reverse strand.
	Reverse
)

// PathSymbol returns the P-line spelling of the orientation: "+" or "-".
func (o Orientation) PathSymbol() string {
	if o == Reverse {
		return "-"
	}
	return "+"
}

// WalkSymbol returns the W-line spelling of the orientation: ">" or "<".
func (o Orientation) WalkSymbol() string {
	if o == Reverse {
		return "<"
	}
	return ">"
}

// parseOrientation maps any of the four orientation markers to an
// Orientation: '+' and '>' are forward, '-' and '<' are reverse.
func parseOrientation(c byte) (Orientation, error) {
	switch c {
	case '+', '>':
		return Forward, nil
	case '-', '<':
		return Reverse, nil
	}
	return Forward, fmt.Errorf("invalid orientation marker %q", string(c))
}

// Kind discriminates the record variants of a GFA file.
type Kind int

const (
	// KindHeader is an H-line.
	KindHeader Kind = iota
	// KindSegment is an S-line.
	KindSegment
	// KindLine is an L-line: a directed, oriented link between two
	// segment endpoints. GFA calls these "links"; the older spelling
	// "line" survives in the L type character.
	KindLine
	// KindContainment is a C-line.
	KindContainment
	// KindPath is a P-line.
	KindPath
	// KindWalk is a W-line.
	KindWalk
	// KindJump is a J-line.
	KindJump
	// KindOther is any record whose type character is not part of the
	// GFA1 alphabet. Such records only occur in GFA2 content.
	KindOther
)

var kindNames = map[Kind]string{
	KindHeader:      "header",
	KindSegment:     "segment",
	KindLine:        "link",
	KindContainment: "containment",
	KindPath:        "path",
	KindWalk:        "walk",
	KindJump:        "jump",
	KindOther:       "other",
}

// String returns a human-readable kind name used in error messages.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// requiredStyle returns the style that first introduced the record
// kind. Segments and links exist in every style, headers, containments,
// paths, and out-of-alphabet records arrived with GFA1, walks with
// GFA1.1, and jumps with GFA1.2.
func (k Kind) requiredStyle() GfaStyle {
	switch k {
	case KindSegment, KindLine:
		return StyleRGFA
	case KindHeader, KindContainment, KindPath, KindOther:
		return StyleGFA1
	case KindWalk:
		return StyleGFA11
	case KindJump:
		return StyleGFA12
	}
	return StyleGFA1
}
