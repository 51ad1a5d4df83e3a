package gfa

import (
	"fmt"
	"strings"
)

// Field keys for the positional fields decoded by the parsers. Tags
// keep their two-letter keys and positional overflow uses ARG<n>.
const (
	fieldName        = "name"
	fieldLength      = "length"
	fieldSeq         = "seq"
	fieldStart       = "start"
	fieldEnd         = "end"
	fieldOrientation = "orientation"
	fieldID          = "id"
	fieldOrigin      = "origin"
	fieldStartOffset = "start_offset"
	fieldStopOffset  = "stop_offset"
	fieldPath        = "path"
)

// Step is one element of a path or walk: a segment name plus the
// orientation in which the segment is traversed.
type Step struct {
	Name   string
	Orient Orientation
}

// Record is one line of a GFA file decoded into named, typed fields.
// The Kind field discriminates the variant; Fields maps positional
// field names (name, length, start, ...), two-letter tag keys, and
// synthetic ARG<n> overflow keys to their decoded values. Path and walk
// records additionally store their ordered step list under the path
// field as a []Step.
//
// Records are built by the parser; construct them by hand only through
// the Graph edit operations, which keep the cross-record invariants
// intact.
type Record struct {
	Style  GfaStyle
	Kind   Kind
	Fields map[string]any
}

// newRecord allocates a record of the given kind with an empty field
// map.
func newRecord(style GfaStyle, kind Kind) *Record {
	return &Record{Style: style, Kind: kind, Fields: map[string]any{}}
}

// Name returns the record's name field, or "" when absent.
func (r *Record) Name() string {
	s, _ := r.Fields[fieldName].(string)
	return s
}

// Length returns the segment's length field, or 0 when absent.
func (r *Record) Length() int {
	n, _ := r.Fields[fieldLength].(int)
	return n
}

// Seq returns the stored sequence and whether one was retained at load
// time.
func (r *Record) Seq() (string, bool) {
	s, ok := r.Fields[fieldSeq].(string)
	return s, ok
}

// SequenceOrFill returns the stored sequence, or a placeholder of "N"
// repeated length times when sequences were not retained.
func (r *Record) SequenceOrFill() string {
	if s, ok := r.Seq(); ok {
		return s
	}
	return strings.Repeat("N", r.Length())
}

// Start returns a link's start segment name, or "" when absent.
func (r *Record) Start() string {
	s, _ := r.Fields[fieldStart].(string)
	return s
}

// End returns a link's end segment name, or "" when absent.
func (r *Record) End() string {
	s, _ := r.Fields[fieldEnd].(string)
	return s
}

// Orientations returns the two sides of a link's combined orientation
// field ("<from>/<to>"). Missing or malformed fields read as "+".
func (r *Record) Orientations() (from, to string) {
	s, _ := r.Fields[fieldOrientation].(string)
	from, to, ok := strings.Cut(s, "/")
	if !ok || from == "" {
		from = "+"
	}
	if to == "" {
		to = "+"
	}
	return from, to
}

// Steps returns the ordered step list of a path or walk record. The
// returned slice aliases the record; use SetSteps to replace it.
func (r *Record) Steps() []Step {
	steps, _ := r.Fields[fieldPath].([]Step)
	return steps
}

// SetSteps replaces the ordered step list of a path or walk record.
func (r *Record) SetSteps(steps []Step) {
	r.Fields[fieldPath] = steps
}

// Touches reports whether a link record has the named segment at either
// endpoint.
func (r *Record) Touches(name string) bool {
	return r.Start() == name || r.End() == name
}

// String renders the record in the syntax of its own style. It is meant
// for debugging; serialization of a whole graph goes through
// [Graph.Write], which also handles style downgrades.
func (r *Record) String() string {
	line, err := r.render(r.Style, 0)
	if err != nil {
		return fmt.Sprintf("%s record (unrenderable: %v)", r.Kind, err)
	}
	return line
}
