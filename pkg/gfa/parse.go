package gfa

import (
	"fmt"
	"strconv"
	"strings"
)

// Options controls how a file is decoded. Pass it explicitly per call;
// the zero value discards sequence text and keeps only lengths.
type Options struct {
	// KeepSequences stores segment sequence text on the records. When
	// false, only the length is kept and serialization fills sequences
	// with N placeholders.
	KeepSequences bool
}

// classify maps the leading character of a line to its record kind.
// Unrecognized characters fall through to KindOther, which parses the
// whole line permissively as overflow fields.
func classify(c byte) Kind {
	switch c {
	case 'H':
		return KindHeader
	case 'S':
		return KindSegment
	case 'L':
		return KindLine
	case 'C':
		return KindContainment
	case 'P':
		return KindPath
	case 'W':
		return KindWalk
	case 'J':
		return KindJump
	}
	return KindOther
}

// parseRecord decodes one non-empty GFA line into a Record, validating
// that the record kind is legal under the declared style.
func parseRecord(line string, style GfaStyle, opts Options) (*Record, error) {
	fields := strings.Split(strings.TrimRight(line, "\n"), "\t")
	kind := classify(line[0])

	if required := kind.requiredStyle(); !style.supports(required) {
		return nil, &IncompatibleVersionError{Kind: kind, RequiredSince: required, Actual: style}
	}

	rec := newRecord(style, kind)
	var err error
	switch kind {
	case KindSegment:
		err = parseSegment(rec, fields, opts)
	case KindLine:
		err = parseLink(rec, fields)
	case KindPath:
		err = parsePath(rec, fields)
	case KindWalk:
		err = parseWalk(rec, fields)
	case KindHeader, KindContainment, KindJump:
		err = parseExtras(rec, fields, 1)
	case KindOther:
		err = parseExtras(rec, fields, 0)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", kind, err)
	}
	return rec, nil
}

// parseExtras handles every field from position `from` onward: fields
// matching the tag syntax are decoded through the tag codec and stored
// under their two-letter key (later duplicates overwrite earlier ones),
// anything else is kept verbatim under a synthetic ARG<n> key with n
// counting up from the fixed-field count.
func parseExtras(rec *Record, fields []string, from int) error {
	if from >= len(fields) {
		return nil
	}
	nargs := from
	for _, tok := range fields[from:] {
		if tagToken.MatchString(tok) {
			v, err := DecodeTagValue(tok[3], tok[5:])
			if err != nil {
				return err
			}
			rec.Fields[tok[:2]] = v
			continue
		}
		rec.Fields[fmt.Sprintf("ARG%d", nargs)] = tok
		nargs++
	}
	return nil
}

// parseSegment decodes an S-line: name (digits only), sequence length,
// and the sequence text itself when retention is requested.
func parseSegment(rec *Record, fields []string, opts Options) error {
	if len(fields) < 3 {
		return fmt.Errorf("expected name and sequence, got %d fields", len(fields)-1)
	}
	rec.Fields[fieldName] = digitsOnly(fields[1])
	rec.Fields[fieldLength] = len(fields[2])
	if opts.KeepSequences {
		rec.Fields[fieldSeq] = fields[2]
	}
	return parseExtras(rec, fields, 3)
}

// parseLink decodes an L-line into start and end segment names (digits
// only) plus the combined "<from>/<to>" orientation field.
func parseLink(rec *Record, fields []string) error {
	if len(fields) < 5 {
		return fmt.Errorf("expected endpoints and orientations, got %d fields", len(fields)-1)
	}
	rec.Fields[fieldStart] = digitsOnly(fields[1])
	rec.Fields[fieldEnd] = digitsOnly(fields[3])
	rec.Fields[fieldOrientation] = fields[2] + "/" + fields[4]
	return parseExtras(rec, fields, 5)
}

// parsePath decodes a P-line. Steps are comma-separated tokens whose
// last character is the +/- orientation. The overlaps field and any
// other token before position 7 carry no information we retain; the
// serializer writes the conventional `*` placeholder back out.
func parsePath(rec *Record, fields []string) error {
	if len(fields) < 3 {
		return fmt.Errorf("expected name and step list, got %d fields", len(fields)-1)
	}
	rec.Fields[fieldName] = fields[1]
	steps := make([]Step, 0, strings.Count(fields[2], ",")+1)
	for _, tok := range strings.Split(fields[2], ",") {
		if tok == "" {
			return fmt.Errorf("empty step in path %s", fields[1])
		}
		orient, err := parseOrientation(tok[len(tok)-1])
		if err != nil {
			return err
		}
		steps = append(steps, Step{Name: tok[:len(tok)-1], Orient: orient})
	}
	rec.Fields[fieldPath] = steps
	return parseExtras(rec, fields, 7)
}

// parseWalk decodes a W-line: sample name, haplotype origin, sequence
// id, start/stop offsets, and a step list using >/< prefix markers.
func parseWalk(rec *Record, fields []string) error {
	if len(fields) < 7 {
		return fmt.Errorf("expected 6 fixed fields, got %d", len(fields)-1)
	}
	origin, err := strconv.Atoi(fields[2])
	if err != nil {
		return fmt.Errorf("origin %q: %w", fields[2], err)
	}
	rec.Fields[fieldName] = fields[1]
	rec.Fields[fieldOrigin] = origin
	rec.Fields[fieldID] = fields[3]
	rec.Fields[fieldStartOffset] = fields[4]
	rec.Fields[fieldStopOffset] = fields[5]
	steps, err := parseWalkSteps(fields[6])
	if err != nil {
		return err
	}
	rec.Fields[fieldPath] = steps
	return parseExtras(rec, fields, 7)
}

// parseWalkSteps splits a walk token stream like ">12<13>14" at its
// orientation markers. The stream must open with a marker.
func parseWalkSteps(s string) ([]Step, error) {
	if s == "" {
		return nil, fmt.Errorf("empty walk step list")
	}
	if s[0] != '>' && s[0] != '<' {
		return nil, fmt.Errorf("walk steps must start with > or <, got %q", s)
	}
	var steps []Step
	start := 0
	for i := 1; i <= len(s); i++ {
		if i < len(s) && s[i] != '>' && s[i] != '<' {
			continue
		}
		orient, _ := parseOrientation(s[start])
		name := s[start+1 : i]
		if name == "" {
			return nil, fmt.Errorf("empty step name in walk steps %q", s)
		}
		steps = append(steps, Step{Name: name, Orient: orient})
		start = i
	}
	return steps, nil
}

// digitsOnly strips every non-digit character from a segment name.
// rGFA producers commonly prefix names ("s1"); lookups and numeric
// merge ordering rely on the bare digit string.
func digitsOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}
