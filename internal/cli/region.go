// internal/cli/region.go
package cli

import (
	"fmt"
	"strconv"
	"strings"
)

// Ref names one record, either by zero-based reference id (numeric) or by
// record name (anything else). ID is -1 when Name is set.
type Ref struct {
	ID   int
	Name string
}

// ParseRef parses a bare REF token.
func ParseRef(s string) (Ref, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Ref{}, fmt.Errorf("empty reference")
	}
	if id, err := strconv.Atoi(s); err == nil {
		return Ref{ID: id}, nil
	}
	return Ref{ID: -1, Name: s}, nil
}

// ParseBase parses "REF:POS" with POS 1-based, returning the 0-based
// position the library expects.
func ParseBase(s string) (Ref, int, error) {
	refPart, posPart, ok := strings.Cut(s, ":")
	if !ok {
		return Ref{}, 0, fmt.Errorf("bad base spec %q (want REF:POS)", s)
	}
	ref, err := ParseRef(refPart)
	if err != nil {
		return Ref{}, 0, err
	}
	pos, err := strconv.Atoi(posPart)
	if err != nil || pos < 1 {
		return Ref{}, 0, fmt.Errorf("bad position in %q (want 1-based integer)", s)
	}
	return ref, pos - 1, nil
}

// ParseRange parses "REF:START-STOP", 1-based inclusive on both ends,
// returning 0-based coordinates.
func ParseRange(s string) (Ref, int, int, error) {
	refPart, span, ok := strings.Cut(s, ":")
	if !ok {
		return Ref{}, 0, 0, fmt.Errorf("bad range spec %q (want REF:START-STOP)", s)
	}
	ref, err := ParseRef(refPart)
	if err != nil {
		return Ref{}, 0, 0, err
	}
	fromPart, toPart, ok := strings.Cut(span, "-")
	if !ok {
		return Ref{}, 0, 0, fmt.Errorf("bad range spec %q (want REF:START-STOP)", s)
	}
	start, err := strconv.Atoi(fromPart)
	if err != nil || start < 1 {
		return Ref{}, 0, 0, fmt.Errorf("bad start in %q (want 1-based integer)", s)
	}
	stop, err := strconv.Atoi(toPart)
	if err != nil || stop < start {
		return Ref{}, 0, 0, fmt.Errorf("bad stop in %q (want integer ≥ start)", s)
	}
	return ref, start - 1, stop - 1, nil
}
