// core/fai/errors.go
package fai

import (
	"errors"
	"fmt"

	"faidx-core/fasta"
)

var (
	// ErrNotOpen is returned by operations on a closed or never-opened File.
	ErrNotOpen = errors.New("fai: fasta file not open")

	// ErrNoIndex is returned by GetLength when no index is available —
	// without one there is no length metadata to answer from.
	ErrNoIndex = errors.New("fai: no index available")
)

// FormatError reports malformed FASTA or index content.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type FormatError struct {
	Line  int
	Msg   string
	cause error
}

func (e *FormatError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("fai: line %d: %s", e.Line, e.Msg)
	}
	return "fai: " + e.Msg
}

func (e *FormatError) Unwrap() error { return e.cause }

// RangeError reports a reference id or sequence position outside the valid
// bounds of the addressed record.
type RangeError struct {
	Op    string
	Arg   string
	Value int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("fai: %s: %s %d out of range", e.Op, e.Arg, e.Value)
}

// translateScanError maps record-walker failures into this package's
// taxonomy: header problems become FormatErrors, everything else passes
// through as an I/O failure.
func translateScanError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, fasta.ErrNoHeader) {
		return &FormatError{Msg: "expected '>' header", cause: err}
	}
	if errors.Is(err, fasta.ErrEmptyHeader) {
		return &FormatError{Msg: "header has no name", cause: err}
	}
	return fmt.Errorf("fai: scan: %w", err)
}
