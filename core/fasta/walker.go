// core/fasta/walker.go
package fasta

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

var (
	// ErrNoHeader is returned when a record boundary does not start with the
	// header marker.
	ErrNoHeader = errors.New("fasta: expected '>' header")

	// ErrEmptyHeader is returned when a header line carries no name token.
	ErrEmptyHeader = errors.New("fasta: header has no name")
)

// Walker steps through FASTA records one at a time. It is lazy and finite:
// each Next call materializes exactly one record, and io.EOF signals a clean
// end of input. Restart by constructing a new Walker over a rewound reader.
type Walker struct {
	br   *bufio.Reader
	line int
	done bool
}

// NewWalker returns a Walker reading records from r.
func NewWalker(r io.Reader) *Walker {
	return &Walker{br: bufio.NewReader(r)}
}

// Next returns the next record in file order. It returns io.EOF once the
// input is exhausted and a wrapped ErrNoHeader/ErrEmptyHeader for malformed
// input. Read failures abort the walk.
func (w *Walker) Next() (Record, error) {
	if w.done {
		return Record{}, io.EOF
	}

	raw, err := w.br.ReadBytes('\n')
	if len(raw) == 0 && err == io.EOF {
		w.done = true
		return Record{}, io.EOF
	}
	if err != nil && err != io.EOF {
		return Record{}, fmt.Errorf("fasta: read: %w", err)
	}
	w.line++

	hdr := Chomp(raw)
	if len(hdr) == 0 || hdr[0] != Marker {
		return Record{}, fmt.Errorf("%w (line %d)", ErrNoHeader, w.line)
	}
	name, ok := HeaderName(hdr[1:])
	if !ok {
		return Record{}, fmt.Errorf("%w (line %d)", ErrEmptyHeader, w.line)
	}

	rec := Record{Name: name}
	for {
		peek, err := w.br.Peek(1)
		if err == io.EOF {
			w.done = true
			return rec, nil
		}
		if err != nil {
			return Record{}, fmt.Errorf("fasta: read: %w", err)
		}
		if peek[0] == Marker {
			return rec, nil
		}
		raw, err := w.br.ReadBytes('\n')
		if err != nil && err != io.EOF {
			return Record{}, fmt.Errorf("fasta: read: %w", err)
		}
		w.line++
		rec.Seq = append(rec.Seq, Chomp(raw)...)
		if err == io.EOF {
			w.done = true
			return rec, nil
		}
	}
}
