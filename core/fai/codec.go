// core/fai/codec.go
package fai

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// WriteIndex encodes the table to w: one line per record, five tab-separated
// fields in fixed order (name, length, offset, lineLength, byteLength).
// Encoding the same table twice yields byte-identical output.
func WriteIndex(w io.Writer, x *Index) error {
	bw := bufio.NewWriter(w)
	for _, e := range x.Entries() {
		if _, err := fmt.Fprintf(bw, "%s\t%d\t%d\t%d\t%d\n",
			e.Name, e.Length, e.Offset, e.LineLength, e.ByteLength); err != nil {
			return fmt.Errorf("fai: write index: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("fai: write index: %w", err)
	}
	return nil
}

// ReadIndex decodes a persisted index from r. Decoding stops at a blank
// line or end of stream; any field that fails to parse, or that decodes to
// geometry no FASTA file can have, aborts the entire load, so a
// half-decoded table is never returned.
func ReadIndex(r io.Reader) (*Index, error) {
	var entries []Entry
	sc := bufio.NewScanner(r)
	ln := 0
	for sc.Scan() {
		ln++
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			break
		}
		f := strings.Split(line, "\t")
		if len(f) != 5 {
			return nil, &FormatError{Line: ln, Msg: fmt.Sprintf("expected 5 fields, got %d", len(f))}
		}
		e := Entry{Name: f[0]}
		var err error
		if e.Length, err = strconv.Atoi(f[1]); err != nil {
			return nil, &FormatError{Line: ln, Msg: "bad length field", cause: err}
		}
		if e.Offset, err = strconv.ParseInt(f[2], 10, 64); err != nil {
			return nil, &FormatError{Line: ln, Msg: "bad offset field", cause: err}
		}
		if e.LineLength, err = strconv.Atoi(f[3]); err != nil {
			return nil, &FormatError{Line: ln, Msg: "bad lineLength field", cause: err}
		}
		if e.ByteLength, err = strconv.Atoi(f[4]); err != nil {
			return nil, &FormatError{Line: ln, Msg: "bad byteLength field", cause: err}
		}
		if e.Length < 0 || e.Offset < 0 {
			return nil, &FormatError{Line: ln, Msg: "negative length or offset"}
		}
		// a wrapped line always carries at least one sequence character
		// and its terminator; anything else breaks the seek arithmetic
		if e.LineLength < 1 || e.ByteLength <= e.LineLength {
			return nil, &FormatError{Line: ln, Msg: "impossible line geometry"}
		}
		entries = append(entries, e)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("fai: read index: %w", err)
	}
	return NewIndex(entries), nil
}
