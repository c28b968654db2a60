// core/fai/builder.go
package fai

import (
	"bufio"
	"fmt"
	"io"

	"faidx-core/fasta"
)

// Build scans a FASTA stream from its start and produces a complete Index,
// or fails without one. The line-wrap geometry is derived once, from the
// first record's first sequence line, and reused for every record: the
// table is only valid for files with a uniform wrap width throughout.
func Build(rs io.ReadSeeker) (*Index, error) {
	if err := rewind(rs); err != nil {
		return nil, err
	}
	lineLength, byteLength, err := readGeometry(bufio.NewReader(rs))
	if err != nil {
		return nil, err
	}
	if err := rewind(rs); err != nil {
		return nil, err
	}

	br := bufio.NewReader(rs)
	var (
		entries []Entry
		offset  int64
		ln      int
	)
	for {
		raw, err := br.ReadBytes('\n')
		if len(raw) == 0 && err == io.EOF {
			break // clean end of stream
		}
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("fai: read header: %w", err)
		}
		ln++
		hdr := fasta.Chomp(raw)
		if len(hdr) == 0 || hdr[0] != fasta.Marker {
			return nil, &FormatError{Line: ln, Msg: "expected '>' header"}
		}
		offset += int64(len(raw))

		name, ok := fasta.HeaderName(hdr[1:])
		if !ok {
			return nil, &FormatError{Line: ln, Msg: "header has no name"}
		}
		e := Entry{
			Name:       name,
			Offset:     offset,
			LineLength: lineLength,
			ByteLength: byteLength,
		}

		for {
			peek, perr := br.Peek(1)
			if perr == io.EOF {
				break
			}
			if perr != nil {
				return nil, fmt.Errorf("fai: read sequence: %w", perr)
			}
			if peek[0] == fasta.Marker {
				break
			}
			raw, rerr := br.ReadBytes('\n')
			if rerr != nil && rerr != io.EOF {
				return nil, fmt.Errorf("fai: read sequence: %w", rerr)
			}
			ln++
			offset += int64(len(raw))
			e.Length += len(fasta.Chomp(raw))
			if rerr == io.EOF {
				break
			}
		}

		entries = append(entries, e)
	}
	return NewIndex(entries), nil
}

// readGeometry derives the global (LineLength, ByteLength) pair from the
// first record's first sequence line. ByteLength counts the bytes up to the
// terminator plus one, so a CR ends up in ByteLength but not LineLength.
func readGeometry(br *bufio.Reader) (lineLength, byteLength int, err error) {
	raw, rerr := br.ReadBytes('\n')
	if len(raw) == 0 && rerr == io.EOF {
		return 0, 0, &FormatError{Line: 1, Msg: "empty input"}
	}
	if rerr != nil && rerr != io.EOF {
		return 0, 0, fmt.Errorf("fai: read header: %w", rerr)
	}
	if raw[0] != fasta.Marker {
		return 0, 0, &FormatError{Line: 1, Msg: "expected '>' header"}
	}

	raw, rerr = br.ReadBytes('\n')
	if len(raw) == 0 && rerr == io.EOF {
		return 0, 0, &FormatError{Line: 2, Msg: "missing sequence line"}
	}
	if rerr != nil && rerr != io.EOF {
		return 0, 0, fmt.Errorf("fai: read sequence: %w", rerr)
	}
	if raw[len(raw)-1] == '\n' {
		byteLength = len(raw)
	} else {
		byteLength = len(raw) + 1
	}
	for _, c := range raw {
		if c != ' ' && c != '\t' && c != '\r' && c != '\n' {
			lineLength++
		}
	}
	if lineLength == 0 {
		return 0, 0, &FormatError{Line: 2, Msg: "blank sequence line"}
	}
	return lineLength, byteLength, nil
}

func rewind(rs io.ReadSeeker) error {
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("fai: rewind: %w", err)
	}
	return nil
}
