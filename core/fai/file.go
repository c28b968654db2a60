// core/fai/file.go
package fai

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// File provides random access to one FASTA file. When an index is present
// lookups seek straight to the computed byte address; without one they fall
// back to a forward walk from the start of the file.
//
// A File is not safe for concurrent use: the fallback path shares the
// underlying file cursor. Callers must serialize access or open one File
// per goroutine.
type File struct {
	f   *os.File
	idx *Index
}

// Open opens the FASTA file at path. If indexPath is non-empty the
// persisted index is loaded as well; a missing or malformed index file
// fails the open. Pass indexPath == "" to open without an index — lookups
// then use the sequential fallback until CreateIndex is called.
func Open(path, indexPath string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("fai: open %s: %w", path, err)
	}
	fl := &File{f: f}
	if indexPath != "" {
		ixf, err := os.Open(indexPath)
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("fai: open index %s: %w", indexPath, err)
		}
		idx, err := ReadIndex(ixf)
		_ = ixf.Close()
		if err != nil {
			_ = f.Close()
			return nil, err
		}
		fl.idx = idx
	}
	return fl, nil
}

// Close releases the underlying file handle and drops the index table.
// It is idempotent and safe to call on a File whose Open failed partway.
func (fl *File) Close() error {
	if fl.f == nil {
		return nil
	}
	err := fl.f.Close()
	fl.f = nil
	fl.idx = nil
	if err != nil {
		return fmt.Errorf("fai: close: %w", err)
	}
	return nil
}

// HasIndex reports whether an index table is loaded.
func (fl *File) HasIndex() bool { return fl.idx != nil }

// Index returns the active index table, or nil when none is loaded.
func (fl *File) Index() *Index { return fl.idx }

// CreateIndex rebuilds the index from the FASTA file and, when indexPath is
// non-empty, persists it there. The new table is built to the side and only
// installed — and only written over any previous index file — after the
// whole rebuild succeeds, so a failed rebuild never destroys a previously
// good index.
func (fl *File) CreateIndex(indexPath string) error {
	if fl.f == nil {
		return ErrNotOpen
	}
	idx, err := Build(fl.f)
	if err != nil {
		return err
	}
	if indexPath != "" {
		if err := writeIndexFile(indexPath, idx); err != nil {
			return err
		}
	}
	fl.idx = idx
	return nil
}

// writeIndexFile persists idx atomically: encode to a temp file in the
// target directory, then rename into place.
func writeIndexFile(path string, idx *Index) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".fai-*")
	if err != nil {
		return fmt.Errorf("fai: create index file: %w", err)
	}
	if err := WriteIndex(tmp, idx); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("fai: close index file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("fai: install index file: %w", err)
	}
	return nil
}

// GetLength returns the sequence length of refID. It is answered from index
// metadata only; without an index it returns ErrNoIndex.
func (fl *File) GetLength(refID int) (int, error) {
	if fl.f == nil {
		return 0, ErrNotOpen
	}
	if fl.idx == nil || fl.idx.Count() == 0 {
		return 0, ErrNoIndex
	}
	e, err := fl.idx.Entry(refID)
	if err != nil {
		return 0, err
	}
	return e.Length, nil
}

// GetBase returns the sequence character at 0-based position pos of record
// refID. Validation happens before any I/O: a rejected call performs no
// reads and leaves the file cursor untouched.
func (fl *File) GetBase(refID, pos int) (byte, error) {
	if fl.f == nil {
		return 0, ErrNotOpen
	}
	if fl.idx == nil || fl.idx.Count() == 0 {
		return fl.scanBase(refID, pos)
	}

	e, err := fl.idx.Entry(refID)
	if err != nil {
		return 0, err
	}
	if pos < 0 || pos >= e.Length {
		return 0, &RangeError{Op: "GetBase", Arg: "position", Value: pos}
	}
	var b [1]byte
	if _, err := fl.f.ReadAt(b[:], e.seek(pos)); err != nil {
		return 0, fmt.Errorf("fai: read base: %w", err)
	}
	return b[0], nil
}

// GetSequence returns the subsequence of record refID from start through
// stop, both 0-based and stop inclusive. start must lie inside the record;
// stop may equal the record length, in which case the result is clamped to
// the record's tail.
func (fl *File) GetSequence(refID, start, stop int) ([]byte, error) {
	if fl.f == nil {
		return nil, ErrNotOpen
	}
	if fl.idx == nil || fl.idx.Count() == 0 {
		return fl.scanSequence(refID, start, stop)
	}

	e, err := fl.idx.Entry(refID)
	if err != nil {
		return nil, err
	}
	if start < 0 || start >= e.Length || start > stop || stop > e.Length {
		return nil, &RangeError{Op: "GetSequence", Arg: "start/stop", Value: stop}
	}
	want := stop - start + 1
	if avail := e.Length - start; want > avail {
		want = avail
	}

	from, to := e.seek(start), e.seek(stop)
	raw := make([]byte, to-from+1)
	n, err := fl.f.ReadAt(raw, from)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("fai: read sequence: %w", err)
	}

	out := make([]byte, 0, want)
	for _, c := range raw[:n] {
		if c == '\n' || c == '\r' {
			continue
		}
		out = append(out, c)
		if len(out) == want {
			break
		}
	}
	if len(out) < want {
		return nil, &FormatError{Msg: "indexed length exceeds file data"}
	}
	return out, nil
}
