// core/fai/entry.go

// Package fai provides indexed random access to line-wrapped FASTA files.
//
// A built index records, per sequence, the byte offset where its data
// begins plus the file's line-wrap geometry, so a (record, position) pair
// maps to a byte address with no scanning. Without an index every lookup
// degrades to a forward walk from the start of the file.
package fai

// Entry holds the per-record metadata needed for seek arithmetic.
type Entry struct {
	// Name is the identifier parsed from the header line.
	Name string
	// Length counts sequence characters, line terminators excluded.
	Length int
	// Offset is the byte position where sequence data begins, immediately
	// after the header line and its terminator.
	Offset int64
	// LineLength is the number of visible characters per wrapped line.
	LineLength int
	// ByteLength is the number of bytes per wrapped line including the
	// terminator(s) — it differs from LineLength+1 on CRLF files.
	ByteLength int
}

// seek maps the logical 0-based position pos to its byte address.
func (e Entry) seek(pos int) int64 {
	lines := int64(pos / e.LineLength)
	return e.Offset + lines*int64(e.ByteLength) + int64(pos%e.LineLength)
}

// Index is the ordered table of entries for one FASTA file. A record's
// reference id is its position in the table: zero-based, assigned in file
// order, identical whether the table was built by scanning or loaded from
// disk.
type Index struct {
	entries []Entry
	byName  map[string]int
}

// NewIndex builds an Index over entries, which it takes ownership of.
func NewIndex(entries []Entry) *Index {
	byName := make(map[string]int, len(entries))
	for i, e := range entries {
		if _, dup := byName[e.Name]; !dup {
			byName[e.Name] = i
		}
	}
	return &Index{entries: entries, byName: byName}
}

// Count returns the number of records in the table.
func (x *Index) Count() int { return len(x.entries) }

// Entry returns the metadata for refID.
func (x *Index) Entry(refID int) (Entry, error) {
	if refID < 0 || refID >= len(x.entries) {
		return Entry{}, &RangeError{Op: "Entry", Arg: "refID", Value: refID}
	}
	return x.entries[refID], nil
}

// RefID returns the reference id for a record name. For duplicate names the
// first occurrence in file order wins.
func (x *Index) RefID(name string) (int, bool) {
	id, ok := x.byName[name]
	return id, ok
}

// Entries returns the table in record order. The slice is shared; callers
// must not modify it.
func (x *Index) Entries() []Entry { return x.entries }
