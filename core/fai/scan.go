// core/fai/scan.go
package fai

import (
	"io"

	"faidx-core/fasta"
)

// The sequential fallback answers lookups with no index loaded: rewind,
// walk header/sequence pairs in file order until refID is reached, then
// answer from the materialized record. O(refID) record scans per call and
// O(record length) memory — explicitly the slow path. All fallback
// accessors share this one walking primitive.
func (fl *File) materialize(op string, refID int) (fasta.Record, error) {
	if refID < 0 {
		return fasta.Record{}, &RangeError{Op: op, Arg: "refID", Value: refID}
	}
	if err := rewind(fl.f); err != nil {
		return fasta.Record{}, err
	}
	w := fasta.NewWalker(fl.f)
	for id := 0; ; id++ {
		rec, err := w.Next()
		if err == io.EOF {
			// walked off the end before reaching refID
			return fasta.Record{}, &RangeError{Op: op, Arg: "refID", Value: refID}
		}
		if err != nil {
			return fasta.Record{}, translateScanError(err)
		}
		if id == refID {
			return rec, nil
		}
	}
}

func (fl *File) scanBase(refID, pos int) (byte, error) {
	rec, err := fl.materialize("GetBase", refID)
	if err != nil {
		return 0, err
	}
	if pos < 0 || pos >= len(rec.Seq) {
		return 0, &RangeError{Op: "GetBase", Arg: "position", Value: pos}
	}
	return rec.Seq[pos], nil
}

func (fl *File) scanSequence(refID, start, stop int) ([]byte, error) {
	rec, err := fl.materialize("GetSequence", refID)
	if err != nil {
		return nil, err
	}
	if start < 0 || start >= len(rec.Seq) || start > stop || stop > len(rec.Seq) {
		return nil, &RangeError{Op: "GetSequence", Arg: "start/stop", Value: stop}
	}
	if stop == len(rec.Seq) {
		return rec.Seq[start:], nil
	}
	return rec.Seq[start : stop+1], nil
}
