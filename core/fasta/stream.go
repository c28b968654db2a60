// core/fasta/stream.go
package fasta

import (
	"context"
	"io"
)

// StreamPath opens path (plain, gzip, or "-" for stdin) and calls emit for
// each record in file order. Cancellation via ctx is honored between
// records. emit may return a non-nil error to stop the walk early.
func StreamPath(ctx context.Context, path string, emit func(Record) error) error {
	rc, err := OpenReader(path)
	if err != nil {
		return err
	}
	defer func() { _ = rc.Close() }()

	w := NewWalker(rc)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		rec, err := w.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if err := emit(rec); err != nil {
			return err
		}
	}
}
