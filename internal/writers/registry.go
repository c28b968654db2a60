// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
)

// Writer registries (format → handler), populated from init() in the
// per-payload files. Dispatch replaces format switch statements at call sites.
var (
	listWriters   = map[string]func(io.Writer, []ListRow, bool) error{}
	regionWriters = map[string]func(io.Writer, Region, int) error{}
)

// WriteList renders an index listing in the requested format.
func WriteList(format string, w io.Writer, rows []ListRow, header bool) error {
	fn, ok := listWriters[format]
	if !ok {
		return fmt.Errorf("unknown list format %q (no writer registered)", format)
	}
	return fn(w, rows, header)
}

// WriteRegion renders one query result in the requested format. wrap is the
// line width used by the fasta writer.
func WriteRegion(format string, w io.Writer, r Region, wrap int) error {
	fn, ok := regionWriters[format]
	if !ok {
		return fmt.Errorf("unknown region format %q (no writer registered)", format)
	}
	return fn(w, r, wrap)
}
