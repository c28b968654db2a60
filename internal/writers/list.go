// internal/writers/list.go
package writers

import (
	"fmt"
	"io"

	"faidx/internal/jsonutil"
)

// ListRow is one index table line. Offset < 0 marks rows produced by a
// sequential scan, where no byte geometry exists to report.
type ListRow struct {
	Name       string `json:"name"`
	Length     int    `json:"length"`
	Offset     int64  `json:"offset"`
	LineLength int    `json:"lineLength,omitempty"`
	ByteLength int    `json:"byteLength,omitempty"`
}

const listHeader = "name\tlength\toffset\tlineLength\tbyteLength"

func init() {
	listWriters["text"] = writeListText
	listWriters["json"] = func(w io.Writer, rows []ListRow, _ bool) error {
		return jsonutil.EncodePretty(w, rows)
	}
	listWriters["jsonl"] = func(w io.Writer, rows []ListRow, _ bool) error {
		for _, r := range rows {
			if err := jsonutil.EncodeLine(w, r); err != nil {
				return err
			}
		}
		return nil
	}
}

func writeListText(w io.Writer, rows []ListRow, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, listHeader); err != nil {
			return err
		}
	}
	for _, r := range rows {
		var err error
		if r.Offset < 0 {
			_, err = fmt.Fprintf(w, "%s\t%d\n", r.Name, r.Length)
		} else {
			_, err = fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\n",
				r.Name, r.Length, r.Offset, r.LineLength, r.ByteLength)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
