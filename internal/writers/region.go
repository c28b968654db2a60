// internal/writers/region.go
package writers

import (
	"fmt"
	"io"

	"faidx/internal/jsonutil"
)

// Region is one answered query. Start/Stop are 1-based inclusive display
// coordinates; Seq is empty for --length results and Length is zero for
// base/sequence results.
type Region struct {
	File   string `json:"file,omitempty"`
	RefID  int    `json:"refId"`
	Name   string `json:"name,omitempty"`
	Start  int    `json:"start,omitempty"`
	Stop   int    `json:"stop,omitempty"`
	Seq    string `json:"seq,omitempty"`
	Length int    `json:"length,omitempty"`
}

func init() {
	regionWriters["text"] = func(w io.Writer, r Region, _ int) error {
		if r.Seq == "" {
			_, err := fmt.Fprintf(w, "%d\n", r.Length)
			return err
		}
		_, err := fmt.Fprintf(w, "%s\n", r.Seq)
		return err
	}
	regionWriters["json"] = func(w io.Writer, r Region, _ int) error {
		return jsonutil.EncodePretty(w, r)
	}
	regionWriters["jsonl"] = func(w io.Writer, r Region, _ int) error {
		return jsonutil.EncodeLine(w, r)
	}
	regionWriters["fasta"] = writeRegionFASTA
}

func writeRegionFASTA(w io.Writer, r Region, wrap int) error {
	if _, err := fmt.Fprintf(w, ">%s:%d-%d\n", r.Name, r.Start, r.Stop); err != nil {
		return err
	}
	seq := r.Seq
	for len(seq) > 0 {
		n := wrap
		if n > len(seq) {
			n = len(seq)
		}
		if _, err := fmt.Fprintf(w, "%s\n", seq[:n]); err != nil {
			return err
		}
		seq = seq[n:]
	}
	return nil
}
