// core/fasta/record.go
package fasta

import "bytes"

// Marker is the header marker character that opens every FASTA record.
const Marker = '>'

// Record is one parsed FASTA entry: the name from its header line and the
// concatenated sequence with line wrapping removed.
type Record struct {
	Name string
	Seq  []byte
}

// HeaderName extracts the record name from a header line with the marker
// already stripped: the first whitespace-delimited token. ok is false when
// the header carries no token at all.
func HeaderName(hdr []byte) (name string, ok bool) {
	f := bytes.Fields(hdr)
	if len(f) == 0 {
		return "", false
	}
	return string(f[0]), true
}

// Chomp trims trailing CR/LF bytes from a raw line.
func Chomp(line []byte) []byte {
	for len(line) > 0 && (line[len(line)-1] == '\n' || line[len(line)-1] == '\r') {
		line = line[:len(line)-1]
	}
	return line
}
