package fai

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodecRoundTrip(t *testing.T) {
	in := NewIndex([]Entry{
		{Name: "chr1", Length: 248956422, Offset: 112, LineLength: 60, ByteLength: 61},
		{Name: "chrM", Length: 16569, Offset: 253105810, LineLength: 60, ByteLength: 61},
	})

	var buf bytes.Buffer
	require.NoError(t, WriteIndex(&buf, in))

	out, err := ReadIndex(&buf)
	require.NoError(t, err)
	assert.Equal(t, in.Entries(), out.Entries())
}

func TestCodecEncodeIdempotent(t *testing.T) {
	idx, err := Build(strings.NewReader(sample))
	require.NoError(t, err)

	var a, b bytes.Buffer
	require.NoError(t, WriteIndex(&a, idx))
	require.NoError(t, WriteIndex(&b, idx))
	assert.Equal(t, a.Bytes(), b.Bytes())
}

func TestReadIndexStopsAtBlankLine(t *testing.T) {
	idx, err := ReadIndex(strings.NewReader("a\t4\t3\t4\t5\n\nb\t4\t12\t4\t5\n"))
	require.NoError(t, err)
	assert.Equal(t, 1, idx.Count())
}

func TestReadIndexBadNumericField(t *testing.T) {
	for _, in := range []string{
		"a\tx\t3\t4\t5\n",
		"a\t4\tx\t4\t5\n",
		"a\t4\t3\tx\t5\n",
		"a\t4\t3\t4\tx\n",
	} {
		_, err := ReadIndex(strings.NewReader(in))
		var fe *FormatError
		assert.True(t, errors.As(err, &fe), "input %q: got %v", in, err)
	}
}

func TestReadIndexImpossibleGeometry(t *testing.T) {
	// every field parses as an integer, but no FASTA file can produce it
	for _, in := range []string{
		"a\t4\t6\t0\t0\n",  // zero line width would divide by zero on seek
		"a\t4\t6\t8\t8\n",  // byteLength must exceed lineLength by a terminator
		"a\t4\t6\t-8\t9\n", // negative wrap width
		"a\t-4\t6\t8\t9\n", // negative length
		"a\t4\t-6\t8\t9\n", // negative offset
	} {
		_, err := ReadIndex(strings.NewReader(in))
		var fe *FormatError
		assert.True(t, errors.As(err, &fe), "input %q: got %v", in, err)
	}
}

func TestReadIndexBadFieldCount(t *testing.T) {
	_, err := ReadIndex(strings.NewReader("a\t4\t3\t4\n"))
	var fe *FormatError
	require.True(t, errors.As(err, &fe), "got %v", err)
	assert.Equal(t, 1, fe.Line)
}

func TestReadIndexAllOrNothing(t *testing.T) {
	// a bad second line must not expose the valid first one
	_, err := ReadIndex(strings.NewReader("a\t4\t3\t4\t5\nb\t4\tbogus\t4\t5\n"))
	var fe *FormatError
	require.True(t, errors.As(err, &fe), "got %v", err)
	assert.Equal(t, 2, fe.Line)
}

func TestReadIndexEmpty(t *testing.T) {
	idx, err := ReadIndex(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, 0, idx.Count())
}
