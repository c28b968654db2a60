package fai

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = ">seq1 desc\nACGTACGT\nACGT\n>seq2\nTTTT\n"

func TestBuildSample(t *testing.T) {
	idx, err := Build(strings.NewReader(sample))
	require.NoError(t, err)
	require.Equal(t, 2, idx.Count())

	e0, err := idx.Entry(0)
	require.NoError(t, err)
	assert.Equal(t, Entry{Name: "seq1", Length: 12, Offset: 11, LineLength: 8, ByteLength: 9}, e0)

	e1, err := idx.Entry(1)
	require.NoError(t, err)
	assert.Equal(t, Entry{Name: "seq2", Length: 4, Offset: 31, LineLength: 8, ByteLength: 9}, e1)
}

func TestBuildSharesFirstRecordGeometry(t *testing.T) {
	// wrap width 4 from the first record applies to every entry
	idx, err := Build(strings.NewReader(">a\nACGT\nAC\n>b\nGGGGGG\n"))
	require.NoError(t, err)
	for _, e := range idx.Entries() {
		assert.Equal(t, 4, e.LineLength)
		assert.Equal(t, 5, e.ByteLength)
	}
}

func TestBuildCRLF(t *testing.T) {
	idx, err := Build(strings.NewReader(">a x\r\nACGTACGT\r\nAC\r\n"))
	require.NoError(t, err)
	e, err := idx.Entry(0)
	require.NoError(t, err)
	assert.Equal(t, 8, e.LineLength)
	assert.Equal(t, 10, e.ByteLength) // CR counts toward bytes, not visible chars
	assert.Equal(t, 10, e.Length)
	assert.Equal(t, int64(6), e.Offset)
}

func TestBuildNoTrailingNewline(t *testing.T) {
	idx, err := Build(strings.NewReader(">a\nACGT\nAC"))
	require.NoError(t, err)
	e, err := idx.Entry(0)
	require.NoError(t, err)
	assert.Equal(t, 6, e.Length)
}

func TestBuildRejectsMissingHeader(t *testing.T) {
	_, err := Build(strings.NewReader("ACGT\n"))
	var fe *FormatError
	require.True(t, errors.As(err, &fe), "got %v", err)
	assert.Equal(t, 1, fe.Line)
}

func TestBuildRejectsEmptyHeaderName(t *testing.T) {
	_, err := Build(strings.NewReader(">a\nACGT\n> \nTTTT\n"))
	var fe *FormatError
	require.True(t, errors.As(err, &fe), "got %v", err)
}

func TestBuildRejectsEmptyInput(t *testing.T) {
	_, err := Build(strings.NewReader(""))
	var fe *FormatError
	assert.True(t, errors.As(err, &fe), "got %v", err)
}

func TestBuildRejectsHeaderOnly(t *testing.T) {
	_, err := Build(strings.NewReader(">a\n"))
	var fe *FormatError
	assert.True(t, errors.As(err, &fe), "got %v", err)
}

func TestBuildIdsStableAcrossRebuilds(t *testing.T) {
	first, err := Build(strings.NewReader(sample))
	require.NoError(t, err)
	second, err := Build(strings.NewReader(sample))
	require.NoError(t, err)
	assert.Equal(t, first.Entries(), second.Entries())
}

func TestIndexRefID(t *testing.T) {
	idx, err := Build(strings.NewReader(sample))
	require.NoError(t, err)

	id, ok := idx.RefID("seq2")
	require.True(t, ok)
	assert.Equal(t, 1, id)

	_, ok = idx.RefID("nope")
	assert.False(t, ok)
}

func TestIndexEntryOutOfRange(t *testing.T) {
	idx, err := Build(strings.NewReader(sample))
	require.NoError(t, err)
	for _, id := range []int{-1, 2} {
		_, err := idx.Entry(id)
		var re *RangeError
		assert.True(t, errors.As(err, &re), "refID %d: got %v", id, err)
	}
}
