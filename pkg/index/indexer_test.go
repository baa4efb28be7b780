package index

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RvanB/fastmarc/pkg/marc/marctest"
)

func TestBuild_EmptySource(t *testing.T) {
	ix, err := Build(bytes.NewReader(nil))
	require.NoError(t, err)
	assert.Equal(t, 0, ix.Len())
}

func TestBuild_SingleRecord(t *testing.T) {
	rec := marctest.Record(marctest.Control("001", "ocm12345"))

	ix, err := Build(bytes.NewReader(rec))
	require.NoError(t, err)
	require.Equal(t, 1, ix.Len())

	desc := ix.At(0)
	assert.Equal(t, int64(0), desc.Offset)
	assert.Equal(t, uint32(len(rec)), desc.Length)
}

func TestBuild_MultipleRecords(t *testing.T) {
	recs := [][]byte{
		marctest.Record(marctest.Control("001", "a")),
		marctest.Record(marctest.Data("245", "10", marctest.Sub('a', "Title"))),
		marctest.Record(),
	}
	file := marctest.File(recs...)

	ix, err := Build(bytes.NewReader(file))
	require.NoError(t, err)
	require.Equal(t, len(recs), ix.Len())

	// Descriptors are in file order, non-overlapping, and each length
	// matches the record's declared length.
	var offset int64
	for i, rec := range recs {
		desc := ix.At(i)
		assert.Equal(t, offset, desc.Offset)
		assert.Equal(t, uint32(len(rec)), desc.Length)
		offset += int64(len(rec))
	}
}

func TestBuild_TruncatedMidRecord(t *testing.T) {
	recs := [][]byte{
		marctest.Record(marctest.Control("001", "a")),
		marctest.Record(marctest.Control("001", "b")),
		marctest.Record(marctest.Control("001", "c")),
	}
	file := marctest.File(recs...)
	cut := file[:len(file)-10]

	ix, err := Build(bytes.NewReader(cut))
	assert.ErrorIs(t, err, ErrTruncatedLength)

	// The scanned prefix survives the failure.
	require.Equal(t, 2, ix.Len())

	var berr *BuildError
	require.ErrorAs(t, err, &berr)
	assert.Equal(t, int64(len(recs[0])+len(recs[1])), berr.Offset)
}

func TestBuild_TruncatedLengthPrefix(t *testing.T) {
	rec := marctest.Record(marctest.Control("001", "a"))
	file := append(append([]byte(nil), rec...), '0', '0')

	ix, err := Build(bytes.NewReader(file))
	assert.ErrorIs(t, err, ErrTruncatedLength)
	assert.Equal(t, 1, ix.Len())
}

func TestBuild_MalformedLengthPrefix(t *testing.T) {
	rec := marctest.Record(marctest.Control("001", "a"))
	file := append(append([]byte(nil), rec...), "junk-bytes"...)

	ix, err := Build(bytes.NewReader(file))
	assert.ErrorIs(t, err, ErrTruncatedLength)
	assert.Equal(t, 1, ix.Len())

	var berr *BuildError
	require.ErrorAs(t, err, &berr)
	assert.Equal(t, int64(len(rec)), berr.Offset)
}

func TestBuild_LengthBelowLeaderSize(t *testing.T) {
	// A declared length of 10 cannot even hold the 24-byte leader.
	file := []byte("00010 rest of a bogus record")

	ix, err := Build(bytes.NewReader(file))
	assert.ErrorIs(t, err, ErrInvalidRecordLength)
	assert.Equal(t, 0, ix.Len())

	var berr *BuildError
	require.ErrorAs(t, err, &berr)
	assert.Equal(t, int64(0), berr.Offset)
}

// countingReadSeeker counts bytes delivered through Read; Seek is free.
type countingReadSeeker struct {
	rs        io.ReadSeeker
	bytesRead int
}

func (c *countingReadSeeker) Read(p []byte) (int, error) {
	n, err := c.rs.Read(p)
	c.bytesRead += n
	return n, err
}

func (c *countingReadSeeker) Seek(offset int64, whence int) (int64, error) {
	return c.rs.Seek(offset, whence)
}

// sequentialOnly hides the Seek method of the wrapped source.
type sequentialOnly struct {
	io.Reader
}

func TestBuild_SeekableReadsOnlyLengthPrefixes(t *testing.T) {
	const records = 50
	big := strings.Repeat("x", 8000)
	recs := make([][]byte, records)
	for i := range recs {
		recs[i] = marctest.Record(marctest.Data("520", "  ", marctest.Sub('a', big)))
	}
	file := marctest.File(recs...)

	src := &countingReadSeeker{rs: bytes.NewReader(file)}
	ix, err := Build(src)
	require.NoError(t, err)
	require.Equal(t, records, ix.Len())

	// Bodies are skipped by seeking: the scan reads the 5-byte length
	// prefix of each record and nothing else.
	assert.Equal(t, records*5, src.bytesRead)
	assert.Less(t, src.bytesRead, len(file)/100)
}

func TestBuild_SequentialSourceFallback(t *testing.T) {
	recs := [][]byte{
		marctest.Record(marctest.Control("001", "a")),
		marctest.Record(marctest.Data("245", "10", marctest.Sub('a', "Title"))),
	}
	file := marctest.File(recs...)

	ix, err := Build(sequentialOnly{bytes.NewReader(file)})
	require.NoError(t, err)
	require.Equal(t, len(recs), ix.Len())
	assert.Equal(t, uint32(len(recs[0])), ix.At(0).Length)
	assert.Equal(t, int64(len(recs[0])), ix.At(1).Offset)
}

func TestBuild_SequentialTruncatedMidRecord(t *testing.T) {
	recs := [][]byte{
		marctest.Record(marctest.Control("001", "a")),
		marctest.Record(marctest.Control("001", "b")),
	}
	file := marctest.File(recs...)
	cut := file[:len(file)-10]

	ix, err := Build(sequentialOnly{bytes.NewReader(cut)})
	assert.ErrorIs(t, err, ErrTruncatedLength)
	require.Equal(t, 1, ix.Len())

	var berr *BuildError
	require.ErrorAs(t, err, &berr)
	assert.Equal(t, int64(len(recs[0])), berr.Offset)
}

func TestBuild_LeadingZerosPermitted(t *testing.T) {
	rec := marctest.Record()
	require.Equal(t, byte('0'), rec[0])

	ix, err := Build(bytes.NewReader(rec))
	require.NoError(t, err)
	assert.Equal(t, 1, ix.Len())
}
