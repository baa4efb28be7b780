// Package index builds a random-access index of record boundaries over a
// MARC21 byte stream. One forward pass reads only the 5-byte length prefix of
// each record and skips the body, so indexing costs constant work per record
// regardless of record size.
package index

import (
	"fmt"
	"io"

	"github.com/RvanB/fastmarc/pkg/marc"
)

// lengthPrefixSize is the 5-digit ASCII record length opening every record
// (it doubles as the first leader field).
const lengthPrefixSize = 5

// RecordDescriptor is the byte span of one undecoded record within the
// source.
type RecordDescriptor struct {
	Offset int64
	Length uint32
}

// Index is an ordered, immutable sequence of record descriptors in file
// order. It is built exactly once per source and is safe to share by
// reference across goroutines.
type Index struct {
	descs []RecordDescriptor
}

// Len returns the number of indexed records.
func (ix *Index) Len() int {
	return len(ix.descs)
}

// At returns the i-th descriptor. It panics if i is out of range, like a
// slice access; Reader.Get is the bounds-checked path.
func (ix *Index) At(i int) RecordDescriptor {
	return ix.descs[i]
}

// Build scans src once and returns the index of record boundaries.
//
// When src can seek, record bodies are skipped with Seek and the scan reads
// exactly the 5-byte length prefix per record, which is what makes indexing
// O(number of records) rather than O(total bytes). A purely sequential
// source falls back to discarding body bytes.
//
// The scan stops at the first structural problem: a length prefix that is
// short or non-numeric (ErrTruncatedLength), a declared length too small to
// hold a leader (ErrInvalidRecordLength), or a record body cut off by
// end-of-stream. In every failure case the returned Index still holds the
// descriptors of all complete records scanned before the failure point, so a
// caller can proceed with partial data; the error reports the byte offset of
// the failure. A source ending exactly at a record boundary, including a
// 0-byte source, indexes cleanly.
func Build(src io.Reader) (*Index, error) {
	if s, ok := src.(io.Seeker); ok {
		return buildSeeking(src, s)
	}
	return buildSequential(src)
}

// buildSeeking skips record bodies with Seek. Seeking past end-of-source
// does not error, so truncation is detected up front against the source's
// known end instead of by a short read.
func buildSeeking(src io.Reader, s io.Seeker) (*Index, error) {
	ix := &Index{}
	offset, err := s.Seek(0, io.SeekCurrent)
	if err != nil {
		return ix, fmt.Errorf("locate scan start: %w", err)
	}
	end, err := s.Seek(0, io.SeekEnd)
	if err != nil {
		return ix, fmt.Errorf("locate end of source: %w", err)
	}
	if _, err := s.Seek(offset, io.SeekStart); err != nil {
		return ix, fmt.Errorf("rewind to scan start: %w", err)
	}

	var prefix [lengthPrefixSize]byte
	for offset < end {
		n, err := io.ReadFull(src, prefix[:])
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return ix, buildErr(ErrTruncatedLength, offset, "only %d of %d length bytes before end of stream", n, lengthPrefixSize)
		}
		if err != nil {
			return ix, fmt.Errorf("read length prefix at offset %d: %w", offset, err)
		}

		length, err := checkPrefix(prefix[:], offset)
		if err != nil {
			return ix, err
		}
		if int64(length) > end-offset {
			return ix, buildErr(ErrTruncatedLength, offset, "record body truncated: %d of %d bytes", end-offset, length)
		}
		if _, err := s.Seek(int64(length-lengthPrefixSize), io.SeekCurrent); err != nil {
			return ix, fmt.Errorf("skip record body at offset %d: %w", offset, err)
		}

		ix.descs = append(ix.descs, RecordDescriptor{Offset: offset, Length: uint32(length)})
		offset += int64(length)
	}
	return ix, nil
}

// buildSequential is the fallback for sources with no way to seek: body
// bytes have to be read and discarded to reach the next length prefix.
func buildSequential(src io.Reader) (*Index, error) {
	ix := &Index{}
	var offset int64
	var prefix [lengthPrefixSize]byte
	for {
		n, err := io.ReadFull(src, prefix[:])
		if err == io.EOF {
			return ix, nil
		}
		if err == io.ErrUnexpectedEOF {
			return ix, buildErr(ErrTruncatedLength, offset, "only %d of %d length bytes before end of stream", n, lengthPrefixSize)
		}
		if err != nil {
			return ix, fmt.Errorf("read length prefix at offset %d: %w", offset, err)
		}

		length, err := checkPrefix(prefix[:], offset)
		if err != nil {
			return ix, err
		}

		body := int64(length - lengthPrefixSize)
		copied, err := io.CopyN(io.Discard, src, body)
		if err == io.EOF {
			return ix, buildErr(ErrTruncatedLength, offset, "record body truncated: %d of %d bytes", int64(lengthPrefixSize)+copied, length)
		}
		if err != nil {
			return ix, fmt.Errorf("skip record body at offset %d: %w", offset, err)
		}

		ix.descs = append(ix.descs, RecordDescriptor{Offset: offset, Length: uint32(length)})
		offset += int64(length)
	}
}

// checkPrefix validates one 5-byte length prefix read at offset.
func checkPrefix(prefix []byte, offset int64) (int, error) {
	length, ok := parseDigits(prefix)
	if !ok {
		return 0, buildErr(ErrTruncatedLength, offset, "length prefix %q is not numeric", prefix)
	}
	if length < marc.LeaderLength {
		return 0, buildErr(ErrInvalidRecordLength, offset, "declared length %d below leader size %d", length, marc.LeaderLength)
	}
	return length, nil
}

func parseDigits(buf []byte) (int, bool) {
	n := 0
	for _, b := range buf {
		if b < '0' || b > '9' {
			return 0, false
		}
		n = n*10 + int(b-'0')
	}
	return n, true
}
