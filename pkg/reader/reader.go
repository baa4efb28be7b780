package reader

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/RvanB/fastmarc/pkg/index"
	"github.com/RvanB/fastmarc/pkg/marc"
)

// ErrIndexOutOfRange reports a Get position at or past Len.
var ErrIndexOutOfRange = errors.New("record index out of range")

// Options holds decode policy for a Reader.
type Options struct {
	// Strict turns the missing-record-terminator warning into a hard
	// per-record decode failure.
	Strict bool
}

// Reader owns a byte source and the boundary index built over it. The index
// is built once at open time; Len is then O(1) and Get seeks straight to a
// record. Records are decoded lazily, one per Get or iteration step.
//
// Get is safe for concurrent use: the index is read-only after construction
// and all source reads are positioned.
type Reader struct {
	src      io.ReaderAt
	idx      *index.Index
	indexErr error
	opts     Options
	file     *os.File
}

// Open builds the boundary index over src and returns a Reader holding it.
//
// If indexing stops early (truncated or malformed input), Open returns the
// Reader together with the indexing error: the Reader holds the descriptors
// scanned before the failure point, so the caller can proceed with partial
// data or give up, its choice. The returned Reader is nil only when it is
// unusable outright.
func Open(src io.ReaderAt, size int64, opts Options) (*Reader, error) {
	start := time.Now()
	ix, err := index.Build(io.NewSectionReader(src, 0, size))
	indexBuildDuration.Observe(time.Since(start).Seconds())
	status := statusSuccess
	if err != nil {
		status = statusError
	}
	indexBuildsTotal.WithLabelValues(status).Inc()
	recordsIndexedTotal.Add(float64(ix.Len()))

	return &Reader{
		src:      src,
		idx:      ix,
		indexErr: err,
		opts:     opts,
	}, err
}

// OpenFile opens path and builds a Reader over it. The Reader owns the file
// handle; Close releases it. As with Open, a partial-index error comes back
// alongside a usable Reader.
func OpenFile(path string, opts Options) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	r, err := Open(f, fi.Size(), opts)
	if r == nil {
		f.Close()
		return nil, err
	}
	r.file = f
	return r, err
}

// Len returns the number of indexed records in O(1).
func (r *Reader) Len() int {
	return r.idx.Len()
}

// IndexErr returns the error that stopped index construction, or nil if the
// whole source indexed cleanly.
func (r *Reader) IndexErr() error {
	return r.indexErr
}

// Get reads and decodes the i-th record. A decode failure is local to that
// record: the Reader and its index stay valid and adjacent records remain
// readable.
func (r *Reader) Get(i int) (*marc.Record, error) {
	if i < 0 || i >= r.idx.Len() {
		return nil, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, r.idx.Len())
	}
	desc := r.idx.At(i)
	buf := make([]byte, desc.Length)
	if _, err := r.src.ReadAt(buf, desc.Offset); err != nil {
		recordsDecodedTotal.WithLabelValues(statusError).Inc()
		return nil, fmt.Errorf("read record %d at offset %d: %w", i, desc.Offset, err)
	}
	rec, err := marc.Decode(buf, marc.DecodeOptions{Strict: r.opts.Strict})
	if err != nil {
		recordsDecodedTotal.WithLabelValues(statusError).Inc()
		return nil, fmt.Errorf("record %d at offset %d: %w", i, desc.Offset, err)
	}
	recordsDecodedTotal.WithLabelValues(statusSuccess).Inc()
	return rec, nil
}

// Records returns a fresh iterator over all indexed records in file order.
// Iteration re-reads and re-decodes from the source, so independent passes
// over the same Reader yield equal results; the index itself is never
// touched.
func (r *Reader) Records() RecordIterator {
	return &recordIterator{r: r}
}

// Close releases the file handle when the Reader was built by OpenFile; it
// is a no-op for a caller-owned source.
func (r *Reader) Close() error {
	if r.file != nil {
		return r.file.Close()
	}
	return nil
}
