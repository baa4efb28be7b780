package reader

import "github.com/RvanB/fastmarc/pkg/marc"

// RecordIterator walks a Reader's records in index order. Each Next reports
// one result: Record holds the decoded record, or Err the per-record decode
// failure. A failed record does not stop the walk. If index construction
// ended early, the iterator yields the indexing error as one final step after
// the last complete record.
type RecordIterator interface {
	Next() bool
	Record() *marc.Record
	Err() error
}

type recordIterator struct {
	r        *Reader
	next     int
	rec      *marc.Record
	err      error
	tailDone bool
}

func (it *recordIterator) Next() bool {
	it.rec, it.err = nil, nil
	if it.next < it.r.Len() {
		it.rec, it.err = it.r.Get(it.next)
		it.next++
		return true
	}
	if it.r.indexErr != nil && !it.tailDone {
		it.tailDone = true
		it.err = it.r.indexErr
		return true
	}
	return false
}

func (it *recordIterator) Record() *marc.Record {
	return it.rec
}

func (it *recordIterator) Err() error {
	return it.err
}
