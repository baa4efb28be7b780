// Package reader composes the boundary index and the record decoder behind a
// single ownership boundary: open once, pay for one indexing pass, then
// count in O(1), seek to any record, or iterate as many times as needed.
package reader
