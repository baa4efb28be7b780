// Package marctest assembles well-formed MARC21 byte spans for tests. It
// builds records bottom-up from field specs, computing directory entries,
// base address and the leader's length digits, so tests can state intent
// (tags, indicators, subfields) instead of hand-counting offsets.
package marctest

import (
	"fmt"
)

const (
	leaderLength         = 24
	directoryEntryLength = 12

	fieldTerminator   = 0x1E
	subfieldDelimiter = 0x1F
	recordTerminator  = 0x1D
)

// Subfield is one code/value pair of a data field spec.
type Subfield struct {
	Code  byte
	Value string
}

// Sub builds a Subfield.
func Sub(code byte, value string) Subfield {
	return Subfield{Code: code, Value: value}
}

// FieldSpec describes one field of a record under construction.
type FieldSpec struct {
	Tag        string
	Control    bool
	Value      string // control field payload
	Indicators string // data field indicators, exactly 2 bytes
	Subfields  []Subfield
}

// Control builds a control field spec.
func Control(tag, value string) FieldSpec {
	return FieldSpec{Tag: tag, Control: true, Value: value}
}

// Data builds a data field spec.
func Data(tag, indicators string, subs ...Subfield) FieldSpec {
	return FieldSpec{Tag: tag, Indicators: indicators, Subfields: subs}
}

// payload renders the field's data-area bytes, excluding the trailing field
// terminator.
func (f FieldSpec) payload() []byte {
	if f.Control {
		return []byte(f.Value)
	}
	ind := f.Indicators
	if ind == "" {
		ind = "  "
	}
	out := []byte(ind)
	for _, sf := range f.Subfields {
		out = append(out, subfieldDelimiter, sf.Code)
		out = append(out, sf.Value...)
	}
	return out
}

// Record assembles one complete record. A record with no fields is built with
// a base address of exactly 24: no directory, not even a directory
// terminator.
//
// Record panics on specs the format cannot represent (a tag that is not 3
// bytes, a field payload past the 4-digit directory limit, a record past the
// 5-digit length limit) rather than silently emitting a corrupt fixture.
func Record(fields ...FieldSpec) []byte {
	base := leaderLength
	if len(fields) > 0 {
		base += len(fields)*directoryEntryLength + 1
	}

	var dir, data []byte
	start := 0
	for _, f := range fields {
		if len(f.Tag) != 3 {
			panic(fmt.Sprintf("marctest: tag %q must be exactly 3 bytes", f.Tag))
		}
		p := f.payload()
		if len(p) > 9999 {
			panic(fmt.Sprintf("marctest: field %s payload is %d bytes, over the 4-digit directory limit", f.Tag, len(p)))
		}
		if start > 99999 {
			panic(fmt.Sprintf("marctest: field %s starts at %d, over the 5-digit directory limit", f.Tag, start))
		}
		dir = append(dir, fmt.Sprintf("%s%04d%05d", f.Tag, len(p), start)...)
		data = append(data, p...)
		data = append(data, fieldTerminator)
		start += len(p) + 1
	}
	if len(fields) > 0 {
		dir = append(dir, fieldTerminator)
	}

	recordLength := base + len(data) + 1
	if recordLength > 99999 {
		panic(fmt.Sprintf("marctest: record is %d bytes, over the 5-digit length limit", recordLength))
	}
	leader := fmt.Sprintf("%05dnam a22%05d a 4500", recordLength, base)

	out := make([]byte, 0, recordLength)
	out = append(out, leader...)
	out = append(out, dir...)
	out = append(out, data...)
	out = append(out, recordTerminator)
	return out
}

// File concatenates records into one stream, the way records sit in a .mrc
// file: no separators beyond each record's self-declared length.
func File(records ...[]byte) []byte {
	var out []byte
	for _, r := range records {
		out = append(out, r...)
	}
	return out
}
