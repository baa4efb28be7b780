package marc

import "bytes"

// DecodeOptions controls decode policy for soft conditions.
type DecodeOptions struct {
	// Strict promotes a missing record terminator from a warning on the
	// decoded record to a hard decode failure.
	Strict bool
}

// directoryEntry is one fixed 12-byte directory slot: a 3-byte tag, a
// 4-digit field length and a 5-digit field start relative to the base
// address.
type directoryEntry struct {
	tag    string
	length int
	start  int
}

// Decode parses one record's raw byte span into a Record. It is a pure
// function of data: it performs no I/O, never mutates its input and never
// retains a reference to it. All field bytes in the returned Record are
// copies.
func Decode(data []byte, opts DecodeOptions) (*Record, error) {
	ld, err := ParseLeader(data)
	if err != nil {
		return nil, err
	}
	if ld.BaseAddress > len(data) {
		return nil, decodeErr(ErrInvalidLeader, 12, "base address %d beyond record end %d", ld.BaseAddress, len(data))
	}

	entries, err := parseDirectory(data, ld.BaseAddress)
	if err != nil {
		return nil, err
	}

	rec := &Record{
		Leader: ld,
		Fields: make([]Field, 0, len(entries)),
	}
	for _, ent := range entries {
		start := ld.BaseAddress + ent.start
		end := start + ent.length
		// The field's own terminator sits immediately after its payload.
		if end >= len(data) || data[end] != FieldTerminator {
			return nil, decodeErr(ErrFieldTerminatorMissing, end, "field %s", ent.tag)
		}
		rec.Fields = append(rec.Fields, parseField(ent.tag, data[start:end]))
	}

	term := ld.RecordLength - 1
	if term >= len(data) || data[term] != RecordTerminator {
		werr := decodeErr(ErrRecordTerminatorMissing, term, "record of length %d", ld.RecordLength)
		if opts.Strict {
			return nil, werr
		}
		rec.Warnings = append(rec.Warnings, werr)
	}
	return rec, nil
}

// parseDirectory walks the fixed 12-byte entries following the leader until
// the terminator byte. A base address of exactly LeaderLength means the
// record carries no directory at all and decodes to zero fields.
func parseDirectory(data []byte, base int) ([]directoryEntry, error) {
	if base == LeaderLength {
		return nil, nil
	}
	var entries []directoryEntry
	pos := LeaderLength
	for {
		if pos >= base {
			return nil, decodeErr(ErrDirectoryCorrupt, pos, "no terminator before base address %d", base)
		}
		if data[pos] == FieldTerminator {
			return entries, nil
		}
		if pos+DirectoryEntryLength > base {
			return nil, decodeErr(ErrDirectoryCorrupt, pos, "entry overruns base address %d", base)
		}
		ent := data[pos : pos+DirectoryEntryLength]
		length, ok := parseDigits(ent[3:7])
		if !ok {
			return nil, decodeErr(ErrDirectoryCorrupt, pos+3, "field length %q is not numeric", ent[3:7])
		}
		start, ok := parseDigits(ent[7:12])
		if !ok {
			return nil, decodeErr(ErrDirectoryCorrupt, pos+7, "field start %q is not numeric", ent[7:12])
		}
		entries = append(entries, directoryEntry{
			tag:    string(ent[0:3]),
			length: length,
			start:  start,
		})
		pos += DirectoryEntryLength
	}
}

// parseField classifies the payload by tag and parses it. Control fields
// store their bytes verbatim; data fields split on the subfield delimiter.
// Malformed data fields (short payloads, no delimiter) parse permissively to
// whatever structure is present rather than failing the record.
func parseField(tag string, payload []byte) Field {
	if IsControlTag(tag) {
		return Field{
			Tag:   tag,
			Kind:  ControlField,
			Value: cloneBytes(payload),
		}
	}

	f := Field{Tag: tag, Kind: DataField}
	copy(f.Indicators[:], payload)
	var rest []byte
	if len(payload) > 2 {
		rest = payload[2:]
	}
	for len(rest) > 0 {
		if rest[0] != SubfieldDelimiter {
			// Stray bytes between the indicators and the first
			// delimiter carry no subfield code.
			i := bytes.IndexByte(rest, SubfieldDelimiter)
			if i < 0 {
				break
			}
			rest = rest[i:]
			continue
		}
		rest = rest[1:]
		seg := rest
		if next := bytes.IndexByte(rest, SubfieldDelimiter); next >= 0 {
			seg, rest = rest[:next], rest[next:]
		} else {
			rest = nil
		}
		if len(seg) == 0 {
			continue
		}
		f.Subfields = append(f.Subfields, Subfield{
			Code:  seg[0],
			Value: cloneBytes(seg[1:]),
		})
	}
	return f
}

func cloneBytes(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
