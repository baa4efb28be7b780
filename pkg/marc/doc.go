// Package marc implements decoding of MARC21 binary bibliographic records.
//
// A MARC21 record is self-describing: a fixed 24-byte leader declares the
// total record length and the base address of the data area, a directory of
// fixed 12-byte entries maps 3-character tags to byte spans within the data
// area, and the data area holds the fields themselves, each closed by a field
// terminator (0x1E). The record ends with a record terminator (0x1D).
//
// # Record layout
//
//	[Leader(24)][Directory entries(12 each)][0x1E][Field data...][0x1D]
//
// Fields come in two kinds, selected by tag: tags below "010" are control
// fields carrying a raw byte payload, all other tags are data fields carrying
// two indicator bytes followed by subfields, each introduced by the subfield
// delimiter (0x1F) and a one-byte code.
//
// # Decoding
//
// Decode is a pure function over one record's byte span:
//
//	rec, err := marc.Decode(data, marc.DecodeOptions{})
//	if err != nil {
//	    return err
//	}
//	for _, f := range rec.Fields {
//	    // f.Kind selects ControlField (f.Value) or DataField
//	    // (f.Indicators, f.Subfields)
//	}
//
// Hard failures (bad leader digits, corrupt directory, missing field
// terminator) refuse to return a partial Record and report the offending byte
// offset via DecodeError. A missing record terminator is a soft condition:
// permissive decoding returns the parsed Record with the condition appended
// to Record.Warnings, which DecodeOptions.Strict turns into a hard failure.
// This mirrors how real-world catalog data is malformed in practice: fields
// are usually intact even when the trailing terminator is not.
//
// Field and subfield values are raw bytes. MARC data circulates in both
// MARC-8 and UTF-8; choosing a text decoding is deliberately left to the
// caller.
package marc
