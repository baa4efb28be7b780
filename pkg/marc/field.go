package marc

// FieldKind distinguishes the two field variants of the format.
type FieldKind int

const (
	// ControlField carries a raw byte payload with no indicators or
	// subfield structure (tags 001-009).
	ControlField FieldKind = iota
	// DataField carries two indicator bytes and an ordered list of
	// subfields.
	DataField
)

// Subfield is a code-tagged value nested within a data field.
type Subfield struct {
	Code  byte
	Value []byte
}

// Field is one tagged unit of record data. Kind selects which of the
// remaining members are meaningful: control fields use Value, data fields
// use Indicators and Subfields.
type Field struct {
	Tag  string
	Kind FieldKind

	// Control field payload, verbatim bytes excluding the terminator.
	Value []byte

	// Data field members. Indicators are stored verbatim with no
	// semantic validation.
	Indicators [2]byte
	Subfields  []Subfield
}

// Record is one decoded MARC21 record: the leader plus its fields in
// directory order. Warnings holds soft conditions (currently only a missing
// record terminator in permissive mode) that did not prevent decoding.
type Record struct {
	Leader   Leader
	Fields   []Field
	Warnings []error
}

// GetFields returns all fields carrying the given tag, in record order.
func (r *Record) GetFields(tag string) []Field {
	var out []Field
	for _, f := range r.Fields {
		if f.Tag == tag {
			out = append(out, f)
		}
	}
	return out
}

// Subfield returns the value of the first subfield with the given code, or
// nil if the field has no such subfield or is a control field.
func (f *Field) Subfield(code byte) []byte {
	for _, sf := range f.Subfields {
		if sf.Code == code {
			return sf.Value
		}
	}
	return nil
}

// IsControlTag reports whether tag names a control field. Tags compare as
// 3-byte ASCII strings, so the "010" boundary is a plain string comparison.
func IsControlTag(tag string) bool {
	return tag < "010"
}
