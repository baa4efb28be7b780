package marc

// Structural constants of the MARC21 binary format.
const (
	LeaderLength         = 24
	DirectoryEntryLength = 12

	FieldTerminator   = 0x1E
	SubfieldDelimiter = 0x1F
	RecordTerminator  = 0x1D
)

// Leader is the fixed 24-byte header of a record. The two numeric fields
// (RecordLength, BaseAddress) are parsed; everything else is carried as
// opaque pass-through bytes so a caller can inspect status and type codes
// without the decoder assigning them meaning.
type Leader struct {
	RecordLength    int  // positions 0-4, total record length in bytes
	Status          byte // position 5
	Type            byte // position 6
	IndicatorCount  byte // position 10
	SubfieldCodeLen byte // position 11
	BaseAddress     int  // positions 12-16, offset of the first data byte

	// Raw is the full 24-byte leader as it appeared on the wire.
	Raw [LeaderLength]byte
}

// ParseLeader parses the first 24 bytes of a record. It fails with
// ErrInvalidLeader if fewer than 24 bytes are available or if either 5-digit
// numeric field contains a non-digit.
func ParseLeader(data []byte) (Leader, error) {
	var ld Leader
	if len(data) < LeaderLength {
		return ld, decodeErr(ErrInvalidLeader, 0, "leader requires %d bytes, have %d", LeaderLength, len(data))
	}

	recordLength, ok := parseDigits(data[0:5])
	if !ok {
		return ld, decodeErr(ErrInvalidLeader, 0, "record length %q is not numeric", data[0:5])
	}
	baseAddress, ok := parseDigits(data[12:17])
	if !ok {
		return ld, decodeErr(ErrInvalidLeader, 12, "base address %q is not numeric", data[12:17])
	}
	if baseAddress < LeaderLength {
		return ld, decodeErr(ErrInvalidLeader, 12, "base address %d points inside the leader", baseAddress)
	}
	if recordLength < baseAddress+1 {
		return ld, decodeErr(ErrInvalidLeader, 0, "record length %d shorter than base address %d plus terminator", recordLength, baseAddress)
	}

	ld.RecordLength = recordLength
	ld.Status = data[5]
	ld.Type = data[6]
	ld.IndicatorCount = data[10]
	ld.SubfieldCodeLen = data[11]
	ld.BaseAddress = baseAddress
	copy(ld.Raw[:], data[:LeaderLength])
	return ld, nil
}

// parseDigits interprets buf as an ASCII decimal integer. Leading zeros are
// permitted; anything outside '0'-'9' is not.
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
