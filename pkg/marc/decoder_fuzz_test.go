package marc

import (
	"testing"

	"github.com/RvanB/fastmarc/pkg/marc/marctest"
)

// FuzzDecode feeds arbitrary byte spans to the decoder. Whatever the input,
// Decode must either return a structured error or a Record whose fields obey
// the declared directory lengths; it must never panic or read out of bounds.
func FuzzDecode(f *testing.F) {
	f.Add(marctest.Record(marctest.Control("001", "ocm12345")))
	f.Add(marctest.Record(
		marctest.Data("245", "10", marctest.Sub('a', "Title :"), marctest.Sub('b', "subtitle")),
	))
	f.Add(marctest.Record())
	f.Add([]byte(""))
	f.Add([]byte("00024nam a2200024 a 4500"))
	f.Add([]byte{0x1D, 0x1E, 0x1F})

	f.Fuzz(func(t *testing.T, data []byte) {
		rec, err := Decode(data, DecodeOptions{})
		if err != nil {
			if rec != nil {
				t.Errorf("Decode returned both a record and a hard error: %v", err)
			}
			return
		}
		if rec == nil {
			t.Fatal("Decode returned neither a record nor an error")
		}
		for _, field := range rec.Fields {
			if len(field.Tag) != 3 {
				t.Errorf("field tag %q is not 3 bytes", field.Tag)
			}
		}
	})
}
