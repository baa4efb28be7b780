package marc

import (
	"strings"
	"testing"

	"github.com/RvanB/fastmarc/pkg/marc/marctest"
)

func BenchmarkDecode(b *testing.B) {
	benchmarks := []struct {
		name   string
		record []byte
	}{
		{
			name:   "control_only",
			record: marctest.Record(marctest.Control("001", "ocm12345")),
		},
		{
			name: "typical",
			record: marctest.Record(
				marctest.Control("001", "ocm12345"),
				marctest.Control("008", "210101s2021    xxu           000 0 eng d"),
				marctest.Data("245", "10", marctest.Sub('a', "Title :"), marctest.Sub('b', "subtitle /"), marctest.Sub('c', "author.")),
				marctest.Data("260", "  ", marctest.Sub('a', "New York :"), marctest.Sub('b', "Publisher,"), marctest.Sub('c', "2021.")),
				marctest.Data("650", " 0", marctest.Sub('a', "Cataloging.")),
			),
		},
		{
			name: "large_field",
			record: marctest.Record(
				marctest.Data("520", "  ", marctest.Sub('a', strings.Repeat("summary ", 500))),
			),
		},
	}

	for _, bm := range benchmarks {
		b.Run(bm.name, func(b *testing.B) {
			b.SetBytes(int64(len(bm.record)))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, err := Decode(bm.record, DecodeOptions{})
				if err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
