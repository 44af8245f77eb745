package person_test

import (
	"testing"

	"github.com/fulldump/crossbench/person"
	"github.com/fulldump/crossbench/samples"
)

func BenchmarkDecode(b *testing.B) {

	data, err := person.Encode(person.NewCollection(samples.Generate(samples.NewRand(1), 10_000)))
	if err != nil {
		b.Fatal(err)
	}

	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := person.Decode(data); err != nil {
			b.Fatal(err)
		}
	}
}
