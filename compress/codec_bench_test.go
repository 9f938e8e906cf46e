package compress

import (
	"fmt"
	"testing"
)

func BenchmarkCodecs_Compress(b *testing.B) {
	for _, entries := range []int{100, 1000, 10000} {
		data := vocabularyPayload(entries)

		for name, codec := range getAllCodecs() {
			b.Run(fmt.Sprintf("%s/%d", name, entries), func(b *testing.B) {
				b.ReportAllocs()
				b.SetBytes(int64(len(data)))

				for b.Loop() {
					if _, err := codec.Compress(data); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

func BenchmarkCodecs_Decompress(b *testing.B) {
	for _, entries := range []int{100, 1000, 10000} {
		data := vocabularyPayload(entries)

		for name, codec := range getAllCodecs() {
			compressed, err := codec.Compress(data)
			if err != nil {
				b.Fatal(err)
			}

			b.Run(fmt.Sprintf("%s/%d", name, entries), func(b *testing.B) {
				b.ReportAllocs()
				b.SetBytes(int64(len(data)))

				for b.Loop() {
					if _, err := codec.Decompress(compressed); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

func BenchmarkCodecs_Parallel(b *testing.B) {
	data := vocabularyPayload(1000)

	for name, codec := range getAllCodecs() {
		b.Run(name, func(b *testing.B) {
			b.SetBytes(int64(len(data)))
			b.RunParallel(func(pb *testing.PB) {
				for pb.Next() {
					compressed, err := codec.Compress(data)
					if err != nil {
						b.Error(err)
						return
					}
					if _, err := codec.Decompress(compressed); err != nil {
						b.Error(err)
						return
					}
				}
			})
		})
	}
}
