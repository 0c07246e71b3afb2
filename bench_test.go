package dictionary

import (
	"fmt"
	"math/rand"
	"testing"
)

type distributionKind int

const (
	distUniform distributionKind = iota
	distAscending
	distZipf
)

func benchKeys(kind distributionKind, n int) []int {
	r := rand.New(rand.NewSource(1))
	keys := make([]int, n)
	switch kind {
	case distAscending:
		for i := range keys {
			keys[i] = i
		}
	case distZipf:
		z := rand.NewZipf(r, 1.2, 1, uint64(n*4))
		for i := range keys {
			keys[i] = int(z.Uint64())
		}
	default:
		for i := range keys {
			keys[i] = r.Intn(n * 4)
		}
	}
	return keys
}

func BenchmarkDictionaryPut(b *testing.B) {
	distributions := []struct {
		name string
		kind distributionKind
	}{
		{name: "Uniform", kind: distUniform},
		{name: "Ascending", kind: distAscending},
		{name: "Zipfian", kind: distZipf},
	}

	for _, backing := range []Backing{TreeBacking, ListBacking} {
		backing := backing
		b.Run(backing.String(), func(b *testing.B) {
			for _, dist := range distributions {
				dist := dist
				for _, size := range []int{100, 1000} {
					keys := benchKeys(dist.kind, size)
					b.Run(fmt.Sprintf("%s/N%d", dist.name, size), func(b *testing.B) {
						b.ReportAllocs()
						for i := 0; i < b.N; i++ {
							d := New[int, int](Natural[int](), WithBacking(backing))
							for _, k := range keys {
								d.Put(k, k)
							}
						}
					})
				}
			}
		})
	}
}

func BenchmarkTreeIterate(b *testing.B) {
	tr := NewTree[int, int](Natural[int]())
	for _, k := range benchKeys(distUniform, 1<<14) {
		tr.Put(k, k)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		it := tr.Iterator()
		for it.HasNext() {
			if _, err := it.Next(); err != nil {
				b.Fatal(err)
			}
		}
	}
}
