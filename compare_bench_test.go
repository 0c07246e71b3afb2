package dictionary

import (
	"fmt"
	"testing"
)

// BenchmarkCompareGet contrasts lookups in the two backings, and the
// unbalanced tree's sensitivity to insertion order.
func BenchmarkCompareGet(b *testing.B) {
	const size = 1 << 11

	for _, dist := range []struct {
		name string
		kind distributionKind
	}{
		{name: "Uniform", kind: distUniform},
		{name: "Ascending", kind: distAscending},
	} {
		keys := benchKeys(dist.kind, size)
		for _, backing := range []Backing{TreeBacking, ListBacking} {
			d := New[int, int](Natural[int](), WithBacking(backing))
			for _, k := range keys {
				d.Put(k, k)
			}
			b.Run(fmt.Sprintf("%s/%s", dist.name, backing), func(b *testing.B) {
				for i := 0; i < b.N; i++ {
					_, _ = d.Get(keys[i%len(keys)])
				}
			})
		}
	}
}
