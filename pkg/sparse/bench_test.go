package sparse_test

import (
	"math/rand/v2"
	"testing"

	"sparse-life/pkg/sparse"
)

// BenchmarkSetScattered measures inserts spread over a wide, mostly empty plane.
func BenchmarkSetScattered(b *testing.B) {
	r := rand.New(rand.NewPCG(1, 2))
	coords := make([][2]int, 1024)
	for i := range coords {
		coords[i] = [2]int{r.IntN(1 << 16), r.IntN(1 << 16)}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g := sparse.New(uint8(0))
		for _, c := range coords {
			g.Set(c[0], c[1], 1)
		}
	}
}

// BenchmarkRowsTraversal measures a full row-major walk over 4096 cells.
func BenchmarkRowsTraversal(b *testing.B) {
	g := sparse.New(uint8(0))
	for row := 0; row < 64; row++ {
		for col := 0; col < 64; col++ {
			g.Set(row*3, col*5, 1)
		}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		n := 0
		rows := g.Rows()
		for rows.Next() {
			elems := rows.Elems()
			for elems.Next() {
				n++
			}
		}
		if n == 0 {
			b.Fatal("empty traversal")
		}
	}
}
