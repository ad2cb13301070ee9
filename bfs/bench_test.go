package bfs_test

import (
	"testing"

	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/grid"
)

// BenchmarkBFS_Box measures a full drain of an M×M box.
func BenchmarkBFS_Box(b *testing.B) {
	const M = 200
	inBox := func(p grid.Point) bool {
		return p.X >= 0 && p.X < M && p.Y >= 0 && p.Y < M
	}

	for _, conn := range []grid.Connectivity{grid.Conn4, grid.Conn8} {
		b.Run(conn.String(), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				it, _ := bfs.New(grid.Pt(M/2, M/2), bfs.WithValid(inBox), bfs.WithConnectivity(conn))
				for it.HasNext() {
					it.Next()
				}
			}
		})
	}
}

// BenchmarkBFS_TakeUnbounded pulls a fixed number of cells from an infinite grid.
func BenchmarkBFS_TakeUnbounded(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		it, _ := bfs.New(grid.Pt(0, 0))
		_ = grid.Take(it, 10000)
	}
}
