// Package matrixes_test provides benchmarks for the zip combinators and the
// multiply driver, sequential versus forced-parallel.
package matrixes_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/gridmat/matrix"
	"github.com/katalvlaran/gridmat/matrixes"
	"github.com/katalvlaran/gridmat/parallel"
)

var sinkM *matrix.Matrix[float64]

func benchGrid(b *testing.B, n int, v float64) *matrix.Matrix[float64] {
	b.Helper()
	m, err := matrix.Repeat(v, n, n)
	if err != nil {
		b.Fatal(err)
	}
	return m
}

func BenchmarkZipWith(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{64, 256} {
		for _, mode := range []parallel.Mode{parallel.Off, parallel.On} {
			b.Run(fmt.Sprintf("n=%d/mode=%s", n, mode), func(b *testing.B) {
				x := benchGrid(b, n, 1.5)
				y := benchGrid(b, n, 2.5)
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					out, err := matrixes.ZipWith(x, y, func(a, c float64) float64 { return a + c },
						matrixes.WithParallel(parallel.WithMode(mode)))
					if err != nil {
						b.Fatal(err)
					}
					sinkM = out
				}
			})
		}
	}
}

func BenchmarkMultiply(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{32, 128} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := benchGrid(b, n, 1.5)
			y := benchGrid(b, n, 2.5)
			rx, ry := x.Raw(), y.Raw()
			out := benchGrid(b, n, 0)
			ro := out.Raw()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				err := matrixes.Multiply(x, y, func(r, c, k int) {
					ro[r][c] += rx[r][k] * ry[k][c]
				}, matrixes.WithParallel(parallel.WithMode(parallel.Off)))
				if err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
