// Package benchmarks compares min-linq pipelines against a hand-written loop
// and popular Go collection libraries.
//
// Input sizes come from the environment:
//
//	LINQ_BENCH_SIZES=100,10000 go test -bench . ./benchmarks
package benchmarks

import (
	"fmt"
	"testing"

	"github.com/caarlos0/env/v11"
)

type benchConfig struct {
	Sizes []int `env:"SIZES" envDefault:"100,1000,10000"`
}

var config = mustLoadConfig()

func mustLoadConfig() benchConfig {
	cfg, err := env.ParseAsWithOptions[benchConfig](env.Options{Prefix: "LINQ_BENCH_"})
	if err != nil {
		panic(fmt.Sprintf("benchmarks: load config: %v", err))
	}
	return cfg
}

// forEachSize runs fn as a sub-benchmark for every configured size.
func forEachSize(b *testing.B, fn func(b *testing.B, data []int)) {
	for _, size := range config.Sizes {
		data := generateInts(size)
		b.Run(fmt.Sprintf("n=%d", size), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			fn(b, data)
		})
	}
}

// generateInts creates a slice of integers for benchmarking.
func generateInts(n int) []int {
	data := make([]int, n)
	for i := range data {
		data[i] = i
	}
	return data
}

// Functors used by the min-linq benchmarks.
type isEven struct{}

func (isEven) Invoke(x int) bool { return x%2 == 0 }

type square struct{}

func (square) Invoke(x int) int { return x * x }

type greaterThan struct{ limit int }

func (g greaterThan) Invoke(x int) bool { return x > g.limit }

// Plain functions for the other libraries.
func even(x int) bool { return x%2 == 0 }

func sq(x int) int { return x * x }

// sink keeps results alive so the compiler cannot drop the work.
var sink int
