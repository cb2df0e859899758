package engine

import (
	"context"
	"testing"

	"github.com/hupe1980/tracego/util"
)

func BenchmarkTraceRandomField(b *testing.B) {
	const n = 32
	field := util.NewRNG(42).GenerateRandomField(n, n, n, 1.0, 8.0)
	s := &fieldStrategy{field: field, floor: 1.0}

	cfg := Config{
		Width: n, Height: n, Depth: n,
		Start: []Point{{0, 0, 0}},
		Goal:  []Point{{n - 1, n - 1, n - 1}},
	}

	b.ReportAllocs()
	for b.Loop() {
		e, err := New(cfg, s)
		if err != nil {
			b.Fatal(err)
		}
		res, err := e.Run(context.Background())
		if err != nil {
			b.Fatal(err)
		}
		if res.Reason != ReasonSuccess {
			b.Fatalf("unexpected exit reason %s", res.Reason)
		}
	}
}

func BenchmarkFloodFill(b *testing.B) {
	const n = 48
	field := util.NewRNG(42).GenerateRandomField(n, n, n, 1.0, 4.0)
	s := &fieldStrategy{field: field, floor: 1.0}

	cfg := Config{
		Width: n, Height: n, Depth: n,
		Start:       []Point{{n / 2, n / 2, n / 2}},
		CostCeiling: 10.0,
	}

	b.ReportAllocs()
	for b.Loop() {
		e, err := New(cfg, s)
		if err != nil {
			b.Fatal(err)
		}
		if _, err := e.Run(context.Background()); err != nil {
			b.Fatal(err)
		}
	}
}
