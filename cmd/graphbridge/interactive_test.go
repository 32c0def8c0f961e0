package main

import (
	"strings"
	"testing"

	"github.com/hexlattice/graphbridge/engine"
)

func findGenerator(t *testing.T, name string) genEntry {
	t.Helper()
	for _, g := range generators {
		if g.name == name {
			return g
		}
	}
	t.Fatalf("generator %q not in catalog", name)
	return genEntry{}
}

// Generator commands run on goroutines the engine never saw a token
// attach on, so generateAndMeasure must bring its own.
func TestGenerateAndMeasureOnCommandGoroutine(t *testing.T) {
	if err := engine.Initialize(nil); err != nil {
		t.Fatalf("initialize: %v", err)
	}
	defer engine.Shutdown()

	entry := findGenerator(t, "complete")

	type outcome struct {
		stats string
		err   error
	}
	done := make(chan outcome, 1)
	go func() {
		stats, err := generateAndMeasure(entry, []float64{5})
		done <- outcome{stats: stats, err: err}
	}()

	got := <-done
	if got.err != nil {
		t.Fatalf("generate: %v", got.err)
	}
	if !strings.Contains(got.stats, "vertices: 5") {
		t.Fatalf("stats missing vertex count: %q", got.stats)
	}
	if !strings.Contains(got.stats, "edges: 10") {
		t.Fatalf("stats missing edge count: %q", got.stats)
	}
}
