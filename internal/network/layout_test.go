package network

import (
	"math"
	"reflect"
	"testing"

	"github.com/acantor/spotify-net-tools/internal/dataset"
)

func TestLayout3DCoversEveryNode(t *testing.T) {
	g := NewGraph([]dataset.Edge{
		{ID0: "A", ID1: "B"},
		{ID0: "B", ID1: "C"},
		{ID0: "C", ID1: "A"},
		{ID0: "C", ID1: "D"},
	})

	positions := Layout3D(g, LayoutOptions{Seed: 7})
	if len(positions) != g.NodeCount() {
		t.Fatalf("got %d positions, want %d", len(positions), g.NodeCount())
	}
	for _, id := range g.NodeIDs() {
		p, ok := positions[id]
		if !ok {
			t.Fatalf("no position for %s", id)
		}
		for _, c := range []float64{p.X, p.Y, p.Z} {
			if math.IsNaN(c) || math.IsInf(c, 0) {
				t.Fatalf("position for %s is not finite: %+v", id, p)
			}
		}
	}

	// No two nodes end up at the same point.
	for i, a := range g.NodeIDs() {
		for _, b := range g.NodeIDs()[i+1:] {
			pa, pb := positions[a], positions[b]
			if pa == pb {
				t.Errorf("nodes %s and %s collapsed to %+v", a, b, pa)
			}
		}
	}
}

func TestLayout3DSeedDeterminism(t *testing.T) {
	g := NewGraph([]dataset.Edge{
		{ID0: "A", ID1: "B"},
		{ID0: "B", ID1: "C"},
	})

	first := Layout3D(g, LayoutOptions{Seed: 42})
	second := Layout3D(g, LayoutOptions{Seed: 42})
	if !reflect.DeepEqual(first, second) {
		t.Errorf("same seed produced different layouts")
	}

	other := Layout3D(g, LayoutOptions{Seed: 43})
	if reflect.DeepEqual(first, other) {
		t.Errorf("different seeds produced identical layouts")
	}
}

func TestLayout3DDegenerateGraphs(t *testing.T) {
	if got := Layout3D(NewGraph(nil), LayoutOptions{}); len(got) != 0 {
		t.Errorf("empty graph produced %d positions", len(got))
	}

	// One node is placed without running the simulation.
	g := NewGraph([]dataset.Edge{{ID0: "A", ID1: "B"}})
	sub := g.InducedSubgraph([]string{"A"})
	positions := Layout3D(sub, LayoutOptions{Seed: 1})
	if len(positions) != 1 {
		t.Fatalf("got %d positions, want 1", len(positions))
	}
}
