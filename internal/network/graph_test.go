package network

import (
	"reflect"
	"testing"

	"github.com/acantor/spotify-net-tools/internal/dataset"
)

func TestDegreeCollapsesDuplicatesAndSelfLoops(t *testing.T) {
	g := NewGraph([]dataset.Edge{
		{ID0: "A", ID1: "B"},
		{ID0: "A", ID1: "B"},
		{ID0: "A", ID1: "C"},
		{ID0: "B", ID1: "B"},
	})

	if got := g.Degree("A"); got != 2 {
		t.Errorf("degree(A) = %d, want 2", got)
	}
	if got := g.Degree("B"); got != 1 {
		t.Errorf("degree(B) = %d, want 1", got)
	}
	if got := g.Degree("unknown"); got != 0 {
		t.Errorf("degree(unknown) = %d, want 0", got)
	}
	if g.NodeCount() != 3 {
		t.Errorf("node count = %d, want 3", g.NodeCount())
	}
}

func TestTopNByDegree(t *testing.T) {
	// A and B both have degree 3; A was seen first and wins the tie.
	g := NewGraph([]dataset.Edge{
		{ID0: "A", ID1: "B"},
		{ID0: "A", ID1: "C"},
		{ID0: "A", ID1: "D"},
		{ID0: "B", ID1: "C"},
		{ID0: "B", ID1: "D"},
	})

	if got := g.TopNByDegree(2); !reflect.DeepEqual(got, []string{"A", "B"}) {
		t.Errorf("top 2 = %v, want [A B]", got)
	}
	if got := g.TopNByDegree(10); len(got) != 4 {
		t.Errorf("top 10 over 4 nodes returned %d IDs", len(got))
	}
	if got := g.TopNByDegree(0); len(got) != 0 {
		t.Errorf("top 0 = %v, want empty", got)
	}
}

func TestEdgesDeterministic(t *testing.T) {
	edges := []dataset.Edge{
		{ID0: "A", ID1: "B"},
		{ID0: "B", ID1: "C"},
		{ID0: "A", ID1: "B"},
	}
	g := NewGraph(edges)

	want := [][2]string{{"A", "B"}, {"B", "C"}}
	for i := 0; i < 5; i++ {
		if got := g.Edges(); !reflect.DeepEqual(got, want) {
			t.Fatalf("Edges() = %v, want %v", got, want)
		}
	}
}

func TestInducedSubgraph(t *testing.T) {
	g := NewGraph([]dataset.Edge{
		{ID0: "A", ID1: "B"},
		{ID0: "B", ID1: "C"},
		{ID0: "C", ID1: "D"},
	})

	sub := g.InducedSubgraph([]string{"A", "B", "D", "missing"})
	if sub.NodeCount() != 3 {
		t.Fatalf("subgraph has %d nodes, want 3", sub.NodeCount())
	}
	if got := sub.Edges(); !reflect.DeepEqual(got, [][2]string{{"A", "B"}}) {
		t.Errorf("subgraph edges = %v, want [[A B]]", got)
	}
	// D's only collaborator was dropped; it stays as an isolated node.
	if !sub.Has("D") || sub.Degree("D") != 0 {
		t.Errorf("expected D isolated in subgraph, has=%v degree=%d", sub.Has("D"), sub.Degree("D"))
	}
}

func TestElements(t *testing.T) {
	tables := dataset.NewTables([]dataset.Artist{
		{ID: "A", Name: "Alpha", Followers: 1000, Popularity: 90, Genres: []string{"pop"}},
		{ID: "B", Name: "Beta", Followers: 2000, Popularity: 85},
	}, nil)
	g := NewGraph([]dataset.Edge{
		{ID0: "A", ID1: "B"},
		{ID0: "B", ID1: "X"},
	})

	nodes, edges, err := Elements(g, tables)
	if err != nil {
		t.Fatalf("Elements: %v", err)
	}
	if len(nodes) != 3 {
		t.Fatalf("got %d nodes, want 3", len(nodes))
	}

	if nodes[0].Label != "Alpha" || nodes[0].Popularity != 90 || nodes[0].Size != 1 {
		t.Errorf("node A = %+v", nodes[0])
	}
	// X has no artist row; its ID stands in as the label.
	if nodes[2].ID != "X" || nodes[2].Label != "X" || nodes[2].Popularity != 0 {
		t.Errorf("node X = %+v", nodes[2])
	}

	want := []EdgeElement{{Source: "A", Target: "B"}, {Source: "B", Target: "X"}}
	if !reflect.DeepEqual(edges, want) {
		t.Errorf("edges = %v, want %v", edges, want)
	}
}
