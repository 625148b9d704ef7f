package network

import (
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/acantor/spotify-net-tools/internal/dataset"
)

// Graph is the collaboration network as a simple undirected graph.
// Duplicate input edges collapse into one and self-loops are dropped,
// so degree here means distinct collaborators, not raw edge volume.
//
// String artist IDs are mapped onto the integer node IDs the underlying
// implementation requires; the first-seen order of IDs is recorded so
// that every traversal below is deterministic.
type Graph struct {
	g     *simple.UndirectedGraph
	ids   map[string]int64
	order []string
}

// NewGraph builds the network from the edge relation. Node set is
// exactly the set of IDs appearing in edges; isolated artists from the
// node relation are not added.
func NewGraph(edges []dataset.Edge) *Graph {
	g := &Graph{
		g:   simple.NewUndirectedGraph(),
		ids: make(map[string]int64),
	}
	for _, e := range edges {
		if e.ID0 == e.ID1 {
			continue
		}
		u := g.node(e.ID0)
		v := g.node(e.ID1)
		g.g.SetEdge(g.g.NewEdge(u, v))
	}
	return g
}

func (g *Graph) node(id string) graph.Node {
	if nid, ok := g.ids[id]; ok {
		return g.g.Node(nid)
	}
	n := g.g.NewNode()
	g.g.AddNode(n)
	g.ids[id] = n.ID()
	g.order = append(g.order, id)
	return n
}

// NodeCount reports the number of distinct artists in the network.
func (g *Graph) NodeCount() int { return len(g.order) }

// NodeIDs returns the artist IDs in first-seen order.
func (g *Graph) NodeIDs() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)
	return out
}

// Has reports whether the artist appears in the network.
func (g *Graph) Has(id string) bool {
	_, ok := g.ids[id]
	return ok
}

// Degree is the number of distinct collaborators of an artist. Unknown
// artists have degree 0.
func (g *Graph) Degree(id string) int {
	nid, ok := g.ids[id]
	if !ok {
		return 0
	}
	return g.g.From(nid).Len()
}

// Degrees returns the degree of every node in the network.
func (g *Graph) Degrees() map[string]int {
	degrees := make(map[string]int, len(g.order))
	for _, id := range g.order {
		degrees[id] = g.Degree(id)
	}
	return degrees
}

// TopNByDegree returns the n highest-degree artist IDs, ties broken by
// first-seen order. n larger than the network is clamped.
func (g *Graph) TopNByDegree(n int) []string {
	ids := g.NodeIDs()
	sort.SliceStable(ids, func(i, j int) bool {
		return g.Degree(ids[i]) > g.Degree(ids[j])
	})
	if n > len(ids) {
		n = len(ids)
	}
	if n < 0 {
		n = 0
	}
	return ids[:n]
}

// Edges returns every edge as an ID pair, ordered by the first-seen
// positions of the endpoints. Each undirected edge appears once, with
// the earlier-seen endpoint first.
func (g *Graph) Edges() [][2]string {
	var edges [][2]string
	for i, a := range g.order {
		for _, b := range g.order[i+1:] {
			if g.g.HasEdgeBetween(g.ids[a], g.ids[b]) {
				edges = append(edges, [2]string{a, b})
			}
		}
	}
	return edges
}

// InducedSubgraph restricts the network to the given artists. Edges
// survive only when both endpoints are kept; a requested artist with no
// surviving edges stays in the subgraph as an isolated node. Unknown
// IDs are ignored.
func (g *Graph) InducedSubgraph(keep []string) *Graph {
	in := make(map[string]bool, len(keep))
	for _, id := range keep {
		if g.Has(id) {
			in[id] = true
		}
	}

	sub := &Graph{
		g:   simple.NewUndirectedGraph(),
		ids: make(map[string]int64),
	}
	// Preserve the parent's first-seen order for determinism.
	for _, id := range g.order {
		if in[id] {
			sub.node(id)
		}
	}
	for _, e := range g.Edges() {
		if in[e[0]] && in[e[1]] {
			sub.g.SetEdge(sub.g.NewEdge(sub.node(e[0]), sub.node(e[1])))
		}
	}
	return sub
}
