package network

import (
	"errors"

	"github.com/acantor/spotify-net-tools/internal/dataset"
)

// NodeElement is one renderable network node. Size carries the node's
// degree so a renderer can scale markers without recomputing it.
type NodeElement struct {
	ID         string   `json:"id"`
	Label      string   `json:"label"`
	Size       int      `json:"size"`
	Popularity int      `json:"popularity"`
	Followers  int64    `json:"followers"`
	Genres     []string `json:"genres,omitempty"`
}

// EdgeElement is one renderable collaboration link.
type EdgeElement struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// Elements flattens a graph into renderable node and edge lists, joined
// against the artist table for display attributes. A node without a
// matching artist row keeps its ID as the label and zero attributes;
// the edge relation is allowed to mention artists the node relation
// does not.
func Elements(g *Graph, tables *dataset.Tables) ([]NodeElement, []EdgeElement, error) {
	nodes := make([]NodeElement, 0, g.NodeCount())
	for _, id := range g.NodeIDs() {
		node := NodeElement{ID: id, Label: id, Size: g.Degree(id)}
		artist, err := tables.Artist(id)
		if err != nil {
			if !errors.Is(err, dataset.ErrArtistNotFound) {
				return nil, nil, err
			}
		} else {
			node.Label = artist.Name
			node.Popularity = artist.Popularity
			node.Followers = artist.Followers
			node.Genres = artist.Genres
		}
		nodes = append(nodes, node)
	}

	edges := make([]EdgeElement, 0)
	for _, e := range g.Edges() {
		edges = append(edges, EdgeElement{Source: e[0], Target: e[1]})
	}
	return nodes, edges, nil
}
