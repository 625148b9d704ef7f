package dataset

import "errors"

// ErrArtistNotFound is returned when a graph node has no matching row in
// the node relation. Callers decide how to render the miss; no defaults
// are substituted here.
var ErrArtistNotFound = errors.New("artist not found")

// Artist is one row of the node relation. Rows are immutable after Load;
// derived values (canonical genres, chart aggregates, collaboration
// counts) live on analysis.ClassifiedArtist instead.
type Artist struct {
	ID         string
	Name       string
	Followers  int64
	Popularity int

	// Genres holds the raw free-text tags, already deserialized from the
	// list-encoded CSV field. Empty when the field was missing or
	// unparsable.
	Genres []string

	// ChartHits is the raw serialized chart-hit list. Parsing is owned by
	// package charts, which has a stricter failure policy than the genre
	// field.
	ChartHits string
}

// Edge is one documented collaboration between two artists. The pair is
// unordered; multiplicity in the input is preserved here and collapsed
// only by the graph engine.
type Edge struct {
	ID0 string
	ID1 string
}

// Tables holds both input relations in memory. Uniqueness of artist IDs
// is an invariant of the input files and is not re-checked on load.
type Tables struct {
	Artists []Artist
	Edges   []Edge

	byID map[string]int
}

// NewTables builds an indexed table set from already-parsed rows. Load
// is the usual entry point; this is for callers assembling rows
// directly.
func NewTables(artists []Artist, edges []Edge) *Tables {
	t := &Tables{Artists: artists, Edges: edges}
	t.index()
	return t
}

// Artist looks up an artist row by spotify_id.
func (t *Tables) Artist(id string) (*Artist, error) {
	i, ok := t.byID[id]
	if !ok {
		return nil, ErrArtistNotFound
	}
	return &t.Artists[i], nil
}

func (t *Tables) index() {
	t.byID = make(map[string]int, len(t.Artists))
	for i := range t.Artists {
		t.byID[t.Artists[i].ID] = i
	}
}
