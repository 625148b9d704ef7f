package dataset

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"go.uber.org/zap"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	nodes := writeFile(t, dir, "nodes.csv",
		`spotify_id,name,followers,popularity,genres,chart_hits
a1,Artist One,1000,90,"['pop', 'dance pop']","['(US 1)', '(DE 5)']"
a2,Artist Two,500,80,not-a-list,[]
a3,Artist Three,200,70,"['trap']",
`)
	edges := writeFile(t, dir, "edges.csv",
		`id_0,id_1
a1,a2
a2,a3
`)

	tables, err := Load(nodes, edges, zap.NewNop().Sugar())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if len(tables.Artists) != 3 {
		t.Fatalf("expected 3 artists, got %d", len(tables.Artists))
	}
	if len(tables.Edges) != 2 {
		t.Fatalf("expected 2 edges, got %d", len(tables.Edges))
	}

	a1, err := tables.Artist("a1")
	if err != nil {
		t.Fatalf("Artist(a1): %v", err)
	}
	if a1.Name != "Artist One" || a1.Followers != 1000 || a1.Popularity != 90 {
		t.Errorf("unexpected a1: %+v", a1)
	}
	if !reflect.DeepEqual(a1.Genres, []string{"pop", "dance pop"}) {
		t.Errorf("expected parsed genres, got %v", a1.Genres)
	}

	// Unparsable genre field silently yields an empty tag list.
	a2, err := tables.Artist("a2")
	if err != nil {
		t.Fatalf("Artist(a2): %v", err)
	}
	if len(a2.Genres) != 0 {
		t.Errorf("expected empty genres for malformed field, got %v", a2.Genres)
	}
}

func TestLoadPreservesInputOrder(t *testing.T) {
	dir := t.TempDir()
	nodes := writeFile(t, dir, "nodes.csv",
		`spotify_id,name,followers,popularity,genres,chart_hits
z,Zed,1,50,[],[]
a,Ay,2,50,[],[]
m,Em,3,50,[],[]
`)
	edges := writeFile(t, dir, "edges.csv", "id_0,id_1\n")

	tables, err := Load(nodes, edges, zap.NewNop().Sugar())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	got := []string{tables.Artists[0].ID, tables.Artists[1].ID, tables.Artists[2].ID}
	want := []string{"z", "a", "m"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected input order %v, got %v", want, got)
	}
}

func TestArtistNotFound(t *testing.T) {
	tables := &Tables{Artists: []Artist{{ID: "a1"}}}
	tables.index()

	if _, err := tables.Artist("missing"); err != ErrArtistNotFound {
		t.Errorf("expected ErrArtistNotFound, got %v", err)
	}
}

func TestLoadMissingColumn(t *testing.T) {
	dir := t.TempDir()
	nodes := writeFile(t, dir, "nodes.csv", "spotify_id,name\na1,Artist One\n")
	edges := writeFile(t, dir, "edges.csv", "id_0,id_1\n")

	if _, err := Load(nodes, edges, zap.NewNop().Sugar()); err == nil {
		t.Error("expected error for missing columns")
	}
}

func TestParseListField(t *testing.T) {
	cases := []struct {
		raw  string
		want []string
	}{
		{"['pop', 'k-pop']", []string{"pop", "k-pop"}},
		{`["rock 'n' roll"]`, []string{"rock 'n' roll"}},
		{"[]", nil},
		{"", nil},
		{"garbage", nil},
		{"42", nil},
	}
	for _, c := range cases {
		got := ParseListField(c.raw)
		if !reflect.DeepEqual(got, c.want) {
			t.Errorf("ParseListField(%q) = %v, want %v", c.raw, got, c.want)
		}
	}
}
