package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// quotedItem matches one element of a list-serialized field, which uses
// Python repr conventions: single quotes normally, double quotes when the
// value itself contains an apostrophe.
var quotedItem = regexp.MustCompile(`'([^']*)'|"([^"]*)"`)

// Load reads the node and edge relations from CSV files. The result is
// treated as immutable by everything downstream; a filter change rebuilds
// derived views rather than mutating these tables.
func Load(nodesPath, edgesPath string, log *zap.SugaredLogger) (*Tables, error) {
	artists, err := loadNodes(nodesPath)
	if err != nil {
		return nil, fmt.Errorf("loading nodes from %s: %w", nodesPath, err)
	}
	edges, err := loadEdges(edgesPath)
	if err != nil {
		return nil, fmt.Errorf("loading edges from %s: %w", edgesPath, err)
	}

	t := NewTables(artists, edges)
	log.Debugw("loaded input relations", "artists", len(artists), "edges", len(edges))
	return t, nil
}

// ParseListField deserializes a list-encoded field like "['pop', 'k-pop']"
// into its elements. Anything that does not look like a list yields an
// empty result, not an error: the genre field is lenient by policy.
func ParseListField(raw string) []string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "[") || !strings.HasSuffix(s, "]") {
		return nil
	}
	var items []string
	for _, m := range quotedItem.FindAllStringSubmatch(s, -1) {
		if m[1] != "" {
			items = append(items, m[1])
		} else if m[2] != "" {
			items = append(items, m[2])
		}
	}
	return items
}

func loadNodes(path string) ([]Artist, error) {
	rows, header, err := readCSV(path)
	if err != nil {
		return nil, err
	}

	cols, err := columnIndex(header, "spotify_id", "name", "followers", "popularity", "genres", "chart_hits")
	if err != nil {
		return nil, err
	}

	artists := make([]Artist, 0, len(rows))
	for i, row := range rows {
		followers, err := strconv.ParseInt(row[cols["followers"]], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: parsing followers: %w", i+2, err)
		}
		popularity, err := strconv.Atoi(row[cols["popularity"]])
		if err != nil {
			return nil, fmt.Errorf("row %d: parsing popularity: %w", i+2, err)
		}

		artists = append(artists, Artist{
			ID:         row[cols["spotify_id"]],
			Name:       row[cols["name"]],
			Followers:  followers,
			Popularity: popularity,
			Genres:     ParseListField(row[cols["genres"]]),
			ChartHits:  row[cols["chart_hits"]],
		})
	}
	return artists, nil
}

func loadEdges(path string) ([]Edge, error) {
	rows, header, err := readCSV(path)
	if err != nil {
		return nil, err
	}

	cols, err := columnIndex(header, "id_0", "id_1")
	if err != nil {
		return nil, err
	}

	edges := make([]Edge, 0, len(rows))
	for _, row := range rows {
		edges = append(edges, Edge{ID0: row[cols["id_0"]], ID1: row[cols["id_1"]]})
	}
	return edges, nil
}

func readCSV(path string) ([][]string, []string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("reading csv: %w", err)
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("empty csv file")
	}
	return records[1:], records[0], nil
}

func columnIndex(header []string, required ...string) (map[string]int, error) {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	for _, name := range required {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("missing column %q", name)
		}
	}
	return cols, nil
}
