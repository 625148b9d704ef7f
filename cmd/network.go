/*
Copyright 2020 Google LLC

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/acantor/spotify-net-tools/internal/dataset"
	"github.com/acantor/spotify-net-tools/internal/genre"
	"github.com/acantor/spotify-net-tools/internal/network"
)

var networkNumber int
var networkGenre string
var networkMinPopularity int
var networkMaxPopularity int
var networkFormat string

var networkCmd = &cobra.Command{
	Use:   "network",
	Short: "Shows the most connected artists in the collaboration graph",
	Long: `Ranks artists by number of distinct collaborators, optionally restricted
to a canonical genre and a popularity range, and prints the induced
subgraph as a table or as JSON elements for an external renderer.`,
	Run: func(cmd *cobra.Command, args []string) {
		err := printNetwork(os.Stdout)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(networkCmd)

	networkCmd.Flags().IntVarP(&networkNumber, "number", "n", 50, "number of top-degree artists to include")
	networkCmd.Flags().StringVar(&networkGenre, "genre", "", "restrict to artists in this canonical genre")
	networkCmd.Flags().IntVar(&networkMinPopularity, "min_popularity", 0, "minimum artist popularity")
	networkCmd.Flags().IntVar(&networkMaxPopularity, "max_popularity", 100, "maximum artist popularity")
	networkCmd.Flags().StringVar(&networkFormat, "format", "table", "output format: table or json")
}

// networkElements is the JSON payload consumed by the external renderer.
type networkElements struct {
	Nodes []network.NodeElement `json:"nodes"`
	Edges []network.EdgeElement `json:"edges"`
}

func printNetwork(w io.Writer) error {
	if networkFormat != "table" && networkFormat != "json" {
		return fmt.Errorf("invalid format %q: want table or json", networkFormat)
	}

	log, err := newLogger()
	if err != nil {
		return err
	}
	defer log.Sync()

	tables, err := loadTables(log)
	if err != nil {
		return err
	}
	taxonomy, err := loadTaxonomy()
	if err != nil {
		return err
	}

	g := network.NewGraph(tables.Edges)
	candidates := filterNodes(g, tables, taxonomy)
	top := topNByDegree(g, candidates, networkNumber)
	sub := g.InducedSubgraph(top)

	if networkFormat == "json" {
		nodes, edges, err := network.Elements(sub, tables)
		if err != nil {
			return err
		}
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(networkElements{Nodes: nodes, Edges: edges})
	}

	out := Analysis{results: [][]string{{"Rank", "Name", "Collaborators", "Popularity", "Genres"}}}
	for i, id := range top {
		name, popularity, genres := id, 0, []string(nil)
		if artist, err := tables.Artist(id); err == nil {
			name = artist.Name
			popularity = artist.Popularity
			genres = taxonomy.Classify(artist.Genres)
		}
		out.results = append(out.results, []string{
			strconv.Itoa(i + 1),
			name,
			strconv.Itoa(g.Degree(id)),
			strconv.Itoa(popularity),
			strings.Join(genres, ", "),
		})
	}
	out.summary = fmt.Sprintf("Showing %d of %d artists in the network\n", len(top), g.NodeCount())

	fmt.Fprintln(w, out)
	return nil
}

// filterNodes applies the genre and popularity restrictions. An artist
// without a row in the node relation passes only when no filter is
// active; the filters need attributes to test against.
func filterNodes(g *network.Graph, tables *dataset.Tables, taxonomy genre.Taxonomy) []string {
	filtered := networkGenre != "" || networkMinPopularity > 0 || networkMaxPopularity < 100

	var keep []string
	for _, id := range g.NodeIDs() {
		artist, err := tables.Artist(id)
		if err != nil {
			if !filtered {
				keep = append(keep, id)
			}
			continue
		}
		if artist.Popularity < networkMinPopularity || artist.Popularity > networkMaxPopularity {
			continue
		}
		if networkGenre != "" && !hasGenre(taxonomy.Classify(artist.Genres), networkGenre) {
			continue
		}
		keep = append(keep, id)
	}
	return keep
}

func hasGenre(genres []string, want string) bool {
	for _, g := range genres {
		if g == want {
			return true
		}
	}
	return false
}

// topNByDegree ranks the candidate IDs by degree in the full graph,
// stable on the candidate order, and clamps n.
func topNByDegree(g *network.Graph, candidates []string, n int) []string {
	ranked := g.TopNByDegree(g.NodeCount())
	in := make(map[string]bool, len(candidates))
	for _, id := range candidates {
		in[id] = true
	}

	var top []string
	for _, id := range ranked {
		if !in[id] {
			continue
		}
		top = append(top, id)
		if len(top) == n {
			break
		}
	}
	return top
}
