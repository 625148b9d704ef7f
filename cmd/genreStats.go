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
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/acantor/spotify-net-tools/internal/analysis"
)

var genreStatsLimit int
var genreStatsCmd = &cobra.Command{
	Use:   "genre-stats",
	Short: "Prints mean collaboration counts per canonical genre",
	Run: func(cmd *cobra.Command, args []string) {
		err := printGenreStats(os.Stdout, genreStatsLimit)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(genreStatsCmd)

	genreStatsCmd.Flags().IntVarP(&genreStatsLimit, "limit", "n", analysis.DefaultLimit, "size of the initial top-by-popularity selection")
}

func printGenreStats(w io.Writer, limit int) error {
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

	d := analysis.BuildDataset(tables, taxonomy, log, analysis.Options{Limit: limit})
	stats := analysis.GenreCollaborationStats(d, taxonomy)

	out := Analysis{results: [][]string{{"Genre", "Artists", "Avg collaborations"}}}
	for _, s := range stats {
		out.results = append(out.results, []string{
			s.Genre,
			strconv.Itoa(s.ArtistCount),
			fmt.Sprintf("%.2f", s.AvgCollaborations),
		})
	}
	out.summary = fmt.Sprintf("Computed over %d artists\n", d.Size())

	fmt.Fprintln(w, out)
	return nil
}
