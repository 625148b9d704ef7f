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
	"strings"

	"github.com/spf13/cobra"

	"github.com/acantor/spotify-net-tools/internal/analysis"
)

var datasetLimit int
var datasetCmd = &cobra.Command{
	Use:   "dataset",
	Short: "Builds and prints the cleaned analytical dataset",
	Long: `Selects the most popular artists, classifies their genres, joins chart-hit
aggregates and collaboration counts, and removes statistical outliers.`,
	Run: func(cmd *cobra.Command, args []string) {
		err := printDataset(os.Stdout, datasetLimit)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(datasetCmd)

	datasetCmd.Flags().IntVarP(&datasetLimit, "limit", "n", analysis.DefaultLimit, "size of the initial top-by-popularity selection")
}

func printDataset(w io.Writer, limit int) error {
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

	out := Analysis{results: [][]string{{"Rank", "Name", "Popularity", "Followers", "Genres", "Hits", "Countries", "Collabs"}}}
	for i, a := range d.Artists {
		out.results = append(out.results, []string{
			strconv.Itoa(i + 1),
			a.Name,
			strconv.Itoa(a.Popularity),
			strconv.FormatInt(a.Followers, 10),
			strings.Join(a.Genres, ", "),
			strconv.Itoa(a.TotalHits),
			strconv.Itoa(a.NumCountries),
			strconv.Itoa(a.CollabCount),
		})
	}
	out.summary = fmt.Sprintf("Kept %d of %d artists (limit %d)\n", d.Size(), len(tables.Artists), limit)

	fmt.Fprintln(w, out)
	return nil
}
