package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/acantor/spotify-net-tools/internal/analysis"
)

var reportLimit int
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generates a full collaboration report",
	Long:  `Builds the analytical dataset and prints it as YAML, together with per-genre collaboration statistics and input metadata.`,
	Run: func(cmd *cobra.Command, args []string) {
		err := runReport(os.Stdout, reportLimit)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error generating report: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().IntVarP(&reportLimit, "limit", "n", analysis.DefaultLimit, "size of the initial top-by-popularity selection")
}

func runReport(w io.Writer, limit int) error {
	report, err := generateReport(limit)
	if err != nil {
		return err
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	err = encoder.Encode(report)
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}

	return nil
}

func generateReport(limit int) (*analysis.Report, error) {
	log, err := newLogger()
	if err != nil {
		return nil, err
	}
	defer log.Sync()

	tables, err := loadTables(log)
	if err != nil {
		return nil, err
	}
	taxonomy, err := loadTaxonomy()
	if err != nil {
		return nil, err
	}

	d := analysis.BuildDataset(tables, taxonomy, log, analysis.Options{Limit: limit})
	return analysis.BuildReport(tables, d, taxonomy), nil
}
