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
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"github.com/acantor/spotify-net-tools/internal/dataset"
	"github.com/acantor/spotify-net-tools/internal/genre"
)

var cfgFile string
var nodesPath string
var edgesPath string
var taxonomyPath string
var jsonLogs bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "spotify-net-tools",
	Short: "Performs analysis on the Spotify artist collaboration network",
	Long: `Builds a cleaned analytical dataset and a collaboration graph from the
Spotify artist network CSV dump (nodes.csv and edges.csv).`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default is $HOME/.spotify-net-tools.yaml)")

	rootCmd.PersistentFlags().StringVar(
		&nodesPath, "nodes", "./nodes.csv", "path to the node relation CSV")
	viper.BindPFlag("nodes", rootCmd.PersistentFlags().Lookup("nodes"))

	rootCmd.PersistentFlags().StringVar(
		&edgesPath, "edges", "./edges.csv", "path to the edge relation CSV")
	viper.BindPFlag("edges", rootCmd.PersistentFlags().Lookup("edges"))

	rootCmd.PersistentFlags().StringVar(
		&taxonomyPath, "taxonomy", "", "optional YAML file overriding the genre taxonomy")
	viper.BindPFlag("taxonomy", rootCmd.PersistentFlags().Lookup("taxonomy"))

	rootCmd.PersistentFlags().BoolVar(&jsonLogs, "json_logs", false, "emit JSON logs instead of console output")
	viper.BindPFlag("json_logs", rootCmd.PersistentFlags().Lookup("json_logs"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		// Search config in home directory with name ".spotify-net-tools" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".spotify-net-tools")
	}

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	// See https://github.com/spf13/viper/pull/852
	rootCmd.Flags().VisitAll(func(f *pflag.Flag) {
		if viper.IsSet(f.Name) && viper.GetString(f.Name) != "" {
			rootCmd.Flags().Set(f.Name, viper.GetString(f.Name))
		}
	})
}

func newLogger() (*zap.SugaredLogger, error) {
	var logger *zap.Logger
	var err error
	if viper.GetBool("json_logs") {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, fmt.Errorf("newLogger: %w", err)
	}
	return logger.Sugar(), nil
}

func loadTables(log *zap.SugaredLogger) (*dataset.Tables, error) {
	tables, err := dataset.Load(viper.GetString("nodes"), viper.GetString("edges"), log)
	if err != nil {
		return nil, fmt.Errorf("loadTables: %w", err)
	}
	return tables, nil
}

func loadTaxonomy() (genre.Taxonomy, error) {
	path := viper.GetString("taxonomy")
	if path == "" {
		return genre.Default(), nil
	}
	taxonomy, err := genre.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loadTaxonomy: %w", err)
	}
	return taxonomy, nil
}
