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
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func writeTestRelations(t *testing.T) {
	t.Helper()
	dir := t.TempDir()

	nodes := filepath.Join(dir, "nodes.csv")
	nodesData := "spotify_id,name,followers,popularity,genres,chart_hits\n" +
		"A,Alpha,1000,90,\"['pop']\",\"['(US 1)']\"\n" +
		"B,Beta,2000,85,\"['trap']\",\"['(US 3)', '(CA 5)']\"\n"
	if err := os.WriteFile(nodes, []byte(nodesData), 0644); err != nil {
		t.Fatal(err)
	}

	edges := filepath.Join(dir, "edges.csv")
	if err := os.WriteFile(edges, []byte("id_0,id_1\nA,B\n"), 0644); err != nil {
		t.Fatal(err)
	}

	viper.Set("nodes", nodes)
	viper.Set("edges", edges)
	t.Cleanup(func() {
		viper.Set("nodes", "")
		viper.Set("edges", "")
	})
}

func TestPrintDataset(t *testing.T) {
	writeTestRelations(t)

	out := new(bytes.Buffer)
	if err := printDataset(out, 10); err != nil {
		t.Fatalf("printDataset: %v", err)
	}

	for _, want := range []string{"Alpha", "Beta", "Kept 2 of 2 artists"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestPrintDatasetMissingInput(t *testing.T) {
	viper.Set("nodes", filepath.Join(t.TempDir(), "missing.csv"))
	viper.Set("edges", filepath.Join(t.TempDir(), "missing.csv"))
	t.Cleanup(func() {
		viper.Set("nodes", "")
		viper.Set("edges", "")
	})

	if err := printDataset(new(bytes.Buffer), 10); err == nil {
		t.Fatalf("printDataset should have errored with missing input files")
	}
}

func TestPrintGenreStats(t *testing.T) {
	writeTestRelations(t)

	out := new(bytes.Buffer)
	if err := printGenreStats(out, 10); err != nil {
		t.Fatalf("printGenreStats: %v", err)
	}

	// Alpha is pop with one collaboration; trap maps to hip-hop.
	for _, want := range []string{"pop", "hip-hop", "1.00"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}
