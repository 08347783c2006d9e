package main

import (
	"os"
	"path/filepath"
	"testing"
)

// TestPositiveGenerateAnalyze generates a dataset and analyzes it.
func TestPositiveGenerateAnalyze(t *testing.T) {
	outputDir := t.TempDir()
	app := initABTestApp()
	os.Args = []string{
		"abtest", "generate",
		"--num-users", "2000",
		"--seed", "42",
		"--output-dir", outputDir,
	}
	if err := app.Run(os.Args); err != nil {
		t.Fatalf("%v\n", err)
	}
	os.Args = []string{
		"abtest", "analyze",
		"--simulations", "200",
		"--seed", "42",
		"--output-dir", outputDir,
	}
	if err := app.Run(os.Args); err != nil {
		t.Fatalf("%v\n", err)
	}
	for _, file := range []string{
		filepath.Join(outputDir, "data", "raw", "ab_test_raw_data.csv"),
		filepath.Join(outputDir, "data", "processed", "ab_test_clean_data.csv"),
		filepath.Join(outputDir, "results", "statistical_results.json"),
		filepath.Join(outputDir, "results", "ab_test_report.md"),
	} {
		if _, err := os.Stat(file); err != nil {
			t.Errorf("expected output file %v; %v", file, err)
		}
	}
}

// TestPositiveRun executes the full pipeline with a small configuration.
func TestPositiveRun(t *testing.T) {
	outputDir := t.TempDir()
	app := initABTestApp()
	os.Args = []string{
		"abtest", "run",
		"--num-users", "2000",
		"--simulations", "200",
		"--seed", "42",
		"--output-dir", outputDir,
	}
	if err := app.Run(os.Args); err != nil {
		t.Fatalf("%v\n", err)
	}
	for _, file := range []string{
		filepath.Join(outputDir, "results", "statistical_results.json"),
		filepath.Join(outputDir, "results", "ab_test_report.md"),
		filepath.Join(outputDir, "results", "figures", "ab_test_figures.html"),
	} {
		if _, err := os.Stat(file); err != nil {
			t.Errorf("expected output file %v; %v", file, err)
		}
	}
}

// TestNegativeAnalyzeMissingData fails when the data file does not exist.
func TestNegativeAnalyzeMissingData(t *testing.T) {
	app := initABTestApp()
	os.Args = []string{
		"abtest", "analyze",
		"--output-dir", t.TempDir(),
	}
	if err := app.Run(os.Args); err == nil {
		t.Fatalf("expected an error for a missing data file")
	}
}
