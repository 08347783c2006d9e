package main

import (
	"os"
	"path/filepath"
	"testing"
)

// TestPositiveRun executes the full pipeline with a small configuration.
func TestPositiveRun(t *testing.T) {
	outputDir := t.TempDir()
	app := initBehaviorApp()
	os.Args = []string{
		"behavior", "run",
		"--behavior-users", "100",
		"--behavior-days", "7",
		"--seed", "42",
		"--output-dir", outputDir,
	}
	if err := app.Run(os.Args); err != nil {
		t.Fatalf("%v\n", err)
	}
	for _, file := range []string{
		filepath.Join(outputDir, "data", "raw", "user_behavior_data.csv"),
		filepath.Join(outputDir, "data", "processed", "user_behavior_data_clean.csv"),
		filepath.Join(outputDir, "results", "analysis_report.txt"),
		filepath.Join(outputDir, "results", "figures", "user_behavior_figures.html"),
	} {
		if _, err := os.Stat(file); err != nil {
			t.Errorf("expected output file %v; %v", file, err)
		}
	}
}

// TestPositiveGenerateCleanAnalyze executes the stage commands one by one.
func TestPositiveGenerateCleanAnalyze(t *testing.T) {
	outputDir := t.TempDir()
	app := initBehaviorApp()
	for _, args := range [][]string{
		{"behavior", "generate", "--behavior-users", "100", "--behavior-days", "7", "--seed", "7", "--output-dir", outputDir},
		{"behavior", "clean", "--output-dir", outputDir},
		{"behavior", "analyze", "--output-dir", outputDir},
	} {
		os.Args = args
		if err := app.Run(os.Args); err != nil {
			t.Fatalf("command %v failed; %v\n", args[1], err)
		}
	}
}

// TestNegativeCleanMissingData fails when the raw data file does not exist.
func TestNegativeCleanMissingData(t *testing.T) {
	app := initBehaviorApp()
	os.Args = []string{
		"behavior", "clean",
		"--output-dir", t.TempDir(),
	}
	if err := app.Run(os.Args); err == nil {
		t.Fatalf("expected an error for a missing data file")
	}
}
