package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/urfave/cli/v2"

	"github.com/epsilab/insight/logger"
)

// runConfig builds a Config by running a throwaway cli app with the given
// arguments.
func runConfig(t *testing.T, args ...string) (*Config, error) {
	t.Helper()
	var cfg *Config
	var cfgErr error
	app := &cli.App{
		Flags: []cli.Flag{
			&ControlRateFlag,
			&TreatmentRateFlag,
			&NumUsersFlag,
			&AlphaFlag,
			&SimulationsFlag,
			&SeedFlag,
			&OutputDirFlag,
			&PortFlag,
			&ControlLabelFlag,
			&TreatmentLabelFlag,
			&BehaviorUsersFlag,
			&BehaviorDaysFlag,
			&logger.LogLevelFlag,
		},
		Action: func(ctx *cli.Context) error {
			cfg, cfgErr = NewConfig(ctx)
			return nil
		},
	}
	if err := app.Run(append([]string{"test"}, args...)); err != nil {
		t.Fatalf("app run failed; %v", err)
	}
	return cfg, cfgErr
}

// TestNewConfigDefaults checks the defaults of an argument-less run.
func TestNewConfigDefaults(t *testing.T) {
	cfg, err := runConfig(t)
	if err != nil {
		t.Fatalf("config failed; %v", err)
	}
	if cfg.ControlRate != 0.08 || cfg.TreatmentRate != 0.105 {
		t.Errorf("unexpected default rates %v/%v", cfg.ControlRate, cfg.TreatmentRate)
	}
	if cfg.NumUsers != 10000 || cfg.Simulations != 5000 || cfg.Seed != 42 {
		t.Errorf("unexpected defaults %+v", cfg)
	}
	if cfg.Alpha != 0.05 {
		t.Errorf("unexpected default alpha %v", cfg.Alpha)
	}
	if cfg.ControlLabel != "control" || cfg.TreatmentLabel != "treatment" {
		t.Errorf("unexpected default labels %q/%q", cfg.ControlLabel, cfg.TreatmentLabel)
	}
}

// TestNewConfigValidation checks early rejection of bad flag values.
func TestNewConfigValidation(t *testing.T) {
	if _, err := runConfig(t, "--alpha", "1.5"); err == nil {
		t.Errorf("expected error for alpha outside (0,1)")
	}
	if _, err := runConfig(t, "--control-label", "x", "--treatment-label", "x"); err == nil {
		t.Errorf("expected error for identical group labels")
	}
}

// TestFileLayout checks the output tree layout.
func TestFileLayout(t *testing.T) {
	cfg, err := runConfig(t, "--output-dir", "/tmp/run")
	if err != nil {
		t.Fatalf("config failed; %v", err)
	}
	if cfg.RawClickDataFile() != filepath.Join("/tmp/run", "data", "raw", "ab_test_raw_data.csv") {
		t.Errorf("unexpected raw data path %v", cfg.RawClickDataFile())
	}
	if cfg.StatisticalResultsFile() != filepath.Join("/tmp/run", "results", "statistical_results.json") {
		t.Errorf("unexpected results path %v", cfg.StatisticalResultsFile())
	}
	if cfg.FiguresDir() != filepath.Join("/tmp/run", "results", "figures") {
		t.Errorf("unexpected figures path %v", cfg.FiguresDir())
	}
}

// TestEnsureDirectories checks that the whole output tree is created.
func TestEnsureDirectories(t *testing.T) {
	cfg, err := runConfig(t, "--output-dir", t.TempDir())
	if err != nil {
		t.Fatalf("config failed; %v", err)
	}
	if err := EnsureDirectories(cfg); err != nil {
		t.Fatalf("directory creation failed; %v", err)
	}
	for _, dir := range []string{cfg.RawDataDir(), cfg.ProcessedDataDir(), cfg.ResultsDir(), cfg.FiguresDir()} {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			t.Errorf("directory %v missing", dir)
		}
	}
}
