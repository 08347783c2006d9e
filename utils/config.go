package utils

import (
	"fmt"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/epsilab/insight/logger"
)

// Config holds the materialized command-line configuration of a pipeline
// run. It is built once from a cli.Context and passed read-only through the
// pipeline stages.
type Config struct {
	ControlRate    float64 // true control click rate (generation)
	TreatmentRate  float64 // true treatment click rate (generation)
	NumUsers       int     // users in the generated A/B dataset
	Alpha          float64 // significance level
	Simulations    int     // Monte-Carlo trials of the power analysis
	Seed           uint64  // random seed of generators and power analysis
	OutputDir      string  // root of datasets, results and figures
	Port           string  // visualization port
	ControlLabel   string  // group label of the control group
	TreatmentLabel string  // group label of the treatment group
	BehaviorUsers  int     // users in the generated behavior log
	BehaviorDays   int     // days covered by the generated behavior log
	LogLevel       string
}

// NewConfig reads the flag values of the invoked command and validates the
// numeric domains early, so stage code can rely on them.
func NewConfig(ctx *cli.Context) (*Config, error) {
	cfg := &Config{
		ControlRate:    ctx.Float64(ControlRateFlag.Name),
		TreatmentRate:  ctx.Float64(TreatmentRateFlag.Name),
		NumUsers:       ctx.Int(NumUsersFlag.Name),
		Alpha:          ctx.Float64(AlphaFlag.Name),
		Simulations:    ctx.Int(SimulationsFlag.Name),
		Seed:           ctx.Uint64(SeedFlag.Name),
		OutputDir:      ctx.Path(OutputDirFlag.Name),
		Port:           ctx.String(PortFlag.Name),
		ControlLabel:   ctx.String(ControlLabelFlag.Name),
		TreatmentLabel: ctx.String(TreatmentLabelFlag.Name),
		BehaviorUsers:  ctx.Int(BehaviorUsersFlag.Name),
		BehaviorDays:   ctx.Int(BehaviorDaysFlag.Name),
		LogLevel:       ctx.String(logger.LogLevelFlag.Name),
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "."
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.ControlLabel == "" {
		cfg.ControlLabel = "control"
	}
	if cfg.TreatmentLabel == "" {
		cfg.TreatmentLabel = "treatment"
	}
	if cfg.Alpha != 0 && (cfg.Alpha <= 0 || cfg.Alpha >= 1) {
		return nil, fmt.Errorf("alpha %v outside (0,1)", cfg.Alpha)
	}
	if cfg.ControlLabel == cfg.TreatmentLabel {
		return nil, fmt.Errorf("control and treatment label must differ; got %q twice", cfg.ControlLabel)
	}
	return cfg, nil
}

// File-layout helpers of the pipeline output tree. The layout mirrors the
// stage order: raw data, processed data, results and figures.

func (cfg *Config) RawDataDir() string {
	return filepath.Join(cfg.OutputDir, "data", "raw")
}

func (cfg *Config) ProcessedDataDir() string {
	return filepath.Join(cfg.OutputDir, "data", "processed")
}

func (cfg *Config) ResultsDir() string {
	return filepath.Join(cfg.OutputDir, "results")
}

func (cfg *Config) FiguresDir() string {
	return filepath.Join(cfg.OutputDir, "results", "figures")
}

func (cfg *Config) RawClickDataFile() string {
	return filepath.Join(cfg.RawDataDir(), "ab_test_raw_data.csv")
}

func (cfg *Config) CleanClickDataFile() string {
	return filepath.Join(cfg.ProcessedDataDir(), "ab_test_clean_data.csv")
}

func (cfg *Config) StatisticalResultsFile() string {
	return filepath.Join(cfg.ResultsDir(), "statistical_results.json")
}

func (cfg *Config) ABTestReportFile() string {
	return filepath.Join(cfg.ResultsDir(), "ab_test_report.md")
}

func (cfg *Config) RawBehaviorDataFile() string {
	return filepath.Join(cfg.RawDataDir(), "user_behavior_data.csv")
}

func (cfg *Config) CleanBehaviorDataFile() string {
	return filepath.Join(cfg.ProcessedDataDir(), "user_behavior_data_clean.csv")
}

func (cfg *Config) BehaviorReportFile() string {
	return filepath.Join(cfg.ResultsDir(), "analysis_report.txt")
}
