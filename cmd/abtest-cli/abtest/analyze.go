package abtest

import (
	"fmt"
	"os"

	"golang.org/x/exp/rand"

	"github.com/epsilab/insight/dataset"
	"github.com/epsilab/insight/inference"
	"github.com/epsilab/insight/logger"
	"github.com/epsilab/insight/report"
	"github.com/epsilab/insight/utils"
	"github.com/urfave/cli/v2"
)

// AnalyzeCommand data structure for the analyzer app.
var AnalyzeCommand = cli.Command{
	Action:    analyzeAction,
	Name:      "analyze",
	Usage:     "runs the statistical analysis over a click dataset",
	ArgsUsage: "[<data-file>]",
	Flags: []cli.Flag{
		&utils.AlphaFlag,
		&utils.SimulationsFlag,
		&utils.SeedFlag,
		&utils.OutputDirFlag,
		&utils.ControlLabelFlag,
		&utils.TreatmentLabelFlag,
		&logger.LogLevelFlag,
	},
	Description: `
The analyze command computes per-group click rates, the chi-square test of
independence, the Wald confidence interval of the rate difference, Cohen's h
and a Monte-Carlo power estimate, then writes the result JSON, the markdown
report and a console summary.

An optional argument overrides the cleaned data file of the output tree.`,
}

// analyzeAction runs the inference engine over the cleaned dataset.
func analyzeAction(ctx *cli.Context) error {
	cfg, err := utils.NewConfig(ctx)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "AbTestAnalyze")

	dataFile := cfg.CleanClickDataFile()
	if ctx.Args().Len() == 1 {
		dataFile = ctx.Args().Get(0)
	} else if ctx.Args().Len() > 1 {
		return fmt.Errorf("at most one data file argument expected")
	}

	log.Infof("Read data file %v", dataFile)
	records, err := dataset.ReadClickRecords(dataFile)
	if err != nil {
		return err
	}

	log.Infof("Analyze %d records", len(records))
	results, err := inference.Analyze(dataset.Observations(records), inference.AnalysisParams{
		ControlLabel:   cfg.ControlLabel,
		TreatmentLabel: cfg.TreatmentLabel,
		Alpha:          cfg.Alpha,
		Simulations:    cfg.Simulations,
		Src:            rand.NewSource(cfg.Seed),
	})
	if err != nil {
		return err
	}

	if err := utils.EnsureDirectories(cfg); err != nil {
		return err
	}
	log.Noticef("Write results file %v", cfg.StatisticalResultsFile())
	if err := results.WriteJSON(cfg.StatisticalResultsFile()); err != nil {
		return err
	}

	design := report.DefaultExperimentDesign()
	design.SignificanceLevel = cfg.Alpha
	log.Noticef("Write report file %v", cfg.ABTestReportFile())
	if err := report.WriteABTestReport(results, design, cfg.ABTestReportFile()); err != nil {
		return err
	}

	report.ABTestSummary(os.Stdout, results, design)
	return nil
}
