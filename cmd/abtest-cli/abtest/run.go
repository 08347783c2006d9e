package abtest

import (
	"os"
	"time"

	"golang.org/x/exp/rand"

	"github.com/epsilab/insight/dataset"
	"github.com/epsilab/insight/generator"
	"github.com/epsilab/insight/inference"
	"github.com/epsilab/insight/logger"
	"github.com/epsilab/insight/report"
	"github.com/epsilab/insight/utils"
	"github.com/epsilab/insight/visualizer"
	"github.com/urfave/cli/v2"
)

// RunCommand data structure for the full-pipeline app.
var RunCommand = cli.Command{
	Action: runAction,
	Name:   "run",
	Usage:  "runs the complete A/B-test pipeline: generate, analyze, visualize, report",
	Flags: []cli.Flag{
		&utils.ControlRateFlag,
		&utils.TreatmentRateFlag,
		&utils.NumUsersFlag,
		&utils.AlphaFlag,
		&utils.SimulationsFlag,
		&utils.SeedFlag,
		&utils.OutputDirFlag,
		&utils.ControlLabelFlag,
		&utils.TreatmentLabelFlag,
		&logger.LogLevelFlag,
	},
	Description: `
The run command chains all pipeline stages: experiment design, dataset
generation, statistical analysis, chart rendering and report writing. All
randomness derives from the --seed flag, so a run is reproducible.`,
}

// runAction executes the pipeline stages in order.
func runAction(ctx *cli.Context) error {
	cfg, err := utils.NewConfig(ctx)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "AbTestRun")
	start := time.Now()

	if err := utils.EnsureDirectories(cfg); err != nil {
		return err
	}

	// stage 1: experiment design
	design := report.DefaultExperimentDesign()
	design.SignificanceLevel = cfg.Alpha
	design.SampleSizePerGroup = cfg.NumUsers / 2
	log.Notice("Stage 1: experiment design")
	log.Infof("\n%v", design)

	// stage 2: dataset generation
	log.Notice("Stage 2: generate dataset")
	params := generator.DefaultABTestParams()
	params.ControlRate = cfg.ControlRate
	params.TreatmentRate = cfg.TreatmentRate
	params.NumUsers = cfg.NumUsers
	records, err := generator.GenerateClickRecords(params, rand.NewSource(cfg.Seed))
	if err != nil {
		return err
	}
	if err := dataset.WriteClickRecords(records, cfg.RawClickDataFile(), false); err != nil {
		return err
	}
	if err := dataset.WriteClickRecords(records, cfg.CleanClickDataFile(), true); err != nil {
		return err
	}
	log.Infof("Generated %d records", len(records))

	// stage 3: statistical analysis
	log.Notice("Stage 3: statistical analysis")
	results, err := inference.Analyze(dataset.Observations(records), inference.AnalysisParams{
		ControlLabel:   cfg.ControlLabel,
		TreatmentLabel: cfg.TreatmentLabel,
		Alpha:          cfg.Alpha,
		Simulations:    cfg.Simulations,
		Src:            rand.NewSource(cfg.Seed + 1),
	})
	if err != nil {
		return err
	}
	if err := results.WriteJSON(cfg.StatisticalResultsFile()); err != nil {
		return err
	}

	// stage 4: visualization
	log.Notice("Stage 4: render figures")
	curve, err := inference.PowerCurve(
		results.Control().Rate, results.Treatment().Rate,
		powerCurveSampleSizes, cfg.Alpha, powerCurveTrials, rand.NewSource(cfg.Seed+2))
	if err != nil {
		return err
	}
	filename, err := visualizer.RenderABTestFigures(results, curve, cfg.Alpha, cfg.FiguresDir())
	if err != nil {
		return err
	}
	log.Infof("Figures written to %v", filename)

	// stage 5: report
	log.Notice("Stage 5: write report")
	if err := report.WriteABTestReport(results, design, cfg.ABTestReportFile()); err != nil {
		return err
	}
	log.Infof("Report written to %v", cfg.ABTestReportFile())

	report.ABTestSummary(os.Stdout, results, design)

	hours, minutes, seconds := logger.ParseTime(time.Since(start))
	log.Noticef("Total elapsed time: %vh %vm %vs", hours, minutes, seconds)
	return nil
}
