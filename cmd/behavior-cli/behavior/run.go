package behavior

import (
	"os"
	"time"

	"golang.org/x/exp/rand"

	"github.com/epsilab/insight/behavior"
	"github.com/epsilab/insight/dataset"
	"github.com/epsilab/insight/generator"
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
	Usage:  "runs the complete behavior pipeline: generate, clean, analyze, visualize, report",
	Flags: []cli.Flag{
		&utils.BehaviorUsersFlag,
		&utils.BehaviorDaysFlag,
		&utils.SeedFlag,
		&utils.OutputDirFlag,
		&logger.LogLevelFlag,
	},
	Description: `
The run command chains all pipeline stages: reading-log generation, data
cleaning, insight computation, chart rendering and report writing. All
randomness derives from the --seed flag, so a run is reproducible.`,
}

// runAction executes the pipeline stages in order.
func runAction(ctx *cli.Context) error {
	cfg, err := utils.NewConfig(ctx)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "BehaviorRun")
	start := time.Now()

	if err := utils.EnsureDirectories(cfg); err != nil {
		return err
	}

	// stage 1: reading-log generation
	log.Notice("Stage 1: generate reading log")
	params := generator.DefaultBehaviorParams()
	params.NumUsers = cfg.BehaviorUsers
	params.Days = cfg.BehaviorDays
	events, err := generator.GenerateBehaviorEvents(params, rand.NewSource(cfg.Seed))
	if err != nil {
		return err
	}
	if err := dataset.WriteBehaviorEvents(events, cfg.RawBehaviorDataFile()); err != nil {
		return err
	}
	log.Infof("Generated %d events", len(events))

	// stage 2: data cleaning
	log.Notice("Stage 2: clean data")
	cleaned, stats := dataset.CleanBehaviorEvents(events)
	log.Infof("Removed %d duplicate and %d non-positive read-time rows", stats.Duplicates, stats.NonPositive)
	if err := dataset.WriteBehaviorEvents(cleaned, cfg.CleanBehaviorDataFile()); err != nil {
		return err
	}

	// stage 3: insight computation
	log.Notice("Stage 3: compute insights")
	insights, err := behavior.Analyze(cleaned)
	if err != nil {
		return err
	}

	// stage 4: visualization
	log.Notice("Stage 4: render figures")
	filename, err := visualizer.RenderBehaviorFigures(insights, cfg.FiguresDir())
	if err != nil {
		return err
	}
	log.Infof("Figures written to %v", filename)

	// stage 5: report
	log.Notice("Stage 5: write report")
	if err := report.WriteBehaviorReport(insights, cfg.BehaviorReportFile()); err != nil {
		return err
	}
	log.Infof("Report written to %v", cfg.BehaviorReportFile())

	report.BehaviorSummary(os.Stdout, insights)

	hours, minutes, seconds := logger.ParseTime(time.Since(start))
	log.Noticef("Total elapsed time: %vh %vm %vs", hours, minutes, seconds)
	return nil
}
