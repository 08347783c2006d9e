package behavior

import (
	"fmt"
	"os"

	"github.com/epsilab/insight/behavior"
	"github.com/epsilab/insight/dataset"
	"github.com/epsilab/insight/logger"
	"github.com/epsilab/insight/report"
	"github.com/epsilab/insight/utils"
	"github.com/epsilab/insight/visualizer"
	"github.com/urfave/cli/v2"
)

// AnalyzeCommand data structure for the analyzer app.
var AnalyzeCommand = cli.Command{
	Action:    analyzeAction,
	Name:      "analyze",
	Usage:     "computes the behavior insights over a cleaned reading log",
	ArgsUsage: "[<data-file>]",
	Flags: []cli.Flag{
		&utils.OutputDirFlag,
		&utils.PortFlag,
		&logger.LogLevelFlag,
	},
	Description: `
The analyze command computes daily active users, hourly activity, category
popularity, user tiers and the action mix of the reading log, then writes
the text report and the figures and prints a console summary.

An optional argument overrides the cleaned data file of the output tree.
With --port set, the figures are served over HTTP instead of written to a
file.`,
}

// analyzeAction computes the insights of the cleaned reading log.
func analyzeAction(ctx *cli.Context) error {
	cfg, err := utils.NewConfig(ctx)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "BehaviorAnalyze")

	dataFile := cfg.CleanBehaviorDataFile()
	if ctx.Args().Len() == 1 {
		dataFile = ctx.Args().Get(0)
	} else if ctx.Args().Len() > 1 {
		return fmt.Errorf("at most one data file argument expected")
	}

	log.Infof("Read data file %v", dataFile)
	events, err := dataset.ReadBehaviorEvents(dataFile)
	if err != nil {
		return err
	}

	log.Infof("Analyze %d events", len(events))
	insights, err := behavior.Analyze(events)
	if err != nil {
		return err
	}

	if err := utils.EnsureDirectories(cfg); err != nil {
		return err
	}
	log.Noticef("Write report file %v", cfg.BehaviorReportFile())
	if err := report.WriteBehaviorReport(insights, cfg.BehaviorReportFile()); err != nil {
		return err
	}

	if ctx.IsSet(utils.PortFlag.Name) {
		report.BehaviorSummary(os.Stdout, insights)
		log.Noticef("Serving figures on port %v", cfg.Port)
		visualizer.FireUpWeb(nil, nil, 0, insights, cfg.Port)
		return nil
	}

	filename, err := visualizer.RenderBehaviorFigures(insights, cfg.FiguresDir())
	if err != nil {
		return err
	}
	log.Infof("Figures written to %v", filename)

	report.BehaviorSummary(os.Stdout, insights)
	return nil
}
