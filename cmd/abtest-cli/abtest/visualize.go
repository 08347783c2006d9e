package abtest

import (
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/epsilab/insight/inference"
	"github.com/epsilab/insight/logger"
	"github.com/epsilab/insight/utils"
	"github.com/epsilab/insight/visualizer"
	"github.com/urfave/cli/v2"
)

// VisualizeCommand data structure for the visualize app.
var VisualizeCommand = cli.Command{
	Action:    visualizeAction,
	Name:      "visualize",
	Usage:     "renders the analysis results as chart pages",
	ArgsUsage: "[<results-file>]",
	Flags: []cli.Flag{
		&utils.AlphaFlag,
		&utils.SeedFlag,
		&utils.OutputDirFlag,
		&utils.PortFlag,
		&logger.LogLevelFlag,
	},
	Description: `
The visualize command reads a statistical results file and renders the
click-rate comparison, the confidence interval and the power curve. With
--port the charts are served over HTTP instead of written to the figures
directory.`,
}

// powerCurveSampleSizes are the per-group sizes of the power curve chart.
var powerCurveSampleSizes = []int{500, 1000, 2000, 3000, 4000, 5000, 6000, 8000}

// powerCurveTrials is the per-point trial count; coarser than the headline
// power estimate since the curve is illustrative.
const powerCurveTrials = 500

// visualizeAction renders the result charts.
func visualizeAction(ctx *cli.Context) error {
	cfg, err := utils.NewConfig(ctx)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "AbTestVisualize")

	resultsFile := cfg.StatisticalResultsFile()
	if ctx.Args().Len() == 1 {
		resultsFile = ctx.Args().Get(0)
	} else if ctx.Args().Len() > 1 {
		return fmt.Errorf("at most one results file argument expected")
	}

	log.Infof("Read results file %v", resultsFile)
	results, err := inference.ReadResults(resultsFile)
	if err != nil {
		return err
	}

	log.Infof("Estimate power curve over %d sample sizes", len(powerCurveSampleSizes))
	curve, err := inference.PowerCurve(
		results.Control().Rate, results.Treatment().Rate,
		powerCurveSampleSizes, cfg.Alpha, powerCurveTrials, rand.NewSource(cfg.Seed))
	if err != nil {
		return err
	}

	if ctx.IsSet(utils.PortFlag.Name) {
		log.Noticef("Open web browser with http://localhost:" + cfg.Port)
		log.Notice("Cancel visualize with ^C")
		visualizer.FireUpWeb(results, curve, cfg.Alpha, nil, cfg.Port)
		return nil
	}

	filename, err := visualizer.RenderABTestFigures(results, curve, cfg.Alpha, cfg.FiguresDir())
	if err != nil {
		return err
	}
	log.Noticef("Figures written to %v", filename)
	return nil
}
