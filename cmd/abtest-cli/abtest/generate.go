package abtest

import (
	"golang.org/x/exp/rand"

	"github.com/epsilab/insight/dataset"
	"github.com/epsilab/insight/generator"
	"github.com/epsilab/insight/logger"
	"github.com/epsilab/insight/utils"
	"github.com/urfave/cli/v2"
)

// GenerateCommand data structure for the dataset generator app.
var GenerateCommand = cli.Command{
	Action: generateAction,
	Name:   "generate",
	Usage:  "generates the synthetic A/B-test dataset and writes the raw and cleaned CSV files",
	Flags: []cli.Flag{
		&utils.ControlRateFlag,
		&utils.TreatmentRateFlag,
		&utils.NumUsersFlag,
		&utils.SeedFlag,
		&utils.OutputDirFlag,
		&logger.LogLevelFlag,
	},
	Description: `
The generate command synthesizes the click dataset of the experiment design:
users are assigned to the control or treatment group with equal probability
and click with the group's true rate. A fixed seed reproduces the dataset.`,
}

// generateAction generates the synthetic dataset and persists it.
func generateAction(ctx *cli.Context) error {
	cfg, err := utils.NewConfig(ctx)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "AbTestGenerate")

	if err := utils.EnsureDirectories(cfg); err != nil {
		return err
	}

	params := generator.DefaultABTestParams()
	params.ControlRate = cfg.ControlRate
	params.TreatmentRate = cfg.TreatmentRate
	params.NumUsers = cfg.NumUsers

	log.Infof("Generate %d click records", params.NumUsers)
	records, err := generator.GenerateClickRecords(params, rand.NewSource(cfg.Seed))
	if err != nil {
		return err
	}

	log.Infof("Write raw data file %v", cfg.RawClickDataFile())
	if err := dataset.WriteClickRecords(records, cfg.RawClickDataFile(), false); err != nil {
		return err
	}
	log.Noticef("Write clean data file %v", cfg.CleanClickDataFile())
	return dataset.WriteClickRecords(records, cfg.CleanClickDataFile(), true)
}
