package behavior

import (
	"fmt"

	"github.com/epsilab/insight/dataset"
	"github.com/epsilab/insight/logger"
	"github.com/epsilab/insight/utils"
	"github.com/urfave/cli/v2"
)

// CleanCommand data structure for the data-cleaning app.
var CleanCommand = cli.Command{
	Action:    cleanAction,
	Name:      "clean",
	Usage:     "removes duplicate and invalid rows from the raw reading log",
	ArgsUsage: "[<data-file>]",
	Flags: []cli.Flag{
		&utils.OutputDirFlag,
		&logger.LogLevelFlag,
	},
	Description: `
The clean command drops exact duplicate events and events with a
non-positive reading time, then writes the cleaned CSV file.

An optional argument overrides the raw data file of the output tree.`,
}

// cleanAction reads the raw log, removes broken rows and persists the result.
func cleanAction(ctx *cli.Context) error {
	cfg, err := utils.NewConfig(ctx)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "BehaviorClean")

	dataFile := cfg.RawBehaviorDataFile()
	if ctx.Args().Len() == 1 {
		dataFile = ctx.Args().Get(0)
	} else if ctx.Args().Len() > 1 {
		return fmt.Errorf("at most one data file argument expected")
	}

	log.Infof("Read raw data file %v", dataFile)
	events, err := dataset.ReadBehaviorEvents(dataFile)
	if err != nil {
		return err
	}

	cleaned, stats := dataset.CleanBehaviorEvents(events)
	log.Infof("Removed %d duplicate and %d non-positive read-time rows", stats.Duplicates, stats.NonPositive)

	if err := utils.EnsureDirectories(cfg); err != nil {
		return err
	}
	log.Noticef("Write clean data file %v", cfg.CleanBehaviorDataFile())
	return dataset.WriteBehaviorEvents(cleaned, cfg.CleanBehaviorDataFile())
}
