package behavior

import (
	"golang.org/x/exp/rand"

	"github.com/epsilab/insight/dataset"
	"github.com/epsilab/insight/generator"
	"github.com/epsilab/insight/logger"
	"github.com/epsilab/insight/utils"
	"github.com/urfave/cli/v2"
)

// GenerateCommand data structure for the reading-log generator app.
var GenerateCommand = cli.Command{
	Action: generateAction,
	Name:   "generate",
	Usage:  "generates the synthetic reading log and writes the raw CSV file",
	Flags: []cli.Flag{
		&utils.BehaviorUsersFlag,
		&utils.BehaviorDaysFlag,
		&utils.SeedFlag,
		&utils.OutputDirFlag,
		&logger.LogLevelFlag,
	},
	Description: `
The generate command synthesizes the reading log: per-user browse, read and
bookmark events over the configured day range, with a small fraction of
duplicate and zero-read-time rows for the cleaning stage to remove. A fixed
seed reproduces the log.`,
}

// generateAction generates the synthetic reading log and persists it.
func generateAction(ctx *cli.Context) error {
	cfg, err := utils.NewConfig(ctx)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "BehaviorGenerate")

	if err := utils.EnsureDirectories(cfg); err != nil {
		return err
	}

	params := generator.DefaultBehaviorParams()
	params.NumUsers = cfg.BehaviorUsers
	params.Days = cfg.BehaviorDays

	log.Infof("Generate reading log for %d users over %d days", params.NumUsers, params.Days)
	events, err := generator.GenerateBehaviorEvents(params, rand.NewSource(cfg.Seed))
	if err != nil {
		return err
	}

	log.Noticef("Write raw data file %v", cfg.RawBehaviorDataFile())
	return dataset.WriteBehaviorEvents(events, cfg.RawBehaviorDataFile())
}
