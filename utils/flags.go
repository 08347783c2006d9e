package utils

import (
	"github.com/urfave/cli/v2"
)

// Command line options shared by the pipeline commands.
var (
	ControlRateFlag = cli.Float64Flag{
		Name:  "control-rate",
		Usage: "true click rate of the control group for data generation",
		Value: 0.08,
	}
	TreatmentRateFlag = cli.Float64Flag{
		Name:  "treatment-rate",
		Usage: "true click rate of the treatment group for data generation",
		Value: 0.105,
	}
	NumUsersFlag = cli.IntFlag{
		Name:  "num-users",
		Usage: "number of users in the generated dataset",
		Value: 10_000,
	}
	AlphaFlag = cli.Float64Flag{
		Name:  "alpha",
		Usage: "significance level of the analysis",
		Value: 0.05,
	}
	SimulationsFlag = cli.IntFlag{
		Name:  "simulations",
		Usage: "number of Monte-Carlo trials of the power analysis",
		Value: 5_000,
	}
	SeedFlag = cli.Uint64Flag{
		Name:  "seed",
		Usage: "random seed; runs with the same seed reproduce the same datasets and power estimates",
		Value: 42,
	}
	OutputDirFlag = cli.PathFlag{
		Name:  "output-dir",
		Usage: "root directory of datasets, results and figures",
		Value: ".",
	}
	PortFlag = cli.StringFlag{
		Name:        "port",
		Aliases:     []string{"v"},
		Usage:       "enable visualization on `PORT`",
		DefaultText: "8080",
	}
	ControlLabelFlag = cli.StringFlag{
		Name:  "control-label",
		Usage: "group column value of the control group",
		Value: "control",
	}
	TreatmentLabelFlag = cli.StringFlag{
		Name:  "treatment-label",
		Usage: "group column value of the treatment group",
		Value: "treatment",
	}
	BehaviorUsersFlag = cli.IntFlag{
		Name:  "behavior-users",
		Usage: "number of users in the generated behavior log",
		Value: 1_000,
	}
	BehaviorDaysFlag = cli.IntFlag{
		Name:  "behavior-days",
		Usage: "number of days covered by the generated behavior log",
		Value: 30,
	}
)
