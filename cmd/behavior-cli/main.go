package main

import (
	"fmt"
	"os"

	"github.com/epsilab/insight/cmd/behavior-cli/behavior"
	"github.com/urfave/cli/v2"
)

// initBehaviorApp initializes a behavior-cli app. This function is called by
// the main function and unit tests.
func initBehaviorApp() *cli.App {
	return &cli.App{
		Name:      "Insight User-Behavior Pipeline",
		HelpName:  "behavior",
		Copyright: "(c) 2024 Epsilab",
		Flags:     []cli.Flag{},
		Commands: []*cli.Command{
			&behavior.GenerateCommand,
			&behavior.CleanCommand,
			&behavior.AnalyzeCommand,
			&behavior.RunCommand,
		},
	}
}

// main implements the "behavior" cli application.
func main() {
	app := initBehaviorApp()
	if err := app.Run(os.Args); err != nil {
		code := 1
		fmt.Fprintln(os.Stderr, err)
		os.Exit(code)
	}
}
