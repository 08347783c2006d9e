package main

import (
	"fmt"
	"os"

	"github.com/epsilab/insight/cmd/abtest-cli/abtest"
	"github.com/urfave/cli/v2"
)

// initABTestApp initializes an abtest-cli app. This function is called by
// the main function and unit tests.
func initABTestApp() *cli.App {
	return &cli.App{
		Name:      "Insight A/B-Test Pipeline",
		HelpName:  "abtest",
		Copyright: "(c) 2024 Epsilab",
		Flags:     []cli.Flag{},
		Commands: []*cli.Command{
			&abtest.GenerateCommand,
			&abtest.AnalyzeCommand,
			&abtest.VisualizeCommand,
			&abtest.RunCommand,
		},
	}
}

// main implements the "abtest" cli application.
func main() {
	app := initABTestApp()
	if err := app.Run(os.Args); err != nil {
		code := 1
		fmt.Fprintln(os.Stderr, err)
		os.Exit(code)
	}
}
