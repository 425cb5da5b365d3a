package main

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/urfave/cli/v2"
)

// Build information, overridden at link time.
var (
	CurrentVersion = "dev"
	CurrentCommit  = "unknown"
)

func main() {
	app := cli.NewApp()
	app.Name = "Govern"
	app.Usage = "Weighted governance engine"
	app.Compiled = time.Now()

	cli.VersionPrinter = func(c *cli.Context) {
		printVersion()
	}

	// global flags
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:  "repo",
			Usage: "Govern storage repo path",
		},
	}

	app.Commands = []*cli.Command{
		configCMD,
		{
			Name:   "start",
			Usage:  "Start a long-running governance daemon",
			Action: start,
		},
		{
			Name:    "version",
			Aliases: []string{"v"},
			Usage:   "Govern version",
			Action: func(ctx *cli.Context) error {
				printVersion()
				return nil
			},
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		fmt.Println(err)
	}
}

func printVersion() {
	fmt.Printf("Govern version: %s-%s\n", CurrentVersion, CurrentCommit)
	fmt.Printf("Golang version: %s\n", runtime.Version())
	fmt.Println()
}
