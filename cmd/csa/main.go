package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v2"
)

func newApp() *cli.App {
	return &cli.App{
		Name:  "csa",
		Usage: "Plans public transport journeys over a binary timetable",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "YAML configuration file",
				EnvVars: []string{"CSA_CONFIG"},
			},
			&cli.StringFlag{
				Name:    "timetable",
				Aliases: []string{"t"},
				Usage:   "timetable directory, overriding the configuration",
				Value:   "timetable",
			},
		},
		Before: setup,
		Commands: []*cli.Command{
			routeCommand(),
			stationsCommand(),
			downloadCommand(),
		},
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal("csa failed", "err", err)
	}
}
