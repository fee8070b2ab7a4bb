package main

import (
	"log"
	"os"

	"github.com/pkg/errors"
	"github.com/runlet/runlet/cmd"
	"github.com/runlet/runlet/pkg/config"
	"github.com/runlet/runlet/pkg/logger"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "runlet",
		Usage: "Minimal service lifecycle orchestrator",
		Commands: []*cli.Command{
			cmd.RuntimeCommand(),
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Config file path",
				Value:   "./config.yaml",
			},
		},
		Before: func(c *cli.Context) error {
			// Initialize global configuration. Can be accessed later on via config.G()
			cfg, err := config.InitializeGlobalConfig(c.String("config"))
			if err != nil {
				return errors.Wrap(err, "failure to load main runlet configuration file")
			}

			// Initialize the global logger. Can be accessed later on via logger.G()
			gLog, err := logger.InitializeGlobalLogger(cfg.Logger)
			if err != nil {
				return errors.Wrap(err, "failure to initialize logger")
			}

			gLog.Debug(
				"Successfully loaded global configuration and logger setup",
				"environment", cfg.Logger.Environment,
				"level", cfg.Logger.Level,
			)

			return nil
		},
		After: func(c *cli.Context) error {
			return logger.Sync()
		},
	}

	// Run the app and handle any errors
	if err := app.Run(os.Args); err != nil {
		log.Fatalf("failure while running runlet: %v", err)
	}
}
