package main

import (
	"os"

	"github.com/urfave/cli/v2"

	"github.com/yigit/placement/internal/pkg/logger"
	"github.com/yigit/placement/internal/server"
)

func main() {
	app := &cli.App{
		Name:  "placement-api",
		Usage: "serve the placement records web application",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   "configs/config.yaml",
				Usage:   "path to the YAML configuration file",
				EnvVars: []string{"PLACEMENT_CONFIG"},
			},
		},
		Action: func(c *cli.Context) error {
			srv, err := server.NewServer(c.Context, c.String("config"))
			if err != nil {
				// details are logged within NewServer's setup functions
				logger.Error().Err(err).Msg("Failed to initialize server")
				return err
			}

			// blocks until shutdown signal
			return srv.Run()
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
