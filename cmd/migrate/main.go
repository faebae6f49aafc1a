package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	appRepos "github.com/yigit/placement/internal/app/repositories"
	"github.com/yigit/placement/internal/bootstrap"
	"github.com/yigit/placement/internal/config"
	"github.com/yigit/placement/internal/db"
	"github.com/yigit/placement/internal/pkg/logger"
	"github.com/yigit/placement/internal/seed"
)

func main() {
	app := &cli.App{
		Name:  "placement-migrate",
		Usage: "manage the placement records database",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   "configs/config.yaml",
				Usage:   "path to the YAML configuration file",
				EnvVars: []string{"PLACEMENT_CONFIG"},
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "up",
				Usage: "apply pending migrations",
				Action: func(c *cli.Context) error {
					return withDatabase(c, func(ctx context.Context, database *db.PostgresDB) error {
						applied, err := bootstrap.RunMigrations(ctx, database.Pool, logger.WithField("command", "up"))
						if err != nil {
							return err
						}
						fmt.Fprintf(c.App.Writer, "applied %d migration(s)\n", applied)
						return nil
					})
				},
			},
			{
				Name:  "seed",
				Usage: "insert demo data into an empty store",
				Action: func(c *cli.Context) error {
					return withDatabase(c, func(ctx context.Context, database *db.PostgresDB) error {
						seeded, err := seed.CreateDemoData(ctx, appRepos.NewRepositories(database.Pool), logger.WithField("command", "seed"))
						if err != nil {
							return err
						}
						if !seeded {
							fmt.Fprintln(c.App.Writer, "store not empty, nothing seeded")
						}
						return nil
					})
				},
			},
			{
				Name:  "env",
				Usage: "list the supported environment variables",
				Action: func(c *cli.Context) error {
					fmt.Fprintln(c.App.Writer, config.Usage())
					return nil
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Error().Err(err).Msg("Command failed")
		os.Exit(1)
	}
}

func withDatabase(c *cli.Context, fn func(context.Context, *db.PostgresDB) error) error {
	cfg, _, err := bootstrap.LoadConfigAndSetupLogger(c.String("config"))
	if err != nil {
		return err
	}

	database, err := db.NewPostgresDB(c.Context, cfg)
	if err != nil {
		return err
	}
	defer database.Close()

	return fn(c.Context, database)
}
