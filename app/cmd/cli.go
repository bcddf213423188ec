package cmd

import (
	"context"
	"log"
	"os"

	"github.com/storefront-go/storefront/app/configs"
	"github.com/storefront-go/storefront/app/db/seeders"
	"github.com/storefront-go/storefront/app/models/migrations"
	"github.com/urfave/cli/v3"
)

func RunCli() {
	cmd := &cli.Command{
		Commands: []*cli.Command{
			{
				Name:  "migrate",
				Usage: "Run database migration",
				Action: func(ctx context.Context, c *cli.Command) error {
					db, err := configs.OpenConnection(configs.LoadEnv())
					if err != nil {
						return err
					}
					if err := migrations.AutoMigrate(db); err != nil {
						return err
					}
					log.Println("migration complete")
					return nil
				},
			},
			{
				Name:  "seed",
				Usage: "Seed the catalog with demo data",
				Action: func(ctx context.Context, c *cli.Command) error {
					db, err := configs.OpenConnection(configs.LoadEnv())
					if err != nil {
						return err
					}
					if err := migrations.AutoMigrate(db); err != nil {
						return err
					}
					if err := seeders.Seed(db); err != nil {
						return err
					}
					log.Println("seeding complete")
					return nil
				},
			},
			{
				Name:  "generate-keys",
				Usage: "Generate session authentication and encryption keys for .env",
				Action: func(ctx context.Context, c *cli.Command) error {
					return configs.GenerateAndPrintSessionKeys()
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
