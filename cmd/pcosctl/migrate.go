package main

import (
	"github.com/spf13/cobra"

	"github.com/sumaiya226/PCOS/internal/config"
	"github.com/sumaiya226/PCOS/internal/database"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			db, err := database.Connect(cfg.Database)
			if err != nil {
				return err
			}
			return database.RunMigrations(db)
		},
	}
}
