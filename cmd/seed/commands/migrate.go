package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AgriSeed/agriseed-cms-backend/config"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update every table",
	RunE: func(cmd *cobra.Command, args []string) error {
		banner(cmd, "Migrations")
		config.InitDB()
		if err := config.AutoMigrate(); err != nil {
			return fmt.Errorf("auto-migrate: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "✅ Schema is up to date")
		return nil
	},
}
