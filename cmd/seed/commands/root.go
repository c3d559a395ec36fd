package commands

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/AgriSeed/agriseed-cms-backend/config"
)

var rootCmd = &cobra.Command{
	Use:          "seed",
	Short:        "AgriSeed CMS database seeder",
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		_ = godotenv.Load()
		config.InitLogger()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		config.CloseDB()
		config.SyncLogger()
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd, adminCmd, productsCmd, blogCmd)
}

func Execute() error {
	return rootCmd.Execute()
}

func banner(cmd *cobra.Command, title string) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "════════════════════════════════════════════════════════════")
	fmt.Fprintln(out, "AGRISEED CMS - "+title)
	fmt.Fprintln(out, "════════════════════════════════════════════════════════════")
}

// connect opens the database and makes sure the schema exists.
func connect() error {
	config.InitDB()
	return config.AutoMigrate()
}
