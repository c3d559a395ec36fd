package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/AgriSeed/agriseed-cms-backend/services"
)

var blogCmd = &cobra.Command{
	Use:   "blog <posts.csv>",
	Short: "Import blog posts from a CSV export",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		banner(cmd, "Blog Import")

		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		result, err := services.ParseBlogCSV(f)
		if err != nil {
			return fmt.Errorf("parse %s: %w", args[0], err)
		}

		if err := connect(); err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		if _, err := services.UpsertBlogPosts(ctx, result.Posts); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "✅ Imported %d posts\n", len(result.Posts))
		for _, s := range result.Skipped {
			fmt.Fprintf(out, "   skipped line %d: %s\n", s.Line, s.Reason)
		}
		return nil
	},
}
