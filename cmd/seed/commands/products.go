package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm/clause"

	"github.com/AgriSeed/agriseed-cms-backend/config"
	"github.com/AgriSeed/agriseed-cms-backend/models"
	"github.com/AgriSeed/agriseed-cms-backend/utils"
)

type guideSeed struct {
	SowingWindow  string `yaml:"sowing_window"`
	SeedRate      string `yaml:"seed_rate"`
	Spacing       string `yaml:"spacing"`
	MaturityDays  int    `yaml:"maturity_days"`
	ExpectedYield string `yaml:"expected_yield"`
	Notes         string `yaml:"notes"`
}

type productSeed struct {
	Name           string                 `yaml:"name"`
	Slug           string                 `yaml:"slug"`
	Description    string                 `yaml:"description"`
	Category       models.ProductCategory `yaml:"category"`
	Seasonality    []models.Season        `yaml:"seasonality"`
	Difficulty     models.DifficultyLevel `yaml:"difficulty_level"`
	Availability   *bool                  `yaml:"availability"`
	Featured       bool                   `yaml:"featured"`
	ImageURL       string                 `yaml:"image_url"`
	Guide          guideSeed              `yaml:"guide"`
	SEOTitle       string                 `yaml:"seo_title"`
	SEODescription string                 `yaml:"seo_description"`
}

type catalogFile struct {
	Products []productSeed `yaml:"products"`
}

var productsCmd = &cobra.Command{
	Use:   "products <catalog.yaml>",
	Short: "Upsert the seed catalog from a YAML file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		banner(cmd, "Catalog Import")

		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		products, err := parseCatalogYAML(f)
		if err != nil {
			return fmt.Errorf("parse %s: %w", args[0], err)
		}

		if err := connect(); err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		err = config.DB.WithContext(ctx).Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "slug"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"name", "description", "category", "seasonality", "difficulty_level", "availability",
				"featured", "image_url", "guide", "seo_title", "seo_description", "updated_at",
			}),
		}).Create(&products).Error
		if err != nil {
			return fmt.Errorf("upsert products: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "✅ Upserted %d products\n", len(products))
		return nil
	},
}

// parseCatalogYAML validates every entry; one bad product fails the file.
func parseCatalogYAML(r io.Reader) ([]models.Product, error) {
	var file catalogFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, err
	}
	if len(file.Products) == 0 {
		return nil, fmt.Errorf("no products in file")
	}

	seen := make(map[string]int, len(file.Products))
	products := make([]models.Product, 0, len(file.Products))
	for i, s := range file.Products {
		req := models.ProductRequest{
			Name:            s.Name,
			Category:        s.Category,
			Seasonality:     s.Seasonality,
			DifficultyLevel: s.Difficulty,
		}
		if s.Name == "" {
			return nil, fmt.Errorf("product %d: name is required", i+1)
		}
		if len(s.Seasonality) == 0 {
			return nil, fmt.Errorf("product %d (%s): at least one season is required", i+1, s.Name)
		}
		if err := req.Validate(); err != nil {
			return nil, fmt.Errorf("product %d (%s): %w", i+1, s.Name, err)
		}

		slug := utils.Slugify(s.Slug)
		if slug == "" {
			slug = utils.Slugify(s.Name)
		}
		if prev, dup := seen[slug]; dup {
			return nil, fmt.Errorf("product %d (%s): slug %q already used by product %d", i+1, s.Name, slug, prev)
		}
		seen[slug] = i + 1

		available := true
		if s.Availability != nil {
			available = *s.Availability
		}
		products = append(products, models.Product{
			Slug:            slug,
			Name:            s.Name,
			Description:     s.Description,
			Category:        s.Category,
			Seasonality:     models.SeasonList(s.Seasonality),
			DifficultyLevel: s.Difficulty,
			Availability:    available,
			Featured:        s.Featured,
			ImageURL:        s.ImageURL,
			Guide:           models.SowingGuide(s.Guide),
			SEOTitle:        s.SEOTitle,
			SEODescription:  s.SEODescription,
		})
	}
	return products, nil
}
