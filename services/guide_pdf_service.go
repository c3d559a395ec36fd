package services

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/johnfercher/maroto/pkg/color"
	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"

	"github.com/AgriSeed/agriseed-cms-backend/config"
	"github.com/AgriSeed/agriseed-cms-backend/models"
)

var (
	darkGray   = color.Color{Red: 38, Green: 38, Blue: 34}
	mediumGray = color.Color{Red: 121, Green: 119, Blue: 109}
	fieldGreen = color.Color{Red: 46, Green: 104, Blue: 58}
)

// GuideFilename is the attachment name for a product's sowing guide.
func GuideFilename(p models.Product) string {
	return p.Slug + "-guide.pdf"
}

// GenerateSowingGuidePDF renders the one-page agronomy sheet for a product
func GenerateSowingGuidePDF(p models.Product, site config.SiteConfig) (*bytes.Buffer, error) {
	m := pdf.NewMaroto(consts.Portrait, consts.A4)
	m.SetPageMargins(20, 20, 20)

	// Company header
	m.Row(10, func() {
		m.Col(12, func() {
			m.Text(strings.ToUpper(site.CompanyName), props.Text{
				Size:  12,
				Style: consts.Bold,
				Color: fieldGreen,
			})
		})
	})
	if site.Tagline != "" {
		m.Row(5, func() {
			m.Col(12, func() {
				m.Text(site.Tagline, props.Text{Size: 9, Color: mediumGray})
			})
		})
	}

	m.Row(10, func() {})

	// Product title
	m.Row(14, func() {
		m.Col(12, func() {
			m.Text(p.Name, props.Text{
				Size:  22,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
	})

	m.Row(6, func() {
		m.Col(12, func() {
			m.Text(productLine(p), props.Text{Size: 10, Color: mediumGray})
		})
	})

	if p.Description != "" {
		m.Row(4, func() {})
		m.Row(16, func() {
			m.Col(12, func() {
				m.Text(p.Description, props.Text{Size: 10, Color: darkGray})
			})
		})
	}

	m.Row(8, func() {})

	// Guide table
	m.Row(7, func() {
		m.Col(12, func() {
			m.Text("SOWING GUIDE", props.Text{
				Size:  10,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
	})

	for _, row := range guideRows(p.Guide) {
		m.Row(7, func() {
			m.Col(4, func() {
				m.Text(row[0], props.Text{Size: 10, Color: mediumGray})
			})
			m.Col(8, func() {
				m.Text(row[1], props.Text{Size: 10, Style: consts.Bold, Color: darkGray})
			})
		})
	}

	if p.Guide.Notes != "" {
		m.Row(8, func() {})
		m.Row(6, func() {
			m.Col(12, func() {
				m.Text("NOTES", props.Text{Size: 10, Style: consts.Bold, Color: darkGray})
			})
		})
		m.Row(20, func() {
			m.Col(12, func() {
				m.Text(p.Guide.Notes, props.Text{Size: 10, Color: darkGray})
			})
		})
	}

	m.Row(14, func() {})

	// Footer
	m.Row(5, func() {
		m.Col(12, func() {
			m.Text("Questions about this variety? Talk to our agronomists.", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
	})
	m.Row(5, func() {
		m.Col(12, func() {
			m.Text(contactLine(site), props.Text{Size: 8, Color: mediumGray})
		})
	})

	buf, err := m.Output()
	if err != nil {
		return nil, fmt.Errorf("render guide pdf: %w", err)
	}
	return &buf, nil
}

func productLine(p models.Product) string {
	seasons := make([]string, 0, len(p.Seasonality))
	for _, s := range p.Seasonality {
		seasons = append(seasons, string(s))
	}
	parts := []string{string(p.Category)}
	if len(seasons) > 0 {
		parts = append(parts, strings.Join(seasons, ", "))
	}
	if p.DifficultyLevel != "" {
		parts = append(parts, string(p.DifficultyLevel)+" to grow")
	}
	return strings.Join(parts, "  |  ")
}

// guideRows lists label/value pairs, skipping fields the editor left blank.
func guideRows(g models.SowingGuide) [][2]string {
	rows := make([][2]string, 0, 5)
	add := func(label, value string) {
		if value != "" {
			rows = append(rows, [2]string{label, value})
		}
	}
	add("Sowing window", g.SowingWindow)
	add("Seed rate", g.SeedRate)
	add("Spacing", g.Spacing)
	if g.MaturityDays > 0 {
		add("Maturity", fmt.Sprintf("%d days", g.MaturityDays))
	}
	add("Expected yield", g.ExpectedYield)
	return rows
}

func contactLine(site config.SiteConfig) string {
	parts := make([]string, 0, 3)
	for _, v := range []string{site.ContactEmail, site.ContactPhone, site.BaseURL} {
		if v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, "  |  ")
}
