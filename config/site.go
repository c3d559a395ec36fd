package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// SitePage is a static page listed in the sitemap.
type SitePage struct {
	Path       string  `yaml:"path"`
	ChangeFreq string  `yaml:"changefreq"`
	Priority   float64 `yaml:"priority"`
}

// SiteConfig describes the company and the public site. It is read from
// site.yaml; every field has a usable default.
type SiteConfig struct {
	CompanyName    string        `yaml:"company_name"`
	Tagline        string        `yaml:"tagline"`
	BaseURL        string        `yaml:"base_url"`
	ContactEmail   string        `yaml:"contact_email"`
	ContactPhone   string        `yaml:"contact_phone"`
	Address        string        `yaml:"address"`
	NotifyEmail    string        `yaml:"notify_email"`
	AllowedOrigins []string      `yaml:"allowed_origins"`
	CatalogTTL     time.Duration `yaml:"catalog_ttl"`
	StaticPages    []SitePage    `yaml:"static_pages"`
}

// Site is the active configuration. InitSiteConfig replaces it at startup.
var Site = DefaultSiteConfig()

func DefaultSiteConfig() *SiteConfig {
	return &SiteConfig{
		CompanyName:    "AgriSeed",
		Tagline:        "Quality seeds for every season",
		BaseURL:        "http://localhost:3000",
		ContactEmail:   "contact@agriseed.example",
		NotifyEmail:    "sales@agriseed.example",
		AllowedOrigins: []string{"http://localhost:3000"},
		CatalogTTL:     5 * time.Minute,
		StaticPages: []SitePage{
			{Path: "/", ChangeFreq: "weekly", Priority: 1.0},
			{Path: "/products", ChangeFreq: "daily", Priority: 0.9},
			{Path: "/blog", ChangeFreq: "weekly", Priority: 0.7},
			{Path: "/about", ChangeFreq: "monthly", Priority: 0.5},
			{Path: "/contact", ChangeFreq: "monthly", Priority: 0.5},
		},
	}
}

// LoadSiteConfig reads path over the defaults. A missing file is not an
// error; a malformed one is.
func LoadSiteConfig(path string) (*SiteConfig, error) {
	cfg := DefaultSiteConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("read site config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse site config %s: %w", path, err)
	}
	cfg.applyEnvOverrides()

	if cfg.CatalogTTL <= 0 {
		cfg.CatalogTTL = 5 * time.Minute
	}
	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = []string{cfg.BaseURL}
	}
	return cfg, nil
}

func (c *SiteConfig) applyEnvOverrides() {
	if v := os.Getenv("SITE_BASE_URL"); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv("SITE_NOTIFY_EMAIL"); v != "" {
		c.NotifyEmail = v
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
}

func InitSiteConfig() {
	path := getEnv("SITE_CONFIG_PATH", "site.yaml")
	cfg, err := LoadSiteConfig(path)
	if err != nil {
		Log.Fatalf("❌ Failed to load site config: %v", err)
	}
	Site = cfg
	Log.Infof("✅ Site config loaded for %s (%s)", cfg.CompanyName, cfg.BaseURL)
}
