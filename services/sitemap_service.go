package services

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"github.com/AgriSeed/agriseed-cms-backend/config"
)

const sitemapNS = "http://www.sitemaps.org/schemas/sitemap/0.9"

type sitemapURL struct {
	Loc        string  `xml:"loc"`
	LastMod    string  `xml:"lastmod,omitempty"`
	ChangeFreq string  `xml:"changefreq,omitempty"`
	Priority   float64 `xml:"priority,omitempty"`
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// SitemapEntry is a dynamic page (product or post) with its last change.
type SitemapEntry struct {
	Path    string
	LastMod time.Time
}

// BuildSitemap renders static pages from site config followed by products
// and posts, all absolute against site.BaseURL.
func BuildSitemap(site config.SiteConfig, products, posts []SitemapEntry) ([]byte, error) {
	base := strings.TrimRight(site.BaseURL, "/")
	set := urlSet{XMLNS: sitemapNS}

	for _, page := range site.StaticPages {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        base + ensureLeadingSlash(page.Path),
			ChangeFreq: page.ChangeFreq,
			Priority:   page.Priority,
		})
	}
	appendEntries := func(entries []SitemapEntry, freq string, priority float64) {
		for _, e := range entries {
			u := sitemapURL{Loc: base + ensureLeadingSlash(e.Path), ChangeFreq: freq, Priority: priority}
			if !e.LastMod.IsZero() {
				u.LastMod = e.LastMod.UTC().Format(time.DateOnly)
			}
			set.URLs = append(set.URLs, u)
		}
	}
	appendEntries(products, "weekly", 0.8)
	appendEntries(posts, "monthly", 0.6)

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(set); err != nil {
		return nil, fmt.Errorf("encode sitemap: %w", err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// BuildRobots allows everything except the admin API and points at the sitemap.
func BuildRobots(site config.SiteConfig) string {
	base := strings.TrimRight(site.BaseURL, "/")
	return "User-agent: *\nAllow: /\nDisallow: /admin/\n\nSitemap: " + base + "/sitemap.xml\n"
}

func ensureLeadingSlash(p string) string {
	if !strings.HasPrefix(p, "/") {
		return "/" + p
	}
	return p
}
