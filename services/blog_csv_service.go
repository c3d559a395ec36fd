package services

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"gorm.io/gorm/clause"

	"github.com/AgriSeed/agriseed-cms-backend/config"
	"github.com/AgriSeed/agriseed-cms-backend/models"
	"github.com/AgriSeed/agriseed-cms-backend/utils"
)

var (
	ErrEmptyCSV      = errors.New("csv file is empty")
	ErrMissingColumn = errors.New("csv is missing a required column")
)

const excerptLength = 160

var blogDateLayouts = []string{time.DateOnly, time.RFC3339, "02/01/2006"}

// SkippedRow reports a CSV line that was not imported.
type SkippedRow struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}

type BlogImportResult struct {
	Posts   []models.BlogPost `json:"posts"`
	Skipped []SkippedRow      `json:"skipped"`
}

// ParseBlogCSV reads blog posts from a CSV export. The header row is
// required; title and content columns must be present. Bad rows are skipped
// and reported, and a slug repeated in the file keeps its last row.
func ParseBlogCSV(r io.Reader) (BlogImportResult, error) {
	result := BlogImportResult{Posts: []models.BlogPost{}, Skipped: []SkippedRow{}}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return result, ErrEmptyCSV
	}
	if err != nil {
		return result, fmt.Errorf("read csv header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		if _, dup := cols[name]; !dup {
			cols[name] = i
		}
	}
	for _, required := range []string{"title", "content"} {
		if _, ok := cols[required]; !ok {
			return result, fmt.Errorf("%w: %s", ErrMissingColumn, required)
		}
	}

	field := func(record []string, name string) string {
		i, ok := cols[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	bySlug := make(map[string]int)
	line := 1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			result.Skipped = append(result.Skipped, SkippedRow{Line: line, Reason: err.Error()})
			continue
		}

		title := field(record, "title")
		content := field(record, "content")
		if title == "" || content == "" {
			result.Skipped = append(result.Skipped, SkippedRow{Line: line, Reason: "title and content are required"})
			continue
		}

		publishedAt := time.Now().UTC()
		if raw := field(record, "date"); raw != "" {
			parsed, ok := parseBlogDate(raw)
			if !ok {
				result.Skipped = append(result.Skipped, SkippedRow{Line: line, Reason: fmt.Sprintf("unrecognised date %q", raw)})
				continue
			}
			publishedAt = parsed
		}

		slug := utils.Slugify(field(record, "slug"))
		if slug == "" {
			slug = utils.Slugify(title)
		}
		if slug == "" {
			result.Skipped = append(result.Skipped, SkippedRow{Line: line, Reason: "could not derive slug"})
			continue
		}

		status := models.PostStatusPublished
		if strings.EqualFold(field(record, "status"), models.PostStatusDraft) {
			status = models.PostStatusDraft
		}

		excerpt := field(record, "excerpt")
		if excerpt == "" {
			excerpt = truncateRunes(content, excerptLength)
		}

		post := models.BlogPost{
			Slug:        slug,
			Title:       title,
			Excerpt:     excerpt,
			Content:     content,
			Author:      field(record, "author"),
			Tags:        splitTags(field(record, "tags")),
			CoverImage:  field(record, "image"),
			Status:      status,
			PublishedAt: publishedAt,
		}

		if idx, seen := bySlug[slug]; seen {
			result.Posts[idx] = post
			continue
		}
		bySlug[slug] = len(result.Posts)
		result.Posts = append(result.Posts, post)
	}

	return result, nil
}

func parseBlogDate(raw string) (time.Time, bool) {
	for _, layout := range blogDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

func splitTags(raw string) models.TagsList {
	tags := models.TagsList{}
	seen := make(map[string]bool)
	for _, t := range strings.FieldsFunc(raw, func(r rune) bool { return r == '|' || r == ';' }) {
		t = strings.TrimSpace(t)
		key := strings.ToLower(t)
		if t == "" || seen[key] {
			continue
		}
		seen[key] = true
		tags = append(tags, t)
	}
	return tags
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return strings.TrimSpace(string(runes[:n])) + "…"
}

// UpsertBlogPosts writes imported posts, replacing any existing post with
// the same slug. Posts are written in one statement.
func UpsertBlogPosts(ctx context.Context, posts []models.BlogPost) (int64, error) {
	if len(posts) == 0 {
		return 0, nil
	}
	res := config.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "slug"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"title", "excerpt", "content", "author", "tags", "cover_image", "status", "published_at", "updated_at",
		}),
	}).Create(&posts)
	if res.Error != nil {
		return 0, fmt.Errorf("upsert blog posts: %w", res.Error)
	}
	return res.RowsAffected, nil
}
