package services

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/AgriSeed/agriseed-cms-backend/config"
	"github.com/AgriSeed/agriseed-cms-backend/models"
)

// ════════════════════════════════════════════════════════════
// JWT
// ════════════════════════════════════════════════════════════

func TestJWTService_RoundTrip(t *testing.T) {
	svc, err := NewJWTService("test-secret")
	require.NoError(t, err)

	token, err := svc.GenerateAdminJWT("admin-1", "ops@agriseed.in", models.AdminRoleSuper)
	require.NoError(t, err)

	claims, err := svc.VerifyAdminJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "admin-1", claims.AdminID)
	assert.Equal(t, "ops@agriseed.in", claims.Email)
	assert.Equal(t, models.AdminRoleSuper, claims.Role)
	assert.Equal(t, jwtIssuer, claims.Issuer)
}

func TestJWTService_Rejects(t *testing.T) {
	svc, _ := NewJWTService("test-secret")
	other, _ := NewJWTService("other-secret")

	t.Run("wrong secret", func(t *testing.T) {
		token, err := other.GenerateAdminJWT("admin-1", "a@b.c", models.AdminRoleEditor)
		require.NoError(t, err)
		_, err = svc.VerifyAdminJWT(token)
		assert.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		old, _ := NewJWTService("test-secret")
		old.now = func() time.Time { return time.Now().Add(-8 * 24 * time.Hour) }
		token, err := old.GenerateAdminJWT("admin-1", "a@b.c", models.AdminRoleEditor)
		require.NoError(t, err)
		_, err = svc.VerifyAdminJWT(token)
		assert.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.VerifyAdminJWT("not-a-token")
		assert.Error(t, err)
	})

	t.Run("missing claims", func(t *testing.T) {
		_, err := svc.GenerateAdminJWT("", "a@b.c", "")
		assert.Error(t, err)
	})

	_, err := NewJWTService("")
	assert.Error(t, err)
}

// ════════════════════════════════════════════════════════════
// Admin auth
// ════════════════════════════════════════════════════════════

func TestAdminAuthService_CheckLogin(t *testing.T) {
	svc := &AdminAuthService{cost: bcrypt.MinCost}

	hash, err := svc.HashPassword("kharif-2025")
	require.NoError(t, err)

	active := &models.Admin{PasswordHash: hash, Status: models.AdminStatusActive}
	suspended := &models.Admin{PasswordHash: hash, Status: models.AdminStatusSuspended}

	assert.NoError(t, svc.CheckLogin(active, "kharif-2025"))
	assert.ErrorIs(t, svc.CheckLogin(active, "wrong-pass"), ErrInvalidCredentials)
	assert.ErrorIs(t, svc.CheckLogin(nil, "kharif-2025"), ErrInvalidCredentials)
	assert.ErrorIs(t, svc.CheckLogin(suspended, "kharif-2025"), ErrAdminSuspended)

	_, err = svc.HashPassword("short")
	assert.ErrorIs(t, err, ErrWeakPassword)
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "ops@agriseed.in", NormalizeEmail("  Ops@AgriSeed.in "))
}

// ════════════════════════════════════════════════════════════
// Activity log
// ════════════════════════════════════════════════════════════

func TestBuildActivityLog(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPatch, "/admin/products/x", nil)
	c.Request.Header.Set("User-Agent", "curl/8.0")
	c.Request.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")

	entry := BuildActivityLog(LogActivityRequest{
		AdminID:      uuid.New(),
		AdminEmail:   "ops@agriseed.in",
		Action:       "updated_product",
		ResourceType: models.ResourceTypeProduct,
		ResourceID:   "x",
		Changes:      CreateChanges(map[string]any{"featured": false}, map[string]any{"featured": true}),
		Context:      c,
	})

	assert.Equal(t, models.StatusSuccess, entry.Status)
	assert.Equal(t, "203.0.113.9", entry.IPAddress)
	assert.Equal(t, "curl/8.0", entry.UserAgent)

	var changes map[string]map[string]bool
	require.NoError(t, json.Unmarshal(entry.Changes, &changes))
	assert.True(t, changes["after"]["featured"])
}

// ════════════════════════════════════════════════════════════
// Cloudinary
// ════════════════════════════════════════════════════════════

func TestPublicIDFromURL(t *testing.T) {
	tests := map[string]string{
		"https://res.cloudinary.com/demo/image/upload/v1712/agriseed/products/okra.jpg":              "agriseed/products/okra",
		"https://res.cloudinary.com/demo/image/upload/c_fill,w_400/v1712/agriseed/products/okra.png": "agriseed/products/okra",
		"https://res.cloudinary.com/demo/image/upload/agriseed/products/hd-2967.webp":                "agriseed/products/hd-2967",
		"https://example.com/okra.jpg": "",
		"":                             "",
	}
	for in, want := range tests {
		assert.Equal(t, want, PublicIDFromURL(in), in)
	}
}

func TestImages_NotConfigured(t *testing.T) {
	_, err := Images()
	assert.ErrorIs(t, err, ErrImagesNotConfigured)
}

// ════════════════════════════════════════════════════════════
// Resend
// ════════════════════════════════════════════════════════════

func TestResendClient_SendContactNotification(t *testing.T) {
	var got map[string]any
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &got)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"id":"email_1"}`))
	}))
	defer srv.Close()

	client := &ResendClient{apiKey: "re_test", from: "noreply@agriseed.in", endpoint: srv.URL, http: srv.Client()}
	msg := models.ContactMessage{
		Name:    "Ramesh <script>",
		Email:   "ramesh@example.com",
		Subject: "Bulk wheat seed",
		Message: "Need 200 kg of HD-2967",
	}

	err := client.SendContactNotification(context.Background(), "sales@agriseed.in", msg)
	require.NoError(t, err)

	assert.Equal(t, "Bearer re_test", auth)
	assert.Equal(t, "sales@agriseed.in", got["to"])
	assert.Equal(t, "ramesh@example.com", got["reply_to"])
	assert.Contains(t, got["subject"], "Bulk wheat seed")
	assert.NotContains(t, got["html"], "<script>")
	assert.Contains(t, got["html"], "Ramesh &lt;script&gt;")
}

func TestResendClient_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	client := &ResendClient{apiKey: "re_test", endpoint: srv.URL, http: srv.Client()}
	err := client.SendContactNotification(context.Background(), "sales@agriseed.in", models.ContactMessage{Name: "x"})
	assert.Error(t, err)
}

func TestNewResendClient_NotConfigured(t *testing.T) {
	t.Setenv("RESEND_API_KEY", "")
	_, err := NewResendClient()
	assert.ErrorIs(t, err, ErrResendNotConfigured)
}

// ════════════════════════════════════════════════════════════
// Sowing guide PDF
// ════════════════════════════════════════════════════════════

func TestGenerateSowingGuidePDF(t *testing.T) {
	p := models.Product{
		Slug:            "hd-2967-wheat",
		Name:            "HD-2967 Wheat",
		Description:     "High-yielding bread wheat for the northern plains.",
		Category:        models.CategoryWheat,
		Seasonality:     models.SeasonList{models.SeasonRabi},
		DifficultyLevel: models.DifficultyEasy,
		Guide: models.SowingGuide{
			SowingWindow:  "Nov 1 - Nov 25",
			SeedRate:      "40 kg/acre",
			MaturityDays:  143,
			ExpectedYield: "20-22 q/acre",
			Notes:         "Irrigate at crown root initiation.",
		},
	}

	buf, err := GenerateSowingGuidePDF(p, *config.DefaultSiteConfig())
	require.NoError(t, err)
	require.NotNil(t, buf)
	assert.True(t, strings.HasPrefix(buf.String(), "%PDF"))
	assert.Equal(t, "hd-2967-wheat-guide.pdf", GuideFilename(p))
}

func TestGuideRows_SkipsBlank(t *testing.T) {
	rows := guideRows(models.SowingGuide{SeedRate: "2 kg/acre", MaturityDays: 0})
	assert.Equal(t, [][2]string{{"Seed rate", "2 kg/acre"}}, rows)
}

// ════════════════════════════════════════════════════════════
// Blog CSV
// ════════════════════════════════════════════════════════════

func TestParseBlogCSV(t *testing.T) {
	input := strings.Join([]string{
		" Title ,CONTENT,Tags,Date,Status,slug",
		`Kharif sowing tips,"Sow after the first monsoon rains.",kharif|sowing;Tips,2025-06-01,draft,`,
		`,No title here,,,,`,
		`Bad date,Body,,31-31-2025,,`,
		`Kharif sowing tips,Updated body,kharif,01/07/2025,,`,
		`Rabi wheat,Plan irrigation early.,,2025-10-20T08:00:00Z,,rabi-wheat-guide`,
	}, "\n")

	res, err := ParseBlogCSV(strings.NewReader(input))
	require.NoError(t, err)

	require.Len(t, res.Posts, 2)
	first := res.Posts[0]
	assert.Equal(t, "kharif-sowing-tips", first.Slug)
	assert.Equal(t, "Updated body", first.Content, "later duplicate slug wins")
	assert.Equal(t, models.PostStatusPublished, first.Status)
	assert.True(t, time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC).Equal(first.PublishedAt))
	assert.Equal(t, "Updated body", first.Excerpt)

	second := res.Posts[1]
	assert.Equal(t, "rabi-wheat-guide", second.Slug)
	assert.True(t, time.Date(2025, 10, 20, 8, 0, 0, 0, time.UTC).Equal(second.PublishedAt))

	assert.Equal(t, []SkippedRow{
		{Line: 3, Reason: "title and content are required"},
		{Line: 4, Reason: `unrecognised date "31-31-2025"`},
	}, res.Skipped)
}

func TestParseBlogCSV_TagsAndDraft(t *testing.T) {
	input := "title,content,tags,status\nPulses guide,Body,pulses; Rabi |PULSES|,Draft\n"

	res, err := ParseBlogCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, res.Posts, 1)
	assert.Equal(t, models.TagsList{"pulses", "Rabi"}, res.Posts[0].Tags)
	assert.Equal(t, models.PostStatusDraft, res.Posts[0].Status)
}

func TestParseBlogCSV_Errors(t *testing.T) {
	_, err := ParseBlogCSV(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrEmptyCSV)

	_, err = ParseBlogCSV(strings.NewReader("title,body\nx,y\n"))
	assert.ErrorIs(t, err, ErrMissingColumn)
}

func TestTruncateRunes(t *testing.T) {
	long := strings.Repeat("ज", 200)
	got := truncateRunes(long, excerptLength)
	assert.Equal(t, excerptLength+1, len([]rune(got)))
	assert.Equal(t, "short", truncateRunes("short", excerptLength))
}

// ════════════════════════════════════════════════════════════
// Sitemap
// ════════════════════════════════════════════════════════════

func TestBuildSitemap(t *testing.T) {
	site := config.SiteConfig{
		BaseURL:     "https://agriseed.in/",
		StaticPages: []config.SitePage{{Path: "/", ChangeFreq: "weekly", Priority: 1}},
	}
	products := []SitemapEntry{{Path: "/products/okra", LastMod: time.Date(2025, 5, 4, 10, 0, 0, 0, time.UTC)}}
	posts := []SitemapEntry{{Path: "blog/kharif-tips"}}

	out, err := BuildSitemap(site, products, posts)
	require.NoError(t, err)

	xml := string(out)
	assert.True(t, strings.HasPrefix(xml, "<?xml"))
	assert.Contains(t, xml, `xmlns="http://www.sitemaps.org/schemas/sitemap/0.9"`)
	assert.Contains(t, xml, "<loc>https://agriseed.in/</loc>")
	assert.Contains(t, xml, "<loc>https://agriseed.in/products/okra</loc>")
	assert.Contains(t, xml, "<lastmod>2025-05-04</lastmod>")
	assert.Contains(t, xml, "<loc>https://agriseed.in/blog/kharif-tips</loc>")
}

func TestBuildRobots(t *testing.T) {
	robots := BuildRobots(config.SiteConfig{BaseURL: "https://agriseed.in"})
	assert.Contains(t, robots, "Disallow: /admin/")
	assert.Contains(t, robots, "Sitemap: https://agriseed.in/sitemap.xml")
}
