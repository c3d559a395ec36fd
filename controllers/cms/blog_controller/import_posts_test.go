package blog_controller

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AgriSeed/agriseed-cms-backend/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func postCSV(t *testing.T, content string) *httptest.ResponseRecorder {
	t.Helper()
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	part, err := mw.CreateFormFile("file", "posts.csv")
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	r := gin.New()
	r.POST("/admin/blog/import", ImportPosts)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/blog/import", body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	r.ServeHTTP(w, req)
	return w
}

func stubUpsert(t *testing.T, fn func(context.Context, []models.BlogPost) (int64, error)) {
	t.Helper()
	orig := UpsertPosts
	t.Cleanup(func() { UpsertPosts = orig })
	UpsertPosts = fn
}

func TestImportPosts(t *testing.T) {
	var saved []models.BlogPost
	stubUpsert(t, func(_ context.Context, posts []models.BlogPost) (int64, error) {
		saved = posts
		return int64(len(posts)), nil
	})

	csv := "title,content,tags\n" +
		"Kharif sowing tips,Sow after the first rains.,kharif|tips\n" +
		",missing title,\n" +
		"Rabi wheat care,Irrigate at crown root stage.,rabi\n"

	w := postCSV(t, csv)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Data ImportResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Data.Imported)
	require.Len(t, resp.Data.Skipped, 1)
	assert.Equal(t, 3, resp.Data.Skipped[0].Line)

	require.Len(t, saved, 2)
	assert.Equal(t, "kharif-sowing-tips", saved[0].Slug)
}

func TestImportPosts_MissingColumn(t *testing.T) {
	stubUpsert(t, func(context.Context, []models.BlogPost) (int64, error) {
		t.Fatal("should not write")
		return 0, nil
	})
	w := postCSV(t, "headline,body\nA,B\n")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestImportPosts_StoreError(t *testing.T) {
	stubUpsert(t, func(context.Context, []models.BlogPost) (int64, error) {
		return 0, errors.New("unique violation")
	})
	w := postCSV(t, "title,content\nA,B\n")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestImportPosts_RequiresFile(t *testing.T) {
	r := gin.New()
	r.POST("/admin/blog/import", ImportPosts)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/admin/blog/import", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
