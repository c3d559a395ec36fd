package blog_controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AgriSeed/agriseed-cms-backend/config"
	"github.com/AgriSeed/agriseed-cms-backend/models"
	"github.com/AgriSeed/agriseed-cms-backend/services"
)

const maxImportBytes = 2 << 20

// UpsertPosts persists parsed posts. Tests swap it out.
var UpsertPosts = services.UpsertBlogPosts

type ImportResponse struct {
	Imported int                   `json:"imported"`
	Skipped  []services.SkippedRow `json:"skipped"`
}

// ImportPosts godoc
// @Summary Import blog posts from CSV
// @Description Columns: title, content (required), slug, excerpt, author, tags, image, status, date. Existing slugs are overwritten.
// @Tags CMS - Blog
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "CSV file (max 2MB)"
// @Success 200 {object} models.ApiResponse{data=ImportResponse}
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/blog/import [post]
func ImportPosts(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "file is required"))
		return
	}
	if header.Size > maxImportBytes {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "file must be 2MB or smaller"))
		return
	}

	file, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "could not read file"))
		return
	}
	defer file.Close()

	result, err := services.ParseBlogCSV(file)
	if err != nil {
		if errors.Is(err, services.ErrEmptyCSV) || errors.Is(err, services.ErrMissingColumn) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
			return
		}
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid CSV: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if _, err := UpsertPosts(ctx, result.Posts); err != nil {
		config.Log.Errorw("[cms.blog.import] upsert failed", "posts", len(result.Posts), "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to import posts"))
		return
	}

	config.Log.Infow("[cms.blog.import] ✅ import finished", "imported", len(result.Posts), "skipped", len(result.Skipped))
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Blog posts imported", ImportResponse{
		Imported: len(result.Posts),
		Skipped:  result.Skipped,
	}))
}
