package product_controller

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AgriSeed/agriseed-cms-backend/config"
	"github.com/AgriSeed/agriseed-cms-backend/models"
	"github.com/AgriSeed/agriseed-cms-backend/services"
)

// DownloadProductGuide godoc
// @Summary Download sowing guide
// @Description One-page PDF with the sowing window, seed rate, spacing, maturity and yield for a product.
// @Tags Site - Products
// @Produce application/pdf
// @Param slug path string true "Product slug"
// @Success 200 {file} file
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /site/products/{slug}/guide.pdf [get]
func DownloadProductGuide(c *gin.Context) {
	all, err := services.LoadCatalog(c.Request.Context())
	if err != nil {
		config.Log.Errorw("[site.products.guide] failed to load catalog", "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to generate guide"))
		return
	}

	product, ok := services.FindBySlug(all, c.Param("slug"))
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}

	buf, err := services.GenerateSowingGuidePDF(product, *config.Site)
	if err != nil {
		config.Log.Errorw("[site.products.guide] failed to render pdf", "slug", product.Slug, "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to generate guide"))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, services.GuideFilename(product)))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
