package product_controller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/AgriSeed/agriseed-cms-backend/config"
	"github.com/AgriSeed/agriseed-cms-backend/models"
	"github.com/AgriSeed/agriseed-cms-backend/utils"
)

// GetProducts godoc
// @Summary List products
// @Description All products including unavailable ones, newest first
// @Tags CMS - Products
// @Produce json
// @Security BearerAuth
// @Param category query string false "Category"
// @Param q query string false "Search name or slug"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} models.ApiResponse{data=[]models.Product}
// @Failure 500 {object} models.ApiResponse
// @Router /admin/products [get]
func GetProducts(c *gin.Context) {
	page, limit, offset := utils.ParsePagination(c, 20)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	query := config.DB.WithContext(ctx).Model(&models.Product{})
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		like := "%" + q + "%"
		query = query.Where("name ILIKE ? OR slug ILIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		config.Log.Errorw("[cms.products] count failed", "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch products"))
		return
	}

	products := make([]models.Product, 0)
	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&products).Error; err != nil {
		config.Log.Errorw("[cms.products] query failed", "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch products"))
		return
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Products fetched successfully", products, models.NewPagination(page, limit, int(total))))
}
