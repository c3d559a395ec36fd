package product_controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/AgriSeed/agriseed-cms-backend/config"
	"github.com/AgriSeed/agriseed-cms-backend/models"
	"github.com/AgriSeed/agriseed-cms-backend/utils"
)

// CreateProduct godoc
// @Summary Create a product
// @Description Slug is derived from the name when omitted and must be unique
// @Tags CMS - Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param product body models.ProductRequest true "Product"
// @Success 201 {object} models.ApiResponse{data=models.Product}
// @Failure 400 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/products [post]
func CreateProduct(c *gin.Context) {
	var req models.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	slug := utils.Slugify(req.Slug)
	if slug == "" {
		slug = utils.Slugify(req.Name)
	}
	if slug == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Could not derive a slug from the name"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := ensureSlugFree(ctx, slug, uuid.Nil); err != nil {
		if errors.Is(err, errSlugTaken) {
			c.JSON(http.StatusConflict, models.ErrorResponse(c, "A product with slug '"+slug+"' already exists"))
			return
		}
		config.Log.Errorw("[cms.products.create] slug check failed", "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create product"))
		return
	}

	product := productFromRequest(req, slug)
	if err := config.DB.WithContext(ctx).Create(&product).Error; err != nil {
		config.Log.Errorw("[cms.products.create] insert failed", "slug", slug, "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create product"))
		return
	}
	catalogChanged()

	c.Set("createdResourceID", product.ID.String())
	config.Log.Infow("[cms.products.create] ✅ created", "id", product.ID, "slug", product.Slug)
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Product created successfully", product))
}
