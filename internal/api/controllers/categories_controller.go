package controllers

import (
	"github.com/gin-gonic/gin"

	"giftmuse/internal/services"
	"giftmuse/pkg/analytics"
	"giftmuse/pkg/utils"
)

type CategoriesController struct {
	categoryService services.CategoryServiceInterface
	metrics         *analytics.Recorder
}

func NewCategoriesController(categoryService services.CategoryServiceInterface, metrics *analytics.Recorder) *CategoriesController {
	return &CategoriesController{
		categoryService: categoryService,
		metrics:         metrics,
	}
}

func (cc *CategoriesController) ListAllCategoriesHandler(c *gin.Context) {
	utils.RespondSuccess(c, cc.categoryService.GetAllCategories(), "Fetched categories successfully")
}

func (cc *CategoriesController) GetCategoryGiftsHandler(c *gin.Context) {
	slug := c.Param("slug")

	category, err := cc.categoryService.GetCategoryBySlug(slug)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	gifts, err := cc.categoryService.GetCategoryGifts(slug)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	cc.metrics.CategoryView(slug)
	utils.RespondSuccess(c, gin.H{
		"category": category,
		"gifts":    gifts,
	}, "Fetched category gifts successfully")
}
