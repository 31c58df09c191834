package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"giftmuse/internal/models/catalog_models"
	"giftmuse/internal/services"
	"giftmuse/pkg/utils"
)

type GiftsController struct {
	giftService services.GiftServiceInterface
}

func NewGiftsController(giftService services.GiftServiceInterface) *GiftsController {
	return &GiftsController{
		giftService: giftService,
	}
}

func (gc *GiftsController) ListAllGiftsHandler(c *gin.Context) {
	utils.RespondSuccess(c, gc.giftService.GetAllGifts(), "Fetched gifts successfully")
}

func (gc *GiftsController) GetGiftByIDHandler(c *gin.Context) {
	gift, err := gc.giftService.GetGiftByID(c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gift, "Fetched gift successfully")
}

// GetRandomGiftsHandler powers the shuffle feature. An optional vibe query
// parameter narrows the pool before sampling.
func (gc *GiftsController) GetRandomGiftsHandler(c *gin.Context) {
	countStr := c.DefaultQuery("count", "4")
	count, err := strconv.Atoi(countStr)
	if err != nil || count < 1 || count > 50 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid count (must be 1-50)")
		return
	}

	var filter *catalog_models.CategoryFilter
	if vibe := c.Query("vibe"); vibe != "" {
		filter = &catalog_models.CategoryFilter{
			Vibe: []catalog_models.Vibe{catalog_models.Vibe(vibe)},
		}
	}

	utils.RespondSuccess(c, gc.giftService.GetRandomGifts(count, filter), "Fetched random gifts successfully")
}

func (gc *GiftsController) SearchGiftsHandler(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		utils.RespondError(c, http.StatusBadRequest, "Query parameter q is required")
		return
	}

	utils.RespondSuccess(c, gc.giftService.SearchGifts(query), "Searched gifts successfully")
}
