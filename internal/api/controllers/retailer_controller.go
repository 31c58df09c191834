package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"giftmuse/internal/models/request_models"
	"giftmuse/internal/models/response_models"
	"giftmuse/internal/services"
	"giftmuse/pkg/analytics"
	"giftmuse/pkg/retailer"
	"giftmuse/pkg/utils"
)

type RetailerController struct {
	config      retailer.Config
	giftService services.GiftServiceInterface
	metrics     *analytics.Recorder
}

func NewRetailerController(config retailer.Config, giftService services.GiftServiceInterface, metrics *analytics.Recorder) *RetailerController {
	return &RetailerController{
		config:      config,
		giftService: giftService,
		metrics:     metrics,
	}
}

// ResolveLinkHandler picks the retailer for a tag set and builds the search
// URL, without redirecting. The storefront uses it to label buy buttons.
func (rc *RetailerController) ResolveLinkHandler(c *gin.Context) {
	var req request_models.RetailerLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Term == "" {
		utils.RespondError(c, http.StatusBadRequest, "Term is required")
		return
	}

	key := rc.config.Select(req.Tags)
	url, ok := rc.config.SearchURL(key, req.Term)
	if !ok {
		utils.HandleServiceError(c, utils.ErrUnknownRetailer)
		return
	}

	utils.RespondSuccess(c, response_models.RetailerLinkResponse{
		Retailer: string(key),
		Name:     retailer.DisplayName(key),
		URL:      url,
	}, "Resolved retailer link")
}

// RedirectHandler is the affiliate outbound hop: it counts the click and
// 302s to the retailer's search page for the requested term.
func (rc *RetailerController) RedirectHandler(c *gin.Context) {
	key := retailer.Key(c.Param("retailer"))

	term := c.Query("term")
	if giftID := c.Query("gift"); giftID != "" && term == "" {
		gift, err := rc.giftService.GetGiftByID(giftID)
		if err != nil {
			utils.HandleServiceError(c, err)
			return
		}
		term = gift.Name
		if gift.SearchTerm != "" {
			term = gift.SearchTerm
		}
	}
	if term == "" {
		utils.RespondError(c, http.StatusBadRequest, "Term or gift is required")
		return
	}

	url, ok := rc.config.SearchURL(key, term)
	if !ok {
		utils.HandleServiceError(c, utils.ErrUnknownRetailer)
		return
	}

	rc.metrics.AffiliateClick(string(key), c.DefaultQuery("source", "browse"))
	c.Redirect(http.StatusFound, url)
}
