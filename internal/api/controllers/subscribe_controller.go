package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"giftmuse/internal/models/request_models"
	"giftmuse/internal/services"
	"giftmuse/pkg/utils"
)

// SubscribeController keeps the plain {success}/{error} shape of the
// storefront signup form.
type SubscribeController struct {
	subscriberService services.SubscriberServiceInterface
}

func NewSubscribeController(subscriberService services.SubscriberServiceInterface) *SubscribeController {
	return &SubscribeController{
		subscriberService: subscriberService,
	}
}

func (sc *SubscribeController) SubscribeHandler(c *gin.Context) {
	var req request_models.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Valid email required"})
		return
	}

	err := sc.subscriberService.Subscribe(c.Request.Context(), req)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"success": true})
	case errors.Is(err, utils.ErrInvalidEmail):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Valid email required"})
	case errors.Is(err, utils.ErrNotConfigured):
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Email service not configured"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to subscribe"})
	}
}
