package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"giftmuse/internal/models/request_models"
	"giftmuse/internal/models/response_models"
	"giftmuse/internal/services"
	"giftmuse/pkg/utils"
)

// SearchController serves the AI suggestion endpoint. Its responses keep the
// plain {suggestions}/{error} shape the storefront consumes, not the
// envelope the rest of the API uses.
type SearchController struct {
	suggestionService services.SuggestionServiceInterface
}

func NewSearchController(suggestionService services.SuggestionServiceInterface) *SearchController {
	return &SearchController{
		suggestionService: suggestionService,
	}
}

func (sc *SearchController) SearchHandler(c *gin.Context) {
	var req request_models.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query is required"})
		return
	}

	suggestions, err := sc.suggestionService.Search(c.Request.Context(), req.Query)
	if err != nil {
		if errors.Is(err, utils.ErrEmptyQuery) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Query is required"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search for gifts"})
		return
	}

	c.JSON(http.StatusOK, response_models.SearchResponse{Suggestions: suggestions})
}
