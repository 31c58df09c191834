package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"giftmuse/pkg/prefstore"
	"giftmuse/pkg/utils"
)

// PreferencesController stores small per-visitor UI flags (dismissed
// banners, popup state) behind a pluggable key-value store.
type PreferencesController struct {
	store prefstore.Store
}

func NewPreferencesController(store prefstore.Store) *PreferencesController {
	return &PreferencesController{
		store: store,
	}
}

func (pc *PreferencesController) GetPreferenceHandler(c *gin.Context) {
	value, err := pc.store.Get(c.Request.Context(), c.Param("key"))
	if err != nil {
		if errors.Is(err, prefstore.ErrNotFound) {
			utils.RespondError(c, http.StatusNotFound, "Preference not found")
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondSuccess(c, gin.H{"key": c.Param("key"), "value": value}, "Fetched preference successfully")
}

func (pc *PreferencesController) SetPreferenceHandler(c *gin.Context) {
	var req struct {
		Value string `json:"value"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Value is required")
		return
	}

	if err := pc.store.Set(c.Request.Context(), c.Param("key"), req.Value); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondSuccess(c, gin.H{"key": c.Param("key"), "value": req.Value}, "Preference saved")
}
