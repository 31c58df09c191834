package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"giftmuse/internal/repositories"
	"giftmuse/internal/services"
	"giftmuse/pkg/analytics"
	"giftmuse/pkg/retailer"
)

func retailerRouter(t *testing.T) *gin.Engine {
	t.Helper()
	repo, err := repositories.NewGiftRepository()
	require.NoError(t, err)

	rc := NewRetailerController(
		retailer.DefaultConfig("aanthony08-21"),
		services.NewGiftService(repo),
		analytics.NewRecorder(),
	)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/go/:retailer", rc.RedirectHandler)
	r.POST("/api/retailer-link", rc.ResolveLinkHandler)
	return r
}

func TestRedirectHandlerByTerm(t *testing.T) {
	r := retailerRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/go/amazon?term=instant+film+camera", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusFound, w.Code)
	location := w.Header().Get("Location")
	assert.Contains(t, location, "amazon.co.uk")
	assert.Contains(t, location, "tag=aanthony08-21")
}

func TestRedirectHandlerByGiftUsesSearchTermOverride(t *testing.T) {
	r := retailerRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/go/amazon?gift=cast-iron-skillet", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusFound, w.Code)
	assert.Contains(t, w.Header().Get("Location"), "cast+iron+skillet+10+inch")
}

func TestRedirectHandlerUnknownRetailer(t *testing.T) {
	r := retailerRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/go/johnlewis?term=socks", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRedirectHandlerMissingTerm(t *testing.T) {
	r := retailerRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/go/amazon", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestResolveLinkHandler(t *testing.T) {
	r := retailerRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/retailer-link",
		strings.NewReader(`{"tags":["luxury","experience"],"term":"Spa Day (Champneys)"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `"virginexp"`)
	assert.Contains(t, body, "Virgin Experience Days")
	assert.Contains(t, body, "virginexperiencedays.co.uk")
	// Parenthetical stripped before encoding.
	assert.NotContains(t, body, "Champneys")
}
