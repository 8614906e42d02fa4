package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hyperpolymath/ambientops/internal/services"
)

// AmbientController serves theme-rendered advisory payloads.
type AmbientController struct {
	payloads     *services.PayloadService
	defaultTheme string
}

func NewAmbientController(payloads *services.PayloadService, defaultTheme string) *AmbientController {
	if defaultTheme == "" {
		defaultTheme = "default"
	}
	return &AmbientController{payloads: payloads, defaultTheme: defaultTheme}
}

// GetAmbient returns the current ambient payload.
// Query params: theme (optional theme id)
func (ctl *AmbientController) GetAmbient(c *gin.Context) {
	theme := c.DefaultQuery("theme", ctl.defaultTheme)
	c.JSON(http.StatusOK, ctl.payloads.GenerateWithTheme(theme))
}

type previewRequest struct {
	Readings map[string]float64 `json:"readings" binding:"required"`
	Theme    string             `json:"theme"`
}

// PostPreview renders a payload from explicit readings without touching
// the store, for UI preview and testing.
func (ctl *AmbientController) PostPreview(c *gin.Context) {
	var req previewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, ctl.payloads.GenerateFrom(req.Readings, req.Theme))
}
