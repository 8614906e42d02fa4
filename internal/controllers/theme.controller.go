package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hyperpolymath/ambientops/internal/services"
)

// ThemeController exposes the theme registry.
type ThemeController struct {
	themes *services.ThemeRegistry
}

func NewThemeController(themes *services.ThemeRegistry) *ThemeController {
	return &ThemeController{themes: themes}
}

func (ctl *ThemeController) ListThemes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"themes": ctl.themes.List()})
}

// GetTheme resolves a theme id; unknown ids return the default theme.
func (ctl *ThemeController) GetTheme(c *gin.Context) {
	c.JSON(http.StatusOK, ctl.themes.Get(c.Param("id")))
}
