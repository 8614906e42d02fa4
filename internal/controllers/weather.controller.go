package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hyperpolymath/ambientops/internal/services"
)

// WeatherController serves the current weather report.
type WeatherController struct {
	weather *services.WeatherService
}

func NewWeatherController(weather *services.WeatherService) *WeatherController {
	return &WeatherController{weather: weather}
}

func (ctl *WeatherController) GetWeather(c *gin.Context) {
	c.JSON(http.StatusOK, ctl.weather.Generate())
}
