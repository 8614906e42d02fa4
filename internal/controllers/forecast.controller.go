package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hyperpolymath/ambientops/internal/services"
)

// ForecastController serves trend analyses and forecasts.
type ForecastController struct {
	forecasts *services.ForecastService
}

func NewForecastController(forecasts *services.ForecastService) *ForecastController {
	return &ForecastController{forecasts: forecasts}
}

// GetForecasts returns every current forecast, sorted by confidence.
func (ctl *ForecastController) GetForecasts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"forecasts": ctl.forecasts.Generate()})
}

// GetTrend returns the fitted trend for one metric.
func (ctl *ForecastController) GetTrend(c *gin.Context) {
	trend, err := ctl.forecasts.AnalyzeTrend(c.Param("name"))
	if err != nil {
		respondForecastError(c, err)
		return
	}
	c.JSON(http.StatusOK, trend)
}

// GetExhaustion predicts when a metric exhausts a budget.
// Query params: target (required, numeric)
func (ctl *ForecastController) GetExhaustion(c *gin.Context) {
	target, err := strconv.ParseFloat(c.Query("target"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "target must be numeric"})
		return
	}

	forecast, err := ctl.forecasts.PredictExhaustion(c.Param("name"), target)
	if err != nil {
		respondForecastError(c, err)
		return
	}
	c.JSON(http.StatusOK, forecast)
}

// GetBreach predicts when a metric crosses a threshold.
// Query params: threshold (required, numeric)
func (ctl *ForecastController) GetBreach(c *gin.Context) {
	threshold, err := strconv.ParseFloat(c.Query("threshold"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "threshold must be numeric"})
		return
	}

	forecast, err := ctl.forecasts.PredictThresholdBreach(c.Param("name"), threshold)
	if err != nil {
		respondForecastError(c, err)
		return
	}
	c.JSON(http.StatusOK, forecast)
}

// respondForecastError maps the expected forecasting failures to 422; they
// are valid questions with no forecastable answer, not bad requests.
func respondForecastError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInsufficientData),
		errors.Is(err, services.ErrNotTrending),
		errors.Is(err, services.ErrAlreadyBreached):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
