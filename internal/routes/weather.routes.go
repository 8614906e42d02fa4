package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/hyperpolymath/ambientops/internal/controllers"
)

// RegisterWeatherRoutes wires the advisory read surface: weather,
// forecasts, ambient payloads and themes.
func RegisterWeatherRoutes(r *gin.Engine, weather *controllers.WeatherController, forecasts *controllers.ForecastController, ambient *controllers.AmbientController, themes *controllers.ThemeController) {
	r.GET("/weather", weather.GetWeather)
	r.GET("/weather/forecasts", forecasts.GetForecasts)

	fc := r.Group("/forecasts")
	{
		fc.GET("/:name/trend", forecasts.GetTrend)
		fc.GET("/:name/exhaustion", forecasts.GetExhaustion)
		fc.GET("/:name/breach", forecasts.GetBreach)
	}

	r.GET("/ambient", ambient.GetAmbient)
	r.POST("/ambient/preview", ambient.PostPreview)

	r.GET("/themes", themes.ListThemes)
	r.GET("/themes/:id", themes.GetTheme)
}
