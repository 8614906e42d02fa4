package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/hyperpolymath/ambientops/internal/controllers"
)

// RegisterMetricsRoutes wires the store views and the live system probe.
func RegisterMetricsRoutes(r *gin.Engine, metrics *controllers.MetricsController, system *controllers.SystemController) {
	m := r.Group("/metrics")
	{
		m.GET("/fresh", metrics.GetFresh)
		m.GET("/series/:name", metrics.GetSeries)
	}

	r.GET("/system", system.GetSystem)
}
