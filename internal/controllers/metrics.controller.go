package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hyperpolymath/ambientops/internal/models"
	"github.com/hyperpolymath/ambientops/internal/services"
)

// MetricsController exposes read-only views of the sample store.
type MetricsController struct {
	store *services.MetricsStore
}

func NewMetricsController(store *services.MetricsStore) *MetricsController {
	return &MetricsController{store: store}
}

// GetFresh returns every sample inside the freshness window.
func (ctl *MetricsController) GetFresh(c *gin.Context) {
	samples := ctl.store.AllFresh()
	if samples == nil {
		samples = []models.Sample{}
	}
	c.JSON(http.StatusOK, gin.H{"samples": samples, "ttl_seconds": int(ctl.store.TTL().Seconds())})
}

// GetSeries returns one metric's full retained series.
func (ctl *MetricsController) GetSeries(c *gin.Context) {
	name := c.Param("name")
	c.JSON(http.StatusOK, models.SeriesWindow{
		Name:    name,
		Samples: ctl.store.Series(name),
	})
}

// SystemController serves a live probe of the host.
type SystemController struct {
	collector *services.SystemCollector
}

func NewSystemController(collector *services.SystemCollector) *SystemController {
	return &SystemController{collector: collector}
}

func (ctl *SystemController) GetSystem(c *gin.Context) {
	status, err := ctl.collector.Snapshot()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, status)
}
