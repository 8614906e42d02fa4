package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hyperpolymath/ambientops/internal/models"
	"github.com/hyperpolymath/ambientops/internal/services"
)

// IngestController accepts bundles and envelopes at the HTTP boundary and
// hands the parsed structures to the ingestion service.
type IngestController struct {
	ingest *services.IngestService
}

func NewIngestController(ingest *services.IngestService) *IngestController {
	return &IngestController{ingest: ingest}
}

func (ctl *IngestController) PostBundle(c *gin.Context) {
	var bundle models.RunBundle
	if err := c.ShouldBindJSON(&bundle); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := ctl.ingest.Ingest(bundle)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (ctl *IngestController) PostEnvelope(c *gin.Context) {
	var envelope models.EvidenceEnvelope
	if err := c.ShouldBindJSON(&envelope); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := ctl.ingest.IngestEnvelope(envelope)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingVersion),
			errors.Is(err, services.ErrMissingEnvelopeID):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, result)
}
