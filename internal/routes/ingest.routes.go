package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/hyperpolymath/ambientops/internal/controllers"
)

// RegisterIngestRoutes wires the write surface and the ambient stream.
func RegisterIngestRoutes(r *gin.Engine, ingest *controllers.IngestController, ws *controllers.WebSocketController) {
	in := r.Group("/ingest")
	{
		in.POST("/bundle", ingest.PostBundle)
		in.POST("/envelope", ingest.PostEnvelope)
	}

	r.GET("/ws", ws.HandleWebSocket)
}
