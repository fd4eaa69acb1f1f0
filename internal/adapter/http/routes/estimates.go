package routes

import (
	"screenprint_estimator/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathEstimate = "/estimate"
	PathPinned   = "/pinned"
	PathCatalog  = "/catalog"
)

func addEstimateRoutes(rg *gin.RouterGroup, estimateHandler *handlers.EstimateHandler, pinnedHandler *handlers.PinnedEstimateHandler) {
	estimate := rg.Group(PathEstimate)
	{
		estimate.GET("", estimateHandler.GetCurrent)
		estimate.DELETE("", estimateHandler.Discard)
		estimate.GET("/displayed", estimateHandler.GetDisplayed)
		estimate.POST("/parts", estimateHandler.AddPart)
		estimate.POST("/pin", estimateHandler.Pin)
	}

	pinned := rg.Group(PathPinned)
	{
		pinned.GET("", pinnedHandler.ListPinned)
		pinned.GET("/:id", pinnedHandler.GetPinned)
		pinned.POST("/:id/reopen", pinnedHandler.Reopen)
		pinned.GET("/:id/export", pinnedHandler.Export)
	}
}

func addCatalogRoutes(rg *gin.RouterGroup, catalogHandler *handlers.CatalogHandler) {
	rg.GET(PathCatalog, catalogHandler.GetCatalog)
}
