package handlers

import (
	"net/http"

	response "screenprint_estimator/internal/adapter/http/dto/response"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct{}

func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// GetCatalog godoc
// @Summary  List garments, brands and form options
// @Tags     catalog
// @Produce  json
// @Success  200  {object}  response.CatalogResponse
// @Router   /catalog [get]
func (h *CatalogHandler) GetCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromCatalog())
}
