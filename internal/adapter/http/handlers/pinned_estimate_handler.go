package handlers

import (
	"bytes"
	"fmt"
	"net/http"

	response "screenprint_estimator/internal/adapter/http/dto/response"
	"screenprint_estimator/internal/infrastructure/spreadsheet"
	"screenprint_estimator/internal/usecase"
	"screenprint_estimator/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PinnedEstimateHandler serves the pinned estimates collection.
type PinnedEstimateHandler struct {
	usecase usecase.IEstimateUseCase
	logger  *zap.Logger
}

func NewPinnedEstimateHandler(uc usecase.IEstimateUseCase, logger *zap.Logger) *PinnedEstimateHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PinnedEstimateHandler{usecase: uc, logger: logger}
}

// ListPinned godoc
// @Summary  List pinned estimates in pin order
// @Tags     pinned
// @Produce  json
// @Success  200  {array}  response.PinnedSummaryResponse
// @Router   /pinned [get]
func (h *PinnedEstimateHandler) ListPinned(c *gin.Context) {
	list, err := h.usecase.ListPinned(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPinnedList(list))
}

// GetPinned godoc
// @Summary  Show a pinned estimate
// @Tags     pinned
// @Produce  json
// @Param    id   path      string  true  "Estimate ID"
// @Success  200  {object}  response.EstimateResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /pinned/{id} [get]
func (h *PinnedEstimateHandler) GetPinned(c *gin.Context) {
	e, err := h.usecase.GetPinned(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.logger, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(e))
}

// Reopen godoc
// @Summary      Reopen a pinned estimate
// @Description  Puts the pinned estimate on display. It stays pinned and the current estimate is untouched.
// @Tags         pinned
// @Produce      json
// @Param        id   path      string  true  "Estimate ID"
// @Success      200  {object}  response.EstimateResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /pinned/{id}/reopen [post]
func (h *PinnedEstimateHandler) Reopen(c *gin.Context) {
	e, err := h.usecase.Reopen(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.logger, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(e))
}

// Export godoc
// @Summary  Download a pinned estimate as a spreadsheet
// @Tags     pinned
// @Produce  application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param    id   path      string  true  "Estimate ID"
// @Success  200  {file}    file
// @Failure  404  {object}  pkg.HTTPError
// @Router   /pinned/{id}/export [get]
func (h *PinnedEstimateHandler) Export(c *gin.Context) {
	e, err := h.usecase.GetPinned(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.logger, mapEstimateError(err))
		return
	}

	var buf bytes.Buffer
	if err := spreadsheet.WriteEstimateWorkbook(&buf, e); err != nil {
		writeError(c, h.logger, pkg.NewDomainError("EXPORT_FAILED", "Could not build the spreadsheet", err, http.StatusInternalServerError))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", spreadsheet.Filename(e)))
	c.Data(http.StatusOK, spreadsheet.ContentType, buf.Bytes())
}
