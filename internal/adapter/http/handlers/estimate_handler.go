package handlers

import (
	"errors"
	"net/http"

	request "screenprint_estimator/internal/adapter/http/dto/request"
	response "screenprint_estimator/internal/adapter/http/dto/response"
	"screenprint_estimator/internal/usecase"
	"screenprint_estimator/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// EstimateHandler serves the current estimate: adding parts, pinning and discarding.
type EstimateHandler struct {
	usecase usecase.IEstimateUseCase
	logger  *zap.Logger
}

func NewEstimateHandler(uc usecase.IEstimateUseCase, logger *zap.Logger) *EstimateHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EstimateHandler{usecase: uc, logger: logger}
}

// AddPart godoc
// @Summary      Add a part to the current estimate
// @Description  Prices one form submission and appends it, starting a new estimate when none is open.
// @Tags         estimate
// @Accept       json
// @Produce      json
// @Param        part  body      request.PartRequest  true  "Part submission"
// @Success      201   {object}  response.AddPartResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Router       /estimate/parts [post]
func (h *EstimateHandler) AddPart(c *gin.Context) {
	var payload request.PartRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPartPayload.HTTPStatus, errInvalidPartPayload.ToHTTPError())
		return
	}

	sub := payload.ToSubmission()
	result, err := h.usecase.AddPart(c.Request.Context(), sub, payload.ResolveArtwork())
	if err != nil {
		appErr := mapEstimateError(err)
		if errors.Is(err, usecase.ErrArtworkDecisionRequired) {
			appErr = appErr.WithDetails(artworkDetails(sub.PrintLocations))
		}
		h.writeError(c, appErr)
		return
	}

	c.JSON(http.StatusCreated, response.FromAddPartResult(result))
}

// GetCurrent godoc
// @Summary  Show the current estimate
// @Tags     estimate
// @Produce  json
// @Success  200  {object}  response.EstimateResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /estimate [get]
func (h *EstimateHandler) GetCurrent(c *gin.Context) {
	e, err := h.usecase.Current(c.Request.Context())
	if err != nil {
		h.writeError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(e))
}

// GetDisplayed godoc
// @Summary      Show the estimate on display
// @Description  Returns the reopened or just-pinned estimate when there is one, otherwise the current estimate.
// @Tags         estimate
// @Produce      json
// @Success      200  {object}  response.EstimateResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /estimate/displayed [get]
func (h *EstimateHandler) GetDisplayed(c *gin.Context) {
	e, err := h.usecase.Displayed(c.Request.Context())
	if err != nil {
		h.writeError(c, mapEstimateError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(e))
}

// Discard godoc
// @Summary  Clear the current estimate
// @Tags     estimate
// @Produce  json
// @Success  200  {object}  response.DiscardResponse
// @Router   /estimate [delete]
func (h *EstimateHandler) Discard(c *gin.Context) {
	discarded := h.usecase.Discard(c.Request.Context())
	notice := response.NoticeCleared()
	if !discarded {
		notice = response.NoticeNothingToClear()
	}
	c.JSON(http.StatusOK, response.DiscardResponse{Discarded: discarded, Notice: notice})
}

// Pin godoc
// @Summary  Pin the current estimate under a name
// @Tags     estimate
// @Accept   json
// @Produce  json
// @Param    pin  body      request.PinRequest  true  "Estimate name"
// @Success  201  {object}  response.PinResponse
// @Failure  400  {object}  pkg.HTTPError
// @Failure  404  {object}  pkg.HTTPError
// @Router   /estimate/pin [post]
func (h *EstimateHandler) Pin(c *gin.Context) {
	var payload request.PinRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPinPayload.HTTPStatus, errInvalidPinPayload.ToHTTPError())
		return
	}

	pinned, err := h.usecase.Pin(c.Request.Context(), payload.ResolveName())
	if err != nil {
		h.writeError(c, mapEstimateError(err))
		return
	}

	c.JSON(http.StatusCreated, response.PinResponse{
		Estimate: response.FromEstimate(pinned),
		Notice:   response.NoticePinned(pinned.Name),
	})
}

func (h *EstimateHandler) writeError(c *gin.Context, appErr *pkg.AppError) {
	writeError(c, h.logger, appErr)
}

func writeError(c *gin.Context, logger *zap.Logger, appErr *pkg.AppError) {
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		logger.Error("request error", zap.String("code", appErr.Code), zap.Error(appErr))
		_ = c.Error(appErr)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
