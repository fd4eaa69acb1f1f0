package handlers

import (
	"errors"
	"net/http"

	"screenprint_estimator/internal/domain/entities"
	"screenprint_estimator/internal/usecase"
	"screenprint_estimator/pkg"
)

var (
	errInvalidPartPayload = pkg.NewDomainErrorSimple("INVALID_PART_INPUT", "Invalid part payload", http.StatusBadRequest)
	errInvalidPinPayload  = pkg.NewDomainErrorSimple("INVALID_PIN_INPUT", "Invalid pin payload", http.StatusBadRequest)
)

func mapEstimateError(err error) *pkg.AppError {
	var ve *usecase.ValidationError
	var ne *usecase.NegativeQuantityError
	switch {
	case errors.As(err, &ve):
		return pkg.NewDomainError("VALIDATION_ERROR", ve.Error(), err, http.StatusBadRequest).
			WithDetails(map[string]any{"fields": ve.Fields})
	case errors.As(err, &ne):
		return pkg.NewDomainError("NEGATIVE_QUANTITY", ne.Error(), err, http.StatusBadRequest).
			WithDetails(map[string]any{"garments": ne.Garments})
	case errors.Is(err, usecase.ErrPinWithoutName):
		return pkg.NewDomainErrorSimple("PIN_NAME_REQUIRED", "Please enter a name for the estimate", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidEstimateID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNoCurrentEstimate):
		return pkg.NewDomainErrorSimple("NO_CURRENT_ESTIMATE", "There is no current estimate", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrArtworkDecisionRequired):
		return pkg.NewDomainErrorSimple("ARTWORK_DECISION_REQUIRED", "Is the artwork the same for each print location?", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

// artworkDetails tells the client which artwork answers it may send back.
func artworkDetails(printLocations int) map[string]any {
	return map[string]any{
		"printLocations":    printLocations,
		"askUniqueCount":    entities.AsksUniqueArtworkCount(printLocations),
		"minMultiplier":     entities.MinDistinctArtworks,
		"maxMultiplier":     printLocations,
		"defaultMultiplier": entities.MinDistinctArtworks,
	}
}
