package interfaces

import (
	"context"

	"screenprint_estimator/internal/domain/entities"
)

// IPinnedEstimateRepository stores estimates the user has pinned.
//
// Implementations must:
//   - keep insertion order in List
//   - hand out copies, so callers can never mutate a stored estimate
//   - return a zero Estimate (empty ID) and nil error from GetByID when nothing matches
type IPinnedEstimateRepository interface {
	Append(ctx context.Context, e entities.Estimate) (entities.Estimate, error)
	GetByID(ctx context.Context, id string) (entities.Estimate, error)
	List(ctx context.Context) ([]entities.Estimate, error)
}
