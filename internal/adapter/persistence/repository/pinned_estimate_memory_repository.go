package repository

import (
	"context"
	"errors"
	"sync"

	"screenprint_estimator/internal/domain/entities"
	"screenprint_estimator/internal/usecase/interfaces"
)

var ErrPinnedEstimateExists = errors.New("pinned estimate already exists")

// PinnedEstimateMemoryRepository keeps pinned estimates for the life of the process.
//
// Estimates are stored and returned as deep copies; the slice keeps pin order
// and the index resolves ids.
type PinnedEstimateMemoryRepository struct {
	mu    sync.RWMutex
	items []entities.Estimate
	index map[string]int
}

var _ interfaces.IPinnedEstimateRepository = (*PinnedEstimateMemoryRepository)(nil)

func NewPinnedEstimateMemoryRepository() *PinnedEstimateMemoryRepository {
	return &PinnedEstimateMemoryRepository{index: make(map[string]int)}
}

func (r *PinnedEstimateMemoryRepository) Append(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	if err := ctx.Err(); err != nil {
		return entities.Estimate{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.index[e.ID]; ok {
		return entities.Estimate{}, ErrPinnedEstimateExists
	}
	r.index[e.ID] = len(r.items)
	r.items = append(r.items, e.Clone())
	return e.Clone(), nil
}

func (r *PinnedEstimateMemoryRepository) GetByID(ctx context.Context, id string) (entities.Estimate, error) {
	if err := ctx.Err(); err != nil {
		return entities.Estimate{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[id]
	if !ok {
		return entities.Estimate{}, nil
	}
	return r.items[i].Clone(), nil
}

func (r *PinnedEstimateMemoryRepository) List(ctx context.Context) ([]entities.Estimate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.Estimate, 0, len(r.items))
	for _, e := range r.items {
		out = append(out, e.Clone())
	}
	return out, nil
}
