package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"screenprint_estimator/internal/domain/entities"
	"screenprint_estimator/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrEstimateNotFound        = errors.New("estimate not found")
	ErrNoCurrentEstimate       = errors.New("no current estimate")
	ErrPinWithoutName          = errors.New("a name is required to pin an estimate")
	ErrArtworkDecisionRequired = errors.New("artwork decision required for multiple print locations")
	ErrInvalidEstimateID       = errors.New("invalid estimate id")
)

// IEstimateUseCase is the estimate accumulator.
//
// Operations:
//   - AddPart prices a submission and appends it to the current estimate
//   - Pin freezes the current estimate under a name and clears it
//   - Discard drops the current estimate; pinned ones are untouched
//   - Reopen makes a pinned estimate the display target
//   - Current, Displayed, ListPinned and GetPinned return snapshots
type IEstimateUseCase interface {
	AddPart(ctx context.Context, sub entities.Submission, artwork *entities.ArtworkDecision) (AddPartResult, error)
	Current(ctx context.Context) (entities.Estimate, error)
	Displayed(ctx context.Context) (entities.Estimate, error)
	Pin(ctx context.Context, name string) (entities.Estimate, error)
	Discard(ctx context.Context) bool
	Reopen(ctx context.Context, id string) (entities.Estimate, error)
	ListPinned(ctx context.Context) ([]entities.Estimate, error)
	GetPinned(ctx context.Context, id string) (entities.Estimate, error)
}

// AddPartResult carries the estimate after the append and the batch that was added.
type AddPartResult struct {
	Estimate entities.Estimate
	Batch    Batch
}

type EstimateUseCase struct {
	builder *LineItemBuilder
	pinned  interfaces.IPinnedEstimateRepository
	ids     interfaces.IEstimateIDGenerator
	logger  *zap.Logger
	now     func() time.Time

	mu      sync.Mutex
	current *entities.Estimate
	// displayedID is the pinned estimate on display; empty means the current one.
	displayedID string
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(
	builder *LineItemBuilder,
	pinned interfaces.IPinnedEstimateRepository,
	ids interfaces.IEstimateIDGenerator,
	logger *zap.Logger,
) *EstimateUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EstimateUseCase{
		builder: builder,
		pinned:  pinned,
		ids:     ids,
		logger:  logger,
		now:     time.Now,
	}
}

func (u *EstimateUseCase) AddPart(ctx context.Context, sub entities.Submission, artwork *entities.ArtworkDecision) (AddPartResult, error) {
	if err := u.builder.Validate(sub); err != nil {
		u.logger.Info("submission rejected", zap.Error(err))
		return AddPartResult{}, err
	}

	multiplier := 1
	if entities.NeedsArtworkDecision(sub.PrintLocations) {
		if artwork == nil {
			return AddPartResult{}, ErrArtworkDecisionRequired
		}
		multiplier = artwork.FeeMultiplier(sub.PrintLocations)
	}
	batch := u.builder.Build(sub, multiplier)

	u.mu.Lock()
	defer u.mu.Unlock()

	now := u.now().UTC()
	if u.current == nil {
		u.current = &entities.Estimate{
			ID:        u.ids.NextID(),
			Total:     decimal.Zero,
			ScreenFee: decimal.Zero,
			CreatedAt: now,
		}
		u.logger.Info("estimate started", zap.String("estimate_id", u.current.ID))
	}
	u.current.Parts = append(u.current.Parts, batch.Items...)
	u.current.ScreenFee = u.current.ScreenFee.Add(batch.ScreenFee)
	u.current.Total = u.current.Total.Add(batch.Total())
	u.current.UpdatedAt = now
	u.displayedID = ""

	u.logger.Info("part added",
		zap.String("estimate_id", u.current.ID),
		zap.Int("items", len(batch.Items)),
		zap.Int("screen_fee_multiplier", batch.Multiplier),
		zap.String("batch_total", batch.Total().StringFixed(2)),
		zap.String("estimate_total", u.current.Total.StringFixed(2)),
	)
	return AddPartResult{Estimate: u.current.Clone(), Batch: batch}, nil
}

func (u *EstimateUseCase) Current(_ context.Context) (entities.Estimate, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.current == nil {
		return entities.Estimate{}, ErrNoCurrentEstimate
	}
	return u.current.Clone(), nil
}

func (u *EstimateUseCase) Displayed(ctx context.Context) (entities.Estimate, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.displayedID != "" {
		e, err := u.pinned.GetByID(ctx, u.displayedID)
		if err != nil {
			return entities.Estimate{}, fmt.Errorf("load displayed estimate: %w", err)
		}
		if e.ID != "" {
			return e, nil
		}
		u.displayedID = ""
	}
	if u.current == nil {
		return entities.Estimate{}, ErrNoCurrentEstimate
	}
	return u.current.Clone(), nil
}

func (u *EstimateUseCase) Pin(ctx context.Context, name string) (entities.Estimate, error) {
	name = strings.TrimSpace(name)

	u.mu.Lock()
	defer u.mu.Unlock()

	if u.current == nil {
		return entities.Estimate{}, ErrNoCurrentEstimate
	}
	if name == "" {
		return entities.Estimate{}, ErrPinWithoutName
	}

	p := u.current.Clone()
	p.Name = name
	p.IsPinned = true
	p.PinnedAt = u.now().UTC()

	stored, err := u.pinned.Append(ctx, p)
	if err != nil {
		return entities.Estimate{}, fmt.Errorf("pin estimate %s: %w", p.ID, err)
	}
	u.current = nil
	u.displayedID = stored.ID

	u.logger.Info("estimate pinned",
		zap.String("estimate_id", stored.ID),
		zap.String("name", stored.Name),
		zap.String("total", stored.Total.StringFixed(2)),
	)
	return stored, nil
}

func (u *EstimateUseCase) Discard(_ context.Context) bool {
	u.mu.Lock()
	defer u.mu.Unlock()

	had := u.current != nil
	if had {
		u.logger.Info("estimate discarded", zap.String("estimate_id", u.current.ID))
	}
	u.current = nil
	u.displayedID = ""
	return had
}

func (u *EstimateUseCase) Reopen(ctx context.Context, id string) (entities.Estimate, error) {
	e, err := u.GetPinned(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}

	u.mu.Lock()
	u.displayedID = e.ID
	u.mu.Unlock()

	u.logger.Info("pinned estimate reopened", zap.String("estimate_id", e.ID))
	return e, nil
}

func (u *EstimateUseCase) ListPinned(ctx context.Context) ([]entities.Estimate, error) {
	return u.pinned.List(ctx)
}

func (u *EstimateUseCase) GetPinned(ctx context.Context, id string) (entities.Estimate, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Estimate{}, ErrInvalidEstimateID
	}

	e, err := u.pinned.GetByID(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	if e.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return e, nil
}
