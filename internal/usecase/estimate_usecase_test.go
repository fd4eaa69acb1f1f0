package usecase

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"screenprint_estimator/internal/adapter/persistence/repository"
	"screenprint_estimator/internal/domain/entities"
	mock_interfaces "screenprint_estimator/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newTestUseCase(t *testing.T, ctrl *gomock.Controller) *EstimateUseCase {
	t.Helper()
	ids := mock_interfaces.NewMockIEstimateIDGenerator(ctrl)
	next := 0
	ids.EXPECT().NextID().DoAndReturn(func() string {
		next++
		return strconv.Itoa(next)
	}).AnyTimes()

	uc := NewEstimateUseCase(NewLineItemBuilder(QuantityRuleAny), repository.NewPinnedEstimateMemoryRepository(), ids, zap.NewNop())
	uc.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }
	return uc
}

func TestEstimateUseCase_AddPart(t *testing.T) {
	ctx := context.Background()

	t.Run("single location scenario", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := newTestUseCase(t, ctrl)

		res, err := uc.AddPart(ctx, validSubmission(), nil)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if res.Estimate.ID != "1" || len(res.Estimate.Parts) != 1 {
			t.Fatalf("unexpected estimate: %+v", res.Estimate)
		}
		if res.Estimate.Total.StringFixed(2) != "171.00" || res.Estimate.ScreenFee.StringFixed(2) != "20.00" {
			t.Fatalf("expected total 171.00 fee 20.00, got %s %s", res.Estimate.Total, res.Estimate.ScreenFee)
		}
		if res.Batch.Multiplier != 1 {
			t.Fatalf("expected multiplier 1, got %d", res.Batch.Multiplier)
		}
	})

	t.Run("three locations with distinct artwork", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := newTestUseCase(t, ctrl)

		s := validSubmission()
		s.PrintLocations = 3
		res, err := uc.AddPart(ctx, s, &entities.ArtworkDecision{SameArtwork: false, Multiplier: 3})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if res.Estimate.ScreenFee.StringFixed(2) != "60.00" || res.Estimate.Parts[0].Total.StringFixed(2) != "153.00" {
			t.Fatalf("unexpected fee/line: %s %s", res.Estimate.ScreenFee, res.Estimate.Parts[0].Total)
		}
		if res.Estimate.Total.StringFixed(2) != "213.00" {
			t.Fatalf("expected 213.00, got %s", res.Estimate.Total.StringFixed(2))
		}
	})

	t.Run("artwork decision required leaves state untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := newTestUseCase(t, ctrl)

		s := validSubmission()
		s.PrintLocations = 2
		if _, err := uc.AddPart(ctx, s, nil); !errors.Is(err, ErrArtworkDecisionRequired) {
			t.Fatalf("expected ErrArtworkDecisionRequired, got %v", err)
		}
		if _, err := uc.Current(ctx); !errors.Is(err, ErrNoCurrentEstimate) {
			t.Fatalf("expected no current estimate, got %v", err)
		}
	})

	t.Run("validation error leaves state untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := newTestUseCase(t, ctrl)

		if _, err := uc.AddPart(ctx, validSubmission(), nil); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		bad := validSubmission()
		bad.Quantities = map[string]int{"T-Shirt": -4}
		if _, err := uc.AddPart(ctx, bad, nil); !IsNegativeQuantityError(err) {
			t.Fatalf("expected NegativeQuantityError, got %v", err)
		}
		cur, _ := uc.Current(ctx)
		if len(cur.Parts) != 1 || cur.Total.StringFixed(2) != "171.00" {
			t.Fatalf("estimate changed after rejected submission: %+v", cur)
		}
	})

	t.Run("totals are additive across batches", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := newTestUseCase(t, ctrl)

		subs := []entities.Submission{validSubmission(), validSubmission(), validSubmission()}
		subs[1].ColorClass = entities.ColorClassDark
		subs[1].Quantities = map[string]int{"Hoodie": 24, "Long Sleeve": 6}
		subs[2].PrintLocations = 2
		subs[2].Quantities = map[string]int{"Crewneck": 48}

		var sum string
		var last AddPartResult
		total := 0.0
		for i, s := range subs {
			var art *entities.ArtworkDecision
			if s.PrintLocations > 1 {
				art = &entities.ArtworkDecision{SameArtwork: true}
			}
			res, err := uc.AddPart(ctx, s, art)
			if err != nil {
				t.Fatalf("batch %d: unexpected err: %v", i, err)
			}
			total += res.Batch.Total().InexactFloat64()
			last = res
		}
		sum = strconv.FormatFloat(total, 'f', 2, 64)
		if last.Estimate.Total.StringFixed(2) != sum {
			t.Fatalf("expected running total %s, got %s", sum, last.Estimate.Total.StringFixed(2))
		}
		if !last.Estimate.IsBalanced() {
			t.Fatalf("estimate does not balance: %+v", last.Estimate)
		}
		if last.Estimate.ID != "1" || len(last.Estimate.Parts) != 4 {
			t.Fatalf("expected one estimate with 4 parts, got id=%s parts=%d", last.Estimate.ID, len(last.Estimate.Parts))
		}
		if last.Estimate.ScreenFee.StringFixed(2) != "60.00" {
			t.Fatalf("expected cumulative fee 60.00, got %s", last.Estimate.ScreenFee)
		}
	})

	t.Run("snapshots do not alias state", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := newTestUseCase(t, ctrl)

		res, _ := uc.AddPart(ctx, validSubmission(), nil)
		res.Estimate.Parts[0].Quantity = 999
		cur, _ := uc.Current(ctx)
		if cur.Parts[0].Quantity != 10 {
			t.Fatalf("snapshot mutation leaked into state")
		}
	})
}

func TestEstimateUseCase_Pin(t *testing.T) {
	ctx := context.Background()

	t.Run("no current estimate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := newTestUseCase(t, ctrl)

		if _, err := uc.Pin(ctx, "Team"); !errors.Is(err, ErrNoCurrentEstimate) {
			t.Fatalf("expected ErrNoCurrentEstimate, got %v", err)
		}
	})

	t.Run("blank name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := newTestUseCase(t, ctrl)

		_, _ = uc.AddPart(ctx, validSubmission(), nil)
		if _, err := uc.Pin(ctx, "   "); !errors.Is(err, ErrPinWithoutName) {
			t.Fatalf("expected ErrPinWithoutName, got %v", err)
		}
		if _, err := uc.Current(ctx); err != nil {
			t.Fatalf("current estimate should survive failed pin: %v", err)
		}
	})

	t.Run("repo error keeps current", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPinnedEstimateRepository(ctrl)
		ids := mock_interfaces.NewMockIEstimateIDGenerator(ctrl)
		ids.EXPECT().NextID().Return("42")
		uc := NewEstimateUseCase(NewLineItemBuilder(QuantityRuleAny), repo, ids, zap.NewNop())

		repo.EXPECT().Append(gomock.Any(), gomock.AssignableToTypeOf(entities.Estimate{})).Return(entities.Estimate{}, errors.New("storage"))

		_, _ = uc.AddPart(ctx, validSubmission(), nil)
		_, err := uc.Pin(ctx, "Team")
		if err == nil || err.Error() != "pin estimate 42: storage" {
			t.Fatalf("expected wrapped storage error, got %v", err)
		}
		if _, err := uc.Current(ctx); err != nil {
			t.Fatalf("current estimate should survive failed pin: %v", err)
		}
	})

	t.Run("pin stores a named copy and clears current", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPinnedEstimateRepository(ctrl)
		ids := mock_interfaces.NewMockIEstimateIDGenerator(ctrl)
		ids.EXPECT().NextID().Return("7")
		uc := NewEstimateUseCase(NewLineItemBuilder(QuantityRuleAny), repo, ids, zap.NewNop())

		repo.EXPECT().Append(gomock.Any(), gomock.AssignableToTypeOf(entities.Estimate{})).DoAndReturn(
			func(_ context.Context, e entities.Estimate) (entities.Estimate, error) {
				if e.ID != "7" || e.Name != "Team" || !e.IsPinned || e.PinnedAt.IsZero() || len(e.Parts) != 1 {
					t.Fatalf("unexpected estimate: %+v", e)
				}
				return e, nil
			},
		)

		_, _ = uc.AddPart(ctx, validSubmission(), nil)
		got, err := uc.Pin(ctx, "  Team ")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if got.Name != "Team" {
			t.Fatalf("expected trimmed name, got %q", got.Name)
		}
		if _, err := uc.Current(ctx); !errors.Is(err, ErrNoCurrentEstimate) {
			t.Fatalf("expected current cleared, got %v", err)
		}
	})
}

func TestEstimateUseCase_PinReopenRoundTrip(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := newTestUseCase(t, ctrl)

	_, _ = uc.AddPart(ctx, validSubmission(), nil)
	s := validSubmission()
	s.PrintLocations = 3
	_, _ = uc.AddPart(ctx, s, &entities.ArtworkDecision{Multiplier: 2})
	before, _ := uc.Current(ctx)

	pinned, err := uc.Pin(ctx, "Spring order")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	shown, err := uc.Displayed(ctx)
	if err != nil || shown.ID != pinned.ID {
		t.Fatalf("pinned estimate should be displayed, got %+v err=%v", shown, err)
	}

	_, _ = uc.AddPart(ctx, validSubmission(), nil)
	shown, _ = uc.Displayed(ctx)
	if shown.ID == pinned.ID || shown.IsPinned {
		t.Fatalf("new part should go to a fresh current estimate, got %+v", shown)
	}

	reopened, err := uc.Reopen(ctx, pinned.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !reopened.Total.Equal(before.Total) || !reopened.ScreenFee.Equal(before.ScreenFee) || len(reopened.Parts) != len(before.Parts) {
		t.Fatalf("reopened estimate differs from pinned state: %+v vs %+v", reopened, before)
	}
	for i := range before.Parts {
		if reopened.Parts[i].GarmentName != before.Parts[i].GarmentName || !reopened.Parts[i].Total.Equal(before.Parts[i].Total) {
			t.Fatalf("part %d differs: %+v vs %+v", i, reopened.Parts[i], before.Parts[i])
		}
	}
	shown, _ = uc.Displayed(ctx)
	if shown.ID != pinned.ID {
		t.Fatalf("reopen should set display target")
	}

	list, _ := uc.ListPinned(ctx)
	if len(list) != 1 || list[0].Name != "Spring order" {
		t.Fatalf("unexpected pinned list: %+v", list)
	}
	if _, err := uc.Current(ctx); err != nil {
		t.Fatalf("reopen must not touch the current estimate: %v", err)
	}
}

func TestEstimateUseCase_Discard(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := newTestUseCase(t, ctrl)

	if uc.Discard(ctx) {
		t.Fatalf("nothing to discard yet")
	}
	_, _ = uc.AddPart(ctx, validSubmission(), nil)
	if !uc.Discard(ctx) {
		t.Fatalf("expected discard to report cleared estimate")
	}
	if uc.Discard(ctx) {
		t.Fatalf("second discard should be a no-op")
	}
	if _, err := uc.Displayed(ctx); !errors.Is(err, ErrNoCurrentEstimate) {
		t.Fatalf("expected ErrNoCurrentEstimate, got %v", err)
	}

	res, _ := uc.AddPart(ctx, validSubmission(), nil)
	if res.Estimate.ID != "2" || len(res.Estimate.Parts) != 1 {
		t.Fatalf("expected fresh estimate after discard, got %+v", res.Estimate)
	}
}

func TestEstimateUseCase_GetPinned(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid id", func(t *testing.T) {
		uc := NewEstimateUseCase(NewLineItemBuilder(QuantityRuleAny), nil, nil, nil)
		if _, err := uc.GetPinned(ctx, " "); !errors.Is(err, ErrInvalidEstimateID) {
			t.Fatalf("expected ErrInvalidEstimateID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPinnedEstimateRepository(ctrl)
		uc := NewEstimateUseCase(NewLineItemBuilder(QuantityRuleAny), repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "9").Return(entities.Estimate{}, nil)
		if _, err := uc.Reopen(ctx, "9"); !errors.Is(err, ErrEstimateNotFound) {
			t.Fatalf("expected ErrEstimateNotFound, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPinnedEstimateRepository(ctrl)
		uc := NewEstimateUseCase(NewLineItemBuilder(QuantityRuleAny), repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "9").Return(entities.Estimate{}, errors.New("storage"))
		if _, err := uc.GetPinned(ctx, "9"); err == nil || err.Error() != "storage" {
			t.Fatalf("expected storage error, got %v", err)
		}
	})
}
