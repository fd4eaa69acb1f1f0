package repository

import (
	"context"
	"errors"
	"testing"

	"screenprint_estimator/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestPinnedEstimateMemoryRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("append and get returns copies", func(t *testing.T) {
		r := NewPinnedEstimateMemoryRepository()
		e := entities.Estimate{
			ID:    "1",
			Name:  "Team shirts",
			Parts: []entities.LineItem{{GarmentName: "T-Shirt", Quantity: 10}},
			Total: decimal.NewFromInt(171),
		}
		if _, err := r.Append(ctx, e); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		e.Parts[0].Quantity = 1

		got, err := r.GetByID(ctx, "1")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if got.Parts[0].Quantity != 10 {
			t.Fatalf("stored estimate changed through caller slice: %+v", got.Parts)
		}
		got.Parts[0].Quantity = 2
		again, _ := r.GetByID(ctx, "1")
		if again.Parts[0].Quantity != 10 {
			t.Fatalf("stored estimate changed through returned slice: %+v", again.Parts)
		}
	})

	t.Run("missing id returns zero value", func(t *testing.T) {
		r := NewPinnedEstimateMemoryRepository()
		got, err := r.GetByID(ctx, "nope")
		if err != nil || got.ID != "" {
			t.Fatalf("expected zero estimate, got %+v err=%v", got, err)
		}
	})

	t.Run("duplicate id", func(t *testing.T) {
		r := NewPinnedEstimateMemoryRepository()
		_, _ = r.Append(ctx, entities.Estimate{ID: "1"})
		_, err := r.Append(ctx, entities.Estimate{ID: "1"})
		if !errors.Is(err, ErrPinnedEstimateExists) {
			t.Fatalf("expected ErrPinnedEstimateExists, got %v", err)
		}
	})

	t.Run("list keeps pin order", func(t *testing.T) {
		r := NewPinnedEstimateMemoryRepository()
		for _, id := range []string{"3", "1", "2"} {
			_, _ = r.Append(ctx, entities.Estimate{ID: id})
		}
		list, err := r.List(ctx)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if len(list) != 3 || list[0].ID != "3" || list[1].ID != "1" || list[2].ID != "2" {
			t.Fatalf("unexpected order: %+v", list)
		}
	})

	t.Run("canceled context", func(t *testing.T) {
		r := NewPinnedEstimateMemoryRepository()
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		if _, err := r.List(cctx); !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
	})
}
