package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estimate is an accumulating screen-print quote made of one or more parts.
//
// Domain notes:
//   - Parts only grow while the estimate is current; a pinned estimate is frozen.
//   - Total always equals the sum of the part totals plus the cumulative ScreenFee.
//   - ID is a generation-ordered token, so sorting by ID sorts by creation.
type Estimate struct {
	ID        string          `json:"id"`
	Name      string          `json:"name,omitempty"`
	Parts     []LineItem      `json:"parts"`
	Total     decimal.Decimal `json:"total"`
	ScreenFee decimal.Decimal `json:"screen_fee"`
	IsPinned  bool            `json:"is_pinned"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	PinnedAt  time.Time       `json:"pinned_at,omitempty"`
}

// Clone returns a copy that shares no mutable state with e.
func (e Estimate) Clone() Estimate {
	out := e
	if e.Parts != nil {
		out.Parts = make([]LineItem, len(e.Parts))
		copy(out.Parts, e.Parts)
	}
	return out
}

// PartsTotal sums the line totals of every part.
func (e Estimate) PartsTotal() decimal.Decimal {
	sum := decimal.Zero
	for _, p := range e.Parts {
		sum = sum.Add(p.Total)
	}
	return sum
}

// IsBalanced reports whether Total == PartsTotal + ScreenFee.
func (e Estimate) IsBalanced() bool {
	return e.Total.Equal(e.PartsTotal().Add(e.ScreenFee))
}

// Quantity is the number of garments across all parts.
func (e Estimate) Quantity() int {
	n := 0
	for _, p := range e.Parts {
		n += p.Quantity
	}
	return n
}
