// Package pricing holds the pure price functions behind every estimate.
// All amounts are decimal; callers round only when rendering.
package pricing

import (
	"screenprint_estimator/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type tier struct {
	below int
	price decimal.Decimal
}

// Volume tiers, checked in order. Quantities past the last tier get bulkUnitPrice.
var tiers = []tier{
	{below: 12, price: decimal.NewFromInt(15)},
	{below: 24, price: decimal.NewFromInt(12)},
	{below: 48, price: decimal.NewFromInt(10)},
	{below: 100, price: decimal.NewFromInt(8)},
}

var (
	bulkUnitPrice        = decimal.NewFromInt(6)
	darkSurchargeAmount  = decimal.NewFromInt(1)
	inkCostPerColorPlace = decimal.NewFromFloat(0.5)
	screenFeePerLocation = decimal.NewFromInt(20)
)

// UnitPriceForQuantity returns the volume-tier unit price. It never increases
// as quantity grows.
func UnitPriceForQuantity(quantity int) decimal.Decimal {
	for _, t := range tiers {
		if quantity < t.below {
			return t.price
		}
	}
	return bulkUnitPrice
}

// DarkSurcharge adds the dark-fabric surcharge to base when isDark is set.
func DarkSurcharge(base decimal.Decimal, isDark bool) decimal.Decimal {
	if isDark {
		return base.Add(darkSurchargeAmount)
	}
	return base
}

// PrintCost is the ink cost of one line, charged once per line rather than per garment.
func PrintCost(colorCount, printLocations int) decimal.Decimal {
	return inkCostPerColorPlace.Mul(decimal.NewFromInt(int64(colorCount))).Mul(decimal.NewFromInt(int64(printLocations)))
}

// LineTotal is quantity * unitPrice + printCost.
func LineTotal(quantity int, unitPrice, printCost decimal.Decimal) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity))).Add(printCost)
}

// ScreenFee charges one screen per distinct print-location count, times the
// artwork multiplier. Duplicate counts are collapsed; an empty input costs nothing.
func ScreenFee(printLocationCounts []int, multiplier int) decimal.Decimal {
	seen := make(map[int]struct{}, len(printLocationCounts))
	for _, c := range printLocationCounts {
		seen[c] = struct{}{}
	}
	if len(seen) == 0 {
		return decimal.Zero
	}
	return screenFeePerLocation.Mul(decimal.NewFromInt(int64(len(seen)))).Mul(decimal.NewFromInt(int64(multiplier)))
}

// ScreenFeeForItems is ScreenFee over the print-location counts of items.
func ScreenFeeForItems(items []entities.LineItem, multiplier int) decimal.Decimal {
	counts := make([]int, 0, len(items))
	for _, it := range items {
		counts = append(counts, it.PrintLocations)
	}
	return ScreenFee(counts, multiplier)
}

// Format renders an amount with two decimals, rounding half away from zero.
func Format(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}
