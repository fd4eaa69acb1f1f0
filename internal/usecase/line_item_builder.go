package usecase

import (
	"fmt"
	"sort"
	"strings"

	"screenprint_estimator/internal/domain/catalog"
	"screenprint_estimator/internal/domain/entities"
	"screenprint_estimator/internal/domain/pricing"

	"github.com/shopspring/decimal"
)

// QuantityRule decides which zero quantities make a submission incomplete.
type QuantityRule string

const (
	// QuantityRuleAny needs at least one garment above zero; zeros are skipped.
	QuantityRuleAny QuantityRule = "any"
	// QuantityRuleAll treats every zero or blank garment quantity as a missing field.
	QuantityRuleAll QuantityRule = "all"
)

func ParseQuantityRule(s string) (QuantityRule, error) {
	switch QuantityRule(strings.ToLower(strings.TrimSpace(s))) {
	case "", QuantityRuleAny:
		return QuantityRuleAny, nil
	case QuantityRuleAll:
		return QuantityRuleAll, nil
	default:
		return "", fmt.Errorf("unknown quantity rule %q", s)
	}
}

// Batch is the priced output of one submission.
type Batch struct {
	Items      []entities.LineItem
	ScreenFee  decimal.Decimal
	Multiplier int
}

func (b Batch) ItemsTotal() decimal.Decimal {
	sum := decimal.Zero
	for _, it := range b.Items {
		sum = sum.Add(it.Total)
	}
	return sum
}

// Total is what the batch adds to an estimate's running total.
func (b Batch) Total() decimal.Decimal {
	return b.ItemsTotal().Add(b.ScreenFee)
}

// LineItemBuilder validates submissions and prices them into batches.
type LineItemBuilder struct {
	rule QuantityRule
}

func NewLineItemBuilder(rule QuantityRule) *LineItemBuilder {
	if rule == "" {
		rule = QuantityRuleAny
	}
	return &LineItemBuilder{rule: rule}
}

func (b *LineItemBuilder) Rule() QuantityRule {
	return b.rule
}

// Validate reports missing fields first, then negative quantities.
func (b *LineItemBuilder) Validate(s entities.Submission) error {
	var missing []string
	if !catalog.IsBrand(s.Brand) {
		missing = append(missing, "brand")
	}
	if !s.ColorClass.IsValid() {
		missing = append(missing, "colorClass")
	}
	if !catalog.ValidPrintLocations(s.PrintLocations) {
		missing = append(missing, "printLocations")
	}
	if !catalog.ValidColorCount(s.ColorCount) {
		missing = append(missing, "colorCount")
	}

	var unknown []string
	for name := range s.Quantities {
		if _, ok := catalog.Garment(name); !ok {
			unknown = append(unknown, quantityField(name))
		}
	}
	sort.Strings(unknown)
	missing = append(missing, unknown...)

	names := catalog.GarmentNames()
	if b.rule == QuantityRuleAll {
		for _, name := range names {
			if s.Quantities[name] == 0 {
				missing = append(missing, quantityField(name))
			}
		}
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}

	var negative []string
	anyPositive := false
	for _, name := range names {
		q := s.Quantities[name]
		if q < 0 {
			negative = append(negative, name)
		}
		if q > 0 {
			anyPositive = true
		}
	}
	if len(negative) > 0 {
		return &NegativeQuantityError{Garments: negative}
	}

	if !anyPositive {
		fields := make([]string, 0, len(names))
		for _, name := range names {
			fields = append(fields, quantityField(name))
		}
		return &ValidationError{Fields: fields}
	}
	return nil
}

// Build prices a validated submission. Garments with no positive quantity are
// skipped; items come out in catalog order.
func (b *LineItemBuilder) Build(s entities.Submission, multiplier int) Batch {
	if multiplier < 1 {
		multiplier = 1
	}
	isDark := s.ColorClass.IsDark()
	brand := strings.TrimSpace(s.Brand)
	printCost := pricing.PrintCost(s.ColorCount, s.PrintLocations)

	var items []entities.LineItem
	for _, g := range catalog.Garments() {
		qty := s.Quantities[g.Name]
		if qty <= 0 {
			continue
		}
		unit := pricing.UnitPriceForQuantity(qty)
		darkUnit := pricing.DarkSurcharge(unit, isDark)
		items = append(items, entities.LineItem{
			GarmentName:    g.Name,
			Glyph:          g.Glyph,
			Quantity:       qty,
			UnitPrice:      unit,
			DarkUnitPrice:  darkUnit,
			IsDark:         isDark,
			PrintLocations: s.PrintLocations,
			ColorCount:     s.ColorCount,
			PrintCost:      printCost,
			Total:          pricing.LineTotal(qty, darkUnit, printCost),
			Brand:          brand,
		})
	}

	return Batch{
		Items:      items,
		ScreenFee:  pricing.ScreenFeeForItems(items, multiplier),
		Multiplier: multiplier,
	}
}

func quantityField(garment string) string {
	return "quantities." + garment
}
