package entities

import "github.com/shopspring/decimal"

// LineItem is the priced result of one garment type within one submission.
// It is built once and never modified afterwards. DarkUnitPrice equals
// UnitPrice for light garments.
type LineItem struct {
	GarmentName    string          `json:"garment_name"`
	Glyph          string          `json:"glyph"`
	Quantity       int             `json:"quantity"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
	DarkUnitPrice  decimal.Decimal `json:"dark_unit_price"`
	IsDark         bool            `json:"is_dark"`
	PrintLocations int             `json:"print_locations"`
	ColorCount     int             `json:"color_count"`
	PrintCost      decimal.Decimal `json:"print_cost"`
	Total          decimal.Decimal `json:"total"`
	Brand          string          `json:"brand"`
}

// DarkSurchargeApplied reports whether the dark-garment surcharge is part of the price.
func (l LineItem) DarkSurchargeApplied() bool {
	return l.IsDark
}

// EffectiveUnitPrice is the per-garment price actually charged.
func (l LineItem) EffectiveUnitPrice() decimal.Decimal {
	if l.IsDark {
		return l.DarkUnitPrice
	}
	return l.UnitPrice
}

// ColorClass returns the garment color class the item was priced for.
func (l LineItem) ColorClass() ColorClass {
	if l.IsDark {
		return ColorClassDark
	}
	return ColorClassLight
}
