// Package catalog holds the fixed garment and brand lists the shop prices against.
package catalog

import (
	"strconv"
	"strings"

	"screenprint_estimator/internal/domain/entities"

	"github.com/shopspring/decimal"
)

const (
	MinPrintLocations = 1
	MaxPrintLocations = 9
	MinColorCount     = 1
	MaxColorCount     = 5
)

var garments = []entities.GarmentType{
	{Name: "T-Shirt", BasePrice: decimal.NewFromInt(5), DarkPrice: decimal.NewFromInt(6), Glyph: "👕"},
	{Name: "Crewneck", BasePrice: decimal.NewFromInt(11), DarkPrice: decimal.NewFromInt(13), Glyph: "⛴️"},
	{Name: "Hoodie", BasePrice: decimal.NewFromInt(18), DarkPrice: decimal.NewFromInt(20), Glyph: "🥷🏿"},
	{Name: "Long Sleeve", BasePrice: decimal.NewFromInt(9), DarkPrice: decimal.NewFromInt(11), Glyph: "🥼"},
}

var brands = []string{"Gildan", "Bella + Canvas", "Next Level", "American Apparel"}

// Garments returns the garment types in display order.
func Garments() []entities.GarmentType {
	out := make([]entities.GarmentType, len(garments))
	copy(out, garments)
	return out
}

// Garment looks a garment type up by its exact name.
func Garment(name string) (entities.GarmentType, bool) {
	for _, g := range garments {
		if g.Name == name {
			return g, true
		}
	}
	return entities.GarmentType{}, false
}

// GarmentNames returns the garment names in display order.
func GarmentNames() []string {
	out := make([]string, 0, len(garments))
	for _, g := range garments {
		out = append(out, g.Name)
	}
	return out
}

// Brands returns the selectable brands in display order.
func Brands() []string {
	out := make([]string, len(brands))
	copy(out, brands)
	return out
}

func IsBrand(name string) bool {
	name = strings.TrimSpace(name)
	for _, b := range brands {
		if b == name {
			return true
		}
	}
	return false
}

func ValidPrintLocations(n int) bool {
	return n >= MinPrintLocations && n <= MaxPrintLocations
}

func ValidColorCount(n int) bool {
	return n >= MinColorCount && n <= MaxColorCount
}

// ColorCountLabel renders a color count the way the order form lists it.
// The top option also covers designs with more colors than that.
func ColorCountLabel(n int) string {
	switch {
	case n == 1:
		return "1 color"
	case n >= MaxColorCount:
		return strconv.Itoa(MaxColorCount) + "+ colors"
	default:
		return strconv.Itoa(n) + " colors"
	}
}

// PrintLocationsLabel renders a print location count.
func PrintLocationsLabel(n int) string {
	if n == 1 {
		return "1 location"
	}
	return strconv.Itoa(n) + " locations"
}
