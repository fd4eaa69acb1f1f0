package response

import (
	"screenprint_estimator/internal/domain/catalog"
	"screenprint_estimator/internal/domain/entities"
	"screenprint_estimator/internal/domain/pricing"
)

type GarmentResponse struct {
	Name      string `json:"name"`
	BasePrice string `json:"basePrice"`
	DarkPrice string `json:"darkPrice"`
	Glyph     string `json:"glyph"`
}

type OptionResponse struct {
	Value any    `json:"value"`
	Label string `json:"label"`
}

type CatalogResponse struct {
	Garments       []GarmentResponse `json:"garments"`
	Brands         []string          `json:"brands"`
	ColorClasses   []OptionResponse  `json:"colorClasses"`
	PrintLocations []OptionResponse  `json:"printLocations"`
	ColorCounts    []OptionResponse  `json:"colorCounts"`
}

func FromCatalog() CatalogResponse {
	res := CatalogResponse{Brands: catalog.Brands()}
	for _, g := range catalog.Garments() {
		res.Garments = append(res.Garments, GarmentResponse{
			Name:      g.Name,
			BasePrice: pricing.Format(g.BasePrice),
			DarkPrice: pricing.Format(g.DarkPrice),
			Glyph:     g.Glyph,
		})
	}
	for _, c := range []entities.ColorClass{entities.ColorClassLight, entities.ColorClassDark} {
		res.ColorClasses = append(res.ColorClasses, OptionResponse{Value: string(c), Label: c.Label()})
	}
	for n := catalog.MinPrintLocations; n <= catalog.MaxPrintLocations; n++ {
		res.PrintLocations = append(res.PrintLocations, OptionResponse{Value: n, Label: catalog.PrintLocationsLabel(n)})
	}
	for n := catalog.MinColorCount; n <= catalog.MaxColorCount; n++ {
		res.ColorCounts = append(res.ColorCounts, OptionResponse{Value: n, Label: catalog.ColorCountLabel(n)})
	}
	return res
}
