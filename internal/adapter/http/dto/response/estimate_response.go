package response

import (
	"time"

	"screenprint_estimator/internal/domain/catalog"
	"screenprint_estimator/internal/domain/entities"
	"screenprint_estimator/internal/domain/grouping"
	"screenprint_estimator/internal/domain/pricing"
	"screenprint_estimator/internal/usecase"
)

type LineItemResponse struct {
	Garment            string `json:"garment"`
	Glyph              string `json:"glyph"`
	Quantity           int    `json:"quantity"`
	UnitPrice          string `json:"unitPrice"`
	DarkUnitPrice      string `json:"darkUnitPrice"`
	EffectiveUnitPrice string `json:"effectiveUnitPrice"`
	DarkSurcharge      bool   `json:"darkSurcharge"`
	IsDark             bool   `json:"isDark"`
	PrintLocations     int    `json:"printLocations"`
	ColorCount         int    `json:"colorCount"`
	ColorCountLabel    string `json:"colorCountLabel"`
	PrintCost          string `json:"printCost"`
	LineTotal          string `json:"lineTotal"`
	Brand              string `json:"brand"`
}

type GroupResponse struct {
	Label          string             `json:"label"`
	Garment        string             `json:"garment"`
	PrintLocations int                `json:"printLocations"`
	ColorCount     int                `json:"colorCount"`
	GarmentColor   string             `json:"garmentColor"`
	Brand          string             `json:"brand"`
	Quantity       int                `json:"quantity"`
	Subtotal       string             `json:"subtotal"`
	Items          []LineItemResponse `json:"items"`
}

type EstimateResponse struct {
	ID        string             `json:"id"`
	Name      string             `json:"name,omitempty"`
	IsPinned  bool               `json:"isPinned"`
	Parts     []LineItemResponse `json:"parts"`
	Groups    []GroupResponse    `json:"groups"`
	Quantity  int                `json:"quantity"`
	ScreenFee string             `json:"screenFee"`
	Total     string             `json:"total"`
	CreatedAt time.Time          `json:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt"`
	PinnedAt  *time.Time         `json:"pinnedAt,omitempty"`
}

type PinnedSummaryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	PartCount int       `json:"partCount"`
	Quantity  int       `json:"quantity"`
	ScreenFee string    `json:"screenFee"`
	Total     string    `json:"total"`
	PinnedAt  time.Time `json:"pinnedAt"`
}

type BatchResponse struct {
	Items               []LineItemResponse `json:"items"`
	ScreenFeeMultiplier int                `json:"screenFeeMultiplier"`
	ScreenFee           string             `json:"screenFee"`
	Total               string             `json:"total"`
}

type AddPartResponse struct {
	Estimate EstimateResponse `json:"estimate"`
	Batch    BatchResponse    `json:"batch"`
	Notice   NoticeResponse   `json:"notice"`
}

type PinResponse struct {
	Estimate EstimateResponse `json:"estimate"`
	Notice   NoticeResponse   `json:"notice"`
}

type DiscardResponse struct {
	Discarded bool           `json:"discarded"`
	Notice    NoticeResponse `json:"notice"`
}

func FromLineItem(it entities.LineItem) LineItemResponse {
	return LineItemResponse{
		Garment:            it.GarmentName,
		Glyph:              it.Glyph,
		Quantity:           it.Quantity,
		UnitPrice:          pricing.Format(it.UnitPrice),
		DarkUnitPrice:      pricing.Format(it.DarkUnitPrice),
		EffectiveUnitPrice: pricing.Format(it.EffectiveUnitPrice()),
		DarkSurcharge:      it.DarkSurchargeApplied(),
		IsDark:             it.IsDark,
		PrintLocations:     it.PrintLocations,
		ColorCount:         it.ColorCount,
		ColorCountLabel:    catalog.ColorCountLabel(it.ColorCount),
		PrintCost:          pricing.Format(it.PrintCost),
		LineTotal:          pricing.Format(it.Total),
		Brand:              it.Brand,
	}
}

func fromLineItems(items []entities.LineItem) []LineItemResponse {
	out := make([]LineItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, FromLineItem(it))
	}
	return out
}

func FromGroup(g grouping.Group) GroupResponse {
	color := entities.ColorClassLight
	if g.Key.IsDark {
		color = entities.ColorClassDark
	}
	return GroupResponse{
		Label:          g.Label,
		Garment:        g.Key.GarmentName,
		PrintLocations: g.Key.PrintLocations,
		ColorCount:     g.Key.ColorCount,
		GarmentColor:   color.Label(),
		Brand:          g.Key.Brand,
		Quantity:       g.Quantity(),
		Subtotal:       pricing.Format(g.Subtotal()),
		Items:          fromLineItems(g.Items),
	}
}

func FromEstimate(e entities.Estimate) EstimateResponse {
	groups := grouping.GroupLineItems(e.Parts)
	res := EstimateResponse{
		ID:        e.ID,
		Name:      e.Name,
		IsPinned:  e.IsPinned,
		Parts:     fromLineItems(e.Parts),
		Groups:    make([]GroupResponse, 0, len(groups)),
		Quantity:  e.Quantity(),
		ScreenFee: pricing.Format(e.ScreenFee),
		Total:     pricing.Format(e.Total),
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
	for _, g := range groups {
		res.Groups = append(res.Groups, FromGroup(g))
	}
	if !e.PinnedAt.IsZero() {
		pinnedAt := e.PinnedAt
		res.PinnedAt = &pinnedAt
	}
	return res
}

func FromPinnedSummary(e entities.Estimate) PinnedSummaryResponse {
	return PinnedSummaryResponse{
		ID:        e.ID,
		Name:      e.Name,
		PartCount: len(e.Parts),
		Quantity:  e.Quantity(),
		ScreenFee: pricing.Format(e.ScreenFee),
		Total:     pricing.Format(e.Total),
		PinnedAt:  e.PinnedAt,
	}
}

func FromPinnedList(list []entities.Estimate) []PinnedSummaryResponse {
	out := make([]PinnedSummaryResponse, 0, len(list))
	for _, e := range list {
		out = append(out, FromPinnedSummary(e))
	}
	return out
}

func FromBatch(b usecase.Batch) BatchResponse {
	return BatchResponse{
		Items:               fromLineItems(b.Items),
		ScreenFeeMultiplier: b.Multiplier,
		ScreenFee:           pricing.Format(b.ScreenFee),
		Total:               pricing.Format(b.Total()),
	}
}

func FromAddPartResult(r usecase.AddPartResult) AddPartResponse {
	return AddPartResponse{
		Estimate: FromEstimate(r.Estimate),
		Batch:    FromBatch(r.Batch),
		Notice:   NoticeEstimateAdded(),
	}
}
