package entities

import "github.com/shopspring/decimal"

// GarmentType is a blank garment offered by the shop.
type GarmentType struct {
	Name      string          `json:"name"`
	BasePrice decimal.Decimal `json:"base_price"`
	DarkPrice decimal.Decimal `json:"dark_price"`
	Glyph     string          `json:"glyph"`
}

// ColorClass is the brightness of the garment fabric.
// Dark fabrics need a white underbase and carry a surcharge.
type ColorClass string

const (
	ColorClassLight ColorClass = "light"
	ColorClassDark  ColorClass = "dark"
)

func (c ColorClass) IsValid() bool {
	return c == ColorClassLight || c == ColorClassDark
}

func (c ColorClass) IsDark() bool {
	return c == ColorClassDark
}

// Label is the human form used on estimate breakdowns.
func (c ColorClass) Label() string {
	switch c {
	case ColorClassDark:
		return "Dark"
	case ColorClassLight:
		return "Light"
	default:
		return ""
	}
}
