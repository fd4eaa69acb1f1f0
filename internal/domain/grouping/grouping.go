// Package grouping buckets line items for the estimate breakdown.
package grouping

import (
	"strconv"

	"screenprint_estimator/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// Key identifies a bucket. Items are grouped only when every field matches.
type Key struct {
	GarmentName    string
	PrintLocations int
	ColorCount     int
	IsDark         bool
	Brand          string
}

func KeyOf(item entities.LineItem) Key {
	return Key{
		GarmentName:    item.GarmentName,
		PrintLocations: item.PrintLocations,
		ColorCount:     item.ColorCount,
		IsDark:         item.IsDark,
		Brand:          item.Brand,
	}
}

// Group is one labeled bucket of line items.
type Group struct {
	Label string
	Key   Key
	Items []entities.LineItem
}

// Subtotal sums the item totals in the bucket.
func (g Group) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, it := range g.Items {
		sum = sum.Add(it.Total)
	}
	return sum
}

func (g Group) Quantity() int {
	n := 0
	for _, it := range g.Items {
		n += it.Quantity
	}
	return n
}

// GroupLineItems buckets items by Key, keeping first-appearance order for both
// buckets and items. The first bucket of a garment is labeled with the bare
// garment name; later buckets of the same garment get "2", "3", ... appended.
func GroupLineItems(items []entities.LineItem) []Group {
	var groups []Group
	index := make(map[Key]int)
	perGarment := make(map[string]int)

	for _, it := range items {
		k := KeyOf(it)
		if i, ok := index[k]; ok {
			groups[i].Items = append(groups[i].Items, it)
			continue
		}
		perGarment[k.GarmentName]++
		label := k.GarmentName
		if n := perGarment[k.GarmentName]; n > 1 {
			label += strconv.Itoa(n)
		}
		index[k] = len(groups)
		groups = append(groups, Group{Label: label, Key: k, Items: []entities.LineItem{it}})
	}
	return groups
}
