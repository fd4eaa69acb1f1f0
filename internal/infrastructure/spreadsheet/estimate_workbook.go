package spreadsheet

import (
	"fmt"
	"io"

	"screenprint_estimator/internal/domain/catalog"
	"screenprint_estimator/internal/domain/entities"
	"screenprint_estimator/internal/domain/grouping"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const (
	SheetName   = "Estimate"
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var lineHeaders = []string{
	"Group", "Garment", "Brand", "Color", "Locations", "Colors",
	"Quantity", "Unit Price", "Print Cost", "Line Total",
}

// Filename names the download for an estimate.
func Filename(e entities.Estimate) string {
	return fmt.Sprintf("estimate_%s_%s.xlsx", e.ID, e.CreatedAt.Format("20060102_1504"))
}

// WriteEstimateWorkbook renders e as a single-sheet workbook and writes it to w.
// The header block sits above one row per line item, grouped the same way as
// the estimate breakdown.
func WriteEstimateWorkbook(w io.Writer, e entities.Estimate) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	name := e.Name
	if name == "" {
		name = "Current estimate"
	}
	header := [][2]any{
		{"Estimate ID", e.ID},
		{"Name", name},
		{"Created At", e.CreatedAt.Format("2006-01-02 15:04")},
		{"Screen Fee", money(e.ScreenFee)},
		{"Total", money(e.Total)},
	}
	for i, kv := range header {
		row := i + 1
		if err := setRow(f, row, kv[0], kv[1]); err != nil {
			return err
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create style: %w", err)
	}
	numFmt := "0.00"
	moneyStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &numFmt})
	if err != nil {
		return fmt.Errorf("failed to create style: %w", err)
	}
	if err := f.SetCellStyle(SheetName, "A1", fmt.Sprintf("A%d", len(header)), bold); err != nil {
		return fmt.Errorf("failed to style header: %w", err)
	}
	if err := f.SetCellStyle(SheetName, "B4", "B5", moneyStyle); err != nil {
		return fmt.Errorf("failed to style totals: %w", err)
	}

	headerRow := len(header) + 2
	cols := make([]any, len(lineHeaders))
	for i, h := range lineHeaders {
		cols[i] = h
	}
	if err := setRow(f, headerRow, cols...); err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(lineHeaders), headerRow)
	if err != nil {
		return fmt.Errorf("failed to resolve cell: %w", err)
	}
	if err := f.SetCellStyle(SheetName, fmt.Sprintf("A%d", headerRow), last, bold); err != nil {
		return fmt.Errorf("failed to style line headers: %w", err)
	}

	row := headerRow + 1
	for _, g := range grouping.GroupLineItems(e.Parts) {
		for _, it := range g.Items {
			err := setRow(f, row,
				g.Label,
				it.GarmentName,
				it.Brand,
				it.ColorClass().Label(),
				it.PrintLocations,
				catalog.ColorCountLabel(it.ColorCount),
				it.Quantity,
				money(it.EffectiveUnitPrice()),
				money(it.PrintCost),
				money(it.Total),
			)
			if err != nil {
				return err
			}
			row++
		}
	}
	if row > headerRow+1 {
		if err := f.SetCellStyle(SheetName, fmt.Sprintf("H%d", headerRow+1), fmt.Sprintf("J%d", row-1), moneyStyle); err != nil {
			return fmt.Errorf("failed to style line amounts: %w", err)
		}
	}
	if err := f.SetColWidth(SheetName, "A", "C", 18); err != nil {
		return fmt.Errorf("failed to set column width: %w", err)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func setRow(f *excelize.File, row int, values ...any) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return fmt.Errorf("failed to resolve cell: %w", err)
		}
		if err := f.SetCellValue(SheetName, cell, v); err != nil {
			return fmt.Errorf("failed to set %s: %w", cell, err)
		}
	}
	return nil
}

func money(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}
