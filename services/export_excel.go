package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// GenerateOfferExcel creates a back-office spreadsheet of the offer: price
// lines, the submitted answers and the full breakdown. Returns the file
// contents as a byte slice.
func GenerateOfferExcel(offer *OfferData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	// Sheet name (max 31 chars).
	sheetName := offer.ServiceTitle
	if len(sheetName) > 31 {
		sheetName = sheetName[:31]
	}
	if sheetName == "" {
		sheetName = "Nabídka"
	}

	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	widths := []float64{42, 24, 16}
	for i, colRef := range []string{"A", "B", "C"} {
		if err := f.SetColWidth(sheetName, colRef, colRef, widths[i]); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", colRef, err)
		}
	}

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 16},
	})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"DDDDDD"}},
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}
	boldStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
	})
	if err != nil {
		return nil, fmt.Errorf("create bold style: %w", err)
	}

	rowNum := 1
	setCell := func(colRef string, value any) {
		cell := fmt.Sprintf("%s%d", colRef, rowNum)
		if err == nil {
			err = f.SetCellValue(sheetName, cell, value)
		}
	}
	setStyle := func(colRef string, style int) {
		cell := fmt.Sprintf("%s%d", colRef, rowNum)
		if err == nil {
			err = f.SetCellStyle(sheetName, cell, cell, style)
		}
	}

	// ── Header ──────────────────────────────────────────────────────────
	setCell("A", "Cenová nabídka – "+offer.ServiceTitle)
	setStyle("A", titleStyle)
	rowNum++

	if offer.OrderID != "" {
		setCell("A", "Číslo poptávky")
		setCell("B", offer.OrderID)
		rowNum++
	}
	setCell("A", "Datum")
	setCell("B", offer.CreatedDate)
	rowNum += 2

	// ── Prices ──────────────────────────────────────────────────────────
	setCell("A", "Položka")
	setCell("B", "Cena")
	setStyle("A", headerStyle)
	setStyle("B", headerStyle)
	rowNum++
	for _, line := range offer.PriceLines {
		setCell("A", line.Label)
		setCell("B", line.Amount)
		setStyle("B", boldStyle)
		rowNum++
	}
	rowNum++

	// ── Submitted answers ───────────────────────────────────────────────
	if len(offer.SummaryItems) > 0 {
		setCell("A", "Zadání")
		setCell("B", "Odpověď")
		setStyle("A", headerStyle)
		setStyle("B", headerStyle)
		rowNum++
		for _, item := range offer.SummaryItems {
			setCell("A", item.Label)
			setCell("B", item.Value)
			rowNum++
		}
		rowNum++
	}

	// ── Breakdown ───────────────────────────────────────────────────────
	if details := offer.Breakdown; details != nil && len(details.AppliedCoefficients) > 0 {
		setCell("A", "Vliv na cenu")
		setCell("B", "Koeficient")
		setCell("C", "Dopad")
		setStyle("A", headerStyle)
		setStyle("B", headerStyle)
		setStyle("C", headerStyle)
		rowNum++
		for _, ac := range details.AppliedCoefficients {
			setCell("A", ac.Label)
			setCell("B", ac.Coefficient)
			if ac.Coefficient == 1 {
				setCell("C", FormatCZK(ac.Impact))
			} else {
				setCell("C", fmt.Sprintf("%+.0f %%", ac.Impact))
			}
			rowNum++
		}
		setCell("A", "Výsledný koeficient")
		setCell("B", details.FinalCoefficient)
		setStyle("A", boldStyle)
		setStyle("B", boldStyle)
		rowNum++
	}

	if err != nil {
		return nil, fmt.Errorf("write offer sheet: %w", err)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel file: %w", err)
	}
	return buf.Bytes(), nil
}
