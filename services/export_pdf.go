package services

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// GenerateOfferPDF creates the price-offer document from assembled offer
// data using maroto/v2. It returns the raw PDF bytes or an error.
func GenerateOfferPDF(offer *OfferData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).
		WithTopMargin(12).
		WithRightMargin(15).
		WithPageNumber(props.PageNumber{
			Pattern: "Strana {current} z {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addOfferHeader(m, offer)
	addCustomerBlock(m, offer)
	addPriceLines(m, offer)
	addSummaryTable(m, offer)
	addBreakdownTable(m, offer)
	addStaticTexts(m, offer)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate offer PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

// addOfferHeader adds the title, order number and date.
func addOfferHeader(m core.Maroto, offer *OfferData) {
	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(
				text.New("Cenová nabídka – "+offer.ServiceTitle, props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
	)

	reference := offer.OrderID
	if reference == "" {
		reference = "nezávazná kalkulace"
	}
	m.AddRows(
		row.New(8).Add(
			col.New(6).Add(
				text.New(fmt.Sprintf("Číslo poptávky: %s", reference), props.Text{
					Size:  9,
					Align: align.Left,
					Color: &props.Color{Red: 80, Green: 80, Blue: 80},
				}),
			),
			col.New(6).Add(
				text.New(fmt.Sprintf("Datum: %s", offer.CreatedDate), props.Text{
					Size:  9,
					Align: align.Right,
					Color: &props.Color{Red: 80, Green: 80, Blue: 80},
				}),
			),
		),
	)

	m.AddRows(row.New(4))
}

// addCustomerBlock adds the customer identity when any of it is present.
func addCustomerBlock(m core.Maroto, offer *OfferData) {
	c := offer.Customer
	name := c.FirstName
	if c.LastName != "" {
		if name != "" {
			name += " "
		}
		name += c.LastName
	}
	if name == "" && c.Email == "" {
		return
	}

	lines := []string{}
	if name != "" {
		lines = append(lines, name)
	}
	if c.Email != "" {
		lines = append(lines, c.Email)
	}
	if c.Phone != "" {
		lines = append(lines, c.Phone)
	}

	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(
				text.New("Zákazník", props.Text{Size: 10, Style: fontstyle.Bold}),
			),
		),
	)
	for _, line := range lines {
		m.AddRows(
			row.New(5).Add(
				col.New(12).Add(
					text.New(line, props.Text{Size: 9}),
				),
			),
		)
	}
	m.AddRows(row.New(4))
}

// addPriceLines adds the headline prices, total last and emphasized.
func addPriceLines(m core.Maroto, offer *OfferData) {
	lineBg := &props.Color{Red: 240, Green: 240, Blue: 240}
	lineCell := &props.Cell{BackgroundColor: lineBg}

	for _, line := range offer.PriceLines {
		m.AddRows(
			row.New(8).Add(
				col.New(8).Add(
					text.New(line.Label, props.Text{Size: 10, Align: align.Left}),
				).WithStyle(lineCell),
				col.New(4).Add(
					text.New(FormatCZK(line.Amount), props.Text{
						Size:  10,
						Style: fontstyle.Bold,
						Align: align.Right,
					}),
				).WithStyle(lineCell),
			),
		)
	}
	m.AddRows(row.New(6))
}

// addSummaryTable adds the question/answer summary of the submitted form.
func addSummaryTable(m core.Maroto, offer *OfferData) {
	if len(offer.SummaryItems) == 0 {
		return
	}

	addTableTitle(m, "Zadání")
	for _, item := range offer.SummaryItems {
		m.AddRows(
			row.New(6).Add(
				col.New(6).Add(
					text.New(item.Label, props.Text{Size: 8, Align: align.Left, Color: &props.Color{Red: 80, Green: 80, Blue: 80}}),
				),
				col.New(6).Add(
					text.New(item.Value, props.Text{Size: 8, Align: align.Right}),
				),
			),
		)
	}
	m.AddRows(row.New(4))
}

// addBreakdownTable lists every applied coefficient and fixed addon.
func addBreakdownTable(m core.Maroto, offer *OfferData) {
	details := offer.Breakdown
	if details == nil || len(details.AppliedCoefficients) == 0 {
		return
	}

	addTableTitle(m, "Vliv na cenu")
	for _, ac := range details.AppliedCoefficients {
		var impact string
		if ac.Coefficient == 1 {
			// fixed addon: impact is a CZK amount
			impact = "+" + FormatCZK(ac.Impact)
		} else {
			impact = fmt.Sprintf("%+.0f %%", ac.Impact)
		}
		m.AddRows(
			row.New(6).Add(
				col.New(8).Add(
					text.New(ac.Label, props.Text{Size: 8, Align: align.Left}),
				),
				col.New(4).Add(
					text.New(impact, props.Text{Size: 8, Align: align.Right}),
				),
			),
		)
	}
	m.AddRows(row.New(4))
}

// addStaticTexts adds the included-services listing and the conditions.
func addStaticTexts(m core.Maroto, offer *OfferData) {
	for _, category := range offer.CommonServices {
		addTableTitle(m, category.Title)
		for _, item := range category.Items {
			m.AddRows(
				row.New(5).Add(
					col.New(12).Add(
						text.New("• "+item, props.Text{Size: 8, Align: align.Left}),
					),
				),
			)
		}
		m.AddRows(row.New(3))
	}

	if len(offer.Conditions) > 0 {
		addTableTitle(m, "Podmínky nabídky")
		for _, condition := range offer.Conditions {
			m.AddRows(
				row.New(5).Add(
					col.New(12).Add(
						text.New("• "+condition, props.Text{Size: 7, Align: align.Left, Color: &props.Color{Red: 100, Green: 100, Blue: 100}}),
					),
				),
			)
		}
	}
}

func addTableTitle(m core.Maroto, title string) {
	headerBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	m.AddRows(
		row.New(7).Add(
			col.New(12).Add(
				text.New(title, props.Text{
					Size:  9,
					Style: fontstyle.Bold,
					Align: align.Left,
					Color: &props.Color{Red: 255, Green: 255, Blue: 255},
				}),
			).WithStyle(&props.Cell{BackgroundColor: headerBg}),
		),
	)
}
