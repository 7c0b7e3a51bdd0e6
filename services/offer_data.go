package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/matyldajandova/handyhands-calculator/forms"
)

// SummaryItem is one question/answer pair of the offer summary.
type SummaryItem struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// PriceLine is one priced row of the offer.
type PriceLine struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

// CustomerInfo is the customer identity rendered on the offer.
type CustomerInfo struct {
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// OfferData is the flattened shape handed to the document renderers:
// headline prices, customer, summary Q&A pairs, the reconstructed breakdown
// and the config's static texts.
type OfferData struct {
	ServiceType  string              `json:"serviceType"`
	ServiceTitle string              `json:"serviceTitle"`
	OrderID      string              `json:"orderId,omitempty"`
	CreatedDate  string              `json:"createdDate"`
	Currency     string              `json:"currency"`
	Customer     CustomerInfo        `json:"customer"`
	PriceLines   []PriceLine         `json:"priceLines"`
	TotalPrice   float64             `json:"totalPrice"`
	Hourly       bool                `json:"hourly"`
	SummaryItems []SummaryItem       `json:"summaryItems"`
	Breakdown    *CalculationDetails `json:"breakdown"`

	Conditions     []string                `json:"conditions,omitempty"`
	CommonServices []forms.ServiceCategory `json:"commonServices,omitempty"`
}

// generalFrequencyLabels maps the stored frequency value to offer wording.
var generalFrequencyLabels = map[string]string{
	"twice-yearly": "2x ročně",
	"yearly":       "1x ročně",
}

// BuildOfferData assembles everything the PDF/XLSX renderers need from a
// decoded hash payload. The breakdown is always reconstructed through
// EnsureCalculationDetails, so a payload fresh from a token never leaks its
// placeholder details into a document.
func BuildOfferData(hash *PoptavkaHashData, config *forms.FormConfig, now time.Time) (*OfferData, error) {
	if hash == nil {
		return nil, fmt.Errorf("build offer: no hash data")
	}
	if config == nil {
		return nil, fmt.Errorf("build offer: unknown service type %q", hash.ServiceType)
	}

	calcData, err := EnsureCalculationDetails(hash.CalculationData, config)
	if err != nil {
		return nil, fmt.Errorf("build offer: %w", err)
	}

	offer := &OfferData{
		ServiceType:  hash.ServiceType,
		ServiceTitle: config.Title,
		OrderID:      hash.OrderID,
		CreatedDate:  now.Format("2.1.2006"),
		Currency:     hash.Currency,
		Hourly:       config.Hourly,
		TotalPrice:   hash.TotalPrice,
		Customer:     customerFromFormData(calcData.FormData),
		SummaryItems: SummaryItems(calcData.FormData, config),
		Breakdown:    calcData.CalculationDetails,

		Conditions:     config.Conditions,
		CommonServices: config.CommonServices,
	}
	if offer.Currency == "" {
		offer.Currency = DefaultCurrency
	}
	if hash.ServiceTitle != "" {
		offer.ServiceTitle = hash.ServiceTitle
	}

	offer.PriceLines = priceLines(&calcData.CalculationResult, config)

	return offer, nil
}

func customerFromFormData(data forms.FormData) CustomerInfo {
	var c CustomerInfo
	c.FirstName, _ = data.StringValue("firstName")
	c.LastName, _ = data.StringValue("lastName")
	c.Email, _ = data.StringValue("email")
	c.Phone, _ = data.StringValue("phone")
	return c
}

func priceLines(result *CalculationResult, config *forms.FormConfig) []PriceLine {
	var lines []PriceLine
	if config.Hourly {
		lines = append(lines, PriceLine{Label: "Hodinová sazba", Amount: result.HourlyRate})
	} else {
		lines = append(lines, PriceLine{Label: "Pravidelný úklid (měsíčně)", Amount: result.TotalMonthlyPrice})
	}
	if result.GeneralCleaningPrice > 0 {
		label := "Generální úklid"
		if freq, ok := generalFrequencyLabels[result.GeneralCleaningFrequency]; ok {
			label += " (" + freq + ")"
		}
		lines = append(lines, PriceLine{Label: label, Amount: result.GeneralCleaningPrice})
	}
	if result.WinterMaintenanceFee > 0 {
		lines = append(lines, PriceLine{Label: "Zimní údržba (za zimní měsíc)", Amount: result.WinterMaintenanceFee})
	}
	return lines
}

// SummaryItems walks the config's sections in order and resolves every
// answered, visible field into a label/value pair. Conditional subtrees are
// skipped when their condition does not hold, so answers from a branch the
// customer backed out of never reach the offer.
func SummaryItems(data forms.FormData, config *forms.FormConfig) []SummaryItem {
	var items []SummaryItem
	for si := range config.Sections {
		section := &config.Sections[si]
		for fi := range section.Fields {
			items = appendFieldSummary(items, data, &section.Fields[fi], section.Title)
		}
	}
	return items
}

func appendFieldSummary(items []SummaryItem, data forms.FormData, field *forms.Field, sectionTitle string) []SummaryItem {
	switch field.Type {
	case forms.FieldConditional:
		if !field.Condition.Holds(data) {
			return items
		}
		for ci := range field.Children {
			items = appendFieldSummary(items, data, &field.Children[ci], sectionTitle)
		}
		return items
	case forms.FieldAlert:
		return items
	}

	value, answered := data[field.ID]
	if !answered || forms.IsEmptyValue(value) {
		return items
	}

	label := field.Label
	if label == "" {
		label = sectionTitle
	}

	var display string
	switch field.Type {
	case forms.FieldRadio, forms.FieldSelect:
		s, ok := value.(string)
		if !ok {
			s = fmt.Sprint(value)
		}
		display = forms.OptionLabel(field, s)
	case forms.FieldCheckbox:
		selected, _ := data.StringsValue(field.ID)
		labels := make([]string, 0, len(selected))
		for _, v := range selected {
			labels = append(labels, forms.OptionLabel(field, v))
		}
		display = strings.Join(labels, ", ")
	case forms.FieldInput:
		display = fmt.Sprint(value)
		if f, ok := value.(float64); ok {
			display = FormatNumber(f)
		}
		if field.Unit != "" {
			display += " " + field.Unit
		}
	case forms.FieldTextarea:
		display, _ = value.(string)
	default:
		display = fmt.Sprint(value)
	}

	if display == "" {
		return items
	}
	return append(items, SummaryItem{Label: label, Value: display})
}

// FormatNumber renders a float without a trailing ".0" for whole values.
func FormatNumber(f float64) string {
	if f == float64(int64(f)) {
		return fmt.Sprintf("%d", int64(f))
	}
	return fmt.Sprintf("%g", f)
}
