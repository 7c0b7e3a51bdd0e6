package services

import (
	"math"

	"github.com/matyldajandova/handyhands-calculator/forms"
)

// AppliedCoefficient is one line of the price breakdown. Coefficient entries
// carry the multiplier and its percentage impact; fixed-addon entries keep
// Coefficient at exactly 1 and put the CZK amount in Impact, which is how
// downstream rendering tells the two apart.
type AppliedCoefficient struct {
	Field       string  `json:"field"`
	Label       string  `json:"label"`
	Coefficient float64 `json:"coefficient"`
	Impact      float64 `json:"impact"`
}

// CalculationDetails is the full attribution of a computed price. It is
// fully derivable from (formData, config, basePrice) — a cache, not a source
// of truth. Pending marks a placeholder restored from a hash token that must
// be reconstructed before display.
type CalculationDetails struct {
	BasePrice           float64              `json:"basePrice"`
	AppliedCoefficients []AppliedCoefficient `json:"appliedCoefficients"`
	FinalCoefficient    float64              `json:"finalCoefficient"`

	Pending bool `json:"-"`
}

// CalculationResult is the outcome of one pricing run.
type CalculationResult struct {
	RegularCleaningPrice     float64 `json:"regularCleaningPrice"`
	GeneralCleaningPrice     float64 `json:"generalCleaningPrice,omitempty"`
	GeneralCleaningFrequency string  `json:"generalCleaningFrequency,omitempty"`
	TotalMonthlyPrice        float64 `json:"totalMonthlyPrice,omitempty"`
	HourlyRate               float64 `json:"hourlyRate,omitempty"`
	WinterMaintenanceFee     float64 `json:"winterMaintenanceFee,omitempty"`
	OrderID                  string  `json:"orderId,omitempty"`

	CalculationDetails *CalculationDetails `json:"calculationDetails,omitempty"`
}

// TotalPrice returns the headline price for the service: the hourly rate for
// hourly-billed services, the monthly total otherwise.
func (r *CalculationResult) TotalPrice() float64 {
	if r.HourlyRate > 0 {
		return r.HourlyRate
	}
	return r.TotalMonthlyPrice
}

// generalCleaningFields routes residential-building answers to the general
// cleaning price track only. These describe work done during the periodic
// deep clean; folding them into the monthly coefficient would double-count.
var generalCleaningFields = map[string]bool{
	"windowsPerFloor":         true,
	"floorsWithWindows":       true,
	"windowType":              true,
	"generalCleaningType":     true,
	"basementCleaningDetails": true,
	"basementCleaning":        true,
}

// spaceSizeField is the room/space selector on hourly services. Its
// coefficients encode minimum hours of work, not a rate multiplier.
const spaceSizeField = "spaceSize"

const (
	winterMaintenanceField  = "extraServices"
	winterMaintenanceOption = "winter-maintenance"
)

// Calculate computes the price for a set of submitted answers against a
// service config. It walks the config's sections in order, so the breakdown
// is deterministic and identical to what the reconstructor later rebuilds.
// Unknown fields and options degrade to neutral values and never error;
// a config without a base price is a programmer error, not a runtime case.
func Calculate(data forms.FormData, config *forms.FormConfig) *CalculationResult {
	details := attributeCoefficients(data, config)

	result := &CalculationResult{
		CalculationDetails: details,
	}

	var addonSum float64
	for _, ac := range details.AppliedCoefficients {
		if ac.Coefficient == 1 {
			addonSum += ac.Impact
		}
	}

	if config.Hourly {
		result.HourlyRate = math.Round(config.BasePrice*details.FinalCoefficient) + addonSum
	} else {
		regular := RoundToTens(config.BasePrice * details.FinalCoefficient)
		result.RegularCleaningPrice = regular
		result.TotalMonthlyPrice = regular + addonSum
	}

	applyGeneralCleaning(result, data, config)
	applyWinterMaintenance(result, data, config)

	return result
}

// attributeCoefficients runs the coefficient/addon walk shared by Calculate
// and the reconstructor. Exclusion rules are applied here so both paths
// agree field by field.
func attributeCoefficients(data forms.FormData, config *forms.FormConfig) *CalculationDetails {
	details := &CalculationDetails{
		BasePrice:           config.BasePrice,
		AppliedCoefficients: []AppliedCoefficient{},
		FinalCoefficient:    1.0,
	}

	for si := range config.Sections {
		section := &config.Sections[si]
		for fi := range section.Fields {
			walkField(data, config, &section.Fields[fi], section.Title, details)
		}
	}

	return details
}

func walkField(data forms.FormData, config *forms.FormConfig, field *forms.Field, sectionTitle string, details *CalculationDetails) {
	if field.Type == forms.FieldConditional {
		for ci := range field.Children {
			walkField(data, config, &field.Children[ci], sectionTitle, details)
		}
		return
	}

	value, answered := data[field.ID]
	if !answered || forms.IsEmptyValue(value) {
		return
	}
	// Booleans are presentation flags, never price drivers.
	if _, isBool := value.(bool); isBool {
		return
	}

	if excludedFromRegular(config, field.ID) {
		return
	}

	label := field.Label
	if label == "" {
		label = sectionTitle
	}

	coefficient := forms.Coefficient(field, value)
	if excludedFromHourlyRate(config, field.ID) {
		coefficient = 1.0
	}
	if coefficient != 1.0 {
		details.FinalCoefficient *= coefficient
		details.AppliedCoefficients = append(details.AppliedCoefficients, AppliedCoefficient{
			Field:       field.ID,
			Label:       label,
			Coefficient: coefficient,
			Impact:      (coefficient - 1) * 100,
		})
	}

	if addon := forms.FixedAddon(field, value); addon > 0 {
		details.AppliedCoefficients = append(details.AppliedCoefficients, AppliedCoefficient{
			Field:       field.ID,
			Label:       label,
			Coefficient: 1,
			Impact:      addon,
		})
	}
}

func excludedFromRegular(config *forms.FormConfig, fieldID string) bool {
	return config.ID == forms.ServiceResidentialBuilding && generalCleaningFields[fieldID]
}

func excludedFromHourlyRate(config *forms.FormConfig, fieldID string) bool {
	return config.Hourly && fieldID == spaceSizeField
}

// applyGeneralCleaning computes the separately priced periodic deep-clean
// track from the fields excluded from the regular price.
func applyGeneralCleaning(result *CalculationResult, data forms.FormData, config *forms.FormConfig) {
	if config.GeneralCleaningBasePrice == 0 {
		return
	}

	generalType, ok := data.StringValue("generalCleaningType")
	if !ok || generalType == "" {
		return
	}

	coefficient := 1.0
	for fieldID := range generalCleaningFields {
		value, answered := data[fieldID]
		if !answered || forms.IsEmptyValue(value) {
			continue
		}
		field := forms.FieldByID(config, fieldID)
		coefficient *= forms.Coefficient(field, value)
	}

	result.GeneralCleaningPrice = RoundToTens(config.GeneralCleaningBasePrice * coefficient)
	if freq, ok := data.StringValue("generalCleaningFrequency"); ok {
		result.GeneralCleaningFrequency = freq
	}
}

// applyWinterMaintenance adds the flat winter fee track when the option is
// ticked. The fee is a dedicated constant, never folded into the monthly
// price.
func applyWinterMaintenance(result *CalculationResult, data forms.FormData, config *forms.FormConfig) {
	if config.WinterMaintenanceFee == 0 {
		return
	}

	selected, ok := data.StringsValue(winterMaintenanceField)
	if !ok {
		return
	}
	for _, v := range selected {
		if v == winterMaintenanceOption {
			result.WinterMaintenanceFee = config.WinterMaintenanceFee
			return
		}
	}
}
