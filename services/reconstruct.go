package services

import (
	"fmt"

	"github.com/matyldajandova/handyhands-calculator/forms"
)

// ReconstructDetails rebuilds the full price breakdown from stored form
// answers. It runs the exact attribution walk Calculate uses, so a result
// restored from a hash token ends up with the same applied coefficients, in
// the same order, as the original calculation.
func ReconstructDetails(data forms.FormData, config *forms.FormConfig) *CalculationDetails {
	return attributeCoefficients(data, config)
}

// EnsureCalculationDetails returns calcData unchanged when it already
// carries real details, and otherwise rebuilds them from the stored form
// data. Missing form data is the one hard failure in the core: without it a
// breakdown cannot be reconstructed, and fabricating one would silently show
// wrong numbers.
func EnsureCalculationDetails(calcData *CalculationData, config *forms.FormConfig) (*CalculationData, error) {
	if calcData == nil {
		return nil, fmt.Errorf("ensure calculation details: no calculation data")
	}

	details := calcData.CalculationDetails
	if details != nil && !details.Pending && len(details.AppliedCoefficients) > 0 {
		return calcData, nil
	}

	if calcData.FormData == nil {
		return nil, fmt.Errorf("ensure calculation details: form data missing, cannot reconstruct breakdown for %q", config.ID)
	}

	restored := *calcData
	restored.CalculationDetails = ReconstructDetails(calcData.FormData, config)
	return &restored, nil
}
