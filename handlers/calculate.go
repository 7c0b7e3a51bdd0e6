package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"github.com/matyldajandova/handyhands-calculator/forms"
	"github.com/matyldajandova/handyhands-calculator/services"
)

// calculateResponse carries the computed result plus the hash token the
// frontend embeds in the URL.
type calculateResponse struct {
	Result *services.CalculationResult `json:"result"`
	Hash   string                      `json:"hash"`
}

// HandleCalculate returns a handler that prices submitted form answers for
// a service type and encodes the full quoting state into a hash token.
func HandleCalculate(registry *forms.Registry) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		serviceType := e.Request.PathValue("service")
		config := registry.Get(serviceType)
		if config == nil {
			return apiError(e, http.StatusNotFound, "Unknown service type")
		}

		var formData forms.FormData
		if err := json.NewDecoder(e.Request.Body).Decode(&formData); err != nil {
			return apiError(e, http.StatusBadRequest, "Invalid form data")
		}

		result := services.Calculate(formData, config)

		hashData := &services.PoptavkaHashData{
			ServiceType:  serviceType,
			ServiceTitle: config.Title,
			TotalPrice:   result.TotalPrice(),
			CalculationData: &services.CalculationData{
				CalculationResult: *result,
				FormData:          formData,
			},
		}

		token, err := services.EncodePoptavkaHash(hashData)
		if err != nil {
			log.Printf("calculate: could not encode hash for %s: %v", serviceType, err)
			return apiError(e, http.StatusInternalServerError, "Could not encode state")
		}

		return e.JSON(http.StatusOK, calculateResponse{
			Result: result,
			Hash:   token,
		})
	}
}
