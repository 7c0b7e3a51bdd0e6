package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"github.com/matyldajandova/handyhands-calculator/forms"
	"github.com/matyldajandova/handyhands-calculator/services"
)

// HandleHashDecode returns a handler that decodes a hash token back into
// full quoting state. The calculation details are reconstructed before the
// response, so callers never see the placeholder breakdown.
func HandleHashDecode(registry *forms.Registry) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		token := e.Request.URL.Query().Get("hash")
		data := services.DecodePoptavkaHash(token)
		if data == nil {
			// invalid or foreign token: "no state", never a server error
			return apiError(e, http.StatusNotFound, "No state")
		}

		config := registry.Get(data.ServiceType)
		if config != nil && data.CalculationData != nil {
			restored, err := services.EnsureCalculationDetails(data.CalculationData, config)
			if err != nil {
				log.Printf("hash: could not reconstruct details for %s: %v", data.ServiceType, err)
			} else {
				data.CalculationData = restored
			}
		}

		return e.JSON(http.StatusOK, data)
	}
}
