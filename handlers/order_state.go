package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"github.com/matyldajandova/handyhands-calculator/services"
)

// HandleOrderStateGet returns a handler serving the remembered
// customer/poptávka state for the requesting client.
func HandleOrderStateGet(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		clientID := GetClientID(e.Request)
		if clientID == "" {
			return apiError(e, http.StatusBadRequest, "Missing client id")
		}

		state, err := services.GetOrderState(app, clientID)
		if err != nil {
			log.Printf("order_state: could not load state for %s: %v", clientID, err)
			return apiError(e, http.StatusInternalServerError, "Could not load state")
		}
		return e.JSON(http.StatusOK, state)
	}
}

// HandleOrderStateUpdate returns a handler upserting the remembered state.
// The body may carry either part; both are written as submitted.
func HandleOrderStateUpdate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		clientID := GetClientID(e.Request)
		if clientID == "" {
			return apiError(e, http.StatusBadRequest, "Missing client id")
		}

		var state services.OrderState
		if err := e.BindBody(&state); err != nil {
			return apiError(e, http.StatusBadRequest, "Invalid request body")
		}

		if err := services.UpdateCustomer(app, clientID, state.Customer); err != nil {
			log.Printf("order_state: could not update customer for %s: %v", clientID, err)
			return apiError(e, http.StatusInternalServerError, "Could not store state")
		}
		if err := services.UpdatePoptavka(app, clientID, state.Poptavka); err != nil {
			log.Printf("order_state: could not update poptavka for %s: %v", clientID, err)
			return apiError(e, http.StatusInternalServerError, "Could not store state")
		}

		updated, err := services.GetOrderState(app, clientID)
		if err != nil {
			log.Printf("order_state: could not reload state for %s: %v", clientID, err)
			return apiError(e, http.StatusInternalServerError, "Could not load state")
		}
		return e.JSON(http.StatusOK, updated)
	}
}
