package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"github.com/matyldajandova/handyhands-calculator/services"
)

// poptavkaRequest is the state transition from quote to binding order
// request: the current hash plus whatever customer/poptávka fields changed.
type poptavkaRequest struct {
	Hash     string                 `json:"hash"`
	Customer services.Customer      `json:"customer"`
	Poptavka services.PoptavkaState `json:"poptavka"`
}

type poptavkaResponse struct {
	Hash    string `json:"hash"`
	OrderID string `json:"orderId"`
}

// HandlePoptavkaSubmit returns a handler that merges customer identity into
// the quoting state, assigns an order number and re-encodes the hash. The
// stored per-client state is updated as a side effect; its failure is logged
// but never blocks the already-computed hash state.
func HandlePoptavkaSubmit(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var req poptavkaRequest
		if err := e.BindBody(&req); err != nil {
			return apiError(e, http.StatusBadRequest, "Invalid request body")
		}

		data := services.DecodePoptavkaHash(req.Hash)
		if data == nil {
			return apiError(e, http.StatusNotFound, "No state")
		}
		if data.CalculationData == nil {
			return apiError(e, http.StatusBadRequest, "Hash carries no calculation")
		}

		if data.OrderID == "" {
			data.OrderID = services.GenerateOrderID(time.Now())
		}
		data.CalculationData.OrderID = data.OrderID

		mergeCustomerIntoFormData(data, req)

		clientID := GetClientID(e.Request)
		if clientID != "" {
			if err := services.CheckAndClearNotesForNewOrder(app, clientID, data.OrderID); err != nil {
				log.Printf("poptavka: could not check order state for %s: %v", clientID, err)
			}
			if err := services.UpdateCustomer(app, clientID, req.Customer); err != nil {
				log.Printf("poptavka: could not store customer for %s: %v", clientID, err)
			}
			if err := services.UpdatePoptavka(app, clientID, req.Poptavka); err != nil {
				log.Printf("poptavka: could not store poptavka state for %s: %v", clientID, err)
			}
		}

		token, err := services.EncodePoptavkaHash(data)
		if err != nil {
			log.Printf("poptavka: could not encode hash: %v", err)
			return apiError(e, http.StatusInternalServerError, "Could not encode state")
		}

		return e.JSON(http.StatusOK, poptavkaResponse{
			Hash:    token,
			OrderID: data.OrderID,
		})
	}
}

// mergeCustomerIntoFormData writes the submitted customer and poptávka
// fields into the form data carried by the hash, skipping empties so a
// partial update never erases what the customer typed earlier.
func mergeCustomerIntoFormData(data *services.PoptavkaHashData, req poptavkaRequest) {
	formData := data.CalculationData.FormData
	if formData == nil {
		formData = map[string]any{}
		data.CalculationData.FormData = formData
	}

	set := func(key, value string) {
		if value != "" {
			formData[key] = value
		}
	}
	set("firstName", req.Customer.FirstName)
	set("lastName", req.Customer.LastName)
	set("email", req.Customer.Email)
	set("phone", req.Customer.Phone)
	set("address", req.Poptavka.Address)
	set("notes", req.Poptavka.Notes)
	set("serviceStartDate", req.Poptavka.ServiceStartDate)
	if req.Poptavka.CompanyName != "" || req.Poptavka.CompanyID != "" {
		formData["isCompany"] = true
		set("companyName", req.Poptavka.CompanyName)
		set("companyId", req.Poptavka.CompanyID)
	}
}
