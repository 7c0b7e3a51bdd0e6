package handlers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase/core"

	"github.com/matyldajandova/handyhands-calculator/forms"
	"github.com/matyldajandova/handyhands-calculator/services"
)

// offerFromRequest decodes the hash token of an export request and builds
// the offer data. It returns a nil offer after writing the error response
// when anything is off.
func offerFromRequest(e *core.RequestEvent, registry *forms.Registry) (*services.OfferData, error) {
	token := e.Request.URL.Query().Get("hash")
	data := services.DecodePoptavkaHash(token)
	if data == nil {
		return nil, apiError(e, http.StatusNotFound, "No state")
	}

	config := registry.Get(data.ServiceType)
	if config == nil {
		return nil, apiError(e, http.StatusNotFound, "Unknown service type")
	}

	offer, err := services.BuildOfferData(data, config, time.Now())
	if err != nil {
		log.Printf("offer_export: could not build offer data: %v", err)
		return nil, apiError(e, http.StatusUnprocessableEntity, "Offer cannot be built from this state")
	}
	return offer, nil
}

// HandleOfferPDF returns a handler that renders the price-offer PDF for a
// hash token.
func HandleOfferPDF(registry *forms.Registry) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		offer, errResp := offerFromRequest(e, registry)
		if offer == nil {
			return errResp
		}

		pdfBytes, err := services.GenerateOfferPDF(offer)
		if err != nil {
			log.Printf("offer_export: could not generate PDF: %v", err)
			return apiError(e, http.StatusInternalServerError, "Could not generate PDF")
		}

		filename := offerFilename(offer, "pdf")
		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		return e.Blob(http.StatusOK, "application/pdf", pdfBytes)
	}
}

// HandleOfferExcel returns a handler that renders the back-office breakdown
// spreadsheet for a hash token.
func HandleOfferExcel(registry *forms.Registry) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		offer, errResp := offerFromRequest(e, registry)
		if offer == nil {
			return errResp
		}

		excelBytes, err := services.GenerateOfferExcel(offer)
		if err != nil {
			log.Printf("offer_export: could not generate spreadsheet: %v", err)
			return apiError(e, http.StatusInternalServerError, "Could not generate spreadsheet")
		}

		const contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
		filename := offerFilename(offer, "xlsx")
		e.Response.Header().Set("Content-Type", contentType)
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		return e.Blob(http.StatusOK, contentType, excelBytes)
	}
}

func offerFilename(offer *services.OfferData, ext string) string {
	if offer.OrderID != "" {
		return fmt.Sprintf("nabidka-%s.%s", offer.OrderID, ext)
	}
	return fmt.Sprintf("nabidka-%s.%s", offer.ServiceType, ext)
}
