package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/matyldajandova/handyhands-calculator/forms"
	"github.com/matyldajandova/handyhands-calculator/services"
	"github.com/matyldajandova/handyhands-calculator/testhelpers"
)

func TestHandleOfferPDF(t *testing.T) {
	registry := testhelpers.TestRegistry(t)
	handler := HandleOfferPDF(registry)

	token := encodeTestToken(t, registry, forms.ServiceHomeCleaning, forms.FormData{
		"cleaningFrequency": "weekly",
		"apartmentSize":     "3kk",
		"firstName":         "Matylda",
		"email":             "matylda@example.com",
	})

	req := httptest.NewRequest(http.MethodGet, "/api/offer/pdf?hash="+url.QueryEscape(token), nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(nil, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if got := rec.Header().Get("Content-Type"); got != "application/pdf" {
		t.Errorf("Content-Type = %q", got)
	}
	if disp := rec.Header().Get("Content-Disposition"); !strings.Contains(disp, "nabidka-") {
		t.Errorf("Content-Disposition = %q", disp)
	}
	if body := rec.Body.Bytes(); len(body) < 5 || string(body[:5]) != "%PDF-" {
		t.Error("response is not a PDF")
	}
}

func TestHandleOfferExcel(t *testing.T) {
	registry := testhelpers.TestRegistry(t)
	handler := HandleOfferExcel(registry)

	token := encodeTestToken(t, registry, forms.ServiceOfficeCleaning, forms.FormData{
		"cleaningFrequency": "daily",
		"officeArea":        "100-250",
	})

	req := httptest.NewRequest(http.MethodGet, "/api/offer/xlsx?hash="+url.QueryEscape(token), nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(nil, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if disp := rec.Header().Get("Content-Disposition"); !strings.Contains(disp, ".xlsx") {
		t.Errorf("Content-Disposition = %q", disp)
	}
	if _, err := excelize.OpenReader(strings.NewReader(rec.Body.String())); err != nil {
		t.Errorf("response is not a valid xlsx: %v", err)
	}
}

func TestHandleOfferPDF_BadToken(t *testing.T) {
	registry := testhelpers.TestRegistry(t)
	handler := HandleOfferPDF(registry)

	req := httptest.NewRequest(http.MethodGet, "/api/offer/pdf?hash=garbage", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(nil, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

// A token whose service type is not served anymore is a 404, not a crash.
func TestHandleOfferPDF_UnknownService(t *testing.T) {
	registry := testhelpers.TestRegistry(t)
	handler := HandleOfferPDF(registry)

	token := encodeTestToken(t, registry, forms.ServiceHomeCleaning, forms.FormData{
		"cleaningFrequency": "weekly",
	})
	// re-encode under a service type the registry does not know
	decoded := services.DecodePoptavkaHash(token)
	if decoded == nil {
		t.Fatal("test token does not decode")
	}
	decoded.ServiceType = "chimney-sweeping"
	retoken, err := services.EncodePoptavkaHash(decoded)
	if err != nil {
		t.Fatalf("re-encode: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/offer/pdf?hash="+url.QueryEscape(retoken), nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(nil, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}
