package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/matyldajandova/handyhands-calculator/forms"
	"github.com/matyldajandova/handyhands-calculator/testhelpers"
)

func TestHandleFormList(t *testing.T) {
	registry := testhelpers.TestRegistry(t)
	handler := HandleFormList(registry)

	req := httptest.NewRequest(http.MethodGet, "/api/forms", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(nil, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body struct {
		Forms []struct {
			ID        string  `json:"id"`
			Title     string  `json:"title"`
			BasePrice float64 `json:"basePrice"`
		} `json:"forms"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(body.Forms) != 5 {
		t.Fatalf("expected 5 services, got %d", len(body.Forms))
	}
	if body.Forms[0].Title == "" || body.Forms[0].BasePrice <= 0 {
		t.Errorf("incomplete catalog entry: %+v", body.Forms[0])
	}
}

func TestHandleFormConfig(t *testing.T) {
	registry := testhelpers.TestRegistry(t)
	handler := HandleFormConfig(registry)

	req := httptest.NewRequest(http.MethodGet, "/api/forms/home-cleaning", nil)
	req.SetPathValue("service", forms.ServiceHomeCleaning)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(nil, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var config forms.FormConfig
	if err := json.Unmarshal(rec.Body.Bytes(), &config); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if config.ID != forms.ServiceHomeCleaning || len(config.Sections) == 0 {
		t.Errorf("unexpected config: %+v", config)
	}
}

func TestHandleFormConfig_Unknown(t *testing.T) {
	registry := testhelpers.TestRegistry(t)
	handler := HandleFormConfig(registry)

	req := httptest.NewRequest(http.MethodGet, "/api/forms/dog-walking", nil)
	req.SetPathValue("service", "dog-walking")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(nil, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}
