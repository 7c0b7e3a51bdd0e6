package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/matyldajandova/handyhands-calculator/services"
	"github.com/matyldajandova/handyhands-calculator/testhelpers"
)

func TestHandleOrderStateGet(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestOrderState(t, app, "client-get")
	handler := HandleOrderStateGet(app)

	req := httptest.NewRequest(http.MethodGet, "/api/order-state", nil)
	req = withClientID(req, "client-get")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var state services.OrderState
	if err := json.Unmarshal(rec.Body.Bytes(), &state); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if state.Customer.FirstName != "Matylda" {
		t.Errorf("Customer = %+v", state.Customer)
	}
}

func TestHandleOrderStateGet_UnknownClient(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleOrderStateGet(app)

	req := httptest.NewRequest(http.MethodGet, "/api/order-state", nil)
	req = withClientID(req, "client-unknown")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 with a zero state, got %d", rec.Code)
	}

	var state services.OrderState
	if err := json.Unmarshal(rec.Body.Bytes(), &state); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if state.Customer.FirstName != "" {
		t.Errorf("expected a zero state, got %+v", state)
	}
}

func TestHandleOrderStateGet_NoClientID(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleOrderStateGet(app)

	req := httptest.NewRequest(http.MethodGet, "/api/order-state", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestHandleOrderStateUpdate(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleOrderStateUpdate(app)

	body := `{
		"customer": {"firstName": "Jana", "email": "jana@example.com"},
		"poptavka": {"address": "Krátká 3, Brno", "notes": "Vchod ze dvora."}
	}`
	req := httptest.NewRequest(http.MethodPut, "/api/order-state", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req = withClientID(req, "client-update")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var state services.OrderState
	if err := json.Unmarshal(rec.Body.Bytes(), &state); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if state.Customer.FirstName != "Jana" || state.Poptavka.Address != "Krátká 3, Brno" {
		t.Errorf("returned state = %+v", state)
	}

	stored, err := services.GetOrderState(app, "client-update")
	if err != nil {
		t.Fatalf("GetOrderState: %v", err)
	}
	if stored.Poptavka.Notes != "Vchod ze dvora." {
		t.Errorf("stored state = %+v", stored)
	}
}

func TestHandleOrderStateUpdate_InvalidBody(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleOrderStateUpdate(app)

	req := httptest.NewRequest(http.MethodPut, "/api/order-state", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	req = withClientID(req, "client-invalid")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}
