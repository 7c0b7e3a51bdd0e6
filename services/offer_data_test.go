package services

import (
	"strings"
	"testing"
	"time"

	"github.com/matyldajandova/handyhands-calculator/forms"
)

func offerFixture(t *testing.T) (*PoptavkaHashData, *forms.FormConfig) {
	t.Helper()
	config := pinnedRegistry().Get(forms.ServiceResidentialBuilding)
	data := forms.FormData{
		"cleaningFrequency":        "twice-weekly",
		"aboveGroundFloors":        "3",
		"hasElevator":              "yes",
		"generalCleaningType":      "with-windows",
		"generalCleaningFrequency": "twice-yearly",
		"floorsWithWindows":        "2",
		"extraServices":            []any{"winter-maintenance", "garbage-room"},
		"firstName":                "Matylda",
		"lastName":                 "Janková",
		"email":                    "maty@x.com",
		"phone":                    "+420 777 123 456",
	}
	result := Calculate(data, config)
	return &PoptavkaHashData{
		ServiceType:  config.ID,
		ServiceTitle: config.Title,
		TotalPrice:   result.TotalPrice(),
		OrderID:      "HH-20260830-3FA2C1",
		CalculationData: &CalculationData{
			CalculationResult: *result,
			FormData:          data,
		},
	}, config
}

func TestBuildOfferData(t *testing.T) {
	hash, config := offerFixture(t)
	now := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

	offer, err := BuildOfferData(hash, config, now)
	if err != nil {
		t.Fatalf("BuildOfferData: %v", err)
	}

	if offer.ServiceTitle != "Úklid bytových domů" {
		t.Errorf("ServiceTitle = %q", offer.ServiceTitle)
	}
	if offer.OrderID != "HH-20260830-3FA2C1" {
		t.Errorf("OrderID = %q", offer.OrderID)
	}
	if offer.CreatedDate != "30.8.2026" {
		t.Errorf("CreatedDate = %q, want 30.8.2026", offer.CreatedDate)
	}
	if offer.Currency != DefaultCurrency {
		t.Errorf("Currency = %q, want %q", offer.Currency, DefaultCurrency)
	}
	if offer.Customer.FirstName != "Matylda" || offer.Customer.Email != "maty@x.com" {
		t.Errorf("Customer = %+v", offer.Customer)
	}

	// monthly + general cleaning + winter maintenance
	if len(offer.PriceLines) != 3 {
		t.Fatalf("got %d price lines, want 3: %+v", len(offer.PriceLines), offer.PriceLines)
	}
	if offer.PriceLines[0].Label != "Pravidelný úklid (měsíčně)" {
		t.Errorf("first price line = %+v", offer.PriceLines[0])
	}
	if !strings.Contains(offer.PriceLines[1].Label, "2x ročně") {
		t.Errorf("general cleaning line = %+v, want the frequency in the label", offer.PriceLines[1])
	}

	if offer.Breakdown == nil || offer.Breakdown.Pending {
		t.Errorf("Breakdown = %+v, want reconstructed details", offer.Breakdown)
	}
	if len(offer.Conditions) == 0 || len(offer.CommonServices) == 0 {
		t.Error("expected the config's static texts on the offer")
	}
}

func TestBuildOfferData_ReconstructsFromToken(t *testing.T) {
	hash, config := offerFixture(t)

	token, err := EncodePoptavkaHash(hash)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	decoded := DecodePoptavkaHash(token)
	if decoded == nil {
		t.Fatal("decode returned nil")
	}

	offer, err := BuildOfferData(decoded, config, time.Now())
	if err != nil {
		t.Fatalf("BuildOfferData: %v", err)
	}
	if offer.Breakdown.Pending {
		t.Error("placeholder details leaked into the offer")
	}
	if len(offer.Breakdown.AppliedCoefficients) == 0 {
		t.Error("expected a reconstructed breakdown")
	}
}

func TestBuildOfferData_Errors(t *testing.T) {
	hash, config := offerFixture(t)

	if _, err := BuildOfferData(nil, config, time.Now()); err == nil {
		t.Error("expected an error for nil hash data")
	}
	if _, err := BuildOfferData(hash, nil, time.Now()); err == nil {
		t.Error("expected an error for an unknown service config")
	}

	hash.CalculationData = nil
	if _, err := BuildOfferData(hash, config, time.Now()); err == nil {
		t.Error("expected an error without calculation data")
	}
}

func TestSummaryItems(t *testing.T) {
	config := pinnedRegistry().Get(forms.ServiceHomeCleaning)
	data := forms.FormData{
		"cleaningFrequency": "weekly",
		"apartmentSize":     "2kk",
		"ironingHours":      "1h",
		"extraServices":     []any{"fridge", "oven"},
	}

	items := SummaryItems(data, config)

	byLabel := map[string]string{}
	for _, item := range items {
		byLabel[item.Label] = item.Value
	}

	if byLabel["Jak často máme uklízet?"] != "1x týdně" {
		t.Errorf("frequency = %q, want the option label", byLabel["Jak často máme uklízet?"])
	}
	if byLabel["Dispozice"] != "2+kk / 2+1" {
		t.Errorf("apartment size = %q", byLabel["Dispozice"])
	}
	if byLabel["Žehlení navíc"] != "1 hodina týdně" {
		t.Errorf("ironing = %q", byLabel["Žehlení navíc"])
	}
	if byLabel["Co dalšího si přejete?"] != "Mytí lednice, Mytí trouby" {
		t.Errorf("extras = %q, want joined option labels", byLabel["Co dalšího si přejete?"])
	}
}

// An answer under a conditional branch that no longer holds must not appear.
func TestSummaryItems_SkipsHiddenBranch(t *testing.T) {
	config := pinnedRegistry().Get(forms.ServiceHomeCleaning)
	data := forms.FormData{
		"cleaningFrequency": "monthly",
		// ironing is only offered for more frequent cleaning
		"ironingHours": "2h",
	}

	for _, item := range SummaryItems(data, config) {
		if item.Label == "Žehlení navíc" {
			t.Errorf("hidden branch answer leaked into the summary: %+v", item)
		}
	}
}

func TestSummaryItems_NumericAnswer(t *testing.T) {
	config := pinnedRegistry().Get(forms.ServiceResidentialBuilding)
	data := forms.FormData{"aboveGroundFloors": float64(3)}

	items := SummaryItems(data, config)
	if len(items) != 1 || items[0].Value != "3 podlaží" {
		t.Errorf("items = %+v, want the resolved option label", items)
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		input  float64
		expect string
	}{
		{3, "3"},
		{3.5, "3.5"},
		{0, "0"},
		{120, "120"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.input); got != tt.expect {
			t.Errorf("FormatNumber(%v) = %q, want %q", tt.input, got, tt.expect)
		}
	}
}
