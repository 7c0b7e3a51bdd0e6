package forms

import (
	"math"
	"testing"
	"time"
)

func TestCurrentPrices_BaseYear(t *testing.T) {
	prices := CurrentPrices(time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC))

	tests := []struct {
		name   string
		got    float64
		expect float64
	}{
		{"home cleaning", prices.HomeCleaning, 3200},
		{"office cleaning", prices.OfficeCleaning, 4500},
		{"residential building", prices.ResidentialBuilding, 2900},
		{"one-time rate", prices.OneTimeCleaningRate, 350},
		{"handyman rate", prices.HandymanRate, 450},
		{"general cleaning", prices.GeneralCleaning, 1800},
		{"winter maintenance", prices.WinterMaintenance, 1200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expect {
				t.Errorf("got %v, want %v", tt.got, tt.expect)
			}
		})
	}
}

func TestCurrentPrices_Inflation(t *testing.T) {
	prices := CurrentPrices(time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC))

	// two whole years of compounding
	factor := math.Pow(1.03, 2)

	if want := math.Round(3200*factor/10) * 10; prices.HomeCleaning != want {
		t.Errorf("HomeCleaning = %v, want %v", prices.HomeCleaning, want)
	}
	if want := math.Round(350 * factor); prices.OneTimeCleaningRate != want {
		t.Errorf("OneTimeCleaningRate = %v, want %v", prices.OneTimeCleaningRate, want)
	}
	if math.Mod(prices.ResidentialBuilding, 10) != 0 {
		t.Errorf("ResidentialBuilding = %v, want a ten-crown step", prices.ResidentialBuilding)
	}
}

func TestCurrentPrices_ClampedBeforeBaseYear(t *testing.T) {
	past := CurrentPrices(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC))
	base := CurrentPrices(time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC))

	if past != base {
		t.Errorf("prices before the base year = %+v, want base-year table %+v", past, base)
	}
}
