package forms

import (
	"math"
	"time"
)

// Base prices are quoted in CZK as of the base year and compounded by a flat
// annual inflation rate so the configs stay current without manual edits.
// The rate is a business constant agreed with accounting, not an env knob.
const (
	priceBaseYear       = 2023
	annualInflationRate = 0.03
)

// Prices as configured in the base year.
const (
	homeCleaningBase2023        = 3200.0
	officeCleaningBase2023      = 4500.0
	residentialBuildingBase2023 = 2900.0
	oneTimeCleaningRate2023     = 350.0
	handymanRate2023            = 450.0

	generalCleaningBase2023  = 1800.0
	winterMaintenanceFee2023 = 1200.0
)

// PriceTable holds the inflation-adjusted base prices used when the configs
// are built. Hourly rates are whole crowns; monthly bases are rounded to
// ten-crown steps, matching how final prices are rounded.
type PriceTable struct {
	HomeCleaning        float64
	OfficeCleaning      float64
	ResidentialBuilding float64
	OneTimeCleaningRate float64
	HandymanRate        float64

	GeneralCleaning   float64
	WinterMaintenance float64
}

// CurrentPrices computes the price table for the given date. The date is
// injected by the caller (once, at startup) so tests can pin it.
func CurrentPrices(now time.Time) PriceTable {
	factor := inflationFactor(now)
	return PriceTable{
		HomeCleaning:        roundToTens(homeCleaningBase2023 * factor),
		OfficeCleaning:      roundToTens(officeCleaningBase2023 * factor),
		ResidentialBuilding: roundToTens(residentialBuildingBase2023 * factor),
		OneTimeCleaningRate: math.Round(oneTimeCleaningRate2023 * factor),
		HandymanRate:        math.Round(handymanRate2023 * factor),
		GeneralCleaning:     roundToTens(generalCleaningBase2023 * factor),
		WinterMaintenance:   roundToTens(winterMaintenanceFee2023 * factor),
	}
}

// inflationFactor compounds the annual rate for every whole year elapsed
// since the base year. Years before the base year are clamped to factor 1.
func inflationFactor(now time.Time) float64 {
	years := now.Year() - priceBaseYear
	if years <= 0 {
		return 1.0
	}
	return math.Pow(1+annualInflationRate, float64(years))
}

func roundToTens(v float64) float64 {
	return math.Round(v/10) * 10
}
