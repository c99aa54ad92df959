package solarpy

import "math"

// Accepted input domains. The altitude ceiling is the upper bound of the
// embedded ISA pressure table.
const (
	MinLatitude  = -90.0
	MaxLatitude  = 90.0
	MinLongitude = -180.0
	MaxLongitude = 180.0
	MinAltitude  = 0.0
	MaxAltitude  = 24000.0
	MinDayOfYear = 1
	MaxDayOfYear = 365
)

func checkFinite(quantity string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &NotFiniteError{Quantity: quantity, Value: v}
	}
	return nil
}

func checkRange(quantity string, v, min, max float64) error {
	if err := checkFinite(quantity, v); err != nil {
		return err
	}
	if v < min || v > max {
		return &RangeError{Quantity: quantity, Value: v, Min: min, Max: max}
	}
	return nil
}

// ValidateLatitude checks every latitude for -90 <= lat <= 90 degrees.
func ValidateLatitude(lat ...float64) error {
	for _, v := range lat {
		if err := checkRange("latitude", v, MinLatitude, MaxLatitude); err != nil {
			return err
		}
	}
	return nil
}

// ValidateLongitude checks every longitude for -180 <= lng <= 180 degrees.
// This is the sole accepted convention; [0, 359] inputs are rejected.
func ValidateLongitude(lng ...float64) error {
	for _, v := range lng {
		if err := checkRange("longitude", v, MinLongitude, MaxLongitude); err != nil {
			return err
		}
	}
	return nil
}

// ValidateAltitude checks every altitude for 0 <= h <= 24000 meters, the
// validity range of the pressure model.
func ValidateAltitude(h ...float64) error {
	for _, v := range h {
		if err := checkRange("altitude", v, MinAltitude, MaxAltitude); err != nil {
			return err
		}
	}
	return nil
}

// ValidateDayOfYear checks every day number for 1 <= n <= 365.
func ValidateDayOfYear(n ...int) error {
	for _, v := range n {
		if v < MinDayOfYear || v > MaxDayOfYear {
			return &RangeError{
				Quantity: "day of the year",
				Value:    float64(v),
				Min:      MinDayOfYear,
				Max:      MaxDayOfYear,
			}
		}
	}
	return nil
}
