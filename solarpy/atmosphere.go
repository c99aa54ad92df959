package solarpy

import (
	"math"

	"gonum.org/v1/gonum/interp"
)

// ISA standard-day atmosphere, 0 to 24000 m. Altitude in meters, pressure
// in Pa; 1000 m steps up to 20 km, then 2000 m steps.
var (
	isaAltitude = []float64{
		0, 1000, 2000, 3000, 4000, 5000, 6000, 7000, 8000, 9000, 10000,
		11000, 12000, 13000, 14000, 15000, 16000, 17000, 18000, 19000, 20000,
		22000, 24000,
	}
	isaPressure = []float64{
		101325, 89876, 79501, 70121, 61660, 54048, 47217, 41105,
		35651, 30800, 26499, 22699, 19399, 16579, 14170, 12111,
		10352, 8849, 7565, 6467, 5529, 4047, 2972,
	}

	isaCurve = newISACurve()
)

func newISACurve() *interp.PiecewiseLinear {
	var pl interp.PiecewiseLinear
	if err := pl.Fit(isaAltitude, isaPressure); err != nil {
		panic("solarpy: ISA pressure table: " + err.Error())
	}
	return &pl
}

// StandardPressure returns the ISA standard-day pressure in Pa at altitude
// h in meters, linearly interpolated over the embedded table. Altitudes
// outside [0, 24000] m fail with a *RangeError.
func StandardPressure(h float64) (float64, error) {
	if err := ValidateAltitude(h); err != nil {
		return 0, err
	}
	return isaCurve.Predict(h), nil
}

// AirMassKastenYoung1989 returns the ratio of the atmospheric mass crossed
// by a sun beam at the given zenith angle (degrees) and altitude h (meters)
// to the mass it would cross with the sun at the zenith.
//
// The model (Kasten & Young 1989, "Revised optical air mass tables and
// approximation formula") is invalid past the horizon; zenith angles of
// 91.5 degrees or more are saturated at 91.5. With limitAltitude false the
// [0, 24000] m altitude check is bypassed, which allows extrapolated
// exospheric queries.
func AirMassKastenYoung1989(zenithDeg, h float64, limitAltitude bool) (float64, error) {
	if limitAltitude {
		if err := ValidateAltitude(h); err != nil {
			return 0, err
		}
	} else if err := checkFinite("altitude", h); err != nil {
		return 0, err
	}
	if err := checkFinite("zenith angle", zenithDeg); err != nil {
		return 0, err
	}

	z := zenithDeg
	if z >= 91.5 {
		z = 91.5
	}
	return math.Exp(-0.0001184*h) /
		(math.Cos(degreeToRad(z)) + 0.50572*math.Pow(96.07995-z, -1.634)), nil
}

// AirMassYoung1994 returns the sea-level relative air mass at the given
// zenith angle in degrees, after Young (1994), a rational polynomial in
// cos(zenith) with no altitude dependence.
func AirMassYoung1994(zenithDeg float64) float64 {
	c := math.Cos(degreeToRad(zenithDeg))
	num := 1.002432*c*c + 0.148386*c + 0.0096467
	den := c*c*c + 0.149864*c*c + 0.0102963*c + 0.000303978
	return num / den
}
