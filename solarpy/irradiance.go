package solarpy

import (
	"math"
	"time"
)

const (
	// SolarConstant is the solar constant in W/m2.
	SolarConstant = 1367.0

	// atmosphericExtinction is the fixed extinction coefficient for
	// visible light (Aglietti et al. 2009).
	atmosphericExtinction = 0.32
)

// ExtraterrestrialNormalIrradiance returns the radiation on a plane normal
// to the sun beam outside the atmosphere on the given date, in W/m2. The
// annual excursion stays within (1320, 1420).
func ExtraterrestrialNormalIrradiance(date time.Time) float64 {
	// the day number comes from a valid calendar date, so DayAngle
	// cannot fail
	b, _ := DayAngle(DayOfYear(date))
	return SolarConstant * (1.00011 + 0.034221*math.Cos(b) +
		0.00128*math.Sin(b) + 0.000719*math.Cos(2*b) +
		0.000077*math.Sin(2*b))
}

// ExtraterrestrialNormalIrradianceSeries returns the extraterrestrial
// normal irradiance for each date, element-wise.
func ExtraterrestrialNormalIrradianceSeries(dates []time.Time) []float64 {
	out := make([]float64, len(dates))
	for i, d := range dates {
		out[i] = ExtraterrestrialNormalIrradiance(d)
	}
	return out
}

// BeamIrradiance returns the solar beam irradiance on a plane normal to the
// sun beam (diffuse component excluded) at altitude h in meters, for the
// given date (time of day in solar time) and latitude, in W/m2. Zero when
// the zenith angle exceeds the geometric horizon for that altitude.
//
// Attenuation model from Aglietti, Redi, Tatnall & Markvart (2009),
// "Harnessing High-Altitude Solar Power".
func BeamIrradiance(h float64, date time.Time, lat float64) (float64, error) {
	if err := ValidateAltitude(h); err != nil {
		return 0, err
	}
	thz, err := ZenithAngle(date, lat)
	if err != nil {
		return 0, err
	}

	// the highest zenith angle with line of sight to the sun is the one
	// pointing at the horizon, which dips below pi/2 with altitude
	thetaLim := math.Pi/2 + math.Acos(EarthEquatorialAxis/(EarthEquatorialAxis+h))
	if thz >= thetaLim {
		return 0, nil
	}

	ph, err := StandardPressure(h)
	if err != nil {
		return 0, err
	}
	p0, err := StandardPressure(0)
	if err != nil {
		return 0, err
	}
	m, err := AirMassKastenYoung1989(radToDegree(thz), h, true)
	if err != nil {
		return 0, err
	}
	return ExtraterrestrialNormalIrradiance(date) *
		math.Exp(-(ph/p0)*m*atmosphericExtinction), nil
}

// IrradianceOnPlane returns the solar beam irradiance on a plane defined by
// its normal vector in the NED frame (diffuse component excluded) at
// altitude h, date and latitude, in W/m2. Radiation reaching the back of
// the plane counts as zero, not negative; at night (or in permanent
// darkness) the result is zero.
func IrradianceOnPlane(vnorm Vector, h float64, date time.Time, lat float64) (float64, error) {
	if vnorm.IsZero() {
		return 0, ErrZeroVector
	}
	vsol, err := SolarVectorNED(date, lat)
	if err != nil {
		return 0, err
	}
	if vsol.IsZero() {
		return 0, nil
	}

	cosTheta := clampUnit(vnorm.Dot(vsol) / (vnorm.Norm() * vsol.Norm()))
	if cosTheta <= 0 {
		return 0, nil
	}
	g, err := BeamIrradiance(h, date, lat)
	if err != nil {
		return 0, err
	}
	return g * cosTheta, nil
}
