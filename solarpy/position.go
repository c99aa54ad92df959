package solarpy

import (
	"math"
	"time"
)

// clampUnit absorbs floating-point round-off before an arccos/arcsin: the
// five-term incidence product can land just outside [-1, 1] at boundary
// geometries. Inputs are clamped, never truncated.
func clampUnit(x float64) float64 {
	if x > 1 {
		return 1
	}
	if x < -1 {
		return -1
	}
	return x
}

// AngleOfIncidence returns the angle between the sun beam and the normal of
// a surface with slope beta [0, 180] degrees and surface azimuth surfAz
// [-180, 180] degrees (0 south, east negative), at the given latitude and
// date with time of day in solar time. Duffie & Beckman eq. 1.6.2. Result in
// radians, [0, pi].
func AngleOfIncidence(date time.Time, lat, beta, surfAz float64) (float64, error) {
	if err := ValidateLatitude(lat); err != nil {
		return 0, err
	}
	if err := checkRange("slope", beta, 0, 180); err != nil {
		return 0, err
	}
	if err := checkRange("surface azimuth", surfAz, -180, 180); err != nil {
		return 0, err
	}

	dec, err := Declination(DayOfYear(date))
	if err != nil {
		return 0, err
	}
	latR := degreeToRad(lat)
	betaR := degreeToRad(beta)
	azR := degreeToRad(surfAz)
	w := HourAngle(date)

	cosTheta := math.Sin(dec)*math.Sin(latR)*math.Cos(betaR) -
		math.Sin(dec)*math.Cos(latR)*math.Sin(betaR)*math.Cos(azR) +
		math.Cos(dec)*math.Cos(latR)*math.Cos(betaR)*math.Cos(w) +
		math.Cos(dec)*math.Sin(latR)*math.Sin(betaR)*math.Cos(azR)*math.Cos(w) +
		math.Cos(dec)*math.Sin(betaR)*math.Sin(azR)*math.Sin(w)

	return math.Acos(clampUnit(cosTheta)), nil
}

// ZenithAngle returns the angle between the sun beam and the local vertical,
// in radians. Equivalent to the angle of incidence on a horizontal surface.
func ZenithAngle(date time.Time, lat float64) (float64, error) {
	if err := ValidateLatitude(lat); err != nil {
		return 0, err
	}
	dec, err := Declination(DayOfYear(date))
	if err != nil {
		return 0, err
	}
	latR := degreeToRad(lat)
	w := HourAngle(date)

	cosThetaZ := math.Sin(dec)*math.Sin(latR) + math.Cos(dec)*math.Cos(latR)*math.Cos(w)
	return math.Acos(clampUnit(cosThetaZ)), nil
}

// SolarAzimuth returns the angle between the horizontal projection of the
// sun beam and due south, positive to the west, in radians [-pi, pi].
//
// At |lat| = 90 the defining expression is singular; the latitude is
// substituted with ±89.999 degrees, which preserves the sign at a
// negligible error. At solar noon the sign is taken positive (noon starts
// the afternoon).
func SolarAzimuth(date time.Time, lat float64) (float64, error) {
	if err := ValidateLatitude(lat); err != nil {
		return 0, err
	}
	if math.Abs(lat) == 90 {
		lat = math.Copysign(89.999, lat)
	}

	w := HourAngle(date)
	dec, err := Declination(DayOfYear(date))
	if err != nil {
		return 0, err
	}
	thz, err := ZenithAngle(date, lat)
	if err != nil {
		return 0, err
	}
	latR := degreeToRad(lat)

	cosAz := (math.Cos(thz)*math.Sin(latR) - math.Sin(dec)) /
		(math.Sin(thz) * math.Cos(latR))

	s := 1.0
	if w < 0 {
		s = -1
	}
	return s * math.Acos(clampUnit(cosAz)), nil
}

// SolarAltitude returns the angle between the horizontal projection of the
// sun beam and the beam itself, in radians [-pi/2, pi/2].
func SolarAltitude(date time.Time, lat float64) (float64, error) {
	thz, err := ZenithAngle(date, lat)
	if err != nil {
		return 0, err
	}
	return math.Asin(clampUnit(math.Cos(thz))), nil
}

// SunsetHourAngle returns the hour angle at which the zenith angle reaches
// 90 degrees, in radians. It solves cos(ws) = -tan(lat)*tan(declination);
// when |rhs| > 1 no sunset exists and a *PermanentDayNightError is returned.
func SunsetHourAngle(date time.Time, lat float64) (float64, error) {
	if err := ValidateLatitude(lat); err != nil {
		return 0, err
	}
	n := DayOfYear(date)
	dec, err := Declination(n)
	if err != nil {
		return 0, err
	}
	cosWs := -math.Tan(degreeToRad(lat)) * math.Tan(dec)
	if math.Abs(cosWs) > 1 {
		return 0, &PermanentDayNightError{N: n, Lat: lat}
	}
	return math.Acos(cosWs), nil
}

// SunriseHourAngle returns the negated sunset hour angle. The same
// *PermanentDayNightError applies.
func SunriseHourAngle(date time.Time, lat float64) (float64, error) {
	ws, err := SunsetHourAngle(date, lat)
	if err != nil {
		return 0, err
	}
	return -ws, nil
}

// SunsetTime returns the clock time of sunset on the calendar day of date,
// in solar time. The *PermanentDayNightError from the hour-angle solution
// propagates to the caller.
func SunsetTime(date time.Time, lat float64) (time.Time, error) {
	ws, err := SunsetHourAngle(date, lat)
	if err != nil {
		return time.Time{}, err
	}
	return solarNoonOn(date).Add(hourAngleToDuration(ws)), nil
}

// SunriseTime returns the clock time of sunrise on the calendar day of date,
// in solar time. The *PermanentDayNightError from the hour-angle solution
// propagates to the caller.
func SunriseTime(date time.Time, lat float64) (time.Time, error) {
	wr, err := SunriseHourAngle(date, lat)
	if err != nil {
		return time.Time{}, err
	}
	return solarNoonOn(date).Add(hourAngleToDuration(wr)), nil
}

func solarNoonOn(date time.Time) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, 12, 0, 0, 0, date.Location())
}

func hourAngleToDuration(w float64) time.Duration {
	hours := radToDegree(w) / 15
	return time.Duration(hours * float64(time.Hour))
}

// DaylightHours returns the number of hours of light on the calendar day of
// date, in [0, 24]. Unlike the hour-angle functions it does not fail on
// permanent day or night: the limiting values 24 and 0 are well defined and
// returned instead.
func DaylightHours(date time.Time, lat float64) (float64, error) {
	if err := ValidateLatitude(lat); err != nil {
		return 0, err
	}
	dec, err := Declination(DayOfYear(date))
	if err != nil {
		return 0, err
	}
	tmp := -math.Tan(degreeToRad(lat)) * math.Tan(dec)
	switch {
	case tmp <= -1:
		return 24, nil
	case tmp >= 1:
		return 0, nil
	}
	return 24 * math.Acos(tmp) / math.Pi, nil
}

// DaylightHoursSeries returns the daylight hours for each date,
// element-wise.
func DaylightHoursSeries(dates []time.Time, lat float64) ([]float64, error) {
	if err := ValidateLatitude(lat); err != nil {
		return nil, err
	}
	out := make([]float64, len(dates))
	for i, d := range dates {
		lh, err := DaylightHours(d, lat)
		if err != nil {
			return nil, err
		}
		out[i] = lh
	}
	return out, nil
}

// SolarVectorNED returns the unit vector of the sun beam in the local
// North-East-Down frame, pointing away from the sun's origin direction.
// Whenever the hour angle falls outside the sunrise-sunset window the zero
// vector is returned. When no sunrise/sunset exists, daylight hours decide:
// zero vector in permanent darkness, the full vector in permanent daylight.
func SolarVectorNED(date time.Time, lat float64) (Vector, error) {
	az, err := SolarAzimuth(date, lat)
	if err != nil {
		return Vector{}, err
	}
	alt, err := SolarAltitude(date, lat)
	if err != nil {
		return Vector{}, err
	}

	beam := Vector{
		-math.Cos(az) * math.Cos(alt),
		-math.Sin(az) * math.Cos(alt),
		-math.Sin(alt),
	}

	ws, err := SunsetHourAngle(date, lat)
	if err != nil {
		if !IsPermanentDayNight(err) {
			return Vector{}, err
		}
		lh, err := DaylightHours(date, lat)
		if err != nil {
			return Vector{}, err
		}
		if lh == 0 {
			return Vector{}, nil
		}
		return beam, nil
	}

	if w := HourAngle(date); w > ws || w < -ws {
		return Vector{}, nil
	}
	return beam, nil
}

// SurfaceNormalNED returns the unit normal, in the local North-East-Down
// frame, of a surface with slope beta [0, 180] degrees from horizontal and
// surface azimuth surfAz [-180, 180] degrees (0 south, east negative). A
// horizontal surface yields (0, 0, -1). The representation is equivalent to
// the slope/azimuth pair accepted by AngleOfIncidence.
func SurfaceNormalNED(beta, surfAz float64) (Vector, error) {
	if err := checkRange("slope", beta, 0, 180); err != nil {
		return Vector{}, err
	}
	if err := checkRange("surface azimuth", surfAz, -180, 180); err != nil {
		return Vector{}, err
	}
	betaR := degreeToRad(beta)
	azR := degreeToRad(surfAz)
	return Vector{
		-math.Sin(betaR) * math.Cos(azR),
		-math.Sin(betaR) * math.Sin(azR),
		-math.Cos(betaR),
	}, nil
}
