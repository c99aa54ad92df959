package solarpy

import (
	"math"
	"time"
)

func degreeToRad(d float64) float64 {
	return d * math.Pi / 180
}

func radToDegree(r float64) float64 {
	return r * 180 / math.Pi
}

// DayOfYear returns the ordinal day of the date within its calendar year,
// in [1, 365]. December 31 of a leap year maps to 365: the model assumes a
// 365-day year throughout.
func DayOfYear(date time.Time) int {
	n := date.YearDay()
	if n > MaxDayOfYear {
		n = MaxDayOfYear
	}
	return n
}

// DayAngle returns the day-of-the-year angle B in radians.
//
//	B = (n - 1) * (360 / 365)
func DayAngle(n int) (float64, error) {
	if err := ValidateDayOfYear(n); err != nil {
		return 0, err
	}
	return degreeToRad(float64(n-1) * (360.0 / 365.0)), nil
}

// Declination returns the angular position of the Sun at solar noon with
// respect to the plane of the equator, in radians. Duffie & Beckman
// eq. 1.6.1b; the result stays within ±23.45 degrees.
func Declination(n int) (float64, error) {
	b, err := DayAngle(n)
	if err != nil {
		return 0, err
	}
	return 0.006918 - 0.399912*math.Cos(b) + 0.070257*math.Sin(b) -
		0.006758*math.Cos(2*b) + 0.000907*math.Sin(2*b) -
		0.002679*math.Cos(3*b) + 0.00148*math.Sin(3*b), nil
}

// DeclinationSeries returns the declination for each day number,
// element-wise.
func DeclinationSeries(ns []int) ([]float64, error) {
	if err := ValidateDayOfYear(ns...); err != nil {
		return nil, err
	}
	out := make([]float64, len(ns))
	for i, n := range ns {
		out[i], _ = Declination(n)
	}
	return out, nil
}

// EquationOfTime returns the discrepancy between solar time and mean clock
// time on the nth day of the year, in minutes.
func EquationOfTime(n int) (float64, error) {
	b, err := DayAngle(n)
	if err != nil {
		return 0, err
	}
	return 229.2 * (0.000075 + 0.001868*math.Cos(b) -
		0.032077*math.Sin(b) - 0.014615*math.Cos(2*b) -
		0.04089*math.Sin(2*b)), nil
}

// StandardToSolarTime converts standard (clock) time at the given longitude
// to local solar time. Two corrections apply: 4 minutes per degree between
// the longitude and its nearest 15-degree standard meridian, and the
// equation of time for that day.
func StandardToSolarTime(date time.Time, lng float64) (time.Time, error) {
	if err := ValidateLongitude(lng); err != nil {
		return time.Time{}, err
	}
	e, err := EquationOfTime(DayOfYear(date))
	if err != nil {
		return time.Time{}, err
	}
	lngStd := math.Round(lng/15) * 15
	offsetMin := 4*(lngStd-lng) + e
	return date.Add(time.Duration(offsetMin * float64(time.Minute))), nil
}

// HourAngle returns the angular displacement of the sun east-west of the
// local meridian for the time of day of date, interpreted as solar time.
// 15 degrees per hour, morning negative, zero at solar noon. Result in
// radians. Out-of-range hours or minutes cannot occur with a time.Time.
func HourAngle(date time.Time) float64 {
	h := float64(date.Hour()) + float64(date.Minute())/60
	return degreeToRad((h - 12) * 15)
}
