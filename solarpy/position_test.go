package solarpy

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// Duffie and Beckman example 1.6.1: Feb 13, 10:30 solar time, latitude 43,
// slope 45, surface azimuth 15.
func Test_angle_of_incidence(t *testing.T) {
	date := time.Date(2019, time.February, 13, 10, 30, 0, 0, time.UTC)
	theta, err := AngleOfIncidence(date, 43, 45, 15)
	assert.NoError(t, err)
	assert.True(t, math.Abs(theta-degreeToRad(35)) < 0.005)
}

func Test_angle_of_incidence_errors(t *testing.T) {
	date := time.Date(2019, time.December, 13, 0, 0, 0, 0, time.UTC)

	_, err := AngleOfIncidence(date, 91, 1, 1)
	assert.Error(t, err)
	_, err = AngleOfIncidence(date, 43, -1, 1)
	assert.Error(t, err)
	_, err = AngleOfIncidence(date, 43, 181, 1)
	assert.Error(t, err)
	_, err = AngleOfIncidence(date, 43, 45, 181)
	assert.Error(t, err)
	_, err = AngleOfIncidence(date, math.NaN(), 45, 15)
	assert.Error(t, err)
}

func Test_zenith_angle(t *testing.T) {
	// noon at summer solstice with lat = declination: sun at the zenith
	date := time.Date(2019, time.June, 20, 12, 0, 0, 0, time.UTC)
	thz, err := ZenithAngle(date, 23.45)
	assert.NoError(t, err)
	assert.True(t, math.Abs(thz-degreeToRad(0)) < 0.005)

	// example 1.6.2a
	date = time.Date(2019, time.February, 13, 9, 30, 0, 0, time.UTC)
	thz, err = ZenithAngle(date, 43)
	assert.NoError(t, err)
	assert.True(t, math.Abs(thz-degreeToRad(66.5)) < 0.005)

	// example 1.6.2b
	date = time.Date(2019, time.July, 1, 18, 30, 0, 0, time.UTC)
	thz, err = ZenithAngle(date, 43)
	assert.NoError(t, err)
	assert.True(t, math.Abs(thz-degreeToRad(79.6)) < 0.005)

	// example 1.6.3
	date = time.Date(2019, time.March, 16, 16, 0, 0, 0, time.UTC)
	thz, err = ZenithAngle(date, 43)
	assert.NoError(t, err)
	assert.True(t, math.Abs(thz-degreeToRad(70.3)) < 0.005)

	_, err = ZenithAngle(date, -91)
	assert.Error(t, err)
}

func Test_solar_azimuth_noon(t *testing.T) {
	noon := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
	}

	// northern hemisphere: sun due south at noon
	for _, c := range []struct {
		date time.Time
		lat  float64
	}{
		{noon(2019, time.January, 1), 0},
		{noon(2019, time.April, 1), 30},
		{noon(2019, time.August, 1), 60},
		{noon(2019, time.October, 1), 90},
	} {
		az, err := SolarAzimuth(c.date, c.lat)
		assert.NoError(t, err)
		assert.True(t, math.Abs(az-degreeToRad(0)) < 0.005)
	}

	// southern hemisphere: sun due north at noon
	for _, c := range []struct {
		date time.Time
		lat  float64
	}{
		{noon(2019, time.April, 1), -30},
		{noon(2019, time.August, 1), -60},
		{noon(2019, time.October, 1), -90},
	} {
		az, err := SolarAzimuth(c.date, c.lat)
		assert.NoError(t, err)
		assert.True(t, math.Abs(math.Abs(az)-degreeToRad(180)) < 0.005)
	}
}

func Test_solar_azimuth_examples(t *testing.T) {
	// example 1.6.2a
	date := time.Date(2019, time.February, 13, 9, 30, 0, 0, time.UTC)
	az, err := SolarAzimuth(date, 43)
	assert.NoError(t, err)
	assert.True(t, math.Abs(az-degreeToRad(-40.0)) < 0.005)

	// example 1.6.2b
	date = time.Date(2019, time.July, 1, 18, 30, 0, 0, time.UTC)
	az, err = SolarAzimuth(date, 43)
	assert.NoError(t, err)
	assert.True(t, math.Abs(az-degreeToRad(112.0)) < 0.005)

	// example 1.6.3
	date = time.Date(2019, time.March, 16, 16, 0, 0, 0, time.UTC)
	az, err = SolarAzimuth(date, 43)
	assert.NoError(t, err)
	assert.True(t, math.Abs(az-degreeToRad(66.8)) < 0.005)

	_, err = SolarAzimuth(date, -91)
	assert.Error(t, err)
}

func Test_solar_altitude(t *testing.T) {
	// example 1.6.3
	date := time.Date(2019, time.March, 16, 16, 0, 0, 0, time.UTC)
	alt, err := SolarAltitude(date, 43)
	assert.NoError(t, err)
	assert.True(t, math.Abs(alt-degreeToRad(19.7)) < 0.005)

	_, err = SolarAltitude(date, -91)
	assert.Error(t, err)
}

func Test_sunset_hour_angle(t *testing.T) {
	// example 1.6.3
	date := time.Date(2019, time.March, 16, 0, 0, 0, 0, time.UTC)
	ws, err := SunsetHourAngle(date, 43)
	assert.NoError(t, err)
	assert.True(t, math.Abs(ws-degreeToRad(87.8)) < 0.05)

	// no sunset on permanent day or night
	_, err = SunsetHourAngle(time.Date(2019, time.January, 1, 0, 0, 0, 0, time.UTC), 80)
	assert.True(t, IsPermanentDayNight(err))

	_, err = SunsetHourAngle(time.Date(2019, time.June, 20, 0, 0, 0, 0, time.UTC), -75)
	assert.True(t, IsPermanentDayNight(err))

	_, err = SunsetHourAngle(date, 156)
	assert.Error(t, err)
	assert.False(t, IsPermanentDayNight(err))
}

func Test_sunrise_hour_angle(t *testing.T) {
	// example 1.6.3
	date := time.Date(2019, time.March, 16, 0, 0, 0, 0, time.UTC)
	wr, err := SunriseHourAngle(date, 43)
	assert.NoError(t, err)
	assert.True(t, math.Abs(wr-degreeToRad(-87.8)) < 0.05)

	_, err = SunriseHourAngle(time.Date(2019, time.January, 1, 0, 0, 0, 0, time.UTC), 80)
	assert.True(t, IsPermanentDayNight(err))
}

func Test_sunset_sunrise_time(t *testing.T) {
	// example 1.6.3
	date := time.Date(2019, time.March, 16, 16, 0, 0, 0, time.UTC)

	ss, err := SunsetTime(date, 43)
	assert.NoError(t, err)
	assert.Equal(t, 2019, ss.Year())
	assert.Equal(t, time.March, ss.Month())
	assert.Equal(t, 16, ss.Day())
	assert.Equal(t, 17, ss.Hour())
	assert.Equal(t, 52, ss.Minute())

	sr, err := SunriseTime(date, 43)
	assert.NoError(t, err)
	assert.Equal(t, 6, sr.Hour())
	assert.Equal(t, 7, sr.Minute())

	// polar summer
	date = time.Date(2019, time.August, 1, 0, 0, 0, 0, time.UTC)
	_, err = SunsetTime(date, 89)
	assert.True(t, IsPermanentDayNight(err))
	_, err = SunriseTime(date, 89)
	assert.True(t, IsPermanentDayNight(err))

	_, err = SunsetTime(date, 156)
	assert.Error(t, err)
}

func Test_daylight_hours(t *testing.T) {
	// south pole in the summer and in the winter
	lh, err := DaylightHours(time.Date(2019, time.January, 1, 0, 0, 0, 0, time.UTC), -80)
	assert.NoError(t, err)
	assert.Equal(t, 24.0, lh)

	lh, err = DaylightHours(time.Date(2019, time.August, 1, 0, 0, 0, 0, time.UTC), -85)
	assert.NoError(t, err)
	assert.Equal(t, 0.0, lh)

	// north pole in the winter and in the summer
	lh, err = DaylightHours(time.Date(2019, time.January, 1, 0, 0, 0, 0, time.UTC), 82)
	assert.NoError(t, err)
	assert.Equal(t, 0.0, lh)

	lh, err = DaylightHours(time.Date(2019, time.August, 1, 0, 0, 0, 0, time.UTC), 78)
	assert.NoError(t, err)
	assert.Equal(t, 24.0, lh)

	// equator: twelve hours all year round
	lh, err = DaylightHours(time.Date(2019, time.August, 15, 0, 0, 0, 0, time.UTC), 0)
	assert.NoError(t, err)
	assert.True(t, math.Abs(lh-12) < 1.0e-6)

	lh, err = DaylightHours(time.Date(2019, time.December, 15, 0, 0, 0, 0, time.UTC), 0)
	assert.NoError(t, err)
	assert.True(t, math.Abs(lh-12) < 1.0e-6)

	_, err = DaylightHours(time.Date(2019, time.December, 13, 0, 0, 0, 0, time.UTC), 1526)
	assert.Error(t, err)
}

func Test_daylight_hours_series(t *testing.T) {
	dates := []time.Time{
		time.Date(2019, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2019, time.August, 15, 0, 0, 0, 0, time.UTC),
	}
	lhs, err := DaylightHoursSeries(dates, 0)
	assert.NoError(t, err)
	assert.Equal(t, 2, len(lhs))
	for _, lh := range lhs {
		assert.True(t, math.Abs(lh-12) < 1.0e-6)
	}

	_, err = DaylightHoursSeries(dates, 91)
	assert.Error(t, err)
}

func Test_solar_vector_ned_permanent_darkness(t *testing.T) {
	cases := []struct {
		date time.Time
		lat  float64
	}{
		// south pole in winter
		{time.Date(2019, time.June, 15, 12, 0, 0, 0, time.UTC), -80},
		{time.Date(2019, time.June, 1, 17, 0, 0, 0, time.UTC), -70},
		// north pole in winter
		{time.Date(2019, time.January, 1, 10, 0, 0, 0, time.UTC), 83},
		{time.Date(2019, time.November, 1, 19, 0, 0, 0, time.UTC), 76},
	}
	for _, c := range cases {
		v, err := SolarVectorNED(c.date, c.lat)
		assert.NoError(t, err)
		assert.True(t, v.IsZero())
	}
}

func Test_solar_vector_ned_night(t *testing.T) {
	minuteAfterSunset := func(y int, m time.Month, d int, lat float64) time.Time {
		ss, err := SunsetTime(time.Date(y, m, d, 0, 0, 0, 0, time.UTC), lat)
		assert.NoError(t, err)
		return time.Date(y, m, d, ss.Hour(), ss.Minute()+1, 0, 0, time.UTC)
	}
	minuteBeforeSunrise := func(y int, m time.Month, d int, lat float64) time.Time {
		sr, err := SunriseTime(time.Date(y, m, d, 0, 0, 0, 0, time.UTC), lat)
		assert.NoError(t, err)
		return time.Date(y, m, d, sr.Hour(), sr.Minute()-1, 0, 0, time.UTC)
	}

	cases := []struct {
		date time.Time
		lat  float64
	}{
		{minuteAfterSunset(2019, time.January, 5, 33), 33},
		{minuteBeforeSunrise(2019, time.September, 1, 15), 15},
		{minuteAfterSunset(2019, time.February, 3, -63), -63},
		{minuteBeforeSunrise(2019, time.October, 1, -15), -15},
	}
	for _, c := range cases {
		v, err := SolarVectorNED(c.date, c.lat)
		assert.NoError(t, err)
		assert.True(t, v.IsZero())
	}
}

func Test_solar_vector_ned_summer_solstice(t *testing.T) {
	// solar noon with lat = declination: the beam comes straight down
	date := time.Date(2019, time.June, 21, 12, 0, 0, 0, time.UTC)
	lat := 23.0 + 26.0/60 + 14.0/3600 // obliquity in 2019

	v, err := SolarVectorNED(date, lat)
	assert.NoError(t, err)
	assert.True(t, math.Abs(v[0]-0) < 1.0e-3)
	assert.True(t, math.Abs(v[1]-0) < 1.0e-3)
	assert.True(t, math.Abs(v[2]-(-1)) < 1.0e-3)
}

func Test_solar_vector_ned_permanent_day(t *testing.T) {
	// summer solstice at the north pole
	date := time.Date(2019, time.June, 20, 12, 0, 0, 0, time.UTC)
	alt := degreeToRad(23.0 + 26.0/60 + 14.0/3600)

	v, err := SolarVectorNED(date, 90)
	assert.NoError(t, err)
	assert.True(t, math.Abs(v[0]-(-math.Cos(alt))) < 1.0e-3)
	assert.True(t, math.Abs(v[1]-0) < 1.0e-3)
	assert.True(t, math.Abs(v[2]-(-math.Sin(alt))) < 1.0e-3)
}

func Test_solar_vector_ned_errors(t *testing.T) {
	date := time.Date(2019, time.December, 13, 0, 0, 0, 0, time.UTC)
	_, err := SolarVectorNED(date, 1526)
	assert.Error(t, err)
}

func Test_surface_normal_ned(t *testing.T) {
	// horizontal surface points straight up
	v, err := SurfaceNormalNED(0, 0)
	assert.NoError(t, err)
	assert.True(t, math.Abs(v[0]-0) < 1.0e-12)
	assert.True(t, math.Abs(v[1]-0) < 1.0e-12)
	assert.True(t, math.Abs(v[2]-(-1)) < 1.0e-12)

	// vertical surface facing south
	v, err = SurfaceNormalNED(90, 0)
	assert.NoError(t, err)
	assert.True(t, math.Abs(v[0]-(-1)) < 1.0e-12)
	assert.True(t, math.Abs(v[1]-0) < 1.0e-12)
	assert.True(t, math.Abs(v[2]-0) < 1.0e-9)

	_, err = SurfaceNormalNED(-1, 0)
	assert.Error(t, err)
	_, err = SurfaceNormalNED(45, 181)
	assert.Error(t, err)
}

// The slope/azimuth representation and the NED normal must agree: the cosine
// of the angle of incidence equals the projection of the solar vector on the
// surface normal.
func Test_surface_normal_matches_angle_of_incidence(t *testing.T) {
	date := time.Date(2019, time.February, 13, 10, 30, 0, 0, time.UTC)
	lat, beta, surfAz := 43.0, 45.0, 15.0

	theta, err := AngleOfIncidence(date, lat, beta, surfAz)
	assert.NoError(t, err)

	vnorm, err := SurfaceNormalNED(beta, surfAz)
	assert.NoError(t, err)
	vsol, err := SolarVectorNED(date, lat)
	assert.NoError(t, err)
	assert.False(t, vsol.IsZero())

	assert.True(t, math.Abs(math.Cos(theta)-vnorm.Dot(vsol)) < 1.0e-9)
}
