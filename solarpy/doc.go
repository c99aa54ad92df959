// Package solarpy computes solar geometry and irradiance from closed-form
// astronomical approximations: declination, hour angle, zenith/azimuth/
// altitude angles, sunrise and sunset, daylight duration, extraterrestrial
// and beam irradiance, and the irradiance incident on an arbitrarily
// oriented plane.
//
// The model follows Duffie, J.A., and Beckman, W.A. (1974) "Solar energy
// thermal processes", with air-mass approximations after Kasten & Young
// (1989) and Young (1994). A 365-day year is assumed throughout; leap years
// are tolerated but not modelled.
//
// Angles are float64 radians unless a name says otherwise (latitude,
// longitude, slope and surface azimuth arguments are degrees, matching the
// geodetic convention). Longitude is accepted in [-180, 180] only.
//
// Every function is pure: no state is read or written between calls, so all
// of the package is safe for concurrent use.
package solarpy
