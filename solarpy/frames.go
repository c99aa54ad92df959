package solarpy

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// WGS84-style ellipsoid constants used by the frame transforms.
const (
	// EarthEquatorialAxis is the Earth equatorial radius in meters.
	EarthEquatorialAxis = 6378137.0
	// EarthPolarAxis is the Earth polar radius in meters.
	EarthPolarAxis = 6356752.3142
	// EarthEccentricity is the first eccentricity of the ellipsoid.
	EarthEccentricity = 0.081819190842622
)

// GeodeticToECEF returns the geocentric (Earth-Centered, Earth-Fixed)
// coordinates in meters for geodetic latitude and longitude in degrees and
// altitude above sea level in meters.
func GeodeticToECEF(lat, lng, h float64) (Vector, error) {
	if err := ValidateLatitude(lat); err != nil {
		return Vector{}, err
	}
	if err := ValidateLongitude(lng); err != nil {
		return Vector{}, err
	}
	if err := ValidateAltitude(h); err != nil {
		return Vector{}, err
	}

	latR := degreeToRad(lat)
	lngR := degreeToRad(lng)

	sinLat := math.Sin(latR)
	n := EarthEquatorialAxis / math.Sqrt(1-(EarthEccentricity*sinLat)*(EarthEccentricity*sinLat))

	ba := EarthPolarAxis / EarthEquatorialAxis
	return Vector{
		(n + h) * math.Cos(latR) * math.Cos(lngR),
		(n + h) * math.Cos(latR) * math.Sin(lngR),
		(ba*ba*n + h) * sinLat,
	}, nil
}

// NEDToECEF re-expresses a vector given in the local North-East-Down frame
// at latitude/longitude (degrees) in ECEF axes. The rotation is the
// transpose of the ECEF-to-NED direction cosine matrix.
func NEDToECEF(v Vector, lat, lng float64) (Vector, error) {
	if err := ValidateLatitude(lat); err != nil {
		return Vector{}, err
	}
	if err := ValidateLongitude(lng); err != nil {
		return Vector{}, err
	}

	sinLat, cosLat := math.Sincos(degreeToRad(lat))
	sinLng, cosLng := math.Sincos(degreeToRad(lng))

	// ECEF -> NED direction cosine matrix
	lne := mat.NewDense(3, 3, []float64{
		-sinLat * cosLng, -sinLat * sinLng, cosLat,
		-sinLng, cosLng, 0,
		-cosLat * cosLng, -cosLat * sinLng, -sinLat,
	})

	var out mat.VecDense
	out.MulVec(lne.T(), mat.NewVecDense(3, v[:]))
	return Vector{out.AtVec(0), out.AtVec(1), out.AtVec(2)}, nil
}
