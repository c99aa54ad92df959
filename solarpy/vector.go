package solarpy

import "gonum.org/v1/gonum/floats"

// Vector is a 3-component vector. Depending on context its components are
// either NED axes (North, East, Down) or ECEF axes (X, Y, Z).
type Vector [3]float64

// Dot returns the scalar product of v and u.
func (v Vector) Dot(u Vector) float64 {
	return floats.Dot(v[:], u[:])
}

// Norm returns the Euclidean magnitude of v.
func (v Vector) Norm() float64 {
	return floats.Norm(v[:], 2)
}

// Normalized returns the unit vector in the direction of v, or the zero
// vector if v is zero.
func (v Vector) Normalized() Vector {
	n := v.Norm()
	if n == 0 {
		return Vector{}
	}
	return Vector{v[0] / n, v[1] / n, v[2] / n}
}

// IsZero reports whether all components are exactly zero. The zero vector is
// the "no sun contribution" sentinel used by SolarVectorNED.
func (v Vector) IsZero() bool {
	return v == Vector{}
}
