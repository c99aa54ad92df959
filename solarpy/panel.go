package solarpy

import (
	"math"
	"time"
)

// SolarPanel models a flat photovoltaic panel: a surface with an area, a
// conversion efficiency, a geodetic position, an orientation given as the
// unit normal in the local NED frame, and a timestamp (solar time). Its
// setters apply the same validation, and fail with the same error kinds,
// as the core functions they feed.
type SolarPanel struct {
	Surface    float64 // m2
	Efficiency float64 // 0 to 1
	Name       string

	lat, lng, alt float64
	vnorm         Vector
	date          time.Time
}

// NewSolarPanel creates a panel with the given surface in m2 and efficiency
// in [0, 1]. The name is informational and may be empty.
func NewSolarPanel(surface, efficiency float64, name string) (*SolarPanel, error) {
	if err := checkFinite("surface", surface); err != nil {
		return nil, err
	}
	if surface < 0 {
		return nil, &RangeError{Quantity: "surface", Value: surface, Min: 0, Max: math.MaxFloat64}
	}
	if err := checkRange("efficiency", efficiency, 0, 1); err != nil {
		return nil, err
	}
	return &SolarPanel{Surface: surface, Efficiency: efficiency, Name: name}, nil
}

// SetPosition sets the panel's latitude and longitude in degrees and
// altitude above sea level in meters.
func (p *SolarPanel) SetPosition(lat, lng, h float64) error {
	if err := ValidateLatitude(lat); err != nil {
		return err
	}
	if err := ValidateLongitude(lng); err != nil {
		return err
	}
	if err := ValidateAltitude(h); err != nil {
		return err
	}
	p.lat, p.lng, p.alt = lat, lng, h
	return nil
}

// SetOrientation sets the unit normal of the panel plane in the NED frame.
// Only the direction matters; the vector must be non-zero.
func (p *SolarPanel) SetOrientation(vnorm Vector) error {
	if vnorm.IsZero() {
		return ErrZeroVector
	}
	p.vnorm = vnorm.Normalized()
	return nil
}

// SetDateTime sets the date and solar time of the panel.
func (p *SolarPanel) SetDateTime(date time.Time) {
	p.date = date
}

// Power returns the output power of the panel in W for its current
// position, orientation and time.
func (p *SolarPanel) Power() (float64, error) {
	if p.vnorm.IsZero() {
		return 0, ErrZeroVector
	}
	g, err := IrradianceOnPlane(p.vnorm, p.alt, p.date, p.lat)
	if err != nil {
		return 0, err
	}
	return g * p.Surface * p.Efficiency, nil
}
