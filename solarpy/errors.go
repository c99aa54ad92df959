package solarpy

import (
	"errors"
	"fmt"
)

var (
	// ErrZeroVector is returned when a direction is required but the zero
	// vector was supplied.
	ErrZeroVector = errors.New("vector must be non-zero")
)

// A RangeError reports a numeric argument outside its physically valid
// domain. The value is never silently clamped; the caller gets the bounds
// that were violated.
type RangeError struct {
	Quantity string
	Value    float64
	Min, Max float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s must be %g <= %s <= %g, got %g",
		e.Quantity, e.Min, e.Quantity, e.Max, e.Value)
}

// A NotFiniteError reports a NaN or infinite argument where a finite number
// is required.
type NotFiniteError struct {
	Quantity string
	Value    float64
}

func (e *NotFiniteError) Error() string {
	return fmt.Sprintf("%s must be a finite number, got %v", e.Quantity, e.Value)
}

// A PermanentDayNightError signals that the sunrise/sunset hour-angle
// equation has no real solution: the latitude is in continuous daylight or
// continuous darkness on that day. Callers decide which by checking
// DaylightHours (0 means permanent night, 24 permanent day).
type PermanentDayNightError struct {
	N   int     // day of the year
	Lat float64 // latitude in degrees
}

func (e *PermanentDayNightError) Error() string {
	return fmt.Sprintf("permanent night (or day) on latitude %g on day %d", e.Lat, e.N)
}

// IsPermanentDayNight reports whether err signals the no-sunrise/no-sunset
// condition.
func IsPermanentDayNight(err error) bool {
	var pe *PermanentDayNightError
	return errors.As(err, &pe)
}
