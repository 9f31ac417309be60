package shape

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidDimension is returned by Validate when a radius, side or height
// is not a finite, strictly positive number.
var ErrInvalidDimension = errors.New("invalid dimension")

// DimensionError describes which dimension of which solid failed validation
type DimensionError struct {
	Shape string
	Field string
	Value float64
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("%s: %s %s must be finite and > 0, got %v", ErrInvalidDimension, e.Shape, e.Field, e.Value)
}

// Unwrap lets errors.Is match ErrInvalidDimension
func (e *DimensionError) Unwrap() error {
	return ErrInvalidDimension
}

func checkDimension(shape, field string, value float64) error {
	if value > 0 && !math.IsInf(value, 0) {
		return nil
	}
	return &DimensionError{Shape: shape, Field: field, Value: value}
}

func checkCenter(shape string, center Point) error {
	for i, name := range [3]string{"x", "y", "z"} {
		v := center.Vec3[i]
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%s center %s is not finite: %v", shape, name, v)
		}
	}
	return nil
}
