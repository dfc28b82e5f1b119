package camera

import (
	"errors"
	"fmt"

	"wireframe-renderer/internal/mathutil"
)

var (
	// ErrInvalidHeading is returned for a zero-length view direction.
	ErrInvalidHeading = errors.New("camera: invalid heading")

	// ErrDegenerateClip is returned when a segment crosses the near plane but
	// its endpoint distances are too close to interpolate between.
	ErrDegenerateClip = errors.New("camera: degenerate clip")

	// ErrNonFiniteInput is returned when a coordinate is NaN or infinite.
	ErrNonFiniteInput = errors.New("camera: non-finite input")
)

// minLength is the smallest direction length treated as non-zero.
const minLength = 1e-12

func checkFinite(name string, v mathutil.Vec3) error {
	if !mathutil.IsFinite(v) {
		return fmt.Errorf("%w: %s = %v", ErrNonFiniteInput, name, v)
	}
	return nil
}

func unit(name string, v mathutil.Vec3) (mathutil.Vec3, error) {
	if err := checkFinite(name, v); err != nil {
		return mathutil.Vec3{}, err
	}
	l := v.Len()
	if l < minLength {
		return mathutil.Vec3{}, fmt.Errorf("%w: %s has length %g", ErrInvalidHeading, name, l)
	}
	return mathutil.Vec3{v[0] / l, v[1] / l, v[2] / l}, nil
}
