package camera

import "wireframe-renderer/internal/mathutil"

// Frame is the camera basis for one rendered frame.
//
// Up is always world +Z. Right is the in-plane perpendicular of Forward and is
// not renormalized: a pitched Forward gives a shorter Right, which compresses
// the image horizontally. Looking up or down never tilts Up.
type Frame struct {
	Forward mathutil.Vec3
	Right   mathutil.Vec3
	Up      mathutil.Vec3
}

// NewFrame builds the frame for a view direction. The heading need not be unit
// length but must be finite and non-zero.
func NewFrame(heading mathutil.Vec3) (Frame, error) {
	f, err := unit("heading", heading)
	if err != nil {
		return Frame{}, err
	}
	return Frame{
		Forward: f,
		Right:   mathutil.Vec3{-f[1], f[0], 0},
		Up:      mathutil.WorldUp,
	}, nil
}
