package camera

import (
	"fmt"

	"wireframe-renderer/internal/mathutil"
)

// DefaultYaw matches the starting view: looking down +Y.
const DefaultYaw = 90.0

// Viewpoint is the camera position and heading for a frame.
// Yaw is measured in the horizontal plane from +X toward +Y, Pitch above the
// horizon. Both in degrees.
type Viewpoint struct {
	Position mathutil.Vec3
	Yaw      float64
	Pitch    float64
}

// DefaultViewpoint returns a viewpoint at the origin looking down +Y.
func DefaultViewpoint() Viewpoint {
	return Viewpoint{Yaw: DefaultYaw}
}

// Heading returns the view direction.
func (v Viewpoint) Heading() mathutil.Vec3 {
	return mathutil.HeadingFromAngles(v.Yaw, v.Pitch)
}

// Frame validates the viewpoint and builds its camera frame.
func (v Viewpoint) Frame() (Frame, error) {
	if err := checkFinite("position", v.Position); err != nil {
		return Frame{}, err
	}
	if err := checkFinite("angles", mathutil.Vec3{v.Yaw, v.Pitch, 0}); err != nil {
		return Frame{}, err
	}
	return NewFrame(v.Heading())
}

func (v Viewpoint) String() string {
	p := v.Position
	return fmt.Sprintf("(%.2f, %.2f, %.2f) yaw=%.1f pitch=%.1f", p[0], p[1], p[2], v.Yaw, v.Pitch)
}
