// Package input maps held keys to viewpoint motion.
package input

import (
	"math"

	"wireframe-renderer/internal/camera"
	"wireframe-renderer/internal/mathutil"

	"github.com/go-gl/mathgl/mgl64"
)

// Default speeds: world units per second and degrees per second.
const (
	DefaultMoveSpeed = 100.0
	DefaultTurnSpeed = 100.0
	MaxPitch         = 89.0
)

// Keys is the set of movement keys held during a frame.
type Keys struct {
	Left, Right      bool // turn
	Forward, Back    bool // walk along the horizontal heading
	LookUp, LookDown bool
}

// Any reports whether any key is held.
func (k Keys) Any() bool {
	return k.Left || k.Right || k.Forward || k.Back || k.LookUp || k.LookDown
}

// Motion converts held keys into viewpoint changes.
type Motion struct {
	MoveSpeed float64
	TurnSpeed float64
}

// DefaultMotion returns the standard walking speeds.
func DefaultMotion() Motion {
	return Motion{MoveSpeed: DefaultMoveSpeed, TurnSpeed: DefaultTurnSpeed}
}

// Step advances vp by dt seconds. Turning is applied before walking, so a
// frame that turns and walks moves along the new heading. Walking ignores
// pitch.
func (m Motion) Step(vp camera.Viewpoint, k Keys, dt float64) camera.Viewpoint {
	turn := m.TurnSpeed * dt
	move := m.MoveSpeed * dt

	if k.Left {
		vp.Yaw -= turn
	}
	if k.Right {
		vp.Yaw += turn
	}
	vp.Yaw = math.Mod(vp.Yaw, 360)
	if vp.Yaw < 0 {
		vp.Yaw += 360
	}

	if k.LookUp {
		vp.Pitch += turn
	}
	if k.LookDown {
		vp.Pitch -= turn
	}
	vp.Pitch = mgl64.Clamp(vp.Pitch, -MaxPitch, MaxPitch)

	rad := mathutil.Deg2Rad(vp.Yaw)
	walk := mathutil.Vec3{math.Cos(rad), math.Sin(rad), 0}.Mul(move)
	if k.Forward {
		vp.Position = vp.Position.Add(walk)
	}
	if k.Back {
		vp.Position = vp.Position.Sub(walk)
	}
	return vp
}
