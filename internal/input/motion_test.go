package input

import (
	"math"
	"testing"

	"wireframe-renderer/internal/camera"
	"wireframe-renderer/internal/mathutil"
)

func TestStepTurns(t *testing.T) {
	m := DefaultMotion()
	vp := camera.DefaultViewpoint()

	left := m.Step(vp, Keys{Left: true}, 0.1)
	if math.Abs(left.Yaw-80) > 1e-9 {
		t.Errorf("left yaw = %v, want 80", left.Yaw)
	}
	right := m.Step(vp, Keys{Right: true}, 0.1)
	if math.Abs(right.Yaw-100) > 1e-9 {
		t.Errorf("right yaw = %v, want 100", right.Yaw)
	}
	both := m.Step(vp, Keys{Left: true, Right: true}, 0.1)
	if both.Yaw != vp.Yaw {
		t.Errorf("opposing keys yaw = %v, want %v", both.Yaw, vp.Yaw)
	}
}

func TestStepWrapsYaw(t *testing.T) {
	m := DefaultMotion()
	vp := camera.Viewpoint{Yaw: 5}
	got := m.Step(vp, Keys{Left: true}, 0.1)
	if math.Abs(got.Yaw-355) > 1e-9 {
		t.Errorf("yaw = %v, want 355", got.Yaw)
	}
	vp = camera.Viewpoint{Yaw: 355}
	got = m.Step(vp, Keys{Right: true}, 0.1)
	if math.Abs(got.Yaw-5) > 1e-9 {
		t.Errorf("yaw = %v, want 5", got.Yaw)
	}
}

func TestStepWalksAlongHeading(t *testing.T) {
	m := DefaultMotion()
	vp := camera.DefaultViewpoint()

	fwd := m.Step(vp, Keys{Forward: true}, 0.5)
	if !mathutil.ApproxEqual(fwd.Position, mathutil.Vec3{0, 50, 0}, 1e-9) {
		t.Errorf("forward position = %v, want (0,50,0)", fwd.Position)
	}
	back := m.Step(vp, Keys{Back: true}, 0.5)
	if !mathutil.ApproxEqual(back.Position, mathutil.Vec3{0, -50, 0}, 1e-9) {
		t.Errorf("back position = %v, want (0,-50,0)", back.Position)
	}

	// Pitch does not lift the walker.
	vp.Pitch = 45
	fwd = m.Step(vp, Keys{Forward: true}, 0.5)
	if fwd.Position[2] != 0 {
		t.Errorf("pitched walk changed height: %v", fwd.Position)
	}
}

func TestStepTurnsBeforeWalking(t *testing.T) {
	m := Motion{MoveSpeed: 10, TurnSpeed: 90}
	vp := camera.Viewpoint{Yaw: 90}

	got := m.Step(vp, Keys{Left: true, Forward: true}, 1)
	if !mathutil.ApproxEqual(got.Position, mathutil.Vec3{10, 0, 0}, 1e-9) {
		t.Errorf("position = %v, want (10,0,0)", got.Position)
	}
}

func TestStepClampsPitch(t *testing.T) {
	m := DefaultMotion()
	vp := camera.DefaultViewpoint()

	up := m.Step(vp, Keys{LookUp: true}, 5)
	if up.Pitch != MaxPitch {
		t.Errorf("pitch = %v, want %v", up.Pitch, MaxPitch)
	}
	down := m.Step(vp, Keys{LookDown: true}, 5)
	if down.Pitch != -MaxPitch {
		t.Errorf("pitch = %v, want %v", down.Pitch, -MaxPitch)
	}
	if _, err := up.Frame(); err != nil {
		t.Errorf("clamped viewpoint has no frame: %v", err)
	}
}

func TestKeysAny(t *testing.T) {
	if (Keys{}).Any() {
		t.Error("empty key set reports Any")
	}
	if !(Keys{LookDown: true}).Any() {
		t.Error("LookDown not reported by Any")
	}
}
