package camera

import (
	"fmt"
	"math"

	"wireframe-renderer/internal/mathutil"
)

// ClipResult is a segment after near-plane clipping. A and B are only
// meaningful when Culled is false.
type ClipResult struct {
	A, B     mathutil.Vec3
	Culled   bool
	ClippedA bool // A was moved onto the near plane
	ClippedB bool // B was moved onto the near plane
}

// Clipped reports whether either endpoint was moved.
func (r ClipResult) Clipped() bool {
	return r.ClippedA || r.ClippedB
}

// Clip trims segment p1–p2 to the half-space in front of the near plane of a
// camera at eye looking along forward. Distances are measured along the
// normalized forward direction; an endpoint exactly on the near plane is
// visible.
//
// Both the cull test and the interpolation use the near-plane distance, so a
// clipped endpoint always sits at depth Near and never reaches the
// projector's depth floor from below.
func (p *Projector) Clip(p1, p2, eye, forward mathutil.Vec3) (ClipResult, error) {
	if err := checkFinite("p1", p1); err != nil {
		return ClipResult{}, err
	}
	if err := checkFinite("p2", p2); err != nil {
		return ClipResult{}, err
	}
	if err := checkFinite("eye", eye); err != nil {
		return ClipResult{}, err
	}
	f, err := unit("forward", forward)
	if err != nil {
		return ClipResult{}, err
	}

	near := p.params.Near
	d1 := f.Dot(p1.Sub(eye))
	d2 := f.Dot(p2.Sub(eye))
	if math.IsNaN(d1) || math.IsInf(d1, 0) || math.IsNaN(d2) || math.IsInf(d2, 0) {
		return ClipResult{}, fmt.Errorf("%w: near-plane distances %g and %g overflow", ErrNonFiniteInput, d1, d2)
	}

	res := ClipResult{A: p1, B: p2}
	switch {
	case d1 < near && d2 < near:
		return ClipResult{Culled: true}, nil
	case d1 < near:
		res.A, err = toNearPlane(p1, p2, d1, d2, near)
		res.ClippedA = true
	case d2 < near:
		res.B, err = toNearPlane(p2, p1, d2, d1, near)
		res.ClippedB = true
	}
	if err != nil {
		return ClipResult{}, err
	}
	return res, nil
}

// degenerateGap is the smallest front/behind distance difference that is
// interpolated.
const degenerateGap = 1e-12

// toNearPlane moves behind along the segment toward front until its forward
// distance equals near.
func toNearPlane(behind, front mathutil.Vec3, dBehind, dFront, near float64) (mathutil.Vec3, error) {
	gap := dFront - dBehind
	if !(gap >= degenerateGap) {
		return mathutil.Vec3{}, fmt.Errorf("%w: distances %g and %g straddle near plane %g", ErrDegenerateClip, dBehind, dFront, near)
	}
	t := (near - dBehind) / gap
	pt := mathutil.Lerp(behind, front, t)
	if err := checkFinite("clipped point", pt); err != nil {
		return mathutil.Vec3{}, err
	}
	return pt, nil
}

// Segment clips p1–p2 against the near plane of frame f at eye and projects the
// surviving endpoints. When res.Culled is set, a and b are zero.
func (p *Projector) Segment(p1, p2, eye mathutil.Vec3, f Frame) (a, b ScreenPoint, res ClipResult, err error) {
	res, err = p.Clip(p1, p2, eye, f.Forward)
	if err != nil || res.Culled {
		return ScreenPoint{}, ScreenPoint{}, res, err
	}
	if a, err = p.Project(res.A, eye, f); err != nil {
		return ScreenPoint{}, ScreenPoint{}, res, err
	}
	if b, err = p.Project(res.B, eye, f); err != nil {
		return ScreenPoint{}, ScreenPoint{}, res, err
	}
	return a, b, res, nil
}
