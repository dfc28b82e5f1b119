package camera

import (
	"errors"
	"fmt"
	"math"

	"wireframe-renderer/internal/mathutil"
)

// Default projection constants.
const (
	DefaultWidth  = 800
	DefaultHeight = 800
	DefaultFocal  = 300.0
	DefaultNear   = 0.1
)

// Params are the tunable projection constants.
type Params struct {
	Width  int     // surface width in pixels
	Height int     // surface height in pixels
	Focal  float64 // perspective scale numerator; larger narrows the field of view
	Near   float64 // near-plane distance, also the projector's depth floor
}

// DefaultParams returns an 800×800 surface with focal 300 and near plane 0.1.
func DefaultParams() Params {
	return Params{
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Focal:  DefaultFocal,
		Near:   DefaultNear,
	}
}

// Validate checks that the surface is non-empty and the constants are finite
// and strictly positive.
func (p Params) Validate() error {
	var errs []error
	if p.Width <= 0 || p.Height <= 0 {
		errs = append(errs, fmt.Errorf("surface %dx%d is empty", p.Width, p.Height))
	}
	if !(p.Focal > 0) || math.IsInf(p.Focal, 0) {
		errs = append(errs, fmt.Errorf("focal %g must be positive and finite", p.Focal))
	}
	if !(p.Near > 0) || math.IsInf(p.Near, 0) {
		errs = append(errs, fmt.Errorf("near plane %g must be positive and finite", p.Near))
	}
	if len(errs) > 0 {
		return fmt.Errorf("camera: invalid params: %w", errors.Join(errs...))
	}
	return nil
}

// ScreenPoint is a position in surface pixels, y growing downward.
type ScreenPoint struct {
	X, Y float64
}

// Projector maps camera-relative world points to the surface.
// It holds no per-frame state and is safe for concurrent use.
type Projector struct {
	params       Params
	halfW, halfH float64
}

// NewProjector validates p and returns a projector for it.
func NewProjector(p Params) (*Projector, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &Projector{
		params: p,
		halfW:  float64(p.Width) / 2,
		halfH:  float64(p.Height) / 2,
	}, nil
}

// Params returns the projector's constants.
func (p *Projector) Params() Params {
	return p.params
}

// Center returns the surface point a dead-ahead point projects to.
func (p *Projector) Center() ScreenPoint {
	return ScreenPoint{X: p.halfW, Y: p.halfH}
}

// Scale returns the perspective scale for a forward depth. Depths below the
// near plane are clamped to it, so the result never exceeds Focal/Near.
func (p *Projector) Scale(depth float64) float64 {
	if depth < p.params.Near {
		depth = p.params.Near
	}
	return p.params.Focal / depth
}

// Project maps world point pt, seen from eye through frame f, to the surface.
// It does not decide visibility; callers clip first.
func (p *Projector) Project(pt, eye mathutil.Vec3, f Frame) (ScreenPoint, error) {
	if err := checkFinite("point", pt); err != nil {
		return ScreenPoint{}, err
	}
	if err := checkFinite("eye", eye); err != nil {
		return ScreenPoint{}, err
	}

	rel := pt.Sub(eye)
	xCam := rel.Dot(f.Right)
	yCam := rel.Dot(f.Forward)
	zCam := rel.Dot(f.Up)

	scale := p.Scale(yCam)
	sp := ScreenPoint{
		X: xCam*scale + p.halfW,
		Y: p.halfH - zCam*scale,
	}
	if math.IsNaN(sp.X) || math.IsInf(sp.X, 0) || math.IsNaN(sp.Y) || math.IsInf(sp.Y, 0) {
		return ScreenPoint{}, fmt.Errorf("%w: projection of %v overflows", ErrNonFiniteInput, pt)
	}
	return sp, nil
}
