package scene

import (
	"errors"
	"fmt"
	"math"

	"wireframe-renderer/internal/mathutil"
)

// Sprite is one wireframe object. Edges and Faces index into Vertices.
// Faces are carried along but never rendered.
type Sprite struct {
	ID       string
	Vertices []mathutil.Vec3
	Edges    [][2]int
	Faces    [][]int
}

// Scene is the fully loaded geometry for a render pass.
type Scene struct {
	Sprites []Sprite
}

// Edge is a world-space segment ready for projection.
type Edge struct {
	A, B   mathutil.Vec3
	Sprite string
}

// Edges flattens every sprite into world-space segments, sprite by sprite in
// declaration order.
func (s *Scene) Edges() []Edge {
	n := 0
	for i := range s.Sprites {
		n += len(s.Sprites[i].Edges)
	}
	out := make([]Edge, 0, n)
	for i := range s.Sprites {
		sp := &s.Sprites[i]
		for _, e := range sp.Edges {
			out = append(out, Edge{A: sp.Vertices[e[0]], B: sp.Vertices[e[1]], Sprite: sp.ID})
		}
	}
	return out
}

// Counts returns total vertices, edges and faces.
func (s *Scene) Counts() (verts, edges, faces int) {
	for i := range s.Sprites {
		verts += len(s.Sprites[i].Vertices)
		edges += len(s.Sprites[i].Edges)
		faces += len(s.Sprites[i].Faces)
	}
	return verts, edges, faces
}

// Bounds returns the axis-aligned box around the sprite's vertices.
// ok is false for a sprite without vertices.
func (sp *Sprite) Bounds() (lo, hi mathutil.Vec3, ok bool) {
	if len(sp.Vertices) == 0 {
		return lo, hi, false
	}
	lo = mathutil.Vec3{math.Inf(1), math.Inf(1), math.Inf(1)}
	hi = mathutil.Vec3{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	for _, v := range sp.Vertices {
		for k := 0; k < 3; k++ {
			lo[k] = math.Min(lo[k], v[k])
			hi[k] = math.Max(hi[k], v[k])
		}
	}
	return lo, hi, true
}

// Bounds returns the box around every sprite in the scene.
func (s *Scene) Bounds() (lo, hi mathutil.Vec3, ok bool) {
	for i := range s.Sprites {
		l, h, has := s.Sprites[i].Bounds()
		if !has {
			continue
		}
		if !ok {
			lo, hi, ok = l, h, true
			continue
		}
		for k := 0; k < 3; k++ {
			lo[k] = math.Min(lo[k], l[k])
			hi[k] = math.Max(hi[k], h[k])
		}
	}
	return lo, hi, ok
}

// Validate checks that every vertex is finite and every index is in range.
func (sp *Sprite) Validate() error {
	var errs []error
	for i, v := range sp.Vertices {
		if !mathutil.IsFinite(v) {
			errs = append(errs, fmt.Errorf("vertex %d is not finite: %v", i, v))
		}
	}
	n := len(sp.Vertices)
	for i, e := range sp.Edges {
		if e[0] < 0 || e[0] >= n || e[1] < 0 || e[1] >= n {
			errs = append(errs, fmt.Errorf("edge %d %v out of range (%d vertices)", i, e, n))
		}
	}
	for i, f := range sp.Faces {
		for _, vi := range f {
			if vi < 0 || vi >= n {
				errs = append(errs, fmt.Errorf("face %d %v out of range (%d vertices)", i, f, n))
				break
			}
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("scene: sprite %q: %w", sp.ID, errors.Join(errs...))
	}
	return nil
}

// Validate checks every sprite.
func (s *Scene) Validate() error {
	var errs []error
	for i := range s.Sprites {
		if err := s.Sprites[i].Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
