// Package render runs the per-frame pass: every scene edge is clipped against
// the near plane, projected, and collected as a screen segment.
package render

import (
	"fmt"
	"sync"

	"wireframe-renderer/internal/camera"
	"wireframe-renderer/internal/scene"
)

// Segment is one visible edge in screen space.
type Segment struct {
	Edge    int    // index into the rendered edge slice
	Sprite  string // owning sprite
	A, B    camera.ScreenPoint
	Clipped bool // an endpoint was moved onto the near plane
}

// EdgeError records an edge that could not be clipped or projected.
type EdgeError struct {
	Edge   int
	Sprite string
	Err    error
}

func (e EdgeError) Error() string {
	return fmt.Sprintf("edge %d (%s): %v", e.Edge, e.Sprite, e.Err)
}

func (e EdgeError) Unwrap() error {
	return e.Err
}

// Stats counts what happened to a frame's edges.
type Stats struct {
	Edges   int
	Drawn   int
	Culled  int
	Clipped int
	Failed  int
}

func (s Stats) String() string {
	return fmt.Sprintf("edges %d drawn %d clipped %d culled %d failed %d", s.Edges, s.Drawn, s.Clipped, s.Culled, s.Failed)
}

// Frame is the result of one render pass. Segments and Errors are in edge
// order.
type Frame struct {
	Viewpoint camera.Viewpoint
	Segments  []Segment
	Errors    []EdgeError
	Stats     Stats
}

// Renderer clips and projects scene edges for a viewpoint.
type Renderer struct {
	proj    *camera.Projector
	workers int
}

// New returns a renderer. workers <= 1 renders on the calling goroutine.
func New(proj *camera.Projector, workers int) *Renderer {
	if workers < 1 {
		workers = 1
	}
	return &Renderer{proj: proj, workers: workers}
}

// Projector returns the projector the renderer uses.
func (r *Renderer) Projector() *camera.Projector {
	return r.proj
}

type outcome struct {
	seg    Segment
	culled bool
	err    error
}

// minChunk keeps tiny scenes on one goroutine.
const minChunk = 256

// Render runs one pass. The only frame-level error is an unusable viewpoint;
// a bad edge is recorded in Frame.Errors and skipped.
func (r *Renderer) Render(edges []scene.Edge, vp camera.Viewpoint) (Frame, error) {
	f, err := vp.Frame()
	if err != nil {
		return Frame{}, fmt.Errorf("render: viewpoint %v: %w", vp, err)
	}

	outcomes := make([]outcome, len(edges))
	r.each(len(edges), func(i int) {
		outcomes[i] = r.edge(i, edges[i], vp, f)
	})

	frame := Frame{Viewpoint: vp, Stats: Stats{Edges: len(edges)}}
	for _, o := range outcomes {
		switch {
		case o.err != nil:
			frame.Errors = append(frame.Errors, EdgeError{Edge: o.seg.Edge, Sprite: o.seg.Sprite, Err: o.err})
			frame.Stats.Failed++
		case o.culled:
			frame.Stats.Culled++
		default:
			frame.Segments = append(frame.Segments, o.seg)
			frame.Stats.Drawn++
			if o.seg.Clipped {
				frame.Stats.Clipped++
			}
		}
	}
	return frame, nil
}

func (r *Renderer) edge(i int, e scene.Edge, vp camera.Viewpoint, f camera.Frame) outcome {
	seg := Segment{Edge: i, Sprite: e.Sprite}
	a, b, res, err := r.proj.Segment(e.A, e.B, vp.Position, f)
	if err != nil {
		return outcome{seg: seg, err: err}
	}
	if res.Culled {
		return outcome{seg: seg, culled: true}
	}
	seg.A, seg.B, seg.Clipped = a, b, res.Clipped()
	return outcome{seg: seg}
}

// each calls fn for every index in [0, n), splitting the range into contiguous
// chunks across the worker pool. fn must only write its own slot.
func (r *Renderer) each(n int, fn func(i int)) {
	workers := r.workers
	if maxWorkers := (n + minChunk - 1) / minChunk; workers > maxWorkers {
		workers = maxWorkers
	}
	if workers <= 1 {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}

	chunk := (n + workers - 1) / workers
	chunks := make(chan [2]int, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for c := range chunks {
				for i := c[0]; i < c[1]; i++ {
					fn(i)
				}
			}
		}()
	}
	for lo := 0; lo < n; lo += chunk {
		chunks <- [2]int{lo, min(lo+chunk, n)}
	}
	close(chunks)
	wg.Wait()
}
