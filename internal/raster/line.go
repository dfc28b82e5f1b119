package raster

import (
	"image/color"
	"math"
)

// DrawLine strokes a line from (x0, y0) to (x1, y1) with a square brush of
// the given width, stepping one pixel along the major axis (DDA).
//
// Endpoints may lie far outside the buffer: the segment is first clipped to
// the buffer bounds grown by the brush width, so a line that only grazes the
// surface costs no more than one that fits on it. Non-finite endpoints draw
// nothing.
func (fb *FrameBuffer) DrawLine(x0, y0, x1, y1, width float64, c color.NRGBA) {
	pad := math.Max(width, 1)
	x0, y0, x1, y1, ok := ClipLine(x0, y0, x1, y1,
		-pad, -pad, float64(fb.Width)+pad, float64(fb.Height)+pad)
	if !ok {
		return
	}

	size := int(math.Round(width))
	if size < 1 {
		size = 1
	}
	off := size / 2

	dx := x1 - x0
	dy := y1 - y0
	steps := int(math.Ceil(math.Max(math.Abs(dx), math.Abs(dy))))
	if steps == 0 {
		fb.stamp(int(math.Round(x0)), int(math.Round(y0)), size, off, c)
		return
	}

	xInc := dx / float64(steps)
	yInc := dy / float64(steps)
	for i := 0; i <= steps; i++ {
		x := x0 + xInc*float64(i)
		y := y0 + yInc*float64(i)
		fb.stamp(int(math.Round(x)), int(math.Round(y)), size, off, c)
	}
}

func (fb *FrameBuffer) stamp(x, y, size, off int, c color.NRGBA) {
	if size == 1 {
		fb.Set(x, y, c)
		return
	}
	fb.FillRect(x-off, y-off, size, size, c)
}

// ClipLine clips a segment to the rectangle [minX, maxX]×[minY, maxY]
// (Liang–Barsky). ok is false when nothing of the segment is inside or an
// endpoint is not finite.
func ClipLine(x0, y0, x1, y1, minX, minY, maxX, maxY float64) (cx0, cy0, cx1, cy1 float64, ok bool) {
	for _, v := range [4]float64{x0, y0, x1, y1} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, 0, 0, 0, false
		}
	}

	dx := x1 - x0
	dy := y1 - y0
	p := [4]float64{-dx, dx, -dy, dy}
	q := [4]float64{x0 - minX, maxX - x0, y0 - minY, maxY - y0}

	t0, t1 := 0.0, 1.0
	for i := range p {
		if p[i] == 0 {
			if q[i] < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		r := q[i] / p[i]
		if p[i] < 0 {
			if r > t1 {
				return 0, 0, 0, 0, false
			}
			if r > t0 {
				t0 = r
			}
		} else {
			if r < t0 {
				return 0, 0, 0, 0, false
			}
			if r < t1 {
				t1 = r
			}
		}
	}
	return x0 + t0*dx, y0 + t0*dy, x0 + t1*dx, y0 + t1*dy, true
}
