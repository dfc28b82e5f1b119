package render

import (
	"image/color"

	"wireframe-renderer/internal/raster"
)

// Style controls how a frame is stroked.
type Style struct {
	Background color.NRGBA
	Stroke     color.NRGBA
	LineWidth  float64
	// Scale multiplies screen coordinates and widths, for drawing into a
	// supersampled buffer.
	Scale     float64
	Crosshair bool
}

// DefaultStyle draws 2px black lines on white with the crosshair.
func DefaultStyle() Style {
	return Style{
		Background: color.NRGBA{255, 255, 255, 255},
		Stroke:     color.NRGBA{0, 0, 0, 255},
		LineWidth:  2,
		Scale:      1,
		Crosshair:  true,
	}
}

// Crosshair size and its offset above the surface center, in pixels.
const (
	crosshairSize = 10
	crosshairLift = 20
)

// Draw clears fb and strokes every segment of f.
func Draw(fb *raster.FrameBuffer, f Frame, s Style) {
	scale := s.Scale
	if scale <= 0 {
		scale = 1
	}

	fb.Clear(s.Background)
	for _, seg := range f.Segments {
		fb.DrawLine(seg.A.X*scale, seg.A.Y*scale, seg.B.X*scale, seg.B.Y*scale, s.LineWidth*scale, s.Stroke)
	}

	if s.Crosshair {
		x, y, size := CrosshairRect(fb.Width, fb.Height, scale)
		fb.FillRect(x, y, size, size, s.Stroke)
	}
}

// CrosshairRect returns the top-left corner and side of the crosshair box for
// a w×h surface.
func CrosshairRect(w, h int, scale float64) (x, y, size int) {
	size = int(crosshairSize * scale)
	return w / 2, h/2 - int(crosshairLift*scale), size
}
