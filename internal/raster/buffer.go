package raster

import (
	"image"
	"image/color"
)

// FrameBuffer holds the rendering target as a flat slice for cache locality.
type FrameBuffer struct {
	Width  int
	Height int
	Color  []uint8 // RGBA interleaved, len = W*H*4
}

// NewFrameBuffer allocates a transparent buffer.
func NewFrameBuffer(w, h int) *FrameBuffer {
	return &FrameBuffer{
		Width:  w,
		Height: h,
		Color:  make([]uint8, w*h*4),
	}
}

// Clear fills the whole buffer with c.
func (fb *FrameBuffer) Clear(c color.NRGBA) {
	if len(fb.Color) == 0 {
		return
	}
	fb.Color[0], fb.Color[1], fb.Color[2], fb.Color[3] = c.R, c.G, c.B, c.A
	// Double the filled prefix until the buffer is full.
	for n := 4; n < len(fb.Color); n *= 2 {
		copy(fb.Color[n:], fb.Color[:n])
	}
}

// Set writes one pixel; out-of-range coordinates are ignored.
func (fb *FrameBuffer) Set(x, y int, c color.NRGBA) {
	if x < 0 || y < 0 || x >= fb.Width || y >= fb.Height {
		return
	}
	i := (y*fb.Width + x) * 4
	fb.Color[i] = c.R
	fb.Color[i+1] = c.G
	fb.Color[i+2] = c.B
	fb.Color[i+3] = c.A
}

// At reads one pixel; out-of-range coordinates read as transparent.
func (fb *FrameBuffer) At(x, y int) color.NRGBA {
	if x < 0 || y < 0 || x >= fb.Width || y >= fb.Height {
		return color.NRGBA{}
	}
	i := (y*fb.Width + x) * 4
	return color.NRGBA{fb.Color[i], fb.Color[i+1], fb.Color[i+2], fb.Color[i+3]}
}

// FillRect fills the w×h rectangle with top-left corner (x, y), cropped to
// the buffer.
func (fb *FrameBuffer) FillRect(x, y, w, h int, c color.NRGBA) {
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+w, fb.Width), min(y+h, fb.Height)
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			fb.Set(px, py, c)
		}
	}
}

// Image copies the buffer into a new NRGBA image.
func (fb *FrameBuffer) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	copy(img.Pix, fb.Color)
	return img
}
