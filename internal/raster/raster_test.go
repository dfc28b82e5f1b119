package raster

import (
	"image/color"
	"math"
	"testing"
)

var (
	white = color.NRGBA{255, 255, 255, 255}
	black = color.NRGBA{0, 0, 0, 255}
)

func countColor(fb *FrameBuffer, c color.NRGBA) int {
	n := 0
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			if fb.At(x, y) == c {
				n++
			}
		}
	}
	return n
}

func TestFrameBufferClearAndSet(t *testing.T) {
	fb := NewFrameBuffer(7, 5)
	fb.Clear(white)
	if n := countColor(fb, white); n != 35 {
		t.Fatalf("Clear filled %d pixels, want 35", n)
	}

	fb.Set(3, 2, black)
	if fb.At(3, 2) != black {
		t.Error("Set pixel not read back")
	}

	// Out of range is ignored.
	fb.Set(-1, 0, black)
	fb.Set(7, 0, black)
	fb.Set(0, 5, black)
	if n := countColor(fb, black); n != 1 {
		t.Errorf("found %d black pixels, want 1", n)
	}
	if fb.At(-1, -1) != (color.NRGBA{}) {
		t.Error("out-of-range At should be transparent")
	}
}

func TestFillRectCrops(t *testing.T) {
	fb := NewFrameBuffer(10, 10)
	fb.FillRect(8, 8, 5, 5, black)
	if n := countColor(fb, black); n != 4 {
		t.Errorf("cropped rect covers %d pixels, want 4", n)
	}
	fb.FillRect(-3, -3, 4, 4, black)
	if n := countColor(fb, black); n != 5 {
		t.Errorf("after second rect %d pixels, want 5", n)
	}
}

func TestDrawLineHorizontal(t *testing.T) {
	fb := NewFrameBuffer(20, 10)
	fb.DrawLine(2, 5, 12, 5, 1, black)
	for x := 2; x <= 12; x++ {
		if fb.At(x, 5) != black {
			t.Errorf("pixel (%d,5) not drawn", x)
		}
	}
	if n := countColor(fb, black); n != 11 {
		t.Errorf("line covers %d pixels, want 11", n)
	}
}

func TestDrawLineDiagonalAndWidth(t *testing.T) {
	fb := NewFrameBuffer(20, 20)
	fb.DrawLine(0, 0, 9, 9, 1, black)
	for i := 0; i <= 9; i++ {
		if fb.At(i, i) != black {
			t.Errorf("pixel (%d,%d) not drawn", i, i)
		}
	}

	thick := NewFrameBuffer(20, 20)
	thick.DrawLine(5, 10, 15, 10, 2, black)
	if n := countColor(thick, black); n != 24 {
		t.Errorf("2px line covers %d pixels, want 24", n)
	}
}

func TestDrawLineFarOffscreen(t *testing.T) {
	fb := NewFrameBuffer(100, 100)
	// Crosses the surface from a huge distance.
	fb.DrawLine(-1e9, 50, 1e9, 50, 1, black)
	if n := countColor(fb, black); n != 100 {
		t.Errorf("crossing line covers %d pixels, want 100", n)
	}

	empty := NewFrameBuffer(100, 100)
	empty.DrawLine(-500, -500, -200, -10, 2, black)
	empty.DrawLine(0, math.NaN(), 50, 50, 2, black)
	if n := countColor(empty, black); n != 0 {
		t.Errorf("off-surface lines drew %d pixels", n)
	}
}

func TestClipLine(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 float64
		ok             bool
		want           [4]float64
	}{
		{"inside", 1, 1, 5, 5, true, [4]float64{1, 1, 5, 5}},
		{"crossing", -10, 5, 20, 5, true, [4]float64{0, 5, 10, 5}},
		{"outside", -5, -5, -1, -1, false, [4]float64{}},
		{"vertical outside", 12, 0, 12, 10, false, [4]float64{}},
		{"diagonal", -5, -5, 15, 15, true, [4]float64{0, 0, 10, 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x0, y0, x1, y1, ok := ClipLine(tt.x0, tt.y0, tt.x1, tt.y1, 0, 0, 10, 10)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if !ok {
				return
			}
			got := [4]float64{x0, y0, x1, y1}
			for i := range got {
				if math.Abs(got[i]-tt.want[i]) > 1e-9 {
					t.Errorf("got %v, want %v", got, tt.want)
					break
				}
			}
		})
	}
}

func TestImageCopiesBuffer(t *testing.T) {
	fb := NewFrameBuffer(4, 3)
	fb.Set(1, 2, black)
	img := fb.Image()
	if img.Bounds().Dx() != 4 || img.Bounds().Dy() != 3 {
		t.Fatalf("image bounds = %v", img.Bounds())
	}
	if img.NRGBAAt(1, 2) != black {
		t.Error("pixel not copied")
	}
	fb.Set(0, 0, black)
	if img.NRGBAAt(0, 0) == black {
		t.Error("image shares memory with buffer")
	}
}
