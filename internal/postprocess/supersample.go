package postprocess

import (
	"fmt"
	"image"
	"sort"
	"strings"

	"golang.org/x/image/draw"
)

var interpolators = map[string]draw.Interpolator{
	"nearest":         draw.NearestNeighbor,
	"approx-bilinear": draw.ApproxBiLinear,
	"bilinear":        draw.BiLinear,
	"catmull-rom":     draw.CatmullRom,
}

// DefaultFilter is the resampling kernel used when none is configured.
const DefaultFilter = "catmull-rom"

// Interpolator returns the resampling kernel with the given name.
func Interpolator(name string) (draw.Interpolator, error) {
	if name == "" {
		name = DefaultFilter
	}
	k, ok := interpolators[strings.ToLower(name)]
	if !ok {
		names := make([]string, 0, len(interpolators))
		for n := range interpolators {
			names = append(names, n)
		}
		sort.Strings(names)
		return nil, fmt.Errorf("postprocess: unknown filter %q (want one of %s)", name, strings.Join(names, ", "))
	}
	return k, nil
}

// Downsample reduces a supersampled frame to w×h. Filtering happens on
// premultiplied samples so strokes over a transparent background do not pick
// up dark fringes. A nil kernel means Catmull-Rom.
func Downsample(img *image.NRGBA, w, h int, k draw.Interpolator) *image.NRGBA {
	b := img.Bounds()
	if b.Dx() <= w && b.Dy() <= h {
		return img
	}
	if k == nil {
		k = draw.CatmullRom
	}

	premul := image.NewRGBA(image.Rect(0, 0, w, h))
	k.Scale(premul, premul.Bounds(), img, b, draw.Src, nil)

	out := image.NewNRGBA(premul.Bounds())
	draw.Draw(out, out.Bounds(), premul, image.Point{}, draw.Src)
	return out
}
