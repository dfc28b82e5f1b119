package batch

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
)

// Output formats.
const (
	FormatWebP = "webp"
	FormatPNG  = "png"
	FormatTGA  = "tga"
)

// NormalizeFormat lower-cases f and checks that it is supported.
func NormalizeFormat(f string) (string, error) {
	switch f = strings.ToLower(strings.TrimPrefix(f, ".")); f {
	case FormatWebP, FormatPNG, FormatTGA:
		return f, nil
	case "":
		return FormatWebP, nil
	}
	return "", fmt.Errorf("batch: unsupported format %q", f)
}

// Encode writes img to w in the given format.
func Encode(w io.Writer, img image.Image, format string) error {
	f, err := NormalizeFormat(format)
	if err != nil {
		return err
	}
	switch f {
	case FormatPNG:
		err = png.Encode(w, img)
	case FormatTGA:
		err = tga.Encode(w, img)
	default:
		err = nativewebp.Encode(w, img, nil)
	}
	if err != nil {
		return fmt.Errorf("%s encode: %w", f, err)
	}
	return nil
}
