package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"os"

	"github.com/nfnt/resize"
)

// ErrInvalidWidth is returned when the target width is zero or negative.
var ErrInvalidWidth = errors.New("raster: target width must be greater than zero")

// ErrEmptyImage is returned when the source image has no pixels, or the
// aspect-preserving resize would produce none.
var ErrEmptyImage = errors.New("raster: image has no pixels")

// Decode reads and decodes the image at path.
func Decode(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("raster: open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("raster: decode %s: %w", path, err)
	}
	return img, nil
}

// Grayscale scales img to the given dot width, preserving aspect ratio, and
// converts it to 8-bit lightness samples. Scaling uses the triangle (Bilinear)
// filter; any alpha is flattened onto an opaque white background before the
// lightness of each pixel is computed.
func Grayscale(img image.Image, width int) (*image.Gray, error) {
	if width <= 0 {
		return nil, ErrInvalidWidth
	}
	srcW, srcH := img.Bounds().Dx(), img.Bounds().Dy()
	if srcW == 0 || srcH == 0 {
		return nil, ErrEmptyImage
	}

	height := int(math.Round(float64(srcH) * float64(width) / float64(srcW)))
	if height == 0 {
		return nil, ErrEmptyImage
	}

	scaled := resize.Resize(uint(width), uint(height), img, resize.Bilinear)
	b := scaled.Bounds()

	gray := image.NewGray(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, bl, a := scaled.At(b.Min.X+x, b.Min.Y+y).RGBA()
			gray.SetGray(x, y, color.Gray{Y: lightness(r, g, bl, a)})
		}
	}
	return gray, nil
}

// lightness composites an alpha-premultiplied 16-bit pixel onto a white
// background and returns the HSL lightness of the result: the mean of the
// largest and smallest channel, scaled to 0..255.
func lightness(r, g, b, a uint32) uint8 {
	const m = 0xffff
	back := 1.0 - float64(a)/m

	comp := func(v uint32) float64 {
		c := float64(v)/m + back
		if c > 1 {
			c = 1
		}
		return c
	}

	rf, gf, bf := comp(r), comp(g), comp(b)
	max := math.Max(rf, math.Max(gf, bf))
	min := math.Min(rf, math.Min(gf, bf))
	return uint8(math.Round((max + min) / 2 * 255))
}
