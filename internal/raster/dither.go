package raster

import (
	"fmt"
	"image"
	"math"
	"sort"

	"github.com/MaxHalford/halfgone"

	"github.com/pvieira/picoprint/internal/bitmap"
)

// A Mode names a strategy for reducing grayscale to printable dots.
type Mode string

const (
	// ModeFloydSteinberg is the default error-diffusion ditherer.
	ModeFloydSteinberg Mode = "floyd-steinberg"
	// ModeAtkinson diffuses a partial error over a wider neighborhood.
	ModeAtkinson Mode = "atkinson"
	// ModeThreshold applies a fixed threshold with no diffusion.
	ModeThreshold Mode = "threshold"
)

// Modes lists the available dither modes in a stable order.
func Modes() []string {
	modes := []string{
		string(ModeFloydSteinberg),
		string(ModeAtkinson),
		string(ModeThreshold),
	}
	sort.Strings(modes)
	return modes
}

// Dither converts gray to a packed canvas using the named mode.
func Dither(gray *image.Gray, mode Mode) (*bitmap.Canvas, error) {
	switch mode {
	case "", ModeFloydSteinberg:
		return FloydSteinberg(gray)
	case ModeAtkinson:
		return Pack(halfgone.AtkinsonDitherer{}.Apply(gray))
	case ModeThreshold:
		return Pack(halfgone.ThresholdDitherer{Threshold: 127}.Apply(gray))
	default:
		return nil, fmt.Errorf("raster: unknown dither mode %q", mode)
	}
}

// Render runs the whole pipeline: scale img to the given dot width, convert
// to lightness samples and dither to a printable canvas.
func Render(img image.Image, width int, mode Mode) (*bitmap.Canvas, error) {
	gray, err := Grayscale(img, width)
	if err != nil {
		return nil, err
	}
	return Dither(gray, mode)
}

// FloydSteinberg converts gray to a packed canvas using Floyd-Steinberg error
// diffusion. Samples are consumed in raster order, and the buffer is mutated
// in place as quantization error is pushed onto unvisited neighbors. A sample
// at or below 127 becomes a printed dot.
//
// The row-to-row data dependency means the walk must stay strictly
// left-to-right, top-to-bottom; the output is deterministic for a given
// input buffer.
func FloydSteinberg(gray *image.Gray) (*bitmap.Canvas, error) {
	width, height := gray.Bounds().Dx(), gray.Bounds().Dy()
	out := bitmap.New(width, height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := y*gray.Stride + x
			old := int(gray.Pix[i])

			dark := old <= 127
			extreme := 255
			if dark {
				extreme = 0
			}
			gray.Pix[i] = uint8(extreme)
			if err := out.Set(x, y, dark); err != nil {
				return nil, err
			}

			diff := old - extreme
			spread(gray, x+1, y, diff, 7)
			spread(gray, x-1, y+1, diff, 3)
			spread(gray, x, y+1, diff, 5)
			spread(gray, x+1, y+1, diff, 1)
		}
	}
	return out, nil
}

// spread adds diff*weight/16, rounded, to the sample at (x, y), clamping the
// result to 0..255. Neighbors outside the buffer are skipped; the weights
// used by FloydSteinberg sum to 16/16 so no error is lost except to rounding.
func spread(gray *image.Gray, x, y, diff, weight int) {
	if x < 0 || x >= gray.Bounds().Dx() || y < 0 || y >= gray.Bounds().Dy() {
		return
	}
	i := y*gray.Stride + x
	v := int(gray.Pix[i]) + int(math.Round(float64(diff)*float64(weight)/16.0))
	if v < 0 {
		v = 0
	} else if v > 255 {
		v = 255
	}
	gray.Pix[i] = uint8(v)
}

// Pack thresholds an already-quantized grayscale image into a packed canvas.
// Samples at or below 127 become printed dots.
func Pack(gray *image.Gray) (*bitmap.Canvas, error) {
	width, height := gray.Bounds().Dx(), gray.Bounds().Dy()
	out := bitmap.New(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if err := out.Set(x, y, gray.Pix[y*gray.Stride+x] <= 127); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}
