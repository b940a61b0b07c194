// Package text rasterizes strings with the embedded Go fonts so they can be
// printed through the bitmap pipeline instead of the printer's built-in font.
package text

import (
	"fmt"
	"image"
	"strings"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

// dpi matches the dot pitch of a 203.2 dpi thermal head.
const dpi = 203.2

const defaultPointSize = 10.0

// A Style selects the face used to rasterize a banner.
type Style struct {
	PointSize float64 // defaults to 10pt
	Bold      bool
}

// Render draws message onto a white background of the given dot width, one
// line per newline. Lines are not wrapped; anything past the right edge is
// clipped by the device width.
func Render(message string, width int, style Style) (*image.Gray, error) {
	ttf := goregular.TTF
	if style.Bold {
		ttf = gobold.TTF
	}
	f, err := truetype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("text: parse font: %w", err)
	}

	pointSize := style.PointSize
	if pointSize == 0 {
		pointSize = defaultPointSize
	}
	face := truetype.NewFace(f, &truetype.Options{Size: pointSize, DPI: dpi, SubPixelsX: 1})
	defer face.Close()

	lines := strings.Split(message, "\n")
	metrics := face.Metrics()
	lineHeight := metrics.Height.Ceil()
	height := lineHeight*len(lines) + metrics.Descent.Ceil()

	img := image.NewGray(image.Rect(0, 0, width, height))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}

	drawer := &font.Drawer{Dst: img, Src: image.Black, Face: face}
	for i, line := range lines {
		drawer.Dot = fixed.P(0, metrics.Ascent.Ceil()+i*lineHeight)
		drawer.DrawString(line)
	}
	return img, nil
}
