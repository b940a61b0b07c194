package raster

import (
	"fmt"
	"image/png"
	"os"

	"github.com/pvieira/picoprint/internal/bitmap"
)

// SavePNG writes the canvas to path as a viewable PNG, one image pixel per
// dot. Intended for checking dither output without burning paper.
func SavePNG(c *bitmap.Canvas, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("raster: create %s: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, c); err != nil {
		return fmt.Errorf("raster: encode %s: %w", path, err)
	}
	return nil
}
