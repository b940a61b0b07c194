// Package qr renders QR symbols as printable canvases, for devices whose
// firmware lacks the native GS ( k commands.
package qr

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/qr"

	"github.com/pvieira/picoprint/internal/bitmap"
	"github.com/pvieira/picoprint/internal/raster"
)

// Encode renders content as a QR symbol with moduleSize dots per module,
// packed as a printable canvas. Dithering is skipped: modules are already
// black or white and must stay crisp to scan.
func Encode(content string, moduleSize int) (*bitmap.Canvas, error) {
	if moduleSize < 1 {
		moduleSize = 3
	}

	code, err := qr.Encode(content, qr.M, qr.Auto)
	if err != nil {
		return nil, fmt.Errorf("qr: encode: %w", err)
	}

	side := code.Bounds().Dx() * moduleSize
	scaled, err := barcode.Scale(code, side, side)
	if err != nil {
		return nil, fmt.Errorf("qr: scale: %w", err)
	}

	gray := image.NewGray(image.Rect(0, 0, side, side))
	draw.Draw(gray, gray.Bounds(), scaled, scaled.Bounds().Min, draw.Src)
	return raster.Pack(gray)
}
