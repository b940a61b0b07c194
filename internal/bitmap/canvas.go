package bitmap

import (
	"fmt"
	"image"
	"image/color"
)

// A Canvas is a packed monochrome bitmap: one bit per pixel, row-major, most
// significant bit first within each byte. A set bit is a printed (dark) dot.
// Rows are padded out to a byte boundary.
type Canvas struct {
	width  int
	height int
	stride int
	bytes  []byte
}

// A BoundsError reports an access outside a canvas's pixel grid. It indicates
// a bug in the caller, not bad user input.
type BoundsError struct {
	X, Y int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("bitmap: pixel (%d, %d) is out of bounds", e.X, e.Y)
}

// New creates a zeroed width-by-height canvas. The backing buffer is
// allocated once and never resized.
func New(width, height int) *Canvas {
	stride := (width + 7) / 8
	return &Canvas{
		width:  width,
		height: height,
		stride: stride,
		bytes:  make([]byte, stride*height),
	}
}

func (c *Canvas) Width() int  { return c.width }
func (c *Canvas) Height() int { return c.height }

// Stride returns the number of bytes per row.
func (c *Canvas) Stride() int { return c.stride }

// Bytes returns the backing buffer. Its length is always Stride()*Height().
func (c *Canvas) Bytes() []byte { return c.bytes }

// Rows returns the packed bytes for rows [y, y+n).
func (c *Canvas) Rows(y, n int) []byte {
	return c.bytes[y*c.stride : (y+n)*c.stride]
}

func (c *Canvas) check(x, y int) error {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return &BoundsError{X: x, Y: y}
	}
	return nil
}

// Set sets or clears the dot at (x, y).
func (c *Canvas) Set(x, y int, on bool) error {
	if err := c.check(x, y); err != nil {
		return err
	}
	mask := byte(0x80) >> (x % 8)
	i := y*c.stride + x/8
	if on {
		c.bytes[i] |= mask
	} else {
		c.bytes[i] &^= mask
	}
	return nil
}

// Get reports whether the dot at (x, y) is set.
func (c *Canvas) Get(x, y int) (bool, error) {
	if err := c.check(x, y); err != nil {
		return false, err
	}
	return c.bytes[y*c.stride+x/8]&(0x80>>(x%8)) != 0, nil
}

// ColorModel, Bounds and At let a Canvas be consumed as an image.Image for
// previews and debug output. Set dots render black.
func (c *Canvas) ColorModel() color.Model { return color.GrayModel }

func (c *Canvas) Bounds() image.Rectangle { return image.Rect(0, 0, c.width, c.height) }

func (c *Canvas) At(x, y int) color.Color {
	on, err := c.Get(x, y)
	if err != nil || !on {
		return color.White
	}
	return color.Black
}
