package bitmap

import (
	"errors"
	"image/color"
	"testing"
)

func TestNewBufferSize(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		stride        int
	}{
		{name: "byte aligned", width: 16, height: 8, stride: 2},
		{name: "ragged width", width: 13, height: 5, stride: 2},
		{name: "single column", width: 1, height: 3, stride: 1},
		{name: "wide row", width: 382, height: 1, stride: 48},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := New(tc.width, tc.height)
			if c.Stride() != tc.stride {
				t.Errorf("Stride() = %d, want %d", c.Stride(), tc.stride)
			}
			if len(c.Bytes()) != tc.stride*tc.height {
				t.Errorf("len(Bytes()) = %d, want %d", len(c.Bytes()), tc.stride*tc.height)
			}
		})
	}
}

func TestBitAddressing(t *testing.T) {
	c := New(16, 2)

	// Pixel x maps to bit 7-x%8 of byte x/8 within its row.
	for _, p := range []struct{ x, y int }{{0, 0}, {7, 0}, {8, 0}, {15, 1}} {
		if err := c.Set(p.x, p.y, true); err != nil {
			t.Fatalf("Set(%d, %d) returned %v", p.x, p.y, err)
		}
	}

	want := []byte{0x81, 0x80, 0x00, 0x01}
	for i, b := range want {
		if c.Bytes()[i] != b {
			t.Errorf("byte %d = %#02x, want %#02x", i, c.Bytes()[i], b)
		}
	}

	if on, err := c.Get(7, 0); err != nil || !on {
		t.Errorf("Get(7, 0) = %v, %v, want true", on, err)
	}
	if on, err := c.Get(6, 0); err != nil || on {
		t.Errorf("Get(6, 0) = %v, %v, want false", on, err)
	}
}

func TestSetClear(t *testing.T) {
	c := New(8, 1)
	if err := c.Set(3, 0, true); err != nil {
		t.Fatal(err)
	}
	if err := c.Set(3, 0, false); err != nil {
		t.Fatal(err)
	}
	if c.Bytes()[0] != 0 {
		t.Errorf("byte 0 = %#02x after clearing, want 0", c.Bytes()[0])
	}
}

func TestOutOfBounds(t *testing.T) {
	c := New(8, 4)

	tests := []struct {
		name string
		x, y int
	}{
		{name: "x at width", x: 8, y: 0},
		{name: "negative x", x: -1, y: 0},
		{name: "y at height", x: 0, y: 4},
		{name: "negative y", x: 0, y: -1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var boundsErr *BoundsError
			if err := c.Set(tc.x, tc.y, true); !errors.As(err, &boundsErr) {
				t.Errorf("Set(%d, %d) = %v, want *BoundsError", tc.x, tc.y, err)
			}
			if _, err := c.Get(tc.x, tc.y); !errors.As(err, &boundsErr) {
				t.Errorf("Get(%d, %d) = %v, want *BoundsError", tc.x, tc.y, err)
			}
		})
	}
}

func TestImageView(t *testing.T) {
	c := New(4, 4)
	if err := c.Set(1, 2, true); err != nil {
		t.Fatal(err)
	}

	if got := c.Bounds(); got.Dx() != 4 || got.Dy() != 4 {
		t.Fatalf("Bounds() = %v", got)
	}
	if c.At(1, 2) != color.Black {
		t.Errorf("At(1, 2) = %v, want black", c.At(1, 2))
	}
	if c.At(0, 0) != color.White {
		t.Errorf("At(0, 0) = %v, want white", c.At(0, 0))
	}
}
