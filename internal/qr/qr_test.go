package qr

import (
	"strings"
	"testing"
)

func TestEncode(t *testing.T) {
	c, err := Encode("https://example.com", 2)
	if err != nil {
		t.Fatal(err)
	}
	if c.Width() != c.Height() {
		t.Errorf("canvas is %dx%d, want square", c.Width(), c.Height())
	}
	if c.Width()%2 != 0 {
		t.Errorf("width %d is not a multiple of the module size", c.Width())
	}

	var dark, light int
	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			on, err := c.Get(x, y)
			if err != nil {
				t.Fatal(err)
			}
			if on {
				dark++
			} else {
				light++
			}
		}
	}
	if dark == 0 || light == 0 {
		t.Errorf("symbol should contain both colors, got %d dark / %d light", dark, light)
	}
}

func TestEncodeOverflow(t *testing.T) {
	// More data than any QR version can hold.
	if _, err := Encode(strings.Repeat("picoprint", 1000), 2); err == nil {
		t.Error("expected an error for oversized content")
	}
}
