package printer

import (
	"encoding/binary"
	"strings"
)

// Justification values for the ESC a command.
type Justification byte

const (
	JustifyLeft   Justification = 0
	JustifyCenter Justification = 1
	JustifyRight  Justification = 2
)

// ParseJustification maps "left", "center" or "right" (case-insensitive) to
// a justification, falling back to left.
func ParseJustification(s string) Justification {
	switch strings.ToLower(s) {
	case "center", "centre":
		return JustifyCenter
	case "right":
		return JustifyRight
	default:
		return JustifyLeft
	}
}

// Println sends message to the printer followed by a form feed.
func (d *Device) Println(message string) error {
	if err := d.write([]byte(message)); err != nil {
		return err
	}
	return d.writeFlush([]byte{FF})
}

// SetJustification sets the alignment for subsequent text and bitmaps.
func (d *Device) SetJustification(j Justification) error {
	return d.writeFlush([]byte{ESC, 0x61, byte(j)})
}

// SetTextMode configures the built-in font via ESC !.
func (d *Device) SetTextMode(doubleWidth, doubleHeight, bold, underline bool) error {
	var mode byte
	if doubleWidth {
		mode |= 0x20
	}
	if doubleHeight {
		mode |= 0x10
	}
	if bold {
		mode |= 0x08
	}
	if underline {
		mode |= 0x01
	}
	return d.writeFlush([]byte{ESC, '!', mode})
}

// PrintQR stores and prints a QR symbol with the GS ( k function set. size is
// the module size in dots.
func (d *Device) PrintQR(size byte, data []byte) error {
	if err := d.writeFlush([]byte{GS, 0x28, 0x6b, 0x03, 0x00, 0x31, 0x43, size}); err != nil {
		return err
	}

	store := []byte{GS, 0x28, 0x6b}
	store = binary.LittleEndian.AppendUint16(store, uint16(len(data)+3))
	store = append(store, 0x31, 0x50, 0x30)
	store = append(store, data...)
	if err := d.writeFlush(store); err != nil {
		return err
	}

	return d.writeFlush([]byte{GS, 0x28, 0x6b, 0x03, 0x00, 0x31, 0x51, 0x30})
}

// FormFeed advances the paper past the tear bar.
func (d *Device) FormFeed() error {
	return d.writeFlush([]byte{FF})
}
