package printer

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/pvieira/picoprint/internal/bitmap"
)

// Control bytes shared by the ESC/POS command set.
const (
	ESC byte = 0x1b
	GS  byte = 0x1d
	FF  byte = 0x0c
)

// MaxDots is the widest raster line the print head can fire.
const MaxDots = 382

// chunkRows is how many raster rows the printer's internal buffer holds;
// larger images are split and paced so the buffer can drain between chunks.
const chunkRows = 64

// DefaultChunkDelay paces chunked raster transfers. The device has no
// read-back channel, so the drain time is a fixed wait rather than an
// acknowledgment.
const DefaultChunkDelay = 1500 * time.Millisecond

// ErrTooWide is returned when a canvas exceeds the print head width.
var ErrTooWide = fmt.Errorf("printer: bitmap wider than %d dots", MaxDots)

// A Sink is the raw byte stream to the printer.
type Sink interface {
	Write(p []byte) (n int, err error)
	Flush() error
}

// A Device frames commands for an ESC/POS thermal printer and writes them to
// a sink. A device assumes exclusive ownership of its sink; callers sharing
// one across goroutines must serialize access themselves.
type Device struct {
	sink Sink

	// ChunkDelay is the pause between raster chunks, DefaultChunkDelay
	// unless overridden. Shortening it on real hardware overruns the
	// printer's buffer.
	ChunkDelay time.Duration
}

func New(sink Sink) *Device {
	return &Device{sink: sink, ChunkDelay: DefaultChunkDelay}
}

func (d *Device) write(p []byte) error {
	if _, err := d.sink.Write(p); err != nil {
		return fmt.Errorf("printer: write: %w", err)
	}
	return nil
}

func (d *Device) flush() error {
	if err := d.sink.Flush(); err != nil {
		return fmt.Errorf("printer: flush: %w", err)
	}
	return nil
}

func (d *Device) writeFlush(p []byte) error {
	if err := d.write(p); err != nil {
		return err
	}
	return d.flush()
}

// PrintCanvas transmits the canvas using the GS v 0 raster command, split
// into chunks of at most 64 rows: command prefix, row width in bytes and
// chunk height as little-endian 16-bit fields, then the packed rows. Each
// chunk is flushed and followed by a form feed, and the device is given
// ChunkDelay to drain before the next chunk arrives.
//
// A failed write or flush aborts the transfer and leaves the printer in an
// indeterminate state; nothing is rolled back.
func (d *Device) PrintCanvas(c *bitmap.Canvas) error {
	if c.Width() > MaxDots {
		return ErrTooWide
	}

	for y := 0; y < c.Height(); y += chunkRows {
		rows := chunkRows
		if rem := c.Height() - y; rem < rows {
			rows = rem
		}

		cmd := make([]byte, 0, 8+c.Stride()*rows)
		cmd = append(cmd, GS, 0x76, 0x30, 0x00)
		cmd = binary.LittleEndian.AppendUint16(cmd, uint16(c.Stride()))
		cmd = binary.LittleEndian.AppendUint16(cmd, uint16(rows))
		cmd = append(cmd, c.Rows(y, rows)...)

		if err := d.writeFlush(cmd); err != nil {
			return err
		}
		if err := d.writeFlush([]byte{FF}); err != nil {
			return err
		}

		if y+chunkRows < c.Height() {
			time.Sleep(d.ChunkDelay)
		}
	}
	return nil
}
