package main

import (
	"fmt"
	"io"
	"os"

	"github.com/tarm/serial"

	"github.com/pvieira/picoprint/internal/printer"
)

// fileSink writes to a file or device node, syncing on flush. This covers
// printers exposed as shared-printer or character-device paths.
type fileSink struct {
	*os.File
}

func (f fileSink) Flush() error { return f.Sync() }

// nopFlushSink wraps writers with no flush semantics, like stdout.
type nopFlushSink struct {
	io.Writer
}

func (nopFlushSink) Flush() error { return nil }

// openSink picks the output channel: a serial port if one is named, else a
// file/device path, else stdout for inspecting raw command streams.
func openSink(port string, baud int, outPath string) (printer.Sink, error) {
	if port != "" {
		s, err := serial.OpenPort(&serial.Config{Name: port, Baud: baud})
		if err != nil {
			return nil, fmt.Errorf("open serial port %s: %w", port, err)
		}
		return s, nil
	}
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return nil, fmt.Errorf("open output %s: %w", outPath, err)
		}
		return fileSink{f}, nil
	}
	return nopFlushSink{os.Stdout}, nil
}
