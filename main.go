package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/pvieira/picoprint/internal/printer"
	"github.com/pvieira/picoprint/internal/qr"
	"github.com/pvieira/picoprint/internal/raster"
	"github.com/pvieira/picoprint/internal/text"
)

func main() {
	cfg := loadConfig()

	var (
		port         = flag.String("port", cfg.Port, "serial port of the printer")
		baud         = flag.Int("baud", cfg.Baud, "baud rate for the serial port")
		outPath      = flag.String("out", "", "write the command stream to a file or device path instead of a serial port")
		imagePath    = flag.String("image", "", "path to an image to print")
		width        = flag.Int("width", cfg.Width, "target width of printed images, in dots")
		mode         = flag.String("dither", string(raster.ModeFloydSteinberg), "dither mode: "+strings.Join(raster.Modes(), ", "))
		message      = flag.String("text", "", "text to print")
		banner       = flag.Bool("banner", false, "rasterize -text with the built-in Go font instead of the printer's")
		pointSize    = flag.Float64("points", 10, "point size for -banner text")
		justify      = flag.String("justify", "left", "justification: left, center or right")
		qrContent    = flag.String("qr", "", "content to print as a QR code")
		qrNative     = flag.Bool("qr-native", false, "use the printer's QR commands instead of rasterizing")
		serveAddress = flag.String("serve", "", "address to serve the print API on, if any")
		debugDir     = flag.String("debug-dir", cfg.DebugDir, "directory to save dithered output to, if any")
	)
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	sink, err := openSink(*port, *baud, *outPath)
	if err != nil {
		logger.Fatal("open printer", zap.Error(err))
	}
	device := printer.New(sink)

	if *serveAddress != "" {
		logger.Info("serving print API", zap.String("address", *serveAddress))
		if err := serve(*serveAddress, device, *width, raster.Mode(*mode), logger); err != nil {
			logger.Fatal("serve", zap.Error(err))
		}
		return
	}

	if *imagePath == "" && *message == "" && *qrContent == "" {
		fmt.Fprintln(os.Stderr, "nothing to print: pass -image, -text, -qr or -serve")
		flag.Usage()
		os.Exit(1)
	}

	if j := printer.ParseJustification(*justify); j != printer.JustifyLeft {
		if err := device.SetJustification(j); err != nil {
			logger.Fatal("set justification", zap.Error(err))
		}
	}

	if *imagePath != "" {
		path := resolvePath(*imagePath)
		if err := printImage(device, path, *width, raster.Mode(*mode), *debugDir, logger); err != nil {
			logger.Fatal("print image", zap.String("path", path), zap.Error(err))
		}
	}

	if *message != "" {
		if err := printText(device, *message, *width, *pointSize, *banner); err != nil {
			logger.Fatal("print text", zap.Error(err))
		}
	}

	if *qrContent != "" {
		if err := printQR(device, *qrContent, *qrNative); err != nil {
			logger.Fatal("print qr", zap.Error(err))
		}
	}
}

func printImage(device *printer.Device, path string, width int, mode raster.Mode, debugDir string, logger *zap.Logger) error {
	img, err := raster.Decode(path)
	if err != nil {
		return err
	}

	canvas, err := raster.Render(img, width, mode)
	if err != nil {
		return err
	}

	if debugDir != "" {
		out := filepath.Join(debugDir, time.Now().Format("20060102_150405")+"_dithered.png")
		if err := raster.SavePNG(canvas, out); err != nil {
			logger.Warn("save debug output", zap.Error(err))
		} else {
			logger.Info("debug output saved", zap.String("path", out))
		}
	}

	logger.Info("printing image",
		zap.Int("width", canvas.Width()),
		zap.Int("height", canvas.Height()))
	return device.PrintCanvas(canvas)
}

func printText(device *printer.Device, message string, width int, pointSize float64, banner bool) error {
	if !banner {
		return device.Println(message)
	}

	img, err := text.Render(message, width, text.Style{PointSize: pointSize})
	if err != nil {
		return err
	}
	canvas, err := raster.Pack(img)
	if err != nil {
		return err
	}
	return device.PrintCanvas(canvas)
}

func printQR(device *printer.Device, content string, native bool) error {
	if native {
		return device.PrintQR(6, []byte(content))
	}

	canvas, err := qr.Encode(content, 3)
	if err != nil {
		return err
	}
	return device.PrintCanvas(canvas)
}

// resolvePath falls back to interpreting path relative to the working
// directory when it does not exist as given.
func resolvePath(path string) string {
	if _, err := os.Stat(path); err == nil {
		return path
	}
	wd, err := os.Getwd()
	if err != nil {
		return path
	}
	fallback := filepath.Join(wd, path)
	if _, err := os.Stat(fallback); err == nil {
		return fallback
	}
	return path
}
