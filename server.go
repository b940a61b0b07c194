package main

import (
	"image"
	"image/png"
	"net/http"
	"sync"

	"go.uber.org/zap"

	"github.com/pvieira/picoprint/internal/printer"
	"github.com/pvieira/picoprint/internal/raster"
)

type server struct {
	device *printer.Device
	width  int
	mode   raster.Mode
	logger *zap.Logger

	// The device owns a single byte stream; concurrent jobs must take turns.
	mu sync.Mutex
}

// handlePrint accepts an image in the request body and prints it, or returns
// the dithered result as a PNG when ?preview=1 is set.
func (s *server) handlePrint(w http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	img, _, err := image.Decode(req.Body)
	if err != nil {
		s.logger.Error("decode request image", zap.Error(err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	canvas, err := raster.Render(img, s.width, s.mode)
	if err != nil {
		s.logger.Error("render image", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if req.URL.Query().Get("preview") != "" {
		w.Header().Add("Content-Type", "image/png")
		if err := png.Encode(w, canvas); err != nil {
			s.logger.Error("encode preview", zap.Error(err))
		}
		return
	}

	s.mu.Lock()
	err = s.device.PrintCanvas(canvas)
	s.mu.Unlock()
	if err != nil {
		s.logger.Error("print", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	s.logger.Info("printed",
		zap.Int("width", canvas.Width()),
		zap.Int("height", canvas.Height()))
	w.WriteHeader(http.StatusOK)
}

func serve(address string, device *printer.Device, width int, mode raster.Mode, logger *zap.Logger) error {
	s := &server{device: device, width: width, mode: mode, logger: logger}
	mux := http.NewServeMux()
	mux.HandleFunc("/print", s.handlePrint)
	return http.ListenAndServe(address, mux)
}
