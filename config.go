package main

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// config holds defaults that may come from the environment or a .env file in
// the working directory. Command-line flags override all of these.
type config struct {
	Port     string // PRINTER_PORT
	Baud     int    // PRINTER_BAUD
	Width    int    // PRINTER_WIDTH, in dots
	DebugDir string // PRINTER_DEBUG_DIR
}

func loadConfig() config {
	// A missing .env is fine; variables already in the environment still
	// apply.
	_ = godotenv.Load()

	cfg := config{Baud: 9600, Width: 256}
	if v := os.Getenv("PRINTER_PORT"); v != "" {
		cfg.Port = v
	}
	if n := intEnv("PRINTER_BAUD"); n > 0 {
		cfg.Baud = n
	}
	if n := intEnv("PRINTER_WIDTH"); n > 0 {
		cfg.Width = n
	}
	cfg.DebugDir = os.Getenv("PRINTER_DEBUG_DIR")
	return cfg
}

func intEnv(key string) int {
	v := os.Getenv(key)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}
