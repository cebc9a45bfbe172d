package app

import (
	"io"
	"log/slog"

	"cryptonoise/internal/config"
	"cryptonoise/internal/domain"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Settings  config.Config    // validated file + flag settings
	Logger    *slog.Logger     // optional; defaults to a discard logger
	Entropy   io.Reader        // optional; defaults to crypto/rand.Reader
	Clipboard domain.Clipboard // optional; defaults to the system clipboard
}
