package app

import (
	"io"
	"log/slog"

	"cryptonoise/internal/clipboard"
	"cryptonoise/internal/crypto"
	"cryptonoise/internal/domain"
	"cryptonoise/internal/noise"
	noisesvc "cryptonoise/internal/services/noise"
)

// Wire bundles the generator, services and collaborators for the CLI.
type Wire struct {
	Generator *noise.Generator
	Noise     *noisesvc.Service
	Clipboard domain.Clipboard
	Logger    *slog.Logger
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	if err := cfg.Settings.Validate(); err != nil {
		return nil, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	// Secure source; never a math/rand fallback
	src := crypto.NewSecureSource()
	if cfg.Entropy != nil {
		src = crypto.NewSource(cfg.Entropy)
	}

	gen, err := noise.New(src, cfg.Settings.Generator)
	if err != nil {
		return nil, err
	}

	cb := cfg.Clipboard
	if cb == nil {
		cb = clipboard.System{}
	}

	return &Wire{
		Generator: gen,
		Noise:     noisesvc.New(gen, logger, cfg.Settings.Workers),
		Clipboard: cb,
		Logger:    logger,
	}, nil
}
