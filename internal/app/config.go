package app

import (
	"errors"
	"strings"
	"time"
)

// Approaches accepted by the -approach flag.
const (
	ApproachPMI = "pmi"
	ApproachPOS = "pos"
)

// Defaults mirrored by the flag definitions in cmd and by the config file
// overlay.
const (
	DefaultN      = 3
	DefaultNumber = 5
)

// Config holds runtime configuration for one extraction run.
type Config struct {
	URL string

	// Extraction
	N        int
	Approach string
	Number   int

	// Output
	OutputPDF string

	// Fetching
	UserAgent   string
	Timeout     time.Duration
	MaxAttempts int

	// Behavior
	Verbose bool
}

// ValidateConfig performs minimal schema validation before a run.
func ValidateConfig(cfg Config) error {
	if strings.TrimSpace(cfg.URL) == "" {
		return errors.New("config: url is required")
	}
	if cfg.N < 2 {
		return errors.New("config: n must be at least 2")
	}
	if cfg.Number <= 0 {
		return errors.New("config: number must be positive")
	}
	switch cfg.Approach {
	case ApproachPMI, ApproachPOS:
	default:
		return errors.New("config: approach must be pmi or pos")
	}
	if cfg.Timeout < 0 || cfg.MaxAttempts < 0 {
		return errors.New("config: negative limits are not allowed")
	}
	return nil
}
