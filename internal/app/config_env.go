package app

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// ApplyEnvToConfig populates unset fields of cfg from environment
// variables. Explicit cfg values take precedence over env.
func ApplyEnvToConfig(cfg *Config) {
	if cfg == nil {
		return
	}

	if cfg.URL == "" {
		cfg.URL = os.Getenv("WEBTOPICS_URL")
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = os.Getenv("WEBTOPICS_UA")
	}
	if cfg.OutputPDF == "" {
		cfg.OutputPDF = os.Getenv("WEBTOPICS_PDF")
	}
	if cfg.Approach == "" {
		cfg.Approach = strings.ToLower(strings.TrimSpace(os.Getenv("WEBTOPICS_APPROACH")))
	}

	if cfg.Timeout == 0 {
		if s := os.Getenv("WEBTOPICS_TIMEOUT"); s != "" {
			if d, err := time.ParseDuration(s); err == nil {
				cfg.Timeout = d
			}
		}
	}
	if cfg.MaxAttempts == 0 {
		if s := os.Getenv("WEBTOPICS_ATTEMPTS"); s != "" {
			if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil && n > 0 {
				cfg.MaxAttempts = n
			}
		}
	}

	if !cfg.Verbose {
		if s := strings.ToLower(strings.TrimSpace(os.Getenv("VERBOSE"))); s != "" {
			if s == "1" || s == "true" || s == "yes" || s == "on" {
				cfg.Verbose = true
			}
		}
	}
}
