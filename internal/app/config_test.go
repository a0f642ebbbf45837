package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestValidateConfig(t *testing.T) {
	base := Config{URL: "https://example.com", N: 3, Approach: ApproachPMI, Number: 5}
	if err := ValidateConfig(base); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}

	bad := base
	bad.URL = "  "
	if err := ValidateConfig(bad); err == nil {
		t.Fatalf("expected error for missing url")
	}

	bad = base
	bad.N = 1
	if err := ValidateConfig(bad); err == nil {
		t.Fatalf("expected error for n below 2")
	}

	bad = base
	bad.Approach = "tfidf"
	if err := ValidateConfig(bad); err == nil {
		t.Fatalf("expected error for unknown approach")
	}

	bad = base
	bad.Number = 0
	if err := ValidateConfig(bad); err == nil {
		t.Fatalf("expected error for non-positive number")
	}
}

func TestLoadConfigFile_YAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "webtopics.yaml")
	content := []byte("url: https://example.com\ntopics:\n  n: 2\n  approach: pos\n  number: 8\nfetch:\n  maxAttempts: 2\n")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}

	fc, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fc.URL != "https://example.com" || fc.Topics.N != 2 || fc.Topics.Approach != "pos" || fc.Topics.Number != 8 {
		t.Fatalf("unexpected parsed config %+v", fc)
	}
	if fc.Fetch.MaxAttempts != 2 {
		t.Fatalf("expected 2 attempts, got %d", fc.Fetch.MaxAttempts)
	}
}

func TestApplyFileConfig_FlagsWin(t *testing.T) {
	cfg := Config{URL: "https://flag.example", N: 2, Approach: ApproachPOS, Number: DefaultNumber}
	var fc FileConfig
	fc.URL = "https://file.example"
	fc.Topics.N = 4
	fc.Topics.Approach = ApproachPMI
	fc.Topics.Number = 9

	ApplyFileConfig(&cfg, fc)
	if cfg.URL != "https://flag.example" {
		t.Fatalf("explicit url should win, got %q", cfg.URL)
	}
	if cfg.N != 2 {
		t.Fatalf("explicit n should win, got %d", cfg.N)
	}
	if cfg.Approach != ApproachPOS {
		t.Fatalf("explicit approach should win, got %q", cfg.Approach)
	}
	// Number was still at the flag default, so the file supplies it.
	if cfg.Number != 9 {
		t.Fatalf("expected file config number 9, got %d", cfg.Number)
	}
}

func TestApplyFileConfig_FillsDefaults(t *testing.T) {
	cfg := Config{N: DefaultN, Approach: ApproachPMI, Number: DefaultNumber}
	var fc FileConfig
	fc.URL = "https://file.example"
	fc.Topics.N = 2
	fc.Output.PDF = "report.pdf"
	fc.Fetch.UserAgent = "custom/1.0"
	fc.Verbose = true

	ApplyFileConfig(&cfg, fc)
	if cfg.URL != "https://file.example" || cfg.N != 2 || cfg.OutputPDF != "report.pdf" || cfg.UserAgent != "custom/1.0" || !cfg.Verbose {
		t.Fatalf("unexpected overlay result %+v", cfg)
	}
}

func TestApplyEnvToConfig(t *testing.T) {
	t.Setenv("WEBTOPICS_UA", "env-agent/1.0")
	t.Setenv("WEBTOPICS_TIMEOUT", "7s")
	t.Setenv("WEBTOPICS_APPROACH", "pos")
	t.Setenv("VERBOSE", "true")

	cfg := Config{}
	ApplyEnvToConfig(&cfg)
	if cfg.UserAgent != "env-agent/1.0" {
		t.Fatalf("expected env user agent, got %q", cfg.UserAgent)
	}
	if cfg.Timeout != 7*time.Second {
		t.Fatalf("expected 7s timeout, got %v", cfg.Timeout)
	}
	if cfg.Approach != ApproachPOS {
		t.Fatalf("expected env approach pos, got %q", cfg.Approach)
	}
	if !cfg.Verbose {
		t.Fatalf("expected verbose from env")
	}
}

func TestApplyEnvToConfig_ExplicitWins(t *testing.T) {
	t.Setenv("WEBTOPICS_UA", "env-agent/1.0")
	cfg := Config{UserAgent: "explicit/2.0"}
	ApplyEnvToConfig(&cfg)
	if cfg.UserAgent != "explicit/2.0" {
		t.Fatalf("explicit value should win over env, got %q", cfg.UserAgent)
	}
}
