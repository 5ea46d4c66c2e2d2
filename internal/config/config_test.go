package config

import (
	"bytes"
	"errors"
	"flag"
	"io"
	"strings"
	"testing"
	"time"

	apperrors "github.com/agbru/primecalc/internal/errors"
	"github.com/agbru/primecalc/internal/prime"
)

var availableAlgos = []string{"sieve", "trial"}

func validConfig() AppConfig {
	return AppConfig{
		Algo:      "sieve",
		Timeout:   time.Minute,
		TimeLimit: 3 * time.Second,
		LogLevel:  "warn",
		Theme:     "dark",
	}
}

func TestParseConfigDefaults(t *testing.T) {
	t.Parallel()
	cfg, err := ParseConfig("primecalc", []string{}, io.Discard, availableAlgos)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.N != 0 {
		t.Errorf("Expected default N 0 (prompt), got %d", cfg.N)
	}
	if cfg.Algo != "sieve" {
		t.Errorf("Expected default Algo 'sieve', got %s", cfg.Algo)
	}
	if cfg.Timeout != DefaultTimeout {
		t.Errorf("Expected default Timeout %v, got %v", DefaultTimeout, cfg.Timeout)
	}
	if cfg.TimeLimit != 3*time.Second {
		t.Errorf("Expected default TimeLimit 3s, got %v", cfg.TimeLimit)
	}
	if cfg.LogLevel != "warn" || cfg.Theme != "dark" {
		t.Errorf("unexpected log level/theme defaults: %q %q", cfg.LogLevel, cfg.Theme)
	}
	if opts := cfg.ToCalculationOptions(); opts != (prime.Options{}) {
		t.Errorf("default options should be zero, got %+v", opts)
	}
}

func TestParseConfigAllFlags(t *testing.T) {
	t.Parallel()
	args := []string{
		"-n", "1000",
		"-algo", "TRIAL",
		"-timeout", "10s",
		"-time-limit", "500ms",
		"-min-limit", "50",
		"-fallback-limit", "5000",
		"-json",
		"-d",
		"-no-color",
		"-theme", "Light",
		"-no-banner",
		"-o", "out.txt",
		"-metrics-file", "metrics.prom",
		"-q",
		"-interactive",
		"-completion", "bash",
		"-log-level", "debug",
	}
	cfg, err := ParseConfig("primecalc", args, io.Discard, availableAlgos)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	want := AppConfig{
		N:             1000,
		Algo:          "trial",
		Timeout:       10 * time.Second,
		TimeLimit:     500 * time.Millisecond,
		MinLimit:      50,
		FallbackLimit: 5000,
		JSONOutput:    true,
		Details:       true,
		NoColor:       true,
		Theme:         "light",
		NoBanner:      true,
		OutputFile:    "out.txt",
		MetricsFile:   "metrics.prom",
		Quiet:         true,
		Interactive:   true,
		Completion:    "bash",
		LogLevel:      "debug",
	}
	if cfg != want {
		t.Errorf("ParseConfig mismatch:\n got  %+v\n want %+v", cfg, want)
	}
	if opts := cfg.ToCalculationOptions(); opts.MinLimit != 50 || opts.FallbackLimit != 5000 {
		t.Errorf("ToCalculationOptions = %+v", opts)
	}
}

func TestParseConfigAliases(t *testing.T) {
	t.Parallel()
	cfg, err := ParseConfig("primecalc", []string{"-details", "-quiet", "-output", "r.txt"}, io.Discard, availableAlgos)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !cfg.Details || !cfg.Quiet || cfg.OutputFile != "r.txt" {
		t.Errorf("long aliases not honoured: %+v", cfg)
	}
}

func TestParseConfigInvalid(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		args []string
		msg  string
	}{
		{"negative n", []string{"-n", "-5"}, "n must be >= 1"},
		{"zero timeout", []string{"-timeout", "0s"}, "timeout value must be strictly positive"},
		{"negative time limit", []string{"-time-limit", "-1s"}, "time limit must be strictly positive"},
		{"unknown algo", []string{"-algo", "wheel"}, "unrecognized algorithm: 'wheel'"},
		{"negative min limit", []string{"-min-limit", "-1"}, "minimum sieve limit cannot be negative"},
		{"negative fallback", []string{"-fallback-limit", "-1"}, "fallback sieve limit cannot be negative"},
		{"huge fallback", []string{"-fallback-limit", "2147483647"}, "sieve limits cannot exceed"},
		{"bad log level", []string{"-log-level", "chatty"}, "unknown log level"},
		{"bad theme", []string{"-theme", "neon"}, "unknown theme 'neon'"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var stderr bytes.Buffer
			_, err := ParseConfig("primecalc", tt.args, &stderr, availableAlgos)
			if err == nil {
				t.Fatal("expected an error")
			}
			var cfgErr apperrors.ConfigError
			if !errors.As(err, &cfgErr) {
				t.Errorf("expected a ConfigError in the chain, got %T", err)
			}
			if !strings.Contains(stderr.String(), tt.msg) {
				t.Errorf("stderr %q does not mention %q", stderr.String(), tt.msg)
			}
			if !strings.Contains(stderr.String(), "Usage:") {
				t.Error("usage should be printed after a validation error")
			}
		})
	}
}

func TestParseConfigFlagErrors(t *testing.T) {
	t.Parallel()
	if _, err := ParseConfig("primecalc", []string{"-n", "abc"}, io.Discard, availableAlgos); err == nil {
		t.Error("expected parse error for non-numeric -n")
	}
	if _, err := ParseConfig("primecalc", []string{"-unknown"}, io.Discard, availableAlgos); err == nil {
		t.Error("expected parse error for unknown flag")
	}
	var out bytes.Buffer
	_, err := ParseConfig("primecalc", []string{"-h"}, &out, availableAlgos)
	if !errors.Is(err, flag.ErrHelp) {
		t.Errorf("expected flag.ErrHelp, got %v", err)
	}
	if !strings.Contains(out.String(), "Nth Prime Solver") || !strings.Contains(out.String(), "-time-limit") {
		t.Errorf("help output incomplete: %q", out.String())
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		mutate  func(*AppConfig)
		wantErr bool
	}{
		{"valid", func(*AppConfig) {}, false},
		{"all algorithms", func(c *AppConfig) { c.Algo = "all" }, false},
		{"prompt for n", func(c *AppConfig) { c.N = 0 }, false},
		{"explicit n", func(c *AppConfig) { c.N = 1 }, false},
		{"empty log level", func(c *AppConfig) { c.LogLevel = "" }, false},
		{"unknown algo", func(c *AppConfig) { c.Algo = "sieve2" }, true},
		{"no theme", func(c *AppConfig) { c.Theme = "" }, true},
		{"min limit at ceiling", func(c *AppConfig) { c.MinLimit = prime.MaxLimit }, false},
		{"min limit over ceiling", func(c *AppConfig) { c.MinLimit = prime.MaxLimit + 1 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate(availableAlgos)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// Tests below modify the environment and cannot run in parallel.

func TestEnvOverrides(t *testing.T) {
	env := map[string]string{
		"PRIMECALC_N":              "200",
		"PRIMECALC_ALGO":           "trial",
		"PRIMECALC_TIMEOUT":        "2m",
		"PRIMECALC_TIME_LIMIT":     "1s",
		"PRIMECALC_MIN_LIMIT":      "64",
		"PRIMECALC_FALLBACK_LIMIT": "9000",
		"PRIMECALC_JSON":           "true",
		"PRIMECALC_DETAILS":        "yes",
		"PRIMECALC_QUIET":          "1",
		"PRIMECALC_NO_COLOR":       "TRUE",
		"PRIMECALC_THEME":          "light",
		"PRIMECALC_NO_BANNER":      "true",
		"PRIMECALC_INTERACTIVE":    "true",
		"PRIMECALC_OUTPUT":         "out.txt",
		"PRIMECALC_METRICS_FILE":   "m.prom",
		"PRIMECALC_LOG_LEVEL":      "info",
	}
	for k, v := range env {
		t.Setenv(k, v)
	}

	cfg, err := ParseConfig("primecalc", []string{}, io.Discard, availableAlgos)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	want := AppConfig{
		N:             200,
		Algo:          "trial",
		Timeout:       2 * time.Minute,
		TimeLimit:     time.Second,
		MinLimit:      64,
		FallbackLimit: 9000,
		JSONOutput:    true,
		Details:       true,
		Quiet:         true,
		NoColor:       true,
		Theme:         "light",
		NoBanner:      true,
		Interactive:   true,
		OutputFile:    "out.txt",
		MetricsFile:   "m.prom",
		LogLevel:      "info",
	}
	if cfg != want {
		t.Errorf("env overrides mismatch:\n got  %+v\n want %+v", cfg, want)
	}
}

func TestFlagsTakePrecedenceOverEnv(t *testing.T) {
	t.Setenv("PRIMECALC_N", "200")
	t.Setenv("PRIMECALC_QUIET", "true")
	t.Setenv("PRIMECALC_OUTPUT", "env.txt")

	cfg, err := ParseConfig("primecalc", []string{"-n", "7", "-q=false", "-o", "flag.txt"}, io.Discard, availableAlgos)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.N != 7 {
		t.Errorf("N = %d, want 7 from flag", cfg.N)
	}
	if cfg.Quiet {
		t.Error("explicit -q=false should beat PRIMECALC_QUIET")
	}
	if cfg.OutputFile != "flag.txt" {
		t.Errorf("OutputFile = %q, want flag.txt", cfg.OutputFile)
	}
}

func TestInvalidEnvValuesAreIgnored(t *testing.T) {
	t.Setenv("PRIMECALC_N", "lots")
	t.Setenv("PRIMECALC_TIMEOUT", "forever")
	t.Setenv("PRIMECALC_JSON", "maybe")

	cfg, err := ParseConfig("primecalc", []string{}, io.Discard, availableAlgos)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.N != DefaultN || cfg.Timeout != DefaultTimeout || cfg.JSONOutput {
		t.Errorf("invalid env values should keep defaults, got %+v", cfg)
	}
}

func TestUsageRespectsNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	var out bytes.Buffer
	_, _ = ParseConfig("primecalc", []string{"-help"}, &out, availableAlgos)
	if strings.Contains(out.String(), "\x1b[") {
		t.Errorf("usage should not contain escape codes when NO_COLOR is set: %q", out.String())
	}
}
