package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SOUNDFACTS_API_URL", "")
	t.Setenv("PORT", "")
	t.Setenv("SOUNDFACTS_TIMEOUT_SECONDS", "")
	t.Setenv("SOUNDFACTS_LIBRARY", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.AnalysisURL != "http://localhost:8090" {
		t.Fatalf("unexpected default analysis URL: %q", cfg.AnalysisURL)
	}
	if cfg.Port != "8080" {
		t.Fatalf("unexpected default port: %q", cfg.Port)
	}
	if cfg.RequestTimeout != 30*time.Second {
		t.Fatalf("unexpected default timeout: %v", cfg.RequestTimeout)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SOUNDFACTS_API_URL", "http://scores.internal:9000")
	t.Setenv("PORT", "9999")
	t.Setenv("SOUNDFACTS_TIMEOUT_SECONDS", "5")
	t.Setenv("SOUNDFACTS_LIBRARY", "/tmp/reports.yaml")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.AnalysisURL != "http://scores.internal:9000" {
		t.Fatalf("analysis URL override ignored: %q", cfg.AnalysisURL)
	}
	if cfg.RequestTimeout != 5*time.Second {
		t.Fatalf("timeout override ignored: %v", cfg.RequestTimeout)
	}
	if cfg.LibraryPath != "/tmp/reports.yaml" {
		t.Fatalf("library path override ignored: %q", cfg.LibraryPath)
	}
}

func TestLoad_BadTimeoutFallsBack(t *testing.T) {
	t.Setenv("SOUNDFACTS_TIMEOUT_SECONDS", "not-a-number")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.RequestTimeout != 30*time.Second {
		t.Fatalf("expected fallback timeout, got %v", cfg.RequestTimeout)
	}
}
