package library

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	lib, err := Load(filepath.Join("testdata", "reports.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if lib.Len() != 2 {
		t.Fatalf("expected 2 reports, got %d", lib.Len())
	}

	report, found := lib.Find(" blinding lights ", "the weeknd")
	if !found {
		t.Fatal("expected a case- and whitespace-insensitive match")
	}
	if report.Genre != "Synthwave" {
		t.Fatalf("wrong report matched: %+v", report)
	}
	if len(report.CoreCategories) != 8 {
		t.Fatalf("expected 8 core categories, got %d", len(report.CoreCategories))
	}
	if report.CoreCategories["cultural_imprint"].Score != 10 {
		t.Fatalf("category scores not decoded: %+v", report.CoreCategories)
	}
	if report.FinalScore == nil || *report.FinalScore != 8.5 {
		t.Fatalf("final score not decoded: %v", report.FinalScore)
	}

	if _, found := lib.Find("Blinding Lights", "Somebody Else"); found {
		t.Fatal("artist mismatch must not match")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join("testdata", "nope.yaml")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("song: [unclosed"), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected a parse error")
	}
}
