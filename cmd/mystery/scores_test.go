package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/mystery-maze/internal/storage"
)

func TestParseSizeArg(t *testing.T) {
	tests := []struct {
		arg     string
		w, h    int
		wantErr bool
	}{
		{"small", 13, 7, false},
		{"huge", 61, 21, false},
		{"31x15", 31, 15, false},
		{"31X15", 31, 15, false},
		{"fit", 0, 0, true},
		{"0x5", 0, 0, true},
		{"wide", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			w, h, err := parseSizeArg(tt.arg)
			if tt.wantErr {
				if err == nil {
					t.Errorf("parseSizeArg(%q) expected error", tt.arg)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseSizeArg(%q) error: %v", tt.arg, err)
			}
			if w != tt.w || h != tt.h {
				t.Errorf("parseSizeArg(%q) = %dx%d, want %dx%d", tt.arg, w, h, tt.w, tt.h)
			}
		})
	}
}

func TestSizeLabel(t *testing.T) {
	if got := sizeLabel(13, 7); got != "small (13x7)" {
		t.Errorf("sizeLabel(13, 7) = %q", got)
	}
	if got := sizeLabel(9, 5); got != "9x5" {
		t.Errorf("sizeLabel(9, 5) = %q", got)
	}
}

func TestRuntimeConfigResolvesSeed(t *testing.T) {
	saved := flagSeed
	t.Cleanup(func() { flagSeed = saved })

	flagSeed = 0
	cfg := runtimeConfig()
	if cfg.Seed == 0 || cfg.FixedSeed {
		t.Errorf("without --seed: Seed = %d, FixedSeed = %v; expected a wall-clock seed", cfg.Seed, cfg.FixedSeed)
	}

	flagSeed = 42
	cfg = runtimeConfig()
	if cfg.Seed != 42 || !cfg.FixedSeed {
		t.Errorf("with --seed 42: Seed = %d, FixedSeed = %v", cfg.Seed, cfg.FixedSeed)
	}
}

// captureStdout returns what fn prints to stdout.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	saved := os.Stdout
	os.Stdout = w
	fn()
	os.Stdout = saved
	w.Close()

	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	return string(out)
}

func TestPrintAllRuns(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// More than the top-ten limit
	for i := range 12 {
		run := storage.Run{GameID: "mystery", Player: "ann", Width: 13, Height: 7, Elapsed: time.Duration(i+1) * time.Second}
		if _, err := store.SaveRun(run); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	var printErr error
	out := captureStdout(t, func() { printErr = printAllRuns(store, 13, 7) })
	if printErr != nil {
		t.Fatalf("printAllRuns() failed: %v", printErr)
	}
	if !strings.Contains(out, "All Runs - small (13x7)") {
		t.Errorf("missing header in %q", out)
	}
	if !strings.Contains(out, "12.00") {
		t.Errorf("slowest run missing from full listing:\n%s", out)
	}

	out = captureStdout(t, func() { printErr = printAllRuns(store, 21, 11) })
	if printErr != nil || !strings.Contains(out, "No runs recorded yet.") {
		t.Errorf("empty size: err = %v, out = %q", printErr, out)
	}
}
