package platform

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestLookupSpeechBinary_PreferredPath(t *testing.T) {
	if runtime.GOOS == OSWindows {
		t.Skip("executable bit check is POSIX only")
	}

	// Create a fake synthesizer in a temporary directory
	tempDir := t.TempDir()
	fake := filepath.Join(tempDir, "my-espeak")
	if err := os.WriteFile(fake, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatalf("Failed to create fake binary: %v", err)
	}

	path, err := LookupSpeechBinary(fake)
	if err != nil {
		t.Fatalf("LookupSpeechBinary() error = %v", err)
	}
	if path != fake {
		t.Errorf("Expected path %s, got %s", fake, path)
	}
}

func TestLookupSpeechBinary_OnPath(t *testing.T) {
	if runtime.GOOS == OSWindows {
		t.Skip("executable bit check is POSIX only")
	}

	tempDir := t.TempDir()
	fake := filepath.Join(tempDir, "espeak")
	if err := os.WriteFile(fake, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatalf("Failed to create fake binary: %v", err)
	}
	t.Setenv("PATH", tempDir)

	path, err := LookupSpeechBinary("missing-synth")
	if err != nil {
		t.Fatalf("LookupSpeechBinary() error = %v", err)
	}
	if path != fake {
		t.Errorf("Expected fallback to %s, got %s", fake, path)
	}
}

func TestLookupSpeechBinary_NotFound(t *testing.T) {
	if runtime.GOOS != OSLinux {
		t.Skip("install directories may contain a real synthesizer")
	}
	t.Setenv("PATH", t.TempDir())

	_, err := LookupSpeechBinary("")
	if !errors.Is(err, ErrSpeechBinaryNotFound) {
		t.Errorf("Expected ErrSpeechBinaryNotFound, got %v", err)
	}
}

func TestGetHomePicturesDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)

	dir, err := GetHomePicturesDir()
	if err != nil {
		t.Fatalf("Failed to get pictures directory: %v", err)
	}
	if dir != home {
		t.Errorf("Without a Pictures folder expected %s, got %s", home, dir)
	}

	pictures := filepath.Join(home, "Pictures")
	if err := os.Mkdir(pictures, 0o755); err != nil {
		t.Fatal(err)
	}
	dir, err = GetHomePicturesDir()
	if err != nil {
		t.Fatalf("Failed to get pictures directory: %v", err)
	}
	if dir != pictures {
		t.Errorf("Expected %s, got %s", pictures, dir)
	}
}
