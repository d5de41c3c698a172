package platform

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
	OSAndroid = "android"
)

// Speech synthesizer binaries, in lookup order
var (
	SpeechBinaries = []string{"espeak-ng", "espeak"}
)

// Well-known install locations checked when the binary is not on PATH
var (
	WindowsSpeechDirs = []string{`C:\Program Files\eSpeak NG`, `C:\Program Files (x86)\eSpeak NG`}
	DarwinSpeechDirs  = []string{"/opt/homebrew/bin", "/usr/local/bin"}
)

// ErrSpeechBinaryNotFound indicates that no speech synthesizer is installed
var ErrSpeechBinaryNotFound = errors.New("speech synthesizer not found")

// LookupSpeechBinary resolves the speech synthesizer to run. A non-empty
// preferred value (a name or a path) is tried first, then SpeechBinaries on
// PATH, then the platform install directories.
func LookupSpeechBinary(preferred string) (string, error) {
	candidates := SpeechBinaries
	if preferred != "" {
		candidates = append([]string{preferred}, SpeechBinaries...)
	}

	for _, name := range candidates {
		if path, err := exec.LookPath(name); err == nil {
			return path, nil
		}
	}

	for _, dir := range speechDirs() {
		for _, name := range SpeechBinaries {
			path := filepath.Join(dir, executableName(name))
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				return path, nil
			}
		}
	}

	return "", fmt.Errorf("%w: tried %v", ErrSpeechBinaryNotFound, candidates)
}

func speechDirs() []string {
	switch runtime.GOOS {
	case OSWindows:
		return WindowsSpeechDirs
	case OSDarwin:
		return DarwinSpeechDirs
	default:
		return nil
	}
}

func executableName(name string) string {
	if runtime.GOOS == OSWindows {
		return name + ".exe"
	}
	return name
}

// GetHomePicturesDir returns the directory the image picker opens in. It
// falls back to the home directory when there is no Pictures folder.
func GetHomePicturesDir() (string, error) {
	if runtime.GOOS == OSAndroid || os.Getenv("ANDROID_ROOT") != "" {
		return "/sdcard/Pictures", nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	picturesDir := filepath.Join(homeDir, "Pictures")
	if info, err := os.Stat(picturesDir); err == nil && info.IsDir() {
		return picturesDir, nil
	}
	return homeDir, nil
}
