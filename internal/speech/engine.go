package speech

import (
	"context"

	"github.com/ytget/memegen/internal/model"
)

// Engine turns text into PCM audio and reports the voices it offers.
type Engine interface {
	// Name identifies the engine in logs
	Name() string

	// Voices lists the available voices. An empty list is valid.
	Voices(ctx context.Context) ([]model.Voice, error)

	// Synthesize renders text with the voice identified by voiceID.
	// An empty voiceID selects the engine default voice.
	Synthesize(ctx context.Context, text, voiceID string) ([]byte, AudioFormat, error)
}

// NoopEngine is used when no synthesis backend is installed. It reports no
// voices and refuses to synthesize.
type NoopEngine struct{}

// Compile-time interface check.
var _ Engine = NoopEngine{}

// Name returns the engine name
func (NoopEngine) Name() string { return "none" }

// Voices returns an empty catalog
func (NoopEngine) Voices(context.Context) ([]model.Voice, error) { return nil, nil }

// Synthesize always fails with ErrEngineUnavailable
func (NoopEngine) Synthesize(context.Context, string, string) ([]byte, AudioFormat, error) {
	return nil, AudioFormat{}, ErrEngineUnavailable
}
