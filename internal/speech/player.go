package speech

import (
	"bytes"
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/ebitengine/oto/v3"
)

// playbackPollInterval is how often a blocking Play checks for completion
const playbackPollInterval = 20 * time.Millisecond

// Player outputs PCM audio. Play blocks until playback finishes or ctx is
// canceled. Volume is a fraction in [0, 1].
type Player interface {
	Play(ctx context.Context, pcm []byte, format AudioFormat, volume float64) error
	Close() error
}

// OtoPlayer plays audio through the system output device. The device is
// opened lazily on the first Play with that call's format; oto allows one
// context per process, so later audio must share it.
type OtoPlayer struct {
	mu      sync.Mutex
	context *oto.Context
	format  AudioFormat
}

// Compile-time interface check.
var _ Player = (*OtoPlayer)(nil)

// NewOtoPlayer creates a player. No device is opened until audio is played.
func NewOtoPlayer() *OtoPlayer {
	return &OtoPlayer{}
}

func (p *OtoPlayer) device(format AudioFormat) (*oto.Context, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.context != nil {
		if format != p.format {
			return nil, fmt.Errorf("%w: device %s, audio %s", ErrFormatMismatch, p.format, format)
		}
		return p.context, nil
	}

	if !format.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}

	op := &oto.NewContextOptions{
		SampleRate:   format.SampleRate,
		ChannelCount: format.Channels,
		Format:       oto.FormatSignedInt16LE,
	}
	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("failed to create oto context: %w", err)
	}
	<-ready

	log.Debug("Audio device opened", "format", format.String())
	p.context = ctx
	p.format = format
	return ctx, nil
}

// Play plays pcm at the given volume and waits for it to finish
func (p *OtoPlayer) Play(ctx context.Context, pcm []byte, format AudioFormat, volume float64) error {
	if len(pcm) == 0 {
		return nil
	}

	device, err := p.device(format)
	if err != nil {
		return err
	}

	player := device.NewPlayer(bytes.NewReader(pcm))
	defer player.Close()

	player.SetVolume(clampUnit(volume))
	player.Play()

	ticker := time.NewTicker(playbackPollInterval)
	defer ticker.Stop()

	for player.IsPlaying() {
		select {
		case <-ctx.Done():
			player.Pause()
			return ctx.Err()
		case <-ticker.C:
		}
	}

	return player.Err()
}

// Close suspends the output device
func (p *OtoPlayer) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.context == nil {
		return nil
	}
	return p.context.Suspend()
}

// DiscardPlayer drops audio. It is used when no output device is available.
type DiscardPlayer struct{}

// Compile-time interface check.
var _ Player = DiscardPlayer{}

// Play returns immediately
func (DiscardPlayer) Play(context.Context, []byte, AudioFormat, float64) error { return nil }

// Close does nothing
func (DiscardPlayer) Close() error { return nil }

func clampUnit(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
