package speech

import "errors"

// Speech errors
var (
	// ErrEngineUnavailable indicates no synthesis backend is installed
	ErrEngineUnavailable = errors.New("speech engine unavailable")

	// ErrEmptyText indicates an utterance with nothing to say
	ErrEmptyText = errors.New("utterance text is empty")

	// ErrQueueFull indicates the utterance queue is at capacity
	ErrQueueFull = errors.New("utterance queue is full")

	// ErrServiceClosed indicates the service was closed
	ErrServiceClosed = errors.New("speech service closed")

	// ErrInvalidWAV indicates synthesized audio could not be parsed
	ErrInvalidWAV = errors.New("invalid WAV data")

	// ErrUnsupportedFormat indicates audio the player cannot output
	ErrUnsupportedFormat = errors.New("unsupported audio format")

	// ErrFormatMismatch indicates audio whose format differs from the open output device
	ErrFormatMismatch = errors.New("audio format differs from output device")
)
