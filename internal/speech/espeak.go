package speech

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/ytget/memegen/internal/model"
)

const (
	// DefaultSynthesisTimeout bounds a single espeak invocation
	DefaultSynthesisTimeout = 10 * time.Second

	// DefaultLanguage is the language whose voice is marked default
	DefaultLanguage = "en"

	// maxTextSize caps the text handed to the synthesizer
	maxTextSize = 5000
)

// EspeakConfig configures the espeak engine
type EspeakConfig struct {
	Binary          string
	DefaultLanguage string
	Timeout         time.Duration
}

// EspeakEngine synthesizes speech by running espeak-ng (or espeak) as a
// subprocess. Text is passed on stdin and WAV audio is read from stdout.
type EspeakEngine struct {
	binary          string
	defaultLanguage string
	timeout         time.Duration
}

// Compile-time interface check.
var _ Engine = (*EspeakEngine)(nil)

// NewEspeakEngine creates an engine running the given binary
func NewEspeakEngine(cfg EspeakConfig) *EspeakEngine {
	if cfg.DefaultLanguage == "" {
		cfg.DefaultLanguage = DefaultLanguage
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultSynthesisTimeout
	}
	return &EspeakEngine{
		binary:          cfg.Binary,
		defaultLanguage: cfg.DefaultLanguage,
		timeout:         cfg.Timeout,
	}
}

// Name returns the engine name
func (e *EspeakEngine) Name() string { return "espeak" }

// Voices runs `espeak --voices` and parses the table it prints
func (e *EspeakEngine) Voices(ctx context.Context) ([]model.Voice, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, e.binary, "--voices")
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("list voices timeout: %w", ctx.Err())
		}
		return nil, fmt.Errorf("%s --voices failed: %w, stderr: %s", e.binary, err, strings.TrimSpace(stderr.String()))
	}

	return parseVoiceList(stdout.String(), e.defaultLanguage), nil
}

// Synthesize renders text to 16-bit PCM
func (e *EspeakEngine) Synthesize(ctx context.Context, text, voiceID string) ([]byte, AudioFormat, error) {
	if strings.TrimSpace(text) == "" {
		return nil, AudioFormat{}, ErrEmptyText
	}
	if len(text) > maxTextSize {
		return nil, AudioFormat{}, fmt.Errorf("text too long: %d bytes (max %d)", len(text), maxTextSize)
	}

	args := []string{"--stdout", "--stdin"}
	if voiceID != "" {
		args = append(args, "-v", voiceID)
	}

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, e.binary, args...)
	cmd.Stdin = strings.NewReader(text)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, AudioFormat{}, fmt.Errorf("synthesis timeout after %s: %w", e.timeout, ctx.Err())
		}
		return nil, AudioFormat{}, fmt.Errorf("%s failed: %w, stderr: %s", e.binary, err, strings.TrimSpace(stderr.String()))
	}

	if stdout.Len() == 0 {
		return nil, AudioFormat{}, fmt.Errorf("%s produced no audio, stderr: %s", e.binary, strings.TrimSpace(stderr.String()))
	}

	return DecodeWAV(stdout.Bytes())
}

// parseVoiceList reads the `--voices` table:
//
//	Pty Language       Age/Gender VoiceName          File                 Other Languages
//	 5  af              --/M      Afrikaans          gmw/af
//
// The language column doubles as the voice ID since `-v <language>` works for
// both espeak and espeak-ng. The first voice whose language matches
// defaultLanguage is marked default.
func parseVoiceList(output, defaultLanguage string) []model.Voice {
	var voices []model.Voice
	seen := make(map[string]bool)
	haveDefault := false

	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 4 || fields[0] == "Pty" {
			continue
		}

		language := fields[1]
		if seen[language] {
			continue
		}
		seen[language] = true

		voice := model.Voice{
			ID:       language,
			Name:     strings.ReplaceAll(fields[3], "_", " "),
			Language: language,
		}
		if !haveDefault && strings.EqualFold(language, defaultLanguage) {
			voice.Default = true
			haveDefault = true
		}
		voices = append(voices, voice)
	}

	return voices
}
