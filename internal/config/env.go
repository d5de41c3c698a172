package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Env holds start-up overrides read from the environment. These are not
// editable in the UI.
type Env struct {
	LogLevel       string        `env:"MEMEGEN_LOG_LEVEL"        envDefault:"info"`
	CanvasWidth    int           `env:"MEMEGEN_CANVAS_WIDTH"     envDefault:"400"`
	CanvasHeight   int           `env:"MEMEGEN_CANVAS_HEIGHT"    envDefault:"400"`
	SpeechBinary   string        `env:"MEMEGEN_SPEECH_BINARY"`
	SpeechCacheTTL time.Duration `env:"MEMEGEN_SPEECH_CACHE_TTL" envDefault:"10m"`
	SpeechTimeout  time.Duration `env:"MEMEGEN_SPEECH_TIMEOUT"   envDefault:"10s"`
}

// LoadEnv parses the environment into Env
func LoadEnv() (Env, error) {
	cfg, err := env.ParseAs[Env]()
	if err != nil {
		return Env{}, fmt.Errorf("parse environment: %w", err)
	}
	if cfg.CanvasWidth <= 0 || cfg.CanvasHeight <= 0 {
		return Env{}, fmt.Errorf("canvas size must be positive, got %dx%d", cfg.CanvasWidth, cfg.CanvasHeight)
	}
	return cfg, nil
}
