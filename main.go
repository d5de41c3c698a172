package main

import (
	"errors"
	"fmt"
	"runtime"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/charmbracelet/log"

	"github.com/ytget/memegen/internal/config"
	"github.com/ytget/memegen/internal/platform"
	"github.com/ytget/memegen/internal/render"
	"github.com/ytget/memegen/internal/speech"
	"github.com/ytget/memegen/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.memegen"
	AppName = "Meme Generator"

	WindowWidth  = 480
	WindowHeight = 720
)

func main() {
	env, err := config.LoadEnv()
	if err != nil {
		log.Fatal("Invalid environment", "err", err)
	}

	level, err := log.ParseLevel(env.LogLevel)
	if err != nil {
		log.Warn("Unknown log level, using info", "level", env.LogLevel)
		level = log.InfoLevel
	}
	log.SetLevel(level)
	log.Info("Starting", "app", AppName, "version", version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())
	if icon, err := ui.LoadLogoResource(); err == nil {
		myApp.SetIcon(icon)
	} else {
		log.Debug("App icon not found", "path", ui.AppIcon)
	}

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	settings := config.NewSettings(myApp)

	fonts, err := render.NewFontCache()
	if err != nil {
		log.Fatal("Failed to load caption fonts", "err", err)
	}
	defer fonts.Close()
	raster := render.NewRaster(env.CanvasWidth, env.CanvasHeight, fonts)

	engine, available := newSpeechEngine(env, settings)
	var player speech.Player = speech.DiscardPlayer{}
	if available {
		player = speech.NewOtoPlayer()
	}
	speechSvc := speech.NewService(engine, player, speech.Config{
		CacheTTL: env.SpeechCacheTTL,
	})
	speechSvc.Start()
	defer func() {
		if err := speechSvc.Close(); err != nil {
			log.Warn("Failed to close audio output", "err", err)
		}
	}()

	rootUI := ui.NewRootUI(myWindow, settings, raster, speechSvc)
	if !available {
		rootUI.ShowSpeechUnavailable()
	}

	myWindow.ShowAndRun()
}

// newSpeechEngine picks espeak when a binary is found and falls back to a
// silent engine otherwise. The environment override wins over settings.
func newSpeechEngine(env config.Env, settings *config.Settings) (speech.Engine, bool) {
	preferred := env.SpeechBinary
	if preferred == "" {
		preferred = settings.GetSpeechBinary()
	}

	binary, err := platform.LookupSpeechBinary(preferred)
	if err != nil {
		if !errors.Is(err, platform.ErrSpeechBinaryNotFound) {
			log.Warn("Speech binary lookup failed", "err", err)
		}
		log.Warn("Read aloud disabled, no espeak binary found", "goos", runtime.GOOS)
		return speech.NoopEngine{}, false
	}

	log.Info("Using speech synthesizer", "binary", binary)
	return speech.NewEspeakEngine(speech.EspeakConfig{
		Binary:          binary,
		DefaultLanguage: settings.GetSpeechLanguage(),
		Timeout:         env.SpeechTimeout,
	}), true
}
