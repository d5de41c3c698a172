package config

import (
	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyVolume         = "speech_volume"
	KeyVoice          = "speech_voice"
	KeySpeechBinary   = "speech_binary"
	KeySpeechLanguage = "speech_language"
	KeyFontSize       = "caption_font_size"
	KeyLanguage       = "app_language"
)

// Default values
const (
	DefaultVolume         = 100.0
	DefaultFontSize       = 40.0
	DefaultSpeechLanguage = "en"
	DefaultLanguage       = "system"
)

// Bounds
const (
	MinVolume   = 0.0
	MaxVolume   = 100.0
	MinFontSize = 12.0
	MaxFontSize = 96.0
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetVolume returns the read-aloud volume in 0-100
func (s *Settings) GetVolume() float64 {
	return clamp(s.app.Preferences().FloatWithFallback(KeyVolume, DefaultVolume), MinVolume, MaxVolume)
}

// SetVolume stores the read-aloud volume, clamped to 0-100
func (s *Settings) SetVolume(volume float64) {
	s.app.Preferences().SetFloat(KeyVolume, clamp(volume, MinVolume, MaxVolume))
}

// GetVoice returns the name of the last selected voice, or "" for none
func (s *Settings) GetVoice() string {
	return s.app.Preferences().String(KeyVoice)
}

// SetVoice stores the selected voice name
func (s *Settings) SetVoice(name string) {
	s.app.Preferences().SetString(KeyVoice, name)
}

// GetFontSize returns the caption font size in points
func (s *Settings) GetFontSize() float64 {
	size := s.app.Preferences().Float(KeyFontSize)
	if size <= 0 {
		s.SetFontSize(DefaultFontSize)
		return DefaultFontSize
	}
	return clamp(size, MinFontSize, MaxFontSize)
}

// SetFontSize stores the caption font size
func (s *Settings) SetFontSize(size float64) {
	s.app.Preferences().SetFloat(KeyFontSize, clamp(size, MinFontSize, MaxFontSize))
}

// GetSpeechBinary returns the configured synthesizer, or "" to search PATH
func (s *Settings) GetSpeechBinary() string {
	return s.app.Preferences().String(KeySpeechBinary)
}

// SetSpeechBinary sets the synthesizer name or path
func (s *Settings) SetSpeechBinary(binary string) {
	s.app.Preferences().SetString(KeySpeechBinary, binary)
}

// GetSpeechLanguage returns the language whose voice is the default
func (s *Settings) GetSpeechLanguage() string {
	lang := s.app.Preferences().String(KeySpeechLanguage)
	if lang == "" {
		s.SetSpeechLanguage(DefaultSpeechLanguage)
		return DefaultSpeechLanguage
	}
	return lang
}

// SetSpeechLanguage sets the default voice language
func (s *Settings) SetSpeechLanguage(lang string) {
	if lang == "" {
		lang = DefaultSpeechLanguage
	}
	s.app.Preferences().SetString(KeySpeechLanguage, lang)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
