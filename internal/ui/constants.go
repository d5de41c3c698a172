package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconSpeak    = "🔊"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	FontSizeFormat     = "%.0f pt"
)

// Layout sizing
const (
	VolumeSliderStep         = 1.0
	SettingsWidth    float32 = 460
	SettingsHeight   float32 = 380
)
