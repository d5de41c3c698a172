package ui

import (
	"fmt"
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/memegen/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func(SettingsChange)

	// UI components
	fontSizeSlider      *widget.Slider
	fontSizeLabel       *widget.Label
	speechBinaryEntry   *widget.Entry
	speechLanguageEntry *widget.Entry
	languageSelect      *widget.Select
	languageCodes       []string
}

// SettingsChange reports which settings groups were modified on save
type SettingsChange struct {
	FontSize bool
	Speech   bool
	Language bool
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func(SettingsChange)) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// ShowSettingsDialog creates and shows the settings dialog
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func(SettingsChange)) *SettingsDialog {
	sd := NewSettingsDialog(settings, localization, window, onSaved)
	sd.Show()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	t := sd.localization.GetText

	// Caption font size
	sd.fontSizeLabel = widget.NewLabel("")
	sd.fontSizeSlider = widget.NewSlider(config.MinFontSize, config.MaxFontSize)
	sd.fontSizeSlider.Step = 1
	sd.fontSizeSlider.OnChanged = func(v float64) {
		sd.fontSizeLabel.SetText(fmt.Sprintf(FontSizeFormat, v))
	}
	fontSizeRow := container.NewBorder(nil, nil, nil, sd.fontSizeLabel, sd.fontSizeSlider)

	// Speech synthesizer
	sd.speechBinaryEntry = widget.NewEntry()
	sd.speechBinaryEntry.SetPlaceHolder(t(KeySpeechBinaryHint))
	browseBtn := widget.NewButton(t(KeyBrowse), sd.onBrowseBinary)
	speechBinaryRow := container.NewBorder(nil, nil, nil, browseBtn, sd.speechBinaryEntry)

	sd.speechLanguageEntry = widget.NewEntry()
	sd.speechLanguageEntry.SetPlaceHolder(config.DefaultSpeechLanguage)

	// Language selection, sorted for a stable order
	languageLabels := sd.settings.GetLanguageOptions()
	for code := range languageLabels {
		sd.languageCodes = append(sd.languageCodes, code)
	}
	sort.Strings(sd.languageCodes)
	sd.languageSelect = widget.NewSelect(sd.languageCodes, nil)
	sd.languageSelect.PlaceHolder = t(KeySelectLanguageHint)

	form := container.NewVBox(
		widget.NewLabel(t(KeyCaptionSettings)),
		widget.NewSeparator(),

		widget.NewLabel(t(KeyFontSize)+":"),
		fontSizeRow,

		widget.NewSeparator(),
		widget.NewLabel(t(KeySpeechSettings)),
		widget.NewSeparator(),

		widget.NewLabel(t(KeySpeechBinary)+":"),
		speechBinaryRow,

		widget.NewLabel(t(KeySpeechLanguage)+":"),
		sd.speechLanguageEntry,

		widget.NewSeparator(),
		widget.NewLabel(t(KeyInterfaceSettings)),
		widget.NewSeparator(),

		widget.NewLabel(t(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		t(KeySettings),
		t(KeySave),
		t(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsWidth, SettingsHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.fontSizeSlider.SetValue(sd.settings.GetFontSize())
	sd.fontSizeLabel.SetText(fmt.Sprintf(FontSizeFormat, sd.settings.GetFontSize()))
	sd.speechBinaryEntry.SetText(sd.settings.GetSpeechBinary())
	sd.speechLanguageEntry.SetText(sd.settings.GetSpeechLanguage())
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

// onBrowseBinary lets the user pick the synthesizer executable
func (sd *SettingsDialog) onBrowseBinary() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()
		sd.speechBinaryEntry.SetText(reader.URI().Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	var change SettingsChange

	if size := sd.fontSizeSlider.Value; size != sd.settings.GetFontSize() {
		sd.settings.SetFontSize(size)
		change.FontSize = true
	}

	if binary := sd.speechBinaryEntry.Text; binary != sd.settings.GetSpeechBinary() {
		sd.settings.SetSpeechBinary(binary)
		change.Speech = true
	}

	if lang := sd.speechLanguageEntry.Text; lang != sd.settings.GetSpeechLanguage() {
		sd.settings.SetSpeechLanguage(lang)
		change.Speech = true
	}

	if sel := sd.languageSelect.Selected; sel != "" && sel != sd.settings.GetLanguage() {
		sd.settings.SetLanguage(sel)
		change.Language = true
	}

	if sd.onSaved != nil {
		sd.onSaved(change)
	}
}
