package ui

import (
	"fmt"
	"io"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"

	"github.com/ytget/memegen/internal/config"
	"github.com/ytget/memegen/internal/controller"
	"github.com/ytget/memegen/internal/model"
	"github.com/ytget/memegen/internal/platform"
	"github.com/ytget/memegen/internal/render"
)

// SpeechService is the read-aloud backend as seen by the UI
type SpeechService interface {
	controller.Speaker
	RefreshVoices()
	SetVoicesChangedCallback(func())
}

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	controller   *controller.Controller
	speech       SpeechService
	raster       *render.Raster

	memeCanvas   *MemeCanvas
	topEntry     *widget.Entry
	bottomEntry  *widget.Entry
	openBtn      *widget.Button
	generateBtn  *widget.Button
	clearBtn     *widget.Button
	readBtn      *widget.Button
	voiceLabel   *widget.Label
	voiceSelect  *widget.Select
	volumeLabel  *widget.Label
	volumeSlider *widget.Slider
	volumeIcon   *widget.Icon
	statusLabel  *widget.Label

	// Set while the controller rewrites the voice options so the change is
	// not mistaken for a user selection.
	updatingVoices bool
}

// Compile-time interface check.
var _ controller.View = (*RootUI)(nil)

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, settings *config.Settings, raster *render.Raster, speech SpeechService) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		settings:     settings,
		localization: localization,
		speech:       speech,
		raster:       raster,
	}

	ui.controller = controller.New(raster, speech, controller.Options{
		FontSize:         settings.GetFontSize(),
		VoicePlaceholder: localization.GetText(KeyNoVoices),
		PreferredVoice:   settings.GetVoice(),
	})

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()
	ui.controller.SetView(ui)

	// Voice discovery finishes on a background goroutine
	speech.SetVoicesChangedCallback(func() {
		fyne.Do(ui.controller.VoicesChanged)
	})
	speech.RefreshVoices()

	log.Debug("RootUI initialized")
	return ui
}

// Controller returns the form controller
func (ui *RootUI) Controller() *controller.Controller {
	return ui.controller
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	t := ui.localization.GetText

	ui.createMenu()

	// Image picker and canvas
	ui.openBtn = widget.NewButton(t(KeyOpenImage), ui.onOpenImage)
	ui.memeCanvas = NewMemeCanvas(ui.raster.Image(), ui.onOpenImage)
	ui.statusLabel = widget.NewLabel(t(KeyNoImage))
	ui.statusLabel.Truncation = fyne.TextTruncateEllipsis

	// Caption form
	ui.topEntry = widget.NewEntry()
	ui.topEntry.SetPlaceHolder(t(KeyTopText))
	ui.topEntry.OnSubmitted = func(string) { ui.onGenerate() }

	ui.bottomEntry = widget.NewEntry()
	ui.bottomEntry.SetPlaceHolder(t(KeyBottomText))
	ui.bottomEntry.OnSubmitted = func(string) { ui.onGenerate() }

	ui.generateBtn = widget.NewButton(t(KeyGenerate), ui.onGenerate)
	ui.generateBtn.Importance = widget.HighImportance
	ui.clearBtn = widget.NewButton(t(KeyClear), ui.onClear)

	// Read aloud controls
	ui.readBtn = widget.NewButton(IconSpeak+" "+t(KeyReadAloud), ui.onReadAloud)

	ui.voiceLabel = widget.NewLabel(t(KeyVoice))
	ui.voiceSelect = widget.NewSelect(nil, ui.onVoiceSelected)

	ui.volumeLabel = widget.NewLabel(t(KeyVolume))
	ui.volumeIcon = widget.NewIcon(VolumeIcon(model.TierForVolume(ui.settings.GetVolume())))
	ui.volumeSlider = widget.NewSlider(model.VolumeMin, model.VolumeMax)
	ui.volumeSlider.Step = VolumeSliderStep
	ui.volumeSlider.SetValue(ui.settings.GetVolume())
	ui.volumeSlider.OnChanged = ui.controller.VolumeChanged
	ui.volumeSlider.OnChangeEnded = ui.settings.SetVolume

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	captionForm := container.NewVBox(
		container.NewBorder(nil, nil, nil, settingsBtn, ui.openBtn),
		ui.topEntry,
		ui.bottomEntry,
		container.NewGridWithColumns(2, ui.generateBtn, ui.clearBtn),
	)

	speechPanel := container.NewVBox(
		widget.NewSeparator(),
		container.NewBorder(nil, nil, ui.voiceLabel, nil, ui.voiceSelect),
		container.NewBorder(nil, nil, container.NewHBox(ui.volumeLabel, ui.volumeIcon), nil, ui.volumeSlider),
		ui.readBtn,
	)

	bottomPanel := container.NewVBox(speechPanel, ui.statusLabel)

	content := container.NewBorder(
		captionForm,                        // top
		bottomPanel,                        // bottom
		nil,                                // left
		nil,                                // right
		container.NewCenter(ui.memeCanvas), // center
	)

	ui.window.SetContent(content)
	ui.window.SetOnDropped(ui.onDropped)
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	t := ui.localization.GetText

	openItem := fyne.NewMenuItem(t(KeyOpenImage), ui.onOpenImage)
	refreshItem := fyne.NewMenuItem(t(KeyRefreshVoices), ui.speech.RefreshVoices)
	settingsItem := fyne.NewMenuItem(t(KeySettings), ui.onShowSettings)

	// Language submenu
	languageMenu := fyne.NewMenu(t(KeyLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	for code, name := range availableLanguages {
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(code)
		})

		// Mark current language
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(t(KeyFile), openItem, refreshItem, fyne.NewMenuItemSeparator(), settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	t := ui.localization.GetText

	ui.window.SetTitle(t(KeyAppTitle))
	ui.openBtn.SetText(t(KeyOpenImage))
	ui.topEntry.SetPlaceHolder(t(KeyTopText))
	ui.bottomEntry.SetPlaceHolder(t(KeyBottomText))
	ui.generateBtn.SetText(t(KeyGenerate))
	ui.clearBtn.SetText(t(KeyClear))
	ui.readBtn.SetText(IconSpeak + " " + t(KeyReadAloud))
	ui.voiceLabel.SetText(t(KeyVoice))
	ui.volumeLabel.SetText(t(KeyVolume))
	if ui.controller.Image() == nil {
		ui.statusLabel.SetText(t(KeyNoImage))
	}
}

// onOpenImage shows the image picker
func (ui *RootUI) onOpenImage() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			log.Error("Image picker failed", "err", err)
			return
		}
		if reader == nil {
			return
		}
		ui.loadImage(reader.URI().Name(), reader)
	}, ui.window)

	fd.SetFilter(storage.NewExtensionFileFilter(platform.SupportedImageExtensions))
	if dir, err := platform.GetHomePicturesDir(); err == nil {
		if lister, err := storage.ListerForURI(storage.NewFileURI(dir)); err == nil {
			fd.SetLocation(lister)
		}
	}
	fd.Show()
}

// onDropped loads the first supported image dropped on the window
func (ui *RootUI) onDropped(_ fyne.Position, uris []fyne.URI) {
	for _, uri := range uris {
		if !platform.IsSupportedImage(uri.Name()) {
			continue
		}
		reader, err := storage.Reader(uri)
		if err != nil {
			log.Error("Failed to open dropped file", "uri", uri.String(), "err", err)
			return
		}
		ui.loadImage(uri.Name(), reader)
		return
	}
	ui.statusLabel.SetText(ui.localization.GetText(KeyUnsupportedImage))
}

// loadImage decodes off the UI goroutine and hands the result back to it
func (ui *RootUI) loadImage(name string, reader io.ReadCloser) {
	go func() {
		defer reader.Close()
		img, err := platform.DecodeImage(name, reader)
		fyne.Do(func() {
			ui.onImageDecoded(img, err)
		})
	}()
}

// onImageDecoded applies a decode result. Failures are logged and leave the
// canvas and state untouched.
func (ui *RootUI) onImageDecoded(img *model.LoadedImage, err error) {
	if err != nil {
		log.Error("Failed to load image", "err", err)
		ui.statusLabel.SetText(ui.localization.GetText(KeyImageLoadFailed))
		return
	}

	ui.controller.ImageLoaded(img)
	ui.statusLabel.SetText(imageStatus(img))
}

// imageStatus formats the status line for a loaded image
func imageStatus(img *model.LoadedImage) string {
	return img.Name + MiddleDotSeparator + img.Dimensions() + MiddleDotSeparator + humanize.Bytes(uint64(img.Size))
}

func (ui *RootUI) onGenerate() {
	if !ui.controller.State().SubmitEnabled() {
		return
	}
	ui.controller.Submit()
}

func (ui *RootUI) onClear() {
	ui.controller.Clear()
}

func (ui *RootUI) onReadAloud() {
	ui.controller.ReadAloud()
}

// onVoiceSelected persists a voice picked by the user
func (ui *RootUI) onVoiceSelected(label string) {
	if ui.updatingVoices {
		return
	}
	ui.controller.VoiceSelected(label)
	if opt, ok := ui.controller.Catalog().Selected(); ok {
		ui.settings.SetVoice(opt.Name)
	}
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, func(change SettingsChange) {
		if change.FontSize {
			ui.controller.SetFontSize(ui.settings.GetFontSize())
		}
		if change.Language {
			ui.onLanguageChange(ui.settings.GetLanguage())
		}
		message := ui.localization.GetText(KeySettingsSaved)
		if change.Speech {
			message = fmt.Sprintf("%s\n%s", message, ui.localization.GetText(KeyRestartRequired))
		}
		dialog.ShowInformation(ui.localization.GetText(KeySettings), message, ui.window)
	})
}

// ShowSpeechUnavailable tells the user that read aloud will be silent
func (ui *RootUI) ShowSpeechUnavailable() {
	ui.statusLabel.SetText(ui.localization.GetText(KeySpeechUnavailable))
}

// Captions implements controller.View
func (ui *RootUI) Captions() model.CaptionPair {
	return model.CaptionPair{Top: ui.topEntry.Text, Bottom: ui.bottomEntry.Text}
}

// SetCaptions implements controller.View
func (ui *RootUI) SetCaptions(captions model.CaptionPair) {
	ui.topEntry.SetText(captions.Top)
	ui.bottomEntry.SetText(captions.Bottom)
}

// SetActionState implements controller.View
func (ui *RootUI) SetActionState(state model.ActionState) {
	for _, ctl := range model.AllControls() {
		w := ui.controlWidget(ctl)
		if w == nil {
			continue
		}
		if state.Enabled(ctl) {
			w.Enable()
		} else {
			w.Disable()
		}
	}
}

func (ui *RootUI) controlWidget(ctl model.Control) fyne.Disableable {
	switch ctl {
	case model.ControlSubmit:
		return ui.generateBtn
	case model.ControlClear:
		return ui.clearBtn
	case model.ControlRead:
		return ui.readBtn
	case model.ControlVoiceSelect:
		return ui.voiceSelect
	default:
		return nil
	}
}

// SetVolumeTier implements controller.View
func (ui *RootUI) SetVolumeTier(tier model.VolumeTier) {
	ui.volumeIcon.SetResource(VolumeIcon(tier))
}

// SetVoiceOptions implements controller.View
func (ui *RootUI) SetVoiceOptions(labels []string, selected int) {
	ui.updatingVoices = true
	defer func() { ui.updatingVoices = false }()

	ui.voiceSelect.Options = labels
	if selected >= 0 && selected < len(labels) {
		ui.voiceSelect.SetSelectedIndex(selected)
	} else {
		ui.voiceSelect.ClearSelected()
	}
	ui.voiceSelect.Refresh()
}

// Volume implements controller.View
func (ui *RootUI) Volume() float64 {
	return ui.volumeSlider.Value
}

// RefreshCanvas implements controller.View
func (ui *RootUI) RefreshCanvas() {
	ui.memeCanvas.Refresh()
}
