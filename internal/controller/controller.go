package controller

import (
	"image/color"

	"github.com/charmbracelet/log"

	"github.com/ytget/memegen/internal/geometry"
	"github.com/ytget/memegen/internal/model"
	"github.com/ytget/memegen/internal/render"
)

// Caption layout
const (
	TopCaptionBaseline      = 40
	BottomCaptionInset      = 25
	DefaultVoicePlaceholder = "none"
)

// Options configures a Controller
type Options struct {
	FontSize         float64
	VoicePlaceholder string
	PreferredVoice   string
}

// Controller handles every user trigger of the meme form. All methods must
// be called from the UI goroutine.
type Controller struct {
	surface Surface
	speaker Speaker
	view    View

	state    model.ActionState
	catalog  *model.VoiceCatalog
	fontSize float64
	image    *model.LoadedImage

	// preferredVoice is the saved voice name. It overrides the platform
	// default once, on the first refresh that reports it.
	preferredVoice   string
	preferredApplied bool
}

// New creates a controller drawing on surface and speaking through speaker.
// Attach a view with SetView before delivering events.
func New(surface Surface, speaker Speaker, opts Options) *Controller {
	if opts.FontSize <= 0 {
		opts.FontSize = render.DefaultFontSize
	}
	if opts.VoicePlaceholder == "" {
		opts.VoicePlaceholder = DefaultVoicePlaceholder
	}
	return &Controller{
		surface:        surface,
		speaker:        speaker,
		catalog:        model.NewVoiceCatalog(opts.VoicePlaceholder),
		fontSize:       opts.FontSize,
		preferredVoice: opts.PreferredVoice,
	}
}

// SetView attaches the view and pushes the current state to it
func (c *Controller) SetView(v View) {
	c.view = v
	if v == nil {
		return
	}
	v.SetActionState(c.state)
	v.SetVoiceOptions(c.catalog.Labels(), c.visibleSelection())
	v.SetVolumeTier(model.TierForVolume(v.Volume()))
}

// State returns the current action state
func (c *Controller) State() model.ActionState {
	return c.state
}

// Catalog returns the voice catalog
func (c *Controller) Catalog() *model.VoiceCatalog {
	return c.catalog
}

// Image returns the last loaded image, or nil
func (c *Controller) Image() *model.LoadedImage {
	return c.image
}

// SetFontSize changes the caption size used by the next Submit
func (c *Controller) SetFontSize(size float64) {
	if size > 0 {
		c.fontSize = size
	}
}

// SetImageLoaded is the only mutator of the action state. It re-applies the
// control enablement rule on every call.
func (c *Controller) SetImageLoaded(loaded bool) {
	c.state = model.ActionState{ImageLoaded: loaded}
	if c.view != nil {
		c.view.SetActionState(c.state)
	}
	log.Debug("Action state changed", "state", c.state.String())
}

// ImageLoaded draws a freshly decoded image letterboxed on a black
// background and resets the caption fields.
func (c *Controller) ImageLoaded(img *model.LoadedImage) {
	if img == nil || img.Image == nil {
		return
	}

	c.surface.Clear()
	c.surface.FillBackground(color.Black)

	w, h := c.surface.Size()
	rect := geometry.Fit(float64(w), float64(h), float64(img.Width()), float64(img.Height()))
	c.surface.DrawImage(img.Image, rect)
	c.image = img

	if c.view != nil {
		c.view.SetCaptions(model.CaptionPair{})
	}
	c.SetImageLoaded(false)
	c.refresh()

	log.Info("Image loaded", "name", img.Name, "size", img.Dimensions(), "rect", rect)
}

// Submit draws the uppercased captions centered at the top and bottom of the
// surface.
func (c *Controller) Submit() {
	if !c.state.SubmitEnabled() {
		log.Debug("Submit ignored", "state", c.state.String())
		return
	}

	var captions model.CaptionPair
	if c.view != nil {
		captions = c.view.Captions()
	}
	captions = captions.Upper()

	w, h := c.surface.Size()
	center := float64(w) / 2
	font := render.CaptionFont(c.fontSize)

	lines := []render.TextSpec{
		{Text: captions.Top, Font: font, Color: color.White, Align: render.AlignCenter, X: center, Y: TopCaptionBaseline},
		{Text: captions.Bottom, Font: font, Color: color.White, Align: render.AlignCenter, X: center, Y: float64(h - BottomCaptionInset)},
	}
	for _, spec := range lines {
		if err := c.surface.DrawText(spec); err != nil {
			log.Error("Failed to draw caption", "text", spec.Text, "err", err)
		}
	}

	c.SetImageLoaded(true)
	c.refresh()
}

// Clear erases the surface to transparent pixels
func (c *Controller) Clear() {
	c.surface.Clear()
	c.SetImageLoaded(false)
	c.refresh()
}

// ReadAloud sends one utterance per caption field, top then bottom, using the
// selected voice and slider volume. Captions are spoken as typed, not
// uppercased. Blank captions are still sent; the speaker plays them as silence.
func (c *Controller) ReadAloud() {
	if c.view == nil || c.speaker == nil {
		return
	}

	captions := c.view.Captions()
	voice := c.selectedVoice()
	volume := model.VolumeFraction(c.view.Volume())

	for _, text := range []string{captions.Top, captions.Bottom} {
		u := model.NewUtterance(text, voice, volume)
		if err := c.speaker.Speak(u); err != nil {
			log.Warn("Failed to queue utterance", "id", u.ID, "err", err)
		}
	}
}

// VolumeChanged updates the volume icon for a slider value in 0-100
func (c *Controller) VolumeChanged(value float64) {
	if c.view != nil {
		c.view.SetVolumeTier(model.TierForVolume(value))
	}
}

// VoiceSelected records the user's choice from the voice selector
func (c *Controller) VoiceSelected(label string) {
	c.catalog.SelectByLabel(label)
}

// VoicesChanged merges the speaker's voices into the catalog. Safe to call
// any number of times; an empty report changes nothing.
func (c *Controller) VoicesChanged() {
	if c.speaker == nil {
		return
	}
	voices := c.speaker.Voices()
	if len(voices) == 0 {
		return
	}

	added := c.catalog.Refresh(voices)
	if c.preferredVoice != "" && !c.preferredApplied {
		c.preferredApplied = c.catalog.SelectByName(c.preferredVoice)
	}

	if c.view != nil {
		c.view.SetVoiceOptions(c.catalog.Labels(), c.visibleSelection())
	}
	log.Debug("Voice catalog refreshed", "added", added, "total", c.catalog.Len())
}

// selectedVoice resolves the catalog selection against the speaker's
// current voices. nil means the engine default voice.
func (c *Controller) selectedVoice() *model.Voice {
	opt, ok := c.catalog.Selected()
	if !ok || c.speaker == nil {
		return nil
	}
	for _, v := range c.speaker.Voices() {
		if v.Name == opt.Name {
			voice := v
			return &voice
		}
	}
	return nil
}

// visibleSelection maps the catalog selection to an index into Labels()
func (c *Controller) visibleSelection() int {
	idx := c.catalog.SelectedIndex()
	if idx < 0 {
		return -1
	}
	if c.catalog.PlaceholderVisible() {
		return idx + 1
	}
	return idx
}

func (c *Controller) refresh() {
	if c.view != nil {
		c.view.RefreshCanvas()
	}
}
