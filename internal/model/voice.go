package model

import (
	"time"

	"github.com/google/uuid"
)

// DefaultVoiceSuffix is appended to the label of the platform default voice
const DefaultVoiceSuffix = " -- DEFAULT"

// Voice is a synthetic voice reported by the speech engine
type Voice struct {
	ID       string `json:"id"`       // engine-specific identifier passed back on synthesis
	Name     string `json:"name"`     // display and lookup name
	Language string `json:"language"` // BCP 47-ish language tag
	Default  bool   `json:"default"`
}

// VoiceOption is one selectable entry rendered from a Voice
type VoiceOption struct {
	Label    string
	Name     string
	Language string
	Default  bool
}

// NewVoiceOption builds the option shown in the voice selector
func NewVoiceOption(v Voice) VoiceOption {
	label := v.Name
	if v.Default {
		label += DefaultVoiceSuffix
	}
	return VoiceOption{
		Label:    label,
		Name:     v.Name,
		Language: v.Language,
		Default:  v.Default,
	}
}

// VoiceCatalog is the ordered list of selectable voices.
//
// It starts with a visible placeholder entry. The first refresh that brings
// at least one voice hides the placeholder. Refreshes only append voices not
// seen before, so re-running a refresh with the same voices is a no-op apart
// from re-selecting the default.
type VoiceCatalog struct {
	placeholder       string
	placeholderHidden bool
	options           []VoiceOption
	byName            map[string]int
	selected          int
}

// NewVoiceCatalog creates an empty catalog showing the given placeholder label
func NewVoiceCatalog(placeholder string) *VoiceCatalog {
	return &VoiceCatalog{
		placeholder: placeholder,
		byName:      make(map[string]int),
		selected:    -1,
	}
}

// Refresh merges the voices reported by the engine and returns how many
// options were added. An empty report leaves the catalog untouched.
func (c *VoiceCatalog) Refresh(voices []Voice) int {
	if len(voices) == 0 {
		return 0
	}

	c.placeholderHidden = true

	added := 0
	for _, v := range voices {
		idx, exists := c.byName[v.Name]
		if !exists {
			c.options = append(c.options, NewVoiceOption(v))
			idx = len(c.options) - 1
			c.byName[v.Name] = idx
			added++
		}
		if v.Default {
			c.selected = idx
		}
	}

	return added
}

// Len returns the number of real voice options
func (c *VoiceCatalog) Len() int {
	return len(c.options)
}

// PlaceholderVisible reports whether the "no voices" entry is still shown
func (c *VoiceCatalog) PlaceholderVisible() bool {
	return !c.placeholderHidden
}

// Placeholder returns the placeholder label
func (c *VoiceCatalog) Placeholder() string {
	return c.placeholder
}

// Options returns a copy of the real voice options in display order
func (c *VoiceCatalog) Options() []VoiceOption {
	out := make([]VoiceOption, len(c.options))
	copy(out, c.options)
	return out
}

// Labels returns the visible labels, the placeholder included while it is shown
func (c *VoiceCatalog) Labels() []string {
	labels := make([]string, 0, len(c.options)+1)
	if c.PlaceholderVisible() {
		labels = append(labels, c.placeholder)
	}
	for _, o := range c.options {
		labels = append(labels, o.Label)
	}
	return labels
}

// SelectedIndex returns the index of the selected option or -1
func (c *VoiceCatalog) SelectedIndex() int {
	return c.selected
}

// Selected returns the selected option, if any
func (c *VoiceCatalog) Selected() (VoiceOption, bool) {
	if c.selected < 0 || c.selected >= len(c.options) {
		return VoiceOption{}, false
	}
	return c.options[c.selected], true
}

// Select selects the option at index; out of range clears the selection
func (c *VoiceCatalog) Select(index int) bool {
	if index < 0 || index >= len(c.options) {
		c.selected = -1
		return false
	}
	c.selected = index
	return true
}

// SelectByLabel selects the option with the given label
func (c *VoiceCatalog) SelectByLabel(label string) bool {
	for i, o := range c.options {
		if o.Label == label {
			c.selected = i
			return true
		}
	}
	c.selected = -1
	return false
}

// SelectByName selects the option for the named voice
func (c *VoiceCatalog) SelectByName(name string) bool {
	idx, ok := c.byName[name]
	if !ok {
		return false
	}
	c.selected = idx
	return true
}

// Utterance is a single speech request
type Utterance struct {
	ID        string
	Text      string
	Voice     *Voice // nil lets the engine pick its own default
	Volume    float64
	CreatedAt time.Time
}

// NewUtterance creates an utterance with a fresh ID
func NewUtterance(text string, voice *Voice, volume float64) *Utterance {
	return &Utterance{
		ID:        uuid.NewString(),
		Text:      text,
		Voice:     voice,
		Volume:    clampFraction(volume),
		CreatedAt: time.Now(),
	}
}

func clampFraction(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// VoiceID returns the engine identifier of the voice, or "" for the default voice
func (u *Utterance) VoiceID() string {
	if u.Voice == nil {
		return ""
	}
	return u.Voice.ID
}

// CacheKey identifies the synthesized audio for this utterance.
// Volume is applied at playback so it is not part of the key.
func (u *Utterance) CacheKey() string {
	return u.VoiceID() + "\x00" + u.Text
}
