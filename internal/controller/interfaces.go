package controller

import (
	"image"
	"image/color"

	"github.com/ytget/memegen/internal/geometry"
	"github.com/ytget/memegen/internal/model"
	"github.com/ytget/memegen/internal/render"
)

// Surface is the drawing surface the meme is composed on.
type Surface interface {
	Size() (width, height int)
	Clear()
	FillBackground(c color.Color)
	DrawImage(src image.Image, rect geometry.Rect)
	DrawText(spec render.TextSpec) error
}

// View is the form around the surface: caption entries, action buttons,
// voice selector, and volume slider.
type View interface {
	Captions() model.CaptionPair
	SetCaptions(captions model.CaptionPair)

	// SetActionState enables and disables the action controls
	SetActionState(state model.ActionState)

	// SetVolumeTier switches the volume icon
	SetVolumeTier(tier model.VolumeTier)

	// SetVoiceOptions replaces the voice selector entries; selected is -1 for none
	SetVoiceOptions(labels []string, selected int)

	// Volume returns the slider value in 0-100
	Volume() float64

	// RefreshCanvas redraws the widget showing the surface
	RefreshCanvas()
}

// Speaker queues utterances and reports the available voices.
type Speaker interface {
	Speak(u *model.Utterance) error
	Voices() []model.Voice
}
