package model

// Control identifies an action control whose enabled flag depends on ActionState.
type Control string

const (
	ControlSubmit      Control = "submit"
	ControlClear       Control = "clear"
	ControlRead        Control = "read"
	ControlVoiceSelect Control = "voice_select"
)

// ActionState is the only state machine in the app: whether a captioned
// image is currently on the canvas.
//
// ImageLoaded == true means the captions were drawn, so submit is disabled
// and clear/read/voice selection are enabled. false is the inverse.
type ActionState struct {
	ImageLoaded bool
}

// String returns a short description used in logs
func (s ActionState) String() string {
	if s.ImageLoaded {
		return "captioned"
	}
	return "awaiting_caption"
}

// SubmitEnabled reports whether the caption form can be submitted
func (s ActionState) SubmitEnabled() bool {
	return !s.ImageLoaded
}

// Enabled reports whether the given control is enabled in this state
func (s ActionState) Enabled(c Control) bool {
	switch c {
	case ControlSubmit:
		return !s.ImageLoaded
	case ControlClear, ControlRead, ControlVoiceSelect:
		return s.ImageLoaded
	default:
		return false
	}
}

// DisabledControls returns the controls that must be disabled in this state
func (s ActionState) DisabledControls() []Control {
	if s.ImageLoaded {
		return []Control{ControlSubmit}
	}
	return []Control{ControlClear, ControlRead, ControlVoiceSelect}
}

// AllControls lists every control governed by ActionState
func AllControls() []Control {
	return []Control{ControlSubmit, ControlClear, ControlRead, ControlVoiceSelect}
}
