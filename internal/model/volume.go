package model

// Volume slider bounds
const (
	VolumeMin     = 0
	VolumeMax     = 100
	VolumeDefault = 100
)

// VolumeTier selects one of four volume icons
type VolumeTier int

const (
	VolumeTierMuted VolumeTier = iota
	VolumeTierLow
	VolumeTierMedium
	VolumeTierHigh
)

// String returns the tier name
func (t VolumeTier) String() string {
	switch t {
	case VolumeTierMuted:
		return "muted"
	case VolumeTierLow:
		return "low"
	case VolumeTierMedium:
		return "medium"
	case VolumeTierHigh:
		return "high"
	default:
		return "unknown"
	}
}

// TierForVolume maps a 0-100 slider value to an icon tier.
// The comparisons are strict: 0 is muted, 1..33 low, 34..66 medium, 67+ high.
func TierForVolume(value float64) VolumeTier {
	switch {
	case value < 1:
		return VolumeTierMuted
	case value < 34:
		return VolumeTierLow
	case value < 67:
		return VolumeTierMedium
	default:
		return VolumeTierHigh
	}
}

// VolumeFraction converts a slider value to the 0.0-1.0 range used for speech,
// clamping out-of-range input.
func VolumeFraction(value float64) float64 {
	if value < VolumeMin {
		value = VolumeMin
	}
	if value > VolumeMax {
		value = VolumeMax
	}
	return value / VolumeMax
}
