package model

import "testing"

func TestTierForVolume(t *testing.T) {
	tests := []struct {
		value    float64
		expected VolumeTier
	}{
		{0, VolumeTierMuted},
		{0.5, VolumeTierMuted},
		{1, VolumeTierLow},
		{33, VolumeTierLow},
		{34, VolumeTierMedium},
		{66, VolumeTierMedium},
		{67, VolumeTierHigh},
		{100, VolumeTierHigh},
	}

	for _, test := range tests {
		result := TierForVolume(test.value)
		if result != test.expected {
			t.Errorf("TierForVolume(%v) = %s, expected %s", test.value, result, test.expected)
		}
	}
}

func TestVolumeFraction(t *testing.T) {
	tests := []struct {
		value    float64
		expected float64
	}{
		{0, 0},
		{50, 0.5},
		{100, 1},
		{-5, 0},
		{150, 1},
	}

	for _, test := range tests {
		result := VolumeFraction(test.value)
		if result != test.expected {
			t.Errorf("VolumeFraction(%v) = %v, expected %v", test.value, result, test.expected)
		}
	}
}

func TestVolumeTier_String(t *testing.T) {
	tests := []struct {
		tier     VolumeTier
		expected string
	}{
		{VolumeTierMuted, "muted"},
		{VolumeTierLow, "low"},
		{VolumeTierMedium, "medium"},
		{VolumeTierHigh, "high"},
		{VolumeTier(9), "unknown"},
	}

	for _, test := range tests {
		if test.tier.String() != test.expected {
			t.Errorf("VolumeTier(%d).String() = %s, expected %s", test.tier, test.tier.String(), test.expected)
		}
	}
}
