package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/ytget/memegen/internal/model"
)

const (
	AppIcon = "memegen.png"
)

// Volume tier icons. Themed so they follow the foreground color.
var (
	VolumeMutedResource = &fyne.StaticResource{
		StaticName:    "volume-muted.svg",
		StaticContent: []byte(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24"><path fill="#000000" d="M16.5 12c0-1.77-1.02-3.29-2.5-4.03v2.21l2.45 2.45c.03-.2.05-.41.05-.63zm2.5 0c0 .94-.2 1.82-.54 2.64l1.51 1.51C20.63 14.91 21 13.5 21 12c0-4.28-2.99-7.86-7-8.77v2.06c2.89.86 5 3.54 5 6.71zM4.27 3L3 4.27 7.73 9H3v6h4l5 5v-6.73l4.25 4.25c-.67.52-1.42.93-2.25 1.18v2.06c1.38-.31 2.63-.95 3.69-1.81L19.73 21 21 19.73l-9-9L4.27 3zM12 4L9.91 6.09 12 8.18V4z"/></svg>`),
	}
	VolumeLowResource = &fyne.StaticResource{
		StaticName:    "volume-low.svg",
		StaticContent: []byte(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24"><path fill="#000000" d="M7 9v6h4l5 5V4l-5 5H7z"/></svg>`),
	}
	VolumeMediumResource = &fyne.StaticResource{
		StaticName:    "volume-medium.svg",
		StaticContent: []byte(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24"><path fill="#000000" d="M18.5 12c0-1.77-1.02-3.29-2.5-4.03v8.05c1.48-.73 2.5-2.25 2.5-4.02zM5 9v6h4l5 5V4L9 9H5z"/></svg>`),
	}
	VolumeHighResource = &fyne.StaticResource{
		StaticName:    "volume-high.svg",
		StaticContent: []byte(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24"><path fill="#000000" d="M3 9v6h4l5 5V4L7 9H3zm13.5 3c0-1.77-1.02-3.29-2.5-4.03v8.05c1.48-.73 2.5-2.25 2.5-4.02zM14 3.23v2.06c2.89.86 5 3.54 5 6.71s-2.11 5.85-5 6.71v2.06c4.01-.91 7-4.49 7-8.77s-2.99-7.86-7-8.77z"/></svg>`),
	}
)

var volumeIcons = map[model.VolumeTier]fyne.Resource{
	model.VolumeTierMuted:  theme.NewThemedResource(VolumeMutedResource),
	model.VolumeTierLow:    theme.NewThemedResource(VolumeLowResource),
	model.VolumeTierMedium: theme.NewThemedResource(VolumeMediumResource),
	model.VolumeTierHigh:   theme.NewThemedResource(VolumeHighResource),
}

// VolumeIcon returns the icon for a volume tier
func VolumeIcon(tier model.VolumeTier) fyne.Resource {
	if icon, ok := volumeIcons[tier]; ok {
		return icon
	}
	return volumeIcons[model.VolumeTierHigh]
}

// LoadLogoResource loads the logo from file path
func LoadLogoResource() (fyne.Resource, error) {
	return fyne.LoadResourceFromPath(AppIcon)
}
