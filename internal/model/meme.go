package model

import (
	"fmt"
	"image"
	"strings"
)

// CaptionPair holds the top and bottom caption text as typed by the user
type CaptionPair struct {
	Top    string
	Bottom string
}

// Upper returns the captions as they are rendered on the canvas
func (c CaptionPair) Upper() CaptionPair {
	return CaptionPair{
		Top:    strings.ToUpper(c.Top),
		Bottom: strings.ToUpper(c.Bottom),
	}
}

// IsEmpty reports whether both captions are blank
func (c CaptionPair) IsEmpty() bool {
	return strings.TrimSpace(c.Top) == "" && strings.TrimSpace(c.Bottom) == ""
}

// LoadedImage is a decoded user image. A new one replaces the previous one.
type LoadedImage struct {
	Name   string // source file name
	Format string // decoder name (png, jpeg, ...)
	Size   int64  // encoded size in bytes
	Image  image.Image
}

// Width returns the intrinsic image width
func (li *LoadedImage) Width() int {
	if li == nil || li.Image == nil {
		return 0
	}
	return li.Image.Bounds().Dx()
}

// Height returns the intrinsic image height
func (li *LoadedImage) Height() int {
	if li == nil || li.Image == nil {
		return 0
	}
	return li.Image.Bounds().Dy()
}

// Dimensions returns "WxH" for display
func (li *LoadedImage) Dimensions() string {
	return fmt.Sprintf("%d×%d", li.Width(), li.Height())
}
