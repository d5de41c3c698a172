package ui

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// MemeCanvas shows the meme raster at its native size over a backdrop.
// Tapping it runs onTapped, which the root UI uses to open the image picker.
type MemeCanvas struct {
	widget.BaseWidget

	image    *canvas.Image
	backdrop *canvas.Rectangle
	onTapped func()
}

// Compile-time interface check.
var _ fyne.Tappable = (*MemeCanvas)(nil)

// NewMemeCanvas creates a canvas widget backed by img. The widget reads img
// on every Refresh, so callers draw into it and then refresh.
func NewMemeCanvas(img image.Image, onTapped func()) *MemeCanvas {
	c := &MemeCanvas{
		image:    canvas.NewImageFromImage(img),
		backdrop: canvas.NewRectangle(theme.Color(ColorNameCanvasBackdrop)),
		onTapped: onTapped,
	}
	c.image.FillMode = canvas.ImageFillContain
	c.image.ScaleMode = canvas.ImageScalePixels

	size := img.Bounds().Size()
	c.image.SetMinSize(fyne.NewSize(float32(size.X), float32(size.Y)))

	c.ExtendBaseWidget(c)
	return c
}

// CreateRenderer implements fyne.Widget
func (c *MemeCanvas) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewStack(c.backdrop, c.image))
}

// Tapped handles a tap or click on the canvas
func (c *MemeCanvas) Tapped(*fyne.PointEvent) {
	if c.onTapped != nil {
		c.onTapped()
	}
}

// Refresh redraws the raster
func (c *MemeCanvas) Refresh() {
	c.image.Refresh()
	c.BaseWidget.Refresh()
}
