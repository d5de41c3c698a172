package geometry

import (
	"image"
	"math"
)

// Rect is the placement of a scaled image inside the canvas.
// X and Y are the top-left draw offset.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Fit scales an image of imageWidth x imageHeight into a canvas of
// canvasWidth x canvasHeight, keeping the image aspect ratio and centering
// it along the axis that is not fully covered.
//
// Images narrower than the canvas aspect take the full canvas height; the
// rest take the full canvas width. On a square canvas this is exactly the
// aspect < 1 portrait test; the two rules only differ on a non-square canvas.
// A non-positive or non-finite dimension yields the zero Rect.
func Fit(canvasWidth, canvasHeight, imageWidth, imageHeight float64) Rect {
	if !positive(imageWidth) || !positive(imageHeight) {
		return Rect{}
	}
	if !positive(canvasWidth) || !positive(canvasHeight) {
		return Rect{}
	}

	aspectRatio := imageWidth / imageHeight

	if aspectRatio < canvasWidth/canvasHeight {
		width := canvasHeight * aspectRatio
		return Rect{
			X:      (canvasWidth - width) / 2,
			Y:      0,
			Width:  width,
			Height: canvasHeight,
		}
	}

	height := canvasWidth / aspectRatio
	return Rect{
		X:      0,
		Y:      (canvasHeight - height) / 2,
		Width:  canvasWidth,
		Height: height,
	}
}

// IsZero reports whether the rect has no area.
func (r Rect) IsZero() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Bounds rounds the rect to integer pixel bounds for raster drawing.
func (r Rect) Bounds() image.Rectangle {
	x0 := int(math.Round(r.X))
	y0 := int(math.Round(r.Y))
	x1 := int(math.Round(r.X + r.Width))
	y1 := int(math.Round(r.Y + r.Height))
	return image.Rect(x0, y0, x1, y1)
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
