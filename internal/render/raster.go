package render

import (
	"errors"
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/ytget/memegen/internal/geometry"
)

// Default canvas size in pixels
const (
	DefaultCanvasWidth  = 400
	DefaultCanvasHeight = 400
)

// Align is the horizontal anchor of a text draw
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// TextSpec is a single text draw. Y is the baseline.
type TextSpec struct {
	Text  string
	Font  FontSpec
	Color color.Color
	Align Align
	X     float64
	Y     float64
}

// ErrNoFonts is returned by DrawText when the raster has no font cache
var ErrNoFonts = errors.New("raster has no font cache")

// Raster is a fixed-size RGBA drawing surface
type Raster struct {
	img   *image.RGBA
	fonts *FontCache
}

// NewRaster creates a transparent raster of the given size
func NewRaster(width, height int, fonts *FontCache) *Raster {
	if width <= 0 {
		width = DefaultCanvasWidth
	}
	if height <= 0 {
		height = DefaultCanvasHeight
	}
	return &Raster{
		img:   image.NewRGBA(image.Rect(0, 0, width, height)),
		fonts: fonts,
	}
}

// Image returns the backing image. The pointer stays valid for the raster lifetime.
func (r *Raster) Image() *image.RGBA {
	return r.img
}

// Size returns the raster dimensions
func (r *Raster) Size() (int, int) {
	b := r.img.Bounds()
	return b.Dx(), b.Dy()
}

// Clear erases all pixels to transparent
func (r *Raster) Clear() {
	draw.Draw(r.img, r.img.Bounds(), image.Transparent, image.Point{}, draw.Src)
}

// FillBackground paints the whole raster with c
func (r *Raster) FillBackground(c color.Color) {
	draw.Draw(r.img, r.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// DrawImage scales src into rect. A zero rect draws nothing.
func (r *Raster) DrawImage(src image.Image, rect geometry.Rect) {
	if src == nil || rect.IsZero() {
		return
	}
	dst := rect.Bounds()
	if dst.Empty() {
		return
	}
	draw.CatmullRom.Scale(r.img, dst, src, src.Bounds(), draw.Over, nil)
}

// DrawText draws a single line of text anchored at (X, Y) per spec.Align
func (r *Raster) DrawText(spec TextSpec) error {
	if spec.Text == "" {
		return nil
	}
	if r.fonts == nil {
		return ErrNoFonts
	}

	face, err := r.fonts.Face(spec.Font)
	if err != nil {
		return err
	}

	c := spec.Color
	if c == nil {
		c = color.White
	}

	width := font.MeasureString(face, spec.Text)
	x := fixed.Int26_6(spec.X * 64)
	switch spec.Align {
	case AlignCenter:
		x -= width / 2
	case AlignRight:
		x -= width
	}

	d := &font.Drawer{
		Dst:  r.img,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.Point26_6{X: x, Y: fixed.Int26_6(spec.Y * 64)},
	}
	d.DrawString(spec.Text)
	return nil
}
