package render

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/ytget/memegen/internal/geometry"
)

func newTestRaster(t *testing.T) *Raster {
	t.Helper()
	fonts, err := NewFontCache()
	if err != nil {
		t.Fatalf("NewFontCache() error = %v", err)
	}
	t.Cleanup(func() { fonts.Close() })
	return NewRaster(400, 400, fonts)
}

func TestNewRaster_Defaults(t *testing.T) {
	r := NewRaster(0, -1, nil)
	w, h := r.Size()
	if w != DefaultCanvasWidth || h != DefaultCanvasHeight {
		t.Errorf("expected default size %dx%d, got %dx%d", DefaultCanvasWidth, DefaultCanvasHeight, w, h)
	}
}

func TestRaster_FillAndClear(t *testing.T) {
	r := newTestRaster(t)

	r.FillBackground(color.Black)
	if got := r.Image().RGBAAt(200, 200); got != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("after fill expected opaque black, got %v", got)
	}

	r.Clear()
	if got := r.Image().RGBAAt(200, 200); got != (color.RGBA{}) {
		t.Errorf("after clear expected transparent, got %v", got)
	}
}

func TestRaster_DrawImageAtFitRect(t *testing.T) {
	r := newTestRaster(t)
	r.FillBackground(color.Black)

	src := image.NewRGBA(image.Rect(0, 0, 80, 40))
	red := color.RGBA{255, 0, 0, 255}
	for y := 0; y < 40; y++ {
		for x := 0; x < 80; x++ {
			src.SetRGBA(x, y, red)
		}
	}

	rect := geometry.Fit(400, 400, 80, 40)
	r.DrawImage(src, rect)

	if got := r.Image().RGBAAt(200, 200); got.R < 250 || got.G > 5 || got.B > 5 {
		t.Errorf("center pixel expected red, got %v", got)
	}
	if got := r.Image().RGBAAt(200, 50); got != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("letterbox pixel expected black, got %v", got)
	}
	if got := r.Image().RGBAAt(200, 350); got != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("letterbox pixel expected black, got %v", got)
	}
}

func TestRaster_DrawImageZeroRect(t *testing.T) {
	r := newTestRaster(t)
	src := image.NewRGBA(image.Rect(0, 0, 10, 10))
	r.DrawImage(src, geometry.Rect{})
	r.DrawImage(nil, geometry.Rect{Width: 10, Height: 10})

	if got := r.Image().RGBAAt(0, 0); got != (color.RGBA{}) {
		t.Errorf("zero rect must not draw, got %v", got)
	}
}

func TestRaster_DrawTextCentered(t *testing.T) {
	r := newTestRaster(t)
	r.FillBackground(color.Black)

	err := r.DrawText(TextSpec{
		Text:  "HELLO",
		Font:  CaptionFont(40),
		Color: color.White,
		Align: AlignCenter,
		X:     200,
		Y:     40,
	})
	if err != nil {
		t.Fatalf("DrawText() error = %v", err)
	}

	box, ok := brightBounds(r.Image(), image.Rect(0, 0, 400, 60))
	if !ok {
		t.Fatal("expected text pixels near the top of the canvas")
	}

	center := (box.Min.X + box.Max.X) / 2
	if center < 190 || center > 210 {
		t.Errorf("text should be horizontally centered around 200, got box %v", box)
	}
	if box.Max.Y > 45 {
		t.Errorf("text should sit on the baseline at y=40, got box %v", box)
	}

	if _, found := brightBounds(r.Image(), image.Rect(0, 100, 400, 400)); found {
		t.Error("no text expected below the top caption")
	}
}

func TestRaster_DrawTextAlignment(t *testing.T) {
	r := newTestRaster(t)
	r.FillBackground(color.Black)

	if err := r.DrawText(TextSpec{Text: "LEFT", Font: CaptionFont(20), Align: AlignLeft, X: 10, Y: 100}); err != nil {
		t.Fatalf("DrawText() error = %v", err)
	}
	if err := r.DrawText(TextSpec{Text: "RIGHT", Font: CaptionFont(20), Align: AlignRight, X: 390, Y: 300}); err != nil {
		t.Fatalf("DrawText() error = %v", err)
	}

	left, ok := brightBounds(r.Image(), image.Rect(0, 60, 400, 120))
	if !ok || left.Min.X < 8 || left.Max.X > 200 {
		t.Errorf("left aligned text misplaced: %v", left)
	}

	right, ok := brightBounds(r.Image(), image.Rect(0, 260, 400, 320))
	if !ok || right.Max.X > 392 || right.Min.X < 200 {
		t.Errorf("right aligned text misplaced: %v", right)
	}
}

func TestRaster_DrawTextEmptyAndNoFonts(t *testing.T) {
	r := NewRaster(100, 100, nil)

	if err := r.DrawText(TextSpec{Text: ""}); err != nil {
		t.Errorf("empty text should be a no-op, got %v", err)
	}
	if err := r.DrawText(TextSpec{Text: "X"}); !errors.Is(err, ErrNoFonts) {
		t.Errorf("expected ErrNoFonts, got %v", err)
	}
}

func TestFontCache_ReusesFaces(t *testing.T) {
	fonts, err := NewFontCache()
	if err != nil {
		t.Fatalf("NewFontCache() error = %v", err)
	}
	defer fonts.Close()

	a, err := fonts.Face(CaptionFont(40))
	if err != nil {
		t.Fatalf("Face() error = %v", err)
	}
	b, _ := fonts.Face(CaptionFont(40))
	if a != b {
		t.Error("same spec should return the cached face")
	}

	small, err := fonts.Face(FontSpec{Size: 1})
	if err != nil {
		t.Fatalf("Face() for tiny size error = %v", err)
	}
	clamped, _ := fonts.Face(FontSpec{Size: MinFontSize})
	if small != clamped {
		t.Error("sizes below the minimum should be clamped")
	}
}

// brightBounds returns the bounding box of near-white pixels within area.
func brightBounds(img *image.RGBA, area image.Rectangle) (image.Rectangle, bool) {
	box := image.Rectangle{Min: area.Max, Max: area.Min}
	found := false
	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			c := img.RGBAAt(x, y)
			if c.R > 200 && c.G > 200 && c.B > 200 {
				found = true
				if x < box.Min.X {
					box.Min.X = x
				}
				if y < box.Min.Y {
					box.Min.Y = y
				}
				if x+1 > box.Max.X {
					box.Max.X = x + 1
				}
				if y+1 > box.Max.Y {
					box.Max.Y = y + 1
				}
			}
		}
	}
	return box, found
}
