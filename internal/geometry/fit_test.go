package geometry

import (
	"image"
	"math"
	"testing"
)

const tolerance = 1e-9

func TestFit_Examples(t *testing.T) {
	tests := []struct {
		name             string
		canvasW, canvasH float64
		imageW, imageH   float64
		expected         Rect
	}{
		{"landscape", 400, 400, 800, 400, Rect{X: 0, Y: 100, Width: 400, Height: 200}},
		{"portrait", 400, 400, 400, 800, Rect{X: 100, Y: 0, Width: 200, Height: 400}},
		{"square", 400, 400, 400, 400, Rect{X: 0, Y: 0, Width: 400, Height: 400}},
		{"small square upscaled", 400, 400, 10, 10, Rect{X: 0, Y: 0, Width: 400, Height: 400}},
		{"wide canvas portrait", 600, 300, 100, 200, Rect{X: 225, Y: 0, Width: 150, Height: 300}},
		{"wide canvas, image less wide than canvas", 600, 300, 300, 200, Rect{X: 75, Y: 0, Width: 450, Height: 300}},
		{"tall canvas, square image", 300, 600, 100, 100, Rect{X: 0, Y: 150, Width: 300, Height: 300}},
	}

	for _, test := range tests {
		result := Fit(test.canvasW, test.canvasH, test.imageW, test.imageH)
		if !rectEqual(result, test.expected) {
			t.Errorf("%s: Fit(%v, %v, %v, %v) = %+v, expected %+v",
				test.name, test.canvasW, test.canvasH, test.imageW, test.imageH, result, test.expected)
		}
	}
}

func TestFit_SquareCanvasPortraitRule(t *testing.T) {
	tests := []struct {
		imageW, imageH float64
		fullHeight     bool
	}{
		{100, 200, true},
		{399, 400, true},
		{400, 400, false},
		{401, 400, false},
		{800, 400, false},
	}

	for _, canvas := range []float64{1, 400, 1000} {
		for _, tt := range tests {
			r := Fit(canvas, canvas, tt.imageW, tt.imageH)
			if tt.fullHeight && (math.Abs(r.Height-canvas) > tolerance || r.Y != 0) {
				t.Errorf("Fit(%v,%v,%v,%v) = %+v, expected full height", canvas, canvas, tt.imageW, tt.imageH, r)
			}
			if !tt.fullHeight && (math.Abs(r.Width-canvas) > tolerance || r.X != 0) {
				t.Errorf("Fit(%v,%v,%v,%v) = %+v, expected full width", canvas, canvas, tt.imageW, tt.imageH, r)
			}
		}
	}
}

func TestFit_ZeroAndInvalidImage(t *testing.T) {
	tests := []struct {
		imageW, imageH float64
	}{
		{400, 0},
		{0, 400},
		{-10, 400},
		{400, math.Inf(1)},
		{math.NaN(), 400},
	}

	for _, test := range tests {
		result := Fit(400, 400, test.imageW, test.imageH)
		if result != (Rect{}) {
			t.Errorf("Fit(400, 400, %v, %v) = %+v, expected zero rect", test.imageW, test.imageH, result)
		}
		if !result.IsZero() {
			t.Errorf("zero rect should report IsZero")
		}
	}
}

func TestFit_ZeroCanvas(t *testing.T) {
	if r := Fit(0, 400, 800, 400); r != (Rect{}) {
		t.Errorf("Fit with zero canvas width = %+v, expected zero rect", r)
	}
	if r := Fit(400, 0, 800, 400); r != (Rect{}) {
		t.Errorf("Fit with zero canvas height = %+v, expected zero rect", r)
	}
}

func TestFit_Properties(t *testing.T) {
	canvases := [][2]float64{{400, 400}, {640, 480}, {300, 500}, {1, 1}, {1920, 1080}}
	images := [][2]float64{
		{1, 1}, {800, 400}, {400, 800}, {3, 7}, {7, 3}, {1000, 999}, {999, 1000},
		{4000, 30}, {30, 4000}, {1920, 1080}, {1080, 1920}, {0.5, 0.25},
	}

	for _, c := range canvases {
		for _, img := range images {
			canvasW, canvasH := c[0], c[1]
			imageW, imageH := img[0], img[1]
			r := Fit(canvasW, canvasH, imageW, imageH)

			if math.Abs(r.Width/r.Height-imageW/imageH) > 1e-6 {
				t.Errorf("Fit(%v,%v,%v,%v): aspect %v, expected %v", canvasW, canvasH, imageW, imageH, r.Width/r.Height, imageW/imageH)
			}

			if math.Abs(r.Width-canvasW) > tolerance && math.Abs(r.Height-canvasH) > tolerance {
				t.Errorf("Fit(%v,%v,%v,%v) = %+v touches neither full edge pair", canvasW, canvasH, imageW, imageH, r)
			}

			if r.X < -tolerance || r.Y < -tolerance {
				t.Errorf("Fit(%v,%v,%v,%v) = %+v has negative offset", canvasW, canvasH, imageW, imageH, r)
			}
			if r.X+r.Width > canvasW+1e-6 || r.Y+r.Height > canvasH+1e-6 {
				t.Errorf("Fit(%v,%v,%v,%v) = %+v exceeds canvas", canvasW, canvasH, imageW, imageH, r)
			}

			// Centering is along the uncovered axis, so the offset on that axis is symmetric.
			if math.Abs(r.X*2+r.Width-canvasW) > tolerance && r.X != 0 {
				t.Errorf("Fit(%v,%v,%v,%v) = %+v is not horizontally centered", canvasW, canvasH, imageW, imageH, r)
			}
			if math.Abs(r.Y*2+r.Height-canvasH) > tolerance && r.Y != 0 {
				t.Errorf("Fit(%v,%v,%v,%v) = %+v is not vertically centered", canvasW, canvasH, imageW, imageH, r)
			}
		}
	}
}

func TestFit_InsideCanvas(t *testing.T) {
	tests := []struct {
		canvasW, canvasH float64
		imageW, imageH   float64
	}{
		{400, 400, 800, 400},
		{400, 400, 400, 800},
		{400, 400, 123, 456},
		{400, 400, 456, 123},
		{640, 480, 1920, 1080},
		{480, 640, 1080, 1920},
		{300, 500, 999, 1000},
		{500, 300, 1000, 999},
	}

	for _, test := range tests {
		r := Fit(test.canvasW, test.canvasH, test.imageW, test.imageH)
		if r.X < -tolerance || r.Y < -tolerance {
			t.Errorf("Fit(%+v) = %+v has negative offset", test, r)
		}
		if r.X+r.Width > test.canvasW+tolerance || r.Y+r.Height > test.canvasH+tolerance {
			t.Errorf("Fit(%+v) = %+v exceeds canvas", test, r)
		}
	}
}

func TestFit_Deterministic(t *testing.T) {
	first := Fit(400, 400, 1234, 567)
	for i := 0; i < 10; i++ {
		if Fit(400, 400, 1234, 567) != first {
			t.Fatal("Fit should return the same result for the same inputs")
		}
	}
}

func TestRect_Bounds(t *testing.T) {
	tests := []struct {
		rect     Rect
		expected image.Rectangle
	}{
		{Rect{X: 0, Y: 100, Width: 400, Height: 200}, image.Rect(0, 100, 400, 300)},
		{Rect{X: 100.4, Y: 0, Width: 199.2, Height: 400}, image.Rect(100, 0, 300, 400)},
		{Rect{}, image.Rectangle{}},
	}

	for _, test := range tests {
		result := test.rect.Bounds()
		if result != test.expected {
			t.Errorf("Bounds() for %+v = %v, expected %v", test.rect, result, test.expected)
		}
	}
}

func rectEqual(a, b Rect) bool {
	return math.Abs(a.X-b.X) < tolerance &&
		math.Abs(a.Y-b.Y) < tolerance &&
		math.Abs(a.Width-b.Width) < tolerance &&
		math.Abs(a.Height-b.Height) < tolerance
}
