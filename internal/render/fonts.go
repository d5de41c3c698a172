package render

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Font size bounds accepted by FontCache
const (
	MinFontSize     = 6
	MaxFontSize     = 200
	DefaultFontSize = 40
)

// FontSpec describes the face used to draw a caption
type FontSpec struct {
	Size float64 // pixels at 72 DPI
	Bold bool
}

// CaptionFont is the bold display font used for meme captions
func CaptionFont(size float64) FontSpec {
	return FontSpec{Size: size, Bold: true}
}

// FontCache parses the embedded Go fonts once and hands out faces per size.
type FontCache struct {
	mu      sync.Mutex
	regular *opentype.Font
	bold    *opentype.Font
	faces   map[FontSpec]font.Face
}

// NewFontCache parses the embedded fonts
func NewFontCache() (*FontCache, error) {
	regular, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse regular font: %w", err)
	}
	bold, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse bold font: %w", err)
	}

	return &FontCache{
		regular: regular,
		bold:    bold,
		faces:   make(map[FontSpec]font.Face),
	}, nil
}

// Face returns a face for spec, creating it on first use
func (fc *FontCache) Face(spec FontSpec) (font.Face, error) {
	if spec.Size < MinFontSize {
		spec.Size = MinFontSize
	}
	if spec.Size > MaxFontSize {
		spec.Size = MaxFontSize
	}

	fc.mu.Lock()
	defer fc.mu.Unlock()

	if face, ok := fc.faces[spec]; ok {
		return face, nil
	}

	src := fc.regular
	if spec.Bold {
		src = fc.bold
	}

	face, err := opentype.NewFace(src, &opentype.FaceOptions{
		Size:    spec.Size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create face (size %.1f): %w", spec.Size, err)
	}

	fc.faces[spec] = face
	return face, nil
}

// Close releases all cached faces
func (fc *FontCache) Close() error {
	fc.mu.Lock()
	defer fc.mu.Unlock()

	var firstErr error
	for spec, face := range fc.faces {
		if err := face.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		delete(fc.faces, spec)
	}
	return firstErr
}
