package platform

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io"
	"path/filepath"
	"strings"

	// Registered image decoders
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/ytget/memegen/internal/model"
)

// MaxImageBytes caps how much of a file is read when loading an image
const MaxImageBytes = 64 << 20

// SupportedImageExtensions lists the extensions offered by the image picker
var SupportedImageExtensions = []string{".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tif", ".tiff", ".webp"}

// Image loading errors
var (
	ErrImageTooLarge = errors.New("image file too large")
	ErrEmptyImage    = errors.New("image file is empty")
)

// IsSupportedImage reports whether name has an extension the decoders handle
func IsSupportedImage(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, supported := range SupportedImageExtensions {
		if ext == supported {
			return true
		}
	}
	return false
}

// DecodeImage reads and decodes an image. The format is sniffed from the
// content, so the name is only kept for display.
func DecodeImage(name string, r io.Reader) (*model.LoadedImage, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxImageBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("decode %s: %w", name, ErrEmptyImage)
	}
	if len(data) > MaxImageBytes {
		return nil, fmt.Errorf("decode %s: %w (max %d bytes)", name, ErrImageTooLarge, MaxImageBytes)
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}

	return &model.LoadedImage{
		Name:   filepath.Base(name),
		Format: format,
		Size:   int64(len(data)),
		Image:  img,
	}, nil
}
