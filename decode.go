package halfblock

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var (
	// ErrFileNotFound is returned when the image file cannot be opened.
	ErrFileNotFound = errors.New("file does not exist")
	// ErrDecode is returned when the data is not an image in a supported
	// format.
	ErrDecode = errors.New("could not read image")
)

// Decode decodes an image in any registered format (PNG, JPEG, GIF, BMP,
// TIFF or WebP) and returns it as a pixel source.
func Decode(rd io.Reader, color bool) (PixelSource, error) {
	img, _, err := image.Decode(rd)
	if err != nil {
		return nil, fmt.Errorf("halfblock: Decode: %w: %v", ErrDecode, err)
	}

	return NewSource(img, color), nil
}

// Open reads and decodes the image file at path. The file is closed before
// Open returns.
func Open(path string, color bool) (PixelSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("halfblock: Open: %w: %v", ErrFileNotFound, err)
	}
	defer f.Close()

	return Decode(f, color)
}
