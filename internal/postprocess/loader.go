package postprocess

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"golang.org/x/image/webp"
)

// LoadImage decodes an image file written by Encode, choosing the decoder
// from the file extension.
func LoadImage(path string) (image.Image, Format, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, "", err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("postprocess: read %s: %w", path, err)
	}
	defer f.Close()

	img, err := Decode(f, format)
	if err != nil {
		return nil, "", fmt.Errorf("postprocess: decode %s: %w", path, err)
	}
	return img, format, nil
}

// Decode reads an image in format f from r.
func Decode(r io.Reader, f Format) (image.Image, error) {
	switch f {
	case PNG:
		return png.Decode(r)
	case WebP:
		return webp.Decode(r)
	case TGA:
		return tga.Decode(r)
	case BMP:
		return bmp.Decode(r)
	case TIFF:
		return tiff.Decode(r)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
}
