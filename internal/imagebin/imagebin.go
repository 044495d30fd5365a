// Package imagebin reads and writes the raw image container handed from the
// renderer to the converter:
//
//	uint16 LE width
//	uint16 LE height
//	width*height pixel records, row-major, 3 bytes (RGB) or 1 byte (gray)
package imagebin

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"voxel-raycaster/internal/raster"
)

// HeaderSize is the size of the width/height header in bytes.
const HeaderSize = 4

var (
	// ErrSizeMismatch means the payload length disagrees with the header.
	ErrSizeMismatch = errors.New("imagebin: dimensions mismatch; not an image or corrupt")
	// ErrTooLarge means a dimension does not fit the 16-bit header.
	ErrTooLarge = errors.New("imagebin: image dimensions exceed 65535")
	// ErrUnknownLayout means no record size explains the file length.
	ErrUnknownLayout = errors.New("imagebin: cannot infer pixel record size")
)

// Header is the fixed container prefix.
type Header struct {
	Width  uint16
	Height uint16
}

// PayloadSize returns the expected payload length for a record size.
func (h Header) PayloadSize(recordSize int) int {
	return int(h.Width) * int(h.Height) * recordSize
}

func validate(img *raster.Image) error {
	if img.Width < 0 || img.Height < 0 {
		return fmt.Errorf("imagebin: negative dimensions %dx%d", img.Width, img.Height)
	}
	if img.Width > math.MaxUint16 || img.Height > math.MaxUint16 {
		return fmt.Errorf("%w: %dx%d", ErrTooLarge, img.Width, img.Height)
	}
	if exp := img.Width * img.Height * img.Format.RecordSize(); len(img.Pix) != exp {
		return fmt.Errorf("imagebin: pixel buffer length %d, expected %d", len(img.Pix), exp)
	}
	return nil
}

// Encode writes img to w.
func Encode(w io.Writer, img *raster.Image) error {
	if err := validate(img); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	hdr := Header{Width: uint16(img.Width), Height: uint16(img.Height)}
	if err := binary.Write(bw, binary.LittleEndian, hdr); err != nil {
		return err
	}
	if _, err := bw.Write(img.Pix); err != nil {
		return err
	}
	return bw.Flush()
}

// Decode reads a whole container from r. The payload must be exactly
// width*height*f.RecordSize() bytes; nothing is returned otherwise.
func Decode(r io.Reader, f raster.Format) (*raster.Image, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(data, f)
}

// Parse decodes a container held in memory. Pix is copied out of data.
func Parse(data []byte, f raster.Format) (*raster.Image, error) {
	hdr, err := parseHeader(data)
	if err != nil {
		return nil, err
	}
	if exp := HeaderSize + hdr.PayloadSize(f.RecordSize()); len(data) != exp {
		return nil, fmt.Errorf("%w: %dx%d %s needs %d bytes, have %d",
			ErrSizeMismatch, hdr.Width, hdr.Height, f, exp, len(data))
	}
	img := raster.NewImage(int(hdr.Width), int(hdr.Height), f)
	copy(img.Pix, data[HeaderSize:])
	return img, nil
}

// DetectFormat infers the record layout from the container length. A file
// that fits both layouts (a 0-pixel image) reads as gray.
func DetectFormat(data []byte) (raster.Format, error) {
	hdr, err := parseHeader(data)
	if err != nil {
		return 0, err
	}
	for _, f := range []raster.Format{raster.Gray, raster.RGB} {
		if len(data) == HeaderSize+hdr.PayloadSize(f.RecordSize()) {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: %dx%d with %d bytes", ErrUnknownLayout, hdr.Width, hdr.Height, len(data))
}

func parseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, fmt.Errorf("%w: %d bytes is shorter than the header", ErrSizeMismatch, len(data))
	}
	return Header{
		Width:  binary.LittleEndian.Uint16(data[0:2]),
		Height: binary.LittleEndian.Uint16(data[2:4]),
	}, nil
}

// WriteFile encodes img into path, creating parent directories. An image
// that cannot be encoded leaves an existing file at path untouched.
func WriteFile(path string, img *raster.Image) error {
	if err := validate(img); err != nil {
		return fmt.Errorf("imagebin: write %s: %w", path, err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("imagebin: write %s: %w", path, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("imagebin: write %s: %w", path, err)
	}
	if err := Encode(f, img); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("imagebin: write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("imagebin: write %s: %w", path, err)
	}
	return nil
}

// ReadFile decodes path. When auto is true the record layout is inferred
// from the file length and f is ignored.
func ReadFile(path string, f raster.Format, auto bool) (*raster.Image, error) {
	st, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("imagebin: read %s: %w", path, err)
	}
	if !st.Mode().IsRegular() {
		return nil, fmt.Errorf("imagebin: read %s: not a regular file", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("imagebin: read %s: %w", path, err)
	}
	if auto {
		if f, err = DetectFormat(data); err != nil {
			return nil, fmt.Errorf("imagebin: read %s: %w", path, err)
		}
	}
	img, err := Parse(data, f)
	if err != nil {
		return nil, fmt.Errorf("imagebin: read %s: %w", path, err)
	}
	return img, nil
}
