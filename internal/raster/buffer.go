package raster

import "fmt"

// Format is the pixel record layout of an Image.
type Format int

const (
	RGB  Format = iota // 3 bytes per pixel
	Gray               // 1 byte per pixel
)

// RecordSize returns the number of bytes per pixel.
func (f Format) RecordSize() int {
	if f == Gray {
		return 1
	}
	return 3
}

func (f Format) String() string {
	switch f {
	case RGB:
		return "rgb"
	case Gray:
		return "gray"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// FormatForRecordSize maps a record size back to its Format.
func FormatForRecordSize(n int) (Format, bool) {
	switch n {
	case 3:
		return RGB, true
	case 1:
		return Gray, true
	}
	return 0, false
}

// Image is a row-major pixel buffer without stride padding.
type Image struct {
	Width  int
	Height int
	Format Format
	Pix    []uint8 // len = Width*Height*Format.RecordSize()
}

// NewImage allocates a zeroed (background) image.
func NewImage(w, h int, f Format) *Image {
	return &Image{
		Width:  w,
		Height: h,
		Format: f,
		Pix:    make([]uint8, w*h*f.RecordSize()),
	}
}

// PixOffset returns the index of pixel (x, y)'s first byte in Pix.
func (img *Image) PixOffset(x, y int) int {
	return (y*img.Width + x) * img.Format.RecordSize()
}

// At returns the record of pixel (x, y). The slice aliases Pix.
func (img *Image) At(x, y int) []uint8 {
	i := img.PixOffset(x, y)
	return img.Pix[i : i+img.Format.RecordSize() : i+img.Format.RecordSize()]
}

// Row returns the bytes of row y. The slice aliases Pix.
func (img *Image) Row(y int) []uint8 {
	n := img.Width * img.Format.RecordSize()
	return img.Pix[y*n : (y+1)*n : (y+1)*n]
}
