package postprocess

import (
	"fmt"
	"image"

	"voxel-raycaster/internal/raster"
)

// ToImage converts a rendered buffer into a standard image. The renderer's
// row 0 is the bottom of the picture, so rows are flipped vertically.
// RGB buffers become opaque *image.NRGBA, gray buffers *image.Gray.
func ToImage(img *raster.Image) (image.Image, error) {
	w, h := img.Width, img.Height
	rs := img.Format.RecordSize()
	if len(img.Pix) != w*h*rs {
		return nil, fmt.Errorf("postprocess: pixel buffer length %d, expected %d", len(img.Pix), w*h*rs)
	}
	r := image.Rect(0, 0, w, h)

	switch img.Format {
	case raster.Gray:
		dst := image.NewGray(r)
		for y := 0; y < h; y++ {
			copy(dst.Pix[y*dst.Stride:y*dst.Stride+w], img.Row(h-1-y))
		}
		return dst, nil
	case raster.RGB:
		dst := image.NewNRGBA(r)
		for y := 0; y < h; y++ {
			src := img.Row(h - 1 - y)
			off := y * dst.Stride
			for x := 0; x < w; x++ {
				dst.Pix[off+x*4] = src[x*3]
				dst.Pix[off+x*4+1] = src[x*3+1]
				dst.Pix[off+x*4+2] = src[x*3+2]
				dst.Pix[off+x*4+3] = 255
			}
		}
		return dst, nil
	}
	return nil, fmt.Errorf("postprocess: unsupported pixel format %s", img.Format)
}
