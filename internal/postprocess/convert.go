package postprocess

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"voxel-raycaster/internal/imagebin"
	"voxel-raycaster/internal/raster"
)

// MaxDimension bounds either side of an upscaled image.
const MaxDimension = 1 << 16

// ErrScaleTooLarge means the upscaled image would exceed MaxDimension.
var ErrScaleTooLarge = errors.New("postprocess: upscaled image too large")

// Options controls ConvertFile.
type Options struct {
	// Format of the output. Empty means infer from the output extension.
	Format Format
	// Scale is an integer upscale factor; <= 1 keeps the rendered size.
	Scale int
	// Input record layout. Auto infers it from the file length.
	Input raster.Format
	Auto  bool
	// Logger receives diagnostics; nil discards.
	Logger *slog.Logger
}

// ConvertFile reads an image container from in and writes it to out as an
// image file. A failed conversion leaves no output file behind.
func ConvertFile(in, out string, opts Options) error {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	format := opts.Format
	if format == "" {
		var err error
		if format, err = FormatFromPath(out); err != nil {
			return err
		}
	}

	img, err := imagebin.ReadFile(in, opts.Input, opts.Auto)
	if err != nil {
		return err
	}
	log.Debug("read image container",
		"path", in,
		"width", img.Width,
		"height", img.Height,
		"layout", img.Format.String())

	if opts.Scale > 1 && (opts.Scale > MaxDimension/max(img.Width, 1) || opts.Scale > MaxDimension/max(img.Height, 1)) {
		return fmt.Errorf("%w: %dx%d scaled by %d", ErrScaleTooLarge, img.Width, img.Height, opts.Scale)
	}

	m, err := ToImage(img)
	if err != nil {
		return err
	}
	m = Upscale(m, opts.Scale)

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("postprocess: create %s: %w", out, err)
	}
	if err := Encode(f, m, format); err != nil {
		f.Close()
		os.Remove(out)
		return fmt.Errorf("postprocess: encode %s: %w", out, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(out)
		return fmt.Errorf("postprocess: write %s: %w", out, err)
	}

	b := m.Bounds()
	log.Info("wrote image", "path", out, "format", string(format), "width", b.Dx(), "height", b.Dy())
	return nil
}
