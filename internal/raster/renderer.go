package raster

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"voxel-raycaster/internal/batch"
	"voxel-raycaster/internal/geom"
	"voxel-raycaster/internal/scene"
	"voxel-raycaster/internal/viewmatrix"
)

// ShootRay builds the primary ray of pixel (idx, idy) in a w×h image.
// Pixel corners map to NDC ((2*idx-w)/w, (2*idy-h)/h), covering [-1, 1).
func ShootRay(idx, idy, w, h int, cam viewmatrix.Camera) geom.Ray {
	ndcX := float32(idx*2-w) * (1 / float32(w))
	ndcY := float32(idy*2-h) * (1 / float32(h))
	return geom.NewRay(cam.Origin, cam.Direction(ndcX, ndcY))
}

// Params describes one render.
type Params struct {
	Scene  scene.Scene
	Camera viewmatrix.Camera
	Width  int
	Height int
	Shader Shader

	Workers  int           // <= 0 means runtime.NumCPU()
	Progress time.Duration // progress log interval, 0 disables
	Logger   *slog.Logger  // nil discards
}

func (p *Params) validate() error {
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("raster: invalid image size %dx%d", p.Width, p.Height)
	}
	if p.Shader == nil {
		return fmt.Errorf("raster: no shader")
	}
	return nil
}

// ShadePixel evaluates pixel (idx, idy) into dst. It depends only on its
// arguments, so pixels can be shaded in any order.
func (p *Params) ShadePixel(idx, idy int, dst []uint8) {
	ray := ShootRay(idx, idy, p.Width, p.Height, p.Camera)
	p.Shader.Shade(p.Scene.Trace(ray), dst)
}

// Render shades every pixel of the image. Rows are spread over a worker
// pool; each worker writes only the rows it was given, so the result is
// identical for any worker count.
func Render(ctx context.Context, p Params) (*Image, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	img := NewImage(p.Width, p.Height, p.Shader.Format())
	rs := img.Format.RecordSize()

	err := batch.Run(ctx, batch.Config{
		Workers:  p.Workers,
		Progress: p.Progress,
		Logger:   p.Logger,
	}, p.Height, func(y int) {
		row := img.Row(y)
		for x := 0; x < p.Width; x++ {
			p.ShadePixel(x, y, row[x*rs:(x+1)*rs])
		}
	})
	if err != nil {
		return nil, fmt.Errorf("raster: render: %w", err)
	}
	return img, nil
}

// RenderSequential shades pixels one after another in index order.
func RenderSequential(p Params) (*Image, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	img := NewImage(p.Width, p.Height, p.Shader.Format())
	rs := img.Format.RecordSize()
	for i := 0; i < p.Width*p.Height; i++ {
		x, y := i%p.Width, i/p.Width
		p.ShadePixel(x, y, img.Pix[i*rs:(i+1)*rs])
	}
	return img, nil
}
