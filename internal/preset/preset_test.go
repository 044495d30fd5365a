package preset

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"voxel-raycaster/internal/raster"
	"voxel-raycaster/internal/scene"
	"voxel-raycaster/internal/viewmatrix"
)

func render(t *testing.T, p Preset, workers int) *raster.Image {
	t.Helper()
	s := scene.Default()
	img, err := raster.Render(context.Background(), raster.Params{
		Scene:   s,
		Camera:  viewmatrix.ComputeCamera(s, p.View, p.Width, p.Height),
		Width:   p.Width,
		Height:  p.Height,
		Shader:  p.Shader,
		Workers: workers,
	})
	if err != nil {
		t.Fatalf("%s: render: %v", p.Name, err)
	}
	return img
}

func TestLookup(t *testing.T) {
	for _, name := range Names() {
		p, err := Lookup(name)
		if err != nil {
			t.Fatalf("Lookup(%q): %v", name, err)
		}
		if p.Name != name || p.Shader.Name() != name {
			t.Fatalf("preset %q has name %q shader %q", name, p.Name, p.Shader.Name())
		}
	}
	if _, err := Lookup("sepia"); !errors.Is(err, ErrUnknown) {
		t.Fatalf("err = %v, want ErrUnknown", err)
	}
	if _, err := Lookup(Default); err != nil {
		t.Fatalf("default preset missing: %v", err)
	}
}

func TestPresetFormats(t *testing.T) {
	n, _ := Lookup("normal")
	d, _ := Lookup("distance")
	if n.Shader.Format() != raster.RGB || d.Shader.Format() != raster.Gray {
		t.Fatalf("formats: normal %s, distance %s", n.Shader.Format(), d.Shader.Format())
	}
}

func TestPresetsHitCentre(t *testing.T) {
	for _, name := range Names() {
		p, _ := Lookup(name)
		img := render(t, p, 0)
		bg := make([]uint8, img.Format.RecordSize())
		if bytes.Equal(img.At(128, 128), bg) {
			t.Fatalf("%s: centre pixel (128,128) is background", name)
		}
	}
}

func TestPresetsDeterministic(t *testing.T) {
	for _, name := range Names() {
		p, _ := Lookup(name)
		a := render(t, p, 1)
		b := render(t, p, 5)
		if !bytes.Equal(a.Pix, b.Pix) {
			t.Fatalf("%s: renders differ between runs", name)
		}
	}
}

func TestNormalPresetFaces(t *testing.T) {
	p, _ := Lookup("normal")
	img := render(t, p, 0)

	x := []uint8{255, 127, 127}
	y := []uint8{127, 255, 127}
	z := []uint8{127, 127, 255}
	bg := []uint8{0, 0, 0}
	tests := []struct {
		px, py int
		want   []uint8
	}{
		{64, 128, y},
		{192, 128, z},
		{128, 64, z},
		{128, 192, x},
		{96, 96, z},
		{160, 160, x},
		{96, 160, x},
		{160, 96, x},
		{40, 40, bg},
		{216, 216, bg},
	}
	for _, tt := range tests {
		if got := img.At(tt.px, tt.py); !bytes.Equal(got, tt.want) {
			t.Errorf("pixel (%d,%d) = %v, want %v", tt.px, tt.py, got, tt.want)
		}
	}
}
