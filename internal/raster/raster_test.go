package raster

import (
	"bytes"
	"context"
	"math"
	"testing"

	"voxel-raycaster/internal/geom"
	"voxel-raycaster/internal/mathutil"
	"voxel-raycaster/internal/scene"
	"voxel-raycaster/internal/viewmatrix"
)

func testParams(w, h int, sh Shader) Params {
	s := scene.Default()
	vp := viewmatrix.Params{
		Roll:     math.Pi / 8,
		Azimuth:  math.Pi / 4,
		Position: mathutil.Vec3{0, 0, 2.125},
	}
	return Params{
		Scene:  s,
		Camera: viewmatrix.ComputeCamera(s, vp, w, h),
		Width:  w,
		Height: h,
		Shader: sh,
	}
}

func TestNormalShader(t *testing.T) {
	tests := []struct {
		name string
		hit  geom.Hit
		want []uint8
	}{
		{"miss", geom.Miss, []uint8{0, 0, 0}},
		{"x face", geom.Hit{Dist: 1, A: true, B: true}, []uint8{255, 127, 127}},
		{"y face", geom.Hit{Dist: 1, A: false, B: true}, []uint8{127, 255, 127}},
		{"z face", geom.Hit{Dist: 1, A: true, B: false}, []uint8{127, 127, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := []uint8{9, 9, 9}
			NormalShader{}.Shade(tt.hit, dst)
			if !bytes.Equal(dst, tt.want) {
				t.Fatalf("got %v, want %v", dst, tt.want)
			}
		})
	}
}

func TestDistanceShader(t *testing.T) {
	tests := []struct {
		name string
		hit  geom.Hit
		want uint8
	}{
		{"miss", geom.Miss, 0},
		{"near", geom.Hit{Dist: 1}, 63},
		{"half", geom.Hit{Dist: 2}, 127},
		{"at scale", geom.Hit{Dist: 4}, 255},
		{"beyond", geom.Hit{Dist: 100}, 255},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := []uint8{9}
			DistanceShader{Scale: 4}.Shade(tt.hit, dst)
			if dst[0] != tt.want {
				t.Fatalf("got %d, want %d", dst[0], tt.want)
			}
		})
	}

	// Zero scale falls back to the default.
	dst := []uint8{0}
	DistanceShader{}.Shade(geom.Hit{Dist: 2}, dst)
	if dst[0] != 127 {
		t.Fatalf("zero scale: got %d", dst[0])
	}
}

func TestShaderByName(t *testing.T) {
	for _, name := range []string{"normal", "distance"} {
		sh, ok := ShaderByName(name)
		if !ok || sh.Name() != name {
			t.Fatalf("ShaderByName(%q) = %v, %v", name, sh, ok)
		}
	}
	if _, ok := ShaderByName("phong"); ok {
		t.Fatal("unknown shader accepted")
	}
}

func TestShootRayNDC(t *testing.T) {
	cam := viewmatrix.Camera{
		Right:   mathutil.AxisX,
		Up:      mathutil.AxisY,
		Forward: mathutil.Vec3{0, 0, -1},
		Origin:  mathutil.Vec3{1, 2, 3},
	}
	tests := []struct {
		x, y int
		ndcX float32
		ndcY float32
	}{
		{0, 0, -1, -1},
		{2, 2, 0, 0},
		{3, 1, 0.5, -0.5},
	}
	for _, tt := range tests {
		r := ShootRay(tt.x, tt.y, 4, 4, cam)
		if r.Origin != cam.Origin {
			t.Fatalf("origin = %v", r.Origin)
		}
		want := geom.NewRay(cam.Origin, mathutil.Vec3{tt.ndcX, tt.ndcY, -1})
		if r.RcpDir != want.RcpDir {
			t.Fatalf("pixel (%d,%d): rcp dir %v, want %v", tt.x, tt.y, r.RcpDir, want.RcpDir)
		}
	}
}

func TestImageLayout(t *testing.T) {
	img := NewImage(4, 3, RGB)
	if len(img.Pix) != 36 {
		t.Fatalf("len(Pix) = %d", len(img.Pix))
	}
	img.At(1, 2)[0] = 7
	if img.Pix[(2*4+1)*3] != 7 {
		t.Fatal("At does not alias Pix row-major")
	}
	if got := img.Row(2)[3]; got != 7 {
		t.Fatalf("Row(2)[3] = %d", got)
	}

	g := NewImage(5, 2, Gray)
	if len(g.Pix) != 10 || g.PixOffset(4, 1) != 9 {
		t.Fatalf("gray layout wrong: len %d off %d", len(g.Pix), g.PixOffset(4, 1))
	}
	if f, ok := FormatForRecordSize(1); !ok || f != Gray {
		t.Fatal("record size 1 is gray")
	}
	if _, ok := FormatForRecordSize(4); ok {
		t.Fatal("record size 4 accepted")
	}
}

func TestRenderDeterministic(t *testing.T) {
	for _, sh := range []Shader{NormalShader{}, DistanceShader{Scale: 4}} {
		p := testParams(64, 48, sh)

		want, err := RenderSequential(p)
		if err != nil {
			t.Fatalf("%s: sequential: %v", sh.Name(), err)
		}
		for _, workers := range []int{1, 2, 7, 0} {
			p.Workers = workers
			got, err := Render(context.Background(), p)
			if err != nil {
				t.Fatalf("%s: workers=%d: %v", sh.Name(), workers, err)
			}
			if !bytes.Equal(got.Pix, want.Pix) {
				t.Fatalf("%s: workers=%d differs from sequential render", sh.Name(), workers)
			}
		}
	}
}

func TestRenderCentreHit(t *testing.T) {
	for _, sh := range []Shader{NormalShader{}, DistanceShader{Scale: 4}} {
		img, err := Render(context.Background(), testParams(256, 256, sh))
		if err != nil {
			t.Fatalf("%s: %v", sh.Name(), err)
		}
		if img.Width != 256 || img.Height != 256 || img.Format != sh.Format() {
			t.Fatalf("%s: unexpected image header %+v", sh.Name(), img)
		}
		if bytes.Equal(img.At(128, 128), make([]uint8, sh.Format().RecordSize())) {
			t.Fatalf("%s: centre pixel is background", sh.Name())
		}
		// Corners look past the scene.
		if !bytes.Equal(img.At(0, 0), make([]uint8, sh.Format().RecordSize())) {
			t.Fatalf("%s: corner pixel hit: %v", sh.Name(), img.At(0, 0))
		}
	}
}

func TestRenderAwayFromSceneIsBackground(t *testing.T) {
	// Camera outside the scene bounds facing away from it.
	cam := viewmatrix.Camera{
		Right:   mathutil.Vec3{0.1, 0, 0},
		Up:      mathutil.Vec3{0, 0.1, 0},
		Forward: mathutil.Vec3{0, 0, 1},
		Origin:  mathutil.Vec3{0, 0, 3},
	}
	for _, sh := range []Shader{NormalShader{}, DistanceShader{}} {
		p := Params{Scene: scene.Default(), Camera: cam, Width: 16, Height: 16, Shader: sh}
		img, err := Render(context.Background(), p)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(img.Pix, make([]uint8, len(img.Pix))) {
			t.Fatalf("%s: expected an all-background image", sh.Name())
		}
	}
}

func TestRenderInvalid(t *testing.T) {
	if _, err := Render(context.Background(), Params{Width: 0, Height: 4, Shader: NormalShader{}}); err == nil {
		t.Fatal("expected error for zero width")
	}
	if _, err := Render(context.Background(), Params{Width: 4, Height: 4}); err == nil {
		t.Fatal("expected error for missing shader")
	}
	if _, err := RenderSequential(Params{Width: 4, Height: -1, Shader: NormalShader{}}); err == nil {
		t.Fatal("expected error for negative height")
	}
}

func TestRenderCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p := testParams(32, 4096, NormalShader{})
	p.Workers = 1
	if _, err := Render(ctx, p); err == nil {
		t.Fatal("expected error from cancelled render")
	}
}
