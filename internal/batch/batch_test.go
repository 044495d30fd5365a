package batch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

func TestRunVisitsEveryJobOnce(t *testing.T) {
	for _, workers := range []int{0, 1, 3, 64} {
		const jobs = 257
		var seen [jobs]atomic.Int32
		err := Run(context.Background(), Config{Workers: workers, Progress: time.Millisecond}, jobs, func(i int) {
			seen[i].Add(1)
		})
		if err != nil {
			t.Fatalf("workers=%d: %v", workers, err)
		}
		for i := range seen {
			if n := seen[i].Load(); n != 1 {
				t.Fatalf("workers=%d: job %d ran %d times", workers, i, n)
			}
		}
	}
}

func TestRunNoJobs(t *testing.T) {
	called := false
	if err := Run(context.Background(), Config{}, 0, func(int) { called = true }); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if called {
		t.Fatal("fn called with zero jobs")
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var ran atomic.Int32
	err := Run(ctx, Config{Workers: 1}, 1000, func(int) { ran.Add(1) })
	if err != context.Canceled {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if ran.Load() == 1000 {
		t.Fatal("cancelled run processed every job")
	}
}

func TestManifestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "image.json")
	want := Manifest{
		Preset:     "normal",
		Shading:    "normal",
		Width:      256,
		Height:     256,
		RecordSize: 3,
		Voxels:     2,
		CameraPos:  [3]float32{0, 0, 2.125},
		Image:      "image.bin",
		Created:    time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	if err := WriteManifest(path, want); err != nil {
		t.Fatalf("WriteManifest: %v", err)
	}
	got, err := ReadManifest(path)
	if err != nil {
		t.Fatalf("ReadManifest: %v", err)
	}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestReadManifestMissing(t *testing.T) {
	if _, err := ReadManifest(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected error for missing manifest")
	}
}

func TestWriteManifestError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "image.json")
	err := WriteManifest(path, Manifest{Preset: "normal"})
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("err = %v, want not-exist", err)
	}
	if msg := err.Error(); strings.Count(msg, "manifest:") != 1 {
		t.Fatalf("error %q should carry exactly one manifest prefix", msg)
	}
}
