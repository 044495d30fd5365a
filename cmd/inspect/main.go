package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"voxel-raycaster/internal/imagebin"
	"voxel-raycaster/internal/postprocess"
	"voxel-raycaster/internal/raster"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: inspect <image.bin|image.png|...>")
		os.Exit(1)
	}
	path := os.Args[1]

	if strings.EqualFold(filepath.Ext(path), ".bin") {
		img, err := imagebin.ReadFile(path, raster.RGB, true)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Container: %dx%d, layout=%s, record=%d bytes\n",
			img.Width, img.Height, img.Format, img.Format.RecordSize())
		printStats(postprocess.Summarize(img))
		return
	}

	m, format, err := postprocess.LoadImage(path)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	b := m.Bounds()
	fmt.Printf("Image: %dx%d, format=%s, type=%T\n", b.Dx(), b.Dy(), format, m)
}

func printStats(s postprocess.Stats) {
	fmt.Printf("  Pixels: %d, hit: %d (%.1f%%), background: %d\n",
		s.Pixels, s.Hits, 100*float64(s.Hits)/float64(max(s.Pixels, 1)), s.Pixels-s.Hits)
	if s.Hits > 0 {
		fmt.Printf("  Value range over hits: [%d, %d]\n", s.Min, s.Max)
	}
	for _, k := range []string{"x", "y", "z", "other"} {
		if n := s.Faces[k]; n > 0 {
			fmt.Printf("  Face %s: %d\n", k, n)
		}
	}
}
