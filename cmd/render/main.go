package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"voxel-raycaster/internal/batch"
	"voxel-raycaster/internal/config"
	"voxel-raycaster/internal/imagebin"
	"voxel-raycaster/internal/preset"
	"voxel-raycaster/internal/raster"
	"voxel-raycaster/internal/scene"
	"voxel-raycaster/internal/viewmatrix"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	presetName := flag.String("preset", "", "Preset: "+strings.Join(preset.Names(), ", ")+" (default: "+preset.Default+")")
	out := flag.String("out", "", "Output image container (default: image.bin)")
	width := flag.Int("width", 0, "Image width (default: preset)")
	height := flag.Int("height", 0, "Image height (default: preset)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	manifest := flag.Bool("manifest", false, "Write a JSON manifest next to the output")
	verbose := flag.Bool("v", false, "Debug logging")

	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			log.Error("loading config", "err", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		Preset:  *presetName,
		Width:   *width,
		Height:  *height,
		Workers: *workers,
		BinFile: *out,
	})

	p, err := cfg.Apply()
	if err != nil {
		log.Error("resolving preset", "err", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, log, cfg, p, *manifest); err != nil {
		log.Error("render failed", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, log *slog.Logger, cfg config.Config, p preset.Preset, writeManifest bool) error {
	s := scene.Default()
	meta := s.ComputeMeta()
	cam := viewmatrix.NewCamera(viewmatrix.InverseView(meta, p.View), p.Width, p.Height)

	log.Info("rendering",
		"preset", p.Name,
		"shading", p.Shader.Name(),
		"width", p.Width,
		"height", p.Height,
		"voxels", len(s),
		"workers", cfg.Workers)
	log.Debug("camera",
		"right", cam.Right,
		"up", cam.Up,
		"forward", cam.Forward,
		"origin", cam.Origin,
		"max_extent", meta.MaxExtent)

	start := time.Now()
	img, err := raster.Render(ctx, raster.Params{
		Scene:    s,
		Camera:   cam,
		Width:    p.Width,
		Height:   p.Height,
		Shader:   p.Shader,
		Workers:  cfg.Workers,
		Progress: 2 * time.Second,
		Logger:   log,
	})
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	if err := imagebin.WriteFile(cfg.BinFile, img); err != nil {
		return err
	}
	log.Info("wrote image container",
		"path", cfg.BinFile,
		"bytes", imagebin.HeaderSize+len(img.Pix),
		"elapsed", elapsed)

	if !writeManifest {
		return nil
	}

	// Write manifest
	manifestPath := strings.TrimSuffix(cfg.BinFile, filepath.Ext(cfg.BinFile)) + ".json"
	m := batch.Manifest{
		Preset:      p.Name,
		Shading:     p.Shader.Name(),
		Width:       img.Width,
		Height:      img.Height,
		RecordSize:  img.Format.RecordSize(),
		Voxels:      len(s),
		Roll:        p.View.Roll,
		Azimuth:     p.View.Azimuth,
		Declination: p.View.Declination,
		CameraPos:   p.View.Position,
		Image:       filepath.Base(cfg.BinFile),
		Workers:     cfg.Workers,
		Elapsed:     elapsed.String(),
		Created:     time.Now().UTC(),
	}
	if err := batch.WriteManifest(manifestPath, m); err != nil {
		return err
	}
	log.Info("wrote manifest", "path", manifestPath)
	return nil
}
