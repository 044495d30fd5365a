package main

import (
	"flag"
	"log/slog"
	"os"

	"voxel-raycaster/internal/config"
	"voxel-raycaster/internal/postprocess"
	"voxel-raycaster/internal/raster"
)

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	in := flag.String("in", "", "Input image container (default: image.bin)")
	out := flag.String("out", "", "Output image; format from extension png/webp/tga/bmp/tiff (default: image.png)")
	format := flag.String("format", "", "Force output format regardless of extension")
	layout := flag.String("layout", "auto", "Input pixel layout: auto, rgb or gray")
	scale := flag.Int("scale", 0, "Integer upscale factor (default: 1)")
	verbose := flag.Bool("v", false, "Debug logging")

	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			log.Error("loading config", "err", err)
			os.Exit(1)
		}
	}
	cfg.Resolve(config.Flags{
		BinFile:    *in,
		OutputFile: *out,
		Scale:      *scale,
	})

	opts := postprocess.Options{
		Scale:  cfg.Scale,
		Logger: log,
	}
	switch *layout {
	case "auto":
		opts.Auto = true
	case "rgb":
		opts.Input = raster.RGB
	case "gray":
		opts.Input = raster.Gray
	default:
		log.Error("unknown layout", "layout", *layout)
		os.Exit(1)
	}
	if *format != "" {
		f, err := postprocess.ParseFormat(*format)
		if err != nil {
			log.Error("output format", "err", err)
			os.Exit(1)
		}
		opts.Format = f
	}

	if err := postprocess.ConvertFile(cfg.BinFile, cfg.OutputFile, opts); err != nil {
		log.Error("conversion failed", "err", err)
		os.Exit(1)
	}
}
