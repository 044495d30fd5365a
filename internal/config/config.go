package config

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"

	"voxel-raycaster/internal/mathutil"
	"voxel-raycaster/internal/preset"
)

// Config holds render and conversion settings.
type Config struct {
	// Render settings
	Preset  string `json:"preset"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	Workers int    `json:"workers"`

	// Camera overrides; nil keeps the preset value.
	RollDeg        *float64       `json:"roll_deg,omitempty"`
	AzimuthDeg     *float64       `json:"azimuth_deg,omitempty"`
	DeclinationDeg *float64       `json:"declination_deg,omitempty"`
	CameraPos      *mathutil.Vec3 `json:"camera_pos,omitempty"`

	// Paths
	BinFile    string `json:"bin_file"`
	OutputFile string `json:"output_file"`

	// Conversion settings
	Scale int `json:"scale"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Preset     string
	Width      int
	Height     int
	Workers    int
	BinFile    string
	OutputFile string
	Scale      int
}

// Resolve fills in any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.Preset != "" {
		c.Preset = flags.Preset
	}
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.BinFile != "" {
		c.BinFile = flags.BinFile
	}
	if flags.OutputFile != "" {
		c.OutputFile = flags.OutputFile
	}
	if flags.Scale > 0 {
		c.Scale = flags.Scale
	}

	// Defaults
	if c.Preset == "" {
		c.Preset = preset.Default
	}
	if c.BinFile == "" {
		c.BinFile = "image.bin"
	}
	if c.OutputFile == "" {
		c.OutputFile = "image.png"
	}
	if c.Scale <= 0 {
		c.Scale = 1
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}

// Apply looks up the configured preset and applies size and camera
// overrides to it.
func (c *Config) Apply() (preset.Preset, error) {
	p, err := preset.Lookup(c.Preset)
	if err != nil {
		return preset.Preset{}, fmt.Errorf("config: %w", err)
	}
	if c.Width > 0 {
		p.Width = c.Width
	}
	if c.Height > 0 {
		p.Height = c.Height
	}
	if p.Width > 65535 || p.Height > 65535 {
		return preset.Preset{}, fmt.Errorf("config: image size %dx%d exceeds 65535", p.Width, p.Height)
	}
	if c.RollDeg != nil {
		p.View.Roll = mathutil.Deg2Rad(*c.RollDeg)
	}
	if c.AzimuthDeg != nil {
		p.View.Azimuth = mathutil.Deg2Rad(*c.AzimuthDeg)
	}
	if c.DeclinationDeg != nil {
		p.View.Declination = mathutil.Deg2Rad(*c.DeclinationDeg)
	}
	if c.CameraPos != nil {
		p.View.Position = *c.CameraPos
	}
	return p, nil
}
