package batch

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Manifest describes one rendered image.bin.
type Manifest struct {
	Preset      string     `json:"preset"`
	Shading     string     `json:"shading"`
	Width       int        `json:"width"`
	Height      int        `json:"height"`
	RecordSize  int        `json:"record_size"`
	Voxels      int        `json:"voxels"`
	Roll        float64    `json:"roll_rad"`
	Azimuth     float64    `json:"azimuth_rad"`
	Declination float64    `json:"declination_rad"`
	CameraPos   [3]float32 `json:"camera_pos"`
	Image       string     `json:"image"`
	Workers     int        `json:"workers"`
	Elapsed     string     `json:"elapsed"`
	Created     time.Time  `json:"created"`
}

// WriteManifest writes m as indented JSON to path.
func WriteManifest(path string, m Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("manifest: write %s: %w", path, err)
	}
	return nil
}

// ReadManifest loads a manifest written by WriteManifest.
func ReadManifest(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("manifest: read %s: %w", path, err)
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("manifest: parse %s: %w", path, err)
	}
	return m, nil
}
