// Package preset names the two shading configurations the renderer ships.
package preset

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"voxel-raycaster/internal/mathutil"
	"voxel-raycaster/internal/raster"
	"voxel-raycaster/internal/viewmatrix"
)

// ErrUnknown is returned by Lookup for names that are not presets.
var ErrUnknown = errors.New("preset: unknown preset")

// Preset bundles image size, camera placement and shading policy.
type Preset struct {
	Name   string
	Width  int
	Height int
	View   viewmatrix.Params
	Shader raster.Shader
}

var presets = map[string]Preset{
	"normal": {
		Name:   "normal",
		Width:  256,
		Height: 256,
		View: viewmatrix.Params{
			Roll:        math.Pi / 8,
			Azimuth:     math.Pi / 4,
			Declination: 0,
			Position:    mathutil.Vec3{0, 0, 2.125},
		},
		Shader: raster.NormalShader{},
	},
	"distance": {
		Name:   "distance",
		Width:  256,
		Height: 256,
		View: viewmatrix.Params{
			Roll:        0,
			Azimuth:     math.Pi / 4,
			Declination: math.Pi / 8,
			Position:    mathutil.Vec3{0, 0, 2.125},
		},
		Shader: raster.DistanceShader{Scale: raster.DefaultDistanceScale},
	},
}

// Default is the preset used when none is named.
const Default = "normal"

// Lookup returns the preset called name.
func Lookup(name string) (Preset, error) {
	p, ok := presets[name]
	if !ok {
		return Preset{}, fmt.Errorf("%w %q (known: %s)", ErrUnknown, name, strings.Join(Names(), ", "))
	}
	return p, nil
}

// Names lists the preset names in sorted order.
func Names() []string {
	names := make([]string, 0, len(presets))
	for n := range presets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
