package postprocess

import "voxel-raycaster/internal/raster"

// Stats summarises a rendered buffer.
type Stats struct {
	Pixels int
	Hits   int            // non-background pixels
	Min    uint8          // smallest channel value over hits
	Max    uint8          // largest channel value over hits
	Faces  map[string]int // RGB only: hits per entry face axis
}

// Summarize counts hit pixels and, for normal-shaded images, which face
// axis each hit came from.
func Summarize(img *raster.Image) Stats {
	s := Stats{
		Pixels: img.Width * img.Height,
		Min:    255,
		Faces:  map[string]int{},
	}
	rs := img.Format.RecordSize()
	for i := 0; i+rs <= len(img.Pix); i += rs {
		p := img.Pix[i : i+rs]
		hit := false
		for _, c := range p {
			if c != 0 {
				hit = true
			}
		}
		if !hit {
			continue
		}
		s.Hits++
		for _, c := range p {
			s.Min = min(s.Min, c)
			s.Max = max(s.Max, c)
		}
		if img.Format == raster.RGB {
			s.Faces[faceOf(p)]++
		}
	}
	if s.Hits == 0 {
		s.Min = 0
	}
	return s
}

func faceOf(p []uint8) string {
	switch {
	case p[0] == 255 && p[1] == 127 && p[2] == 127:
		return "x"
	case p[0] == 127 && p[1] == 255 && p[2] == 127:
		return "y"
	case p[0] == 127 && p[1] == 127 && p[2] == 255:
		return "z"
	}
	return "other"
}
