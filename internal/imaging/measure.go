package imaging

import (
	"fmt"
	"image"
	"math"
)

// Point represents a 2D pixel position.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Scale converts pixels to object-space millimetres along each axis. A zero
// or non-finite entry means the conversion is unknown for that axis.
type Scale struct {
	MMPerPixelX float64
	MMPerPixelY float64
}

func (s Scale) known() bool {
	return usable(s.MMPerPixelX) && usable(s.MMPerPixelY)
}

func usable(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

// DistanceResult contains measurement information. The millimetre fields are
// omitted when the scale is unknown.
type DistanceResult struct {
	DistancePixels        float64  `json:"distance_pixels"`
	DeltaX                int      `json:"delta_x"`
	DeltaY                int      `json:"delta_y"`
	AngleDegrees          float64  `json:"angle_degrees"`
	DistancePercentWidth  float64  `json:"distance_percent_width"`
	DistancePercentHeight float64  `json:"distance_percent_height"`
	DistanceMM            *float64 `json:"distance_mm,omitempty"`
	DeltaXMM              *float64 `json:"delta_x_mm,omitempty"`
	DeltaYMM              *float64 `json:"delta_y_mm,omitempty"`
}

// MeasureDistance calculates the distance between two points of a capture.
// With a known scale it also reports the distance in the object plane, which
// accounts for non-square sampling.
func MeasureDistance(img image.Image, from, to Point, scale Scale) (*DistanceResult, error) {
	bounds := img.Bounds()
	for _, p := range []Point{from, to} {
		if !image.Pt(p.X, p.Y).In(bounds) {
			return nil, fmt.Errorf("point (%d,%d) outside image bounds %dx%d", p.X, p.Y, bounds.Dx(), bounds.Dy())
		}
	}
	width := float64(bounds.Dx())
	height := float64(bounds.Dy())

	deltaX := to.X - from.X
	deltaY := to.Y - from.Y
	distance := math.Hypot(float64(deltaX), float64(deltaY))

	// 0 = horizontal right, 90 = down
	angle := math.Atan2(float64(deltaY), float64(deltaX)) * 180 / math.Pi

	result := &DistanceResult{
		DistancePixels:        round(distance, 100),
		DeltaX:                deltaX,
		DeltaY:                deltaY,
		AngleDegrees:          round(angle, 10),
		DistancePercentWidth:  round(distance/width*100, 10),
		DistancePercentHeight: round(distance/height*100, 10),
	}

	if scale.known() {
		dx := float64(deltaX) * scale.MMPerPixelX
		dy := float64(deltaY) * scale.MMPerPixelY
		mm := round(math.Hypot(dx, dy), 1000)
		dx, dy = round(dx, 1000), round(dy, 1000)
		result.DistanceMM = &mm
		result.DeltaXMM = &dx
		result.DeltaYMM = &dy
	}

	return result, nil
}

// round rounds v to 1/factor.
func round(v, factor float64) float64 {
	return math.Round(v*factor) / factor
}
