package optics

import (
	"math"

	"github.com/ironsheep/optics-tools-mcp/internal/params"
)

const minIlluminationRatio = 1e-9

// Illumination estimates the corner-to-centre illumination ratio and the
// exposure compensation it costs at the frame corners.
//
// Vendor data wins when supplied. Otherwise the cos⁴ law is applied to the
// chief ray angle at the sensor corner.
func Illumination(p params.Params, sensor SensorSection, lens LensSection) IlluminationSection {
	var ratio float64
	source := IlluminationFromCos4
	if p.LensRelativeIllumination != nil {
		ratio = NormalizeRatio(*p.LensRelativeIllumination)
		source = IlluminationFromLensData
	} else {
		ratio = Cos4Falloff(0.5*float64(sensor.SensorDiagonalMM), float64(lens.ImageDistanceMM))
	}

	corner := 100 * ratio
	stops := inf
	if ratio > 0 {
		stops = math.Log2(1 / math.Max(ratio, minIlluminationRatio))
	}

	return IlluminationSection{
		CenterPercent:             100,
		CornerPercent:             Number(corner),
		CornerToCenterRatio:       Number(ratio),
		VignettingLossPercent:     Number(math.Max(0, 100-corner)),
		ExposureCompensationStops: Number(stops),
		Source:                    source,
	}
}

// NormalizeRatio converts a fraction-or-percent figure into a ratio in
// [0, 1]. Values above 1.5 are taken to be percentages.
func NormalizeRatio(v float64) float64 {
	if v > 1.5 {
		v /= 100
	}
	return math.Max(math.Min(v, 1), 0)
}

// Cos4Falloff returns the relative illumination at image height r (mm) for
// a lens whose exit pupil sits imageDistance (mm) from the sensor. An
// unknown image distance yields 1.
func Cos4Falloff(r, imageDistance float64) float64 {
	if !isFinite(imageDistance) || imageDistance <= 0 {
		return 1
	}
	tan := r / imageDistance
	cos := 1 / math.Sqrt(1+tan*tan)
	return cos * cos * cos * cos
}
