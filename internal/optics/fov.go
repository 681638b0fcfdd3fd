package optics

import (
	"math"

	"github.com/ironsheep/optics-tools-mcp/internal/params"
)

// FieldOfViewSampling projects the sensor into object space and reports how
// densely the pixel grid samples it.
func FieldOfViewSampling(p params.Params, sensor SensorSection, lens LensSection) FOVSection {
	m := float64(lens.Magnification)

	fovW, fovH := inf, inf
	if isFinite(m) && m > 0 {
		fovW = p.SensorWidthMM / m
		fovH = p.SensorHeightMM / m
	}

	area := inf
	if isFinite(fovW) && isFinite(fovH) {
		area = fovW * fovH
	}

	densityX := density(float64(sensor.PixelsHorz), fovW)
	densityY := density(float64(sensor.PixelsVert), fovH)

	return FOVSection{
		FOVWidthMM:                     Number(fovW),
		FOVHeightMM:                    Number(fovH),
		FOVDiagonalMM:                  Number(math.Hypot(fovW, fovH)),
		FOVAreaMM2:                     Number(area),
		PixelsPerMMX:                   Number(densityX),
		PixelsPerMMY:                   Number(densityY),
		MMPerPixelX:                    Number(reciprocal(densityX)),
		MMPerPixelY:                    Number(reciprocal(densityY)),
		FOVWidthActualVsTargetPercent:  Number(targetPercent(fovW, p.TargetFOVWidthMM)),
		FOVHeightActualVsTargetPercent: Number(targetPercent(fovH, p.TargetFOVHeightMM)),
	}
}

// PixelsPerMM returns the sampling density along axis.
func (f FOVSection) PixelsPerMM(axis params.Axis) float64 {
	if axis == params.AxisHeight {
		return float64(f.PixelsPerMMY)
	}
	return float64(f.PixelsPerMMX)
}

// Extent returns the field of view along axis.
func (f FOVSection) Extent(axis params.Axis) float64 {
	if axis == params.AxisHeight {
		return float64(f.FOVHeightMM)
	}
	return float64(f.FOVWidthMM)
}

func density(pixels, extent float64) float64 {
	if pixels <= 0 || extent <= 0 {
		return 0
	}
	return pixels / extent
}

func reciprocal(v float64) float64 {
	if v > 0 {
		return 1 / v
	}
	return inf
}

// targetPercent is NaN unless both a target and a usable actual FOV exist.
func targetPercent(actual float64, target *float64) float64 {
	if target == nil || *target <= 0 || !isFinite(actual) || actual <= 0 {
		return nan
	}
	return actual / *target * 100
}
