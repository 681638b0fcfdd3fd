package optics

import (
	"github.com/ironsheep/optics-tools-mcp/internal/params"
)

// CoverageAndDistortion checks the lens image circle against the sensor and
// re-projects the nominal distortion onto the actual sensor edge.
func CoverageAndDistortion(p params.Params, sensor SensorSection, fov FOVSection) CoverageSection {
	lensDiag := p.LensDiagonalMM
	sensorDiag := float64(sensor.SensorDiagonalMM)
	known := lensDiag > 0 && sensorDiag > 0

	ok := known && lensDiag >= sensorDiag
	margin, ratio := nan, nan
	if known {
		margin = 0.5 * (lensDiag - sensorDiag)
		ratio = sensorDiag / lensDiag
	}

	areaScale := nan
	if isFinite(ratio) {
		areaScale = ratio * ratio
	}

	distortion := nan
	if p.LensDistortionPercent != nil && isFinite(ratio) {
		distortion = *p.LensDistortionPercent
		// The nominal figure is specified at the design circle; a smaller
		// sensor only sees part of it. A larger sensor is extrapolation,
		// so the nominal value is kept.
		if ratio <= 1 {
			distortion *= ratio
		}
	}

	edgeError := nan
	switch {
	case distortion == 0:
		edgeError = 0
	case isFinite(distortion):
		edgeError = distortion / 100 * (0.5 * float64(fov.FOVDiagonalMM))
	}

	return CoverageSection{
		CoverageOK:                       ok,
		CoverageMarginMM:                 Number(margin),
		CoverageRatioActualVsDesign:      Number(ratio),
		FOVWidthScaleVsDesign:            Number(ratio),
		FOVHeightScaleVsDesign:           Number(ratio),
		FOVAreaScaleVsDesign:             Number(areaScale),
		EffectiveDistortionPercentAtEdge: Number(distortion),
		EdgePositionErrorMM:              Number(edgeError),
	}
}
