package optics

import (
	"math"

	"github.com/ironsheep/optics-tools-mcp/internal/params"
)

const (
	// DefaultWavelengthUM is green light, the usual design wavelength.
	DefaultWavelengthUM = 0.55

	airyFactor = 2.44

	samplingPitchFloorMM = 1e-6
	fNumberFloor         = 1e-9
)

// DiffractionAndSampling compares the diffraction limit of the lens at its
// effective f-number with the Nyquist frequency of the pixel grid and
// classifies the system.
//
// The grid is sampled with the smallest pixel pitch; a non-positive pitch is
// floored at 1 nm.
func DiffractionAndSampling(p params.Params, sensor SensorSection, lens LensSection) DiffractionSection {
	lambdaUM := DefaultWavelengthUM
	if p.WavelengthUM != nil && *p.WavelengthUM > 0 {
		lambdaUM = *p.WavelengthUM
	}
	lambdaMM := lambdaUM / 1000

	pitch := float64(sensor.PixelSizeMinMM)
	if !(pitch > 0) {
		pitch = samplingPitchFloorMM
	}
	nEff := math.Max(float64(lens.EffectiveFNumber), fNumberFloor)

	airyUM := airyFactor * lambdaUM * nEff
	airyPx := inf
	if isFinite(airyUM) {
		airyPx = airyUM / (pitch * 1000)
	}
	nyquist := 1 / (2 * pitch)
	cutoff := 1 / (lambdaMM * nEff)

	ratio := inf
	if isFinite(cutoff) && cutoff > 0 {
		ratio = nyquist / cutoff
	}

	mtf50 := cutoff / 2
	if p.LensResolution != nil {
		mtf50 = *p.LensResolution
	}

	mtfRatio := inf
	if nyquist > 0 {
		mtfRatio = mtf50 / nyquist
	}

	return DiffractionSection{
		WavelengthUM:                 Number(lambdaUM),
		AiryDiskDiameterUM:           Number(airyUM),
		AiryDiskDiameterPixels:       Number(airyPx),
		DiffractionCutoffLpPerMM:     Number(cutoff),
		SamplingNyquistLpPerMM:       Number(nyquist),
		NyquistOverDiffractionCutoff: Number(ratio),
		LensMTF50LpPerMM:             Number(mtf50),
		MTF50VsNyquistRatio:          Number(mtfRatio),
		SamplingRegime:               SamplingRegime(ratio, mtf50, nyquist),
	}
}

// SamplingRegime classifies a system from its Nyquist-to-cutoff ratio and
// the lens MTF50. Rules are tried in order and the first match wins.
func SamplingRegime(ratio, mtf50, nyquist float64) string {
	switch {
	case ratio > 1.1:
		return RegimeDiffractionLimited
	case mtf50 < 0.9*nyquist:
		return RegimeAberrationLimited
	case ratio < 0.9:
		return RegimeSensorLimited
	default:
		return RegimeBalanced
	}
}
