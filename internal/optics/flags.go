package optics

// VignettingThreshold is the corner-to-centre ratio below which falloff is
// flagged.
const VignettingThreshold = 0.7

// FlagSynthesis condenses the terminal sections into yes/no warnings.
func FlagSynthesis(diff DiffractionSection, motion MotionSection, coverage CoverageSection, illum IlluminationSection) FlagsSection {
	frame := float64(motion.MaxExposureUSFrame)
	blur := float64(motion.MaxExposureUSAllowedBlur)

	return FlagsSection{
		DiffractionDominant:    diff.NyquistOverDiffractionCutoff > 1,
		ExposureLimitedByFrame: isFinite(frame) && isFinite(blur) && frame < blur,
		PotentialVignetting:    !coverage.CoverageOK || illum.CornerToCenterRatio < VignettingThreshold,
	}
}
