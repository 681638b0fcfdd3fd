package optics

import (
	"math"

	"github.com/ironsheep/optics-tools-mcp/internal/params"
)

// MotionExposure bounds the exposure time by object motion and frame rate.
//
// The caller's blur tolerance yields MaxExposureUSAllowedBlur, which is only
// informative: the recommendation always targets at most one pixel of blur
// and never exceeds the frame period.
func MotionExposure(p params.Params, fov FOVSection) MotionSection {
	speed := p.ObjectSpeedMMPerS
	speedPx := 0.0
	if density := fov.PixelsPerMM(p.MotionAxis); density > 0 {
		speedPx = speed * density
	}

	framePeriod := inf
	if p.FrameRate > 0 {
		framePeriod = 1e6 / p.FrameRate
	}

	var allowed float64
	switch {
	case speedPx > 0 && p.AllowedBlurPixels > 0:
		allowed = 1e6 * p.AllowedBlurPixels / speedPx
	case speed <= 0:
		allowed = inf
	default:
		// Moving, but no blur tolerated (or no pixel density to convert with).
		allowed = 0
	}

	onePixel := inf
	if speedPx > 0 {
		onePixel = 1e6 / speedPx
	}

	return MotionSection{
		MotionAxis:                string(p.MotionAxis),
		ObjectSpeedMMPerS:         Number(speed),
		ObjectSpeedPxPerS:         Number(speedPx),
		AllowedBlurPx:             Number(p.AllowedBlurPixels),
		FramePeriodUS:             Number(framePeriod),
		MaxExposureUSAllowedBlur:  Number(allowed),
		MaxExposureUSOnePixelBlur: Number(onePixel),
		MaxExposureUSFrame:        Number(framePeriod),
		RecommendedExposureUS:     Number(math.Min(onePixel, framePeriod)),
	}
}
