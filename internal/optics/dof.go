package optics

import (
	"math"

	"github.com/ironsheep/optics-tools-mcp/internal/params"
)

const (
	// defaultCoCMM is used when no pixel pitch is known.
	defaultCoCMM = 1e-3
	minCoCMM     = 1e-12
)

// DepthOfField computes the hyperfocal distance and the near and far limits
// of acceptable sharpness around the working distance.
//
// The circle of confusion is the caller's override when positive, otherwise
// the smallest pixel pitch.
func DepthOfField(p params.Params, sensor SensorSection) DOFSection {
	c := circleOfConfusion(p.CircleOfConfusionMM, float64(sensor.PixelSizeMinMM))
	f := p.FocalLengthMM
	n := p.FNumber
	s := p.WorkingDistanceMM

	// N = 0 means no aperture limit. A negative N is passed through the
	// formula unchanged and yields a negative H.
	h := inf
	if n*c != 0 {
		h = f*f/(n*c) + f
	}

	var near, far, dof float64
	switch {
	case math.IsInf(h, 1):
		// Without an aperture limit the zone of sharpness collapses onto s.
		near, far, dof = s, s, 0
	case math.IsInf(s, 1):
		near, far, dof = h, inf, inf
	case s >= h:
		near = div(h*s, h+(s-f))
		far, dof = inf, inf
	default:
		near = div(h*s, h+(s-f))
		far = div(h*s, h-(s-f))
		dof = far - near
	}

	return DOFSection{
		CircleOfConfusionMM: Number(c),
		HyperfocalMM:        Number(h),
		NearMM:              Number(near),
		FarMM:               Number(far),
		DOFMM:               Number(dof),
	}
}

func circleOfConfusion(override *float64, minPitchMM float64) float64 {
	c := defaultCoCMM
	switch {
	case override != nil && *override > 0:
		c = *override
	case isFinite(minPitchMM) && minPitchMM > 0:
		c = minPitchMM
	}
	return math.Max(c, minCoCMM)
}
