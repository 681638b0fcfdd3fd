package optics

import (
	"math"

	"github.com/ironsheep/optics-tools-mcp/internal/params"
)

// LensGeometry solves the thin-lens conjugate for the working distance and
// derives the aperture and the effective (bellows-corrected) f-number.
//
// A working distance at or inside the focal length cannot be focused; image
// distance and magnification are then +Inf.
func LensGeometry(p params.Params) LensSection {
	f := p.FocalLengthMM
	d := p.WorkingDistanceMM
	di, m := thinLens(f, d)

	aperture := inf
	effective := inf
	if p.FNumber > 0 {
		aperture = f / p.FNumber
		bellows := m
		if !isFinite(bellows) {
			bellows = 0
		}
		effective = p.FNumber * (1 + bellows)
	}

	percent := inf
	if isFinite(m) {
		percent = m * 100
	}

	return LensSection{
		FocalLengthMM:        Number(f),
		ApertureDiameterMM:   Number(aperture),
		EffectiveFNumber:     Number(effective),
		WorkingDistanceMM:    Number(d),
		ImageDistanceMM:      Number(di),
		Magnification:        Number(m),
		MagnificationPercent: Number(percent),
	}
}

func thinLens(f, d float64) (imageDistance, magnification float64) {
	if d <= f {
		return inf, inf
	}
	if math.IsInf(d, 1) {
		return f, 0
	}
	imageDistance = f * d / (d - f)
	return imageDistance, math.Abs(imageDistance / d)
}
