package optics

import (
	"math"

	"github.com/ironsheep/optics-tools-mcp/internal/params"
)

// SensorModel derives pixel counts, aspect ratio and the sensor Nyquist
// frequency from the physical sensor size and pixel pitch.
//
// A pitch supplied for one axis only is mirrored to the other. With no usable
// pitch at all the pixel counts are zero and the Nyquist frequency is +Inf.
func SensorModel(p params.Params) SensorSection {
	w, h := p.SensorWidthMM, p.SensorHeightMM

	horz, vert := pixelCounts(w, h, p.PixelSizeWidthUM, p.PixelSizeHeightUM)
	total := 0.0
	if horz > 0 && vert > 0 {
		total = horz * vert
	}

	aspect := inf
	if h > 0 {
		aspect = w / h
	}

	minPitch := math.Min(pitchOrInf(p.PixelSizeWidthUM), pitchOrInf(p.PixelSizeHeightUM))
	nyquist := inf
	if isFinite(minPitch) && minPitch > 0 {
		nyquist = 1 / (2 * minPitch)
	}

	return SensorSection{
		PixelsHorz:           Number(horz),
		PixelsVert:           Number(vert),
		TotalPixels:          Number(total),
		AspectRatio:          Number(aspect),
		SensorDiagonalMM:     Number(sensorDiagonal(p)),
		PixelSizeMinMM:       Number(minPitch),
		SensorNyquistLpPerMM: Number(nyquist),
	}
}

// sensorDiagonal returns the supplied diagonal, or the hypotenuse of width
// and height when the diagonal is absent or zero. Zero when neither is known.
func sensorDiagonal(p params.Params) float64 {
	if p.SensorDiagonalMM != nil && *p.SensorDiagonalMM != 0 {
		return *p.SensorDiagonalMM
	}
	if p.SensorWidthMM > 0 && p.SensorHeightMM > 0 {
		return math.Hypot(p.SensorWidthMM, p.SensorHeightMM)
	}
	return 0
}

func pixelCounts(widthMM, heightMM float64, pitchW, pitchH *float64) (horz, vert float64) {
	pw := umToMM(pitchW)
	ph := umToMM(pitchH)
	if pw <= 0 && ph <= 0 {
		return 0, 0
	}
	if pw <= 0 {
		pw = ph
	}
	if ph <= 0 {
		ph = pw
	}
	return widthMM / pw, heightMM / ph
}

func umToMM(um *float64) float64 {
	if um == nil {
		return 0
	}
	return *um / 1000
}

// pitchOrInf treats an absent or zero pitch as unbounded.
func pitchOrInf(um *float64) float64 {
	if um == nil || *um == 0 {
		return inf
	}
	return *um / 1000
}
