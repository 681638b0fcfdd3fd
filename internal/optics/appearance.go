package optics

import (
	"math"

	"github.com/ironsheep/optics-tools-mcp/internal/params"
)

// AppearanceTiming reports how long an object moving along the selected axis
// stays in frame and how far it moves between frames.
func AppearanceTiming(p params.Params, fov FOVSection) AppearanceSection {
	axis := p.MotionAxis
	speed := p.ObjectSpeedMMPerS
	fps := p.FrameRate
	extent := fov.Extent(axis)

	duration := inf
	if speed > 0 && isFinite(extent) {
		duration = extent / speed
	}

	frames := inf
	if fps > 0 && isFinite(duration) {
		frames = duration * fps
	}
	// Whole-frame bounds stay floats: a crawling object can be in view for
	// more frames than an int64 holds.
	var framesMin, framesMax float64
	if isFinite(frames) {
		framesMin = math.Floor(frames)
		framesMax = math.Ceil(frames)
	}

	stepMM := inf
	if fps > 0 {
		stepMM = speed / fps
	}
	stepPx := inf
	if isFinite(stepMM) {
		stepPx = stepMM * fov.PixelsPerMM(axis)
	}

	return AppearanceSection{
		AxisUsed:               string(axis),
		TraversalExtentMM:      Number(extent),
		DurationS:              Number(duration),
		ExpectedFrames:         Number(frames),
		FramesMin:              Number(framesMin),
		FramesMax:              Number(framesMax),
		DisplacementPerFrameMM: Number(stepMM),
		DisplacementPerFramePx: Number(stepPx),
	}
}
