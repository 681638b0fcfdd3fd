package optics

import (
	"github.com/ironsheep/optics-tools-mcp/internal/params"
)

// Calculate runs every stage in dependency order and assembles the report.
// Each stage takes the upstream sections it needs as arguments, so a stage
// cannot run before its inputs exist.
func Calculate(p params.Params) *Result {
	sensor := SensorModel(p)
	lens := LensGeometry(p)
	fov := FieldOfViewSampling(p, sensor, lens)
	motion := MotionExposure(p, fov)
	dof := DepthOfField(p, sensor)
	diff := DiffractionAndSampling(p, sensor, lens)
	coverage := CoverageAndDistortion(p, sensor, fov)
	illum := Illumination(p, sensor, lens)
	appear := AppearanceTiming(p, fov)
	flags := FlagSynthesis(diff, motion, coverage, illum)

	return &Result{
		Sensor:             sensor,
		LensGeometry:       lens,
		FOVSampling:        fov,
		MotionExposure:     motion,
		DepthOfField:       dof,
		DiffractionMTF:     diff,
		CoverageDistortion: coverage,
		Illumination:       illum,
		Appearances:        appear,
		Flags:              flags,
	}
}

// CalculateMap is Calculate on a raw parameter map.
func CalculateMap(values map[string]interface{}) *Result {
	return Calculate(params.FromMap(values))
}
