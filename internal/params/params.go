// Package params turns the loosely typed parameter map of a vision setup into
// a typed Params value.
//
// Lookups never fail: a key that is missing, nil, or holds a value that does
// not convert to a number is treated as absent and the next candidate key is
// tried. Defaults are applied per field as documented on Params.
package params

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Float returns the first value among keys that is present, non-nil and
// convertible to float64. NaN counts as not convertible.
func Float(values map[string]interface{}, keys ...string) (float64, bool) {
	for _, key := range keys {
		v, ok := values[key]
		if !ok || v == nil {
			continue
		}
		if f, ok := toFloat(v); ok && !math.IsNaN(f) {
			return f, true
		}
	}
	return 0, false
}

// FloatOr is Float with a fallback value.
func FloatOr(values map[string]interface{}, def float64, keys ...string) float64 {
	if f, ok := Float(values, keys...); ok {
		return f
	}
	return def
}

// OptionalFloat is Float returning nil when nothing converts.
func OptionalFloat(values map[string]interface{}, keys ...string) *float64 {
	if f, ok := Float(values, keys...); ok {
		return &f
	}
	return nil
}

// String returns the value stored under key formatted as a string, or def if
// the key is missing or nil.
func String(values map[string]interface{}, def string, key string) string {
	v, ok := values[key]
	if !ok || v == nil {
		return def
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case bool:
		if n {
			return 1, true
		}
		return 0, true
	case json.Number:
		return parseFloat(string(n))
	case string:
		return parseFloat(n)
	}
	return 0, false
}

func parseFloat(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		// ParseFloat reports range errors with a usable ±Inf or 0 value.
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			return f, true
		}
		return 0, false
	}
	return f, true
}

// Axis selects the direction of object motion across the frame.
type Axis string

const (
	// AxisWidth is motion along the sensor width.
	AxisWidth Axis = "W"
	// AxisHeight is motion along the sensor height.
	AxisHeight Axis = "H"
)

// ParseAxis maps "H" (case-insensitive, surrounding space ignored) to
// AxisHeight and anything else to AxisWidth.
func ParseAxis(s string) Axis {
	if strings.EqualFold(strings.TrimSpace(s), string(AxisHeight)) {
		return AxisHeight
	}
	return AxisWidth
}

// Params is the typed input of a calculation. Zero-defaulted quantities are
// plain floats; quantities whose absence changes the result are pointers.
type Params struct {
	// SensorWidthMM is the active sensor width in mm. Default 0.
	SensorWidthMM float64
	// SensorHeightMM is the active sensor height in mm. Default 0.
	SensorHeightMM float64
	// SensorDiagonalMM in mm; derived from width and height when nil or 0.
	SensorDiagonalMM *float64
	// PixelSizeWidthUM is the horizontal pixel pitch in µm.
	PixelSizeWidthUM *float64
	// PixelSizeHeightUM is the vertical pixel pitch in µm.
	PixelSizeHeightUM *float64

	// FocalLengthMM of the lens. Default 0.
	FocalLengthMM float64
	// FNumber is the nominal aperture (f-stop). Default 0.
	FNumber float64
	// LensDiagonalMM is the image circle the lens is designed for. Default 0.
	LensDiagonalMM float64
	// LensDistortionPercent is the nominal distortion at the design image circle.
	LensDistortionPercent *float64
	// LensResolution is the lens MTF50 in lp/mm.
	LensResolution *float64
	// LensRelativeIllumination is the corner illumination as a fraction or percent.
	LensRelativeIllumination *float64

	// WorkingDistanceMM is the object-to-lens distance. Default 0.
	WorkingDistanceMM float64
	// TargetFOVWidthMM and TargetFOVHeightMM are the desired field of view.
	TargetFOVWidthMM  *float64
	TargetFOVHeightMM *float64

	// FrameRate in frames per second. Default 0.
	FrameRate float64
	// AllowedBlurPixels is the tolerated motion blur. Default 0.
	AllowedBlurPixels float64
	// ObjectSpeedMMPerS is the target speed. Default 0.
	ObjectSpeedMMPerS float64
	// MotionAxis selects the axis the target travels along. Default W.
	MotionAxis Axis

	// CircleOfConfusionMM overrides the pixel-pitch derived CoC.
	CircleOfConfusionMM *float64
	// WavelengthUM is the design wavelength. Default 0.55 µm.
	WavelengthUM *float64
}

// FromMap builds Params from a raw parameter map. Unknown keys are ignored.
func FromMap(values map[string]interface{}) Params {
	return Params{
		SensorWidthMM:     FloatOr(values, 0, Lookup("sensor_width_mm")...),
		SensorHeightMM:    FloatOr(values, 0, Lookup("sensor_height_mm")...),
		SensorDiagonalMM:  OptionalFloat(values, Lookup("sensor_diagonal_mm")...),
		PixelSizeWidthUM:  OptionalFloat(values, Lookup("sensor_pixel_size_width_um")...),
		PixelSizeHeightUM: OptionalFloat(values, Lookup("sensor_pixel_size_height_um")...),

		FocalLengthMM:            FloatOr(values, 0, Lookup("lens_focal_length_mm")...),
		FNumber:                  FloatOr(values, 0, Lookup("lens_fstop")...),
		LensDiagonalMM:           FloatOr(values, 0, Lookup("lens_diagonal_mm")...),
		LensDistortionPercent:    OptionalFloat(values, Lookup("lens_distortion_perc")...),
		LensResolution:           OptionalFloat(values, Lookup("lens_resolution")...),
		LensRelativeIllumination: OptionalFloat(values, Lookup("lens_relative_illumination")...),

		WorkingDistanceMM: FloatOr(values, 0, Lookup("working_distance_mm")...),
		TargetFOVWidthMM:  OptionalFloat(values, Lookup("target_fov_width")...),
		TargetFOVHeightMM: OptionalFloat(values, Lookup("target_fov_height")...),

		FrameRate:         FloatOr(values, 0, Lookup("sensor_framerate")...),
		AllowedBlurPixels: FloatOr(values, 0, Lookup("object_allowed_blur_pixels")...),
		ObjectSpeedMMPerS: FloatOr(values, 0, Lookup("object_initial_speed_mm_s")...),
		MotionAxis:        ParseAxis(String(values, string(AxisWidth), "object_motion_axis")),

		CircleOfConfusionMM: OptionalFloat(values, Lookup("circle_of_confusion_mm")...),
		WavelengthUM:        OptionalFloat(values, Lookup("wavelength_um")...),
	}
}
