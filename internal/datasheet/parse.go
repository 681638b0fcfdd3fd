package datasheet

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Match records where an extracted value came from.
type Match struct {
	Key   string  `json:"key"`
	Value float64 `json:"value"`
	Line  string  `json:"line"`
}

// Extraction is the result of ParseParameters.
type Extraction struct {
	// Parameters holds the extracted values under calculator input keys,
	// ready to be passed to the calculation.
	Parameters map[string]interface{} `json:"parameters"`

	// Matches lists every extracted value in key order.
	Matches []Match `json:"matches"`

	// Derived lists keys computed from other figures rather than read.
	Derived []string `json:"derived,omitempty"`
}

type rule struct {
	pattern *regexp.Regexp
	// apply converts the submatches into key/value pairs.
	apply func(m []string) map[string]float64
}

const num = `([0-9]+(?:\.[0-9]+)?)`

var rules = []rule{
	{
		regexp.MustCompile(`(?i)(?:sensor|active area|image area|chip)\s*(?:size|area|dimensions?)?[^0-9\n]*` + num + `\s*(?:mm)?\s*x\s*` + num + `\s*mm`),
		func(m []string) map[string]float64 {
			return map[string]float64{"sensor_width_mm": atof(m[1]), "sensor_height_mm": atof(m[2])}
		},
	},
	{
		regexp.MustCompile(`(?i)sensor\s*diagonal[^0-9\n]*` + num + `\s*mm`),
		single("sensor_diagonal_mm", 1),
	},
	{
		regexp.MustCompile(`(?i)pixel\s*(?:size|pitch)[^0-9\n]*` + num + `\s*(?:um)?(?:\s*x\s*` + num + `)?`),
		func(m []string) map[string]float64 {
			w := atof(m[1])
			h := w
			if m[2] != "" {
				h = atof(m[2])
			}
			return map[string]float64{"sensor_pixel_size_width_um": w, "sensor_pixel_size_height_um": h}
		},
	},
	{
		regexp.MustCompile(`(?i)resolution[^0-9\n]*([0-9]+)\s*(?:px|pixels?)?\s*x\s*([0-9]+)`),
		func(m []string) map[string]float64 {
			return map[string]float64{resolutionX: atof(m[1]), resolutionY: atof(m[2])}
		},
	},
	{
		regexp.MustCompile(`(?i)focal\s*length[^0-9\n]*` + num + `\s*mm`),
		single("lens_focal_length_mm", 1),
	},
	{
		regexp.MustCompile(`(?i)(?:f-?\s*number|f-?\s*stop|aperture|iris)[^0-9\n]*` + num),
		single("lens_fstop", 1),
	},
	{
		regexp.MustCompile(`(?i)(?:image\s*circle|image\s*format|max\.?\s*sensor\s*size)[^0-9\n]*` + num + `\s*mm`),
		single("lens_diagonal_mm", 1),
	},
	{
		regexp.MustCompile(`(?i)distortion[^0-9+\-\n]*([+\-]?[0-9]+(?:\.[0-9]+)?)\s*%`),
		single("lens_distortion_perc", 1),
	},
	{
		regexp.MustCompile(`(?i)relative\s*(?:illumination|illuminance)[^0-9\n]*` + num),
		single("lens_relative_illumination", 1),
	},
	{
		regexp.MustCompile(`(?i)(?:resolving\s*power|mtf\s*50)[^0-9\n]*` + num + `\s*lp\s*/\s*mm`),
		single("lens_resolution", 1),
	},
	{
		regexp.MustCompile(`(?i)(?:frame\s*rate|max\.?\s*fps)[^0-9\n]*` + num),
		single("sensor_framerate", 1),
	},
	{
		regexp.MustCompile(`(?i)` + num + `\s*fps`),
		single("sensor_framerate", 1),
	},
	{
		regexp.MustCompile(`(?i)working\s*distance[^0-9\n]*` + num + `\s*(mm|m)\b`),
		func(m []string) map[string]float64 {
			d := atof(m[1])
			if strings.EqualFold(m[2], "m") {
				d *= 1000
			}
			return map[string]float64{"working_distance_mm": d}
		},
	},
	{
		regexp.MustCompile(`(?i)(?:wavelength|peak\s*sensitivity)[^0-9\n]*` + num + `\s*nm`),
		func(m []string) map[string]float64 {
			return map[string]float64{"wavelength_um": atof(m[1]) / 1000}
		},
	},
}

// Pixel counts are only an intermediate for deriving the sensor size.
const (
	resolutionX = "_resolution_x"
	resolutionY = "_resolution_y"
)

var normalizer = strings.NewReplacer(
	"µ", "u", "μ", "u",
	"−", "-", "–", "-",
	"×", "x", "*", "x",
	"Ø", "", "ø", "", "⌀", "",
)

// ParseParameters extracts calculator inputs from datasheet text. The first
// line that yields a key wins. Lines are matched case-insensitively, and
// common typographic variants (µ, ×, −, Ø) are normalised first.
//
// When the sensor size is missing but the resolution and pixel pitch are
// present, the size is derived from them.
func ParseParameters(text string) *Extraction {
	values := make(map[string]float64)
	sources := make(map[string]string)

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(normalizer.Replace(raw))
		if line == "" {
			continue
		}
		for _, r := range rules {
			m := r.pattern.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			for k, v := range r.apply(m) {
				if _, seen := values[k]; !seen {
					values[k] = v
					sources[k] = line
				}
			}
		}
	}

	var derived []string
	derive := func(sizeKey, countKey, pitchKey string) {
		count, okCount := values[countKey]
		pitch, okPitch := values[pitchKey]
		if _, have := values[sizeKey]; have || !okCount || !okPitch {
			return
		}
		values[sizeKey] = count * pitch / 1000
		sources[sizeKey] = sources[countKey]
		derived = append(derived, sizeKey)
	}
	derive("sensor_width_mm", resolutionX, "sensor_pixel_size_width_um")
	derive("sensor_height_mm", resolutionY, "sensor_pixel_size_height_um")
	delete(values, resolutionX)
	delete(values, resolutionY)

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := &Extraction{
		Parameters: make(map[string]interface{}, len(values)),
		Matches:    make([]Match, 0, len(values)),
		Derived:    derived,
	}
	for _, k := range keys {
		out.Parameters[k] = values[k]
		out.Matches = append(out.Matches, Match{Key: k, Value: values[k], Line: sources[k]})
	}
	return out
}

func single(key string, group int) func([]string) map[string]float64 {
	return func(m []string) map[string]float64 {
		return map[string]float64{key: atof(m[group])}
	}
}

// atof parses a submatch that the pattern already constrained to digits.
func atof(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}
