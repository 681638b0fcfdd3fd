package optics

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/ironsheep/optics-tools-mcp/internal/params"
)

func TestNumber_MarshalJSON(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{1.5, `1.5`},
		{0, `0`},
		{-2e-7, `-2e-7`},
		{math.Inf(1), `"Infinity"`},
		{math.Inf(-1), `"-Infinity"`},
		{math.NaN(), `"NaN"`},
	}
	for _, tt := range tests {
		got, err := json.Marshal(Number(tt.in))
		if err != nil {
			t.Fatalf("Marshal(%v): %v", tt.in, err)
		}
		if string(got) != tt.want {
			t.Errorf("Marshal(%v): got %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestNumber_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{`3.25`, 3.25},
		{`"Infinity"`, math.Inf(1)},
		{`"-Infinity"`, math.Inf(-1)},
	}
	for _, tt := range tests {
		var n Number
		if err := json.Unmarshal([]byte(tt.in), &n); err != nil {
			t.Fatalf("Unmarshal(%s): %v", tt.in, err)
		}
		if float64(n) != tt.want {
			t.Errorf("Unmarshal(%s): got %v, want %v", tt.in, n, tt.want)
		}
	}

	var n Number
	if err := json.Unmarshal([]byte(`"NaN"`), &n); err != nil || !math.IsNaN(float64(n)) {
		t.Errorf(`Unmarshal("NaN"): got %v, err %v`, n, err)
	}
}

func TestNumber_UnmarshalJSON_Invalid(t *testing.T) {
	for _, in := range []string{`"inf"`, `"12"`, `true`, `[1]`} {
		var n Number
		if err := json.Unmarshal([]byte(in), &n); err == nil {
			t.Errorf("Unmarshal(%s): expected error, got %v", in, n)
		}
	}
}

func TestResult_MarshalsUnboundedValues(t *testing.T) {
	data, err := json.Marshal(Calculate(params.Params{}))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var decoded Result
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !math.IsInf(float64(decoded.Sensor.SensorNyquistLpPerMM), 1) {
		t.Errorf("sensor nyquist: got %v, want +Inf", decoded.Sensor.SensorNyquistLpPerMM)
	}
	if !math.IsNaN(float64(decoded.CoverageDistortion.CoverageMarginMM)) {
		t.Errorf("coverage margin: got %v, want NaN", decoded.CoverageDistortion.CoverageMarginMM)
	}
}
