package optics

import (
	"encoding/json"
	"fmt"
	"math"
)

// Number is a float64 whose JSON form keeps infinities and NaN.
//
// Finite values encode as JSON numbers. +Inf, -Inf and NaN encode as the
// strings "Infinity", "-Infinity" and "NaN", which is also what decoding
// accepts in addition to plain numbers.
type Number float64

var (
	inf = math.Inf(1)
	nan = math.NaN()
)

// Float64 returns n as a float64.
func (n Number) Float64() float64 { return float64(n) }

// IsFinite reports whether n is neither infinite nor NaN.
func (n Number) IsFinite() bool { return isFinite(float64(n)) }

// MarshalJSON implements json.Marshaler.
func (n Number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	switch {
	case math.IsNaN(f):
		return []byte(`"NaN"`), nil
	case math.IsInf(f, 1):
		return []byte(`"Infinity"`), nil
	case math.IsInf(f, -1):
		return []byte(`"-Infinity"`), nil
	}
	return json.Marshal(f)
}

// UnmarshalJSON implements json.Unmarshaler.
func (n *Number) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		switch s {
		case "NaN":
			*n = Number(nan)
		case "Infinity":
			*n = Number(inf)
		case "-Infinity":
			*n = Number(math.Inf(-1))
		default:
			return fmt.Errorf("invalid number token %q", s)
		}
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*n = Number(f)
	return nil
}

func isFinite(f float64) bool {
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}

// div returns a/b, or +Inf when b is zero.
func div(a, b float64) float64 {
	if b == 0 {
		return inf
	}
	return a / b
}
