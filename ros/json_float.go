package ros

import (
	"encoding/json"
	"math"
	"strconv"
)

// JsonFloat32 wraps a float32 so it can round-trip through JSON even when it
// holds NaN or +/-Inf, which encoding/json otherwise rejects. ROS float
// fields routinely carry these values (e.g. uninitialized sensor readings).
type JsonFloat32 struct {
	F float32
}

// MarshalJSON encodes NaN/Inf as their string forms, matching the
// convention rosbridge-style JSON transports use for ROS float fields.
func (f JsonFloat32) MarshalJSON() ([]byte, error) {
	if math.IsNaN(float64(f.F)) {
		return json.Marshal("nan")
	}
	if math.IsInf(float64(f.F), 1) {
		return json.Marshal("inf")
	}
	if math.IsInf(float64(f.F), -1) {
		return json.Marshal("-inf")
	}
	return json.Marshal(f.F)
}

// UnmarshalJSON accepts either a JSON number or one of the special string
// forms emitted by MarshalJSON.
func (f *JsonFloat32) UnmarshalJSON(data []byte) error {
	var asString string
	if err := json.Unmarshal(data, &asString); err == nil {
		switch asString {
		case "nan":
			f.F = float32(math.NaN())
		case "inf":
			f.F = float32(math.Inf(1))
		case "-inf":
			f.F = float32(math.Inf(-1))
		default:
			v, err := strconv.ParseFloat(asString, 32)
			if err != nil {
				return err
			}
			f.F = float32(v)
		}
		return nil
	}
	var v float32
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	f.F = v
	return nil
}

// JsonFloat64 is the float64 counterpart of JsonFloat32.
type JsonFloat64 struct {
	F float64
}

// MarshalJSON encodes NaN/Inf as their string forms.
func (f JsonFloat64) MarshalJSON() ([]byte, error) {
	if math.IsNaN(f.F) {
		return json.Marshal("nan")
	}
	if math.IsInf(f.F, 1) {
		return json.Marshal("inf")
	}
	if math.IsInf(f.F, -1) {
		return json.Marshal("-inf")
	}
	return json.Marshal(f.F)
}

// UnmarshalJSON accepts either a JSON number or one of the special string
// forms emitted by MarshalJSON.
func (f *JsonFloat64) UnmarshalJSON(data []byte) error {
	var asString string
	if err := json.Unmarshal(data, &asString); err == nil {
		switch asString {
		case "nan":
			f.F = math.NaN()
		case "inf":
			f.F = math.Inf(1)
		case "-inf":
			f.F = math.Inf(-1)
		default:
			v, err := strconv.ParseFloat(asString, 64)
			if err != nil {
				return err
			}
			f.F = v
		}
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	f.F = v
	return nil
}
