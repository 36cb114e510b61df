package ros

import (
	"encoding/json"
	"math"
	"testing"
)

func TestJsonFloat32_RoundTripsOrdinaryValue(t *testing.T) {
	in := JsonFloat32{F: 3.5}
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal failed: %s", err)
	}
	if string(data) != "3.5" {
		t.Fatalf("got %s, want 3.5", data)
	}

	var out JsonFloat32
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal failed: %s", err)
	}
	if out.F != in.F {
		t.Fatalf("got %v, want %v", out.F, in.F)
	}
}

func TestJsonFloat32_RoundTripsSpecialValues(t *testing.T) {
	testCases := []struct {
		name string
		in   float32
		want string
	}{
		{"nan", float32(math.NaN()), `"nan"`},
		{"+inf", float32(math.Inf(1)), `"inf"`},
		{"-inf", float32(math.Inf(-1)), `"-inf"`},
	}

	for _, tc := range testCases {
		data, err := json.Marshal(JsonFloat32{F: tc.in})
		if err != nil {
			t.Fatalf("%s: Marshal failed: %s", tc.name, err)
		}
		if string(data) != tc.want {
			t.Fatalf("%s: got %s, want %s", tc.name, data, tc.want)
		}

		var out JsonFloat32
		if err := json.Unmarshal(data, &out); err != nil {
			t.Fatalf("%s: Unmarshal failed: %s", tc.name, err)
		}
		if tc.name == "nan" {
			if !math.IsNaN(float64(out.F)) {
				t.Fatalf("%s: got %v, want NaN", tc.name, out.F)
			}
			continue
		}
		if out.F != tc.in {
			t.Fatalf("%s: got %v, want %v", tc.name, out.F, tc.in)
		}
	}
}

func TestJsonFloat64_RoundTripsSpecialValues(t *testing.T) {
	data, err := json.Marshal(JsonFloat64{F: math.Inf(1)})
	if err != nil {
		t.Fatalf("Marshal failed: %s", err)
	}
	if string(data) != `"inf"` {
		t.Fatalf("got %s, want \"inf\"", data)
	}

	var out JsonFloat64
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal failed: %s", err)
	}
	if !math.IsInf(out.F, 1) {
		t.Fatalf("got %v, want +Inf", out.F)
	}
}
