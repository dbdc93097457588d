package csscolors

import "testing"

func TestPercent(t *testing.T) {
	tests := []struct {
		name string
		in   int
		want Ratio
	}{
		{"zero", 0, 0},
		{"full", 100, 255},
		{"half rounds up", 50, 128},
		{"93", 93, 237},
		{"71", 71, 181},
		{"35", 35, 89},
		{"20", 20, 51},
		{"clamped above", 150, 255},
		{"clamped below", -5, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Percent(tt.in); got != tt.want {
				t.Errorf("Percent(%d) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestRatioFromFloat(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want Ratio
	}{
		{"zero", 0, 0},
		{"one", 1, 255},
		{"half", 0.5, 128},
		{"0.78", 0.78, 199},
		{"0.25", 0.25, 64},
		{"clamped above", 1.5, 255},
		{"clamped below", -0.1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RatioFromFloat(tt.in); got != tt.want {
				t.Errorf("RatioFromFloat(%v) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestRatioPercent(t *testing.T) {
	tests := []struct {
		in   Ratio
		want uint8
	}{
		{0, 0},
		{255, 100},
		{128, 50},
		{237, 93},
		{181, 71},
		{64, 25},
	}
	for _, tt := range tests {
		if got := tt.in.Percent(); got != tt.want {
			t.Errorf("Ratio(%d).Percent() = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestPercentRoundTrip(t *testing.T) {
	// Every percentage survives the trip through byte resolution.
	for p := 0; p <= 100; p++ {
		if got := Percent(p).Percent(); int(got) != p {
			t.Errorf("Percent(%d).Percent() = %d", p, got)
		}
	}
}

func TestRatioSaturatingArithmetic(t *testing.T) {
	if got := Ratio(200).Add(100); got != 255 {
		t.Errorf("200 + 100 = %d, want 255 (saturated)", got)
	}
	if got := Ratio(51).Add(51); got != 102 {
		t.Errorf("51 + 51 = %d, want 102", got)
	}
	if got := Ratio(51).Sub(102); got != 0 {
		t.Errorf("51 - 102 = %d, want 0 (saturated)", got)
	}
	if got := Ratio(128).Sub(51); got != 77 {
		t.Errorf("128 - 51 = %d, want 77", got)
	}
	if got := Ratio(77).Sub(77); got != 0 {
		t.Errorf("77 - 77 = %d, want 0", got)
	}
}
