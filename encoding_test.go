package csscolors

import (
	"encoding"
	"encoding/json"
	"testing"
)

// Verify at compile time that the types round-trip through text.
var (
	_ encoding.TextMarshaler   = RGB{}
	_ encoding.TextUnmarshaler = (*RGB)(nil)
	_ encoding.TextMarshaler   = RGBA{}
	_ encoding.TextUnmarshaler = (*RGBA)(nil)
	_ encoding.TextMarshaler   = HSL{}
	_ encoding.TextUnmarshaler = (*HSL)(nil)
	_ encoding.TextMarshaler   = HSLA{}
	_ encoding.TextUnmarshaler = (*HSLA)(nil)
)

func TestUnmarshalRGB(t *testing.T) {
	var c RGB
	if err := c.UnmarshalText([]byte("#010203")); err != nil {
		t.Fatalf("UnmarshalText: %v", err)
	}
	if want := NewRGB(1, 2, 3); c != want {
		t.Errorf("got %v, want %v", c, want)
	}
}

func TestUnmarshalRGBA(t *testing.T) {
	var c RGBA
	if err := c.UnmarshalText([]byte("#010203ff")); err != nil {
		t.Fatalf("UnmarshalText: %v", err)
	}
	if want := NewRGBA(1, 2, 3, 1.0); c != want {
		t.Errorf("got %v, want %v", c, want)
	}
}

func TestUnmarshalHSL(t *testing.T) {
	var c HSL
	if err := c.UnmarshalText([]byte("#fa8072")); err != nil {
		t.Fatalf("UnmarshalText: %v", err)
	}
	if want := NewRGB(250, 128, 114).ToHSL(); c != want {
		t.Errorf("got %v, want %v", c, want)
	}
}

func TestUnmarshalHSLA(t *testing.T) {
	var c HSLA
	if err := c.UnmarshalText([]byte("#fa807280")); err != nil {
		t.Fatalf("UnmarshalText: %v", err)
	}
	want := RGBA{R: 250, G: 128, B: 114, A: 128}.ToHSLA()
	if c != want {
		t.Errorf("got %v, want %v", c, want)
	}
}

func TestUnmarshalErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"missing hash", "010203"},
		{"too short", "#01020"},
		{"alpha form into rgb", "#010203ff"},
		{"bad digits", "#xxyyzz"},
		{"empty", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c RGB
			if err := c.UnmarshalText([]byte(tt.in)); err == nil {
				t.Errorf("UnmarshalText(%q) succeeded, want error", tt.in)
			}
		})
	}

	var c RGBA
	if err := c.UnmarshalText([]byte("#010203")); err == nil {
		t.Error("RGBA accepted a hex string without alpha, want error")
	}
}

func TestHexRoundTrip(t *testing.T) {
	for _, tt := range conversionTable {
		t.Run(tt.name, func(t *testing.T) {
			text, err := tt.rgb.MarshalText()
			if err != nil {
				t.Fatalf("MarshalText: %v", err)
			}
			var back RGB
			if err := back.UnmarshalText(text); err != nil {
				t.Fatalf("UnmarshalText(%q): %v", text, err)
			}
			if back != tt.rgb {
				t.Errorf("round trip %q = %v, want %v", text, back, tt.rgb)
			}
		})
	}
}

func TestJSON(t *testing.T) {
	type theme struct {
		Primary RGB  `json:"primary"`
		Overlay RGBA `json:"overlay"`
	}

	in := theme{
		Primary: NewRGB(250, 128, 114),
		Overlay: NewRGBA(0, 0, 0, 0.5),
	}
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if want := `{"primary":"#fa8072","overlay":"#00000080"}`; string(data) != want {
		t.Errorf("Marshal = %s, want %s", data, want)
	}

	var out theme
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if out != in {
		t.Errorf("round trip = %+v, want %+v", out, in)
	}
}
