package csscolors

import "testing"

func TestDeg(t *testing.T) {
	tests := []struct {
		name string
		in   int
		want Angle
	}{
		{"zero", 0, 0},
		{"plain", 45, 45},
		{"full circle wraps", 360, 0},
		{"negative wraps backward", -30, 330},
		{"over a full turn", 725, 5},
		{"negative full turn", -360, 0},
		{"under a full negative turn", -725, 355},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Deg(tt.in); got != tt.want {
				t.Errorf("Deg(%d) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestAngleRotate(t *testing.T) {
	tests := []struct {
		name string
		a    Angle
		by   Angle
		want Angle
	}{
		{"forward", Deg(10), Deg(30), Deg(40)},
		{"forward wraps", Deg(350), Deg(20), Deg(10)},
		{"backward wraps", Deg(10), Deg(-20), Deg(350)},
		{"full turn", Deg(123), Deg(360), Deg(123)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Rotate(tt.by); got != tt.want {
				t.Errorf("Deg(%d).Rotate(Deg(%d)) = %d, want %d", tt.a, tt.by, got, tt.want)
			}
		})
	}
}
