package core

import "testing"

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    RGB
		wantErr bool
	}{
		{"#00ffff", RGBCyan, false},
		{"#00beff", RGB{0, 190, 255}, false},
		{"#0A2239", RGB{10, 34, 57}, false},
		{"cyan", RGB{}, true},
		{"", RGB{}, true},
	}

	for _, tt := range tests {
		got, err := ParseHex(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseHex(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseHex(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestHexRoundTrip(t *testing.T) {
	c := RGB{30, 58, 75}
	if got := MustHex(c.Hex()); got != c {
		t.Errorf("MustHex(%s) = %v, want %v", c.Hex(), got, c)
	}
}

func TestTintOver(t *testing.T) {
	if got := RGBCyan.WithAlpha(1).Over(RGBBlack); got != RGBCyan {
		t.Errorf("opaque tint = %v, want %v", got, RGBCyan)
	}
	if got := RGBCyan.WithAlpha(0).Over(RGBBlack); got != RGBBlack {
		t.Errorf("transparent tint = %v, want %v", got, RGBBlack)
	}
	half := RGBWhite.WithAlpha(0.5).Over(RGBBlack)
	if half.R < 126 || half.R > 128 {
		t.Errorf("half tint R = %d, want ~127", half.R)
	}
}

func TestScaleAndMax(t *testing.T) {
	if got := RGBCyan.Scale(0); got != RGBBlack {
		t.Errorf("Scale(0) = %v", got)
	}
	if got := (RGB{10, 200, 30}).Max(RGB{50, 100, 30}); got != (RGB{50, 200, 30}) {
		t.Errorf("Max = %v", got)
	}
}
