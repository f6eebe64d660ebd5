package graphics

import "testing"

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#F00", ColorRed},
		{"#8F00", Color(0x88FF0000)},
		{"#2196F3", Color(0xFF2196F3)},
		{"#802196F3", Color(0x802196F3)},
		{"  white ", ColorWhite},
		{"Transparent", ColorTransparent},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if err != nil {
			t.Errorf("ParseColor(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	for _, bad := range []string{"", "FF0000", "#12345", "#GGGGGG", "mauve"} {
		if _, err := ParseColor(bad); err == nil {
			t.Errorf("ParseColor(%q) should fail", bad)
		}
	}
}

func TestColorText(t *testing.T) {
	c := RGBA8(0x12, 0x34, 0x56, 0x78)
	text, err := c.MarshalText()
	if err != nil || string(text) != "#78123456" {
		t.Fatalf("MarshalText = %q, %v", text, err)
	}
	var back Color
	if err := back.UnmarshalText(text); err != nil || back != c {
		t.Errorf("UnmarshalText = %v, %v", back, err)
	}
}

func TestColorLerp(t *testing.T) {
	got := ColorBlack.Lerp(ColorWhite, 0.5)
	if got != RGB(128, 128, 128) {
		t.Errorf("Lerp = %v", got)
	}
	if ColorRed.Lerp(ColorBlue, 2) != ColorBlue {
		t.Error("Lerp should clamp t")
	}
}

func TestColorAlpha(t *testing.T) {
	if got := ColorRed.WithAlpha(0.5).A(); got != 128 {
		t.Errorf("WithAlpha(0.5).A() = %d, want 128", got)
	}
	if got := RGBA(1, 2, 3, 1).NRGBA(); got.A != 255 || got.R != 1 {
		t.Errorf("NRGBA = %v", got)
	}
}
