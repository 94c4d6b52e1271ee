package terminal

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestColorPresets(t *testing.T) {
	tests := []struct {
		name   string
		colors Colors
		fg, bg Color
	}{
		{"Default", DefaultColors(), White, Black},
		{"WhiteOnBlack", WhiteOnBlack(), Gray, Black},
		{"BlackOnWhite", BlackOnWhite(), Black, Gray},
		{"Explicit", NewColors(Yellow, DarkBlue), Yellow, DarkBlue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.colors.Foreground() != tt.fg {
				t.Errorf("Expected foreground %s, got %s", tt.fg, tt.colors.Foreground())
			}
			if tt.colors.Background() != tt.bg {
				t.Errorf("Expected background %s, got %s", tt.bg, tt.colors.Background())
			}
		})
	}

	if WhiteOnBlack() != WhiteOnBlack() {
		t.Error("Expected presets to compare equal by value")
	}
	if got := BlackOnWhite().String(); got != "Black on Gray" {
		t.Errorf("Expected \"Black on Gray\", got %q", got)
	}
}

func TestColorCodes(t *testing.T) {
	tests := []struct {
		color  Color
		name   string
		fg, bg int
		tcell  tcell.Color
	}{
		{Black, "Black", 30, 40, tcell.ColorBlack},
		{DarkRed, "DarkRed", 31, 41, tcell.ColorMaroon},
		{DarkBlue, "DarkBlue", 34, 44, tcell.ColorNavy},
		{Gray, "Gray", 37, 47, tcell.ColorSilver},
		{DarkGray, "DarkGray", 90, 100, tcell.ColorGray},
		{Red, "Red", 91, 101, tcell.ColorRed},
		{Yellow, "Yellow", 93, 103, tcell.ColorYellow},
		{Blue, "Blue", 94, 104, tcell.ColorBlue},
		{White, "White", 97, 107, tcell.ColorWhite},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.color.String() != tt.name {
				t.Errorf("Expected name %s, got %s", tt.name, tt.color.String())
			}
			if tt.color.FgCode() != tt.fg {
				t.Errorf("Expected fg code %d, got %d", tt.fg, tt.color.FgCode())
			}
			if tt.color.BgCode() != tt.bg {
				t.Errorf("Expected bg code %d, got %d", tt.bg, tt.color.BgCode())
			}
			if tt.color.Tcell() != tt.tcell {
				t.Errorf("Expected tcell color %v, got %v", tt.tcell, tt.color.Tcell())
			}
		})
	}
}

func TestColorValid(t *testing.T) {
	if !White.Valid() || !Black.Valid() {
		t.Error("Expected palette bounds to be valid")
	}
	if Color(16).Valid() {
		t.Error("Expected Color(16) to be invalid")
	}
	if got := Color(42).String(); got != "Color(42)" {
		t.Errorf("Expected Color(42), got %s", got)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"red", Red, false},
		{"DarkRed", DarkRed, false},
		{"dark-magenta", DarkMagenta, false},
		{"dark_yellow", DarkYellow, false},
		{"GRAY", Gray, false},
		{"purple", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Expected error for %q", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, got)
			}
		})
	}
}
