package arena

import (
	"testing"

	"github.com/vovakirdan/hazard-arena/internal/config"
)

func TestClassPalette(t *testing.T) {
	tests := []struct {
		class int
		name  string
		color Color
	}{
		{0, "red", Color{R: 1}},
		{1, "blue", Color{B: 1}},
		{2, "green", Color{G: 1}},
		{3, "yellow", Color{R: 1, G: 1}},
		{4, "purple", Color{R: 1, B: 1}},
		{5, "cyan", Color{G: 1, B: 1}},
		{6, "orange", Color{R: 1, G: 0.5}},
	}

	if len(tests) != config.MaxColorClasses {
		t.Fatalf("table covers %d classes, palette has %d", len(tests), config.MaxColorClasses)
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ClassName(tc.class); got != tc.name {
				t.Errorf("ClassName(%d) = %q, expected %q", tc.class, got, tc.name)
			}
			if got := ClassColor(tc.class); got != tc.color {
				t.Errorf("ClassColor(%d) = %+v, expected %+v", tc.class, got, tc.color)
			}
		})
	}
}

func TestClassColorWraps(t *testing.T) {
	if ClassColor(7) != ClassColor(0) || ClassColor(-1) != ClassColor(6) {
		t.Error("out-of-range classes should wrap around the palette")
	}
}
