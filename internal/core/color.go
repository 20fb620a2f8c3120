package core

import "fmt"

// RGB is a 24-bit terminal color.
type RGB struct {
	R, G, B uint8
}

// RGBFromFloat converts channels in [0, 1], clamping out-of-range values.
func RGBFromFloat(r, g, b float64) RGB {
	return RGB{R: to8(r), G: to8(g), B: to8(b)}
}

// Hex returns the color as "#rrggbb".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func to8(v float64) uint8 {
	return uint8(Clamp(v, 0, 1)*255 + 0.5)
}
