package arena

import (
	"image/color"
	"math"

	"golang.org/x/image/colornames"

	"github.com/vovakirdan/hazard-arena/internal/config"
)

// Color is a linear RGB color with channels in [0, 1].
type Color struct {
	R, G, B float64
}

// FromRGB converts a tuning color.
func FromRGB(c config.RGB) Color {
	return Color{R: c.R, G: c.G, B: c.B}
}

// FromNamed converts an 8-bit color such as a colornames entry.
func FromNamed(c color.RGBA) Color {
	return Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

// Scale multiplies every channel by k.
func (c Color) Scale(k float64) Color {
	return Color{R: c.R * k, G: c.G * k, B: c.B * k}
}

// Mix returns c*(1-w) + o*w.
func (c Color) Mix(o Color, w float64) Color {
	return Color{
		R: c.R*(1-w) + o.R*w,
		G: c.G*(1-w) + o.G*w,
		B: c.B*(1-w) + o.B*w,
	}
}

// Add brightens every channel by v, clamping at 1.
func (c Color) Add(v float64) Color {
	return Color{
		R: math.Min(1, c.R+v),
		G: math.Min(1, c.G+v),
		B: math.Min(1, c.B+v),
	}
}

// classColors holds one entry per player color class, in class order.
var classColors = [config.MaxColorClasses]struct {
	name  string
	color Color
}{
	{"red", FromNamed(colornames.Red)},
	{"blue", FromNamed(colornames.Blue)},
	{"green", FromNamed(colornames.Lime)},
	{"yellow", FromNamed(colornames.Yellow)},
	{"purple", Color{R: 1, B: 1}},
	{"cyan", FromNamed(colornames.Cyan)},
	{"orange", Color{R: 1, G: 0.5}},
}

// ClassColor returns the palette color for a color class.
// Out-of-range classes wrap around.
func ClassColor(class int) Color {
	return classColors[wrapClass(class)].color
}

// ClassName returns the palette name for a color class.
func ClassName(class int) string {
	return classColors[wrapClass(class)].name
}

func wrapClass(class int) int {
	n := len(classColors)
	return ((class % n) + n) % n
}

// Fixed layer colors.
var (
	zoneFill      = Color{G: 0.8, B: 0.2}
	blobSafe      = Color{R: 0.2, G: 1, B: 0.2}
	blobColliding = Color{R: 1, G: 0.2, B: 0.2}
	blobFree      = FromNamed(colornames.White)
	crosshair     = FromNamed(colornames.Magenta)
)
