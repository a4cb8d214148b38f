package domain

import "fmt"

// Color is a named RGB triple. The zero value is NoColor.
type Color struct {
	Name    string
	R, G, B uint8
}

var (
	NoColor = Color{}

	Red     = Color{Name: "red", R: 220, G: 30, B: 30}
	Yellow  = Color{Name: "yellow", R: 240, G: 210, B: 20}
	Green   = Color{Name: "green", R: 30, G: 170, B: 60}
	Blue    = Color{Name: "blue", R: 30, G: 80, B: 220}
	Orange  = Color{Name: "orange", R: 245, G: 140, B: 20}
	Purple  = Color{Name: "purple", R: 130, G: 50, B: 180}
	Cyan    = Color{Name: "cyan", R: 20, G: 190, B: 210}
	Magenta = Color{Name: "magenta", R: 210, G: 40, B: 170}
)

// Palette lists the predefined colors in the order they are handed out.
var Palette = []Color{Red, Yellow, Green, Blue, Orange, Purple, Cyan, Magenta}

// ColorByName looks a color up in the palette, case sensitive.
func ColorByName(name string) (Color, bool) {
	for _, c := range Palette {
		if c.Name == name {
			return c, true
		}
	}
	return NoColor, false
}

func (c Color) IsNone() bool {
	return c == NoColor
}

func (c Color) String() string {
	if c.IsNone() {
		return "none"
	}
	if c.Name != "" {
		return c.Name
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
