package easel

import (
	"fmt"
	"image/color"
)

// Point is a position in world coordinates. It is a plain value type: assigning
// or passing a Point copies it, so geometry handed out by accessors can never
// alias a shape's internal state.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point {
	return Point{x, y}
}

// Add returns the point displaced by (dx, dy).
func (p Point) Add(dx, dy float64) Point {
	return Point{p.X + dx, p.Y + dy}
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseLeft  MouseButton = iota // primary (left) mouse button
	MouseRight                    // secondary (right) mouse button

	numButtons = 2
)

// Option names accepted by shape configurations. Each shape declares the
// subset it supports; setting any other option fails with
// ErrUnsupportedOption.
const (
	OptFill       = "fill"
	OptOutline    = "outline"
	OptWidth      = "width"
	OptArrow      = "arrow"
	OptText       = "text"
	OptJustify    = "justify"
	OptFont       = "font"
	OptSmooth     = "smooth"
	OptActiveFill = "activefill"
)

// Legal values for a Line's arrow option.
const (
	ArrowNone  = "none"
	ArrowFirst = "first"
	ArrowLast  = "last"
	ArrowBoth  = "both"
)

// ColorRGB returns the "#rrggbb" color string for the given components,
// each expected in [0, 255].
func ColorRGB(r, g, b int) string {
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// namedColors covers the color names commonly passed to shape options.
// Anything else must be a "#rrggbb" string.
var namedColors = map[string]color.RGBA{
	"black":   {0x00, 0x00, 0x00, 0xff},
	"white":   {0xff, 0xff, 0xff, 0xff},
	"red":     {0xff, 0x00, 0x00, 0xff},
	"green":   {0x00, 0x80, 0x00, 0xff},
	"blue":    {0x00, 0x00, 0xff, 0xff},
	"yellow":  {0xff, 0xff, 0x00, 0xff},
	"cyan":    {0x00, 0xff, 0xff, 0xff},
	"magenta": {0xff, 0x00, 0xff, 0xff},
	"orange":  {0xff, 0xa5, 0x00, 0xff},
	"purple":  {0x80, 0x00, 0x80, 0xff},
	"pink":    {0xff, 0xc0, 0xcb, 0xff},
	"gray":    {0x80, 0x80, 0x80, 0xff},
	"grey":    {0x80, 0x80, 0x80, 0xff},
	"brown":   {0xa5, 0x2a, 0x2a, 0xff},
}

// ParseColor resolves a color option value: a known color name or a
// "#rrggbb" string. Fails with ErrBadOption for anything else.
func ParseColor(s string) (color.RGBA, error) {
	if c, ok := namedColors[s]; ok {
		return c, nil
	}
	var r, g, b uint8
	if len(s) == 7 && s[0] == '#' {
		if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err == nil {
			return color.RGBA{r, g, b, 0xff}, nil
		}
	}
	return color.RGBA{}, fmt.Errorf("color %q: %w", s, ErrBadOption)
}
