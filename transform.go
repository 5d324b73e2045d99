package easel

import (
	"fmt"
	"math"
)

// transform maps between world and pixel coordinates for one window. World y
// grows upward while screen y grows downward, so the map flips the y axis.
// Immutable once constructed; SetCoords installs a fresh one.
type transform struct {
	xbase, ybase   float64 // world coordinates of pixel (0, 0)
	xscale, yscale float64 // world units per pixel
}

// newTransform builds the map for a w-by-h pixel canvas whose lower-left
// corner is (xlow, ylow) and upper-right corner is (xhigh, yhigh) in world
// coordinates. A 1-pixel axis has a zero-size span and is rejected.
func newTransform(w, h int, xlow, ylow, xhigh, yhigh float64) (*transform, error) {
	if w < 2 || h < 2 {
		return nil, fmt.Errorf("%dx%d canvas: %w", w, h, ErrDegenerateSpan)
	}
	return &transform{
		xbase:  xlow,
		ybase:  yhigh,
		xscale: (xhigh - xlow) / float64(w-1),
		yscale: (yhigh - ylow) / float64(h-1),
	}, nil
}

// screen converts a world point to the nearest integer pixel.
func (t *transform) screen(x, y float64) (xs, ys int) {
	return roundPixel((x - t.xbase) / t.xscale), roundPixel((t.ybase - y) / t.yscale)
}

// world converts a pixel back to world coordinates. Exact inverse of screen
// up to the pixel rounding.
func (t *transform) world(xs, ys float64) (x, y float64) {
	return xs*t.xscale + t.xbase, t.ybase - ys*t.yscale
}

func roundPixel(v float64) int {
	return int(math.Floor(v + 0.5))
}
