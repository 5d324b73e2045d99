package easel

import (
	"testing"
	"time"

	"github.com/tanema/gween/ease"
)

func TestGlideReachesTarget(t *testing.T) {
	c := NewCircle(Pt(10, 20), 5)
	Glide(c, 30, -12, 50*time.Millisecond, nil)
	// The tween clamps its final step, so the displacement is exact.
	assertPoint(t, "center", c.Center(), Pt(40, 8))
}

func TestGlideEased(t *testing.T) {
	c := NewCircle(Pt(0, 0), 1)
	Glide(c, 10, 10, 50*time.Millisecond, ease.InOutQuad)
	assertPoint(t, "center", c.Center(), Pt(10, 10))
}

func TestGlideDrawnShape(t *testing.T) {
	win, hc := newTestWindow(t, 200, 200)
	c := NewCircle(Pt(50, 50), 5)
	if err := c.Draw(win); err != nil {
		t.Fatal(err)
	}
	pumps := hc.pumps
	Glide(c, 20, 0, 50*time.Millisecond, nil)
	assertPoint(t, "center", c.Center(), Pt(70, 50))

	rec := hc.items[c.id]
	assertNear(t, "native offset", rec.offX, 20)
	if hc.pumps <= pumps {
		t.Error("glide should pump the render cycle between steps")
	}
}

func TestGlideZeroDuration(t *testing.T) {
	c := NewCircle(Pt(1, 1), 1)
	Glide(c, 5, 5, 0, nil)
	assertPoint(t, "center", c.Center(), Pt(6, 6))
}
