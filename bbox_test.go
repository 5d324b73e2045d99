package easel

import "testing"

func TestRectangleAccessors(t *testing.T) {
	r := NewRectangle(Pt(1, 2), Pt(5, 8))
	assertPoint(t, "p1", r.P1(), Pt(1, 2))
	assertPoint(t, "p2", r.P2(), Pt(5, 8))
	assertPoint(t, "center", r.Center(), Pt(3, 5))
}

func TestOvalProjects(t *testing.T) {
	win, hc := newTestWindow(t, 200, 200)
	o := NewOval(Pt(10, 20), Pt(30, 40))
	if err := o.Draw(win); err != nil {
		t.Fatal(err)
	}
	rec := hc.items[o.id]
	if rec.Kind != ItemOval {
		t.Fatalf("kind = %v, want ItemOval", rec.Kind)
	}
	want := []int{10, 20, 30, 40}
	for i, v := range want {
		if rec.Coords[i] != v {
			t.Errorf("coords = %v, want %v", rec.Coords, want)
			break
		}
	}
}

func TestCircleProjectsAsOval(t *testing.T) {
	win, hc := newTestWindow(t, 200, 200)
	c := NewCircle(Pt(50, 60), 10)
	if err := c.Draw(win); err != nil {
		t.Fatal(err)
	}
	rec := hc.items[c.id]
	if rec.Kind != ItemOval {
		t.Fatalf("kind = %v, want ItemOval", rec.Kind)
	}
	want := []int{40, 50, 60, 70}
	for i, v := range want {
		if rec.Coords[i] != v {
			t.Errorf("coords = %v, want %v", rec.Coords, want)
			break
		}
	}
}

func TestArcCarriesAngles(t *testing.T) {
	win, hc := newTestWindow(t, 200, 200)
	a := NewArc(Pt(10, 10), Pt(50, 50), 30, 120, ArcChord)
	if err := a.Draw(win); err != nil {
		t.Fatal(err)
	}
	rec := hc.items[a.id]
	if rec.Kind != ItemArc {
		t.Fatalf("kind = %v, want ItemArc", rec.Kind)
	}
	assertNear(t, "start", rec.Start, 30)
	assertNear(t, "extent", rec.Extent, 120)
	if rec.Style != ArcChord {
		t.Errorf("style = %v, want ArcChord", rec.Style)
	}
	assertNear(t, "Start()", a.Start(), 30)
	assertNear(t, "Extent()", a.Extent(), 120)
}

func TestRoundedRectangleProjects(t *testing.T) {
	win, hc := newTestWindow(t, 200, 200)
	r := NewRoundedRectangle(Pt(10, 10), Pt(50, 40), 5)
	if err := r.Draw(win); err != nil {
		t.Fatal(err)
	}
	rec := hc.items[r.id]
	if rec.Kind != ItemPolygon {
		t.Fatalf("kind = %v, want ItemPolygon", rec.Kind)
	}
	if !rec.Smooth {
		t.Error("rounded rectangle should render smoothed")
	}
	if len(rec.Coords) != 40 {
		t.Errorf("%d coords, want 40 (20 control points)", len(rec.Coords))
	}
	assertNear(t, "radius", r.Radius(), 5)
}

func TestRoundedRectangleTracksMoves(t *testing.T) {
	// The control points are derived from the corners at projection time, so
	// a move followed by a redraw lands at the new position.
	win, hc := newTestWindow(t, 200, 200)
	r := NewRoundedRectangle(Pt(0, 0), Pt(20, 20), 4)
	if err := r.Draw(win); err != nil {
		t.Fatal(err)
	}
	r.Move(30, 0)
	if err := r.Redraw(); err != nil {
		t.Fatal(err)
	}
	rec := hc.items[r.id]
	// First control point is (x1+radius, y1) = (34, 0).
	if rec.Coords[0] != 34 || rec.Coords[1] != 0 {
		t.Errorf("first control point = (%d,%d), want (34,0)", rec.Coords[0], rec.Coords[1])
	}
}

func TestArcClone(t *testing.T) {
	a := NewArc(Pt(0, 0), Pt(10, 10), 45, 90, ArcSector)
	a.SetFill("green")
	c := a.Clone()
	if c.IsDrawn() {
		t.Error("clone must start detached")
	}
	assertNear(t, "start", c.Start(), 45)
	assertNear(t, "extent", c.Extent(), 90)
	if c.Style() != ArcSector {
		t.Errorf("style = %v, want ArcSector", c.Style())
	}
	if c.Fill() != "green" {
		t.Errorf("fill = %q, want green", c.Fill())
	}
}
