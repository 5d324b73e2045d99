package easel

import "testing"

func TestCirclesIntersect(t *testing.T) {
	a := NewCircle(Pt(0, 0), 5)
	b := NewCircle(Pt(7, 0), 3)
	if !a.Intersects(b) || !b.Intersects(a) {
		t.Error("overlapping circles should intersect (both directions)")
	}

	far := NewCircle(Pt(10, 0), 1)
	if a.Intersects(far) {
		t.Error("distant circles should not intersect")
	}

	// Exact tangency counts as a collision.
	touch := NewCircle(Pt(8, 0), 3)
	if !a.Intersects(touch) {
		t.Error("tangent circles should intersect")
	}
}

func TestCircleContainsPoint(t *testing.T) {
	c := NewCircle(Pt(10, 10), 5)
	if !c.ContainsPoint(Pt(12, 12)) {
		t.Error("interior point should be contained")
	}
	if !c.ContainsPoint(Pt(15, 10)) {
		t.Error("boundary point should be contained")
	}
	if c.ContainsPoint(Pt(16, 10)) {
		t.Error("exterior point should not be contained")
	}
}

func TestRectanglesIntersect(t *testing.T) {
	a := NewRectangle(Pt(0, 0), Pt(10, 10))
	b := NewRectangle(Pt(5, 5), Pt(15, 15))
	if !a.Intersects(b) {
		t.Error("overlapping rectangles should intersect")
	}

	c := NewRectangle(Pt(11, 0), Pt(20, 10))
	if a.Intersects(c) {
		t.Error("disjoint rectangles should not intersect")
	}

	// Shared edge counts.
	d := NewRectangle(Pt(10, 0), Pt(20, 10))
	if !a.Intersects(d) {
		t.Error("edge-touching rectangles should intersect")
	}

	// Corner order must not matter.
	e := NewRectangle(Pt(15, 15), Pt(5, 5))
	if !a.Intersects(e) {
		t.Error("inverted-corner rectangle should intersect")
	}
}

func TestRectangleContainsPoint(t *testing.T) {
	r := NewRectangle(Pt(0, 0), Pt(10, 5))
	if !r.ContainsPoint(Pt(5, 2)) {
		t.Error("interior point should be contained")
	}
	if !r.ContainsPoint(Pt(10, 5)) {
		t.Error("corner should be contained")
	}
	if r.ContainsPoint(Pt(10.1, 5)) {
		t.Error("exterior point should not be contained")
	}
}

func TestCircleRectIntersect(t *testing.T) {
	r := NewRectangle(Pt(0, 0), Pt(10, 10))

	inside := NewCircle(Pt(5, 5), 1)
	if !inside.IntersectsRect(r) || !r.IntersectsCircle(inside) {
		t.Error("circle inside rectangle should intersect")
	}

	// Near the corner: center distance to (10,10) is sqrt(8) ≈ 2.83.
	corner := NewCircle(Pt(12, 12), 3)
	if !corner.IntersectsRect(r) {
		t.Error("circle reaching the corner should intersect")
	}
	cornerMiss := NewCircle(Pt(12, 12), 2)
	if cornerMiss.IntersectsRect(r) {
		t.Error("circle short of the corner should not intersect")
	}

	side := NewCircle(Pt(-3, 5), 2)
	if side.IntersectsRect(r) {
		t.Error("circle short of the side should not intersect")
	}
}

func TestImageOverlap(t *testing.T) {
	a := NewImage(Pt(0, 0), 10, 10)
	b := NewImage(Pt(8, 0), 10, 10)
	if !a.Overlaps(b) {
		t.Error("images 8 apart with half-extents 5 should overlap")
	}
	c := NewImage(Pt(11, 0), 10, 10)
	if a.Overlaps(c) {
		t.Error("images 11 apart with half-extents 5 should not overlap")
	}
	if !a.ContainsPoint(Pt(4, -4)) {
		t.Error("point inside image bounds should be contained")
	}
	if a.ContainsPoint(Pt(6, 0)) {
		t.Error("point outside image bounds should not be contained")
	}
}
