package easel

// Geometric collision predicates. All are pure reads over world-space
// geometry; boundary contact counts as a collision.

// span returns the ordered [lo, hi] interval of two values.
func span(a, b float64) (lo, hi float64) {
	if a <= b {
		return a, b
	}
	return b, a
}

// Intersects reports whether two rectangles overlap: interval overlap on both
// axes.
func (r *Rectangle) Intersects(o *Rectangle) bool {
	ax1, ax2 := span(r.p1.X, r.p2.X)
	ay1, ay2 := span(r.p1.Y, r.p2.Y)
	bx1, bx2 := span(o.p1.X, o.p2.X)
	by1, by2 := span(o.p1.Y, o.p2.Y)
	return ax1 <= bx2 && ax2 >= bx1 && ay1 <= by2 && ay2 >= by1
}

// ContainsPoint reports whether p lies inside the closed rectangle.
func (r *Rectangle) ContainsPoint(p Point) bool {
	x1, x2 := span(r.p1.X, r.p2.X)
	y1, y2 := span(r.p1.Y, r.p2.Y)
	return x1 <= p.X && p.X <= x2 && y1 <= p.Y && p.Y <= y2
}

// IntersectsCircle reports whether the rectangle and circle overlap.
func (r *Rectangle) IntersectsCircle(c *Circle) bool {
	return c.IntersectsRect(r)
}

// Intersects reports whether two circles overlap: squared center distance
// within the squared sum of radii.
func (c *Circle) Intersects(o *Circle) bool {
	dx := c.center.X - o.center.X
	dy := c.center.Y - o.center.Y
	rr := c.radius + o.radius
	return dx*dx+dy*dy <= rr*rr
}

// ContainsPoint reports whether p lies inside the closed circle.
func (c *Circle) ContainsPoint(p Point) bool {
	dx := p.X - c.center.X
	dy := p.Y - c.center.Y
	return dx*dx+dy*dy <= c.radius*c.radius
}

// IntersectsRect reports whether the circle and rectangle overlap: the center
// is clamped into the box and the clamped point tested against the radius.
func (c *Circle) IntersectsRect(r *Rectangle) bool {
	x1, x2 := span(r.p1.X, r.p2.X)
	y1, y2 := span(r.p1.Y, r.p2.Y)
	cx := clamp(c.center.X, x1, x2)
	cy := clamp(c.center.Y, y1, y2)
	dx := cx - c.center.X
	dy := cy - c.center.Y
	return dx*dx+dy*dy <= c.radius*c.radius
}

// Overlaps reports whether the pixel bounds of two images overlap. Images are
// centered on their anchors, so each extends half its size in every direction.
func (im *Image) Overlaps(o *Image) bool {
	aw, ah := float64(im.Width())/2, float64(im.Height())/2
	bw, bh := float64(o.Width())/2, float64(o.Height())/2
	return im.anchor.X-aw <= o.anchor.X+bw &&
		im.anchor.X+aw >= o.anchor.X-bw &&
		im.anchor.Y-ah <= o.anchor.Y+bh &&
		im.anchor.Y+ah >= o.anchor.Y-bh
}

// ContainsPoint reports whether p lies inside the image's pixel bounds.
func (im *Image) ContainsPoint(p Point) bool {
	hw, hh := float64(im.Width())/2, float64(im.Height())/2
	return im.anchor.X-hw <= p.X && p.X <= im.anchor.X+hw &&
		im.anchor.Y-hh <= p.Y && p.Y <= im.anchor.Y+hh
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
