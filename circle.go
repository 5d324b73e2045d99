package easel

// Circle is defined by a center and radius in world units. It renders through
// the oval projection of its derived bounding box.
type Circle struct {
	Object
	center Point
	radius float64
}

// NewCircle creates a detached circle.
func NewCircle(center Point, radius float64) *Circle {
	c := &Circle{center: center, radius: radius}
	c.init(c, bboxOptions...)
	return c
}

// Center returns a copy of the center point.
func (c *Circle) Center() Point { return c.center }

// Radius returns the radius.
func (c *Circle) Radius() float64 { return c.radius }

// SetRadius changes the radius. Takes effect on the next redraw if attached.
func (c *Circle) SetRadius(r float64) { c.radius = r }

func (c *Circle) translate(dx, dy float64) {
	c.center.X += dx
	c.center.Y += dy
}

func (c *Circle) project(toScreen func(x, y float64) (int, int)) Item {
	box := bbox{
		p1: Point{c.center.X - c.radius, c.center.Y - c.radius},
		p2: Point{c.center.X + c.radius, c.center.Y + c.radius},
	}
	return Item{Kind: ItemOval, Coords: box.corners(toScreen)}
}

// Clone returns a detached copy with independent geometry and config.
func (c *Circle) Clone() *Circle {
	out := NewCircle(c.center, c.radius)
	out.cloneConfigFrom(&c.Object)
	return out
}
