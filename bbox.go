package easel

// bbox is the geometry shared by shapes defined by two opposite corner points.
type bbox struct {
	p1, p2 Point
}

func (b *bbox) translate(dx, dy float64) {
	b.p1.X += dx
	b.p1.Y += dy
	b.p2.X += dx
	b.p2.Y += dy
}

// corners projects both corner points to pixels.
func (b *bbox) corners(toScreen func(x, y float64) (int, int)) []int {
	x1, y1 := toScreen(b.p1.X, b.p1.Y)
	x2, y2 := toScreen(b.p2.X, b.p2.Y)
	return []int{x1, y1, x2, y2}
}

// P1 returns a copy of the first corner point.
func (b *bbox) P1() Point { return b.p1 }

// P2 returns a copy of the second corner point.
func (b *bbox) P2() Point { return b.p2 }

// Center returns the midpoint of the two corners.
func (b *bbox) Center() Point {
	return Point{(b.p1.X + b.p2.X) / 2, (b.p1.Y + b.p2.Y) / 2}
}

// bboxOptions is the legal option set for the bounding-box shape family.
var bboxOptions = []string{OptOutline, OptWidth, OptFill, OptActiveFill}

// Rectangle is an axis-aligned rectangle spanning two opposite corners.
type Rectangle struct {
	Object
	bbox
}

// NewRectangle creates a detached rectangle with corners p1 and p2.
func NewRectangle(p1, p2 Point) *Rectangle {
	r := &Rectangle{bbox: bbox{p1, p2}}
	r.init(r, bboxOptions...)
	return r
}

func (r *Rectangle) project(toScreen func(x, y float64) (int, int)) Item {
	return Item{Kind: ItemRect, Coords: r.corners(toScreen)}
}

// Clone returns a detached copy with independent geometry and config.
func (r *Rectangle) Clone() *Rectangle {
	c := NewRectangle(r.p1, r.p2)
	c.cloneConfigFrom(&r.Object)
	return c
}

// RoundedRectangle is a rectangle whose corners are rounded at a fixed radius.
// It renders as a spline-smoothed 20-point polygon; the duplicated control
// points pin the straight edges while the corner triples curve.
type RoundedRectangle struct {
	Rectangle
	radius float64
}

// NewRoundedRectangle creates a detached rounded rectangle. radius is the
// corner radius in world units.
func NewRoundedRectangle(p1, p2 Point, radius float64) *RoundedRectangle {
	r := &RoundedRectangle{Rectangle: Rectangle{bbox: bbox{p1, p2}}, radius: radius}
	r.init(r, bboxOptions...)
	return r
}

// Radius returns the corner radius.
func (r *RoundedRectangle) Radius() float64 { return r.radius }

// cornerPoints builds the 20 polygon control points from the current corners,
// so the outline stays synchronized with geometry after moves and remaps.
func (r *RoundedRectangle) cornerPoints() []Point {
	x1, y1 := r.p1.X, r.p1.Y
	x2, y2 := r.p2.X, r.p2.Y
	rad := r.radius
	return []Point{
		{x1 + rad, y1}, {x1 + rad, y1},
		{x2 - rad, y1}, {x2 - rad, y1},
		{x2, y1}, {x2, y1 + rad}, {x2, y1 + rad},
		{x2, y2 - rad}, {x2, y2 - rad},
		{x2, y2}, {x2 - rad, y2}, {x2 - rad, y2},
		{x1 + rad, y2}, {x1 + rad, y2},
		{x1, y2}, {x1, y2 - rad}, {x1, y2 - rad},
		{x1, y1 + rad}, {x1, y1 + rad}, {x1, y1},
	}
}

func (r *RoundedRectangle) project(toScreen func(x, y float64) (int, int)) Item {
	pts := r.cornerPoints()
	coords := make([]int, 0, 2*len(pts))
	for _, p := range pts {
		xs, ys := toScreen(p.X, p.Y)
		coords = append(coords, xs, ys)
	}
	return Item{Kind: ItemPolygon, Coords: coords, Smooth: true}
}

// Clone returns a detached copy with independent geometry and config.
func (r *RoundedRectangle) Clone() *RoundedRectangle {
	c := NewRoundedRectangle(r.p1, r.p2, r.radius)
	c.cloneConfigFrom(&r.Object)
	return c
}

// Oval is an ellipse inscribed in the box spanned by two opposite corners.
type Oval struct {
	Object
	bbox
}

// NewOval creates a detached oval inscribed in the p1-p2 box.
func NewOval(p1, p2 Point) *Oval {
	o := &Oval{bbox: bbox{p1, p2}}
	o.init(o, bboxOptions...)
	return o
}

func (o *Oval) project(toScreen func(x, y float64) (int, int)) Item {
	return Item{Kind: ItemOval, Coords: o.corners(toScreen)}
}

// Clone returns a detached copy with independent geometry and config.
func (o *Oval) Clone() *Oval {
	c := NewOval(o.p1, o.p2)
	c.cloneConfigFrom(&o.Object)
	return c
}

// Arc is an elliptical arc inside a bounding box, described by a start angle
// and an angular extent (degrees, counter-clockwise from 3 o'clock). The style
// selects the native pie-slice, chord, or open-arc primitive.
type Arc struct {
	Object
	bbox
	start, extent float64
	style         ArcStyle
}

// NewArc creates a detached arc in the p1-p2 box.
func NewArc(p1, p2 Point, start, extent float64, style ArcStyle) *Arc {
	a := &Arc{bbox: bbox{p1, p2}, start: start, extent: extent, style: style}
	a.init(a, bboxOptions...)
	return a
}

// Start returns the start angle in degrees.
func (a *Arc) Start() float64 { return a.start }

// Extent returns the angular extent in degrees.
func (a *Arc) Extent() float64 { return a.extent }

// Style returns the arc style.
func (a *Arc) Style() ArcStyle { return a.style }

func (a *Arc) project(toScreen func(x, y float64) (int, int)) Item {
	return Item{
		Kind:   ItemArc,
		Coords: a.corners(toScreen),
		Start:  a.start,
		Extent: a.extent,
		Style:  a.style,
	}
}

// Clone returns a detached copy with independent geometry and config.
func (a *Arc) Clone() *Arc {
	c := NewArc(a.p1, a.p2, a.start, a.extent, a.style)
	c.cloneConfigFrom(&a.Object)
	return c
}
