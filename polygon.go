package easel

import "math"

// Polygon is a closed shape through an ordered list of vertices.
type Polygon struct {
	Object
	points []Point
}

var polygonOptions = []string{OptOutline, OptWidth, OptFill, OptActiveFill, OptSmooth}

// NewPolygon creates a detached polygon through the given vertices. The
// vertex list is copied.
func NewPolygon(points ...Point) *Polygon {
	p := &Polygon{points: append([]Point(nil), points...)}
	p.init(p, polygonOptions...)
	return p
}

// Points returns a copy of the vertex list.
func (p *Polygon) Points() []Point {
	return append([]Point(nil), p.points...)
}

func (p *Polygon) translate(dx, dy float64) {
	for i := range p.points {
		p.points[i].X += dx
		p.points[i].Y += dy
	}
}

func (p *Polygon) project(toScreen func(x, y float64) (int, int)) Item {
	coords := make([]int, 0, 2*len(p.points))
	for _, pt := range p.points {
		xs, ys := toScreen(pt.X, pt.Y)
		coords = append(coords, xs, ys)
	}
	return Item{Kind: ItemPolygon, Coords: coords}
}

// Clone returns a detached copy with independent geometry and config.
func (p *Polygon) Clone() *Polygon {
	c := NewPolygon(p.points...)
	c.cloneConfigFrom(&p.Object)
	return c
}

// RotatablePolygon is a polygon that tracks a cumulative rotation angle.
// Rotation always recomputes every vertex from the original unrotated vertex
// set; rotating the current positions incrementally would accumulate rounding
// drift and degrade the shape.
type RotatablePolygon struct {
	Polygon
	theta  float64 // cumulative angle, degrees in [0, 360)
	orig   []Point // unrotated vertices, kept in step with translation
	center Point
}

// NewRotatablePolygon creates a detached rotatable polygon through the given
// vertices.
func NewRotatablePolygon(points ...Point) *RotatablePolygon {
	rp := &RotatablePolygon{}
	rp.points = append([]Point(nil), points...)
	rp.orig = append([]Point(nil), points...)
	rp.init(rp, polygonOptions...)
	rp.center = rp.centroid()
	return rp
}

// Theta returns the cumulative rotation angle in degrees, in [0, 360).
func (rp *RotatablePolygon) Theta() float64 { return rp.theta }

// Center returns a copy of the current rotation center (the centroid, unless
// geometry was just mutated).
func (rp *RotatablePolygon) Center() Point { return rp.center }

// centroid averages the current vertices, rounded to whole world units.
func (rp *RotatablePolygon) centroid() Point {
	var sx, sy float64
	for _, p := range rp.points {
		sx += p.X
		sy += p.Y
	}
	n := float64(len(rp.points))
	return Point{math.Round(sx / n), math.Round(sy / n)}
}

func (rp *RotatablePolygon) translate(dx, dy float64) {
	rp.Polygon.translate(dx, dy)
	for i := range rp.orig {
		rp.orig[i].X += dx
		rp.orig[i].Y += dy
	}
	rp.center = rp.centroid()
}

// Rotate advances the rotation by the given degrees about the polygon's
// centroid, then redraws if attached.
func (rp *RotatablePolygon) Rotate(degrees float64) error {
	return rp.RotateAbout(degrees, rp.center)
}

// RotateAbout advances the rotation about an explicit pivot point.
func (rp *RotatablePolygon) RotateAbout(degrees float64, about Point) error {
	rp.theta = math.Mod(rp.theta+degrees, 360)
	if rp.theta < 0 {
		rp.theta += 360
	}
	if degrees == 0 {
		return nil
	}
	rad := rp.theta * math.Pi / 180
	sin, cos := math.Sincos(rad)
	for i, op := range rp.orig {
		dx := op.X - about.X
		dy := op.Y - about.Y
		rp.points[i] = Point{
			X: about.X + dx*cos + dy*sin,
			Y: about.Y + dy*cos - dx*sin,
		}
	}
	err := rp.Redraw()
	rp.center = rp.centroid()
	return err
}

// Clone returns a detached copy with independent geometry and config. The
// clone starts at the source's current vertex positions with its rotation
// angle reset.
func (rp *RotatablePolygon) Clone() *RotatablePolygon {
	c := NewRotatablePolygon(rp.points...)
	c.cloneConfigFrom(&rp.Object)
	return c
}

// RotatableOval is an ellipse approximated by a 36-vertex rotatable polygon
// (one vertex every 10 degrees), drawn smoothed so it reads as a curve. Unlike
// Oval it has no axis-aligned bounding box, so it can rotate freely.
type RotatableOval struct {
	RotatablePolygon
	xRadius, yRadius float64
}

// NewRotatableOval creates a detached rotatable ellipse with the given radii
// centered at center.
func NewRotatableOval(center Point, xRadius, yRadius float64) *RotatableOval {
	o := &RotatableOval{xRadius: xRadius, yRadius: yRadius}
	pts := make([]Point, 36)
	for i := range pts {
		a := float64(i) * math.Pi / 18
		pts[i] = Point{
			X: math.Round(center.X + xRadius*math.Cos(a)),
			Y: math.Round(center.Y + yRadius*math.Sin(a)),
		}
	}
	o.points = pts
	o.orig = append([]Point(nil), pts...)
	o.init(o, OptOutline, OptWidth, OptFill, OptSmooth)
	o.center = center
	o.config[OptSmooth] = true
	return o
}

// XRadius returns the horizontal radius.
func (o *RotatableOval) XRadius() float64 { return o.xRadius }

// YRadius returns the vertical radius.
func (o *RotatableOval) YRadius() float64 { return o.yRadius }

// Clone returns a detached copy with independent geometry and config.
func (o *RotatableOval) Clone() *RotatableOval {
	c := NewRotatableOval(o.center, o.xRadius, o.yRadius)
	c.cloneConfigFrom(&o.Object)
	return c
}
