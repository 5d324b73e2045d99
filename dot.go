package easel

// Dot marks a single world position, rendered as a degenerate 1x1 pixel box.
type Dot struct {
	Object
	pos Point
}

// NewDot creates a detached dot at p.
func NewDot(p Point) *Dot {
	d := &Dot{pos: p}
	d.init(d, OptOutline)
	return d
}

// Position returns a copy of the dot's world position.
func (d *Dot) Position() Point { return d.pos }

func (d *Dot) translate(dx, dy float64) {
	d.pos.X += dx
	d.pos.Y += dy
}

func (d *Dot) project(toScreen func(x, y float64) (int, int)) Item {
	xs, ys := toScreen(d.pos.X, d.pos.Y)
	return Item{Kind: ItemRect, Coords: []int{xs, ys, xs + 1, ys + 1}}
}

// Clone returns a detached copy with independent geometry and config.
func (d *Dot) Clone() *Dot {
	c := NewDot(d.pos)
	c.cloneConfigFrom(&d.Object)
	return c
}
