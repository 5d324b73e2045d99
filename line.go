package easel

// Line is a segment between two endpoints. Its color is carried by the fill
// option; arrowheads are controlled by the arrow option.
type Line struct {
	Object
	bbox
}

// NewLine creates a detached line from p1 to p2. Lines default to a black
// stroke.
func NewLine(p1, p2 Point) *Line {
	l := &Line{bbox: bbox{p1, p2}}
	l.init(l, OptArrow, OptFill, OptWidth)
	l.config[OptFill] = defaultConfig[OptOutline]
	return l
}

func (l *Line) project(toScreen func(x, y float64) (int, int)) Item {
	return Item{Kind: ItemLine, Coords: l.corners(toScreen)}
}

// SetArrow selects arrowhead placement: ArrowNone, ArrowFirst, ArrowLast, or
// ArrowBoth. Any other value fails with ErrBadOption.
func (l *Line) SetArrow(kind string) error {
	switch kind {
	case ArrowNone, ArrowFirst, ArrowLast, ArrowBoth:
		return l.Set(OptArrow, kind)
	}
	return errBadOption("arrow", kind)
}

// Arrow returns the current arrowhead placement.
func (l *Line) Arrow() string {
	s, _ := l.config[OptArrow].(string)
	return s
}

// Clone returns a detached copy with independent geometry and config.
func (l *Line) Clone() *Line {
	c := NewLine(l.p1, l.p2)
	c.cloneConfigFrom(&l.Object)
	return c
}
