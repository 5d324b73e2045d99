package easel

import "image"

// ItemID identifies one primitive created on a Canvas. Zero is never valid.
type ItemID int64

// ItemKind selects the native primitive an Item maps to.
type ItemKind uint8

const (
	ItemRect    ItemKind = iota // axis-aligned rectangle, coords: x1,y1,x2,y2
	ItemOval                    // ellipse inscribed in coords: x1,y1,x2,y2
	ItemArc                     // elliptical arc in coords box, plus Start/Extent/Style
	ItemPolygon                 // closed polygon, coords: x1,y1,...,xn,yn
	ItemLine                    // line segment, coords: x1,y1,x2,y2
	ItemText                    // text anchored at coords: x,y
	ItemImage                   // pixmap centered at coords: x,y
)

// ArcStyle selects how an Arc's angular span is closed.
type ArcStyle uint8

const (
	ArcSector ArcStyle = iota // pie slice: radii to the center, filled
	ArcChord                  // endpoints joined by a straight chord
	ArcOpen                   // bare arc, outline only
)

// ParseArcStyle resolves the textual style names "sector", "chord", and "arc".
func ParseArcStyle(s string) (ArcStyle, error) {
	switch s {
	case "sector":
		return ArcSector, nil
	case "chord":
		return ArcChord, nil
	case "arc":
		return ArcOpen, nil
	}
	return 0, errBadOption("arc style", s)
}

// Item describes one canvas primitive in screen coordinates. Items are value
// descriptions: the canvas copies what it needs and returns an opaque ItemID.
type Item struct {
	Kind    ItemKind
	Coords  []int  // flattened x,y pixel pairs
	Options Config // already cloned by the caller

	// Arc fields.
	Start, Extent float64 // degrees, counter-clockwise from 3 o'clock
	Style         ArcStyle

	// Smooth forces spline-smoothed polygon rendering regardless of the
	// "smooth" option (used by rounded rectangles).
	Smooth bool

	// Pixmap backs ItemImage. The canvas must not mutate it.
	Pixmap *image.RGBA
}

// EventSink receives input callbacks from a Canvas during Pump. All
// coordinates are raw pixels; the window converts to world coordinates at
// query time.
type EventSink interface {
	MouseDown(b MouseButton, xs, ys int)
	MouseUp(b MouseButton, xs, ys int)
	MouseMove(xs, ys int)
	KeyDown(name string)
	KeyUp(name string)

	// WindowClosed reports that the native window was destroyed externally
	// (for example via its close box).
	WindowClosed()
}

// Canvas is the boundary to the native windowing/canvas toolkit. A Window owns
// exactly one Canvas. Implementations: Headless (in-memory, injectable events)
// and ebicanvas.Canvas (Ebitengine).
type Canvas interface {
	// Size returns the fixed pixel dimensions of the drawing surface.
	Size() (w, h int)

	// SetEventSink registers the receiver for input callbacks. Called once,
	// before any Pump.
	SetEventSink(sink EventSink)

	CreateItem(it Item) (ItemID, error)
	DeleteItem(id ItemID)

	// MoveItem translates a primitive by a pixel delta without recreating it.
	MoveItem(id ItemID, dx, dy float64)

	// ConfigItem replaces a primitive's rendering options.
	ConfigItem(id ItemID, opts Config)

	SetBackground(c string)

	// Pump processes pending native events (delivering them to the sink) and
	// redraws. One Pump is one cooperative tick; blocking queries call it in
	// a sleep-and-repoll loop.
	Pump()

	// Close destroys the native window. Idempotent.
	Close()
}
