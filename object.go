package easel

import "fmt"

// variant is the single capability a concrete shape supplies: its screen
// projection and its world-space translation. Everything else in the drawable
// lifecycle is shared by Object and never duplicated per shape.
type variant interface {
	// project describes the shape as a native primitive using the given
	// world-to-pixel conversion. Options are attached by the caller.
	project(toScreen func(x, y float64) (xs, ys int)) Item

	// translate shifts the shape's world geometry by (dx, dy).
	translate(dx, dy float64)
}

// Object carries the state and lifecycle shared by every drawable shape:
// its configuration, and its attachment to at most one window. The window
// reference and the native item handle are either both set or both zero.
type Object struct {
	config Config
	win    *Window
	id     ItemID
	self   variant
}

// init wires the embedding shape in as the variant and builds its config from
// the declared legal option set. Every shape constructor calls this exactly
// once.
func (o *Object) init(self variant, legal ...string) {
	o.self = self
	o.config = newConfig(legal...)
}

// IsDrawn reports whether the object is currently attached to an open window.
func (o *Object) IsDrawn() bool {
	return o.win != nil && !o.win.IsClosed()
}

// item builds the native primitive description for the current geometry and
// config, projected through w's transform.
func (o *Object) item(w *Window) Item {
	it := o.self.project(w.toScreen)
	it.Options = o.config.clone()
	return it
}

// Draw attaches the object to w and renders it. An object may be attached to
// at most one open window at a time.
func (o *Object) Draw(w *Window) error {
	if o.IsDrawn() {
		return ErrAlreadyDrawn
	}
	if w.IsClosed() {
		return fmt.Errorf("draw: %w", ErrClosedWindow)
	}
	id, err := w.canvas.CreateItem(o.item(w))
	if err != nil {
		return fmt.Errorf("draw: %w", err)
	}
	o.win = w
	o.id = id
	w.addItem(o)
	w.autoflush()
	return nil
}

// Undraw hides the object and clears the attachment on both sides. Returns
// silently if the object is not drawn; tolerates the window having been closed
// in the meantime (the native item is already gone then).
func (o *Object) Undraw() {
	w := o.win
	if w == nil {
		return
	}
	if !w.IsClosed() {
		w.canvas.DeleteItem(o.id)
		w.removeItem(o)
		w.autoflush()
	} else {
		w.removeItem(o)
	}
	o.win = nil
	o.id = 0
}

// Move shifts the object dx units right and dy units up in world coordinates.
// While attached, the native item is translated by the equivalent pixel delta
// under the window's transform, so equal world displacement looks the same at
// any zoom.
func (o *Object) Move(dx, dy float64) {
	o.self.translate(dx, dy)
	w := o.win
	if w == nil || w.IsClosed() {
		return
	}
	sx, sy := dx, dy
	if t := w.trans; t != nil {
		sx = dx / t.xscale
		sy = -dy / t.yscale
	}
	w.canvas.MoveItem(o.id, sx, sy)
	w.autoflush()
}

// Redraw deletes and recreates the native item from the current geometry and
// config. No-op when not attached. Used after the window installs a new
// coordinate transform.
func (o *Object) Redraw() error {
	w := o.win
	if w == nil || w.IsClosed() {
		return nil
	}
	w.canvas.DeleteItem(o.id)
	id, err := w.canvas.CreateItem(o.item(w))
	if err != nil {
		return fmt.Errorf("redraw: %w", err)
	}
	o.id = id
	return nil
}

// Set updates a configuration option, pushing the change to the native item
// while attached. Fails with ErrUnsupportedOption if the option is not in this
// shape's legal set.
func (o *Object) Set(option string, value any) error {
	if _, ok := o.config[option]; !ok {
		return fmt.Errorf("option %q: %w", option, ErrUnsupportedOption)
	}
	o.config[option] = value
	if o.IsDrawn() {
		o.win.canvas.ConfigItem(o.id, o.config.clone())
		o.win.autoflush()
	}
	return nil
}

// Get reads a configuration option. Fails with ErrUnsupportedOption if the
// option is not in this shape's legal set.
func (o *Object) Get(option string) (any, error) {
	v, ok := o.config[option]
	if !ok {
		return nil, fmt.Errorf("option %q: %w", option, ErrUnsupportedOption)
	}
	return v, nil
}

// SetFill sets the interior color.
func (o *Object) SetFill(c string) error { return o.Set(OptFill, c) }

// SetOutline sets the outline color.
func (o *Object) SetOutline(c string) error { return o.Set(OptOutline, c) }

// SetWidth sets the outline line weight in pixels.
func (o *Object) SetWidth(px int) error { return o.Set(OptWidth, px) }

// SetActiveFill sets the hover fill color.
func (o *Object) SetActiveFill(c string) error { return o.Set(OptActiveFill, c) }

// Fill returns the interior color ("" when unset or unsupported).
func (o *Object) Fill() string {
	s, _ := o.config[OptFill].(string)
	return s
}

// Outline returns the outline color ("" when unsupported).
func (o *Object) Outline() string {
	s, _ := o.config[OptOutline].(string)
	return s
}

// Width returns the outline line weight (0 when unsupported).
func (o *Object) Width() int {
	n, _ := o.config[OptWidth].(int)
	return n
}

// cloneConfigFrom copies src's config into o. Used by the shapes' Clone
// methods after constructing the detached copy.
func (o *Object) cloneConfigFrom(src *Object) {
	o.config = src.config.clone()
}
