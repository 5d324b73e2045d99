package easel

import (
	"fmt"
	"time"
)

// pollInterval is the sleep quantum of the blocking interaction queries. Each
// iteration pumps the canvas, re-checks for data or closure, then yields for
// this long.
const pollInterval = 10 * time.Millisecond

// Window displays drawable objects on a Canvas and tracks interaction state.
// It owns the ordered registry of attached objects and an optional coordinate
// transform; with no transform installed, world coordinates are raw pixels.
//
// A Window is single-threaded: all drawing, mutation, and queries happen on
// one logical thread, with the canvas delivering input callbacks only inside
// Pump.
type Window struct {
	canvas        Canvas
	width, height int
	trans         *transform
	items         []*Object
	flushOnDraw   bool
	closed        bool
	events        eventState
}

// NewWindow wraps a canvas in a window. With autoflush on, every mutating
// call pumps the render cycle so changes appear immediately; turn it off for
// animation loops that call Update themselves.
func NewWindow(canvas Canvas, autoflush bool) (*Window, error) {
	w, h := canvas.Size()
	if w < 2 || h < 2 {
		return nil, fmt.Errorf("window %dx%d: %w", w, h, ErrDegenerateSpan)
	}
	win := &Window{
		canvas:      canvas,
		width:       w,
		height:      h,
		flushOnDraw: autoflush,
		events:      newEventState(),
	}
	canvas.SetEventSink(win)
	registerWindow(win)
	if autoflush {
		canvas.Pump()
	}
	return win, nil
}

// Width returns the window width in pixels.
func (w *Window) Width() int { return w.width }

// Height returns the window height in pixels.
func (w *Window) Height() int { return w.height }

// Autoflush reports whether mutating calls pump the render cycle.
func (w *Window) Autoflush() bool { return w.flushOnDraw }

// IsClosed reports whether the window has been closed.
func (w *Window) IsClosed() bool { return w.closed }

// IsOpen reports whether the window is still open.
func (w *Window) IsOpen() bool { return !w.closed }

// Close destroys the native window. Idempotent. Attached objects stay
// registered but their native items are gone; Undraw on them no-ops on the
// native side.
func (w *Window) Close() {
	if w.closed {
		return
	}
	w.closed = true
	w.canvas.Close()
	unregisterWindow(w)
}

// SetCoords installs a coordinate transform running from (x1, y1) in the
// lower-left corner to (x2, y2) in the upper-right corner, then redraws every
// attached object with unchanged world coordinates but remapped pixels.
func (w *Window) SetCoords(x1, y1, x2, y2 float64) error {
	if w.closed {
		return fmt.Errorf("setCoords: %w", ErrClosedWindow)
	}
	t, err := newTransform(w.width, w.height, x1, y1, x2, y2)
	if err != nil {
		return err
	}
	w.trans = t
	return w.redrawAll()
}

// redrawAll recreates the native item of every attached object, then pumps.
func (w *Window) redrawAll() error {
	var firstErr error
	for _, o := range append([]*Object(nil), w.items...) {
		if err := o.Redraw(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	w.canvas.Pump()
	return firstErr
}

// SetBackground sets the window background color.
func (w *Window) SetBackground(c string) error {
	if w.closed {
		return fmt.Errorf("setBackground: %w", ErrClosedWindow)
	}
	w.canvas.SetBackground(c)
	w.autoflush()
	return nil
}

// Plot colors the pixel nearest to world position (x, y). Plotted pixels are
// raw canvas marks, not registered objects; they do not participate in
// SetCoords redraws.
func (w *Window) Plot(x, y float64, c string) error {
	if w.closed {
		return fmt.Errorf("plot: %w", ErrClosedWindow)
	}
	xs, ys := w.toScreen(x, y)
	return w.plotPixel(xs, ys, c)
}

// PlotPixel colors the raw pixel (xs, ys), independent of the coordinate
// transform.
func (w *Window) PlotPixel(xs, ys int, c string) error {
	if w.closed {
		return fmt.Errorf("plotPixel: %w", ErrClosedWindow)
	}
	return w.plotPixel(xs, ys, c)
}

func (w *Window) plotPixel(xs, ys int, c string) error {
	_, err := w.canvas.CreateItem(Item{
		Kind:    ItemLine,
		Coords:  []int{xs, ys, xs + 1, ys},
		Options: Config{OptFill: c, OptWidth: 1},
	})
	if err != nil {
		return fmt.Errorf("plot: %w", err)
	}
	w.autoflush()
	return nil
}

// ToScreen converts world coordinates to the nearest pixel. Identity (with
// rounding) when no transform is installed.
func (w *Window) ToScreen(x, y float64) (xs, ys int) {
	return w.toScreen(x, y)
}

// ToWorld converts a pixel position back to world coordinates.
func (w *Window) ToWorld(xs, ys int) (x, y float64) {
	if w.trans == nil {
		return float64(xs), float64(ys)
	}
	return w.trans.world(float64(xs), float64(ys))
}

func (w *Window) toScreen(x, y float64) (int, int) {
	if w.trans == nil {
		return roundPixel(x), roundPixel(y)
	}
	return w.trans.screen(x, y)
}

// --- Registry ---

func (w *Window) addItem(o *Object) {
	w.items = append(w.items, o)
}

// removeItem deletes o from the registry, using copy+nil so the backing array
// does not retain a dangling pointer.
func (w *Window) removeItem(o *Object) {
	for i, it := range w.items {
		if it == o {
			copy(w.items[i:], w.items[i+1:])
			w.items[len(w.items)-1] = nil
			w.items = w.items[:len(w.items)-1]
			return
		}
	}
}

// NumItems returns the number of attached objects.
func (w *Window) NumItems() int { return len(w.items) }

func (w *Window) autoflush() {
	if w.flushOnDraw && !w.closed {
		w.canvas.Pump()
	}
}

// --- EventSink (callback delivery from the canvas) ---

// MouseDown records a click and the held state for b.
func (w *Window) MouseDown(b MouseButton, xs, ys int) { w.events.mouseDown(b, xs, ys) }

// MouseUp clears the held state for b.
func (w *Window) MouseUp(b MouseButton, xs, ys int) { w.events.mouseUp(b) }

// MouseMove tracks the current pointer position.
func (w *Window) MouseMove(xs, ys int) { w.events.curX, w.events.curY = xs, ys }

// KeyDown adds name to the pressed set and records it as the last key.
func (w *Window) KeyDown(name string) { w.events.keyDown(name) }

// KeyUp removes name from the pressed set and clears the last key.
func (w *Window) KeyUp(name string) { w.events.keyUp(name) }

// WindowClosed marks the window closed after external destruction (close box).
func (w *Window) WindowClosed() {
	if w.closed {
		return
	}
	w.closed = true
	unregisterWindow(w)
}

// --- Interaction queries ---

// GetMouse blocks until the primary button is clicked, then returns the click
// in world coordinates. Any click pending from before the call is discarded.
// Fails with ErrClosedWindow if the window closes while waiting.
func (w *Window) GetMouse() (Point, error) {
	return w.waitClick(MouseLeft)
}

// GetMouseRight is GetMouse for the secondary button.
func (w *Window) GetMouseRight() (Point, error) {
	return w.waitClick(MouseRight)
}

func (w *Window) waitClick(b MouseButton) (Point, error) {
	if w.closed {
		return Point{}, fmt.Errorf("getMouse: %w", ErrClosedWindow)
	}
	w.canvas.Pump() // flush any prior clicks
	w.events.clickOK[b] = false
	for {
		w.canvas.Pump()
		if w.closed {
			return Point{}, fmt.Errorf("getMouse: %w", ErrClosedWindow)
		}
		if xs, ys, ok := w.events.takeClick(b); ok {
			x, y := w.ToWorld(xs, ys)
			return Point{x, y}, nil
		}
		time.Sleep(pollInterval)
	}
}

// CheckMouse returns the pending primary-button click in world coordinates
// and consumes it. ok is false when no click is pending. Pumps once when
// autoflush is on.
func (w *Window) CheckMouse() (p Point, ok bool, err error) {
	return w.checkClick(MouseLeft)
}

// CheckMouseRight is CheckMouse for the secondary button.
func (w *Window) CheckMouseRight() (p Point, ok bool, err error) {
	return w.checkClick(MouseRight)
}

func (w *Window) checkClick(b MouseButton) (Point, bool, error) {
	if w.closed {
		return Point{}, false, fmt.Errorf("checkMouse: %w", ErrClosedWindow)
	}
	if w.flushOnDraw {
		w.canvas.Pump()
	}
	xs, ys, ok := w.events.takeClick(b)
	if !ok {
		return Point{}, false, nil
	}
	x, y := w.ToWorld(xs, ys)
	return Point{x, y}, true, nil
}

// GetKey blocks until a key is pressed and returns its name, consuming it.
// Fails with ErrClosedWindow if the window closes while waiting.
func (w *Window) GetKey() (string, error) {
	if w.closed {
		return "", fmt.Errorf("getKey: %w", ErrClosedWindow)
	}
	w.events.lastKey = ""
	for {
		w.canvas.Pump()
		if w.closed {
			return "", fmt.Errorf("getKey: %w", ErrClosedWindow)
		}
		if k, ok := w.events.takeKey(); ok {
			return k, nil
		}
		time.Sleep(pollInterval)
	}
}

// CheckKey returns the most recent key press without consuming it, or ""
// when none is pending. Pumps once when autoflush is on.
func (w *Window) CheckKey() (string, error) {
	if w.closed {
		return "", fmt.Errorf("checkKey: %w", ErrClosedWindow)
	}
	if w.flushOnDraw {
		w.canvas.Pump()
	}
	return w.events.lastKey, nil
}

// CheckKeys returns the set of currently held keys. The map is live: canvas
// callbacks keep mutating it, so callers must not assume a frozen snapshot.
func (w *Window) CheckKeys() map[string]bool {
	return w.events.keys
}

// MousePosition returns the current pointer location in world coordinates,
// tracked from motion events.
func (w *Window) MousePosition() Point {
	x, y := w.ToWorld(w.events.curX, w.events.curY)
	return Point{x, y}
}

// Pressed reports whether the given button is currently held.
func (w *Window) Pressed(b MouseButton) bool {
	if int(b) >= numButtons {
		return false
	}
	return w.events.pressed[b]
}
