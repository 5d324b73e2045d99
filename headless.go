package easel

import "fmt"

// syntheticEvent is one queued injected input event, delivered to the sink on
// a later Pump.
type syntheticEvent struct {
	kind   uint8
	button MouseButton
	x, y   int
	key    string
}

const (
	evMouseDown = iota
	evMouseUp
	evMouseMove
	evKeyDown
	evKeyUp
	evClose
)

// Headless is an in-memory Canvas with no display. It records every primitive
// and delivers injected synthetic events one per Pump, so interaction flows
// can be driven deterministically tick by tick — the same pattern used for
// automated visual testing of interactive programs.
type Headless struct {
	width, height int
	sink          EventSink
	items         map[ItemID]*headlessItem
	order         []ItemID
	nextID        ItemID
	queue         []syntheticEvent
	background    string
	closed        bool

	pumps, creates, deletes int
}

// headlessItem is a recorded primitive plus its accumulated move offset.
type headlessItem struct {
	Item
	offX, offY float64
}

// NewHeadless creates a headless canvas with the given pixel dimensions.
func NewHeadless(width, height int) *Headless {
	return &Headless{
		width:  width,
		height: height,
		items:  make(map[ItemID]*headlessItem),
	}
}

// Size returns the canvas dimensions.
func (h *Headless) Size() (int, int) { return h.width, h.height }

// SetEventSink registers the receiver for injected events.
func (h *Headless) SetEventSink(sink EventSink) { h.sink = sink }

// CreateItem records a primitive and returns its id.
func (h *Headless) CreateItem(it Item) (ItemID, error) {
	if h.closed {
		return 0, fmt.Errorf("create item: %w", ErrClosedWindow)
	}
	h.nextID++
	id := h.nextID
	rec := &headlessItem{Item: it}
	rec.Coords = append([]int(nil), it.Coords...)
	h.items[id] = rec
	h.order = append(h.order, id)
	h.creates++
	return id, nil
}

// DeleteItem forgets a primitive. Tolerates unknown ids.
func (h *Headless) DeleteItem(id ItemID) {
	if _, ok := h.items[id]; !ok {
		return
	}
	delete(h.items, id)
	for i, oid := range h.order {
		if oid == id {
			h.order = append(h.order[:i], h.order[i+1:]...)
			break
		}
	}
	h.deletes++
}

// MoveItem accumulates a pixel offset on a primitive.
func (h *Headless) MoveItem(id ItemID, dx, dy float64) {
	if rec, ok := h.items[id]; ok {
		rec.offX += dx
		rec.offY += dy
	}
}

// ConfigItem replaces a primitive's options.
func (h *Headless) ConfigItem(id ItemID, opts Config) {
	if rec, ok := h.items[id]; ok {
		rec.Options = opts
	}
}

// SetBackground records the background color.
func (h *Headless) SetBackground(c string) { h.background = c }

// Pump delivers at most one queued synthetic event to the sink. One Pump is
// one deterministic tick.
func (h *Headless) Pump() {
	h.pumps++
	if len(h.queue) == 0 || h.sink == nil {
		return
	}
	ev := h.queue[0]
	h.queue = h.queue[1:]
	switch ev.kind {
	case evMouseDown:
		h.sink.MouseDown(ev.button, ev.x, ev.y)
	case evMouseUp:
		h.sink.MouseUp(ev.button, ev.x, ev.y)
	case evMouseMove:
		h.sink.MouseMove(ev.x, ev.y)
	case evKeyDown:
		h.sink.KeyDown(ev.key)
	case evKeyUp:
		h.sink.KeyUp(ev.key)
	case evClose:
		h.closed = true
		h.sink.WindowClosed()
	}
}

// Close marks the canvas destroyed.
func (h *Headless) Close() { h.closed = true }

// NumItems returns the number of live primitives.
func (h *Headless) NumItems() int { return len(h.items) }

// Background returns the recorded background color.
func (h *Headless) Background() string { return h.background }

// --- Synthetic event injection ---

// InjectMouseDown queues a button press at raw pixel (xs, ys).
func (h *Headless) InjectMouseDown(b MouseButton, xs, ys int) {
	h.queue = append(h.queue, syntheticEvent{kind: evMouseDown, button: b, x: xs, y: ys})
}

// InjectMouseUp queues a button release at raw pixel (xs, ys).
func (h *Headless) InjectMouseUp(b MouseButton, xs, ys int) {
	h.queue = append(h.queue, syntheticEvent{kind: evMouseUp, button: b, x: xs, y: ys})
}

// InjectClick queues a press followed by a release at the same pixel.
// Consumes two pumps.
func (h *Headless) InjectClick(b MouseButton, xs, ys int) {
	h.InjectMouseDown(b, xs, ys)
	h.InjectMouseUp(b, xs, ys)
}

// InjectMouseMove queues a pointer motion event.
func (h *Headless) InjectMouseMove(xs, ys int) {
	h.queue = append(h.queue, syntheticEvent{kind: evMouseMove, x: xs, y: ys})
}

// InjectKeyDown queues a key press.
func (h *Headless) InjectKeyDown(name string) {
	h.queue = append(h.queue, syntheticEvent{kind: evKeyDown, key: name})
}

// InjectKeyUp queues a key release.
func (h *Headless) InjectKeyUp(name string) {
	h.queue = append(h.queue, syntheticEvent{kind: evKeyUp, key: name})
}

// InjectClose queues an external window destruction, as if the native close
// box had been used.
func (h *Headless) InjectClose() {
	h.queue = append(h.queue, syntheticEvent{kind: evClose})
}
