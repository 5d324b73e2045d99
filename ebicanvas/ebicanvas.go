// Package ebicanvas renders an easel window through [Ebitengine].
//
// Ebitengine owns the OS main loop, while easel programs are written as
// straight-line code that blocks on interaction queries. Run bridges the two:
// it drives the game loop on the main goroutine and runs the program function
// on its own goroutine, synchronizing at each render pump. The easel core
// stays single-threaded; all cross-goroutine coordination lives in this
// package.
//
// [Ebitengine]: https://ebitengine.org
package ebicanvas

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"sync"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/easelgfx/easel"
)

// rawEvent buffers one native input edge between pumps.
type rawEvent struct {
	kind   uint8
	button easel.MouseButton
	x, y   int
	key    string
}

const (
	evMouseDown = iota
	evMouseUp
	evMouseMove
	evKeyDown
	evKeyUp
)

// item is one retained primitive plus render caches.
type item struct {
	it         easel.Item
	offX, offY float64
	img        *ebiten.Image // lazy cache for ItemImage pixmaps
}

// Canvas is an Ebitengine-backed easel.Canvas. Create one with Run.
type Canvas struct {
	width, height int

	mu     sync.Mutex
	items  map[easel.ItemID]*item
	order  []easel.ItemID
	nextID easel.ItemID
	bg     color.RGBA
	sink   easel.EventSink

	// Game-goroutine-only input buffering.
	pending      []rawEvent
	keyBuf       []ebiten.Key
	lastX, lastY int

	pumpReq  chan struct{}
	pumpDone chan struct{}
	quit     chan struct{}
	closing  atomic.Bool
}

func newCanvas(width, height int) *Canvas {
	return &Canvas{
		width:    width,
		height:   height,
		items:    make(map[easel.ItemID]*item),
		bg:       color.RGBA{0xff, 0xff, 0xff, 0xff},
		pumpReq:  make(chan struct{}),
		pumpDone: make(chan struct{}),
		quit:     make(chan struct{}),
	}
}

// Run opens a window of the given pixel size and runs fn against its canvas.
// Run blocks until fn returns and the window shuts down; it must be called
// from the program's main goroutine (Ebitengine requirement).
func Run(title string, width, height int, fn func(c *Canvas)) error {
	c := newCanvas(width, height)
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(title)

	go func() {
		defer c.Close()
		fn(c)
	}()

	err := ebiten.RunGame(&game{c: c})
	close(c.quit)
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("ebicanvas: %w", err)
	}
	return nil
}

// --- easel.Canvas ---

// Size returns the canvas pixel dimensions.
func (c *Canvas) Size() (int, int) { return c.width, c.height }

// SetEventSink registers the receiver for input callbacks.
func (c *Canvas) SetEventSink(sink easel.EventSink) {
	c.mu.Lock()
	c.sink = sink
	c.mu.Unlock()
}

// CreateItem retains a primitive for rendering each frame.
func (c *Canvas) CreateItem(it easel.Item) (easel.ItemID, error) {
	if c.closing.Load() {
		return 0, easel.ErrClosedWindow
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.nextID++
	id := c.nextID
	rec := &item{it: it}
	rec.it.Coords = append([]int(nil), it.Coords...)
	c.items[id] = rec
	c.order = append(c.order, id)
	return id, nil
}

// DeleteItem drops a primitive. Tolerates unknown ids.
func (c *Canvas) DeleteItem(id easel.ItemID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.items[id]; !ok {
		return
	}
	delete(c.items, id)
	for i, oid := range c.order {
		if oid == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			return
		}
	}
}

// MoveItem translates a primitive by a pixel delta.
func (c *Canvas) MoveItem(id easel.ItemID, dx, dy float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if rec, ok := c.items[id]; ok {
		rec.offX += dx
		rec.offY += dy
	}
}

// ConfigItem replaces a primitive's rendering options.
func (c *Canvas) ConfigItem(id easel.ItemID, opts easel.Config) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if rec, ok := c.items[id]; ok {
		rec.it.Options = opts
	}
}

// SetBackground sets the window background color. Unparseable colors are
// reported to stderr and ignored.
func (c *Canvas) SetBackground(s string) {
	clr, err := easel.ParseColor(s)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[easel] background: %v\n", err)
		return
	}
	c.mu.Lock()
	c.bg = clr
	c.mu.Unlock()
}

// Pump hands control to the game loop for one frame: buffered input is
// delivered to the sink, and the display reflects all changes made so far.
// After the window shuts down, Pump reports closure to the sink instead.
func (c *Canvas) Pump() {
	select {
	case c.pumpReq <- struct{}{}:
		<-c.pumpDone
	case <-c.quit:
		c.mu.Lock()
		sink := c.sink
		c.mu.Unlock()
		if sink != nil {
			sink.WindowClosed()
		}
	}
}

// Close requests window shutdown. Idempotent.
func (c *Canvas) Close() { c.closing.Store(true) }

// --- ebiten.Game ---

type game struct {
	c *Canvas
}

func (g *game) Update() error {
	c := g.c
	if c.closing.Load() {
		return ebiten.Termination
	}
	c.collectInput()
	select {
	case <-c.pumpReq:
		c.flushInput()
		c.pumpDone <- struct{}{}
	default:
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	c := g.c
	c.mu.Lock()
	defer c.mu.Unlock()
	screen.Fill(c.bg)
	for _, id := range c.order {
		c.drawItem(screen, c.items[id])
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.c.width, g.c.height
}

// collectInput buffers this frame's input edges. Runs on the game goroutine
// every frame so no edge is lost between pumps.
func (c *Canvas) collectInput() {
	x, y := ebiten.CursorPosition()
	if x != c.lastX || y != c.lastY {
		c.lastX, c.lastY = x, y
		c.pending = append(c.pending, rawEvent{kind: evMouseMove, x: x, y: y})
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		c.pending = append(c.pending, rawEvent{kind: evMouseDown, button: easel.MouseLeft, x: x, y: y})
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		c.pending = append(c.pending, rawEvent{kind: evMouseUp, button: easel.MouseLeft, x: x, y: y})
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		c.pending = append(c.pending, rawEvent{kind: evMouseDown, button: easel.MouseRight, x: x, y: y})
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonRight) {
		c.pending = append(c.pending, rawEvent{kind: evMouseUp, button: easel.MouseRight, x: x, y: y})
	}
	c.keyBuf = inpututil.AppendJustPressedKeys(c.keyBuf[:0])
	for _, k := range c.keyBuf {
		c.pending = append(c.pending, rawEvent{kind: evKeyDown, key: k.String()})
	}
	c.keyBuf = inpututil.AppendJustReleasedKeys(c.keyBuf[:0])
	for _, k := range c.keyBuf {
		c.pending = append(c.pending, rawEvent{kind: evKeyUp, key: k.String()})
	}
}

// flushInput delivers buffered edges to the sink. Runs only during a pump
// handshake, while the program goroutine is parked inside Pump.
func (c *Canvas) flushInput() {
	sink := c.sink
	if sink == nil {
		c.pending = c.pending[:0]
		return
	}
	for _, ev := range c.pending {
		switch ev.kind {
		case evMouseDown:
			sink.MouseDown(ev.button, ev.x, ev.y)
		case evMouseUp:
			sink.MouseUp(ev.button, ev.x, ev.y)
		case evMouseMove:
			sink.MouseMove(ev.x, ev.y)
		case evKeyDown:
			sink.KeyDown(ev.key)
		case evKeyUp:
			sink.KeyUp(ev.key)
		}
	}
	c.pending = c.pending[:0]
}
