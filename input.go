package easel

// eventState is the window's view of asynchronous native input. The canvas's
// callback delivery mutates it during Pump; the window's interaction queries
// read and consume it. At most one pending click per button and one pending
// key are retained: multiple physical events between two consumption points
// collapse to most-recent-wins.
type eventState struct {
	clickX, clickY [numButtons]int
	clickOK        [numButtons]bool
	pressed        [numButtons]bool

	keys    map[string]bool
	lastKey string

	curX, curY int // latest pointer position
}

func newEventState() eventState {
	return eventState{keys: make(map[string]bool)}
}

func (e *eventState) mouseDown(b MouseButton, xs, ys int) {
	if int(b) >= numButtons {
		return
	}
	e.clickX[b] = xs
	e.clickY[b] = ys
	e.clickOK[b] = true
	e.pressed[b] = true
}

func (e *eventState) mouseUp(b MouseButton) {
	if int(b) >= numButtons {
		return
	}
	e.pressed[b] = false
}

func (e *eventState) keyDown(name string) {
	e.keys[name] = true
	e.lastKey = name
}

func (e *eventState) keyUp(name string) {
	delete(e.keys, name)
	e.lastKey = ""
}

// takeClick consumes the pending click for b, if any.
func (e *eventState) takeClick(b MouseButton) (xs, ys int, ok bool) {
	if !e.clickOK[b] {
		return 0, 0, false
	}
	e.clickOK[b] = false
	return e.clickX[b], e.clickY[b], true
}

// takeKey consumes the pending key, if any.
func (e *eventState) takeKey() (string, bool) {
	if e.lastKey == "" {
		return "", false
	}
	k := e.lastKey
	e.lastKey = ""
	return k, true
}
