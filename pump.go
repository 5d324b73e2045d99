package easel

import "time"

// Process-wide render pump state. Initialized when the first window is
// created, emptied as windows close; no teardown beyond process exit. Single
// logical thread, no locking.
var (
	openWindows []*Window
	lastPump    time.Time
)

func registerWindow(w *Window) {
	openWindows = append(openWindows, w)
}

func unregisterWindow(w *Window) {
	for i, ow := range openWindows {
		if ow == w {
			copy(openWindows[i:], openWindows[i+1:])
			openWindows[len(openWindows)-1] = nil
			openWindows = openWindows[:len(openWindows)-1]
			return
		}
	}
}

// Update pumps every open window's canvas once: pending native events are
// processed and the display is redrawn. A rate greater than zero caps the
// cadence at that many updates per second by sleeping off the remainder of
// the interval since the previous rate-limited call.
func Update(rate float64) {
	if rate > 0 {
		now := time.Now()
		pause := time.Duration(float64(time.Second)/rate) - now.Sub(lastPump)
		if pause > 0 {
			time.Sleep(pause)
			lastPump = now.Add(pause)
		} else {
			lastPump = now
		}
	}
	for _, w := range append([]*Window(nil), openWindows...) {
		if !w.closed {
			w.canvas.Pump()
		}
	}
}
