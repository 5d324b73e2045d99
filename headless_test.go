package easel

import "testing"

// sinkRecorder captures the callback stream a canvas delivers.
type sinkRecorder struct {
	calls []string
}

func (s *sinkRecorder) MouseDown(b MouseButton, xs, ys int) { s.calls = append(s.calls, "down") }
func (s *sinkRecorder) MouseUp(b MouseButton, xs, ys int)   { s.calls = append(s.calls, "up") }
func (s *sinkRecorder) MouseMove(xs, ys int)                { s.calls = append(s.calls, "move") }
func (s *sinkRecorder) KeyDown(name string)                 { s.calls = append(s.calls, "key+"+name) }
func (s *sinkRecorder) KeyUp(name string)                   { s.calls = append(s.calls, "key-"+name) }
func (s *sinkRecorder) WindowClosed()                       { s.calls = append(s.calls, "closed") }

func TestHeadlessOneEventPerPump(t *testing.T) {
	h := NewHeadless(100, 100)
	rec := &sinkRecorder{}
	h.SetEventSink(rec)

	h.InjectKeyDown("a")
	h.InjectKeyUp("a")

	h.Pump()
	if len(rec.calls) != 1 {
		t.Fatalf("%d callbacks after one pump, want 1", len(rec.calls))
	}
	h.Pump()
	if len(rec.calls) != 2 {
		t.Fatalf("%d callbacks after two pumps, want 2", len(rec.calls))
	}
	if rec.calls[0] != "key+a" || rec.calls[1] != "key-a" {
		t.Errorf("callback order = %v", rec.calls)
	}

	// Empty queue: pumping is harmless.
	h.Pump()
	if len(rec.calls) != 2 {
		t.Error("pump with empty queue delivered a callback")
	}
}

func TestHeadlessCreateAfterClose(t *testing.T) {
	h := NewHeadless(100, 100)
	h.Close()
	if _, err := h.CreateItem(Item{Kind: ItemRect, Coords: []int{0, 0, 1, 1}}); err == nil {
		t.Error("create on closed canvas should fail")
	}
}

func TestHeadlessDeleteUnknownID(t *testing.T) {
	h := NewHeadless(100, 100)
	h.DeleteItem(42) // must not panic
	if h.deletes != 0 {
		t.Error("unknown delete should not count")
	}
}

func TestHeadlessCopiesCoords(t *testing.T) {
	h := NewHeadless(100, 100)
	coords := []int{1, 2, 3, 4}
	id, err := h.CreateItem(Item{Kind: ItemRect, Coords: coords})
	if err != nil {
		t.Fatal(err)
	}
	coords[0] = 99
	if h.items[id].Coords[0] != 1 {
		t.Error("canvas must copy item coords")
	}
}

func TestHeadlessInjectClose(t *testing.T) {
	h := NewHeadless(100, 100)
	rec := &sinkRecorder{}
	h.SetEventSink(rec)
	h.InjectClose()
	h.Pump()
	if !h.closed {
		t.Error("close event should mark the canvas closed")
	}
	if len(rec.calls) != 1 || rec.calls[0] != "closed" {
		t.Errorf("callbacks = %v, want [closed]", rec.calls)
	}
}
