package easel

import (
	"errors"
	"testing"
)

func TestTextDefaults(t *testing.T) {
	tx := NewText(Pt(50, 50), "hello")
	if tx.Text() != "hello" {
		t.Errorf("Text() = %q, want %q", tx.Text(), "hello")
	}
	if tx.Fill() != "#000000" {
		t.Errorf("default color = %q, want #000000", tx.Fill())
	}
	f := tx.Font()
	if f.Face != "helvetica" || f.Size != 12 || f.Style != "normal" {
		t.Errorf("default font = %+v, want helvetica 12 normal", f)
	}
	if v, err := tx.Get(OptJustify); err != nil || v != "center" {
		t.Errorf("default justify = %v (err %v), want center", v, err)
	}
}

func TestTextSetText(t *testing.T) {
	win, hc := newTestWindow(t, 200, 200)
	tx := NewText(Pt(50, 50), "before")
	if err := tx.Draw(win); err != nil {
		t.Fatal(err)
	}
	if err := tx.SetText("after"); err != nil {
		t.Fatal(err)
	}
	if tx.Text() != "after" {
		t.Errorf("Text() = %q, want %q", tx.Text(), "after")
	}
	rec := hc.items[tx.id]
	if got, _ := rec.Options[OptText].(string); got != "after" {
		t.Errorf("native text = %q, want %q", got, "after")
	}
}

func TestTextSetFace(t *testing.T) {
	tx := NewText(Pt(0, 0), "x")
	for _, face := range []string{"helvetica", "arial", "courier", "times roman"} {
		if err := tx.SetFace(face); err != nil {
			t.Errorf("SetFace(%q): %v", face, err)
		}
	}
	if err := tx.SetFace("comic sans"); !errors.Is(err, ErrBadOption) {
		t.Errorf("SetFace(comic sans): got %v, want ErrBadOption", err)
	}
	// The rejected face must not stick.
	if tx.Font().Face != "times roman" {
		t.Errorf("face = %q, want the last legal value", tx.Font().Face)
	}
}

func TestTextSetSize(t *testing.T) {
	tx := NewText(Pt(0, 0), "x")
	for _, size := range []int{5, 12, 36} {
		if err := tx.SetSize(size); err != nil {
			t.Errorf("SetSize(%d): %v", size, err)
		}
	}
	for _, size := range []int{4, 37, 0, -1} {
		if err := tx.SetSize(size); !errors.Is(err, ErrBadOption) {
			t.Errorf("SetSize(%d): got %v, want ErrBadOption", size, err)
		}
	}
	if tx.Font().Size != 36 {
		t.Errorf("size = %d, want 36", tx.Font().Size)
	}
}

func TestTextSetStyle(t *testing.T) {
	tx := NewText(Pt(0, 0), "x")
	for _, style := range []string{"bold", "normal", "italic", "bold italic"} {
		if err := tx.SetStyle(style); err != nil {
			t.Errorf("SetStyle(%q): %v", style, err)
		}
	}
	if err := tx.SetStyle("underline"); !errors.Is(err, ErrBadOption) {
		t.Errorf("SetStyle(underline): got %v, want ErrBadOption", err)
	}
}

func TestTextSetColor(t *testing.T) {
	tx := NewText(Pt(0, 0), "x")
	if err := tx.SetTextColor("red"); err != nil {
		t.Fatal(err)
	}
	if tx.Fill() != "red" {
		t.Errorf("color = %q, want red", tx.Fill())
	}
}

func TestTextNoOutlineOption(t *testing.T) {
	tx := NewText(Pt(0, 0), "x")
	if err := tx.SetOutline("red"); !errors.Is(err, ErrUnsupportedOption) {
		t.Errorf("outline on text: got %v, want ErrUnsupportedOption", err)
	}
}

func TestTextMoveAndClone(t *testing.T) {
	tx := NewText(Pt(10, 10), "label")
	tx.Move(5, -5)
	assertPoint(t, "anchor", tx.Anchor(), Pt(15, 5))

	c := tx.Clone()
	if c.Text() != "label" {
		t.Errorf("clone text = %q, want %q", c.Text(), "label")
	}
	c.Move(1, 1)
	assertPoint(t, "source anchor", tx.Anchor(), Pt(15, 5))
}
