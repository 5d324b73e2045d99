package easel

import (
	"errors"
	"testing"
)

func TestColorRGB(t *testing.T) {
	cases := []struct {
		r, g, b int
		want    string
	}{
		{255, 0, 0, "#ff0000"},
		{0, 0, 0, "#000000"},
		{255, 255, 255, "#ffffff"},
		{18, 52, 86, "#123456"},
	}
	for _, c := range cases {
		if got := ColorRGB(c.r, c.g, c.b); got != c.want {
			t.Errorf("ColorRGB(%d,%d,%d) = %q, want %q", c.r, c.g, c.b, got, c.want)
		}
	}
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("red")
	if err != nil {
		t.Fatal(err)
	}
	if c.R != 255 || c.G != 0 || c.B != 0 || c.A != 255 {
		t.Errorf("red = %v", c)
	}

	c, err = ParseColor("#336699")
	if err != nil {
		t.Fatal(err)
	}
	if c.R != 0x33 || c.G != 0x66 || c.B != 0x99 {
		t.Errorf("#336699 = %v", c)
	}

	for _, bad := range []string{"", "chartreuse-ish", "#12345", "#gggggg"} {
		if _, err := ParseColor(bad); !errors.Is(err, ErrBadOption) {
			t.Errorf("ParseColor(%q): got %v, want ErrBadOption", bad, err)
		}
	}
}

func TestParseArcStyle(t *testing.T) {
	cases := map[string]ArcStyle{
		"sector": ArcSector,
		"chord":  ArcChord,
		"arc":    ArcOpen,
	}
	for name, want := range cases {
		got, err := ParseArcStyle(name)
		if err != nil {
			t.Errorf("ParseArcStyle(%q): %v", name, err)
		}
		if got != want {
			t.Errorf("ParseArcStyle(%q) = %v, want %v", name, got, want)
		}
	}
	if _, err := ParseArcStyle("pieslice"); !errors.Is(err, ErrBadOption) {
		t.Errorf("got %v, want ErrBadOption", err)
	}
}

func TestPointAdd(t *testing.T) {
	p := Pt(1, 2).Add(3, -4)
	assertPoint(t, "add", p, Pt(4, -2))
}

func TestConfigClone(t *testing.T) {
	c := newConfig(OptFill, OptWidth)
	c[OptFill] = "red"
	d := c.clone()
	d[OptFill] = "blue"
	if c[OptFill] != "red" {
		t.Error("clone mutation leaked into the source config")
	}
}

func TestNewConfigRestrictsOptions(t *testing.T) {
	c := newConfig(OptFill, OptOutline)
	if len(c) != 2 {
		t.Errorf("config has %d options, want 2", len(c))
	}
	if _, ok := c[OptArrow]; ok {
		t.Error("undeclared option present")
	}
	if c[OptOutline] != "#000000" {
		t.Errorf("outline default = %v, want #000000", c[OptOutline])
	}
}
