package easel

import "fmt"

// Font is the face/size/style triple carried by the font option. It is a
// value type, copied on every config read.
type Font struct {
	Face  string
	Size  int
	Style string
}

// Legal font values. Faces outside this set, sizes outside [5, 36], and
// styles outside {bold, normal, italic, bold italic} fail with ErrBadOption.
var (
	legalFaces = map[string]bool{
		"helvetica":   true,
		"arial":       true,
		"courier":     true,
		"times roman": true,
	}
	legalStyles = map[string]bool{
		"bold":        true,
		"normal":      true,
		"italic":      true,
		"bold italic": true,
	}
)

const (
	minFontSize = 5
	maxFontSize = 36
)

// Text renders a string anchored at a world position. The text color is the
// fill option; Text defaults to black.
type Text struct {
	Object
	anchor Point
}

// NewText creates a detached text object displaying s at anchor.
func NewText(anchor Point, s string) *Text {
	t := &Text{anchor: anchor}
	t.init(t, OptJustify, OptFill, OptText, OptFont)
	t.config[OptText] = s
	t.config[OptFill] = defaultConfig[OptOutline]
	return t
}

// Anchor returns a copy of the anchor point.
func (t *Text) Anchor() Point { return t.anchor }

func (t *Text) translate(dx, dy float64) {
	t.anchor.X += dx
	t.anchor.Y += dy
}

func (t *Text) project(toScreen func(x, y float64) (int, int)) Item {
	xs, ys := toScreen(t.anchor.X, t.anchor.Y)
	return Item{Kind: ItemText, Coords: []int{xs, ys}}
}

// SetText replaces the displayed string.
func (t *Text) SetText(s string) error { return t.Set(OptText, s) }

// Text returns the displayed string.
func (t *Text) Text() string {
	s, _ := t.config[OptText].(string)
	return s
}

// SetTextColor sets the text color. Alias for SetFill.
func (t *Text) SetTextColor(c string) error { return t.SetFill(c) }

// Font returns the current font triple.
func (t *Text) Font() Font {
	f, _ := t.config[OptFont].(Font)
	return f
}

// SetFace changes the font face, keeping size and style.
func (t *Text) SetFace(face string) error {
	if !legalFaces[face] {
		return errBadOption("font face", face)
	}
	f := t.Font()
	f.Face = face
	return t.Set(OptFont, f)
}

// SetSize changes the font size, keeping face and style.
func (t *Text) SetSize(size int) error {
	if size < minFontSize || size > maxFontSize {
		return fmt.Errorf("font size %d: %w", size, ErrBadOption)
	}
	f := t.Font()
	f.Size = size
	return t.Set(OptFont, f)
}

// SetStyle changes the font style, keeping face and size.
func (t *Text) SetStyle(style string) error {
	if !legalStyles[style] {
		return errBadOption("font style", style)
	}
	f := t.Font()
	f.Style = style
	return t.Set(OptFont, f)
}

// Clone returns a detached copy with independent geometry and config.
func (t *Text) Clone() *Text {
	c := NewText(t.anchor, t.Text())
	c.cloneConfigFrom(&t.Object)
	return c
}
