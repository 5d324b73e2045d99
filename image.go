package easel

import (
	"fmt"
	"image"
	"image/draw"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"
)

// Image displays an in-memory pixmap centered on a world anchor point.
// Pixel access is raw (image coordinates, not world coordinates).
type Image struct {
	Object
	anchor Point
	pix    *image.RGBA
}

// NewImage creates a detached blank image of the given pixel size anchored at
// p.
func NewImage(p Point, width, height int) *Image {
	im := &Image{anchor: p, pix: image.NewRGBA(image.Rect(0, 0, width, height))}
	im.init(im)
	return im
}

// NewImageFromFile loads a PNG or JPEG file into a detached image anchored at
// p.
func NewImageFromFile(p Point, path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load image: %w", err)
	}
	defer f.Close()
	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("load image %s: %w", path, err)
	}
	b := src.Bounds()
	pix := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(pix, pix.Bounds(), src, b.Min, draw.Src)
	return &Image{anchor: p, pix: pix}, nil
}

// Anchor returns a copy of the anchor point.
func (im *Image) Anchor() Point { return im.anchor }

// Width returns the pixmap width in pixels.
func (im *Image) Width() int { return im.pix.Bounds().Dx() }

// Height returns the pixmap height in pixels.
func (im *Image) Height() int { return im.pix.Bounds().Dy() }

func (im *Image) translate(dx, dy float64) {
	im.anchor.X += dx
	im.anchor.Y += dy
}

func (im *Image) project(toScreen func(x, y float64) (int, int)) Item {
	xs, ys := toScreen(im.anchor.X, im.anchor.Y)
	return Item{Kind: ItemImage, Coords: []int{xs, ys}, Pixmap: im.pix}
}

// PixelAt returns the r, g, b components of pixel (x, y), each in [0, 255].
func (im *Image) PixelAt(x, y int) (r, g, b int) {
	c := im.pix.RGBAAt(x, y)
	return int(c.R), int(c.G), int(c.B)
}

// SetPixel sets pixel (x, y) to the given color name or "#rrggbb" string.
// The change is visible after the next Redraw while attached.
func (im *Image) SetPixel(x, y int, c string) error {
	rgba, err := ParseColor(c)
	if err != nil {
		return err
	}
	im.pix.SetRGBA(x, y, rgba)
	return nil
}

// Save encodes the pixmap to filename; the format is chosen by extension
// (.png, .jpg, .jpeg).
func (im *Image) Save(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("save image: %w", err)
	}
	defer f.Close()
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png":
		err = png.Encode(f, im.pix)
	case ".jpg", ".jpeg":
		err = jpeg.Encode(f, im.pix, nil)
	default:
		return fmt.Errorf("save image %s: unknown extension", filename)
	}
	if err != nil {
		return fmt.Errorf("save image %s: %w", filename, err)
	}
	return nil
}

// Clone returns a detached copy with an independently owned pixmap.
func (im *Image) Clone() *Image {
	c := NewImage(im.anchor, im.Width(), im.Height())
	copy(c.pix.Pix, im.pix.Pix)
	c.cloneConfigFrom(&im.Object)
	return c
}
