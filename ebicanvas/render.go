package ebicanvas

import (
	"image/color"
	"math"

	"github.com/flywave/go-earcut"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/easelgfx/easel"
)

// whitePixelImage is the lazily-created 1x1 source image for solid-color
// triangle fills. Lazy so importing the package never touches the GPU.
var whitePixelImage *ebiten.Image

func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.White)
	}
	return whitePixelImage
}

// ovalSegments is the sampling density for full ellipses; arcs scale it by
// their angular extent.
const ovalSegments = 64

// drawItem renders one retained primitive. Called with c.mu held.
func (c *Canvas) drawItem(dst *ebiten.Image, rec *item) {
	it := &rec.it
	fill, hasFill := colorOpt(it.Options, easel.OptFill)
	outline, hasOutline := colorOpt(it.Options, easel.OptOutline)
	width := float32(intOpt(it.Options, easel.OptWidth, 1))
	ox, oy := float32(rec.offX), float32(rec.offY)

	switch it.Kind {
	case easel.ItemRect:
		x1, y1, x2, y2 := rectCoords(it.Coords, ox, oy)
		if hasFill {
			vector.DrawFilledRect(dst, x1, y1, x2-x1, y2-y1, fill, false)
		}
		if hasOutline {
			vector.StrokeRect(dst, x1, y1, x2-x1, y2-y1, width, outline, false)
		}

	case easel.ItemOval:
		pts := ellipsePoints(it.Coords, ox, oy, 0, 360, ovalSegments)
		if hasFill {
			fillPolygon(dst, pts, fill)
		}
		if hasOutline {
			strokePolyline(dst, pts, width, outline, true)
		}

	case easel.ItemArc:
		c.drawArc(dst, it, ox, oy, fill, hasFill, outline, hasOutline, width)

	case easel.ItemPolygon:
		pts := polyCoords(it.Coords, ox, oy)
		if it.Smooth || boolOpt(it.Options, easel.OptSmooth) {
			pts = smoothClosed(pts)
		}
		if hasFill {
			fillPolygon(dst, pts, fill)
		}
		if hasOutline {
			strokePolyline(dst, pts, width, outline, true)
		}

	case easel.ItemLine:
		c.drawLine(dst, it, ox, oy, fill, hasFill, width)

	case easel.ItemText:
		c.drawText(dst, it, ox, oy, fill, hasFill)

	case easel.ItemImage:
		if rec.img == nil && it.Pixmap != nil {
			rec.img = ebiten.NewImageFromImage(it.Pixmap)
		}
		if rec.img == nil || len(it.Coords) < 2 {
			return
		}
		b := rec.img.Bounds()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(
			float64(it.Coords[0])+float64(ox)-float64(b.Dx())/2,
			float64(it.Coords[1])+float64(oy)-float64(b.Dy())/2,
		)
		dst.DrawImage(rec.img, op)
	}
}

func (c *Canvas) drawArc(dst *ebiten.Image, it *easel.Item, ox, oy float32, fill color.RGBA, hasFill bool, outline color.RGBA, hasOutline bool, width float32) {
	segs := int(math.Abs(it.Extent) / 360 * ovalSegments)
	if segs < 2 {
		segs = 2
	}
	pts := ellipsePoints(it.Coords, ox, oy, it.Start, it.Extent, segs)
	switch it.Style {
	case easel.ArcSector:
		cx, cy := boxCenter(it.Coords, ox, oy)
		closed := append(pts, [2]float32{cx, cy})
		if hasFill {
			fillPolygon(dst, closed, fill)
		}
		if hasOutline {
			strokePolyline(dst, closed, width, outline, true)
		}
	case easel.ArcChord:
		if hasFill {
			fillPolygon(dst, pts, fill)
		}
		if hasOutline {
			strokePolyline(dst, pts, width, outline, true)
		}
	default: // ArcOpen: bare outline, never filled
		if hasOutline {
			strokePolyline(dst, pts, width, outline, false)
		}
	}
}

func (c *Canvas) drawLine(dst *ebiten.Image, it *easel.Item, ox, oy float32, stroke color.RGBA, hasStroke bool, width float32) {
	if !hasStroke || len(it.Coords) < 4 {
		return
	}
	x1, y1 := float32(it.Coords[0])+ox, float32(it.Coords[1])+oy
	x2, y2 := float32(it.Coords[2])+ox, float32(it.Coords[3])+oy
	vector.StrokeLine(dst, x1, y1, x2, y2, width, stroke, false)

	arrow, _ := it.Options[easel.OptArrow].(string)
	if arrow == easel.ArrowFirst || arrow == easel.ArrowBoth {
		drawArrowhead(dst, x2, y2, x1, y1, width, stroke)
	}
	if arrow == easel.ArrowLast || arrow == easel.ArrowBoth {
		drawArrowhead(dst, x1, y1, x2, y2, width, stroke)
	}
}

func (c *Canvas) drawText(dst *ebiten.Image, it *easel.Item, ox, oy float32, clr color.RGBA, hasColor bool) {
	s, _ := it.Options[easel.OptText].(string)
	if s == "" || len(it.Coords) < 2 {
		return
	}
	font, _ := it.Options[easel.OptFont].(easel.Font)
	face := fontFace(font)
	if face == nil {
		return
	}
	if !hasColor {
		clr = color.RGBA{A: 0xff}
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(it.Coords[0])+float64(ox), float64(it.Coords[1])+float64(oy))
	op.ColorScale.ScaleWithColor(clr)
	switch justify, _ := it.Options[easel.OptJustify].(string); justify {
	case "left":
		op.PrimaryAlign = text.AlignStart
	case "right":
		op.PrimaryAlign = text.AlignEnd
	default:
		op.PrimaryAlign = text.AlignCenter
	}
	op.SecondaryAlign = text.AlignCenter
	text.Draw(dst, s, face, op)
}

// drawArrowhead fills a triangle pointing from (fx, fy) toward (tx, ty),
// sized like Tk's default arrowshape scaled by stroke width.
func drawArrowhead(dst *ebiten.Image, fx, fy, tx, ty, width float32, clr color.RGBA) {
	dx, dy := float64(tx-fx), float64(ty-fy)
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	ux, uy := dx/length, dy/length
	size := 8 + 2*float64(width)
	half := size / 3
	bx, by := float64(tx)-size*ux, float64(ty)-size*uy
	pts := [][2]float32{
		{tx, ty},
		{float32(bx - half*uy), float32(by + half*ux)},
		{float32(bx + half*uy), float32(by - half*ux)},
	}
	fillPolygon(dst, pts, clr)
}

// fillPolygon triangulates pts with ear clipping and fills the triangles with
// a solid color through the white pixel source.
func fillPolygon(dst *ebiten.Image, pts [][2]float32, clr color.RGBA) {
	if len(pts) < 3 {
		return
	}
	data := make([]float64, 0, len(pts)*2)
	for _, p := range pts {
		data = append(data, float64(p[0]), float64(p[1]))
	}
	indices, err := earcut.Earcut(data, nil, 2)
	if err != nil || len(indices) == 0 {
		return
	}
	cr := float32(clr.R) / 0xff
	cg := float32(clr.G) / 0xff
	cb := float32(clr.B) / 0xff
	ca := float32(clr.A) / 0xff
	verts := make([]ebiten.Vertex, len(pts))
	for i, p := range pts {
		verts[i] = ebiten.Vertex{
			DstX: p[0], DstY: p[1],
			ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca,
		}
	}
	idx := make([]uint16, len(indices))
	for i, n := range indices {
		idx[i] = uint16(n)
	}
	dst.DrawTriangles(verts, idx, ensureWhitePixel(), &ebiten.DrawTrianglesOptions{})
}

// strokePolyline strokes consecutive segments of pts, closing the loop when
// closed is set.
func strokePolyline(dst *ebiten.Image, pts [][2]float32, width float32, clr color.RGBA, closed bool) {
	if len(pts) < 2 {
		return
	}
	for i := 1; i < len(pts); i++ {
		vector.StrokeLine(dst, pts[i-1][0], pts[i-1][1], pts[i][0], pts[i][1], width, clr, false)
	}
	if closed {
		last := pts[len(pts)-1]
		vector.StrokeLine(dst, last[0], last[1], pts[0][0], pts[0][1], width, clr, false)
	}
}

// smoothClosed expands a closed polygon into a quadratic B-spline through the
// edge midpoints, with each original vertex acting as a control point. This is
// the classic canvas "smooth" rendering.
func smoothClosed(pts [][2]float32) [][2]float32 {
	n := len(pts)
	if n < 3 {
		return pts
	}
	const steps = 8
	out := make([][2]float32, 0, n*steps)
	for i := 0; i < n; i++ {
		p0 := pts[i]
		p1 := pts[(i+1)%n]
		p2 := pts[(i+2)%n]
		m0 := [2]float32{(p0[0] + p1[0]) / 2, (p0[1] + p1[1]) / 2}
		m1 := [2]float32{(p1[0] + p2[0]) / 2, (p1[1] + p2[1]) / 2}
		for s := 0; s < steps; s++ {
			t := float32(s) / steps
			u := 1 - t
			out = append(out, [2]float32{
				u*u*m0[0] + 2*u*t*p1[0] + t*t*m1[0],
				u*u*m0[1] + 2*u*t*p1[1] + t*t*m1[1],
			})
		}
	}
	return out
}

// ellipsePoints samples the arc of the ellipse inscribed in the coords box,
// from start spanning extent degrees counter-clockwise (mathematical sense,
// so y is flipped for screen space).
func ellipsePoints(coords []int, ox, oy float32, start, extent float64, segs int) [][2]float32 {
	if len(coords) < 4 {
		return nil
	}
	cx, cy := boxCenter(coords, ox, oy)
	rx := float32(math.Abs(float64(coords[2]-coords[0]))) / 2
	ry := float32(math.Abs(float64(coords[3]-coords[1]))) / 2
	if extent == 0 {
		start, extent = 0, 360
	}
	pts := make([][2]float32, 0, segs+1)
	for i := 0; i <= segs; i++ {
		a := (start + extent*float64(i)/float64(segs)) * math.Pi / 180
		pts = append(pts, [2]float32{
			cx + rx*float32(math.Cos(a)),
			cy - ry*float32(math.Sin(a)),
		})
	}
	// Full ellipses would repeat the seam point.
	if extent == 360 || extent == -360 {
		pts = pts[:len(pts)-1]
	}
	return pts
}

func boxCenter(coords []int, ox, oy float32) (float32, float32) {
	return float32(coords[0]+coords[2])/2 + ox, float32(coords[1]+coords[3])/2 + oy
}

func rectCoords(coords []int, ox, oy float32) (x1, y1, x2, y2 float32) {
	x1, y1 = float32(coords[0])+ox, float32(coords[1])+oy
	x2, y2 = float32(coords[2])+ox, float32(coords[3])+oy
	if x2 < x1 {
		x1, x2 = x2, x1
	}
	if y2 < y1 {
		y1, y2 = y2, y1
	}
	return
}

func polyCoords(coords []int, ox, oy float32) [][2]float32 {
	pts := make([][2]float32, 0, len(coords)/2)
	for i := 0; i+1 < len(coords); i += 2 {
		pts = append(pts, [2]float32{float32(coords[i]) + ox, float32(coords[i+1]) + oy})
	}
	return pts
}

// colorOpt resolves a color option. Empty and unparseable values mean "do not
// paint this aspect".
func colorOpt(opts easel.Config, key string) (color.RGBA, bool) {
	s, _ := opts[key].(string)
	if s == "" {
		return color.RGBA{}, false
	}
	clr, err := easel.ParseColor(s)
	if err != nil {
		return color.RGBA{}, false
	}
	return clr, true
}

func intOpt(opts easel.Config, key string, def int) int {
	if v, ok := opts[key].(int); ok {
		return v
	}
	return def
}

func boolOpt(opts easel.Config, key string) bool {
	v, _ := opts[key].(bool)
	return v
}
