// Package easel is a small object-oriented 2D graphics library: shapes drawn
// in world coordinates on a window, with synchronous mouse and keyboard
// queries.
//
// Easel keeps the classic teaching-library shape: construct a shape, draw it
// into a window, move and restyle it, and poll for input — no callbacks, no
// game loop to implement. A complete program:
//
//	err := ebicanvas.Run("My Circle", 100, 100, func(c *ebicanvas.Canvas) {
//		win, _ := easel.NewWindow(c, true)
//		circle := easel.NewCircle(easel.Pt(50, 50), 10)
//		circle.Draw(win)
//		win.GetMouse() // pause to view result
//		win.Close()
//	})
//
// # Shapes
//
// [Dot], [Line], [Rectangle], [RoundedRectangle], [Oval], [Arc], [Circle],
// [Polygon], [RotatablePolygon], [RotatableOval], [Text], and [Image] all
// share one lifecycle: Draw, Undraw, Move, Redraw, Set/Get options, Clone.
// A shape is attached to at most one open window at a time.
//
// # Coordinates
//
// [Window.SetCoords] installs a world coordinate system with y growing
// upward; every attached shape is redrawn under the new mapping. Without it,
// world coordinates are raw pixels.
//
// # Interaction
//
// [Window.GetMouse] and [Window.GetKey] block by cooperative polling: each
// iteration pumps the canvas, re-checks, and sleeps briefly. [Window.CheckMouse],
// [Window.CheckKey], and [Window.CheckKeys] poll without blocking. Between two
// consumption points at most one click per button and one key are retained —
// the most recent wins.
//
// # Backends
//
// The native toolkit sits behind the [Canvas] interface. [Headless] is an
// in-memory canvas with synthetic event injection for tests and automation;
// package ebicanvas renders through [Ebitengine].
//
// [Ebitengine]: https://ebitengine.org
package easel
