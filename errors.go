package easel

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by lifecycle and configuration operations. They are
// wrapped with context via fmt.Errorf("...: %w", err), so match with errors.Is.
var (
	// ErrAlreadyDrawn is returned by Draw when the object is still attached
	// to an open window.
	ErrAlreadyDrawn = errors.New("easel: object currently drawn")

	// ErrClosedWindow is returned by any live-window operation after Close.
	ErrClosedWindow = errors.New("easel: window is closed")

	// ErrUnsupportedOption is returned when an option outside a shape's
	// declared legal set is read or written.
	ErrUnsupportedOption = errors.New("easel: option not supported by this shape")

	// ErrBadOption is returned when an option value falls outside its
	// enumerated legal set (arrow kind, font face/size/style, arc style,
	// color string).
	ErrBadOption = errors.New("easel: illegal option value")

	// ErrDegenerateSpan is returned when a coordinate transform would divide
	// by a zero-size pixel span (window narrower than 2 pixels on an axis).
	ErrDegenerateSpan = errors.New("easel: window too small for coordinate transform")
)

func errBadOption(what, got string) error {
	return fmt.Errorf("%s %q: %w", what, got, ErrBadOption)
}
