package ebicanvas

import (
	"bytes"
	"fmt"
	"os"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/easelgfx/easel"
)

// The classic face names map onto the Go font family: courier renders as Go
// Mono, everything else as Go proportional in the requested style.

var (
	fontMu      sync.Mutex
	fontSources = map[string]*text.GoTextFaceSource{}
)

// fontFace returns a sized face for an easel font spec. Returns nil if the
// embedded font data cannot be parsed, which is reported once to stderr.
func fontFace(f easel.Font) *text.GoTextFace {
	if f.Size <= 0 {
		f = easel.Font{Face: "helvetica", Size: 12, Style: "normal"}
	}
	src := sourceFor(f.Face == "courier", f.Style)
	if src == nil {
		return nil
	}
	return &text.GoTextFace{Source: src, Size: float64(f.Size)}
}

func sourceFor(mono bool, style string) *text.GoTextFaceSource {
	key := fmt.Sprintf("%v/%s", mono, style)
	fontMu.Lock()
	defer fontMu.Unlock()
	if src, ok := fontSources[key]; ok {
		return src
	}
	var data []byte
	switch style {
	case "bold":
		data = pick(mono, gomonobold.TTF, gobold.TTF)
	case "italic":
		data = pick(mono, gomonoitalic.TTF, goitalic.TTF)
	case "bold italic":
		data = pick(mono, gomonobolditalic.TTF, gobolditalic.TTF)
	default:
		data = pick(mono, gomono.TTF, goregular.TTF)
	}
	src, err := text.NewGoTextFaceSource(bytes.NewReader(data))
	if err != nil {
		fmt.Fprintf(os.Stderr, "[easel] font %s: %v\n", key, err)
	}
	fontSources[key] = src
	return src
}

func pick(mono bool, m, p []byte) []byte {
	if mono {
		return m
	}
	return p
}
