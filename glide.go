package easel

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// glideRate is the pump cadence Glide animates at, in steps per second.
const glideRate = 60

// Mover is any drawable that can be displaced in world coordinates. Every
// shape satisfies it through its embedded Object.
type Mover interface {
	Move(dx, dy float64)
}

// Glide animates moving s by (dx, dy) over the given duration, easing with
// fn (ease.Linear when nil). The tween is stepped at a fixed cadence with the
// render pump driven between steps, so the motion renders smoothly and the
// final position is exact.
func Glide(s Mover, dx, dy float64, duration time.Duration, fn ease.TweenFunc) {
	if fn == nil {
		fn = ease.Linear
	}
	secs := float32(duration.Seconds())
	tx := gween.New(0, float32(dx), secs, fn)
	ty := gween.New(0, float32(dy), secs, fn)

	const dt = float32(1.0) / glideRate
	var prevX, prevY float32
	for {
		x, doneX := tx.Update(dt)
		y, doneY := ty.Update(dt)
		s.Move(float64(x-prevX), float64(y-prevY))
		prevX, prevY = x, y
		Update(glideRate)
		if doneX && doneY {
			return
		}
	}
}
