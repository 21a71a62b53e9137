package ldtk

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// debugStats holds per-frame timing and draw-call metrics.
// Only populated when the Kernel runs in debug mode.
type debugStats struct {
	updateTime    time.Duration
	drawTime      time.Duration
	drawCallCount int
	quadCount     int
}

// debugLogInterval is the number of frames between two stats lines.
const debugLogInterval = 60

// debugLog writes timing and draw-call stats to the logger.
func debugLog(log *zap.Logger, frame uint64, stats debugStats) {
	if frame%debugLogInterval != 0 {
		return
	}
	log.Debug("frame",
		zap.Uint64("frame", frame),
		zap.Duration("update", stats.updateTime),
		zap.Duration("draw", stats.drawTime),
		zap.Duration("total", stats.updateTime+stats.drawTime),
		zap.Int("drawCalls", stats.drawCallCount),
		zap.Int("quads", stats.quadCount),
	)
}

// debugCheckDisposed panics with a descriptive message when a disposed camera
// is used. Only called in debug mode.
func debugCheckDisposed(c *Camera, op string) {
	if c.disposed {
		panic(fmt.Sprintf("ldtk debug: %s on disposed camera %q", op, c.name))
	}
}

// debugCheckQuadRange panics when a quad range lies outside the vertex
// buffer. Only called in debug mode.
func debugCheckQuadRange(quads []float32, first, count int) {
	n := len(quads) / floatsPerQuad
	if first < 0 || count < 0 || first+count > n {
		panic(fmt.Sprintf("ldtk debug: quad range [%d, %d) outside buffer of %d quads",
			first, first+count, n))
	}
}
