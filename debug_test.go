package ldtk

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func expectPanic(t *testing.T, contains string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic mentioning %q, got none", contains)
		}
		if msg := fmt.Sprint(r); !strings.Contains(msg, contains) {
			t.Errorf("panic message = %q, want it to mention %q", msg, contains)
		}
	}()
	fn()
}

func TestDebugCheckDisposed(t *testing.T) {
	c := &Camera{name: "hud"}
	debugCheckDisposed(c, "Activate")

	c.disposed = true
	expectPanic(t, `disposed camera "hud"`, func() { debugCheckDisposed(c, "Activate") })
}

func TestDebugCheckQuadRange(t *testing.T) {
	quads := make([]float32, 3*floatsPerQuad)
	debugCheckQuadRange(quads, 0, 3)
	debugCheckQuadRange(quads, 3, 0)

	for _, r := range [][2]int{{2, 2}, {-1, 1}, {0, -1}, {4, 0}} {
		expectPanic(t, "outside buffer of 3 quads", func() { debugCheckQuadRange(quads, r[0], r[1]) })
	}
}

func TestDebugLogInterval(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := zap.New(core)
	stats := debugStats{
		updateTime:    2 * time.Millisecond,
		drawTime:      3 * time.Millisecond,
		drawCallCount: 4,
		quadCount:     120,
	}
	for frame := uint64(1); frame <= 2*debugLogInterval; frame++ {
		debugLog(log, frame, stats)
	}
	if logs.Len() != 2 {
		t.Fatalf("logged %d lines, want 2", logs.Len())
	}
	fields := logs.All()[0].ContextMap()
	if fields["frame"] != uint64(debugLogInterval) {
		t.Errorf("frame = %v, want %d", fields["frame"], debugLogInterval)
	}
	if fields["total"] != 5*time.Millisecond {
		t.Errorf("total = %v, want 5ms", fields["total"])
	}
	if fields["quads"] != int64(120) {
		t.Errorf("quads = %v, want 120", fields["quads"])
	}
}
