package ai

import (
	"log/slog"
	"sync/atomic"
)

// moveTrace gates the per-creature move and meal logs, which fire for every
// creature on every turn.
var moveTrace atomic.Bool

// TraceMoves enables per-creature move and meal logs when level admits debug output.
func TraceMoves(level slog.Level) {
	moveTrace.Store(level <= slog.LevelDebug)
}

func tracing() bool {
	return moveTrace.Load()
}
