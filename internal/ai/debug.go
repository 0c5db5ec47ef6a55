package ai

import "sync/atomic"

// debugEnabled gates hot-path debug logging. Checking an atomic bool is
// cheaper than letting slog filter thousands of records per tick.
var debugEnabled atomic.Bool

// EnableDebugLogging toggles AI debug logging.
func EnableDebugLogging(enabled bool) {
	debugEnabled.Store(enabled)
}

// IsDebugEnabled reports whether AI debug logging is on.
func IsDebugEnabled() bool {
	return debugEnabled.Load()
}
