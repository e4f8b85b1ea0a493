package loom

import "fmt"

// fault panics with a consistently prefixed message. Every broken invariant
// in loom is a programmer bug (spec §7): there are no recoverable error
// kinds at the engine boundary. Centralizing the prefix/format here mirrors
// how every panic in willow's node.go/debug.go shares the "willow: "/
// "willow debug: " prefix, just spelled once instead of at each call site.
func fault(format string, args ...any) {
	panic(fmt.Sprintf("loom: "+format, args...))
}

// faultIf panics via fault when cond is true. Kept separate from fault
// (rather than always requiring callers to wrap an if) because most fatal
// checks in the kernel and node store are one-liners guarding a lookup.
func faultIf(cond bool, format string, args ...any) {
	if cond {
		fault(format, args...)
	}
}
