// Package memzero wipes buffers that held secret material.
package memzero

import "runtime"

// Zero overwrites b with zeros. It is best-effort: copies the runtime or the
// caller made elsewhere are not reached.
//
//go:noinline
func Zero(b []byte) {
	if len(b) == 0 {
		return
	}
	clear(b)
	// Keep b live until after the write so it is not elided.
	runtime.KeepAlive(b)
}
