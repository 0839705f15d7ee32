// Package gumboc is the raw binding to the gumbo HTML5 parsing library.
// It mirrors the native record layouts, validates the integer enums that
// cross the boundary, and manages the lifetime of parse outputs. The
// package is deliberately thin; the soup and nethtml adapters layered on
// top of it produce trees that own all of their memory.
//
// The layouts here are pinned to the classic gumbo ABI on 64-bit
// targets. The loader verifies the pin at startup and refuses to
// initialize when it cannot hold.
package gumboc

import "unsafe"

// GoString copies a NUL-terminated native string into a Go string. A nil
// pointer yields the empty string.
func GoString(p *byte) string {
	if p == nil {
		return ""
	}
	var n uintptr
	for *(*byte)(unsafe.Add(unsafe.Pointer(p), n)) != 0 {
		n++
	}
	return string(unsafe.Slice(p, n))
}
