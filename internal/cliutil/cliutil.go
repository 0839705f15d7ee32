// Package cliutil holds the small helpers the commands share.
package cliutil

import (
	"github.com/mattn/go-isatty"
)

// IsTty reports whether the descriptor is attached to a terminal. The
// commands use it to decide whether an empty argument list means "read
// stdin" or "show usage".
func IsTty(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
