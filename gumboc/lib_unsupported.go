//go:build !(darwin || freebsd || linux)

package gumboc

import (
	"runtime"

	"github.com/pkg/errors"
)

func load() {
	loadErr = &MissingLibraryError{
		Err: errors.Errorf(`native loader not supported on %s`, runtime.GOOS),
	}
}
