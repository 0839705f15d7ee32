//go:build darwin || freebsd || linux

package gumboc

import (
	"os"
	"runtime"
	"unsafe"

	"github.com/ebitengine/purego"
	"github.com/lestrrat-go/pdebug/v3"
)

// libraryCandidates lists the names tried against the dynamic loader.
// GUMBO_LIBRARY overrides the search entirely, which is how tests and
// relocated installs point at a specific build.
func libraryCandidates() []string {
	if env := os.Getenv("GUMBO_LIBRARY"); env != "" {
		return []string{env}
	}
	if runtime.GOOS == "darwin" {
		return []string{"libgumbo.dylib", "libgumbo.1.dylib"}
	}
	return []string{"libgumbo.so", "libgumbo.so.1"}
}

func load() {
	if pdebug.Enabled {
		g := pdebug.FuncMarker()
		defer g.End()
	}

	if err := verifyLayout(); err != nil {
		loadErr = &MissingLibraryError{Err: err}
		return
	}

	candidates := libraryCandidates()
	var handle uintptr
	var dlErr error
	for _, name := range candidates {
		handle, dlErr = purego.Dlopen(name, purego.RTLD_NOW|purego.RTLD_GLOBAL)
		if dlErr == nil {
			if pdebug.Enabled {
				pdebug.Printf("loaded native library %s", name)
			}
			break
		}
	}
	if handle == 0 {
		loadErr = &MissingLibraryError{Tried: candidates, Err: dlErr}
		return
	}

	syms := make(map[string]uintptr)
	for _, name := range []string{
		"gumbo_parse_with_options",
		"gumbo_destroy_output",
		"kGumboDefaultOptions",
	} {
		sym, err := purego.Dlsym(handle, name)
		if err != nil {
			loadErr = &MissingLibraryError{Tried: candidates, Err: err}
			return
		}
		syms[name] = sym
	}

	purego.RegisterFunc(&rawParseWithOptions, syms["gumbo_parse_with_options"])
	purego.RegisterFunc(&rawDestroyOutput, syms["gumbo_destroy_output"])
	nativeDefaults = *(*Options)(unsafe.Pointer(syms["kGumboDefaultOptions"]))
}
