package gumboc

import (
	"runtime"
	"sync"
	"unsafe"

	"github.com/lestrrat-go/pdebug/v3"
	"github.com/pkg/errors"

	"github.com/go-gumbo/gumbo/encoding"
)

var (
	loadOnce       sync.Once
	loadErr        error
	nativeDefaults Options

	rawParseWithOptions func(options unsafe.Pointer, buffer unsafe.Pointer, bufferLength uintptr) unsafe.Pointer
	rawDestroyOutput    func(options unsafe.Pointer, output unsafe.Pointer)
)

// Load resolves the native gumbo library, registers the entry points and
// verifies the record layouts. Only the first call does any work; its
// verdict, success or failure, is final for the life of the process.
// Parse calls it implicitly, so calling Load directly is only needed to
// surface a missing library at program startup.
func Load() error {
	loadOnce.Do(load)
	return loadErr
}

// Available reports whether the native library is usable.
func Available() bool {
	return Load() == nil
}

// zeroByte stands in as the buffer base for empty documents, which the
// native parser accepts as a zero-length input.
var zeroByte byte

// Result owns one native parse output. Every view reached through it --
// nodes, string pieces, decoded strings -- lives in parser or pinned
// input memory and dies at Close. Results are not synchronized; one
// goroutine at a time.
type Result struct {
	opts   Options
	out    *Output
	buf    []byte
	closed bool
}

// Parse runs the native parser over text. The returned Result holds the
// input buffer (transcoded first when WithInputEncoding was given)
// pinned until Close, because the parser's original-text views point
// into it. Close is the caller's job; Parse never destroys on success.
func Parse(text []byte, options ...ParseOption) (*Result, error) {
	if pdebug.Enabled {
		g := pdebug.FuncMarker()
		defer g.End()
	}

	if err := Load(); err != nil {
		return nil, err
	}

	popts := nativeDefaults
	var inputEncoding string
	for _, o := range options {
		switch o.Ident().(type) {
		case identTabStop:
			popts.TabStop = int32(o.Value().(int))
		case identStopOnFirstError:
			popts.StopOnFirstError = o.Value().(bool)
		case identMaxUTF8DecodeErrors:
			popts.MaxUTF8DecodeErrors = int32(o.Value().(int))
		case identVerbatimMode:
			popts.VerbatimMode = o.Value().(bool)
		case identPreserveEntities:
			popts.PreserveEntities = o.Value().(bool)
		case identInputEncoding:
			inputEncoding = o.Value().(string)
		}
	}

	if inputEncoding != "" {
		decoded, err := encoding.Decode(inputEncoding, text)
		if err != nil {
			return nil, errors.Wrap(err, `failed to transcode input`)
		}
		text = decoded
	}

	base := &zeroByte
	if len(text) > 0 {
		base = &text[0]
	}

	r := &Result{opts: popts, buf: text}
	out := rawParseWithOptions(unsafe.Pointer(&r.opts), unsafe.Pointer(base), uintptr(len(text)))
	if out == nil {
		return nil, errors.New(`native parser produced no output`)
	}
	r.out = (*Output)(out)
	runtime.SetFinalizer(r, (*Result).finalize)

	if pdebug.Enabled {
		pdebug.Printf("parsed %d bytes, %d parse errors", len(text), r.out.Errors.Len())
	}
	return r, nil
}

// Document returns the native document node, or nil once closed.
func (r *Result) Document() *Node {
	if r.closed {
		return nil
	}
	return r.out.Document
}

// Root returns the root <html> element node, or nil once closed.
func (r *Result) Root() *Node {
	if r.closed {
		return nil
	}
	return r.out.Root
}

// ErrorCount reports how many parse errors the library recorded. The
// records themselves are not part of the pinned ABI and stay opaque.
func (r *Result) ErrorCount() int {
	if r.closed {
		return 0
	}
	return r.out.Errors.Len()
}

// Buffer exposes the pinned input the result's source views point into.
func (r *Result) Buffer() []byte {
	if r.closed {
		return nil
	}
	return r.buf
}

// Close destroys the native output. The first call releases; later
// calls are no-ops, so a deferred Close composes with early exits and
// panics without ever double-freeing.
func (r *Result) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	runtime.SetFinalizer(r, nil)
	if r.out != nil {
		rawDestroyOutput(unsafe.Pointer(&r.opts), unsafe.Pointer(r.out))
		r.out = nil
	}
	r.buf = nil
	return nil
}

// finalize backstops Results that were never closed. Relying on it
// leaks native memory until the collector gets around to it; explicit
// Close remains the contract.
func (r *Result) finalize() {
	_ = r.Close()
}
