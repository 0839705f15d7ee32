// Package gumbo parses HTML5 through the native gumbo library and hands
// back trees that Go owns outright.
//
// The package is a thin seam over two halves. The gumboc package speaks
// the library's ABI: it loads the shared object, runs the parser, and
// exposes the node graph it produced as typed views into native memory.
// The soup package is the destination model: plain Go values with no
// ties to the parser. Convert walks a parse result and materializes it
// into a soup document, copying every byte on the way, so the native
// output can be destroyed the moment conversion returns.
//
// Most callers want Parse, which runs the whole pipeline:
//
//	doc, err := gumbo.Parse([]byte(`<!DOCTYPE html><p>Hi`))
//	if err != nil {
//		return err
//	}
//	soup.Dump(os.Stdout, doc)
//
// Callers that need parser diagnostics, or that want to convert into a
// different destination model, use gumboc.Parse directly and pass the
// result to Convert (or to nethtml.Convert) before closing it.
package gumbo

import (
	"github.com/lestrrat-go/pdebug/v3"
	"github.com/pkg/errors"

	"github.com/go-gumbo/gumbo/gumboc"
	"github.com/go-gumbo/gumbo/soup"
)

const Version = "0.9.0"

// Parse runs the native parser over text and converts its output into
// an owned document. The native result never escapes: it is destroyed
// before Parse returns on every path, so the returned tree is the only
// resource the caller has to think about.
func Parse(text []byte, options ...gumboc.ParseOption) (*soup.Document, error) {
	if pdebug.Enabled {
		g := pdebug.FuncMarker()
		defer g.End()
	}

	res, err := gumboc.Parse(text, options...)
	if err != nil {
		return nil, errors.Wrap(err, `failed to parse document`)
	}
	defer res.Close()

	return Convert(res)
}
