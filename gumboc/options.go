package gumboc

import "github.com/lestrrat-go/option"

type Option = option.Interface

type identInputEncoding struct{}
type identMaxUTF8DecodeErrors struct{}
type identPreserveEntities struct{}
type identStopOnFirstError struct{}
type identTabStop struct{}
type identVerbatimMode struct{}

// ParseOption is accepted by Parse and by the adapters layered on top
// of it.
type ParseOption interface {
	Option
	parseOption()
}

type parseOption struct{ Option }

func (*parseOption) parseOption() {}

// WithTabStop sets the tab width used when the parser computes source
// column numbers.
func WithTabStop(v int) ParseOption {
	return &parseOption{option.New(identTabStop{}, v)}
}

// WithStopOnFirstError makes the parser stop processing the document at
// the first parse error instead of recovering.
func WithStopOnFirstError(v bool) ParseOption {
	return &parseOption{option.New(identStopOnFirstError{}, v)}
}

// WithMaxUTF8DecodeErrors caps how many invalid-byte replacements the
// decoder tolerates before the parser gives up on the input.
func WithMaxUTF8DecodeErrors(v int) ParseOption {
	return &parseOption{option.New(identMaxUTF8DecodeErrors{}, v)}
}

// WithVerbatimMode passes the library's verbatim flag through to the
// parser.
func WithVerbatimMode(v bool) ParseOption {
	return &parseOption{option.New(identVerbatimMode{}, v)}
}

// WithPreserveEntities keeps entity references undecoded in text.
func WithPreserveEntities(v bool) ParseOption {
	return &parseOption{option.New(identPreserveEntities{}, v)}
}

// WithInputEncoding names the charset of the input buffer. The text is
// transcoded to UTF-8 before it reaches the parser, and the transcoded
// buffer is the one source views point into.
func WithInputEncoding(v string) ParseOption {
	return &parseOption{option.New(identInputEncoding{}, v)}
}
