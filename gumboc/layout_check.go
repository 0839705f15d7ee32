package gumboc

import (
	"unsafe"

	"github.com/pkg/errors"
)

type layoutCheck struct {
	what string
	got  uintptr
	want uintptr
}

// layoutChecks pins the mirror layouts to the native ones on 64-bit
// targets. The offsets cover every field that follows padding, which is
// where a drifted mirror would first diverge.
func layoutChecks() []layoutCheck {
	return []layoutCheck{
		{"sizeof StringPiece", unsafe.Sizeof(StringPiece{}), 16},
		{"sizeof SourcePosition", unsafe.Sizeof(SourcePosition{}), 12},
		{"sizeof Attribute", unsafe.Sizeof(Attribute{}), 104},
		{"offsetof Attribute.Name", unsafe.Offsetof(Attribute{}.Name), 8},
		{"offsetof Attribute.Value", unsafe.Offsetof(Attribute{}.Value), 32},
		{"offsetof Attribute.NameStart", unsafe.Offsetof(Attribute{}.NameStart), 56},
		{"sizeof NodeVector", unsafe.Sizeof(NodeVector{}), 16},
		{"sizeof Document", unsafe.Sizeof(Document{}), 56},
		{"offsetof Document.Name", unsafe.Offsetof(Document{}.Name), 24},
		{"offsetof Document.DocTypeQuirksMode", unsafe.Offsetof(Document{}.DocTypeQuirksMode), 48},
		{"sizeof Element", unsafe.Sizeof(Element{}), 96},
		{"offsetof Element.OriginalTag", unsafe.Offsetof(Element{}.OriginalTag), 24},
		{"offsetof Element.StartPos", unsafe.Offsetof(Element{}.StartPos), 56},
		{"offsetof Element.Attributes", unsafe.Offsetof(Element{}.Attributes), 80},
		{"sizeof Text", unsafe.Sizeof(Text{}), 40},
		{"sizeof NodeData", unsafe.Sizeof(NodeData{}), 96},
		{"sizeof Node", unsafe.Sizeof(Node{}), 144},
		{"offsetof Node.ParseFlags", unsafe.Offsetof(Node{}.ParseFlags), 24},
		{"offsetof Node.Next", unsafe.Offsetof(Node{}.Next), 32},
		{"offsetof Node.V", unsafe.Offsetof(Node{}.V), 48},
		{"sizeof Options", unsafe.Sizeof(Options{}), 32},
		{"offsetof Options.TabStop", unsafe.Offsetof(Options{}.TabStop), 16},
		{"offsetof Options.MaxUTF8DecodeErrors", unsafe.Offsetof(Options{}.MaxUTF8DecodeErrors), 24},
		{"sizeof Output", unsafe.Sizeof(Output{}), 32},
		{"offsetof Output.Errors", unsafe.Offsetof(Output{}.Errors), 16},
	}
}

// verifyLayout runs once before the native library becomes usable. A
// failure here means this build of the binding cannot safely read the
// parser's memory, which is fatal in the same way a missing library is.
func verifyLayout() error {
	if unsafe.Sizeof(uintptr(0)) != 8 {
		return errors.New(`gumboc: record layouts are pinned to 64-bit targets`)
	}
	for _, c := range layoutChecks() {
		if c.got != c.want {
			return errors.Errorf(`gumboc: ABI pin violated: %s = %d, want %d`, c.what, c.got, c.want)
		}
	}
	return nil
}
