package gumboc

import (
	"unsafe"
)

// The structs in this file mirror the native gumbo records field for
// field, in declaration order, so that a pointer returned by the parser
// can be read in place. They are views: nothing in this package or the
// packages above it ever writes through them into native memory, and
// none of them own what they point to. Pointer fields use real Go
// pointer types so that synthetic trees allocated in Go memory (the way
// the adapter tests build theirs) stay visible to the garbage collector;
// for parser-owned memory the collector simply never follows them.

// StringPiece is an unowned view into the original input buffer. The
// bytes are not NUL-terminated; Length is the byte count. Views remain
// valid only while the parse result that produced them is open.
type StringPiece struct {
	Data   *byte
	Length uintptr
}

// IsNull reports whether the view has no backing data at all, as opposed
// to an empty-but-present view.
func (s StringPiece) IsNull() bool {
	return s.Data == nil
}

func (s StringPiece) Len() int {
	return int(s.Length)
}

// Bytes returns the viewed bytes without copying. The slice aliases the
// parse result's memory and dies with it.
func (s StringPiece) Bytes() []byte {
	if s.Data == nil {
		return nil
	}
	return unsafe.Slice(s.Data, s.Length)
}

// String copies the view into an owned Go string.
func (s StringPiece) String() string {
	return string(s.Bytes())
}

// SourcePosition locates a parsed construct in the input. Lines and
// columns are 1-based; Offset counts bytes from the start of the buffer.
type SourcePosition struct {
	Line   uint32
	Column uint32
	Offset uint32
}

// EmptySourcePosition marks constructs the parser inserted on its own
// rather than read from the input. Real positions are 1-based, so the
// zero value can never collide with one.
var EmptySourcePosition = SourcePosition{}

func (p SourcePosition) IsEmpty() bool {
	return p == EmptySourcePosition
}

// Attribute mirrors GumboAttribute. Name and Value are NUL-terminated
// decoded strings owned by the parser; the Original* views point at the
// raw input spelling, quotes included.
type Attribute struct {
	AttrNamespace AttributeNamespace
	Name          *byte
	OriginalName  StringPiece
	Value         *byte
	OriginalValue StringPiece
	NameStart     SourcePosition
	NameEnd       SourcePosition
	ValueStart    SourcePosition
	ValueEnd      SourcePosition
}

// NodeVector mirrors GumboVector when the elements are node pointers.
type NodeVector struct {
	Data     **Node
	Length   uint32
	Capacity uint32
}

func (v *NodeVector) Len() int {
	return int(v.Length)
}

func (v *NodeVector) At(i int) *Node {
	return unsafe.Slice(v.Data, v.Length)[i]
}

// AttributeVector mirrors GumboVector when the elements are attribute
// pointers.
type AttributeVector struct {
	Data     **Attribute
	Length   uint32
	Capacity uint32
}

func (v *AttributeVector) Len() int {
	return int(v.Length)
}

func (v *AttributeVector) At(i int) *Attribute {
	return unsafe.Slice(v.Data, v.Length)[i]
}

// ErrorVector mirrors GumboVector holding the parser's error records.
// The error struct itself is not part of the stable ABI, so the elements
// stay opaque and only the count is meaningful.
type ErrorVector struct {
	Data     unsafe.Pointer
	Length   uint32
	Capacity uint32
}

func (v *ErrorVector) Len() int {
	return int(v.Length)
}

// Document mirrors GumboDocument: the payload of a node whose Type is
// DocumentNode.
type Document struct {
	Children          NodeVector
	HasDoctype        bool
	Name              *byte
	PublicIdentifier  *byte
	SystemIdentifier  *byte
	DocTypeQuirksMode QuirksMode
}

// Element mirrors GumboElement: the payload of a node whose Type is
// ElementNode.
type Element struct {
	Children       NodeVector
	Tag            Tag
	TagNamespace   Namespace
	OriginalTag    StringPiece
	OriginalEndTag StringPiece
	StartPos       SourcePosition
	EndPos         SourcePosition
	Attributes     AttributeVector
}

// Text mirrors GumboText: the payload of text, CDATA, comment and
// whitespace nodes. Text is the decoded content (NUL-terminated, parser
// owned); OriginalText views the raw input including any markers such as
// comment delimiters.
type Text struct {
	Text         *byte
	OriginalText StringPiece
	StartPos     SourcePosition
}

const nodeDataWords = 12 // sizeof(GumboElement) / 8, the largest union member

// NodeData is the raw storage of the GumboNode payload union, sized and
// aligned for the largest member. The accessors reinterpret it in place;
// each is valid only when the node's Type selects that member.
type NodeData [nodeDataWords]uint64

func (v *NodeData) Document() *Document {
	return (*Document)(unsafe.Pointer(v))
}

func (v *NodeData) Element() *Element {
	return (*Element)(unsafe.Pointer(v))
}

func (v *NodeData) Text() *Text {
	return (*Text)(unsafe.Pointer(v))
}

// Node mirrors GumboNode. Type discriminates the live member of V:
// Document for DocumentNode, Element for ElementNode, Text for all other
// node types. Next and Prev chain every node of the document in source
// order, independent of tree structure.
type Node struct {
	Type              NodeType
	Parent            *Node
	IndexWithinParent uintptr
	ParseFlags        ParseFlags
	Next              *Node
	Prev              *Node
	V                 NodeData
}

// Options mirrors GumboOptions. Records handed to the parser are built
// from the native default options; the allocator pair is carried along
// untouched so that output destruction uses whatever the defaults named.
type Options struct {
	Allocator           uintptr
	Deallocator         uintptr
	TabStop             int32
	StopOnFirstError    bool
	MaxUTF8DecodeErrors int32
	VerbatimMode        bool
	PreserveEntities    bool
}

// Output mirrors GumboOutput. Document is the document node; Root is the
// <html> element below it.
type Output struct {
	Document *Node
	Root     *Node
	Errors   ErrorVector
}
