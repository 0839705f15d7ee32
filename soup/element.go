package soup

import (
	"github.com/pkg/errors"

	"github.com/go-gumbo/gumbo/internal/orderedmap"
)

// Element is a converted element node. Beyond its tree links it keeps
// the provenance the parser reported: the raw start and end tag text and
// the source span they occupied.
type Element struct {
	treeNode
	name           string
	uri            string
	attrs          *orderedmap.Map[string, *Attribute]
	originalTag    []byte
	originalEndTag []byte
	startPos       Position
	endPos         Position
}

var _ Node = (*Element)(nil)

// NewElement creates a new Element with the given name. Please note that
// elements created this way are orphan nodes. You normally want to
// create an element using the Document.CreateElement method, which will
// automatically set the owner document for the element.
func NewElement(name string) *Element {
	return &Element{
		name:  name,
		attrs: orderedmap.New[string, *Attribute](),
	}
}

func (*Element) Type() NodeType {
	return ElementNodeType
}

func (e *Element) LocalName() string {
	return e.name
}

func (e *Element) Name() string {
	return e.name
}

// URI returns the namespace URL of the element.
func (e *Element) URI() string {
	return e.uri
}

func (e *Element) SetURI(uri string) {
	e.uri = uri
}

func (e *Element) AddChild(child Node) error {
	return addChild(e, child)
}

func (e *Element) AddContent(b []byte) error {
	return addContent(e, b)
}

func (e *Element) AddSibling(sibling Node) error {
	return addSibling(e, sibling)
}

// SetAttribute appends an attribute. Source order is preserved; adding
// a name that already exists fails with ErrDuplicateAttribute.
func (e *Element) SetAttribute(attr *Attribute) error {
	if err := e.attrs.Set(attr.Name, attr); err != nil {
		if errors.Is(err, orderedmap.ErrDuplicateEntry) {
			return ErrDuplicateAttribute
		}
		return err
	}
	return nil
}

// SetAttributeValue is a convenience for building trees by hand; the
// converter always goes through SetAttribute with full provenance.
func (e *Element) SetAttributeValue(name, value string) error {
	return e.SetAttribute(&Attribute{Name: name, Value: value})
}

// Attribute returns the named attribute, or nil.
func (e *Element) Attribute(name string) *Attribute {
	attr, ok := e.attrs.Get(name)
	if !ok {
		return nil
	}
	return attr
}

// Attributes populates the given slice with the attributes of the
// element in source order. If the slice is nil, a new one is allocated.
func (e *Element) Attributes(dst []*Attribute) []*Attribute {
	if dst == nil {
		dst = make([]*Attribute, 0, e.attrs.Len())
	} else {
		dst = dst[:0]
	}
	for _, attr := range e.attrs.Range() {
		dst = append(dst, attr)
	}
	return dst
}

// SetOriginalTag retains b as the raw start tag text. Callers hand over
// ownership of the slice.
func (e *Element) SetOriginalTag(b []byte) {
	e.originalTag = b
}

func (e *Element) OriginalTag() []byte {
	return e.originalTag
}

// SetOriginalEndTag retains b as the raw end tag text, nil when the
// source never closed the element.
func (e *Element) SetOriginalEndTag(b []byte) {
	e.originalEndTag = b
}

func (e *Element) OriginalEndTag() []byte {
	return e.originalEndTag
}

// SetSpan records where the element's start and end tags sat in the
// source.
func (e *Element) SetSpan(start, end Position) {
	e.startPos = start
	e.endPos = end
}

func (e *Element) StartPos() Position {
	return e.startPos
}

func (e *Element) EndPos() Position {
	return e.endPos
}
