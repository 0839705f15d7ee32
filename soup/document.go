package soup

// QuirksMode records how the parser classified the document's doctype.
type QuirksMode int

const (
	NoQuirks QuirksMode = iota
	Quirks
	LimitedQuirks
)

func (m QuirksMode) String() string {
	switch m {
	case NoQuirks:
		return "no-quirks"
	case Quirks:
		return "quirks"
	case LimitedQuirks:
		return "limited-quirks"
	}
	return "unknown"
}

// Document is the root of a converted tree. Its children are the
// document-level constructs in source order: comments, and the single
// root element.
type Document struct {
	treeNode
	hasDoctype  bool
	doctypeName string
	publicID    string
	systemID    string
	quirks      QuirksMode
}

var _ Node = (*Document)(nil)

func NewDocument() *Document {
	doc := &Document{}
	doc.treeNode = treeNode{
		doc: doc,
	}
	return doc
}

func (*Document) Type() NodeType {
	return DocumentNodeType
}

func (*Document) LocalName() string {
	return "#document"
}

func (d *Document) AddChild(child Node) error {
	return addChild(d, child)
}

func (d *Document) AddContent(b []byte) error {
	return addContent(d, b)
}

func (*Document) AddSibling(Node) error {
	return ErrInvalidOperation
}

// SetDoctype records the document type declaration the parser saw.
func (d *Document) SetDoctype(name, publicID, systemID string) {
	d.hasDoctype = true
	d.doctypeName = name
	d.publicID = publicID
	d.systemID = systemID
}

func (d *Document) HasDoctype() bool {
	return d.hasDoctype
}

func (d *Document) DoctypeName() string {
	return d.doctypeName
}

func (d *Document) PublicID() string {
	return d.publicID
}

func (d *Document) SystemID() string {
	return d.systemID
}

func (d *Document) SetQuirksMode(m QuirksMode) {
	d.quirks = m
}

func (d *Document) QuirksMode() QuirksMode {
	return d.quirks
}

// Root returns the document element, conventionally <html>, skipping
// any document-level comments.
func (d *Document) Root() *Element {
	for n := d.FirstChild(); n != nil; n = n.NextSibling() {
		if e, ok := n.(*Element); ok {
			return e
		}
	}
	return nil
}

// CreateElement creates an element owned by this document. The element
// is an orphan until something adds it as a child.
func (d *Document) CreateElement(name string) *Element {
	e := NewElement(name)
	_ = e.SetOwnerDocument(d)
	return e
}

func (d *Document) CreateText(content []byte) *Text {
	t := NewText(content)
	_ = t.SetOwnerDocument(d)
	return t
}

func (d *Document) CreateCDATA(content []byte) *CDATA {
	c := NewCDATA(content)
	_ = c.SetOwnerDocument(d)
	return c
}

func (d *Document) CreateComment(content []byte) *Comment {
	c := NewComment(content)
	_ = c.SetOwnerDocument(d)
	return c
}
