package soup

// Text is a converted text or whitespace node.
type Text struct {
	treeNode
	content  []byte
	original []byte
	pos      Position
}

var _ Node = (*Text)(nil)

func NewText(content []byte) *Text {
	return &Text{
		content: content,
	}
}

func (*Text) Type() NodeType {
	return TextNodeType
}

func (*Text) LocalName() string {
	return "#text"
}

func (n *Text) Content(dst []byte) []byte {
	return append(dst, n.content...)
}

func (n *Text) AddChild(child Node) error {
	// Text nodes can concatenate with other text nodes
	if child.Type() == TextNodeType {
		return n.AddContent(child.Content(nil))
	}
	return ErrInvalidOperation
}

func (n *Text) AddContent(b []byte) error {
	n.content = append(n.content, b...)
	return nil
}

func (n *Text) AddSibling(sibling Node) error {
	return addSibling(n, sibling)
}

// SetOriginal retains b as the raw source text behind the node.
func (n *Text) SetOriginal(b []byte) {
	n.original = b
}

func (n *Text) Original() []byte {
	return n.original
}

func (n *Text) SetPos(p Position) {
	n.pos = p
}

func (n *Text) Pos() Position {
	return n.pos
}

// CDATA is character data the parser saw inside a CDATA section. It
// behaves like Text everywhere except for its type.
type CDATA struct {
	Text
}

var _ Node = (*CDATA)(nil)

func NewCDATA(content []byte) *CDATA {
	c := &CDATA{}
	c.content = content
	return c
}

func (*CDATA) Type() NodeType {
	return CDATANodeType
}

func (*CDATA) LocalName() string {
	return "#cdata-section"
}
