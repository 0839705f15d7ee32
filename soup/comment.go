package soup

// Comment is a converted comment node. Its content is the comment body
// without the surrounding markers; Original keeps the full source text,
// markers included.
type Comment struct {
	treeNode
	content  []byte
	original []byte
	pos      Position
}

var _ Node = (*Comment)(nil)

func NewComment(content []byte) *Comment {
	return &Comment{
		content: content,
	}
}

func (*Comment) Type() NodeType {
	return CommentNodeType
}

func (*Comment) LocalName() string {
	return "#comment"
}

func (n *Comment) Content(dst []byte) []byte {
	return append(dst, n.content...)
}

func (n *Comment) AddChild(child Node) error {
	if c, ok := child.(*Comment); ok {
		return n.AddContent(c.content)
	}
	return ErrInvalidOperation
}

func (n *Comment) AddContent(b []byte) error {
	n.content = append(n.content, b...)
	return nil
}

func (n *Comment) AddSibling(sibling Node) error {
	return addSibling(n, sibling)
}

func (n *Comment) SetOriginal(b []byte) {
	n.original = b
}

func (n *Comment) Original() []byte {
	return n.original
}

func (n *Comment) SetPos(p Position) {
	n.pos = p
}

func (n *Comment) Pos() Position {
	return n.pos
}
