package soup

import (
	"github.com/pkg/errors"
)

// treeNode is the part of a Node that handles the tree structure.
type treeNode struct {
	firstChild Node
	lastChild  Node
	parent     Node
	next       Node
	prev       Node
	nextNode   Node
	prevNode   Node
	doc        *Document
}

func (n *treeNode) getTreeNode() *treeNode {
	return n
}

func (n *treeNode) OwnerDocument() *Document {
	return n.doc
}

func (n *treeNode) FirstChild() Node {
	return n.firstChild
}

func (n *treeNode) LastChild() Node {
	return n.lastChild
}

func (n *treeNode) Parent() Node {
	return n.parent
}

func (n *treeNode) NextSibling() Node {
	return n.next
}

func (n *treeNode) PrevSibling() Node {
	return n.prev
}

func (n *treeNode) NextNode() Node {
	return n.nextNode
}

func (n *treeNode) PrevNode() Node {
	return n.prevNode
}

func (n *treeNode) SetNextNode(v Node) {
	n.nextNode = v
}

func (n *treeNode) SetPrevNode(v Node) {
	n.prevNode = v
}

func (n *treeNode) Content(dst []byte) []byte {
	result := dst
	for e := n.firstChild; e != nil; e = e.NextSibling() {
		result = e.Content(result)
	}
	return result
}

func (n *treeNode) SetOwnerDocument(doc *Document) error {
	if n == nil {
		return errors.New(`cannot set owner document to nil node`)
	}
	if doc == nil {
		return errors.New(`cannot set nil document`)
	}

	n.doc = doc
	return nil
}

func (n *treeNode) SetParent(p Node) error {
	if n == nil {
		return errors.New(`cannot set parent to nil node`)
	}
	if p == nil {
		return errors.New(`cannot set nil parent`)
	}

	n.parent = p
	return nil
}

func addSibling(n, sibling Node) error {
	if n == nil {
		return errors.New(`cannot add sibling to nil node`)
	}
	if sibling == nil {
		return errors.New(`cannot add nil sibling`)
	}

	l := n
	lt := n.getTreeNode()
	st := sibling.getTreeNode()

	for lt.next != nil {
		l = lt.next
		lt = l.getTreeNode()
	}

	lt.next = sibling
	st.prev = l
	if lt.parent != nil {
		st.parent = lt.parent
		lt.parent.getTreeNode().lastChild = sibling
	}
	return nil
}

func addChild(parent, child Node) error {
	pt := parent.getTreeNode()
	ct := child.getTreeNode()

	l := pt.lastChild
	if l == nil { // No children, set firstChild to child, and bail out
		pt.firstChild = child
		pt.lastChild = child
		ct.parent = parent
		return nil
	}

	// addSibling handles setting the parent, and the lastChild pointer
	return addSibling(l, child)
}

func addContent(n Node, content []byte) error {
	t := NewText(content)
	if doc := n.OwnerDocument(); doc != nil {
		_ = t.SetOwnerDocument(doc)
	}
	return n.AddChild(t)
}
