// Package soup is the destination document model for converted parse
// results. Trees built here own every byte of their content; nothing
// references parser memory, so they outlive the native result they came
// from.
package soup

import (
	"github.com/pkg/errors"
)

// NodeType identifies the concrete type behind a Node.
type NodeType int

const (
	DocumentNodeType NodeType = iota + 1
	ElementNodeType
	TextNodeType
	CDATANodeType
	CommentNodeType
)

var (
	ErrInvalidOperation   = errors.New(`invalid operation`)
	ErrDuplicateAttribute = errors.New(`duplicate attribute`)
)

// Node is the common surface of every node in a converted document.
type Node interface {
	// returns the treeNode (the part of the Node that handles the tree
	// structure)
	getTreeNode() *treeNode

	AddChild(Node) error
	AddContent([]byte) error
	AddSibling(Node) error

	Type() NodeType

	// Content appends the text content of the node to dst and returns
	// the result. If dst is nil, a new slice is allocated.
	Content(dst []byte) []byte

	// LocalName returns the display name of the node: the tag name for
	// elements, #text and friends for everything else.
	LocalName() string

	FirstChild() Node
	LastChild() Node
	NextSibling() Node
	PrevSibling() Node
	Parent() Node
	OwnerDocument() *Document

	// NextNode and PrevNode follow the document-order chain stitched in
	// by the converter. They are unrelated to sibling links: the chain
	// threads through every node of the document in source order.
	NextNode() Node
	PrevNode() Node
	SetNextNode(Node)
	SetPrevNode(Node)

	SetOwnerDocument(*Document) error
	SetParent(Node) error
}

// WalkFunc visits one node during a Walk.
type WalkFunc func(Node) error

// Walk traverses the tree under n depth-first, visiting parents before
// their children.
func Walk(n Node, f WalkFunc) error {
	if n == nil {
		return errors.New(`nil node`)
	}
	if err := f(n); err != nil {
		return err
	}
	for chld := n.FirstChild(); chld != nil; chld = chld.NextSibling() {
		if err := Walk(chld, f); err != nil {
			return err
		}
	}
	return nil
}
