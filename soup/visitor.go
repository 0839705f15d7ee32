package soup

import (
	"github.com/pkg/errors"
)

// Visitor receives traversal events from Visit. Element and document
// callbacks come in enter/leave pairs wrapped around their children;
// leaves get a single callback.
type Visitor interface {
	StartDocument(*Document) error
	EndDocument(*Document) error
	StartElement(*Element) error
	EndElement(*Element) error
	Text(*Text) error
	CDATA(*CDATA) error
	Comment(*Comment) error
}

// Visit traverses the tree under n depth-first, firing v's callbacks in
// document order. The first callback error aborts the traversal and is
// returned as is.
func Visit(n Node, v Visitor) error {
	if n == nil {
		return errors.New(`nil node`)
	}

	switch n := n.(type) {
	case *Document:
		if err := v.StartDocument(n); err != nil {
			return err
		}
		if err := visitChildren(n, v); err != nil {
			return err
		}
		return v.EndDocument(n)
	case *Element:
		if err := v.StartElement(n); err != nil {
			return err
		}
		if err := visitChildren(n, v); err != nil {
			return err
		}
		return v.EndElement(n)
	case *CDATA:
		return v.CDATA(n)
	case *Text:
		return v.Text(n)
	case *Comment:
		return v.Comment(n)
	}
	return errors.Errorf(`unknown node type %T`, n)
}

func visitChildren(n Node, v Visitor) error {
	for chld := n.FirstChild(); chld != nil; chld = chld.NextSibling() {
		if err := Visit(chld, v); err != nil {
			return err
		}
	}
	return nil
}
