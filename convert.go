package gumbo

import (
	"runtime"
	"strings"
	"unicode/utf8"

	"github.com/lestrrat-go/pdebug/v3"
	"github.com/pkg/errors"

	"github.com/go-gumbo/gumbo/gumboc"
	"github.com/go-gumbo/gumbo/soup"
)

// Convert materializes a parse result into an owned soup document. The
// conversion copies every name, value and original-text span out of
// native memory, so the result may be closed as soon as Convert
// returns. The native tree is never mutated.
func Convert(res *gumboc.Result) (*soup.Document, error) {
	if pdebug.Enabled {
		g := pdebug.FuncMarker()
		defer g.End()
	}

	if res == nil {
		return nil, errors.New(`nil parse result`)
	}
	docNode := res.Document()
	if docNode == nil {
		return nil, errors.New(`parse result already closed`)
	}
	doc, err := convertDocument(docNode)
	// the result's finalizer must not fire while the walk above is
	// still reading native memory
	runtime.KeepAlive(res)
	return doc, err
}

func convertDocument(docNode *gumboc.Node) (*soup.Document, error) {
	c := newConverter()
	if err := c.addDocument(docNode); err != nil {
		return nil, err
	}
	if pdebug.Enabled {
		pdebug.Printf("materialized %d nodes, resolving document order links", len(c.nodes))
	}

	// Second pass. The first pass recorded the raw document-order links
	// of every node it materialized; now that the whole tree exists the
	// links can be resolved through the correlation map.
	c.fixLinks(c.doc)
	return c.doc, nil
}

// rawLinks is the document-order chain of one native node, stashed
// during the first pass before its targets necessarily exist.
type rawLinks struct {
	next *gumboc.Node
	prev *gumboc.Node
}

// converter is the state of one conversion: the document being built,
// the correlation map from native node to its materialized counterpart,
// and the stashed links waiting for the second pass.
type converter struct {
	doc   *soup.Document
	nodes map[*gumboc.Node]soup.Node
	links map[soup.Node]rawLinks
}

func newConverter() *converter {
	return &converter{
		doc:   soup.NewDocument(),
		nodes: make(map[*gumboc.Node]soup.Node),
		links: make(map[soup.Node]rawLinks),
	}
}

// addDocument converts the document node. The node itself has no
// counterpart in the destination model beyond the document that is
// being built, so it deliberately stays out of the correlation map;
// links pointing at it resolve to nothing.
func (c *converter) addDocument(n *gumboc.Node) error {
	typ, err := gumboc.NodeTypeFromRaw(uint32(n.Type))
	if err != nil {
		return errors.Wrap(err, `broken native tree`)
	}
	if typ != gumboc.DocumentNode {
		return errors.Errorf(`expected document node at the root, got %s`, typ)
	}

	doc := n.V.Document()
	if doc.HasDoctype {
		c.doc.SetDoctype(
			decodeText(gumboc.GoString(doc.Name)),
			decodeText(gumboc.GoString(doc.PublicIdentifier)),
			decodeText(gumboc.GoString(doc.SystemIdentifier)),
		)
	}

	quirks, err := gumboc.QuirksModeFromRaw(uint32(doc.DocTypeQuirksMode))
	if err != nil {
		return errors.Wrap(err, `broken native tree`)
	}
	c.doc.SetQuirksMode(soup.QuirksMode(quirks))

	for i := 0; i < doc.Children.Len(); i++ {
		child, err := c.addNode(doc.Children.At(i))
		if err != nil {
			return err
		}
		if err := c.doc.AddChild(child); err != nil {
			return errors.Wrap(err, `failed to add document child`)
		}
	}
	return nil
}

// addNode converts one native node and everything below it, recording
// the correlation and the raw links on the way.
func (c *converter) addNode(n *gumboc.Node) (soup.Node, error) {
	typ, err := gumboc.NodeTypeFromRaw(uint32(n.Type))
	if err != nil {
		return nil, errors.Wrap(err, `broken native tree`)
	}

	var built soup.Node
	switch typ {
	case gumboc.ElementNode:
		built, err = c.addElement(n.V.Element())
		if err != nil {
			return nil, err
		}
	case gumboc.TextNode, gumboc.WhitespaceNode:
		built = c.addText(n.V.Text())
	case gumboc.CDATANode:
		built = c.addCDATA(n.V.Text())
	case gumboc.CommentNode:
		built = c.addComment(n.V.Text())
	default:
		// a document node below the root means the parser handed us
		// something that is not a tree
		return nil, errors.Errorf(`unexpected %s node below the document`, typ)
	}

	c.nodes[n] = built
	c.links[built] = rawLinks{next: n.Next, prev: n.Prev}
	return built, nil
}

func (c *converter) addElement(el *gumboc.Element) (*soup.Element, error) {
	ns, err := gumboc.NamespaceFromRaw(uint32(el.TagNamespace))
	if err != nil {
		return nil, errors.Wrap(err, `broken native tree`)
	}

	e := c.doc.CreateElement(el.TagName())
	e.SetURI(ns.URL())
	e.SetOriginalTag(copyView(el.OriginalTag))
	e.SetOriginalEndTag(copyView(el.OriginalEndTag))
	e.SetSpan(position(el.StartPos), position(el.EndPos))

	for i := 0; i < el.Attributes.Len(); i++ {
		attr, err := convertAttribute(el.Attributes.At(i))
		if err != nil {
			return nil, err
		}
		if err := e.SetAttribute(attr); err != nil {
			return nil, errors.Wrapf(err, `failed to set attribute %s on <%s>`, attr.Name, e.Name())
		}
	}

	for i := 0; i < el.Children.Len(); i++ {
		child, err := c.addNode(el.Children.At(i))
		if err != nil {
			return nil, err
		}
		if err := e.AddChild(child); err != nil {
			return nil, errors.Wrapf(err, `failed to add child to <%s>`, e.Name())
		}
	}
	return e, nil
}

func (c *converter) addText(t *gumboc.Text) *soup.Text {
	n := c.doc.CreateText(decodeBytes(t.Text))
	n.SetOriginal(copyView(t.OriginalText))
	n.SetPos(position(t.StartPos))
	return n
}

func (c *converter) addCDATA(t *gumboc.Text) *soup.CDATA {
	n := c.doc.CreateCDATA(decodeBytes(t.Text))
	n.SetOriginal(copyView(t.OriginalText))
	n.SetPos(position(t.StartPos))
	return n
}

func (c *converter) addComment(t *gumboc.Text) *soup.Comment {
	n := c.doc.CreateComment(decodeBytes(t.Text))
	n.SetOriginal(copyView(t.OriginalText))
	n.SetPos(position(t.StartPos))
	return n
}

func convertAttribute(a *gumboc.Attribute) (*soup.Attribute, error) {
	ns, err := gumboc.AttributeNamespaceFromRaw(uint32(a.AttrNamespace))
	if err != nil {
		return nil, errors.Wrap(err, `broken native tree`)
	}
	return &soup.Attribute{
		Namespace:     soup.AttrNamespace(ns),
		Name:          decodeText(gumboc.GoString(a.Name)),
		Value:         decodeText(gumboc.GoString(a.Value)),
		OriginalName:  copyView(a.OriginalName),
		OriginalValue: copyView(a.OriginalValue),
		NameStart:     position(a.NameStart),
		NameEnd:       position(a.NameEnd),
		ValueStart:    position(a.ValueStart),
		ValueEnd:      position(a.ValueEnd),
	}, nil
}

// fixLinks resolves the stashed document-order links through the
// correlation map. A link whose target was never materialized, the
// document node being the usual case, resolves to no link at all.
func (c *converter) fixLinks(n soup.Node) {
	if l, ok := c.links[n]; ok {
		n.SetNextNode(c.nodes[l.next])
		n.SetPrevNode(c.nodes[l.prev])
	}
	for chld := n.FirstChild(); chld != nil; chld = chld.NextSibling() {
		c.fixLinks(chld)
	}
}

// copyView snapshots a native memory view into owned memory. Null views
// stay nil so "never recorded" remains distinguishable from "empty".
func copyView(sp gumboc.StringPiece) []byte {
	if sp.IsNull() {
		return nil
	}
	b := sp.Bytes()
	out := make([]byte, len(b))
	copy(out, b)
	return out
}

// decodeText repairs stray invalid UTF-8, one replacement rune per
// undecodable byte. The native parser already decodes its input, so
// valid text passes through untouched and unallocated.
func decodeText(s string) string {
	if utf8.ValidString(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		b.WriteRune(r)
	}
	return b.String()
}

func decodeBytes(p *byte) []byte {
	return []byte(decodeText(gumboc.GoString(p)))
}

func position(p gumboc.SourcePosition) soup.Position {
	return soup.Position{
		Line:   uint(p.Line),
		Column: uint(p.Column),
		Offset: uint(p.Offset),
	}
}
