// Package nethtml materializes parse results as golang.org/x/net/html
// node trees. Converted documents plug straight into the ecosystem that
// package anchors: html.Render, css selector engines, goquery and the
// rest. The conversion copies everything, so the parse result may be
// closed as soon as it returns; what the destination model cannot hold
// (original text spans, source positions, the document-order chain) is
// dropped here and preserved only by the soup model.
package nethtml

import (
	"runtime"
	"strings"
	"unicode/utf8"

	"github.com/lestrrat-go/pdebug/v3"
	"github.com/pkg/errors"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/go-gumbo/gumbo/gumboc"
)

// Parse runs the native parser over text and converts its output. The
// native result is destroyed before Parse returns on every path.
func Parse(text []byte, options ...gumboc.ParseOption) (*html.Node, error) {
	if pdebug.Enabled {
		g := pdebug.FuncMarker()
		defer g.End()
	}

	res, err := gumboc.Parse(text, options...)
	if err != nil {
		return nil, errors.Wrap(err, `failed to parse document`)
	}
	defer res.Close()

	if pdebug.Enabled {
		pdebug.Printf("parsed %d bytes with %d reported errors, converting", len(text), res.ErrorCount())
	}
	return Convert(res)
}

// Convert materializes a parse result into an x/net/html document node.
// Every name and value is copied out of native memory, so the result
// may be closed as soon as Convert returns.
func Convert(res *gumboc.Result) (*html.Node, error) {
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

func convertDocument(n *gumboc.Node) (*html.Node, error) {
	typ, err := gumboc.NodeTypeFromRaw(uint32(n.Type))
	if err != nil {
		return nil, errors.Wrap(err, `broken native tree`)
	}
	if typ != gumboc.DocumentNode {
		return nil, errors.Errorf(`expected document node at the root, got %s`, typ)
	}

	root := &html.Node{Type: html.DocumentNode}
	doc := n.V.Document()
	if doc.HasDoctype {
		root.AppendChild(doctypeNode(doc))
	}
	for i := 0; i < doc.Children.Len(); i++ {
		child, err := convertNode(doc.Children.At(i))
		if err != nil {
			return nil, err
		}
		root.AppendChild(child)
	}
	return root, nil
}

// doctypeNode renders the doctype the way the x/net/html parser records
// its own: name in Data, identifiers as conventional public and system
// attributes when present.
func doctypeNode(doc *gumboc.Document) *html.Node {
	n := &html.Node{
		Type: html.DoctypeNode,
		Data: decodeText(gumboc.GoString(doc.Name)),
	}
	if public := decodeText(gumboc.GoString(doc.PublicIdentifier)); public != "" {
		n.Attr = append(n.Attr, html.Attribute{Key: "public", Val: public})
	}
	if system := decodeText(gumboc.GoString(doc.SystemIdentifier)); system != "" {
		n.Attr = append(n.Attr, html.Attribute{Key: "system", Val: system})
	}
	return n
}

func convertNode(n *gumboc.Node) (*html.Node, error) {
	typ, err := gumboc.NodeTypeFromRaw(uint32(n.Type))
	if err != nil {
		return nil, errors.Wrap(err, `broken native tree`)
	}

	switch typ {
	case gumboc.ElementNode:
		return convertElement(n.V.Element())
	case gumboc.TextNode, gumboc.WhitespaceNode, gumboc.CDATANode:
		return &html.Node{Type: html.TextNode, Data: decodeText(gumboc.GoString(n.V.Text().Text))}, nil
	case gumboc.CommentNode:
		return &html.Node{Type: html.CommentNode, Data: decodeText(gumboc.GoString(n.V.Text().Text))}, nil
	default:
		return nil, errors.Errorf(`unexpected %s node below the document`, typ)
	}
}

func convertElement(el *gumboc.Element) (*html.Node, error) {
	ns, err := gumboc.NamespaceFromRaw(uint32(el.TagNamespace))
	if err != nil {
		return nil, errors.Wrap(err, `broken native tree`)
	}

	name := el.TagName()
	n := &html.Node{
		Type: html.ElementNode,
		Data: name,
		// the atom table indexes the lowercase token, which is also
		// what the x/net/html parser computes it from before adjusting
		// foreign names
		DataAtom:  atom.Lookup([]byte(strings.ToLower(name))),
		Namespace: namespacePrefix(ns),
	}

	for i := 0; i < el.Attributes.Len(); i++ {
		attr, err := convertAttribute(el.Attributes.At(i))
		if err != nil {
			return nil, err
		}
		n.Attr = append(n.Attr, attr)
	}

	for i := 0; i < el.Children.Len(); i++ {
		child, err := convertNode(el.Children.At(i))
		if err != nil {
			return nil, err
		}
		n.AppendChild(child)
	}
	return n, nil
}

// namespacePrefix maps an element namespace to the short prefix the
// x/net/html parser stores: HTML elements stay blank.
func namespacePrefix(ns gumboc.Namespace) string {
	switch ns {
	case gumboc.NamespaceSVG:
		return "svg"
	case gumboc.NamespaceMathML:
		return "math"
	}
	return ""
}

// convertAttribute splits a namespaced attribute name the way the
// x/net/html parser does: the prefix moves into Namespace, the local
// part stays in Key. Unprefixed names (bare xmlns) keep an empty
// Namespace so rendering reproduces the source spelling.
func convertAttribute(a *gumboc.Attribute) (html.Attribute, error) {
	ns, err := gumboc.AttributeNamespaceFromRaw(uint32(a.AttrNamespace))
	if err != nil {
		return html.Attribute{}, errors.Wrap(err, `broken native tree`)
	}

	attr := html.Attribute{
		Key: decodeText(gumboc.GoString(a.Name)),
		Val: decodeText(gumboc.GoString(a.Value)),
	}
	if ns != gumboc.AttributeNamespaceNone {
		if j := strings.Index(attr.Key, ":"); j >= 0 {
			attr.Namespace = attr.Key[:j]
			attr.Key = attr.Key[j+1:]
		}
	}
	return attr, nil
}

// decodeText repairs stray invalid UTF-8, one replacement rune per
// undecodable byte.
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
