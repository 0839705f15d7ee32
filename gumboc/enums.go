package gumboc

import (
	"fmt"
	"strings"
)

// The native enums arrive as untrusted integers. Construction goes
// through the FromRaw functions, which reject discriminants outside the
// pinned range instead of clamping them; name lookups reject variants
// the table does not know. Neither ever panics.

func enumFromRaw[T ~uint32](typ string, raw uint32, count uint32) (T, error) {
	if raw >= count {
		return 0, &OutOfRangeError{Type: typ, Value: int64(raw), Count: int64(count)}
	}
	return T(raw), nil
}

// NodeType mirrors GumboNodeType.
type NodeType uint32

const (
	DocumentNode NodeType = iota
	ElementNode
	TextNode
	CDATANode
	CommentNode
	WhitespaceNode
	nodeTypeCount
)

var nodeTypeNames = [...]string{
	"DOCUMENT",
	"ELEMENT",
	"TEXT",
	"CDATA",
	"COMMENT",
	"WHITESPACE",
}

func NodeTypeFromRaw(raw uint32) (NodeType, error) {
	return enumFromRaw[NodeType]("NodeType", raw, uint32(nodeTypeCount))
}

// Name returns the canonical variant name.
func (t NodeType) Name() (string, error) {
	if int(t) < len(nodeTypeNames) {
		return nodeTypeNames[t], nil
	}
	return "", &UnknownVariantError{Type: "NodeType", Value: int64(t)}
}

// String is for diagnostics only; it never fails.
func (t NodeType) String() string {
	if int(t) < len(nodeTypeNames) {
		return nodeTypeNames[t]
	}
	return fmt.Sprintf("NodeType(%d)", uint32(t))
}

// QuirksMode mirrors GumboQuirksModeEnum.
type QuirksMode uint32

const (
	NoQuirks QuirksMode = iota
	Quirks
	LimitedQuirks
	quirksModeCount
)

var quirksModeNames = [...]string{
	"NO_QUIRKS",
	"QUIRKS",
	"LIMITED_QUIRKS",
}

func QuirksModeFromRaw(raw uint32) (QuirksMode, error) {
	return enumFromRaw[QuirksMode]("QuirksMode", raw, uint32(quirksModeCount))
}

func (m QuirksMode) Name() (string, error) {
	if int(m) < len(quirksModeNames) {
		return quirksModeNames[m], nil
	}
	return "", &UnknownVariantError{Type: "QuirksMode", Value: int64(m)}
}

func (m QuirksMode) String() string {
	if int(m) < len(quirksModeNames) {
		return quirksModeNames[m]
	}
	return fmt.Sprintf("QuirksMode(%d)", uint32(m))
}

// Namespace mirrors GumboNamespaceEnum, the namespace of an element.
type Namespace uint32

const (
	NamespaceHTML Namespace = iota
	NamespaceSVG
	NamespaceMathML
	namespaceCount
)

var namespaceNames = [...]string{
	"HTML",
	"SVG",
	"MATHML",
}

var namespaceURLs = [...]string{
	"http://www.w3.org/1999/xhtml",
	"http://www.w3.org/2000/svg",
	"http://www.w3.org/1998/Math/MathML",
}

func NamespaceFromRaw(raw uint32) (Namespace, error) {
	return enumFromRaw[Namespace]("Namespace", raw, uint32(namespaceCount))
}

func (ns Namespace) Name() (string, error) {
	if int(ns) < len(namespaceNames) {
		return namespaceNames[ns], nil
	}
	return "", &UnknownVariantError{Type: "Namespace", Value: int64(ns)}
}

// URL returns the canonical namespace URL, or "" for a variant outside
// the table.
func (ns Namespace) URL() string {
	if int(ns) < len(namespaceURLs) {
		return namespaceURLs[ns]
	}
	return ""
}

func (ns Namespace) String() string {
	if int(ns) < len(namespaceNames) {
		return namespaceNames[ns]
	}
	return fmt.Sprintf("Namespace(%d)", uint32(ns))
}

// AttributeNamespace mirrors GumboAttributeNamespaceEnum, the namespace
// of an attribute name inside foreign content.
type AttributeNamespace uint32

const (
	AttributeNamespaceNone AttributeNamespace = iota
	AttributeNamespaceXLink
	AttributeNamespaceXML
	AttributeNamespaceXMLNS
	attributeNamespaceCount
)

var attributeNamespaceNames = [...]string{
	"NONE",
	"XLINK",
	"XML",
	"XMLNS",
}

// attributeNamespaceURLs follows the native table, which maps NONE to
// the XHTML namespace rather than to nothing.
var attributeNamespaceURLs = [...]string{
	"http://www.w3.org/1999/xhtml",
	"http://www.w3.org/1999/xlink",
	"http://www.w3.org/XML/1998/namespace",
	"http://www.w3.org/2000/xmlns",
}

func AttributeNamespaceFromRaw(raw uint32) (AttributeNamespace, error) {
	return enumFromRaw[AttributeNamespace]("AttributeNamespace", raw, uint32(attributeNamespaceCount))
}

func (ns AttributeNamespace) Name() (string, error) {
	if int(ns) < len(attributeNamespaceNames) {
		return attributeNamespaceNames[ns], nil
	}
	return "", &UnknownVariantError{Type: "AttributeNamespace", Value: int64(ns)}
}

func (ns AttributeNamespace) URL() string {
	if int(ns) < len(attributeNamespaceURLs) {
		return attributeNamespaceURLs[ns]
	}
	return ""
}

func (ns AttributeNamespace) String() string {
	if int(ns) < len(attributeNamespaceNames) {
		return attributeNamespaceNames[ns]
	}
	return fmt.Sprintf("AttributeNamespace(%d)", uint32(ns))
}

// ParseFlags mirrors GumboParseFlags: a bit set recording how a node
// came to be in the tree. Unlike the enums above it is not bounded, so
// there is no FromRaw for it.
type ParseFlags uint32

const (
	InsertionByParser ParseFlags = 1 << iota
	InsertionImplicitEndTag
	_ // retained by the native header for a retired flag
	InsertionImplied
	InsertionConvertedFromEndTag
	InsertionFromIsindex
	InsertionFromImage
	InsertionReconstructedFormattingElement
	InsertionAdoptionAgencyCloned
	InsertionAdoptionAgencyMoved
	InsertionFosterParented
)

// InsertionNormal is the empty flag set: the node came straight from
// matching markup.
const InsertionNormal ParseFlags = 0

var parseFlagNames = map[ParseFlags]string{
	InsertionByParser:                       "BY_PARSER",
	InsertionImplicitEndTag:                 "IMPLICIT_END_TAG",
	InsertionImplied:                        "IMPLIED",
	InsertionConvertedFromEndTag:            "CONVERTED_FROM_END_TAG",
	InsertionFromIsindex:                    "FROM_ISINDEX",
	InsertionFromImage:                      "FROM_IMAGE",
	InsertionReconstructedFormattingElement: "RECONSTRUCTED_FORMATTING_ELEMENT",
	InsertionAdoptionAgencyCloned:           "ADOPTION_AGENCY_CLONED",
	InsertionAdoptionAgencyMoved:            "ADOPTION_AGENCY_MOVED",
	InsertionFosterParented:                 "FOSTER_PARENTED",
}

func (f ParseFlags) Has(mask ParseFlags) bool {
	return f&mask != 0
}

func (f ParseFlags) String() string {
	if f == InsertionNormal {
		return "NORMAL"
	}
	var names []string
	for bit := ParseFlags(1); bit != 0 && bit <= f; bit <<= 1 {
		if f&bit == 0 {
			continue
		}
		if name, ok := parseFlagNames[bit]; ok {
			names = append(names, name)
		} else {
			names = append(names, fmt.Sprintf("0x%x", uint32(bit)))
		}
	}
	return strings.Join(names, "|")
}
