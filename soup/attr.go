package soup

// AttrNamespace identifies the namespace of an attribute name inside
// foreign content. Regular HTML attributes are AttrNamespaceNone.
type AttrNamespace int

const (
	AttrNamespaceNone AttrNamespace = iota
	AttrNamespaceXLink
	AttrNamespaceXML
	AttrNamespaceXMLNS
)

var attrNamespaceURLs = [...]string{
	"http://www.w3.org/1999/xhtml",
	"http://www.w3.org/1999/xlink",
	"http://www.w3.org/XML/1998/namespace",
	"http://www.w3.org/2000/xmlns",
}

// URL returns the canonical namespace URL, or "" for a value outside
// the known set.
func (ns AttrNamespace) URL() string {
	if int(ns) < len(attrNamespaceURLs) {
		return attrNamespaceURLs[ns]
	}
	return ""
}

func (ns AttrNamespace) String() string {
	switch ns {
	case AttrNamespaceNone:
		return "none"
	case AttrNamespaceXLink:
		return "xlink"
	case AttrNamespaceXML:
		return "xml"
	case AttrNamespaceXMLNS:
		return "xmlns"
	}
	return "unknown"
}

// Attribute is one attribute of an Element. Name and Value carry the
// decoded UTF-8 forms; OriginalName and OriginalValue keep the raw
// source spelling, quotes included, and the positions frame both in
// the input. Attributes are plain records, not tree nodes.
type Attribute struct {
	Namespace     AttrNamespace
	Name          string
	Value         string
	OriginalName  []byte
	OriginalValue []byte
	NameStart     Position
	NameEnd       Position
	ValueStart    Position
	ValueEnd      Position
}
