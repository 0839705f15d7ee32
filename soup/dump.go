package soup

import (
	"io"

	"github.com/go-gumbo/gumbo/internal/pool"
)

// Dumper serializes converted trees back into HTML-shaped text. The
// output is a debugging surface, not a spec-exact serialization: tags,
// attributes, comments and the doctype come out in canonical form, and
// implied elements print like explicit ones.
type Dumper struct{}

// DumpDoc writes the document, doctype first, then every document-level
// child, with a trailing newline.
func (d *Dumper) DumpDoc(out io.Writer, doc *Document) error {
	return Visit(doc, &dumpVisitor{out: out})
}

// DumpNode writes the subtree rooted at n.
func (d *Dumper) DumpNode(out io.Writer, n Node) error {
	return Visit(n, &dumpVisitor{out: out})
}

// Dump is a convenience over a zero Dumper.
func Dump(out io.Writer, n Node) error {
	var d Dumper
	if doc, ok := n.(*Document); ok {
		return d.DumpDoc(out, doc)
	}
	return d.DumpNode(out, n)
}

// voidElements never take a closing tag in serialized form.
var voidElements = map[string]struct{}{
	"area": {}, "base": {}, "basefont": {}, "bgsound": {}, "br": {},
	"col": {}, "embed": {}, "frame": {}, "hr": {}, "img": {},
	"input": {}, "keygen": {}, "link": {}, "meta": {}, "param": {},
	"source": {}, "track": {}, "wbr": {},
}

type dumpVisitor struct {
	out io.Writer
}

var _ Visitor = (*dumpVisitor)(nil)

func (d *dumpVisitor) StartDocument(doc *Document) error {
	if !doc.HasDoctype() {
		return nil
	}
	if _, err := io.WriteString(d.out, "<!DOCTYPE "); err != nil {
		return err
	}
	_, _ = io.WriteString(d.out, doc.DoctypeName())
	switch {
	case doc.PublicID() != "":
		_, _ = io.WriteString(d.out, ` PUBLIC "`+doc.PublicID()+`"`)
		if doc.SystemID() != "" {
			_, _ = io.WriteString(d.out, ` "`+doc.SystemID()+`"`)
		}
	case doc.SystemID() != "":
		_, _ = io.WriteString(d.out, ` SYSTEM "`+doc.SystemID()+`"`)
	}
	_, err := io.WriteString(d.out, ">\n")
	return err
}

func (d *dumpVisitor) EndDocument(*Document) error {
	_, err := io.WriteString(d.out, "\n")
	return err
}

func (d *dumpVisitor) StartElement(e *Element) error {
	if _, err := io.WriteString(d.out, "<"+e.Name()); err != nil {
		return err
	}
	for _, attr := range e.Attributes(nil) {
		_, _ = io.WriteString(d.out, " "+attr.Name+`="`)
		if err := escapeAttrValue(d.out, attr.Value); err != nil {
			return err
		}
		_, _ = io.WriteString(d.out, `"`)
	}
	_, err := io.WriteString(d.out, ">")
	return err
}

func (d *dumpVisitor) EndElement(e *Element) error {
	if _, void := voidElements[e.Name()]; void {
		return nil
	}
	_, err := io.WriteString(d.out, "</"+e.Name()+">")
	return err
}

func (d *dumpVisitor) Text(n *Text) error {
	bs := pool.ByteSlice()
	buf := bs.Get()
	buf = n.Content(buf)
	err := escapeText(d.out, buf)
	bs.Put(buf)
	return err
}

func (d *dumpVisitor) CDATA(n *CDATA) error {
	if _, err := io.WriteString(d.out, "<![CDATA["); err != nil {
		return err
	}
	bs := pool.ByteSlice()
	buf := bs.Get()
	buf = n.Content(buf)
	_, err := d.out.Write(buf)
	bs.Put(buf)
	if err != nil {
		return err
	}
	_, err = io.WriteString(d.out, "]]>")
	return err
}

func (d *dumpVisitor) Comment(n *Comment) error {
	if _, err := io.WriteString(d.out, "<!--"); err != nil {
		return err
	}
	bs := pool.ByteSlice()
	buf := bs.Get()
	buf = n.Content(buf)
	_, err := d.out.Write(buf)
	bs.Put(buf)
	if err != nil {
		return err
	}
	_, err = io.WriteString(d.out, "-->")
	return err
}

var (
	escQuot = []byte("&#34;")
	escAmp  = []byte("&amp;")
	escLt   = []byte("&lt;")
	escGt   = []byte("&gt;")
)

func escapeText(w io.Writer, s []byte) error {
	return escape(w, s, false)
}

func escapeAttrValue(w io.Writer, s string) error {
	return escape(w, []byte(s), true)
}

func escape(w io.Writer, s []byte, quote bool) error {
	var esc []byte
	last := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '&':
			esc = escAmp
		case '<':
			esc = escLt
		case '>':
			esc = escGt
		case '"':
			if !quote {
				continue
			}
			esc = escQuot
		default:
			continue
		}
		if _, err := w.Write(s[last:i]); err != nil {
			return err
		}
		if _, err := w.Write(esc); err != nil {
			return err
		}
		last = i + 1
	}
	_, err := w.Write(s[last:])
	return err
}
