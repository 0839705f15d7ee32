package soup_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-gumbo/gumbo/soup"
)

func buildTestDoc(t *testing.T) *soup.Document {
	t.Helper()

	doc := soup.NewDocument()
	doc.SetDoctype("html", "", "")

	html := doc.CreateElement("html")
	head := doc.CreateElement("head")
	body := doc.CreateElement("body")
	p := doc.CreateElement("p")
	br := doc.CreateElement("br")

	require.NoError(t, doc.AddChild(html))
	require.NoError(t, html.AddChild(head))
	require.NoError(t, html.AddChild(body))
	require.NoError(t, body.AddChild(p))
	require.NoError(t, p.SetAttributeValue("class", `a"b`))
	require.NoError(t, p.AddChild(doc.CreateText([]byte("Hi & <bye>"))))
	require.NoError(t, p.AddChild(br))
	require.NoError(t, body.AddChild(doc.CreateComment([]byte(" c "))))
	return doc
}

func TestDumpDoc(t *testing.T) {
	doc := buildTestDoc(t)

	var buf bytes.Buffer
	d := soup.Dumper{}
	require.NoError(t, d.DumpDoc(&buf, doc), `DumpDoc should succeed`)

	expected := `<!DOCTYPE html>
<html><head></head><body><p class="a&#34;b">Hi &amp; &lt;bye&gt;<br></p><!-- c --></body></html>
`
	require.Equal(t, expected, buf.String(), `document should serialize in canonical form`)
}

func TestDumpNode(t *testing.T) {
	doc := buildTestDoc(t)
	p := doc.Root().FirstChild().NextSibling().FirstChild()

	var buf bytes.Buffer
	d := soup.Dumper{}
	require.NoError(t, d.DumpNode(&buf, p), `DumpNode should succeed`)
	require.Equal(t, `<p class="a&#34;b">Hi &amp; &lt;bye&gt;<br></p>`, buf.String(),
		`subtree should serialize without the document frame`)
}

func TestDumpDoctypeIdentifiers(t *testing.T) {
	doc := soup.NewDocument()
	doc.SetDoctype("html", "-//W3C//DTD HTML 4.01//EN", "http://www.w3.org/TR/html4/strict.dtd")

	var buf bytes.Buffer
	require.NoError(t, soup.Dump(&buf, doc), `Dump should succeed`)
	require.Equal(t,
		"<!DOCTYPE html PUBLIC \"-//W3C//DTD HTML 4.01//EN\" \"http://www.w3.org/TR/html4/strict.dtd\">\n\n",
		buf.String(), `public and system identifiers should both print`)
}

func TestDumpCDATA(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, soup.Dump(&buf, soup.NewCDATA([]byte("x < y"))), `Dump should succeed`)
	require.Equal(t, "<![CDATA[x < y]]>", buf.String(), `CDATA content should not be escaped`)
}

func TestDumpNoDoctype(t *testing.T) {
	doc := soup.NewDocument()
	html := doc.CreateElement("html")
	require.NoError(t, doc.AddChild(html))

	var buf bytes.Buffer
	require.NoError(t, soup.Dump(&buf, doc), `Dump should succeed`)
	require.False(t, strings.Contains(buf.String(), "DOCTYPE"),
		`documents without a doctype should not grow one`)
}
