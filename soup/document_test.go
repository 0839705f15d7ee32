package soup_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-gumbo/gumbo/soup"
)

func TestDocument(t *testing.T) {
	t.Run("NewDocument", func(t *testing.T) {
		doc := soup.NewDocument()
		require.NotNil(t, doc)
		require.Equal(t, soup.DocumentNodeType, doc.Type())
		require.Equal(t, "#document", doc.LocalName())
		require.False(t, doc.HasDoctype(), `fresh documents have no doctype`)
		require.Equal(t, soup.NoQuirks, doc.QuirksMode())
	})

	t.Run("CreateElement", func(t *testing.T) {
		doc := soup.NewDocument()
		elem := doc.CreateElement("test")
		require.NotNil(t, elem)
		require.Equal(t, "test", elem.LocalName())
		require.Equal(t, doc, elem.OwnerDocument())
	})

	t.Run("CreateText", func(t *testing.T) {
		doc := soup.NewDocument()
		text := doc.CreateText([]byte("hello"))
		require.NotNil(t, text)
		require.Equal(t, soup.TextNodeType, text.Type())
		require.Equal(t, doc, text.OwnerDocument())
	})

	t.Run("CreateCDATA", func(t *testing.T) {
		doc := soup.NewDocument()
		cdata := doc.CreateCDATA([]byte("raw"))
		require.NotNil(t, cdata)
		require.Equal(t, soup.CDATANodeType, cdata.Type())
		require.Equal(t, "#cdata-section", cdata.LocalName())
		require.Equal(t, doc, cdata.OwnerDocument())
	})

	t.Run("CreateComment", func(t *testing.T) {
		doc := soup.NewDocument()
		comment := doc.CreateComment([]byte("test comment"))
		require.NotNil(t, comment)
		require.Equal(t, soup.CommentNodeType, comment.Type())
		require.Equal(t, doc, comment.OwnerDocument())
	})

	t.Run("SetDoctype", func(t *testing.T) {
		doc := soup.NewDocument()
		doc.SetDoctype("html", "", "")
		require.True(t, doc.HasDoctype())
		require.Equal(t, "html", doc.DoctypeName())
		require.Equal(t, "", doc.PublicID())
		require.Equal(t, "", doc.SystemID())
	})

	t.Run("SetQuirksMode", func(t *testing.T) {
		doc := soup.NewDocument()
		doc.SetQuirksMode(soup.LimitedQuirks)
		require.Equal(t, soup.LimitedQuirks, doc.QuirksMode())
		require.Equal(t, "limited-quirks", doc.QuirksMode().String())
	})

	t.Run("Root skips document-level comments", func(t *testing.T) {
		doc := soup.NewDocument()
		comment := doc.CreateComment([]byte("leading"))
		html := doc.CreateElement("html")

		require.NoError(t, doc.AddChild(comment))
		require.NoError(t, doc.AddChild(html))

		require.Equal(t, html, doc.Root(), `Root should return the first element child`)
	})

	t.Run("AddSibling is invalid on documents", func(t *testing.T) {
		doc := soup.NewDocument()
		require.Equal(t, soup.ErrInvalidOperation, doc.AddSibling(soup.NewDocument()))
	})
}

func TestWalk(t *testing.T) {
	doc := soup.NewDocument()
	html := doc.CreateElement("html")
	head := doc.CreateElement("head")
	body := doc.CreateElement("body")
	text := doc.CreateText([]byte("Hi"))

	require.NoError(t, doc.AddChild(html))
	require.NoError(t, html.AddChild(head))
	require.NoError(t, html.AddChild(body))
	require.NoError(t, body.AddChild(text))

	var names []string
	require.NoError(t, soup.Walk(doc, func(n soup.Node) error {
		names = append(names, n.LocalName())
		return nil
	}), `Walk should visit every node`)

	require.Equal(t, []string{"#document", "html", "head", "body", "#text"}, names,
		`Walk should visit parents before children, siblings in order`)
}
