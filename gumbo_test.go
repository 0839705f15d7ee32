package gumbo_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-gumbo/gumbo"
	"github.com/go-gumbo/gumbo/gumboc"
	"github.com/go-gumbo/gumbo/soup"
)

func requireLibrary(t *testing.T) {
	t.Helper()
	if !gumboc.Available() {
		t.Skipf("native gumbo library unavailable: %s", gumboc.Load())
	}
}

func TestParse(t *testing.T) {
	requireLibrary(t)

	doc, err := gumbo.Parse([]byte(`<!DOCTYPE html><p>Hi`))
	require.NoError(t, err, `parse should succeed`)

	require.True(t, doc.HasDoctype(), `doctype should be recorded`)
	require.Equal(t, "html", doc.DoctypeName())
	require.Equal(t, soup.NoQuirks, doc.QuirksMode())

	html := doc.Root()
	require.NotNil(t, html, `document should have a root element`)
	require.Equal(t, "html", html.Name())

	head := html.FirstChild().(*soup.Element)
	require.Equal(t, "head", head.Name(), `parser should imply a head`)
	body := head.NextSibling().(*soup.Element)
	require.Equal(t, "body", body.Name(), `parser should imply a body`)

	p := body.FirstChild().(*soup.Element)
	require.Equal(t, "p", p.Name())
	require.Equal(t, []byte("<p>"), p.OriginalTag())
	require.Equal(t, soup.Position{Line: 1, Column: 16, Offset: 15}, p.StartPos())

	text := p.FirstChild().(*soup.Text)
	require.Equal(t, []byte("Hi"), text.Content(nil))

	require.Equal(t, soup.Node(text), p.NextNode(), `document order should thread into the text`)
	require.Nil(t, text.NextNode(), `text is the last node of this document`)
}

func TestParseDump(t *testing.T) {
	requireLibrary(t)

	doc, err := gumbo.Parse([]byte(`<!DOCTYPE html><p>Hi`))
	require.NoError(t, err, `parse should succeed`)

	var buf bytes.Buffer
	var d soup.Dumper
	require.NoError(t, d.DumpDoc(&buf, doc), `dump should succeed`)
	require.Equal(t,
		"<!DOCTYPE html>\n<html><head></head><body><p>Hi</p></body></html>\n",
		buf.String())
}

func TestConvertOutlivesResult(t *testing.T) {
	requireLibrary(t)

	res, err := gumboc.Parse([]byte(`<!DOCTYPE html><p title="x">Hi`))
	require.NoError(t, err, `parse should succeed`)

	doc, err := gumbo.Convert(res)
	require.NoError(t, err, `conversion should succeed`)
	require.NoError(t, res.Close(), `closing the result should succeed`)

	// everything below reads owned memory only
	p := doc.Root().FirstChild().NextSibling().FirstChild().(*soup.Element)
	require.Equal(t, "p", p.Name())
	require.Equal(t, "x", p.Attribute("title").Value)
	require.Equal(t, []byte(`<p title="x">`), p.OriginalTag())
	require.Equal(t, []byte("Hi"), p.FirstChild().Content(nil))

	_, err = gumbo.Convert(res)
	require.Error(t, err, `a closed result should not convert again`)
}

func TestParseFragmentGrowsScaffolding(t *testing.T) {
	requireLibrary(t)

	doc, err := gumbo.Parse([]byte(`<div>plain`))
	require.NoError(t, err, `parse should succeed`)

	require.False(t, doc.HasDoctype(), `fragment has no doctype`)
	require.Equal(t, soup.Quirks, doc.QuirksMode(), `missing doctype should put the document in quirks mode`)

	html := doc.Root()
	require.NotNil(t, html, `parser should imply an html root`)
	require.Nil(t, html.OriginalTag(), `implied root has no source text`)
	require.True(t, html.StartPos().IsZero(), `implied root has no position`)
}
