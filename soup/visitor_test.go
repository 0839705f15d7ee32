package soup_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/go-gumbo/gumbo/soup"
)

type eventRecorder struct {
	events []string
	fail   string
}

func (r *eventRecorder) record(ev string) error {
	r.events = append(r.events, ev)
	if ev == r.fail {
		return errors.Errorf(`failing on %s`, ev)
	}
	return nil
}

func (r *eventRecorder) StartDocument(*soup.Document) error { return r.record("start-doc") }
func (r *eventRecorder) EndDocument(*soup.Document) error   { return r.record("end-doc") }
func (r *eventRecorder) StartElement(e *soup.Element) error { return r.record("start " + e.Name()) }
func (r *eventRecorder) EndElement(e *soup.Element) error   { return r.record("end " + e.Name()) }
func (r *eventRecorder) Text(*soup.Text) error              { return r.record("text") }
func (r *eventRecorder) CDATA(*soup.CDATA) error            { return r.record("cdata") }
func (r *eventRecorder) Comment(*soup.Comment) error        { return r.record("comment") }

func TestVisit(t *testing.T) {
	doc := soup.NewDocument()
	html := doc.CreateElement("html")
	body := doc.CreateElement("body")

	require.NoError(t, doc.AddChild(doc.CreateComment([]byte("lead"))))
	require.NoError(t, doc.AddChild(html))
	require.NoError(t, html.AddChild(body))
	require.NoError(t, body.AddChild(doc.CreateText([]byte("Hi"))))
	require.NoError(t, body.AddChild(doc.CreateCDATA([]byte("raw"))))

	t.Run("event order", func(t *testing.T) {
		rec := &eventRecorder{}
		require.NoError(t, soup.Visit(doc, rec), `Visit should succeed`)
		require.Equal(t, []string{
			"start-doc",
			"comment",
			"start html",
			"start body",
			"text",
			"cdata",
			"end body",
			"end html",
			"end-doc",
		}, rec.events, `events should fire in document order with enter/leave pairing`)
	})

	t.Run("errors abort traversal", func(t *testing.T) {
		rec := &eventRecorder{fail: "start body"}
		err := soup.Visit(doc, rec)
		require.Error(t, err, `callback errors should propagate`)
		require.Equal(t, "start body", rec.events[len(rec.events)-1],
			`nothing should run after the failing callback`)
	})

	t.Run("nil node", func(t *testing.T) {
		require.Error(t, soup.Visit(nil, &eventRecorder{}), `nil nodes should be rejected`)
	})
}
