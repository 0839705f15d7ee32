package gumboc

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func view(b []byte) StringPiece {
	if len(b) == 0 {
		return StringPiece{}
	}
	return StringPiece{Data: &b[0], Length: uintptr(len(b))}
}

func TestTagTableConsistency(t *testing.T) {
	raw, err := os.ReadFile("tag.in")
	require.NoError(t, err, `tag.in should be readable`)

	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	require.Equal(t, len(lines), len(tagNames), `tag.in and tagNames should have the same entry count`)
	require.Equal(t, len(lines), len(tagSizes), `tag.in and tagSizes should have the same entry count`)
	require.EqualValues(t, len(lines), uint32(TagUnknown), `TagUnknown should sit right after the named variants`)

	for i, name := range lines {
		require.Equal(t, name, tagNames[i], `tagNames[%d] should match tag.in`, i)
		require.Equal(t, int(tagSizes[i]), len(tagNames[i]), `tagSizes[%d] should be the name's byte length`, i)
	}
}

func TestTagSpotChecks(t *testing.T) {
	require.Equal(t, Tag(0), TagHtml, `html should be the first variant`)
	name, err := TagAnnotationXml.Name()
	require.NoError(t, err, `annotation-xml should have a name`)
	require.Equal(t, "annotation-xml", name, `underscored variants should display hyphenated`)
}

func TestTagRoundTrip(t *testing.T) {
	for raw := uint32(0); raw < uint32(TagUnknown); raw++ {
		tag, err := TagFromRaw(raw)
		require.NoError(t, err, `discriminant %d should construct`, raw)

		name, err := tag.Name()
		require.NoError(t, err, `variant %d should have a name`, raw)

		back, err := TagByName(name)
		require.NoError(t, err, `name %q should resolve`, name)
		require.Equal(t, tag, back, `round trip through %q should be the identity`, name)
	}
}

func TestTagUnknown(t *testing.T) {
	tag, err := TagFromRaw(uint32(TagUnknown))
	require.NoError(t, err, `TagUnknown is a constructible variant`)
	require.Equal(t, TagUnknown, tag)

	name, err := TagUnknown.Name()
	require.NoError(t, err, `TagUnknown has a name lookup`)
	require.Equal(t, "", name, `TagUnknown's canonical name is empty`)

	_, err = TagFromRaw(uint32(TagUnknown) + 1)
	var oor *OutOfRangeError
	require.ErrorAs(t, err, &oor, `past-the-end discriminants should be rejected`)
}

func TestTagByName(t *testing.T) {
	t.Run("case insensitive", func(t *testing.T) {
		tag, err := TagByName("DIV")
		require.NoError(t, err, `uppercase spellings should resolve`)
		require.Equal(t, TagDiv, tag)

		tag, err = TagByName("Annotation-XML")
		require.NoError(t, err, `mixed-case spellings should resolve`)
		require.Equal(t, TagAnnotationXml, tag)
	})

	t.Run("unknown names", func(t *testing.T) {
		_, err := TagByName("divv")
		require.Error(t, err, `made-up names should not resolve`)

		var uv *UnknownVariantError
		require.ErrorAs(t, err, &uv, `error should be an UnknownVariantError`)
		require.Equal(t, "Tag", uv.Type)
		require.Equal(t, "divv", uv.Name)
	})
}

func TestTagFromOriginalText(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"start tag", "<div>", "div"},
		{"end tag", "</div>", "div"},
		{"attributes cut at space", `<div class="x">`, "div"},
		{"self closing cut at slash", "<br/>", "br"},
		{"end tag with junk", "</div >", "div "},
		{"not a tag", "div", "div"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := tagFromOriginalText([]byte(tc.in))
			require.Equal(t, tc.want, string(got), `stripping %q`, tc.in)
		})
	}

	require.Nil(t, tagFromOriginalText(nil), `nil view should stay nil`)
}

func TestNormalizeSVGTagName(t *testing.T) {
	require.Len(t, svgTagReplacements, 36, `replacement table should carry all 36 entries`)

	name, ok := normalizeSVGTagName([]byte("clippath"))
	require.True(t, ok, `clippath should normalize`)
	require.Equal(t, "clipPath", name)

	name, ok = normalizeSVGTagName([]byte("FOREIGNOBJECT"))
	require.True(t, ok, `matching should be case insensitive`)
	require.Equal(t, "foreignObject", name)

	_, ok = normalizeSVGTagName([]byte("divv"))
	require.False(t, ok, `names outside the table should miss`)
}

func TestElementTagName(t *testing.T) {
	t.Run("known variant uses the static table", func(t *testing.T) {
		el := Element{Tag: TagP, TagNamespace: NamespaceHTML, OriginalTag: view([]byte("<P >"))}
		require.Equal(t, "p", el.TagName())
	})

	t.Run("svg normalization wins over the static table", func(t *testing.T) {
		el := Element{Tag: TagDiv, TagNamespace: NamespaceSVG, OriginalTag: view([]byte("<textPath>"))}
		require.Equal(t, "textPath", el.TagName())
	})

	t.Run("svg names outside the table fall through", func(t *testing.T) {
		el := Element{Tag: TagUnknown, TagNamespace: NamespaceSVG, OriginalTag: view([]byte("<divv>"))}
		require.Equal(t, "divv", el.TagName())
	})

	t.Run("unknown tag lowercases the original text", func(t *testing.T) {
		el := Element{Tag: TagUnknown, TagNamespace: NamespaceHTML, OriginalTag: view([]byte(`<DiVV class="x">`))}
		require.Equal(t, "divv", el.TagName())
	})

	t.Run("parser-inserted unknown has no name", func(t *testing.T) {
		el := Element{Tag: TagUnknown, TagNamespace: NamespaceHTML}
		require.Equal(t, "", el.TagName())
	})

	t.Run("parser-inserted known variant keeps its table name", func(t *testing.T) {
		el := Element{Tag: TagHtml, TagNamespace: NamespaceHTML}
		require.Equal(t, "html", el.TagName())
	})
}
