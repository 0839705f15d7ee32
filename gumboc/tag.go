package gumboc

import (
	"fmt"
	"strings"
)

// tagCount is the number of constructible Tag discriminants, TagUnknown
// included.
const tagCount = uint32(len(tagNames)) + 1

var tagByName = make(map[string]Tag, len(tagNames))

func init() {
	for i, name := range tagNames {
		tagByName[name] = Tag(i)
	}
}

func TagFromRaw(raw uint32) (Tag, error) {
	return enumFromRaw[Tag]("Tag", raw, tagCount)
}

// Name returns the canonical lowercase tag name. TagUnknown has no name
// of its own and yields "".
func (t Tag) Name() (string, error) {
	if int(t) < len(tagNames) {
		return tagNames[t], nil
	}
	if t == TagUnknown {
		return "", nil
	}
	return "", &UnknownVariantError{Type: "Tag", Value: int64(t)}
}

func (t Tag) String() string {
	if int(t) < len(tagNames) {
		return tagNames[t]
	}
	if t == TagUnknown {
		return "unknown"
	}
	return fmt.Sprintf("Tag(%d)", uint32(t))
}

// TagByName resolves a canonical tag name, case-insensitively, back to
// its variant.
func TagByName(name string) (Tag, error) {
	if t, ok := tagByName[name]; ok {
		return t, nil
	}
	if t, ok := tagByName[strings.ToLower(name)]; ok {
		return t, nil
	}
	return 0, &UnknownVariantError{Type: "Tag", Name: name}
}

// tagFromOriginalText strips the markup punctuation from a raw tag view:
// "</x ...>" yields "x", "<x a=b>" yields "x" (cut at the first space or
// slash). Views that do not look like tags pass through untouched, and a
// nil view stays nil.
func tagFromOriginalText(b []byte) []byte {
	if len(b) < 2 || b[0] != '<' || b[len(b)-1] != '>' {
		return b
	}
	if b[1] == '/' {
		return b[2 : len(b)-1]
	}
	b = b[1 : len(b)-1]
	for i, c := range b {
		if c == ' ' || c == '/' {
			return b[:i]
		}
	}
	return b
}

// svgTagReplacements restores the canonical mixed-case spelling of SVG
// tag names, which the tokenizer lowercases along with everything else.
var svgTagReplacements = map[string]string{
	"altglyph":            "altGlyph",
	"altglyphdef":         "altGlyphDef",
	"altglyphitem":        "altGlyphItem",
	"animatecolor":        "animateColor",
	"animatemotion":       "animateMotion",
	"animatetransform":    "animateTransform",
	"clippath":            "clipPath",
	"feblend":             "feBlend",
	"fecolormatrix":       "feColorMatrix",
	"fecomponenttransfer": "feComponentTransfer",
	"fecomposite":         "feComposite",
	"feconvolvematrix":    "feConvolveMatrix",
	"fediffuselighting":   "feDiffuseLighting",
	"fedisplacementmap":   "feDisplacementMap",
	"fedistantlight":      "feDistantLight",
	"feflood":             "feFlood",
	"fefunca":             "feFuncA",
	"fefuncb":             "feFuncB",
	"fefuncg":             "feFuncG",
	"fefuncr":             "feFuncR",
	"fegaussianblur":      "feGaussianBlur",
	"feimage":             "feImage",
	"femerge":             "feMerge",
	"femergenode":         "feMergeNode",
	"femorphology":        "feMorphology",
	"feoffset":            "feOffset",
	"fepointlight":        "fePointLight",
	"fespecularlighting":  "feSpecularLighting",
	"fespotlight":         "feSpotLight",
	"fetile":              "feTile",
	"feturbulence":        "feTurbulence",
	"foreignobject":       "foreignObject",
	"glyphref":            "glyphRef",
	"lineargradient":      "linearGradient",
	"radialgradient":      "radialGradient",
	"textpath":            "textPath",
}

// normalizeSVGTagName reports the canonical SVG spelling for a tag name,
// matched case-insensitively against the replacement table.
func normalizeSVGTagName(b []byte) (string, bool) {
	name, ok := svgTagReplacements[strings.ToLower(string(b))]
	return name, ok
}

// TagName resolves the element's display name the way the source spelled
// it. SVG elements keep their canonical mixed-case names even when the
// tag is a known variant; unknown tags fall back to the lowercased
// original text, or to "" when the parser inserted the element and no
// original text exists; everything else comes from the static table.
func (e *Element) TagName() string {
	original := tagFromOriginalText(e.OriginalTag.Bytes())
	if e.TagNamespace == NamespaceSVG {
		if name, ok := normalizeSVGTagName(original); ok {
			return name
		}
	}
	if e.Tag == TagUnknown {
		if original == nil {
			return ""
		}
		return strings.ToLower(string(original))
	}
	name, _ := e.Tag.Name()
	return name
}
