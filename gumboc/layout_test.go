package gumboc

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestLayoutPins(t *testing.T) {
	if unsafe.Sizeof(uintptr(0)) != 8 {
		t.Skip("record layouts are pinned to 64-bit targets")
	}

	require.NoError(t, verifyLayout(), `layout verification should succeed`)

	for _, c := range layoutChecks() {
		t.Run(c.what, func(t *testing.T) {
			require.Equal(t, int(c.want), int(c.got), `%s should match the pinned ABI`, c.what)
		})
	}
}

func TestNodeUnionViews(t *testing.T) {
	var n Node
	n.Type = ElementNode

	el := n.V.Element()
	el.Tag = TagDiv
	el.TagNamespace = NamespaceHTML
	el.StartPos = SourcePosition{Line: 3, Column: 1, Offset: 40}

	require.Equal(t, TagDiv, n.V.Element().Tag, `element view should alias the union storage`)
	require.Equal(t, uint32(3), n.V.Element().StartPos.Line, `element view should alias the union storage`)

	// all three views share the same backing bytes
	require.Equal(t, unsafe.Pointer(n.V.Document()), unsafe.Pointer(n.V.Element()), `views should share storage`)
	require.Equal(t, unsafe.Pointer(n.V.Element()), unsafe.Pointer(n.V.Text()), `views should share storage`)
}

func TestGoString(t *testing.T) {
	require.Equal(t, "", GoString(nil), `nil pointer should yield ""`)

	buf := []byte{'h', 'i', 0, 'x'}
	require.Equal(t, "hi", GoString(&buf[0]), `GoString should stop at the first NUL`)

	empty := []byte{0}
	require.Equal(t, "", GoString(&empty[0]), `immediate NUL should yield ""`)
}

func TestStringPiece(t *testing.T) {
	t.Run("null view", func(t *testing.T) {
		var sp StringPiece
		require.True(t, sp.IsNull(), `zero view should be null`)
		require.Nil(t, sp.Bytes(), `null view should have nil bytes`)
		require.Equal(t, "", sp.String(), `null view should stringify empty`)
	})

	t.Run("window into a buffer", func(t *testing.T) {
		buf := []byte("<div>hello</div>")
		sp := StringPiece{Data: &buf[5], Length: 5}
		require.False(t, sp.IsNull(), `view should not be null`)
		require.Equal(t, 5, sp.Len(), `view length should match`)
		require.Equal(t, "hello", sp.String(), `view should stringify its window`)

		// String copies; mutating the buffer must not reach the copy
		s := sp.String()
		buf[5] = 'H'
		require.Equal(t, "hello", s, `string copies should be independent of the buffer`)
		require.Equal(t, "Hello", sp.String(), `views should observe buffer mutation`)
	})
}

func TestSourcePositionSentinel(t *testing.T) {
	require.True(t, EmptySourcePosition.IsEmpty(), `sentinel should be empty`)
	require.True(t, SourcePosition{}.IsEmpty(), `zero position should be empty`)
	require.False(t, SourcePosition{Line: 1, Column: 1, Offset: 0}.IsEmpty(), `real positions are 1-based and never empty`)
}

func TestVectors(t *testing.T) {
	a := &Node{Type: ElementNode}
	b := &Node{Type: TextNode}
	children := []*Node{a, b}

	v := NodeVector{Data: &children[0], Length: 2, Capacity: 2}
	require.Equal(t, 2, v.Len(), `vector length should match`)
	require.Same(t, a, v.At(0), `vector should index its backing array`)
	require.Same(t, b, v.At(1), `vector should index its backing array`)

	var empty NodeVector
	require.Equal(t, 0, empty.Len(), `empty vector should have length 0`)
}
