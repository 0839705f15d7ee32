package orderedmap_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-gumbo/gumbo/internal/orderedmap"
)

func TestMap(t *testing.T) {
	m := orderedmap.New[string, int]()

	require.NoError(t, m.Set("class", 1), `first Set should succeed`)
	require.NoError(t, m.Set("id", 2), `second Set should succeed`)
	require.NoError(t, m.Set("href", 3), `third Set should succeed`)
	require.Equal(t, 3, m.Len(), `Len should count entries`)

	err := m.Set("id", 99)
	require.ErrorIs(t, err, orderedmap.ErrDuplicateEntry, `duplicate key should be rejected`)
	require.Equal(t, 3, m.Len(), `rejected Set should not grow the map`)

	v, ok := m.Get("id")
	require.True(t, ok, `Get should find existing keys`)
	require.Equal(t, 2, v, `rejected Set should not overwrite`)

	_, ok = m.Get("missing")
	require.False(t, ok, `Get should miss absent keys`)

	var keys []string
	var values []int
	for k, v := range m.Range() {
		keys = append(keys, k)
		values = append(values, v)
	}
	require.Equal(t, []string{"class", "id", "href"}, keys, `Range should follow insertion order`)
	require.Equal(t, []int{1, 2, 3}, values, `Range should yield the stored values`)
}
