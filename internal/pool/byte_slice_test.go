package pool_test

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-gumbo/gumbo/internal/pool"
)

func TestByteSliceSequential(t *testing.T) {
	bs := pool.ByteSlice()

	b := bs.Get()
	require.Len(t, b, 0, `fresh slice should be empty`)
	require.GreaterOrEqual(t, cap(b), 64, `fresh slice should have warm capacity`)

	b = append(b, 1, 2, 3)
	bs.Put(b)

	b2 := bs.Get()
	require.Len(t, b2, 0, `recycled slice should come back empty`)
	require.GreaterOrEqual(t, cap(b2), 64, `recycled slice should keep its capacity`)

	big := bs.GetCapacity(4096)
	require.Len(t, big, 0)
	require.GreaterOrEqual(t, cap(big), 4096, `GetCapacity should honor the request`)
	bs.Put(big)
}

func TestByteSliceConcurrent(t *testing.T) {
	const n = 30
	const capacity = 128
	bs := pool.ByteSlice()

	var wg sync.WaitGroup
	contents := make([]string, n)
	wg.Add(n)
	for i := range n {
		go func() {
			defer wg.Done()

			b := bs.GetCapacity(capacity)
			defer bs.Put(b)
			require.GreaterOrEqual(t, cap(b), capacity)
			require.Len(t, b, 0)

			for range capacity {
				b = append(b, byte(i+0x21))
			}
			contents[i] = string(b)
		}()
	}
	wg.Wait()

	for i, s := range contents {
		require.Equal(t, string(bytes.Repeat([]byte{byte(i + 0x21)}, capacity)), s,
			`no goroutine should see another's buffer`)
	}
}
