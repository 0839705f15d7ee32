// Package pool recycles the scratch buffers the dumper and converters
// burn through.
package pool

import (
	"sync"
)

const defaultByteSliceCapacity = 64

// ByteSlicePool hands out zero-length byte slices with warm capacity.
// Put resets the length, never the contents; callers must not read
// beyond what they wrote.
type ByteSlicePool struct {
	pool sync.Pool
}

var byteSlicePool = &ByteSlicePool{
	pool: sync.Pool{
		New: func() interface{} {
			return make([]byte, 0, defaultByteSliceCapacity)
		},
	},
}

// ByteSlice returns the process-wide byte slice pool.
func ByteSlice() *ByteSlicePool {
	return byteSlicePool
}

// Get returns an empty slice with at least the default capacity.
func (p *ByteSlicePool) Get() []byte {
	return p.pool.Get().([]byte)[:0]
}

// GetCapacity returns an empty slice with at least n bytes of capacity.
func (p *ByteSlicePool) GetCapacity(n int) []byte {
	b := p.Get()
	if cap(b) < n {
		p.Put(b)
		b = make([]byte, 0, n)
	}
	return b
}

// Put returns a slice to the pool. The slice must not be used again by
// the caller; growing it first is fine, the grown backing array is what
// comes back from the next Get.
func (p *ByteSlicePool) Put(b []byte) {
	p.pool.Put(b[:0])
}
