package dynarray

import (
	"unsafe"

	"github.com/sirupsen/logrus"
)

// DefaultChunkSize is the default chunk size for new arenas (64 KiB).
const DefaultChunkSize = 1 << 16

// Region hands out raw byte ranges that an ArenaAllocator turns into
// element slots. Arena and SafeArena implement it.
type Region interface {
	TryAllocBytes(n int) ([]byte, error)
}

// chunk is one contiguous block of arena memory.
type chunk struct {
	buf    []byte  // backing memory
	offset uintptr // next free byte within buf
}

// Arena is a chunked bump allocator. Regions are never freed one by one;
// Reset recycles every chunk at once. Not goroutine-safe; use SafeArena to
// share one between goroutines.
type Arena struct {
	chunks    []chunk
	chunkSize int
	limit     int // maximum total chunk bytes, 0 for none
	cur       int // index of the chunk being bumped
}

// NewArena creates an arena with one chunk of chunkSize bytes.
// If chunkSize <= 0, DefaultChunkSize is used.
func NewArena(chunkSize int) *Arena {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	a := &Arena{chunkSize: chunkSize}
	a.grow(chunkSize)
	return a
}

// SetLimit caps the total bytes the arena may hold in chunks. Requests that
// would need a chunk beyond the cap fail with ErrOutOfMemory. A limit <= 0
// removes the cap. Chunks already allocated are kept.
func (a *Arena) SetLimit(maxBytes int) {
	a.panicIfReleased()
	if maxBytes < 0 {
		maxBytes = 0
	}
	a.limit = maxBytes
}

// AllocBytes returns n bytes of arena memory, or nil if n <= 0 or the
// arena limit would be exceeded. The contents are unspecified.
func (a *Arena) AllocBytes(n int) []byte {
	b, err := a.TryAllocBytes(n)
	if err != nil {
		return nil
	}
	return b
}

// TryAllocBytes returns n bytes of pointer-aligned arena memory. It returns
// nil, nil for n <= 0 and an error matching ErrOutOfMemory when the arena
// limit would be exceeded. It panics if the arena has been released.
func (a *Arena) TryAllocBytes(n int) ([]byte, error) {
	if n <= 0 {
		return nil, nil
	}

	a.panicIfReleased()
	// Chunks past cur only have free space after a Reset.
	for i := a.cur; i < len(a.chunks); i++ {
		c := &a.chunks[i]
		off := alignPtr(c.offset)
		if off+uintptr(n) <= uintptr(len(c.buf)) {
			a.cur = i
			return a.take(c, off, n), nil
		}
	}

	if a.limit > 0 && a.Capacity()+max(n, a.chunkSize) > a.limit {
		a.logger().WithFields(logrus.Fields{
			"request":  n,
			"capacity": a.Capacity(),
			"limit":    a.limit,
		}).Debug("dynarray: arena limit reached")
		return nil, outOfMemory(n, 1)
	}
	a.grow(n)
	c := &a.chunks[a.cur]
	return a.take(c, 0, n), nil
}

// take carves n bytes at off out of c.
func (a *Arena) take(c *chunk, off uintptr, n int) []byte {
	c.offset = off + uintptr(n)
	return unsafe.Slice((*byte)(unsafe.Pointer(&c.buf[off])), n)
}

// EnsureCapacity makes sure the current chunk has at least n free bytes,
// adding a chunk if it does not.
func (a *Arena) EnsureCapacity(n int) {
	a.panicIfReleased()
	c := &a.chunks[a.cur]
	if alignPtr(c.offset)+uintptr(n) > uintptr(len(c.buf)) {
		a.grow(n)
	}
}

// Reset rewinds every chunk so its memory can be handed out again. Slots
// obtained before Reset must no longer be used.
func (a *Arena) Reset() {
	a.panicIfReleased()
	for i := range a.chunks {
		a.chunks[i].offset = 0
	}
	a.cur = 0
}

// Release drops all chunks and makes the arena unusable.
// Any subsequent allocation panics.
func (a *Arena) Release() {
	a.chunks = nil
	a.cur = 0
}

// grow appends a chunk of at least min bytes and makes it current.
func (a *Arena) grow(min int) {
	size := max(a.chunkSize, min)
	a.chunks = append(a.chunks, chunk{buf: make([]byte, size)})
	a.cur = len(a.chunks) - 1
	if len(a.chunks) > 1 {
		a.logger().WithFields(logrus.Fields{
			"chunk":  size,
			"chunks": len(a.chunks),
		}).Debug("dynarray: arena grew")
	}
}

func (a *Arena) panicIfReleased() {
	if a.chunks == nil {
		panic("dynarray: arena used after Release")
	}
}

func (a *Arena) logger() logrus.FieldLogger {
	return Logger()
}

// alignPtr aligns the offset up to pointer size alignment.
func alignPtr(off uintptr) uintptr {
	const align = unsafe.Sizeof(uintptr(0))
	mask := align - 1
	return (off + mask) & ^mask
}
