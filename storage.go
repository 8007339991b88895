package dynarray

import (
	"sync"
	"unsafe"
)

// maxHeapBytes bounds a single heap request: 2^47 on 64-bit platforms and
// 2^31 on 32-bit ones, below the runtime's own makeslice limit.
const maxHeapBytes = uint64(1) << (31 + 16*(^uint(0)>>63))

// Allocator provides raw slot storage for a Vector. It never runs element
// lifecycle hooks: the slots it returns hold no live value, and Deallocate
// must not touch their contents.
type Allocator[T any] interface {
	// Allocate returns a slice with length and capacity n. A request for
	// zero slots returns nil. On failure it returns an error matching
	// ErrOutOfMemory and nothing is allocated.
	Allocate(n int) ([]T, error)

	// Deallocate releases a slice obtained from Allocate. The slice may have
	// been resliced to a shorter length; its capacity sizes the region.
	Deallocate(buf []T)
}

// slotSize returns the size of one T.
func slotSize[T any]() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}

// fits reports whether n slots of size bytes stay within limit.
func fits(n int, size uintptr, limit uint64) bool {
	if n < 0 {
		return false
	}
	if size == 0 {
		return true
	}
	return uint64(n) <= limit/uint64(size)
}

// HeapAllocator allocates slots on the Go heap.
type HeapAllocator[T any] struct{}

// Allocate implements Allocator.
func (HeapAllocator[T]) Allocate(n int) ([]T, error) {
	if n == 0 {
		return nil, nil
	}
	if !fits(n, slotSize[T](), maxHeapBytes) {
		return nil, outOfMemory(n, slotSize[T]())
	}
	return make([]T, n), nil
}

// Deallocate implements Allocator. The garbage collector reclaims the
// region once no slice refers to it.
func (HeapAllocator[T]) Deallocate([]T) {}

// AllocatorStats is a snapshot of a LimitedAllocator's bookkeeping.
type AllocatorStats struct {
	Allocations   int // successful Allocate calls returning a region
	Deallocations int // Deallocate calls releasing a region
	Failures      int // requests rejected for exceeding the budget
	SlotsInUse    int // slots allocated and not yet deallocated
	PeakSlots     int // highest SlotsInUse observed
	Limit         int // slot budget
}

// LimitedAllocator enforces a slot budget on top of another allocator.
// It is safe for use by several vectors at once.
type LimitedAllocator[T any] struct {
	mu    sync.Mutex
	next  Allocator[T]
	stats AllocatorStats
}

// NewLimitedAllocator wraps next so that at most limit slots are outstanding
// at any time. A nil next selects HeapAllocator.
func NewLimitedAllocator[T any](next Allocator[T], limit int) *LimitedAllocator[T] {
	if next == nil {
		next = HeapAllocator[T]{}
	}
	if limit < 0 {
		limit = 0
	}
	return &LimitedAllocator[T]{next: next, stats: AllocatorStats{Limit: limit}}
}

// Allocate implements Allocator.
func (l *LimitedAllocator[T]) Allocate(n int) ([]T, error) {
	if n == 0 {
		return nil, nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	if n < 0 || n > l.stats.Limit-l.stats.SlotsInUse {
		l.stats.Failures++
		return nil, outOfMemory(n, slotSize[T]())
	}
	buf, err := l.next.Allocate(n)
	if err != nil {
		l.stats.Failures++
		return nil, err
	}
	l.stats.Allocations++
	l.stats.SlotsInUse += cap(buf)
	if l.stats.SlotsInUse > l.stats.PeakSlots {
		l.stats.PeakSlots = l.stats.SlotsInUse
	}
	return buf, nil
}

// Deallocate implements Allocator.
func (l *LimitedAllocator[T]) Deallocate(buf []T) {
	if cap(buf) == 0 {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.stats.Deallocations++
	l.stats.SlotsInUse -= cap(buf)
	l.next.Deallocate(buf)
}

// Stats returns a snapshot of the allocator's counters.
func (l *LimitedAllocator[T]) Stats() AllocatorStats {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.stats
}
