package dynarray

import (
	"iter"
	"math"

	"github.com/sirupsen/logrus"
)

// Vector is a resizable contiguous array of T with explicit capacity
// management. Slots [0, Len()) hold live elements; slots [Len(), Cap())
// hold none. A Vector is not safe for concurrent use.
//
// The zero Vector is empty and uses HeapAllocator and Trivial.
type Vector[T any] struct {
	buf      []T // len(buf) is the capacity; nil when the capacity is 0
	size     int
	cfg      config[T]
	reallocs int
}

// New returns an empty vector with capacity 0.
func New[T any](opts ...Option[T]) *Vector[T] {
	return &Vector[T]{cfg: newConfig(opts)}
}

// NewSized returns a vector holding n default-constructed elements, with
// capacity exactly n.
func NewSized[T any](n int, opts ...Option[T]) (*Vector[T], error) {
	v := New(opts...)
	if err := v.Resize(n); err != nil {
		return nil, err
	}
	return v, nil
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int { return v.size }

// Cap returns the number of slots available without reallocating.
func (v *Vector[T]) Cap() int { return len(v.buf) }

// At returns a pointer to element i. It panics unless 0 <= i < Len().
// The pointer is valid until the next operation that changes Cap().
func (v *Vector[T]) At(i int) *T {
	return &v.buf[:v.size][i]
}

// Get returns a copy of element i. It panics unless 0 <= i < Len().
func (v *Vector[T]) Get(i int) T {
	return v.buf[:v.size][i]
}

// Set assigns x to the live element i. It panics unless 0 <= i < Len().
func (v *Vector[T]) Set(i int, x T) {
	v.buf[:v.size][i] = x
}

// Slice returns the live elements. The slice aliases the vector's buffer
// and is valid until the next operation that changes Cap().
func (v *Vector[T]) Slice() []T {
	return v.buf[:v.size:v.size]
}

// All iterates over the live elements and their indexes.
func (v *Vector[T]) All() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, &v.buf[i]) {
				return
			}
		}
	}
}

// Values iterates over copies of the live elements.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(v.buf[i]) {
				return
			}
		}
	}
}

// Reserve moves the live elements into a new buffer of exactly n slots and
// releases the old one, even when n <= Cap(). Reserving on an empty vector
// only allocates.
//
// n must be at least Len(); Reserve panics otherwise and the vector is left
// untouched. If allocation fails the vector is unchanged.
func (v *Vector[T]) Reserve(n int) error {
	if n < v.size {
		panic("dynarray: Reserve below Len")
	}
	return v.reallocate(n)
}

// Resize changes the number of live elements to n.
//
// Growing allocates a buffer of exactly n slots, relocates the live
// elements into it and default-constructs the rest. Shrinking destroys the
// trailing elements in place. Either way Cap() equals n afterwards, so any
// spare capacity from Reserve is dropped. Resize panics if n is negative.
func (v *Vector[T]) Resize(n int) error {
	switch {
	case n < 0:
		panic("dynarray: negative Resize")
	case n == v.size:
		return nil
	case n > v.size:
		if err := v.reallocate(n); err != nil {
			return err
		}
		for i := v.size; i < n; i++ {
			v.lifecycle().Construct(&v.buf[i])
		}
		v.size = n
	default:
		destroyRange(v.lifecycle(), v.buf[n:v.size])
		if n == 0 {
			v.releaseBuffer()
			return nil
		}
		v.buf = v.buf[:n]
		v.size = n
	}
	return nil
}

// EmplaceBack appends one default-constructed element.
func (v *Vector[T]) EmplaceBack() error {
	return v.EmplaceBackFunc(v.lifecycle().Construct)
}

// EmplaceBackFunc appends one element built in place by init, which
// receives the unoccupied slot. An empty vector first grows to its initial
// capacity; a full one doubles.
func (v *Vector[T]) EmplaceBackFunc(init func(slot *T)) error {
	if err := v.grow(); err != nil {
		return err
	}
	init(&v.buf[v.size])
	v.size++
	return nil
}

// PushBack appends one element constructed from x.
func (v *Vector[T]) PushBack(x T) error {
	return v.EmplaceBackFunc(func(slot *T) { *slot = x })
}

// CopyFrom makes v a copy of src. The elements v held are destroyed first,
// then every element of src is copy-constructed into v; no element is ever
// assigned. If v lacks room it gets a buffer of exactly src.Len() slots,
// allocated before anything is destroyed so that a failed allocation
// leaves v unchanged.
func (v *Vector[T]) CopyFrom(src *Vector[T]) error {
	if src == v {
		return nil
	}
	n := src.size

	var fresh []T
	if len(v.buf) < n {
		var err error
		if fresh, err = v.allocator().Allocate(n); err != nil {
			v.logAllocFailure(n, err)
			return err
		}
	}

	destroyRange(v.lifecycle(), v.buf[:v.size])
	v.size = 0
	if fresh != nil {
		old := v.buf
		v.buf = fresh
		v.deallocate(old)
		v.reallocs++
	}

	for i := 0; i < n; i++ {
		v.lifecycle().CopyConstruct(&v.buf[i], &src.buf[i])
	}
	v.size = n
	return nil
}

// Clone returns a new vector holding copies of v's elements, with the same
// allocator, lifecycle and logger.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	c := &Vector[T]{cfg: v.cfg}
	if err := c.CopyFrom(v); err != nil {
		return nil, err
	}
	return c, nil
}

// Move returns a new vector that takes over v's buffer in O(1). No element
// is constructed or destroyed. v is left empty and remains usable.
func (v *Vector[T]) Move() *Vector[T] {
	m := &Vector[T]{buf: v.buf, size: v.size, cfg: v.cfg}
	v.buf, v.size = nil, 0
	return m
}

// MoveFrom takes over src's buffer, together with the allocator and
// lifecycle that own its elements. Whatever v held before is released. src
// is left empty and remains usable.
func (v *Vector[T]) MoveFrom(src *Vector[T]) {
	if src == v {
		return
	}
	v.Release()
	v.buf, v.size = src.buf, src.size
	v.cfg.alloc, v.cfg.lc = src.allocator(), src.lifecycle()
	src.buf, src.size = nil, 0
}

// Release destroys the live elements and returns the buffer to the
// allocator. The vector is empty afterwards and may be reused.
func (v *Vector[T]) Release() {
	destroyRange(v.lifecycle(), v.buf[:v.size])
	v.releaseBuffer()
}

// grow makes room for one more element.
func (v *Vector[T]) grow() error {
	c := len(v.buf)
	switch {
	case c == 0:
		return v.reallocate(v.initialCapacity())
	case v.size < c:
		return nil
	case c > math.MaxInt/2:
		err := outOfMemory(c, slotSize[T]())
		v.logAllocFailure(c, err)
		return err
	default:
		return v.reallocate(2 * c)
	}
}

// reallocate relocates the live elements into a new buffer of n slots and
// hands the old buffer back to the allocator.
func (v *Vector[T]) reallocate(n int) error {
	fresh, err := v.allocator().Allocate(n)
	if err != nil {
		v.logAllocFailure(n, err)
		return err
	}
	relocate(v.lifecycle(), fresh, v.buf[:v.size])

	old := v.buf
	v.buf = fresh
	v.deallocate(old)
	if n > 0 || cap(old) > 0 {
		v.reallocs++
	}

	v.logger().WithFields(logrus.Fields{
		"from": len(old),
		"to":   n,
		"live": v.size,
	}).Debug("dynarray: reallocated")
	return nil
}

// releaseBuffer drops the buffer without touching any element.
func (v *Vector[T]) releaseBuffer() {
	old := v.buf
	v.buf, v.size = nil, 0
	v.deallocate(old)
}

func (v *Vector[T]) deallocate(buf []T) {
	if cap(buf) > 0 {
		v.allocator().Deallocate(buf)
	}
}

func (v *Vector[T]) allocator() Allocator[T] {
	if v.cfg.alloc == nil {
		return HeapAllocator[T]{}
	}
	return v.cfg.alloc
}

func (v *Vector[T]) lifecycle() Lifecycle[T] {
	if v.cfg.lc == nil {
		return Trivial[T]{}
	}
	return v.cfg.lc
}

func (v *Vector[T]) initialCapacity() int {
	if v.cfg.initial <= 0 {
		return DefaultInitialCapacity
	}
	return v.cfg.initial
}

func (v *Vector[T]) logger() logrus.FieldLogger {
	if v.cfg.log != nil {
		return v.cfg.log
	}
	return Logger()
}

func (v *Vector[T]) logAllocFailure(n int, err error) {
	v.logger().WithError(err).WithFields(logrus.Fields{
		"requested": n,
		"capacity":  len(v.buf),
		"live":      v.size,
	}).Debug("dynarray: allocation failed")
}
