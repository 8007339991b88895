package dynarray

import (
	"fmt"
	"reflect"
	"unsafe"
)

// ArenaAllocator carves element slots out of a Region. Deallocate does not
// give memory back; it returns to the region when the arena is Reset, so a
// vector must be released (or abandoned) before that happens.
//
// Arena memory is not scanned by the garbage collector, so T must not
// contain pointers, strings, slices, maps, channels, funcs or interfaces.
type ArenaAllocator[T any] struct {
	r    Region
	size uintptr
}

// NewArenaAllocator returns an allocator drawing from r. It fails with
// ErrPointerElem if T holds pointers.
func NewArenaAllocator[T any](r Region) (*ArenaAllocator[T], error) {
	t := reflect.TypeFor[T]()
	if hasPointers(t) {
		return nil, fmt.Errorf("%w: %s", ErrPointerElem, t)
	}
	return &ArenaAllocator[T]{r: r, size: t.Size()}, nil
}

// Allocate implements Allocator.
func (a *ArenaAllocator[T]) Allocate(n int) ([]T, error) {
	if n == 0 {
		return nil, nil
	}
	if !fits(n, a.size, maxHeapBytes) {
		return nil, outOfMemory(n, a.size)
	}
	if a.size == 0 {
		return make([]T, n), nil
	}
	b, err := a.r.TryAllocBytes(n * int(a.size))
	if err != nil {
		return nil, outOfMemory(n, a.size)
	}
	return unsafe.Slice((*T)(unsafe.Pointer(&b[0])), n), nil
}

// Deallocate implements Allocator. It is a no-op.
func (a *ArenaAllocator[T]) Deallocate([]T) {}

// hasPointers reports whether values of t contain anything the garbage
// collector has to trace.
func hasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Array:
		return t.Len() > 0 && hasPointers(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if hasPointers(t.Field(i).Type) {
				return true
			}
		}
		return false
	case reflect.Pointer, reflect.UnsafePointer, reflect.String, reflect.Slice,
		reflect.Map, reflect.Chan, reflect.Func, reflect.Interface:
		return true
	default:
		return false
	}
}
