// Package dynarray implements Vector, a generic resizable array whose
// storage and element lifetimes are managed explicitly.
//
// # Overview
//
// A Vector owns a single buffer of Cap() slots, of which the first Len()
// hold live elements. Buffer memory comes from an Allocator, and elements
// are brought to life and retired through a Lifecycle, so callers control
// exactly when each element is default-constructed, copied, moved or
// destroyed:
//
//   - Reserve(n) relocates the live elements into a buffer of exactly n
//     slots. Reserving on an empty vector only allocates.
//   - Resize(n) grows into a buffer of exactly n slots, default-constructing
//     the new tail, or destroys the trailing elements in place. Cap() equals
//     n afterwards either way.
//   - EmplaceBack, EmplaceBackFunc and PushBack append one element, growing
//     an empty vector to 16 slots and doubling a full one.
//   - CopyFrom and Clone copy-construct every element; Move and MoveFrom
//     hand the buffer over in O(1) without touching any element.
//   - Release destroys the live elements and frees the buffer.
//
// # Basic Usage
//
//	v := dynarray.New[int]()
//	defer v.Release()
//
//	for i := 0; i < 4; i++ {
//		if err := v.PushBack(i); err != nil {
//			return err
//		}
//	}
//	*v.At(0) = 42
//	for i, x := range v.All() {
//		fmt.Println(i, *x)
//	}
//
// # Storage
//
// HeapAllocator is the default. LimitedAllocator puts a slot budget on any
// allocator, and ArenaAllocator carves buffers out of an Arena or SafeArena
// for pointer-free element types. Allocation is the only operation that can
// fail; it reports an error matching ErrOutOfMemory and leaves the vector
// exactly as it was.
//
// # Misuse
//
// Indexing outside [0, Len()) and Reserve below Len() are caller errors and
// panic, as slice indexing does. They are never reported as errors.
//
// # Thread Safety
//
// Vector is not safe for concurrent use. SafeArena is, so one can back
// vectors owned by different goroutines.
package dynarray
