package dynarray

import clone "github.com/huandu/go-clone/generic"

// Lifecycle controls how a Vector brings element slots to life and retires
// them. Every live slot is constructed exactly once by one of the Construct
// methods and destroyed exactly once by Destroy.
type Lifecycle[T any] interface {
	// Construct default-constructs an unoccupied slot.
	Construct(slot *T)
	// CopyConstruct builds an unoccupied slot as a copy of src. src stays live.
	CopyConstruct(slot, src *T)
	// MoveConstruct builds an unoccupied slot from src, consuming its
	// contents. src stays live until it is destroyed.
	MoveConstruct(slot, src *T)
	// Destroy retires a live slot.
	Destroy(slot *T)
}

// Trivial is the default Lifecycle: the zero value is the default, copies
// and moves are plain assignments and Destroy zeroes the slot so the
// garbage collector can drop anything it referenced.
type Trivial[T any] struct{}

func (Trivial[T]) Construct(slot *T) {
	var zero T
	*slot = zero
}

func (Trivial[T]) CopyConstruct(slot, src *T) { *slot = *src }

func (Trivial[T]) MoveConstruct(slot, src *T) { *slot = *src }

func (Trivial[T]) Destroy(slot *T) {
	var zero T
	*slot = zero
}

// DeepCopy behaves like Trivial except that CopyConstruct clones everything
// reachable from src, so copies of a Vector never share slices, maps or
// pointed-to values with the original.
type DeepCopy[T any] struct {
	Trivial[T]
}

func (DeepCopy[T]) CopyConstruct(slot, src *T) {
	*slot = clone.Clone(*src)
}

// Hooks assembles a Lifecycle from functions. A nil field falls back to the
// matching Trivial behavior.
type Hooks[T any] struct {
	New     func(slot *T)
	Copy    func(slot, src *T)
	Move    func(slot, src *T)
	Destroy func(slot *T)
}

// Lifecycle returns h as a Lifecycle.
func (h Hooks[T]) Lifecycle() Lifecycle[T] {
	return hooks[T]{h}
}

type hooks[T any] struct{ h Hooks[T] }

func (h hooks[T]) Construct(slot *T) {
	if h.h.New == nil {
		Trivial[T]{}.Construct(slot)
		return
	}
	h.h.New(slot)
}

func (h hooks[T]) CopyConstruct(slot, src *T) {
	if h.h.Copy == nil {
		*slot = *src
		return
	}
	h.h.Copy(slot, src)
}

func (h hooks[T]) MoveConstruct(slot, src *T) {
	if h.h.Move == nil {
		*slot = *src
		return
	}
	h.h.Move(slot, src)
}

func (h hooks[T]) Destroy(slot *T) {
	if h.h.Destroy == nil {
		Trivial[T]{}.Destroy(slot)
		return
	}
	h.h.Destroy(slot)
}

// destroyRange destroys every slot of s, low to high.
func destroyRange[T any](lc Lifecycle[T], s []T) {
	for i := range s {
		lc.Destroy(&s[i])
	}
}

// relocate moves the live elements of src into the unoccupied front of dst.
// Each element is move-constructed at its new slot and then destroyed at
// its old one before the next element is touched.
func relocate[T any](lc Lifecycle[T], dst, src []T) {
	for i := range src {
		lc.MoveConstruct(&dst[i], &src[i])
		lc.Destroy(&src[i])
	}
}
