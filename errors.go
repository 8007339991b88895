package dynarray

import (
	"errors"
	"fmt"
)

// ErrOutOfMemory is reported when an allocator cannot provide the requested
// number of element slots. It is the only recoverable failure of a Vector.
var ErrOutOfMemory = errors.New("dynarray: out of memory")

// ErrPointerElem is returned when an arena-backed allocator is requested for
// an element type the garbage collector would need to scan.
var ErrPointerElem = errors.New("dynarray: element type contains pointers")

// AllocationError describes a failed request for element slots.
type AllocationError struct {
	Slots    int     // slots requested
	ElemSize uintptr // size of one slot in bytes
	Err      error   // underlying cause, usually ErrOutOfMemory
}

func (e *AllocationError) Error() string {
	return fmt.Sprintf("dynarray: allocate %d slots of %d bytes: %v", e.Slots, e.ElemSize, e.Err)
}

func (e *AllocationError) Unwrap() error {
	return e.Err
}

// outOfMemory builds an AllocationError wrapping ErrOutOfMemory.
func outOfMemory(slots int, elemSize uintptr) error {
	return &AllocationError{Slots: slots, ElemSize: elemSize, Err: ErrOutOfMemory}
}
