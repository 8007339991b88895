package dynarray

import "sync"

// SafeArena is a mutex-protected Arena. Vectors living in different
// goroutines can draw their buffers from one SafeArena through
// ArenaAllocator; each Vector itself still has a single owner.
type SafeArena struct {
	mu sync.Mutex
	a  *Arena
}

// NewSafeArena creates a goroutine-safe arena with the specified chunk size.
// If chunkSize <= 0, DefaultChunkSize is used.
func NewSafeArena(chunkSize int) *SafeArena {
	return &SafeArena{a: NewArena(chunkSize)}
}

// AllocBytes is Arena.AllocBytes under the lock.
func (s *SafeArena) AllocBytes(n int) []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.AllocBytes(n)
}

// TryAllocBytes is Arena.TryAllocBytes under the lock.
func (s *SafeArena) TryAllocBytes(n int) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.TryAllocBytes(n)
}

// SetLimit is Arena.SetLimit under the lock.
func (s *SafeArena) SetLimit(maxBytes int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.SetLimit(maxBytes)
}

// EnsureCapacity is Arena.EnsureCapacity under the lock.
func (s *SafeArena) EnsureCapacity(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.EnsureCapacity(n)
}

// Reset is Arena.Reset under the lock.
func (s *SafeArena) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Reset()
}

// Release is Arena.Release under the lock.
func (s *SafeArena) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Release()
}
