package dynarray

import "github.com/sirupsen/logrus"

// DefaultInitialCapacity is the capacity EmplaceBack grows an empty vector to.
const DefaultInitialCapacity = 16

type config[T any] struct {
	alloc   Allocator[T]
	lc      Lifecycle[T]
	initial int
	log     logrus.FieldLogger
}

func newConfig[T any](opts []Option[T]) config[T] {
	c := config[T]{
		alloc:   HeapAllocator[T]{},
		lc:      Trivial[T]{},
		initial: DefaultInitialCapacity,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Option configures a Vector at construction.
type Option[T any] func(*config[T])

// WithAllocator selects the storage strategy. nil keeps HeapAllocator.
func WithAllocator[T any](a Allocator[T]) Option[T] {
	return func(c *config[T]) {
		if a != nil {
			c.alloc = a
		}
	}
}

// WithLifecycle selects how elements are constructed and destroyed.
// nil keeps Trivial.
func WithLifecycle[T any](lc Lifecycle[T]) Option[T] {
	return func(c *config[T]) {
		if lc != nil {
			c.lc = lc
		}
	}
}

// WithInitialCapacity sets the capacity of the first buffer EmplaceBack
// allocates for an empty vector. Values below 1 keep the default.
func WithInitialCapacity[T any](n int) Option[T] {
	return func(c *config[T]) {
		if n > 0 {
			c.initial = n
		}
	}
}

// WithLogger routes the vector's debug logging to l instead of the
// package logger.
func WithLogger[T any](l logrus.FieldLogger) Option[T] {
	return func(c *config[T]) {
		c.log = l
	}
}
