package dynarray

// counts records lifecycle events seen by an observer.
type counts struct {
	defaults   int
	copies     int
	moves      int
	destroys   int
	violations int // constructions over live slots or destructions of dead ones
}

// tracked is the element type observed in lifecycle tests.
type tracked struct {
	id   int
	live bool
}

// observer is a Lifecycle that counts every event and flags slots that are
// constructed twice or destroyed while dead.
type observer struct {
	c *counts
}

func newObserver() (*observer, *counts) {
	c := &counts{}
	return &observer{c: c}, c
}

func (o *observer) Construct(slot *tracked) {
	o.c.defaults++
	o.born(slot)
	slot.id = 0
}

func (o *observer) CopyConstruct(slot, src *tracked) {
	o.c.copies++
	if !src.live {
		o.c.violations++
	}
	o.born(slot)
	slot.id = src.id
}

func (o *observer) MoveConstruct(slot, src *tracked) {
	o.c.moves++
	if !src.live {
		o.c.violations++
	}
	o.born(slot)
	slot.id = src.id
}

func (o *observer) Destroy(slot *tracked) {
	o.c.destroys++
	if !slot.live {
		o.c.violations++
	}
	*slot = tracked{}
}

func (o *observer) born(slot *tracked) {
	if slot.live {
		o.c.violations++
	}
	slot.live = true
}

// zero resets the counters between steps.
func (c *counts) zero() { *c = counts{} }

// observed returns an empty vector of tracked elements and its counters.
func observed(opts ...Option[tracked]) (*Vector[tracked], *counts) {
	o, c := newObserver()
	return New(append([]Option[tracked]{WithLifecycle[tracked](o)}, opts...)...), c
}
