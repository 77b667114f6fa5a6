// Package carousel implements a clamped, non-wrapping page window over a
// fixed ordered list.
package carousel

// DefaultPageSize is the number of entries shown per page.
const DefaultPageSize = 3

// State is what a renderer needs to draw the carousel affordances.
type State struct {
	Start      int
	CanAdvance bool
	CanRetreat bool
}

// Option configures a Controller.
type Option func(*options)

type options struct {
	pageSize int
	start    int
}

// WithPageSize overrides DefaultPageSize. Values below 1 are ignored.
func WithPageSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.pageSize = n
		}
	}
}

// WithStart restores a previously observed window start. The value is
// clamped into the valid range.
func WithStart(start int) Option {
	return func(o *options) { o.start = start }
}

// Controller tracks the window start over items. It is not safe for
// concurrent use; the owning session serializes access.
type Controller[T any] struct {
	items     []T
	pageSize  int
	start     int
	observers map[int]func(State)
	nextID    int
}

// New returns a controller over a copy of items.
func New[T any](items []T, opts ...Option) *Controller[T] {
	o := options{pageSize: DefaultPageSize}
	for _, opt := range opts {
		opt(&o)
	}
	c := &Controller[T]{
		items:    append([]T(nil), items...),
		pageSize: o.pageSize,
	}
	c.start = c.clamp(o.start)
	return c
}

// Advance moves the window one page forward, stopping at the last full page.
func (c *Controller[T]) Advance() {
	c.set(c.clamp(c.start + c.pageSize))
}

// Retreat moves the window one page back, stopping at zero.
func (c *Controller[T]) Retreat() {
	c.set(c.clamp(c.start - c.pageSize))
}

// Visible returns the entries inside the window. The last window may be
// shorter than a page when the list is.
func (c *Controller[T]) Visible() []T {
	end := min(c.start+c.pageSize, len(c.items))
	out := make([]T, end-c.start)
	copy(out, c.items[c.start:end])
	return out
}

// CanAdvance reports whether Advance would move the window.
func (c *Controller[T]) CanAdvance() bool { return c.start < len(c.items)-c.pageSize }

// CanRetreat reports whether Retreat would move the window.
func (c *Controller[T]) CanRetreat() bool { return c.start > 0 }

// WindowStart is the index of the first visible entry.
func (c *Controller[T]) WindowStart() int { return c.start }

// Len is the total number of entries.
func (c *Controller[T]) Len() int { return len(c.items) }

// PageSize is the window length.
func (c *Controller[T]) PageSize() int { return c.pageSize }

// State snapshots the window and its affordances.
func (c *Controller[T]) State() State {
	return State{Start: c.start, CanAdvance: c.CanAdvance(), CanRetreat: c.CanRetreat()}
}

// Subscribe registers fn to run after every change of the window start.
func (c *Controller[T]) Subscribe(fn func(State)) (unsubscribe func()) {
	if c.observers == nil {
		c.observers = make(map[int]func(State))
	}
	id := c.nextID
	c.nextID++
	c.observers[id] = fn
	return func() { delete(c.observers, id) }
}

func (c *Controller[T]) set(start int) {
	if start == c.start {
		return
	}
	c.start = start
	st := c.State()
	for _, fn := range c.observers {
		fn(st)
	}
}

// clamp bounds i to [0, max(0, len-pageSize)].
func (c *Controller[T]) clamp(i int) int {
	return max(0, min(i, len(c.items)-c.pageSize))
}
