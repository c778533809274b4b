package engine

// Pool is a generic acquire/release pool bounding allocation for
// reusable handles. Touched only from the game-loop goroutine, so no
// locking. Acquire cannot fail: past the preallocated size the pool
// grows, and growth beyond the soft cap is surfaced as a warning flag
// for the caller to report as a configuration problem.
type Pool[T any] struct {
	newFn   func() *T
	resetFn func(*T)

	free    []*T
	active  int
	size    int
	softCap int
	grown   bool
}

// NewPool preallocates size handles. softCap bounds expected growth;
// it is a reporting threshold, not a hard limit.
func NewPool[T any](size, softCap int, newFn func() *T, resetFn func(*T)) *Pool[T] {
	p := &Pool[T]{
		newFn:   newFn,
		resetFn: resetFn,
		free:    make([]*T, 0, size),
		size:    size,
		softCap: softCap,
	}
	for i := 0; i < size; i++ {
		p.free = append(p.free, newFn())
	}
	return p
}

// Acquire returns a reset handle. The second return is true when this
// acquire grew the pool past the soft cap.
func (p *Pool[T]) Acquire() (*T, bool) {
	var h *T
	warn := false

	if n := len(p.free); n > 0 {
		h = p.free[n-1]
		p.free = p.free[:n-1]
	} else {
		h = p.newFn()
		if p.active+1 > p.softCap && !p.grown {
			p.grown = true
			warn = true
		}
	}

	p.resetFn(h)
	p.active++
	return h, warn
}

// Release marks a handle free for reuse. Nil is ignored.
func (p *Pool[T]) Release(h *T) {
	if h == nil {
		return
	}
	p.free = append(p.free, h)
	if p.active > 0 {
		p.active--
	}
}

// Active returns the number of handles currently acquired
func (p *Pool[T]) Active() int {
	return p.active
}

// Free returns the number of handles available without allocation
func (p *Pool[T]) Free() int {
	return len(p.free)
}

// Exceeded reports whether the pool ever grew past its soft cap
func (p *Pool[T]) Exceeded() bool {
	return p.grown
}
