package status

import (
	"sync"
	"sync/atomic"
)

// Registry hands out named metric slots. Get returns a stable pointer,
// so hot paths fetch their slot once at construction and update it
// lock-free afterwards.
type Registry struct {
	mu     sync.Mutex
	ints   map[string]*atomic.Int64
	floats map[string]*AtomicFloat
}

// NewRegistry creates an empty metric registry
func NewRegistry() *Registry {
	return &Registry{
		ints:   make(map[string]*atomic.Int64),
		floats: make(map[string]*AtomicFloat),
	}
}

// Int returns the counter registered under name, creating it on first use
func (r *Registry) Int(name string) *atomic.Int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	if v, ok := r.ints[name]; ok {
		return v
	}
	v := &atomic.Int64{}
	r.ints[name] = v
	return v
}

// Float returns the gauge registered under name, creating it on first use
func (r *Registry) Float(name string) *AtomicFloat {
	r.mu.Lock()
	defer r.mu.Unlock()

	if v, ok := r.floats[name]; ok {
		return v
	}
	v := &AtomicFloat{}
	r.floats[name] = v
	return v
}
