package engine

import "testing"

type poolItem struct {
	value int
}

func newItemPool(size, softCap int) *Pool[poolItem] {
	return NewPool[poolItem](size, softCap,
		func() *poolItem { return &poolItem{} },
		func(i *poolItem) { i.value = 0 },
	)
}

// TestPoolAcquireRelease verifies the acquire/release cycle keeps the
// active count consistent
func TestPoolAcquireRelease(t *testing.T) {
	p := newItemPool(4, 8)

	if p.Active() != 0 || p.Free() != 4 {
		t.Fatalf("fresh pool: active=%d free=%d", p.Active(), p.Free())
	}

	a, _ := p.Acquire()
	b, _ := p.Acquire()
	if p.Active() != 2 || p.Free() != 2 {
		t.Errorf("after 2 acquires: active=%d free=%d", p.Active(), p.Free())
	}

	p.Release(a)
	p.Release(b)
	if p.Active() != 0 || p.Free() != 4 {
		t.Errorf("after releases: active=%d free=%d", p.Active(), p.Free())
	}
}

// TestPoolResetOnAcquire verifies handles come back reset, not
// carrying the previous user's state
func TestPoolResetOnAcquire(t *testing.T) {
	p := newItemPool(1, 2)

	h, _ := p.Acquire()
	h.value = 42
	p.Release(h)

	h2, _ := p.Acquire()
	if h2.value != 0 {
		t.Errorf("reacquired handle not reset: value=%d", h2.value)
	}
}

// TestPoolGrowth verifies acquire never fails past the preallocation
// and the soft cap warning fires exactly once
func TestPoolGrowth(t *testing.T) {
	p := newItemPool(2, 3)

	var handles []*poolItem
	warns := 0
	for i := 0; i < 5; i++ {
		h, warned := p.Acquire()
		if h == nil {
			t.Fatalf("acquire %d returned nil", i)
		}
		if warned {
			warns++
		}
		handles = append(handles, h)
	}

	if warns != 1 {
		t.Errorf("soft cap warned %d times, want 1", warns)
	}
	if !p.Exceeded() {
		t.Error("Exceeded() = false after growth past soft cap")
	}
	if p.Active() != 5 {
		t.Errorf("active = %d, want 5", p.Active())
	}

	for _, h := range handles {
		p.Release(h)
	}
	if p.Active() != 0 {
		t.Errorf("active = %d after releasing all, want 0", p.Active())
	}
}

// TestPoolReleaseNil verifies nil releases are ignored
func TestPoolReleaseNil(t *testing.T) {
	p := newItemPool(1, 1)
	p.Release(nil)
	if p.Active() != 0 || p.Free() != 1 {
		t.Errorf("nil release mutated pool: active=%d free=%d", p.Active(), p.Free())
	}
}
