package sysprobe

import (
	"sync"
	"sync/atomic"
)

// lazyRef holds a capability instance that is constructed at most once.
// The fast path is a lock-free atomic load; on a miss the caller takes the
// mutex, re-checks (another goroutine may have won the race), runs build,
// and publishes the result atomically. No goroutine can ever observe a
// partially constructed value, and once published the reference never
// changes.
//
// A build failure leaves the holder empty: the error is returned to the
// caller and the next call runs build again. Failures are deliberately not
// cached.
//
// Each capability gets its own lazyRef, so constructing one capability never
// blocks construction of another.
type lazyRef[T any] struct {
	ref atomic.Pointer[T]
	mu  sync.Mutex
}

// get returns the held value, constructing it with build on first use.
func (l *lazyRef[T]) get(build func() (T, error)) (T, error) {
	if p := l.ref.Load(); p != nil {
		return *p, nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if p := l.ref.Load(); p != nil {
		return *p, nil
	}

	v, err := build()
	if err != nil {
		var zero T
		return zero, err
	}
	l.ref.Store(&v)
	return v, nil
}

// peek returns the held value without constructing it.
func (l *lazyRef[T]) peek() (T, bool) {
	if p := l.ref.Load(); p != nil {
		return *p, true
	}
	var zero T
	return zero, false
}
