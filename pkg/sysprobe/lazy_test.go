package sysprobe

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLazyRefConstructsExactlyOnceUnderLoad(t *testing.T) {
	var ref lazyRef[*int]
	var attempts atomic.Int32

	build := func() (*int, error) {
		attempts.Add(1)
		// Widen the race window so losing goroutines pile up on the lock.
		time.Sleep(10 * time.Millisecond)
		v := 42
		return &v, nil
	}

	const n = 2000
	results := make([]*int, n)
	errs := make([]error, n)
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = ref.get(build)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(1), attempts.Load(), "build must run exactly once")
	for i := 0; i < n; i++ {
		require.NoError(t, errs[i])
		assert.Same(t, results[0], results[i])
	}
}

func TestLazyRefFailureIsNotCached(t *testing.T) {
	var ref lazyRef[*int]
	var attempts int
	boom := errors.New("native subsystem unavailable")

	build := func() (*int, error) {
		attempts++
		if attempts < 3 {
			return nil, boom
		}
		v := 7
		return &v, nil
	}

	for i := 0; i < 2; i++ {
		_, err := ref.get(build)
		require.ErrorIs(t, err, boom)
	}

	v, err := ref.get(build)
	require.NoError(t, err)
	assert.Equal(t, 7, *v)
	assert.Equal(t, 3, attempts, "every failed call must re-attempt construction")

	// A fourth call reads the published value without rebuilding.
	again, err := ref.get(build)
	require.NoError(t, err)
	assert.Same(t, v, again)
	assert.Equal(t, 3, attempts)
}

func TestLazyRefIsMonotonic(t *testing.T) {
	var ref lazyRef[*string]

	first := "first"
	v, err := ref.get(func() (*string, error) { return &first, nil })
	require.NoError(t, err)

	second := "second"
	replaced, err := ref.get(func() (*string, error) {
		t.Fatal("build must not run once a value is published")
		return &second, nil
	})
	require.NoError(t, err)
	assert.Same(t, v, replaced)
}

func TestLazyRefEveryFailingCallSurfacesTheError(t *testing.T) {
	var ref lazyRef[*int]
	var attempts atomic.Int32
	boom := errors.New("boom")

	const n = 50
	var wg sync.WaitGroup
	errs := make([]error, n)
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			_, errs[i] = ref.get(func() (*int, error) {
				attempts.Add(1)
				return nil, boom
			})
		}(i)
	}
	wg.Wait()

	for i := 0; i < n; i++ {
		assert.ErrorIs(t, errs[i], boom)
	}
	assert.Equal(t, int32(n), attempts.Load(), "no failure may be cached")

	_, ok := ref.peek()
	assert.False(t, ok)
}

func TestLazyRefPeek(t *testing.T) {
	var ref lazyRef[*int]

	_, ok := ref.peek()
	assert.False(t, ok)

	v, err := ref.get(func() (*int, error) {
		n := 1
		return &n, nil
	})
	require.NoError(t, err)

	got, ok := ref.peek()
	assert.True(t, ok)
	assert.Same(t, v, got)
}
