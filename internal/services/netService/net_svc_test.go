package netservice

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestProbeRejectsEmptyTarget(t *testing.T) {
	_, err := Probe(context.Background(), Options{Target: "   "})
	assert.Error(t, err)
}

func TestWithDefaults(t *testing.T) {
	opts := withDefaults(Options{Target: " example.com "})
	assert.Equal(t, "example.com", opts.Target)
	assert.Equal(t, 4, opts.Count)
	assert.Equal(t, time.Second, opts.Interval)
	assert.Equal(t, 9*time.Second, opts.Timeout)

	opts = withDefaults(Options{Target: "example.com", Count: 2, Interval: 500 * time.Millisecond, Timeout: time.Minute})
	assert.Equal(t, 2, opts.Count)
	assert.Equal(t, 500*time.Millisecond, opts.Interval)
	assert.Equal(t, time.Minute, opts.Timeout, "explicit values are kept")
}

func TestProbeResultReachable(t *testing.T) {
	assert.False(t, (&ProbeResult{Sent: 4}).Reachable())
	assert.True(t, (&ProbeResult{Sent: 4, Received: 1}).Reachable())
}
