package netservice

import (
	"context"
	"fmt"
	"strings"
	"time"

	probing "github.com/prometheus-community/pro-bing"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("component", "netservice")

// Options controls a reachability probe.
type Options struct {
	Target string
	// Count is the number of echo requests to send; 0 means 4.
	Count int
	// Interval is the delay between requests; 0 means 1s.
	Interval time.Duration
	// Timeout bounds the whole probe; 0 derives one from Count and Interval.
	Timeout time.Duration
	// Privileged sends raw ICMP instead of UDP echo. Requires elevation on
	// most platforms.
	Privileged bool
}

// ProbeResult summarizes one completed probe.
type ProbeResult struct {
	Target      string
	Addr        string
	Sent        int
	Received    int
	LossPercent float64
	MinRTT      time.Duration
	AvgRTT      time.Duration
	MaxRTT      time.Duration
}

// Reachable reports whether at least one reply came back.
func (r *ProbeResult) Reachable() bool {
	return r.Received > 0
}

// Probe sends echo requests at opts.Target and waits for the replies or the
// context. Cancellation mid-probe is not an error; the partial statistics are
// returned.
func Probe(ctx context.Context, opts Options) (*ProbeResult, error) {
	opts = withDefaults(opts)
	if opts.Target == "" {
		return nil, fmt.Errorf("probe target cannot be empty")
	}

	pinger, err := probing.NewPinger(opts.Target)
	if err != nil {
		return nil, fmt.Errorf("failed to create pinger: %w", err)
	}

	pinger.SetPrivileged(opts.Privileged)
	pinger.Count = opts.Count
	pinger.Interval = opts.Interval
	pinger.Timeout = opts.Timeout

	pinger.OnRecv = func(pkt *probing.Packet) {
		log.Debugf("%d bytes from %s: icmp_seq=%d time=%v",
			pkt.Nbytes, pkt.IPAddr, pkt.Seq, pkt.Rtt)
	}

	if err := pinger.RunWithContext(ctx); err != nil {
		return nil, fmt.Errorf("probe failed: %w", err)
	}

	stats := pinger.Statistics()
	return &ProbeResult{
		Target:      opts.Target,
		Addr:        stats.IPAddr.String(),
		Sent:        stats.PacketsSent,
		Received:    stats.PacketsRecv,
		LossPercent: stats.PacketLoss,
		MinRTT:      stats.MinRtt,
		AvgRTT:      stats.AvgRtt,
		MaxRTT:      stats.MaxRtt,
	}, nil
}

func withDefaults(opts Options) Options {
	opts.Target = strings.TrimSpace(opts.Target)
	if opts.Count <= 0 {
		opts.Count = 4
	}
	if opts.Interval <= 0 {
		opts.Interval = time.Second
	}
	if opts.Timeout <= 0 {
		// Enough room for every request plus one straggling reply.
		opts.Timeout = time.Duration(opts.Count)*opts.Interval + 5*time.Second
	}
	return opts
}
