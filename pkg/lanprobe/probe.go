// Package lanprobe checks local-network reachability as a conjunction:
// two fixed local addresses must both answer a ping within the same
// attempt. The checks are sequential and short-circuit on the first
// miss, so every retry re-checks both addresses from scratch.
package lanprobe

import (
	"fmt"
	"time"

	"github.com/verkko/netgate/pkg/pingprobe"
)

// Probe checks that both local addresses answer on the same attempt.
type Probe struct {
	HostA   string        // e.g. the router, "192.168.1.1"
	HostB   string        // e.g. the automation hub, "192.168.1.50"
	Timeout time.Duration // per-echo timeout (default pingprobe.DefaultTimeout)
	Pinger  pingprobe.Pinger
}

// Name identifies the probe in log output.
func (p *Probe) Name() string { return "lan:" + p.HostA + "+" + p.HostB }

// Check pings both addresses; success requires both to answer.
func (p *Probe) Check() error {
	if p.HostA == "" || p.HostB == "" {
		return fmt.Errorf("lan probe: two hosts are required")
	}

	timeout := p.Timeout
	if timeout == 0 {
		timeout = pingprobe.DefaultTimeout
	}
	pinger := p.Pinger
	if pinger == nil {
		pinger = pingprobe.RealPinger{}
	}

	for _, host := range []string{p.HostA, p.HostB} {
		if err := pinger.Ping(host, timeout); err != nil {
			return fmt.Errorf("lan host %s: %w", host, err)
		}
	}
	return nil
}
