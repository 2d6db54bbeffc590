// Package pingprobe checks internet reachability with a single ICMP
// echo against a well-known public address.
package pingprobe

import (
	"fmt"
	"time"
)

// DefaultTimeout bounds one echo request.
const DefaultTimeout = 2 * time.Second

// Probe checks reachability of a single host.
type Probe struct {
	Host    string        // target address, e.g. "8.8.8.8"
	Timeout time.Duration // per-attempt echo timeout (default 2s)
	Pinger  Pinger        // injected for testing
}

// Name identifies the probe in log output.
func (p *Probe) Name() string { return "ping:" + p.Host }

// Check performs one echo attempt.
func (p *Probe) Check() error {
	if p.Host == "" {
		return fmt.Errorf("ping probe: host is required")
	}

	timeout := p.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	pinger := p.Pinger
	if pinger == nil {
		pinger = RealPinger{}
	}

	return pinger.Ping(p.Host, timeout)
}
