// Package tcpprobe checks that a TCP port accepts connections. Useful
// as a gate target when the dependent service waits on a database or
// broker rather than a pingable host.
package tcpprobe

import (
	"fmt"
	"net"
	"time"
)

// DefaultTimeout bounds one dial attempt.
const DefaultTimeout = 2 * time.Second

// Dialer abstracts network dialing for testability.
type Dialer interface {
	DialTimeout(network, address string, timeout time.Duration) (net.Conn, error)
}

// RealDialer uses the real net package.
type RealDialer struct{}

// DialTimeout dials the network address with a timeout.
func (RealDialer) DialTimeout(network, address string, timeout time.Duration) (net.Conn, error) {
	return net.DialTimeout(network, address, timeout)
}

// Probe checks TCP connectivity to a host:port.
type Probe struct {
	Address string        // host:port to connect to
	Timeout time.Duration // per-dial timeout (default 2s)
	Dialer  Dialer        // injected for testing
}

// Name identifies the probe in log output.
func (p *Probe) Name() string { return "tcp:" + p.Address }

// Check performs one dial attempt.
func (p *Probe) Check() error {
	if p.Address == "" {
		return fmt.Errorf("tcp probe: address is required")
	}

	timeout := p.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	dialer := p.Dialer
	if dialer == nil {
		dialer = RealDialer{}
	}

	conn, err := dialer.DialTimeout("tcp", p.Address, timeout)
	if err != nil {
		return fmt.Errorf("dial %s: %w", p.Address, err)
	}
	_ = conn.Close()
	return nil
}
