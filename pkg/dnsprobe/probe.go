// Package dnsprobe checks that name resolution works by looking up a
// well-known public hostname.
package dnsprobe

import (
	"context"
	"fmt"
	"net"
	"time"
)

// DefaultTimeout bounds one lookup attempt.
const DefaultTimeout = 2 * time.Second

// Resolver abstracts hostname lookups for testability.
type Resolver interface {
	LookupHost(ctx context.Context, host string) ([]string, error)
}

// RealResolver uses the net package's default resolver.
type RealResolver struct{}

// LookupHost resolves host to addresses.
func (RealResolver) LookupHost(ctx context.Context, host string) ([]string, error) {
	return net.DefaultResolver.LookupHost(ctx, host)
}

// Probe checks that a hostname resolves to at least one address.
type Probe struct {
	Host     string        // hostname to resolve, e.g. "google.com"
	Timeout  time.Duration // per-attempt lookup timeout (default 2s)
	Resolver Resolver      // injected for testing
}

// Name identifies the probe in log output.
func (p *Probe) Name() string { return "dns:" + p.Host }

// Check performs one lookup attempt.
func (p *Probe) Check() error {
	if p.Host == "" {
		return fmt.Errorf("dns probe: hostname is required")
	}

	timeout := p.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	resolver := p.Resolver
	if resolver == nil {
		resolver = RealResolver{}
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	addrs, err := resolver.LookupHost(ctx, p.Host)
	if err != nil {
		return fmt.Errorf("lookup %s: %w", p.Host, err)
	}
	if len(addrs) == 0 {
		return fmt.Errorf("lookup %s: no addresses", p.Host)
	}
	return nil
}
