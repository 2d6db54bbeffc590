package pingprobe

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// Pinger abstracts a single ICMP echo for testability. A nil error
// means the host answered.
type Pinger interface {
	Ping(host string, timeout time.Duration) error
}

// RealPinger shells out to the system ping binary for one echo
// request. Raw ICMP sockets need elevated privileges, so delegating to
// the setuid ping binary is the portable choice here. The reply
// timeout flag differs per platform; pingArgs in the per-GOOS files
// builds the right invocation.
type RealPinger struct{}

// Ping sends a single echo request to host.
func (RealPinger) Ping(host string, timeout time.Duration) error {
	bin, err := exec.LookPath("ping")
	if err != nil {
		return fmt.Errorf("ping binary not found: %w", err)
	}

	cmd := exec.Command(bin, pingArgs(host, timeout)...) //nolint:gosec // host comes from the gate's own configuration
	var errBuf bytes.Buffer
	cmd.Stderr = &errBuf
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(errBuf.String()); msg != "" {
			return fmt.Errorf("ping %s: %s", host, msg)
		}
		return fmt.Errorf("ping %s: no reply", host)
	}
	return nil
}

// MockPinger is a test double for Pinger.
type MockPinger struct {
	PingFunc func(host string, timeout time.Duration) error
}

// Ping calls the mock function.
func (m *MockPinger) Ping(host string, timeout time.Duration) error {
	return m.PingFunc(host, timeout)
}
