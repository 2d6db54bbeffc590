//go:build windows

package procexec

import "errors"

// ErrExecNotSupported indicates exec mode is not available on Windows.
var ErrExecNotSupported = errors.New("exec mode not supported on Windows; start the service from a wrapper script instead")

// Exec is not supported on Windows.
// Windows has no exec syscall that replaces the current process.
func (e *RealExecutor) Exec(name string, args []string) error {
	return ErrExecNotSupported
}
