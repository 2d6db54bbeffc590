//go:build unix

package procexec

import (
	"syscall"
)

// execFunc is a seam for tests; syscall.Exec never returns on success.
var execFunc = syscall.Exec

// Exec replaces the gate process with the dependent service command.
// The gate's stdout/stderr and environment carry over unchanged.
func (e *RealExecutor) Exec(name string, args []string) error {
	binary, err := lookPath(name)
	if err != nil {
		return err
	}

	// argv[0] must be the program name by convention
	argv := append([]string{name}, args...)
	// #nosec G204 -- the service command comes from the gate's own CLI args.
	return execFunc(binary, argv, environ())
}
