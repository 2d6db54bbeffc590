// Package procexec hands control to the dependent service once the
// gate has signaled readiness, by replacing the gate process with the
// service command.
package procexec

import (
	"os"
	"os/exec"
)

// Executor starts the dependent service after the gate completes.
type Executor interface {
	// Exec replaces the current process with the specified command.
	// On Unix this uses syscall.Exec. On Windows it returns an error.
	Exec(name string, args []string) error
}

// RealExecutor is the production implementation.
type RealExecutor struct{}

// lookPath finds the executable in PATH.
func lookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// environ returns the current environment.
func environ() []string {
	return os.Environ()
}
