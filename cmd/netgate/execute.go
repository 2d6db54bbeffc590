package main

import (
	"github.com/verkko/netgate/pkg/procexec"
)

// extractExecArgs strips everything after "--" from args and returns
// it. Cobra never sees the service command this way.
func extractExecArgs(args *[]string) []string {
	for i, a := range *args {
		if a == "--" {
			execArgs := (*args)[i+1:]
			*args = (*args)[:i]
			return execArgs
		}
	}
	return nil
}

// runExec replaces the gate process with the service command, if one
// was given. A no-op otherwise.
func runExec(args []string) error {
	if len(args) == 0 {
		return nil
	}
	executor := &procexec.RealExecutor{}
	return executor.Exec(args[0], args[1:])
}
