package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	// Everything after "--" is the dependent service command, handed
	// off only after the gate (or probe) completes.
	execArgs := extractExecArgs(&os.Args)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}

	if err := runExec(execArgs); err != nil {
		fmt.Fprintf(os.Stderr, "exec: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:     "netgate",
	Short:   "Network readiness gate for dependent services",
	Long:    "Netgate blocks a service's startup until connectivity checks succeed (or time out), then gets out of the way.",
	Version: Version,
}
