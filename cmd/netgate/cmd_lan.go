package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/verkko/netgate/pkg/gate"
	"github.com/verkko/netgate/pkg/lanprobe"
	"github.com/verkko/netgate/pkg/pingprobe"
)

var (
	lanMaxWait      time.Duration
	lanPollInterval time.Duration
	lanTimeout      time.Duration
)

var lanCmd = &cobra.Command{
	Use:   "lan <hostA> <hostB>",
	Short: "Wait for two local addresses to answer on the same attempt",
	Args:  cobra.ExactArgs(2),
	RunE:  runLANProbe,
}

func init() {
	lanCmd.Flags().DurationVar(&lanMaxWait, "max-wait", gate.DefaultMaxWait, "retry budget")
	lanCmd.Flags().DurationVar(&lanPollInterval, "poll-interval", gate.DefaultPollInterval, "delay between attempts")
	lanCmd.Flags().DurationVar(&lanTimeout, "timeout", pingprobe.DefaultTimeout, "per-echo timeout")
	rootCmd.AddCommand(lanCmd)
}

func runLANProbe(_ *cobra.Command, args []string) error {
	p := &lanprobe.Probe{
		HostA:   args[0],
		HostB:   args[1],
		Timeout: lanTimeout,
		Pinger:  pingprobe.RealPinger{},
	}

	return runSingleProbe(p, gate.Config{MaxWait: lanMaxWait, PollInterval: lanPollInterval})
}
