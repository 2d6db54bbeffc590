package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/verkko/netgate/pkg/gate"
	"github.com/verkko/netgate/pkg/pingprobe"
)

var (
	pingMaxWait      time.Duration
	pingPollInterval time.Duration
	pingTimeout      time.Duration
)

var pingCmd = &cobra.Command{
	Use:   "ping <host>",
	Short: "Wait for a host to answer an ICMP echo",
	Args:  cobra.ExactArgs(1),
	RunE:  runPingProbe,
}

func init() {
	pingCmd.Flags().DurationVar(&pingMaxWait, "max-wait", gate.DefaultMaxWait, "retry budget")
	pingCmd.Flags().DurationVar(&pingPollInterval, "poll-interval", gate.DefaultPollInterval, "delay between attempts")
	pingCmd.Flags().DurationVar(&pingTimeout, "timeout", pingprobe.DefaultTimeout, "per-echo timeout")
	rootCmd.AddCommand(pingCmd)
}

func runPingProbe(_ *cobra.Command, args []string) error {
	p := &pingprobe.Probe{
		Host:    args[0],
		Timeout: pingTimeout,
		Pinger:  pingprobe.RealPinger{},
	}

	return runSingleProbe(p, gate.Config{MaxWait: pingMaxWait, PollInterval: pingPollInterval})
}
