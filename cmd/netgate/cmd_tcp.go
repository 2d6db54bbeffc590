package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/verkko/netgate/pkg/gate"
	"github.com/verkko/netgate/pkg/tcpprobe"
)

var (
	tcpMaxWait      time.Duration
	tcpPollInterval time.Duration
	tcpTimeout      time.Duration
)

var tcpCmd = &cobra.Command{
	Use:   "tcp <host:port>",
	Short: "Wait for a TCP port to accept connections",
	Args:  cobra.ExactArgs(1),
	RunE:  runTCPProbe,
}

func init() {
	tcpCmd.Flags().DurationVar(&tcpMaxWait, "max-wait", gate.DefaultMaxWait, "retry budget")
	tcpCmd.Flags().DurationVar(&tcpPollInterval, "poll-interval", gate.DefaultPollInterval, "delay between attempts")
	tcpCmd.Flags().DurationVar(&tcpTimeout, "timeout", tcpprobe.DefaultTimeout, "per-dial timeout")
	rootCmd.AddCommand(tcpCmd)
}

func runTCPProbe(_ *cobra.Command, args []string) error {
	p := &tcpprobe.Probe{
		Address: args[0],
		Timeout: tcpTimeout,
		Dialer:  tcpprobe.RealDialer{},
	}

	return runSingleProbe(p, gate.Config{MaxWait: tcpMaxWait, PollInterval: tcpPollInterval})
}
