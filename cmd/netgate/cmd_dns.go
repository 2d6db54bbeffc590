package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/verkko/netgate/pkg/dnsprobe"
	"github.com/verkko/netgate/pkg/gate"
)

var (
	dnsMaxWait      time.Duration
	dnsPollInterval time.Duration
	dnsTimeout      time.Duration
)

var dnsCmd = &cobra.Command{
	Use:   "dns <hostname>",
	Short: "Wait for a hostname to resolve",
	Args:  cobra.ExactArgs(1),
	RunE:  runDNSProbe,
}

func init() {
	dnsCmd.Flags().DurationVar(&dnsMaxWait, "max-wait", gate.DefaultMaxWait, "retry budget")
	dnsCmd.Flags().DurationVar(&dnsPollInterval, "poll-interval", gate.DefaultPollInterval, "delay between attempts")
	dnsCmd.Flags().DurationVar(&dnsTimeout, "timeout", dnsprobe.DefaultTimeout, "per-lookup timeout")
	rootCmd.AddCommand(dnsCmd)
}

func runDNSProbe(_ *cobra.Command, args []string) error {
	p := &dnsprobe.Probe{
		Host:     args[0],
		Timeout:  dnsTimeout,
		Resolver: dnsprobe.RealResolver{},
	}

	return runSingleProbe(p, gate.Config{MaxWait: dnsMaxWait, PollInterval: dnsPollInterval})
}
