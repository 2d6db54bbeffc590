package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/verkko/netgate/pkg/gate"
	"github.com/verkko/netgate/pkg/httpprobe"
)

var (
	httpMaxWait      time.Duration
	httpPollInterval time.Duration
	httpTimeout      time.Duration
	httpStatus       int
	httpInsecure     bool
	httpJSONPath     string
)

var httpCmd = &cobra.Command{
	Use:   "http <url>",
	Short: "Wait for an HTTP endpoint to answer with the expected status",
	Args:  cobra.ExactArgs(1),
	RunE:  runHTTPProbe,
}

func init() {
	httpCmd.Flags().DurationVar(&httpMaxWait, "max-wait", gate.DefaultMaxWait, "retry budget")
	httpCmd.Flags().DurationVar(&httpPollInterval, "poll-interval", gate.DefaultPollInterval, "delay between attempts")
	httpCmd.Flags().DurationVar(&httpTimeout, "timeout", httpprobe.DefaultTimeout, "per-request timeout")
	httpCmd.Flags().IntVar(&httpStatus, "status", 200, "expected HTTP status code")
	httpCmd.Flags().BoolVar(&httpInsecure, "insecure", false, "skip TLS certificate verification")
	httpCmd.Flags().StringVar(&httpJSONPath, "json-path", "", "JSON path in the response body (format: \"path\" or \"path=expectedValue\")")
	rootCmd.AddCommand(httpCmd)
}

func runHTTPProbe(_ *cobra.Command, args []string) error {
	p := &httpprobe.Probe{
		URL:            args[0],
		ExpectedStatus: httpStatus,
		Timeout:        httpTimeout,
		Insecure:       httpInsecure,
		JSONPath:       httpJSONPath,
	}

	return runSingleProbe(p, gate.Config{MaxWait: httpMaxWait, PollInterval: httpPollInterval})
}
