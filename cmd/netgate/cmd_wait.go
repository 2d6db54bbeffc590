package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/verkko/netgate/pkg/dnsprobe"
	"github.com/verkko/netgate/pkg/gate"
	"github.com/verkko/netgate/pkg/gatefile"
	"github.com/verkko/netgate/pkg/httpprobe"
	"github.com/verkko/netgate/pkg/lanprobe"
	"github.com/verkko/netgate/pkg/output"
	"github.com/verkko/netgate/pkg/pingprobe"
)

const (
	defaultPingHost = "8.8.8.8"
	defaultDNSHost  = "google.com"
)

var (
	waitMaxWait       time.Duration
	waitPollInterval  time.Duration
	waitSettle        time.Duration
	waitPingHost      string
	waitDNSHost       string
	waitLANHosts      []string
	waitServiceURL    string
	waitServiceStatus int
	waitConfigPath    string
)

var waitCmd = &cobra.Command{
	Use:   "wait",
	Short: "Run the full readiness gate",
	Long: `Run the ordered probe sequence (internet, dns, local network, optional
service endpoint), wait the settle duration, then exit 0.

A probe that stays unreachable for its whole retry budget logs a warning
and the gate moves on: the dependent service always gets to start. Put
the service command after "--" to hand off directly:

  netgate wait --lan-host 192.168.1.1 --lan-host 192.168.1.50 -- node-red`,
	Args: cobra.NoArgs,
	RunE: runWait,
}

func init() {
	waitCmd.Flags().DurationVar(&waitMaxWait, "max-wait", gate.DefaultMaxWait, "per-probe retry budget")
	waitCmd.Flags().DurationVar(&waitPollInterval, "poll-interval", gate.DefaultPollInterval, "delay between attempts within a probe")
	waitCmd.Flags().DurationVar(&waitSettle, "settle", gate.DefaultSettle, "pause after all probes before signaling ready")
	waitCmd.Flags().StringVar(&waitPingHost, "ping-host", defaultPingHost, "public address for the internet probe")
	waitCmd.Flags().StringVar(&waitDNSHost, "dns-host", defaultDNSHost, "public hostname for the name-resolution probe")
	waitCmd.Flags().StringSliceVar(&waitLANHosts, "lan-host", nil, "local address that must answer (give exactly two)")
	waitCmd.Flags().StringVar(&waitServiceURL, "service-url", "", "optional service endpoint to probe after the network is up")
	waitCmd.Flags().IntVar(&waitServiceStatus, "service-status", 200, "expected HTTP status from the service endpoint")
	waitCmd.Flags().StringVar(&waitConfigPath, "config", "", "path to netgate.toml (default: search up from current directory)")
	rootCmd.AddCommand(waitCmd)
}

func runWait(cmd *cobra.Command, args []string) error {
	file, err := loadWaitConfig()
	if err != nil {
		return err
	}

	cfg, probes, err := resolveWait(cmd.Flags(), file)
	if err != nil {
		return err
	}

	g := &gate.Gate{
		Probes: probes,
		Config: cfg,
		Events: output.GateEvents{},
	}

	results := g.Run()
	output.PrintReady(results)

	// soft timeouts are not failures: the gate always signals ready
	return nil
}

// loadWaitConfig finds and parses netgate.toml. A missing file without
// an explicit --config is not an error; defaults apply.
func loadWaitConfig() (gatefile.File, error) {
	wd, err := os.Getwd()
	if err != nil {
		return gatefile.File{}, fmt.Errorf("failed to get working directory: %w", err)
	}

	path, err := gatefile.Find(wd, waitConfigPath)
	if errors.Is(err, gatefile.ErrNotFound) {
		return gatefile.File{}, nil
	}
	if err != nil {
		return gatefile.File{}, err
	}

	return gatefile.Load(path)
}

// resolveWait merges flag and file configuration: a flag the user set
// wins, then the file, then built-in defaults.
func resolveWait(flags *pflag.FlagSet, file gatefile.File) (gate.Config, []gate.Probe, error) {
	cfg := file.Config()
	if flags.Changed("max-wait") || cfg.MaxWait == 0 {
		cfg.MaxWait = waitMaxWait
	}
	if flags.Changed("poll-interval") || cfg.PollInterval == 0 {
		cfg.PollInterval = waitPollInterval
	}
	if flags.Changed("settle") || cfg.Settle == 0 {
		cfg.Settle = waitSettle
	}

	pingHost := waitPingHost
	if !flags.Changed("ping-host") && file.Targets.Ping != "" {
		pingHost = file.Targets.Ping
	}
	dnsHost := waitDNSHost
	if !flags.Changed("dns-host") && file.Targets.DNS != "" {
		dnsHost = file.Targets.DNS
	}
	lanHosts := waitLANHosts
	if !flags.Changed("lan-host") && len(file.Targets.LAN) == 2 {
		lanHosts = file.Targets.LAN
	}
	if len(lanHosts) != 0 && len(lanHosts) != 2 {
		return gate.Config{}, nil, fmt.Errorf("--lan-host must be given exactly twice, got %d", len(lanHosts))
	}

	serviceURL := waitServiceURL
	serviceStatus := waitServiceStatus
	serviceJSONPath := ""
	if !flags.Changed("service-url") && file.Service.URL != "" {
		serviceURL = file.Service.URL
		serviceJSONPath = file.Service.JSONPath
	}
	if !flags.Changed("service-status") && file.Service.Status != 0 {
		serviceStatus = file.Service.Status
	}

	probes := []gate.Probe{
		&pingprobe.Probe{Host: pingHost},
		&dnsprobe.Probe{Host: dnsHost},
	}
	if len(lanHosts) == 2 {
		probes = append(probes, &lanprobe.Probe{HostA: lanHosts[0], HostB: lanHosts[1]})
	}
	if serviceURL != "" {
		probes = append(probes, &httpprobe.Probe{
			URL:            serviceURL,
			ExpectedStatus: serviceStatus,
			JSONPath:       serviceJSONPath,
		})
	}

	return cfg, probes, nil
}
