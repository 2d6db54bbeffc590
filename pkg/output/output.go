// Package output prints gate progress: one line per probe start, one
// per definitive outcome. Soft timeouts print as warnings, hard
// failures (single-probe mode) as failures.
package output

import (
	"fmt"
	"strings"

	"github.com/jwalton/go-supportscolor"

	"github.com/verkko/netgate/pkg/gate"
)

var (
	green  = "\033[32m"
	yellow = "\033[33m"
	red    = "\033[31m"
	dim    = "\033[2m"
	reset  = "\033[0m"
)

func init() {
	if !supportscolor.Stdout().SupportsColor {
		green, yellow, red, dim, reset = "", "", "", "", ""
	}
}

// PrintStart announces that a probe's retry loop has begun.
func PrintStart(name string) {
	fmt.Printf("%s[..]%s %s\n", dim, reset, name)
}

// PrintResult outputs a probe outcome with a hard [FAIL] on timeout.
// Used by the single-probe subcommands, where a timeout fails the run.
func PrintResult(r gate.Result) {
	if r.Succeeded {
		printOK(r)
		return
	}
	fmt.Printf("%s[FAIL]%s %s\n", red, reset, r.Name)
	fmt.Printf("       %s\n", formatLabel(timeoutDetail(r)))
}

// PrintSoftResult outputs a probe outcome with a [WARN] on timeout.
// Used by the gate, which continues past timed-out probes.
func PrintSoftResult(r gate.Result) {
	if r.Succeeded {
		printOK(r)
		return
	}
	fmt.Printf("%s[WARN]%s %s\n", yellow, reset, r.Name)
	fmt.Printf("       %s\n", formatLabel(timeoutDetail(r)))
	fmt.Printf("       continuing anyway\n")
}

// PrintReady announces gate completion after the settle pause.
func PrintReady(results []gate.Result) {
	warned := 0
	for _, r := range results {
		if !r.Succeeded {
			warned++
		}
	}
	if warned == 0 {
		fmt.Printf("%s[OK]%s network ready\n", green, reset)
		return
	}
	fmt.Printf("%s[WARN]%s network gate complete, %d of %d probes timed out\n",
		yellow, reset, warned, len(results))
}

func printOK(r gate.Result) {
	fmt.Printf("%s[OK]%s %s\n", green, reset, r.Name)
	if r.Elapsed == 0 {
		fmt.Printf("     %s\n", formatLabel("ready: first attempt"))
		return
	}
	fmt.Printf("     %s\n", formatLabel(fmt.Sprintf("ready: after %s (%d attempts)", r.Elapsed, r.Attempts)))
}

func timeoutDetail(r gate.Result) string {
	detail := fmt.Sprintf("timeout: unreachable after %s (%d attempts)", r.Elapsed, r.Attempts)
	if r.Err != nil {
		detail += fmt.Sprintf(", last error: %v", r.Err)
	}
	return detail
}

// formatLabel dims the "label:" prefix of a detail line, if present.
func formatLabel(detail string) string {
	idx := strings.Index(detail, ": ")
	if idx < 0 {
		return detail
	}
	return dim + detail[:idx+1] + reset + detail[idx+1:]
}

// GateEvents adapts the printers to the gate.Events interface.
type GateEvents struct{}

// ProbeStarted prints the start line.
func (GateEvents) ProbeStarted(name string) { PrintStart(name) }

// ProbeFinished prints the outcome, soft style.
func (GateEvents) ProbeFinished(r gate.Result) { PrintSoftResult(r) }
