package main

import (
	"errors"

	"github.com/verkko/netgate/pkg/gate"
	"github.com/verkko/netgate/pkg/output"
)

// ErrProbeTimeout is returned when a standalone probe exhausts its
// retry budget. The full gate (`netgate wait`) never returns it.
var ErrProbeTimeout = errors.New("probe timed out")

// runSingleProbe runs one probe with a bounded retry loop and prints
// progress. The returned error causes Cobra to exit with code 1, so
// single probes compose in scripts; this is deliberately stricter than
// the gate's soft-timeout behavior.
func runSingleProbe(p gate.Probe, cfg gate.Config) error {
	output.PrintStart(p.Name())
	r := gate.RunProbe(p, cfg, gate.RealSleeper{})
	output.PrintResult(r)

	if !r.Succeeded {
		return ErrProbeTimeout
	}
	return nil
}
