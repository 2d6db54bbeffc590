// Package gate implements a bounded-retry readiness gate: an ordered
// sequence of network probes, each retried at a fixed interval until it
// succeeds or its wait budget runs out. A probe that exhausts its budget
// is a soft failure; the gate logs it and moves on, so the dependent
// service always gets to start.
package gate

import "time"

// Config holds the timing bounds for a gate run. Zero fields fall back
// to the defaults below, so an empty Config is usable as-is.
type Config struct {
	MaxWait      time.Duration // per-probe retry budget
	PollInterval time.Duration // delay between attempts within a probe
	Settle       time.Duration // pause after all probes, before signaling ready
}

const (
	DefaultMaxWait      = 60 * time.Second
	DefaultPollInterval = 2 * time.Second
	DefaultSettle       = 5 * time.Second
)

// withDefaults fills in unset fields.
func (c Config) withDefaults() Config {
	if c.MaxWait <= 0 {
		c.MaxWait = DefaultMaxWait
	}
	if c.PollInterval <= 0 {
		c.PollInterval = DefaultPollInterval
	}
	if c.Settle <= 0 {
		c.Settle = DefaultSettle
	}
	return c
}

// Probe is one named reachability check. Check performs a single
// attempt; nil means reachable. The gate owns the retry loop.
type Probe interface {
	Name() string
	Check() error
}

// ProbeFunc adapts a function to the Probe interface.
func ProbeFunc(name string, fn func() error) Probe {
	return funcProbe{name: name, fn: fn}
}

type funcProbe struct {
	name string
	fn   func() error
}

func (p funcProbe) Name() string { return p.name }
func (p funcProbe) Check() error { return p.fn() }

// Result holds the outcome of one probe's retry loop.
type Result struct {
	Name      string
	Succeeded bool
	Elapsed   time.Duration // retry budget consumed: 0 on first-attempt success, MaxWait on timeout
	Attempts  int
	Err       error // last attempt error, nil on success
}

// Sleeper abstracts blocking sleeps so tests can run without wall-clock
// delays.
type Sleeper interface {
	Sleep(d time.Duration)
}

// RealSleeper uses time.Sleep.
type RealSleeper struct{}

// Sleep blocks for the given duration.
func (RealSleeper) Sleep(d time.Duration) { time.Sleep(d) }

// Events receives per-probe progress notifications. The output package
// provides the printing implementation.
type Events interface {
	ProbeStarted(name string)
	ProbeFinished(r Result)
}

// NopEvents discards all notifications.
type NopEvents struct{}

func (NopEvents) ProbeStarted(string)  {}
func (NopEvents) ProbeFinished(Result) {}

// RunProbe retries p at cfg.PollInterval until it succeeds or the
// accumulated sleep time reaches cfg.MaxWait. Elapsed counts only the
// sleeps between attempts, so a first-attempt success reports exactly 0
// and a timeout reports exactly MaxWait. With the defaults (60s budget,
// 2s interval) an unreachable target gets exactly 30 attempts.
func RunProbe(p Probe, cfg Config, s Sleeper) Result {
	cfg = cfg.withDefaults()
	r := Result{Name: p.Name()}

	var elapsed time.Duration
	for {
		r.Attempts++
		err := p.Check()
		if err == nil {
			r.Succeeded = true
			r.Elapsed = elapsed
			return r
		}
		r.Err = err

		s.Sleep(cfg.PollInterval)
		elapsed += cfg.PollInterval
		if elapsed >= cfg.MaxWait {
			r.Elapsed = cfg.MaxWait
			return r
		}
	}
}

// Gate runs an ordered probe sequence. Probes run strictly one after
// another; there is no concurrency here on purpose, since the whole
// point is to serialize startup ordering for the supervisor.
type Gate struct {
	Probes  []Probe
	Config  Config
	Sleeper Sleeper // injected for testing; defaults to RealSleeper
	Events  Events  // defaults to NopEvents
}

// Run executes every probe in order, each independently bounded by the
// configured budget. A soft timeout never aborts the sequence. After
// the last probe it sleeps the settle duration exactly once and returns
// the collected results. Run never fails: the gate favors starting the
// dependent service over strict network preconditions.
func (g *Gate) Run() []Result {
	cfg := g.Config.withDefaults()
	s := g.Sleeper
	if s == nil {
		s = RealSleeper{}
	}
	ev := g.Events
	if ev == nil {
		ev = NopEvents{}
	}

	results := make([]Result, 0, len(g.Probes))
	for _, p := range g.Probes {
		ev.ProbeStarted(p.Name())
		r := RunProbe(p, cfg, s)
		ev.ProbeFinished(r)
		results = append(results, r)
	}

	s.Sleep(cfg.Settle)
	return results
}
