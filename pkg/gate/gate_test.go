package gate

import (
	"errors"
	"testing"
	"time"
)

// fakeSleeper records sleeps instead of blocking.
type fakeSleeper struct {
	sleeps []time.Duration
}

func (f *fakeSleeper) Sleep(d time.Duration) {
	f.sleeps = append(f.sleeps, d)
}

func (f *fakeSleeper) total() time.Duration {
	var sum time.Duration
	for _, d := range f.sleeps {
		sum += d
	}
	return sum
}

// recordingEvents captures the notification sequence.
type recordingEvents struct {
	started  []string
	finished []Result
}

func (r *recordingEvents) ProbeStarted(name string) { r.started = append(r.started, name) }
func (r *recordingEvents) ProbeFinished(res Result) { r.finished = append(r.finished, res) }

var errUnreachable = errors.New("unreachable")

// succeedOn returns a check that fails until attempt n.
func succeedOn(n int) func() error {
	attempt := 0
	return func() error {
		attempt++
		if attempt >= n {
			return nil
		}
		return errUnreachable
	}
}

func TestRunProbe_FirstAttemptSuccess(t *testing.T) {
	s := &fakeSleeper{}
	p := ProbeFunc("dns:google.com", func() error { return nil })

	r := RunProbe(p, Config{MaxWait: 60 * time.Second, PollInterval: 2 * time.Second}, s)

	if !r.Succeeded {
		t.Error("Succeeded = false, want true")
	}
	if r.Elapsed != 0 {
		t.Errorf("Elapsed = %v, want 0", r.Elapsed)
	}
	if r.Attempts != 1 {
		t.Errorf("Attempts = %d, want 1", r.Attempts)
	}
	if len(s.sleeps) != 0 {
		t.Errorf("sleeps = %d, want 0", len(s.sleeps))
	}
	if r.Err != nil {
		t.Errorf("Err = %v, want nil", r.Err)
	}
}

func TestRunProbe_Timeout(t *testing.T) {
	s := &fakeSleeper{}
	p := ProbeFunc("ping:8.8.8.8", func() error { return errUnreachable })

	r := RunProbe(p, Config{MaxWait: 60 * time.Second, PollInterval: 2 * time.Second}, s)

	if r.Succeeded {
		t.Error("Succeeded = true, want false")
	}
	if r.Elapsed != 60*time.Second {
		t.Errorf("Elapsed = %v, want 60s", r.Elapsed)
	}
	if r.Attempts != 30 {
		t.Errorf("Attempts = %d, want 30", r.Attempts)
	}
	if len(s.sleeps) != 30 {
		t.Errorf("sleeps = %d, want 30", len(s.sleeps))
	}
	if !errors.Is(r.Err, errUnreachable) {
		t.Errorf("Err = %v, want %v", r.Err, errUnreachable)
	}
}

func TestRunProbe_SucceedsAfterRetries(t *testing.T) {
	s := &fakeSleeper{}
	p := ProbeFunc("dns:google.com", succeedOn(3))

	r := RunProbe(p, Config{MaxWait: 60 * time.Second, PollInterval: 2 * time.Second}, s)

	if !r.Succeeded {
		t.Error("Succeeded = false, want true")
	}
	if r.Attempts != 3 {
		t.Errorf("Attempts = %d, want 3", r.Attempts)
	}
	if r.Elapsed != 4*time.Second {
		t.Errorf("Elapsed = %v, want 4s", r.Elapsed)
	}
	if len(s.sleeps) != 2 {
		t.Errorf("sleeps = %d, want 2", len(s.sleeps))
	}
}

func TestRunProbe_ZeroConfigUsesDefaults(t *testing.T) {
	s := &fakeSleeper{}
	p := ProbeFunc("ping:8.8.8.8", func() error { return errUnreachable })

	r := RunProbe(p, Config{}, s)

	if r.Elapsed != DefaultMaxWait {
		t.Errorf("Elapsed = %v, want %v", r.Elapsed, DefaultMaxWait)
	}
	if len(s.sleeps) == 0 || s.sleeps[0] != DefaultPollInterval {
		t.Errorf("first sleep = %v, want %v", s.sleeps, DefaultPollInterval)
	}
}

func TestGate_RunsProbesInOrderAndSettlesOnce(t *testing.T) {
	s := &fakeSleeper{}
	ev := &recordingEvents{}
	g := &Gate{
		Probes: []Probe{
			ProbeFunc("ping:8.8.8.8", func() error { return nil }),
			ProbeFunc("dns:google.com", func() error { return nil }),
			ProbeFunc("lan:192.168.1.1+192.168.1.50", func() error { return nil }),
		},
		Config:  Config{MaxWait: 10 * time.Second, PollInterval: time.Second, Settle: 5 * time.Second},
		Sleeper: s,
		Events:  ev,
	}

	results := g.Run()

	wantOrder := []string{"ping:8.8.8.8", "dns:google.com", "lan:192.168.1.1+192.168.1.50"}
	if len(results) != 3 {
		t.Fatalf("len(results) = %d, want 3", len(results))
	}
	for i, want := range wantOrder {
		if results[i].Name != want {
			t.Errorf("results[%d].Name = %q, want %q", i, results[i].Name, want)
		}
		if ev.started[i] != want {
			t.Errorf("started[%d] = %q, want %q", i, ev.started[i], want)
		}
	}
	// all probes succeeded immediately, so the only sleep is the settle
	if len(s.sleeps) != 1 || s.sleeps[0] != 5*time.Second {
		t.Errorf("sleeps = %v, want [5s]", s.sleeps)
	}
}

func TestGate_ContinuesPastSoftTimeout(t *testing.T) {
	s := &fakeSleeper{}
	ev := &recordingEvents{}
	g := &Gate{
		Probes: []Probe{
			ProbeFunc("ping:8.8.8.8", func() error { return errUnreachable }),
			ProbeFunc("dns:google.com", func() error { return nil }),
		},
		Config:  Config{MaxWait: 6 * time.Second, PollInterval: 2 * time.Second, Settle: time.Second},
		Sleeper: s,
		Events:  ev,
	}

	results := g.Run()

	if len(results) != 2 {
		t.Fatalf("len(results) = %d, want 2", len(results))
	}
	if results[0].Succeeded {
		t.Error("results[0].Succeeded = true, want false")
	}
	if results[0].Elapsed != 6*time.Second {
		t.Errorf("results[0].Elapsed = %v, want 6s", results[0].Elapsed)
	}
	if !results[1].Succeeded {
		t.Error("results[1].Succeeded = false, want true: gate must proceed past a timed-out probe")
	}
	if len(ev.finished) != 2 {
		t.Errorf("len(finished) = %d, want 2", len(ev.finished))
	}
}

func TestGate_Idempotent(t *testing.T) {
	// deterministic stateless stubs: same results on every run
	build := func() *Gate {
		return &Gate{
			Probes: []Probe{
				ProbeFunc("ping:8.8.8.8", func() error { return nil }),
				ProbeFunc("dns:google.com", func() error { return errUnreachable }),
			},
			Config:  Config{MaxWait: 4 * time.Second, PollInterval: 2 * time.Second, Settle: time.Second},
			Sleeper: &fakeSleeper{},
		}
	}

	first := build().Run()
	second := build().Run()

	if len(first) != len(second) {
		t.Fatalf("result counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Name != second[i].Name ||
			first[i].Succeeded != second[i].Succeeded ||
			first[i].Elapsed != second[i].Elapsed ||
			first[i].Attempts != second[i].Attempts {
			t.Errorf("run mismatch at %d: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestGate_Scenario_MixedAttempts(t *testing.T) {
	// internet on attempt 1, dns on attempt 3, lan on attempt 1:
	// total sleep = 2 polls + settle
	s := &fakeSleeper{}
	g := &Gate{
		Probes: []Probe{
			ProbeFunc("ping:8.8.8.8", succeedOn(1)),
			ProbeFunc("dns:google.com", succeedOn(3)),
			ProbeFunc("lan:192.168.1.1+192.168.1.50", succeedOn(1)),
		},
		Config:  Config{MaxWait: 60 * time.Second, PollInterval: 2 * time.Second, Settle: 5 * time.Second},
		Sleeper: s,
	}

	results := g.Run()

	for i, r := range results {
		if !r.Succeeded {
			t.Errorf("results[%d].Succeeded = false, want true", i)
		}
	}
	want := 2*2*time.Second + 5*time.Second
	if got := s.total(); got != want {
		t.Errorf("total sleep = %v, want %v", got, want)
	}
}

func TestGate_TimeoutStillSettles(t *testing.T) {
	s := &fakeSleeper{}
	g := &Gate{
		Probes: []Probe{
			ProbeFunc("ping:8.8.8.8", func() error { return errUnreachable }),
		},
		Config:  Config{MaxWait: 4 * time.Second, PollInterval: 2 * time.Second, Settle: 5 * time.Second},
		Sleeper: s,
	}

	g.Run()

	// 2 poll sleeps then exactly one settle sleep
	if len(s.sleeps) != 3 {
		t.Fatalf("sleeps = %v, want 2 polls + 1 settle", s.sleeps)
	}
	if s.sleeps[2] != 5*time.Second {
		t.Errorf("last sleep = %v, want settle 5s", s.sleeps[2])
	}
}
