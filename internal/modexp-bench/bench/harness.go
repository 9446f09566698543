package bench

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/vybium/vybium-modexp-bench/internal/modexp-bench/core"
	"github.com/vybium/vybium-modexp-bench/internal/modexp-bench/engines"
	"github.com/vybium/vybium-modexp-bench/internal/modexp-bench/utils"
)

// Harness runs the benchmark: Rounds sequential trials, each timing one
// ModExp(x, e, p) for a fresh base x in [2^(n-1), 2^n).
//
// A Harness is not safe for concurrent use; its only mutable state is the
// report of the run in progress.
type Harness struct {
	engine    core.Engine
	clock     Clock
	rand      io.Reader
	reporter  Reporter
	perEngine func(core.Engine) Reporter

	rounds   int
	bits     int
	modulus  *core.BigUint
	exponent *core.BigUint
	low      *core.BigUint
	high     *core.BigUint
}

// Option customises a Harness
type Option func(*Harness)

// WithEngine overrides the engine named in the configuration
func WithEngine(e core.Engine) Option {
	return func(h *Harness) { h.engine = e }
}

// WithClock replaces the system clock
func WithClock(c Clock) Option {
	return func(h *Harness) { h.clock = c }
}

// WithRand replaces the entropy source selected by the configuration seed
func WithRand(r io.Reader) Option {
	return func(h *Harness) { h.rand = r }
}

// WithReporter sets the sink for per-trial and summary output
func WithReporter(r Reporter) Option {
	return func(h *Harness) { h.reporter = r }
}

// WithEngineReporter adds the reporter f returns for the resolved engine.
// Compare uses it to keep per-engine sinks apart across both runs.
func WithEngineReporter(f func(core.Engine) Reporter) Option {
	return func(h *Harness) { h.perEngine = f }
}

// NewHarness validates cfg once and prepares the fixed modulus and exponent
func NewHarness(cfg *utils.Config, opts ...Option) (*Harness, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	modulus, err := cfg.ModulusValue()
	if err != nil {
		return nil, err
	}
	exponent, err := cfg.Exponent()
	if err != nil {
		return nil, err
	}

	h := &Harness{
		clock:    SystemClock{},
		rand:     utils.NewEntropy(cfg.Seed),
		reporter: NopReporter{},
		rounds:   cfg.Rounds,
		bits:     cfg.Bits,
		modulus:  modulus,
		exponent: exponent,
		low:      core.PowerOfTwo(uint(cfg.Bits - 1)),
		high:     core.PowerOfTwo(uint(cfg.Bits)),
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.engine == nil {
		if h.engine, err = engines.Lookup(cfg.Engine); err != nil {
			return nil, err
		}
	}
	if h.perEngine != nil {
		if r := h.perEngine(h.engine); r != nil {
			h.reporter = MultiReporter{h.reporter, r}
		}
	}
	return h, nil
}

// Engine returns the backend being timed
func (h *Harness) Engine() core.Engine {
	return h.engine
}

// Run executes the trials in order. Cancellation is honoured between trials;
// a trial in progress always completes. The first failing trial aborts the
// run and its error is returned.
func (h *Harness) Run(ctx context.Context) (*Report, error) {
	report := newReport(h.engine.Name(), h.bits, h.rounds)

	for i := 0; i < h.rounds; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		x, err := core.FromRandomRange(h.low, h.high, h.rand)
		if err != nil {
			return nil, fmt.Errorf("trial %d: sample base: %w", i, err)
		}

		elapsed, err := h.trial(x)
		if err != nil {
			return nil, fmt.Errorf("trial %d: %w", i, err)
		}

		report.add(elapsed)
		h.reporter.Trial(i, elapsed)
	}

	report.finish()
	h.reporter.Summary(report)
	return report, nil
}

func (h *Harness) trial(x *core.BigUint) (time.Duration, error) {
	start := h.clock.Now()
	if _, err := h.engine.ModExp(x, h.exponent, h.modulus); err != nil {
		return 0, err
	}
	return h.clock.Since(start), nil
}
