package modexpbench

import (
	"context"
	"io"

	"github.com/vybium/vybium-modexp-bench/internal/modexp-bench/bench"
	"github.com/vybium/vybium-modexp-bench/internal/modexp-bench/core"
	"github.com/vybium/vybium-modexp-bench/internal/modexp-bench/engines"
	"github.com/vybium/vybium-modexp-bench/internal/modexp-bench/filecmp"
	"github.com/vybium/vybium-modexp-bench/internal/modexp-bench/utils"
)

// DefaultConfig returns the standard 1024-bit, 100-round benchmark
func DefaultConfig() *Config {
	return utils.DefaultConfig()
}

// LoadConfig overlays a TOML file onto cfg
func LoadConfig(path string, cfg *Config) error {
	return Wrap(utils.LoadConfig(path, cfg))
}

// ParseBigUint reads a decimal or 0x-prefixed hexadecimal literal
func ParseBigUint(s string) (*BigUint, error) {
	x, err := core.Parse(s)
	if err != nil {
		return nil, &BenchError{Code: ErrInvalidConfig, Message: "invalid integer literal", Cause: err}
	}
	return x, nil
}

// ModExp returns base^exponent mod modulus using square-and-multiply
func ModExp(base, exponent, modulus *BigUint) (*BigUint, error) {
	r, err := core.ModExp(base, exponent, modulus)
	return r, Wrap(err)
}

// LookupEngine returns a registered engine by name
func LookupEngine(name string) (Engine, error) {
	e, err := engines.Lookup(name)
	return e, Wrap(err)
}

// EngineNames lists the registered engines
func EngineNames() []string {
	return engines.Names()
}

// TextReporter writes plain-text trial lines and an average to w
func TextReporter(w io.Writer) Reporter {
	return bench.NewTextReporter(w)
}

// RunOption customises RunBenchmark
type RunOption = bench.Option

// WithClock replaces the system clock of a run
func WithClock(c Clock) RunOption { return bench.WithClock(c) }

// WithRand replaces the entropy source of a run
func WithRand(r io.Reader) RunOption { return bench.WithRand(r) }

// WithEngine replaces the engine named in the configuration
func WithEngine(e Engine) RunOption { return bench.WithEngine(e) }

// RunBenchmark executes cfg.Rounds timed trials and reports each one to
// reporter, which may be nil
func RunBenchmark(ctx context.Context, cfg *Config, reporter Reporter, opts ...RunOption) (*Report, error) {
	if reporter != nil {
		opts = append([]RunOption{bench.WithReporter(reporter)}, opts...)
	}
	h, err := bench.NewHarness(cfg, opts...)
	if err != nil {
		return nil, Wrap(err)
	}
	report, err := h.Run(ctx)
	return report, Wrap(err)
}

// CompareEngines times two engines on the same bases
func CompareEngines(ctx context.Context, cfg *Config, a, b Engine, opts ...RunOption) (*Comparison, error) {
	c, err := bench.Compare(ctx, cfg, a, b, opts...)
	return c, Wrap(err)
}

// CompareFiles compares two files byte by byte
func CompareFiles(pathA, pathB string, recordOffsets bool) (*FileComparison, error) {
	r, err := filecmp.CompareFiles(pathA, pathB, recordOffsets)
	return r, Wrap(err)
}
