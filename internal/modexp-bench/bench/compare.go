package bench

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/vybium/vybium-modexp-bench/internal/modexp-bench/core"
	"github.com/vybium/vybium-modexp-bench/internal/modexp-bench/utils"
)

// Comparison holds two runs over identical bases
type Comparison struct {
	A, B *Report

	// Ratio is A.Mean / B.Mean, 0 when B.Mean is zero
	Ratio float64
}

// Compare times engines a and b on the same sequence of bases. When cfg has
// no seed a random one is drawn so both runs still see the same bases.
// opts apply to both runs; passing WithRand gives up the shared bases.
func Compare(ctx context.Context, cfg *utils.Config, a, b core.Engine, opts ...Option) (*Comparison, error) {
	cfg = cfg.Clone()
	if cfg.Seed == "" {
		seed := make([]byte, 16)
		if _, err := rand.Read(seed); err != nil {
			return nil, fmt.Errorf("failed to draw comparison seed: %w", err)
		}
		cfg.Seed = hex.EncodeToString(seed)
	}

	reportA, err := runWith(ctx, cfg, a, opts)
	if err != nil {
		return nil, fmt.Errorf("engine %s: %w", a.Name(), err)
	}
	reportB, err := runWith(ctx, cfg, b, opts)
	if err != nil {
		return nil, fmt.Errorf("engine %s: %w", b.Name(), err)
	}

	c := &Comparison{A: reportA, B: reportB}
	if reportB.Mean > 0 {
		c.Ratio = float64(reportA.Mean) / float64(reportB.Mean)
	}
	return c, nil
}

func runWith(ctx context.Context, cfg *utils.Config, e core.Engine, opts []Option) (*Report, error) {
	all := make([]Option, 0, len(opts)+1)
	all = append(all, opts...)
	h, err := NewHarness(cfg, append(all, WithEngine(e))...)
	if err != nil {
		return nil, err
	}
	return h.Run(ctx)
}
