package main

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/vybium/vybium-modexp-bench/internal/modexp-bench/bench"
	"github.com/vybium/vybium-modexp-bench/internal/modexp-bench/core"
	"github.com/vybium/vybium-modexp-bench/internal/modexp-bench/engines"
)

var (
	engineAFlag = &cli.StringFlag{
		Name:  "engine-a",
		Usage: "first engine",
		Value: "binary",
	}
	engineBFlag = &cli.StringFlag{
		Name:  "engine-b",
		Usage: "second engine",
		Value: "mathbig",
	}

	runCommand = &cli.Command{
		Name:   "run",
		Usage:  "time modular exponentiation on random bases",
		Flags:  append([]cli.Flag{engineFlag}, benchFlags...),
		Action: runBenchmark,
	}

	compareEnginesCommand = &cli.Command{
		Name:   "compare-engines",
		Usage:  "time two engines on the same bases",
		Flags:  append([]cli.Flag{engineAFlag, engineBFlag}, benchFlags...),
		Action: compareEngines,
	}
)

func runBenchmark(ctx *cli.Context) error {
	logger := newLogger(ctx)
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	text := bench.NewTextReporter(ctx.App.Writer)
	reporters := bench.MultiReporter{
		text,
		bench.NewLogReporter(logger.WithField("engine", cfg.Engine)),
	}
	if ctx.Bool(metricsFlag.Name) {
		m, err := bench.NewMetricsReporter(reg, cfg.Engine)
		if err != nil {
			return err
		}
		reporters = append(reporters, m)
	}

	h, err := bench.NewHarness(cfg, bench.WithReporter(reporters))
	if err != nil {
		return err
	}

	logger.WithFields(logrus.Fields{
		"engine": h.Engine().Name(),
		"bits":   cfg.Bits,
		"rounds": cfg.Rounds,
	}).Info("Starting benchmark")

	if _, err := h.Run(ctx.Context); err != nil {
		return err
	}
	if err := text.Err(); err != nil {
		return fmt.Errorf("write results: %w", err)
	}

	if ctx.Bool(metricsFlag.Name) {
		return writeMetrics(ctx.App.Writer, reg)
	}
	return nil
}

func compareEngines(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	a, err := engines.Lookup(ctx.String(engineAFlag.Name))
	if err != nil {
		return err
	}
	b, err := engines.Lookup(ctx.String(engineBFlag.Name))
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	var opts []bench.Option
	if ctx.Bool(metricsFlag.Name) {
		// one registry, one label value per engine
		ma, err := bench.NewMetricsReporter(reg, a.Name())
		if err != nil {
			return err
		}
		mb, err := bench.NewMetricsReporter(reg, b.Name())
		if err != nil {
			return err
		}
		sinks := map[string]bench.Reporter{a.Name(): ma, b.Name(): mb}
		opts = append(opts, bench.WithEngineReporter(func(e core.Engine) bench.Reporter { return sinks[e.Name()] }))
	}

	c, err := bench.Compare(ctx.Context, cfg, a, b, opts...)
	if err != nil {
		return err
	}

	w := ctx.App.Writer
	fmt.Fprintf(w, "%s avg: %.9f\n", c.A.Engine, c.A.Mean.Seconds())
	fmt.Fprintf(w, "%s avg: %.9f\n", c.B.Engine, c.B.Mean.Seconds())
	fmt.Fprintf(w, "ratio: %.3f\n", c.Ratio)

	if ctx.Bool(metricsFlag.Name) {
		return writeMetrics(w, reg)
	}
	return nil
}

func writeMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}
	return nil
}
