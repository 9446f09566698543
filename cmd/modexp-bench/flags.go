package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/vybium/vybium-modexp-bench/internal/modexp-bench/log"
	"github.com/vybium/vybium-modexp-bench/internal/modexp-bench/utils"
)

var (
	configFlag = &cli.StringFlag{
		Name:  "config",
		Usage: "TOML file overlaid on the defaults",
	}
	bitsFlag = &cli.IntFlag{
		Name:  "bits",
		Usage: "bit width of the modulus and of every base",
		Value: utils.DefaultBits,
	}
	roundsFlag = &cli.IntFlag{
		Name:  "rounds",
		Usage: "number of timed trials",
		Value: utils.DefaultRounds,
	}
	modulusFlag = &cli.StringFlag{
		Name:  "modulus",
		Usage: "prime modulus, decimal or 0x-prefixed hex (default: preset for --bits)",
	}
	engineFlag = &cli.StringFlag{
		Name:  "engine",
		Usage: "exponentiation engine",
		Value: "binary",
	}
	seedFlag = &cli.StringFlag{
		Name:  "seed",
		Usage: "seed for reproducible bases (default: system entropy)",
	}
	verboseFlag = &cli.BoolFlag{
		Name:  "verbose",
		Usage: "log every trial",
	}
	metricsFlag = &cli.BoolFlag{
		Name:  "metrics",
		Usage: "print prometheus metrics after the run",
	}

	benchFlags = []cli.Flag{configFlag, bitsFlag, roundsFlag, modulusFlag, seedFlag, verboseFlag, metricsFlag}
)

// loadConfig builds the run configuration. Explicit flags override the
// config file, which overrides the defaults.
func loadConfig(ctx *cli.Context) (*utils.Config, error) {
	cfg := utils.DefaultConfig()
	if path := ctx.String(configFlag.Name); path != "" {
		if err := utils.LoadConfig(path, cfg); err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
	}
	if ctx.IsSet(bitsFlag.Name) {
		cfg = cfg.WithBits(ctx.Int(bitsFlag.Name))
	}
	if ctx.IsSet(roundsFlag.Name) {
		cfg = cfg.WithRounds(ctx.Int(roundsFlag.Name))
	}
	if ctx.IsSet(modulusFlag.Name) {
		cfg = cfg.WithModulus(ctx.String(modulusFlag.Name))
	}
	if ctx.IsSet(engineFlag.Name) {
		cfg = cfg.WithEngine(ctx.String(engineFlag.Name))
	}
	if ctx.IsSet(seedFlag.Name) {
		cfg = cfg.WithSeed(ctx.String(seedFlag.Name))
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(ctx *cli.Context) *logrus.Logger {
	return log.New(ctx.App.ErrWriter, ctx.Bool(verboseFlag.Name))
}
