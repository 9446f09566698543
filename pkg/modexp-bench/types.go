package modexpbench

import (
	"github.com/vybium/vybium-modexp-bench/internal/modexp-bench/bench"
	"github.com/vybium/vybium-modexp-bench/internal/modexp-bench/core"
	"github.com/vybium/vybium-modexp-bench/internal/modexp-bench/filecmp"
	"github.com/vybium/vybium-modexp-bench/internal/modexp-bench/utils"
)

// BigUint is an immutable arbitrary-precision unsigned integer
type BigUint = core.BigUint

// Engine computes base^exponent mod modulus
type Engine = core.Engine

// Config represents configuration for a benchmark run
type Config = utils.Config

// Report summarises a finished run
type Report = bench.Report

// Comparison holds the reports of two engines timed on the same bases
type Comparison = bench.Comparison

// Reporter receives per-trial durations and the final report
type Reporter = bench.Reporter

// Clock is the timer source of a run
type Clock = bench.Clock

// FileComparison describes the differences between two files
type FileComparison = filecmp.Result
