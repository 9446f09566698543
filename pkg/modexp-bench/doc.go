// Package modexpbench measures modular exponentiation on large unsigned
// integers.
//
// The benchmark draws random bases of a fixed bit width, raises each one to
// (p-1)/2 modulo a prime p of that width and times every exponentiation.
// The arithmetic is implemented from scratch on 64-bit limbs; other engines
// (math/big, holiman/uint256, the Goldilocks field) can be plugged in for
// comparison.
//
// # Quick Start
//
// Computing a single exponentiation:
//
//	base, _ := modexpbench.ParseBigUint("4")
//	exp, _ := modexpbench.ParseBigUint("13")
//	mod, _ := modexpbench.ParseBigUint("497")
//	r, err := modexpbench.ModExp(base, exp, mod) // 445
//
// Running the default 1024-bit benchmark:
//
//	cfg := modexpbench.DefaultConfig().WithRounds(10)
//	report, err := modexpbench.RunBenchmark(ctx, cfg, modexpbench.TextReporter(os.Stdout))
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(report.Mean)
//
// # Architecture
//
// The public API in pkg/modexp-bench wraps the implementation in internal/:
// - core: limb arithmetic, random sampling and square-and-multiply
// - engines: alternative exponentiation backends
// - bench: timing harness, reporters and engine comparison
// - filecmp: byte-level file comparison
// - utils: configuration, preset primes and entropy sources
//
// Every error returned from this package is a *BenchError carrying an
// ErrorCode; CodeOf reads it back:
//
//	if modexpbench.CodeOf(err) == modexpbench.ErrInvalidConfig {
//		...
//	}
package modexpbench
