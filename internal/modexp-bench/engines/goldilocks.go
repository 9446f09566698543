package engines

import (
	"fmt"

	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"

	"github.com/vybium/vybium-modexp-bench/internal/modexp-bench/core"
)

// GoldilocksModulus is the prime 2^64 - 2^32 + 1 served by the Goldilocks engine
var GoldilocksModulus = core.NewBigUint(field.P)

// Goldilocks delegates to vybium-crypto's Goldilocks field arithmetic.
// It only accepts the modulus 2^64 - 2^32 + 1 and exponents below 2^64.
type Goldilocks struct{}

// Name returns "goldilocks"
func (Goldilocks) Name() string { return "goldilocks" }

// ModExp returns base^exponent mod 2^64 - 2^32 + 1
func (Goldilocks) ModExp(base, exponent, modulus *core.BigUint) (*core.BigUint, error) {
	if modulus.IsZero() {
		return nil, core.ErrDivisionByZero
	}
	if !modulus.Equal(GoldilocksModulus) {
		return nil, fmt.Errorf("%w: goldilocks only supports modulus %d, got %d-bit modulus",
			ErrUnsupportedWidth, field.P, modulus.BitLen())
	}
	if base.BitLen() > 64 || exponent.BitLen() > 64 {
		return nil, fmt.Errorf("%w: goldilocks needs base and exponent of at most 64 bits",
			ErrUnsupportedWidth)
	}

	// base < 2^64 < 2p, so one conditional subtraction reduces it.
	b := base.Uint64()
	if b >= field.P {
		b -= field.P
	}
	if exponent.IsZero() {
		return core.One(), nil
	}
	r := field.New(b).ModPow(exponent.Uint64())
	return core.NewBigUint(r.Value()), nil
}
