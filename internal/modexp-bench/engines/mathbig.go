package engines

import (
	"math/big"

	"github.com/vybium/vybium-modexp-bench/internal/modexp-bench/core"
)

// MathBig computes modular exponentiation with the standard library's
// math/big, which uses Montgomery multiplication and windowing for odd
// moduli.
type MathBig struct{}

// Name returns "mathbig"
func (MathBig) Name() string { return "mathbig" }

// ModExp returns base^exponent mod modulus
func (MathBig) ModExp(base, exponent, modulus *core.BigUint) (*core.BigUint, error) {
	if modulus.IsZero() {
		return nil, core.ErrDivisionByZero
	}
	m := modulus.Big()
	z := new(big.Int).Exp(base.Big(), exponent.Big(), m)
	z.Mod(z, m)
	return core.FromBig(z)
}
