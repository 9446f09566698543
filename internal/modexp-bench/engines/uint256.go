package engines

import (
	"fmt"

	"github.com/holiman/uint256"

	"github.com/vybium/vybium-modexp-bench/internal/modexp-bench/core"
)

// Uint256 runs square-and-multiply on holiman/uint256 fixed-width words.
// Base and modulus must fit in 256 bits; the exponent may be any size.
type Uint256 struct{}

// Name returns "uint256"
func (Uint256) Name() string { return "uint256" }

// ModExp returns base^exponent mod modulus
func (Uint256) ModExp(base, exponent, modulus *core.BigUint) (*core.BigUint, error) {
	if modulus.IsZero() {
		return nil, core.ErrDivisionByZero
	}
	if modulus.BitLen() > 256 || base.BitLen() > 256 {
		return nil, fmt.Errorf("%w: uint256 needs base and modulus of at most 256 bits, got %d and %d",
			ErrUnsupportedWidth, base.BitLen(), modulus.BitLen())
	}

	m, b := toWord(modulus), toWord(base)
	b.Mod(b, m)

	result := uint256.NewInt(1)
	result.Mod(result, m)

	n := exponent.BitLen()
	for i := 0; i < n; i++ {
		if exponent.Bit(i) == 1 {
			result.MulMod(result, b, m)
		}
		if i+1 < n {
			b.MulMod(b, b, m)
		}
	}
	return core.FromLimbs(result[:]), nil
}

// toWord copies the limbs of x, which must fit in 256 bits. uint256.Int
// stores its words least significant first, like BigUint.
func toWord(x *core.BigUint) *uint256.Int {
	var z uint256.Int
	copy(z[:], x.Limbs())
	return &z
}
