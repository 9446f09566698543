package core

// Engine computes base^exponent mod modulus.
// Implementations must not retain or mutate their arguments.
type Engine interface {
	// Name identifies the backend in reports
	Name() string

	// ModExp returns base^exponent mod modulus
	ModExp(base, exponent, modulus *BigUint) (*BigUint, error)
}

// BinaryEngine is the square-and-multiply engine over BigUint
type BinaryEngine struct{}

// Name returns "binary"
func (BinaryEngine) Name() string { return "binary" }

// ModExp delegates to ModExp
func (BinaryEngine) ModExp(base, exponent, modulus *BigUint) (*BigUint, error) {
	return ModExp(base, exponent, modulus)
}

// ModExp computes base^exponent mod modulus with right-to-left binary
// exponentiation.
//
// The loop runs once per bit of exponent. x^0 is 1 for every x, including 0,
// except modulo 1 where every residue is 0. A zero modulus yields
// ErrDivisionByZero.
func ModExp(base, exponent, modulus *BigUint) (*BigUint, error) {
	result, err := ReduceModulo(One(), modulus)
	if err != nil {
		return nil, err
	}
	b, err := ReduceModulo(base, modulus)
	if err != nil {
		return nil, err
	}

	e := exponent
	for !e.IsZero() {
		if e.IsOdd() {
			result, err = ReduceModulo(Multiply(result, b), modulus)
			if err != nil {
				return nil, err
			}
		}
		e = Halve(e)
		// The final squaring is never used.
		if e.IsZero() {
			break
		}
		b, err = ReduceModulo(Multiply(b, b), modulus)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}
