// Package core provides arbitrary-precision unsigned integers and the
// modular exponentiation routine built on them.
package core

import (
	"errors"
	"fmt"
	"math/big"
	"math/bits"
	"strconv"
	"strings"
)

var (
	// ErrDivisionByZero is returned when a reduction or division is asked to
	// use a zero modulus.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrUnderflow is returned by Sub when the result would be negative.
	ErrUnderflow = errors.New("unsigned subtraction underflow")

	// ErrInvalidLiteral is returned when a textual integer cannot be parsed.
	ErrInvalidLiteral = errors.New("invalid integer literal")
)

// decimalChunk is the largest power of ten that fits in one limb.
const (
	decimalChunk       uint64 = 10000000000000000000
	decimalChunkDigits        = 19
)

// BigUint is an arbitrary-precision non-negative integer.
//
// The value is stored as little-endian 64-bit limbs with no most-significant
// zero limbs; zero has no limbs at all. A nil *BigUint reads as zero. Every
// operation returns a fresh value and never mutates its operands.
type BigUint struct {
	limbs []uint64
}

// NewBigUint creates a BigUint from a machine word
func NewBigUint(x uint64) *BigUint {
	if x == 0 {
		return &BigUint{}
	}
	return &BigUint{limbs: []uint64{x}}
}

// Zero returns the additive identity
func Zero() *BigUint {
	return &BigUint{}
}

// One returns the multiplicative identity
func One() *BigUint {
	return NewBigUint(1)
}

// FromLimbs creates a BigUint from little-endian limbs. The slice is copied.
func FromLimbs(limbs []uint64) *BigUint {
	return &BigUint{limbs: norm(cloneLimbs(limbs))}
}

// PowerOfTwo returns 2^k
func PowerOfTwo(k uint) *BigUint {
	return Lsh(One(), k)
}

// FromBytes interprets buf as a big-endian unsigned integer
func FromBytes(buf []byte) *BigUint {
	z := make([]uint64, (len(buf)+7)/8)
	for i := 0; i < len(buf); i++ {
		b := buf[len(buf)-1-i]
		z[i/8] |= uint64(b) << (8 * (i % 8))
	}
	return &BigUint{limbs: norm(z)}
}

// FromBig converts a non-negative math/big integer.
// Only used to cross-check results against the standard library.
func FromBig(x *big.Int) (*BigUint, error) {
	if x.Sign() < 0 {
		return nil, fmt.Errorf("%w: negative value %s", ErrInvalidLiteral, x.String())
	}
	return FromBytes(x.Bytes()), nil
}

// Parse reads a decimal literal, or a hexadecimal one when prefixed by 0x
func Parse(s string) (*BigUint, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return ParseHex(s[2:])
	}
	return ParseDecimal(s)
}

// ParseDecimal reads a base-10 literal
func ParseDecimal(s string) (*BigUint, error) {
	s = strings.ReplaceAll(s, "_", "")
	if s == "" {
		return nil, fmt.Errorf("%w: empty string", ErrInvalidLiteral)
	}
	var z []uint64
	for len(s) > 0 {
		// The leading chunk absorbs the remainder so that the rest are full.
		n := len(s) % decimalChunkDigits
		if n == 0 {
			n = decimalChunkDigits
		}
		chunk, err := strconv.ParseUint(s[:n], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidLiteral, s[:n])
		}
		m := decimalChunk
		if n < decimalChunkDigits {
			m = pow10(n)
		}
		z = mulAddWord(z, m, chunk)
		s = s[n:]
	}
	return &BigUint{limbs: z}, nil
}

// ParseHex reads a base-16 literal without prefix
func ParseHex(s string) (*BigUint, error) {
	s = strings.ReplaceAll(s, "_", "")
	if s == "" {
		return nil, fmt.Errorf("%w: empty string", ErrInvalidLiteral)
	}
	z := make([]uint64, (len(s)+15)/16)
	for i := range z {
		end := len(s) - 16*i
		start := max(end-16, 0)
		w, err := strconv.ParseUint(s[start:end], 16, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidLiteral, s[start:end])
		}
		z[i] = w
	}
	return &BigUint{limbs: norm(z)}, nil
}

// MustParse is like Parse but panics on malformed input.
// Intended for package-level constants.
func MustParse(s string) *BigUint {
	x, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return x
}

func (x *BigUint) words() []uint64 {
	if x == nil {
		return nil
	}
	return x.limbs
}

// Limbs returns a copy of the little-endian limbs. Zero is reported as the
// single limb 0.
func (x *BigUint) Limbs() []uint64 {
	w := x.words()
	if len(w) == 0 {
		return []uint64{0}
	}
	return cloneLimbs(w)
}

// IsZero reports whether x == 0
func (x *BigUint) IsZero() bool {
	return len(x.words()) == 0
}

// IsOdd reports whether the least-significant bit of x is set
func (x *BigUint) IsOdd() bool {
	w := x.words()
	return len(w) > 0 && w[0]&1 == 1
}

// BitLen returns the number of bits needed to represent x; 0 for zero
func (x *BigUint) BitLen() int {
	w := x.words()
	if len(w) == 0 {
		return 0
	}
	return (len(w)-1)*64 + bits.Len64(w[len(w)-1])
}

// Bit returns the value of the i'th bit
func (x *BigUint) Bit(i int) uint {
	w := x.words()
	if i < 0 || i/64 >= len(w) {
		return 0
	}
	return uint(w[i/64]>>(uint(i)%64)) & 1
}

// Uint64 returns the low 64 bits of x
func (x *BigUint) Uint64() uint64 {
	w := x.words()
	if len(w) == 0 {
		return 0
	}
	return w[0]
}

// Cmp returns -1, 0 or +1 as x is less than, equal to or greater than y
func (x *BigUint) Cmp(y *BigUint) int {
	return cmpLimbs(x.words(), y.words())
}

// Equal reports whether x == y
func (x *BigUint) Equal(y *BigUint) bool {
	return x.Cmp(y) == 0
}

// Add returns x + y
func Add(x, y *BigUint) *BigUint {
	return &BigUint{limbs: addLimbs(x.words(), y.words())}
}

// Sub returns x - y, failing when y > x
func Sub(x, y *BigUint) (*BigUint, error) {
	if x.Cmp(y) < 0 {
		return nil, ErrUnderflow
	}
	return &BigUint{limbs: subLimbs(x.words(), y.words())}, nil
}

// Multiply returns the exact product x * y
func Multiply(x, y *BigUint) *BigUint {
	return &BigUint{limbs: mulLimbs(x.words(), y.words())}
}

// Lsh returns x << s
func Lsh(x *BigUint, s uint) *BigUint {
	return &BigUint{limbs: shlLimbs(x.words(), s)}
}

// Rsh returns x >> s
func Rsh(x *BigUint, s uint) *BigUint {
	return &BigUint{limbs: shrLimbs(x.words(), s)}
}

// Halve returns floor(x / 2)
func Halve(x *BigUint) *BigUint {
	return Rsh(x, 1)
}

// DivMod returns the quotient and remainder of x / m
func DivMod(x, m *BigUint) (q, r *BigUint, err error) {
	if m.IsZero() {
		return nil, nil, ErrDivisionByZero
	}
	qw, rw := divLimbs(x.words(), m.words())
	return &BigUint{limbs: qw}, &BigUint{limbs: rw}, nil
}

// ReduceModulo returns x mod m, in [0, m)
func ReduceModulo(x, m *BigUint) (*BigUint, error) {
	if m.IsZero() {
		return nil, ErrDivisionByZero
	}
	_, rw := divLimbs(x.words(), m.words())
	return &BigUint{limbs: rw}, nil
}

// Bytes returns the minimal big-endian encoding; zero encodes as no bytes
func (x *BigUint) Bytes() []byte {
	w := x.words()
	buf := make([]byte, len(w)*8)
	for i, limb := range w {
		for j := 0; j < 8; j++ {
			buf[len(buf)-1-(i*8+j)] = byte(limb >> (8 * j))
		}
	}
	i := 0
	for i < len(buf) && buf[i] == 0 {
		i++
	}
	return buf[i:]
}

// Big converts x to a math/big integer
func (x *BigUint) Big() *big.Int {
	return new(big.Int).SetBytes(x.Bytes())
}

// Hex returns the lowercase hexadecimal representation without prefix
func (x *BigUint) Hex() string {
	w := x.words()
	if len(w) == 0 {
		return "0"
	}
	var sb strings.Builder
	sb.WriteString(strconv.FormatUint(w[len(w)-1], 16))
	for i := len(w) - 2; i >= 0; i-- {
		fmt.Fprintf(&sb, "%016x", w[i])
	}
	return sb.String()
}

// String returns the decimal representation
func (x *BigUint) String() string {
	w := x.words()
	if len(w) == 0 {
		return "0"
	}
	var chunks []uint64
	rest := cloneLimbs(w)
	for len(rest) > 0 {
		var r uint64
		rest, r = divWord(rest, decimalChunk)
		chunks = append(chunks, r)
	}
	var sb strings.Builder
	sb.WriteString(strconv.FormatUint(chunks[len(chunks)-1], 10))
	for i := len(chunks) - 2; i >= 0; i-- {
		fmt.Fprintf(&sb, "%019d", chunks[i])
	}
	return sb.String()
}

// Format implements fmt.Formatter so that %d, %x and %v print the value
func (x *BigUint) Format(s fmt.State, verb rune) {
	switch verb {
	case 'x':
		fmt.Fprint(s, x.Hex())
	case 'X':
		fmt.Fprint(s, strings.ToUpper(x.Hex()))
	default:
		fmt.Fprint(s, x.String())
	}
}

// limb-level helpers. All of them return normalised slices and never write
// into their inputs unless documented otherwise.

func norm(z []uint64) []uint64 {
	i := len(z)
	for i > 0 && z[i-1] == 0 {
		i--
	}
	return z[:i]
}

func cloneLimbs(x []uint64) []uint64 {
	if len(x) == 0 {
		return nil
	}
	z := make([]uint64, len(x))
	copy(z, x)
	return z
}

func pow10(n int) uint64 {
	p := uint64(1)
	for i := 0; i < n; i++ {
		p *= 10
	}
	return p
}

func cmpLimbs(x, y []uint64) int {
	if len(x) != len(y) {
		if len(x) < len(y) {
			return -1
		}
		return 1
	}
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] != y[i] {
			if x[i] < y[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

func addLimbs(x, y []uint64) []uint64 {
	if len(x) < len(y) {
		x, y = y, x
	}
	z := make([]uint64, len(x)+1)
	var c uint64
	for i := range y {
		z[i], c = bits.Add64(x[i], y[i], c)
	}
	for i := len(y); i < len(x); i++ {
		z[i], c = bits.Add64(x[i], 0, c)
	}
	z[len(x)] = c
	return norm(z)
}

// subLimbs requires x >= y.
func subLimbs(x, y []uint64) []uint64 {
	z := make([]uint64, len(x))
	var b uint64
	for i := range y {
		z[i], b = bits.Sub64(x[i], y[i], b)
	}
	for i := len(y); i < len(x); i++ {
		z[i], b = bits.Sub64(x[i], 0, b)
	}
	return norm(z)
}

// mulLimbs is schoolbook multiplication. The operands of the benchmark are
// 16 limbs wide, well below any Karatsuba threshold.
func mulLimbs(x, y []uint64) []uint64 {
	if len(x) == 0 || len(y) == 0 {
		return nil
	}
	z := make([]uint64, len(x)+len(y))
	for i, xi := range x {
		if xi == 0 {
			continue
		}
		var carry uint64
		for j, yj := range y {
			hi, lo := bits.Mul64(xi, yj)
			var c uint64
			lo, c = bits.Add64(lo, z[i+j], 0)
			hi += c
			lo, c = bits.Add64(lo, carry, 0)
			hi += c
			z[i+j] = lo
			carry = hi
		}
		z[i+len(y)] = carry
	}
	return norm(z)
}

// mulAddWord returns x*m + a.
func mulAddWord(x []uint64, m, a uint64) []uint64 {
	z := make([]uint64, len(x)+1)
	carry := a
	for i, xi := range x {
		hi, lo := bits.Mul64(xi, m)
		var c uint64
		lo, c = bits.Add64(lo, carry, 0)
		z[i] = lo
		carry = hi + c
	}
	z[len(x)] = carry
	return norm(z)
}

func shlLimbs(x []uint64, s uint) []uint64 {
	if len(x) == 0 {
		return nil
	}
	w := int(s / 64)
	z := make([]uint64, len(x)+w+1)
	copy(z[w:], shlInto(x, s%64, len(x)+1))
	return norm(z)
}

// shlInto returns x << s as a slice of exactly size limbs, s < 64.
// The result is not normalised.
func shlInto(x []uint64, s uint, size int) []uint64 {
	z := make([]uint64, size)
	if s == 0 {
		copy(z, x)
		return z
	}
	var carry uint64
	for i, xi := range x {
		z[i] = xi<<s | carry
		carry = xi >> (64 - s)
	}
	if len(x) < size {
		z[len(x)] = carry
	}
	return z
}

func shrLimbs(x []uint64, s uint) []uint64 {
	w := int(s / 64)
	if w >= len(x) {
		return nil
	}
	b := s % 64
	n := len(x) - w
	z := make([]uint64, n)
	if b == 0 {
		copy(z, x[w:])
		return norm(z)
	}
	for i := 0; i < n; i++ {
		z[i] = x[i+w] >> b
		if i+w+1 < len(x) {
			z[i] |= x[i+w+1] << (64 - b)
		}
	}
	return norm(z)
}

// divWord divides x by a single non-zero limb.
func divWord(x []uint64, d uint64) ([]uint64, uint64) {
	q := make([]uint64, len(x))
	var r uint64
	for i := len(x) - 1; i >= 0; i-- {
		q[i], r = bits.Div64(r, x[i], d)
	}
	return norm(q), r
}

// divLimbs returns q, r with u = q*v + r and 0 <= r < v. v must be non-empty.
//
// Multi-limb divisors use Knuth's Algorithm D (TAOCP vol. 2, 4.3.1): the
// divisor is normalised so its top bit is set, which bounds every quotient
// digit estimate to at most one above the true digit.
func divLimbs(u, v []uint64) (q, r []uint64) {
	if cmpLimbs(u, v) < 0 {
		return nil, cloneLimbs(u)
	}
	if len(v) == 1 {
		qw, rw := divWord(u, v[0])
		return qw, norm([]uint64{rw})
	}

	s := uint(bits.LeadingZeros64(v[len(v)-1]))
	vn := shlInto(v, s, len(v))
	un := shlInto(u, s, len(u)+1)

	n := len(vn)
	m := len(un) - n
	q = make([]uint64, m)
	vTop, vNext := vn[n-1], vn[n-2]

	for j := m - 1; j >= 0; j-- {
		qhat := ^uint64(0)
		if ujn := un[j+n]; ujn != vTop {
			var rhat uint64
			qhat, rhat = bits.Div64(ujn, un[j+n-1], vTop)
			for {
				hi, lo := bits.Mul64(qhat, vNext)
				if hi < rhat || (hi == rhat && lo <= un[j+n-2]) {
					break
				}
				qhat--
				prev := rhat
				rhat += vTop
				if rhat < prev {
					break
				}
			}
		}

		// un[j:j+n+1] -= qhat * vn
		var carry, borrow uint64
		for i := 0; i < n; i++ {
			hi, lo := bits.Mul64(qhat, vn[i])
			var c uint64
			lo, c = bits.Add64(lo, carry, 0)
			carry = hi + c
			un[j+i], borrow = bits.Sub64(un[j+i], lo, borrow)
		}
		un[j+n], borrow = bits.Sub64(un[j+n], carry, borrow)

		if borrow != 0 {
			qhat--
			var c uint64
			for i := 0; i < n; i++ {
				un[j+i], c = bits.Add64(un[j+i], vn[i], c)
			}
			un[j+n] += c
		}
		q[j] = qhat
	}

	return norm(q), shrLimbs(un[:n], s)
}
