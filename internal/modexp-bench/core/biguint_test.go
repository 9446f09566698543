package core

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPrime1024 = "158297696608074679654124946564912202999139663277505984894261981349837992769596165683700437968679604111373729258655046764462137227577322861762501627230418997487671809885760928375348392323002752945263359796693275288611323927303851169352900910708127230034239565388759941444235878668699843286794016470366892082267"

// randomBigUint returns a value of up to n bytes together with its math/big twin.
func randomBigUint(t testing.TB, r *rand.Rand, n int) (*BigUint, *big.Int) {
	t.Helper()
	buf := make([]byte, r.Intn(n)+1)
	r.Read(buf)
	return FromBytes(buf), new(big.Int).SetBytes(buf)
}

func requireSameValue(t *testing.T, want *big.Int, got *BigUint, msgAndArgs ...interface{}) {
	t.Helper()
	require.Equal(t, want.String(), got.String(), msgAndArgs...)
}

func TestParseAndFormat(t *testing.T) {
	tests := []struct {
		name  string
		input string
		dec   string
		hex   string
	}{
		{name: "zero", input: "0", dec: "0", hex: "0"},
		{name: "small", input: "255", dec: "255", hex: "ff"},
		{name: "one limb max", input: "18446744073709551615", dec: "18446744073709551615", hex: "ffffffffffffffff"},
		{name: "two limbs", input: "18446744073709551616", dec: "18446744073709551616", hex: "10000000000000000"},
		{name: "decimal chunk boundary", input: "10000000000000000000", dec: "10000000000000000000", hex: "8ac7230489e80000"},
		{name: "hex prefix", input: "0xDEADbeef", dec: "3735928559", hex: "deadbeef"},
		{name: "leading zeros", input: "000042", dec: "42", hex: "2a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.dec, x.String())
			assert.Equal(t, tt.hex, x.Hex())
		})
	}
}

func TestParsePrimeMatchesMathBig(t *testing.T) {
	p, err := ParseDecimal(testPrime1024)
	require.NoError(t, err)

	want, ok := new(big.Int).SetString(testPrime1024, 10)
	require.True(t, ok)

	assert.Equal(t, 1024, p.BitLen())
	assert.Equal(t, testPrime1024, p.String())
	assert.Equal(t, want.Text(16), p.Hex())
	assert.Equal(t, want.Bytes(), p.Bytes())

	fromHex, err := Parse("0x" + want.Text(16))
	require.NoError(t, err)
	assert.True(t, fromHex.Equal(p))
}

func TestParseRejectsGarbage(t *testing.T) {
	for _, s := range []string{"", "12a", "-5", "+5", "0x", "0xzz", "1 2"} {
		_, err := Parse(s)
		assert.ErrorIs(t, err, ErrInvalidLiteral, "input %q", s)
	}
}

func TestCanonicalForm(t *testing.T) {
	x := FromLimbs([]uint64{7, 0, 0})
	assert.Equal(t, []uint64{7}, x.Limbs())

	zero := FromLimbs([]uint64{0, 0})
	assert.True(t, zero.IsZero())
	assert.Equal(t, []uint64{0}, zero.Limbs())

	a := FromLimbs([]uint64{1, 1})
	diff, err := Sub(a, a)
	require.NoError(t, err)
	assert.True(t, diff.IsZero())
	assert.True(t, diff.Equal(Zero()))

	var nilValue *BigUint
	assert.True(t, nilValue.IsZero())
	assert.Equal(t, 0, nilValue.Cmp(Zero()))
}

func TestMultiplyMatchesMathBig(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 500; i++ {
		a, aBig := randomBigUint(t, r, 200)
		b, bBig := randomBigUint(t, r, 40)

		requireSameValue(t, new(big.Int).Mul(aBig, bBig), Multiply(a, b), "a=%s b=%s", a, b)
		requireSameValue(t, new(big.Int).Mul(bBig, aBig), Multiply(b, a))
	}
}

func TestReduceModuloOfProduct(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for i := 0; i < 500; i++ {
		a, aBig := randomBigUint(t, r, 128)
		b, bBig := randomBigUint(t, r, 128)
		m, mBig := randomBigUint(t, r, 130)
		if m.IsZero() {
			continue
		}

		got, err := ReduceModulo(Multiply(a, b), m)
		require.NoError(t, err)

		want := new(big.Int).Mul(aBig, bBig)
		want.Mod(want, mBig)
		requireSameValue(t, want, got, "a=%s b=%s m=%s", a, b, m)
		assert.Negative(t, got.Cmp(m))
	}
}

func TestDivModIdentity(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for i := 0; i < 500; i++ {
		u, uBig := randomBigUint(t, r, 300)
		v, vBig := randomBigUint(t, r, 100)
		if v.IsZero() {
			continue
		}

		q, rem, err := DivMod(u, v)
		require.NoError(t, err)

		wantQ, wantR := new(big.Int).QuoRem(uBig, vBig, new(big.Int))
		requireSameValue(t, wantQ, q)
		requireSameValue(t, wantR, rem)
		assert.True(t, Add(Multiply(q, v), rem).Equal(u))
	}
}

// Divisors whose second limb forces the quotient estimate to be corrected.
func TestDivModCorrectionPaths(t *testing.T) {
	tests := []struct {
		u []uint64
		v []uint64
	}{
		{u: []uint64{0, 0, 0x8000000000000000}, v: []uint64{1, 0x8000000000000000}},
		{u: []uint64{^uint64(0), ^uint64(0), ^uint64(0), ^uint64(0)}, v: []uint64{^uint64(0), ^uint64(0)}},
		{u: []uint64{0, 0, 0, 1}, v: []uint64{^uint64(0), 1}},
		{u: []uint64{0, 0x7fffffffffffffff, 0x8000000000000000}, v: []uint64{^uint64(0), 0x8000000000000000}},
	}

	for _, tt := range tests {
		u, v := FromLimbs(tt.u), FromLimbs(tt.v)
		q, rem, err := DivMod(u, v)
		require.NoError(t, err)

		wantQ, wantR := new(big.Int).QuoRem(u.Big(), v.Big(), new(big.Int))
		requireSameValue(t, wantQ, q, "u=%x v=%x", u, v)
		requireSameValue(t, wantR, rem, "u=%x v=%x", u, v)
	}
}

func TestReduceModuloByZero(t *testing.T) {
	_, err := ReduceModulo(NewBigUint(5), Zero())
	require.ErrorIs(t, err, ErrDivisionByZero)

	_, _, err = DivMod(NewBigUint(5), nil)
	require.ErrorIs(t, err, ErrDivisionByZero)
}

func TestParityAndHalve(t *testing.T) {
	p := MustParse(testPrime1024)
	assert.True(t, p.IsOdd())
	assert.False(t, Zero().IsOdd())
	assert.False(t, NewBigUint(2).IsOdd())

	half := Halve(p)
	want := new(big.Int).Rsh(p.Big(), 1)
	requireSameValue(t, want, half)
	assert.True(t, Halve(One()).IsZero())
	assert.True(t, Halve(Zero()).IsZero())

	// Halving across a limb boundary.
	assert.Equal(t, []uint64{1 << 63}, Halve(FromLimbs([]uint64{0, 1})).Limbs())
}

func TestShifts(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	for i := 0; i < 200; i++ {
		x, xBig := randomBigUint(t, r, 64)
		s := uint(r.Intn(300))
		requireSameValue(t, new(big.Int).Lsh(xBig, s), Lsh(x, s))
		requireSameValue(t, new(big.Int).Rsh(xBig, s), Rsh(x, s))
	}
	assert.Equal(t, 1025, PowerOfTwo(1024).BitLen())
	assert.Equal(t, uint(1), PowerOfTwo(1023).Bit(1023))
	assert.Equal(t, uint(0), PowerOfTwo(1023).Bit(1022))
}

func TestAddSub(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	for i := 0; i < 200; i++ {
		a, aBig := randomBigUint(t, r, 80)
		b, bBig := randomBigUint(t, r, 80)

		requireSameValue(t, new(big.Int).Add(aBig, bBig), Add(a, b))

		diff, err := Sub(a, b)
		if aBig.Cmp(bBig) < 0 {
			require.ErrorIs(t, err, ErrUnderflow)
			continue
		}
		require.NoError(t, err)
		requireSameValue(t, new(big.Int).Sub(aBig, bBig), diff)
	}
}

func TestOperandsAreNotMutated(t *testing.T) {
	a := MustParse(testPrime1024)
	b := Lsh(a, 17)
	aCopy, bCopy := a.Limbs(), b.Limbs()

	_ = Multiply(a, b)
	_, _ = ReduceModulo(b, a)
	_ = Halve(a)
	_ = Add(a, b)
	_, _ = Sub(b, a)

	assert.Equal(t, aCopy, a.Limbs())
	assert.Equal(t, bCopy, b.Limbs())
}

func TestBytesRoundTrip(t *testing.T) {
	assert.Empty(t, Zero().Bytes())
	assert.Equal(t, []byte{0x01, 0x00}, NewBigUint(256).Bytes())
	assert.True(t, FromBytes([]byte{0, 0, 1, 0}).Equal(NewBigUint(256)))

	x, err := FromBig(big.NewInt(-1))
	assert.Nil(t, x)
	assert.ErrorIs(t, err, ErrInvalidLiteral)
}

func BenchmarkMultiply1024(b *testing.B) {
	p := MustParse(testPrime1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Multiply(p, p)
	}
}

func BenchmarkReduceModulo2048By1024(b *testing.B) {
	p := MustParse(testPrime1024)
	sq := Multiply(p, minusOne(p))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ReduceModulo(sq, p); err != nil {
			b.Fatal(err)
		}
	}
}

// minusOne returns x-1 for x > 0.
func minusOne(x *BigUint) *BigUint {
	y, err := Sub(x, One())
	if err != nil {
		panic(err)
	}
	return y
}
