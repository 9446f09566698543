package core

import (
	"errors"
	"fmt"
	"io"
)

// ErrInvalidRange is returned when a sampling range is empty
var ErrInvalidRange = errors.New("invalid range")

// FromRandomRange returns a value uniformly distributed in [low, high).
//
// Candidates are drawn with exactly the bit length of high-low and rejected
// until one falls inside the span, the same scheme crypto/rand.Int uses, so
// the result carries no modulo bias. Read errors from rng are returned as is.
func FromRandomRange(low, high *BigUint, rng io.Reader) (*BigUint, error) {
	if low.Cmp(high) >= 0 {
		return nil, fmt.Errorf("%w: low %s >= high %s", ErrInvalidRange, low, high)
	}
	span, err := Sub(high, low)
	if err != nil {
		return nil, err
	}

	k := span.BitLen()
	buf := make([]byte, (k+7)/8)
	topBits := uint(k % 8)
	if topBits == 0 {
		topBits = 8
	}

	for {
		if _, err := io.ReadFull(rng, buf); err != nil {
			return nil, fmt.Errorf("failed to read random bytes: %w", err)
		}
		buf[0] &= byte(int(1)<<topBits - 1)

		candidate := FromBytes(buf)
		if candidate.Cmp(span) < 0 {
			return Add(low, candidate), nil
		}
	}
}
