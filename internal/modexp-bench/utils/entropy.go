package utils

import (
	"crypto/rand"
	"io"

	"golang.org/x/crypto/sha3"
)

// SeededReader returns an endless deterministic byte stream derived from seed.
// The stream is the SHAKE256 output of the domain tag followed by seed, so two
// readers with the same seed produce identical bases.
func SeededReader(seed []byte) io.Reader {
	h := sha3.NewShake256()
	h.Write([]byte("modexp-bench/bases/v1"))
	h.Write(seed)
	return h
}

// NewEntropy selects the random source for a run: crypto/rand when seed is
// empty, a SeededReader otherwise
func NewEntropy(seed string) io.Reader {
	if seed == "" {
		return rand.Reader
	}
	return SeededReader([]byte(seed))
}
