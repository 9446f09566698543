package utils

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"reflect"

	"github.com/naoina/toml"

	"github.com/vybium/vybium-modexp-bench/internal/modexp-bench/core"
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid configuration")

// Config represents the configuration of one benchmark run
type Config struct {
	// Bits is the modulus width n; bases are drawn from [2^(n-1), 2^n)
	Bits int

	// Rounds is the number of timed trials
	Rounds int

	// Modulus is a decimal or 0x-prefixed hex literal. Empty selects the
	// preset prime for Bits.
	Modulus string

	// Engine names the exponentiation backend ("binary", "mathbig", ...)
	Engine string

	// Seed makes the sampled bases reproducible. Empty uses crypto/rand.
	Seed string
}

// DefaultConfig returns the standard benchmark: 100 rounds over the 1024-bit
// preset prime with the binary engine
func DefaultConfig() *Config {
	return &Config{
		Bits:    DefaultBits,
		Rounds:  DefaultRounds,
		Modulus: Primes[DefaultBits],
		Engine:  "binary",
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Bits < 2 {
		return fmt.Errorf("%w: bit width must be at least 2, got %d", ErrInvalidConfig, c.Bits)
	}

	if c.Rounds < 0 {
		return fmt.Errorf("%w: rounds must not be negative, got %d", ErrInvalidConfig, c.Rounds)
	}

	if c.Engine == "" {
		return fmt.Errorf("%w: engine must be set", ErrInvalidConfig)
	}

	p, err := c.ModulusValue()
	if err != nil {
		return err
	}
	if p.IsZero() {
		return fmt.Errorf("%w: modulus must be non-zero", ErrInvalidConfig)
	}
	if p.BitLen() != c.Bits {
		return fmt.Errorf("%w: modulus has %d bits, expected %d", ErrInvalidConfig, p.BitLen(), c.Bits)
	}

	return nil
}

// ModulusValue parses the configured modulus
func (c *Config) ModulusValue() (*core.BigUint, error) {
	literal := c.Modulus
	if literal == "" {
		preset, ok := Primes[c.Bits]
		if !ok {
			return nil, fmt.Errorf("%w: no preset prime for %d bits, set a modulus", ErrInvalidConfig, c.Bits)
		}
		literal = preset
	}
	p, err := core.Parse(literal)
	if err != nil {
		return nil, fmt.Errorf("%w: modulus: %w", ErrInvalidConfig, err)
	}
	return p, nil
}

// Exponent derives the benchmark exponent (p-1)/2 from the modulus
func (c *Config) Exponent() (*core.BigUint, error) {
	p, err := c.ModulusValue()
	if err != nil {
		return nil, err
	}
	pm1, err := core.Sub(p, core.One())
	if err != nil {
		return nil, fmt.Errorf("%w: modulus must be non-zero", ErrInvalidConfig)
	}
	return core.Halve(pm1), nil
}

// WithBits sets the modulus width and, when the current modulus is a preset,
// switches to the preset of the new width
func (c *Config) WithBits(bits int) *Config {
	if c.Modulus == "" || c.Modulus == Primes[c.Bits] {
		c.Modulus = Primes[bits]
	}
	c.Bits = bits
	return c
}

// WithRounds sets the number of trials
func (c *Config) WithRounds(rounds int) *Config {
	c.Rounds = rounds
	return c
}

// WithModulus sets the modulus literal
func (c *Config) WithModulus(modulus string) *Config {
	c.Modulus = modulus
	return c
}

// WithEngine sets the backend name
func (c *Config) WithEngine(engine string) *Config {
	c.Engine = engine
	return c
}

// WithSeed sets the base sampling seed
func (c *Config) WithSeed(seed string) *Config {
	c.Seed = seed
	return c
}

// Clone creates a copy of the configuration
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// tomlSettings keeps keys identical to the Go field names and rejects keys
// that match no field.
var tomlSettings = toml.Config{
	NormFieldName: func(rt reflect.Type, key string) string {
		return key
	},
	FieldToKey: func(rt reflect.Type, field string) string {
		return field
	},
	MissingField: func(rt reflect.Type, field string) error {
		return fmt.Errorf("field '%s' is not defined in %s", field, rt.String())
	},
}

// LoadConfig overlays the TOML file at path onto cfg. Keys absent from the
// file keep their current values. A file that changes Bits without naming a
// modulus follows the WithBits preset rule.
func LoadConfig(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	next := cfg.Clone()
	if err := tomlSettings.NewDecoder(bufio.NewReader(f)).Decode(next); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidConfig, path, err)
	}
	if next.Bits != cfg.Bits && next.Modulus == cfg.Modulus {
		bits := next.Bits
		next.Bits = cfg.Bits
		next.WithBits(bits)
	}
	*cfg = *next
	return nil
}

// MarshalConfig renders cfg in the format LoadConfig reads
func MarshalConfig(cfg *Config) ([]byte, error) {
	return tomlSettings.Marshal(cfg)
}
