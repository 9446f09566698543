// Package engines provides reference modular exponentiation backends that
// share the core.Engine interface with the square-and-multiply engine.
package engines

import (
	"errors"
	"fmt"
	"sort"

	"github.com/vybium/vybium-modexp-bench/internal/modexp-bench/core"
)

var (
	// ErrUnsupportedWidth is returned when an operand does not fit a
	// fixed-width backend
	ErrUnsupportedWidth = errors.New("operand width not supported by engine")

	// ErrUnknownEngine is returned by Lookup for unregistered names
	ErrUnknownEngine = errors.New("unknown engine")
)

var registry = map[string]func() core.Engine{
	"binary":     func() core.Engine { return core.BinaryEngine{} },
	"mathbig":    func() core.Engine { return MathBig{} },
	"uint256":    func() core.Engine { return Uint256{} },
	"goldilocks": func() core.Engine { return Goldilocks{} },
}

// Lookup returns the engine registered under name
func Lookup(name string) (core.Engine, error) {
	ctor, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknownEngine, name, Names())
	}
	return ctor(), nil
}

// Names lists the registered engines in lexical order
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
