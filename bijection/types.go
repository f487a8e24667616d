// Package bijection defines the engine options and sentinel errors.
package bijection

import (
	"errors"
	"io"
)

// Sentinel errors for engine construction and the inverse map.
var (
	// ErrNilElement indicates a nil element seed.
	ErrNilElement = errors.New("bijection: nil element")
	// ErrUnsupportedType indicates a Cartan type with no implemented bijection.
	ErrUnsupportedType = errors.New("bijection: no bijection implemented for this Cartan type")
	// ErrTypeMismatch indicates a configuration and parent over different Cartan types.
	ErrTypeMismatch = errors.New("bijection: configuration Cartan type differs from parent")
	// ErrDimsMismatch indicates a configuration built against different rectangles than the parent's.
	ErrDimsMismatch = errors.New("bijection: configuration dims differ from parent shapes")
	// ErrNotInImage indicates a configuration that no tensor product maps to.
	ErrNotInImage = errors.New("bijection: configuration is not in the image of the bijection")
)

// Options configures an engine run.
//   - Steps: destination for intermediate states (one block per letter
//     placed); nil disables tracing. The computation is deterministic and
//     synchronous either way.
type Options struct {
	Steps io.Writer
}

// DefaultOptions returns the default run configuration: no step tracing.
func DefaultOptions() Options {
	return Options{}
}
