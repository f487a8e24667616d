// Package krtab defines shapes, sentinel errors, and the engine seam used
// by tensor products of KR tableaux.
package krtab

import (
	"errors"
	"io"

	"github.com/katalvlaran/riggings/rigged"
)

// Sentinel errors for construction and conversion. Construction errors are
// surfaced before any element is assembled; no partially-built element is
// ever returned.
var (
	// ErrBadShape indicates a rectangle with a non-positive dimension.
	ErrBadShape = errors.New("krtab: shape dimensions must be positive")
	// ErrFactorCount indicates an input list whose length differs from the parent's factor count.
	ErrFactorCount = errors.New("krtab: factor count must match parent shapes")
	// ErrSymbolCount indicates a symbol list whose length differs from rows*cols of its shape.
	ErrSymbolCount = errors.New("krtab: symbol count must equal rows*cols")
	// ErrBadLetter indicates a symbol outside the crystal alphabet of the Cartan type.
	ErrBadLetter = errors.New("krtab: symbol outside the crystal alphabet")
	// ErrColumnOrder indicates a column that is not strictly increasing in the alphabet order.
	ErrColumnOrder = errors.New("krtab: column entries must strictly increase top to bottom")
	// ErrRowOrder indicates a type A row that is not weakly increasing.
	ErrRowOrder = errors.New("krtab: row entries must weakly increase left to right")
	// ErrTypeMismatch indicates a factor built over a different Cartan type than the parent.
	ErrTypeMismatch = errors.New("krtab: factor Cartan type differs from parent")
	// ErrShapeMismatch indicates a factor whose rectangle differs from its declared position.
	ErrShapeMismatch = errors.New("krtab: factor shape differs from parent position")
	// ErrNoEngine indicates ToRiggedConfiguration on a parent with no engine attached.
	ErrNoEngine = errors.New("krtab: no bijection engine attached to parent")
	// ErrUnsupportedFilling indicates a factor whose filling map is outside this library.
	ErrUnsupportedFilling = errors.New("krtab: filling map not implemented for this shape")
)

// Shape is the rectangle of one factor B^{r,s}: Rows = r, Cols = s.
type Shape struct {
	Rows, Cols int
}

// Dim returns the shape as the [2]int{r, s} form used by package rigged.
func (s Shape) Dim() [2]int { return [2]int{s.Rows, s.Cols} }

// Engine runs the bijection from one tensor-product element to a rigged
// configuration. steps, when non-nil, receives intermediate states of the
// algorithm; the computation itself is deterministic and uninterruptible.
// An Engine must treat the element as read-only.
type Engine interface {
	Run(steps io.Writer) (*rigged.Configuration, error)
}

// EngineFactory builds an engine seeded with one element. The parent holds
// a factory (see WithEngine) so that elements can delegate without this
// package importing any engine implementation.
type EngineFactory func(*Element) (Engine, error)

// Option configures a TensorProduct at construction time.
type Option func(*TensorProduct)

// WithEngine attaches the bijection-engine factory used by
// Element.ToRiggedConfiguration. Production wiring is bijection.Factory;
// tests may inject stubs.
func WithEngine(f EngineFactory) Option {
	return func(tp *TensorProduct) { tp.engine = f }
}
