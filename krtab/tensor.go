package krtab

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/riggings/cartan"
	"github.com/katalvlaran/riggings/crystal"
	"github.com/katalvlaran/riggings/rigged"
)

// tensorSep joins factor renders; diagram rows below the first are padded
// with a blank of the same width.
const tensorSep = " (X) "

// TensorProduct is the parent of tensor-product elements: the ambient
// Cartan type, the rectangle of every tensor position (leftmost first), and
// the optionally attached bijection-engine factory.
type TensorProduct struct {
	typ    cartan.Type
	shapes []Shape
	engine EngineFactory
}

// NewTensorProduct builds a parent over t with one B^{r,s} rectangle per
// tensor position. Shapes are copied.
//
// Errors: ErrBadShape, ErrFactorCount (empty shape list).
func NewTensorProduct(t cartan.Type, shapes []Shape, opts ...Option) (*TensorProduct, error) {
	if len(shapes) == 0 {
		return nil, fmt.Errorf("%w: need at least one factor", ErrFactorCount)
	}
	for i, s := range shapes {
		if s.Rows <= 0 || s.Cols <= 0 {
			return nil, fmt.Errorf("%w: position %d is %dx%d", ErrBadShape, i, s.Rows, s.Cols)
		}
	}

	tp := &TensorProduct{typ: t, shapes: append([]Shape(nil), shapes...)}
	for _, opt := range opts {
		opt(tp)
	}

	return tp, nil
}

// Type returns the ambient Cartan type.
func (tp *TensorProduct) Type() cartan.Type { return tp.typ }

// Len returns the number of tensor positions.
func (tp *TensorProduct) Len() int { return len(tp.shapes) }

// Shape returns the rectangle of position i.
func (tp *TensorProduct) Shape(i int) Shape { return tp.shapes[i] }

// Dims returns the rectangle list in the [2]int{r, s} form consumed by
// package rigged, leftmost factor first.
func (tp *TensorProduct) Dims() [][2]int {
	dims := make([][2]int, len(tp.shapes))
	for i, s := range tp.shapes {
		dims[i] = s.Dim()
	}

	return dims
}

// KRCrystalParent returns the tensor product of KR crystals corresponding
// to this parent — the target of Element.ToKRCrystals.
func (tp *TensorProduct) KRCrystalParent() *crystal.TensorProduct {
	return crystal.NewTensorProduct(tp.typ, tp.Dims())
}

// FromSymbolLists constructs an element from one raw symbol list per factor
// (pathlist reading: columns left to right, each bottom to top). The whole
// construction is rejected before any factor survives if the list count
// differs from the parent's factor count or any list is invalid for its
// declared shape.
//
// Errors: ErrFactorCount, plus ErrSymbolCount / ErrBadLetter /
// ErrColumnOrder / ErrRowOrder propagated from factor construction.
func (tp *TensorProduct) FromSymbolLists(pathlist [][]int) (*Element, error) {
	if len(pathlist) != len(tp.shapes) {
		return nil, fmt.Errorf("%w: got %d symbol lists, want %d", ErrFactorCount, len(pathlist), len(tp.shapes))
	}

	factors := make([]*Tableau, len(pathlist))
	for i, symbols := range pathlist {
		tab, err := TableauFromSymbols(tp.typ, tp.shapes[i], symbols)
		if err != nil {
			return nil, fmt.Errorf("factor %d: %w", i, err)
		}
		factors[i] = tab
	}

	return &Element{parent: tp, factors: factors}, nil
}

// FromFactors constructs an element from pre-built tableaux, validating the
// count and per-position type and shape agreement.
//
// Errors: ErrFactorCount, ErrTypeMismatch, ErrShapeMismatch.
func (tp *TensorProduct) FromFactors(factors ...*Tableau) (*Element, error) {
	if len(factors) != len(tp.shapes) {
		return nil, fmt.Errorf("%w: got %d factors, want %d", ErrFactorCount, len(factors), len(tp.shapes))
	}
	for i, f := range factors {
		if f.Type() != tp.typ {
			return nil, fmt.Errorf("%w: factor %d is %s, parent is %s", ErrTypeMismatch, i, f.Type(), tp.typ)
		}
		if f.Shape() != tp.shapes[i] {
			return nil, fmt.Errorf("%w: factor %d is %dx%d, position wants %dx%d",
				ErrShapeMismatch, i, f.Shape().Rows, f.Shape().Cols, tp.shapes[i].Rows, tp.shapes[i].Cols)
		}
	}

	return &Element{parent: tp, factors: append([]*Tableau(nil), factors...)}, nil
}

// FromKRCrystals recovers the tensor product of KR tableaux from a tensor
// product of KR crystals by applying the filling map per factor. Only the
// identity-filling shapes of ToKRCrystal are supported.
//
// Errors: ErrFactorCount, ErrUnsupportedFilling, plus factor construction errors.
func (tp *TensorProduct) FromKRCrystals(e *crystal.Element) (*Element, error) {
	if e.Len() != len(tp.shapes) {
		return nil, fmt.Errorf("%w: got %d crystal factors, want %d", ErrFactorCount, e.Len(), len(tp.shapes))
	}

	factors := make([]*Tableau, e.Len())
	for i := 0; i < e.Len(); i++ {
		shape := tp.shapes[i]
		identity := tp.typ.Family == cartan.A || shape.Rows == 1 || shape.Cols == 1
		if !identity {
			return nil, fmt.Errorf("%w: %s B^{%d,%d}", ErrUnsupportedFilling, tp.typ, shape.Rows, shape.Cols)
		}
		tab, err := NewTableau(tp.typ, shape, e.Factor(i).Rows())
		if err != nil {
			return nil, fmt.Errorf("factor %d: %w", i, err)
		}
		factors[i] = tab
	}

	return &Element{parent: tp, factors: factors}, nil
}

// Element is one element of a tensor product of KR tableaux: an ordered,
// fixed-length, immutable sequence of factors sharing the parent's type.
type Element struct {
	parent  *TensorProduct
	factors []*Tableau
}

// Parent returns the element's tensor-product parent.
func (e *Element) Parent() *TensorProduct { return e.parent }

// Len returns the number of tensor factors.
func (e *Element) Len() int { return len(e.factors) }

// Factor returns the i-th factor, leftmost first.
func (e *Element) Factor(i int) *Tableau { return e.factors[i] }

// String renders the element on a single line: factor renders joined by the
// tensor separator, e.g. "[[2]] (X) [[1], [4]]".
func (e *Element) String() string {
	parts := make([]string, len(e.factors))
	for i, f := range e.factors {
		parts[i] = f.String()
	}

	return strings.Join(parts, tensorSep)
}

// Diagram renders the element as a multi-line diagram with factors side by
// side. The first row of every factor is joined with the tensor separator;
// subsequent rows sit under their factor with separator-width blank padding
// between columns, and shorter factors are padded with blanks of their own
// width rather than omitted.
func (e *Element) Diagram() string {
	blocks := make([][]string, len(e.factors))
	for i, f := range e.factors {
		blocks[i] = f.Diagram()
	}

	return joinDiagrams(blocks)
}

// joinDiagrams lays out rectangular per-factor line blocks side by side.
// A block with no lines contributes a one-column blank placeholder so the
// layout degenerates gracefully.
func joinDiagrams(blocks [][]string) string {
	widths := make([]int, len(blocks))
	height := 0
	for i, lines := range blocks {
		widths[i] = 1
		if len(lines) > 0 {
			widths[i] = len(lines[0])
		}
		if len(lines) > height {
			height = len(lines)
		}
	}

	var b strings.Builder
	for i, lines := range blocks {
		if i > 0 {
			b.WriteString(tensorSep)
		}
		if len(lines) > 0 {
			b.WriteString(lines[0])
		} else {
			b.WriteString(strings.Repeat(" ", widths[i]))
		}
	}
	for row := 1; row < height; row++ {
		b.WriteByte('\n')
		for i, lines := range blocks {
			if i > 0 {
				b.WriteString(strings.Repeat(" ", len(tensorSep)))
			}
			if row < len(lines) {
				b.WriteString(lines[row])
			} else {
				b.WriteString(strings.Repeat(" ", widths[i]))
			}
		}
	}

	return b.String()
}

// ClassicalWeight returns the vector sum of every factor's classical
// weight in the ambient lattice.
func (e *Element) ClassicalWeight() cartan.Weight {
	w := cartan.ZeroWeight(e.parent.typ)
	for _, f := range e.factors {
		w = w.Add(f.ClassicalWeight())
	}

	return w
}

// ToRiggedConfiguration performs the bijection to a rigged configuration by
// seeding the parent's injected engine with this element and running it to
// completion. The element holds no bijection state. steps, when non-nil,
// receives intermediate states; engine errors propagate unchanged.
//
// Errors: ErrNoEngine when the parent has no engine attached, otherwise
// whatever the engine reports.
func (e *Element) ToRiggedConfiguration(steps io.Writer) (*rigged.Configuration, error) {
	if e.parent.engine == nil {
		return nil, ErrNoEngine
	}
	eng, err := e.parent.engine(e)
	if err != nil {
		return nil, err
	}

	return eng.Run(steps)
}

// ToKRCrystals applies the filling-map inverse to every factor
// independently and reassembles the results, order preserved, in the
// corresponding tensor product of KR crystals.
//
// Errors: ErrUnsupportedFilling propagated from a factor.
func (e *Element) ToKRCrystals() (*crystal.Element, error) {
	factors := make([]*crystal.Factor, len(e.factors))
	for i, f := range e.factors {
		cf, err := f.ToKRCrystal()
		if err != nil {
			return nil, fmt.Errorf("factor %d: %w", i, err)
		}
		factors[i] = cf
	}

	return e.parent.KRCrystalParent().New(factors...)
}

// Equal reports equality of parent type, shapes and factor entries.
func (e *Element) Equal(o *Element) bool {
	if e.parent.typ != o.parent.typ || len(e.factors) != len(o.factors) {
		return false
	}
	for i := range e.factors {
		if !e.factors[i].Equal(o.factors[i]) {
			return false
		}
	}

	return true
}
