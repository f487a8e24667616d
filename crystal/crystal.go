package crystal

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/riggings/cartan"
)

// Sentinel errors for crystal element construction.
var (
	// ErrFactorCount indicates a factor count different from the parent's shape count.
	ErrFactorCount = errors.New("crystal: factor count must match parent shapes")
	// ErrBadLetter indicates an entry outside the crystal alphabet.
	ErrBadLetter = errors.New("crystal: entry outside the crystal alphabet")
	// ErrOversized indicates a factor exceeding its B^{r,s} rectangle.
	ErrOversized = errors.New("crystal: factor does not fit inside its rectangle")
)

// Factor is one KR crystal element: rows of alphabet letters. The shape may
// be any partition fitting inside the rectangle of its tensor position.
type Factor struct {
	Type cartan.Type
	rows [][]int
}

// NewFactor builds a factor from row-major entries, validating the alphabet.
func NewFactor(t cartan.Type, rows [][]int) (*Factor, error) {
	cp := make([][]int, len(rows))
	for i, row := range rows {
		cp[i] = make([]int, len(row))
		for j, v := range row {
			if !t.ValidLetter(v) {
				return nil, fmt.Errorf("%w: %d in type %s", ErrBadLetter, v, t)
			}
			cp[i][j] = v
		}
	}

	return &Factor{Type: t, rows: cp}, nil
}

// Rows returns a copy of the row-major entries.
func (f *Factor) Rows() [][]int {
	cp := make([][]int, len(f.rows))
	for i, row := range f.rows {
		cp[i] = append([]int(nil), row...)
	}

	return cp
}

// String renders the factor as its row list, e.g. "[[2], [-1]]".
func (f *Factor) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, row := range f.rows {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('[')
		for j, v := range row {
			if j > 0 {
				b.WriteString(", ")
			}
			b.WriteString(strconv.Itoa(v))
		}
		b.WriteByte(']')
	}
	b.WriteByte(']')

	return b.String()
}

// Equal reports equality of type and entries.
func (f *Factor) Equal(o *Factor) bool {
	if f.Type != o.Type || len(f.rows) != len(o.rows) {
		return false
	}
	for i := range f.rows {
		if len(f.rows[i]) != len(o.rows[i]) {
			return false
		}
		for j := range f.rows[i] {
			if f.rows[i][j] != o.rows[i][j] {
				return false
			}
		}
	}

	return true
}

// TensorProduct is the parent of crystal elements: the ambient Cartan type
// and the rectangle B^{r,s} of every tensor position, leftmost first.
type TensorProduct struct {
	Type   cartan.Type
	Shapes [][2]int // each entry is {r, s}
}

// NewTensorProduct builds a crystal parent. Shapes are copied.
func NewTensorProduct(t cartan.Type, shapes [][2]int) *TensorProduct {
	cp := make([][2]int, len(shapes))
	copy(cp, shapes)

	return &TensorProduct{Type: t, Shapes: cp}
}

// Element is one element of a tensor product of KR crystals: an ordered,
// immutable sequence of factors.
type Element struct {
	parent  *TensorProduct
	factors []*Factor
}

// New assembles an element from factors, validating the count and that every
// factor fits inside its position's rectangle.
func (tp *TensorProduct) New(factors ...*Factor) (*Element, error) {
	if len(factors) != len(tp.Shapes) {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrFactorCount, len(factors), len(tp.Shapes))
	}
	for i, f := range factors {
		r, s := tp.Shapes[i][0], tp.Shapes[i][1]
		if len(f.rows) > r {
			return nil, fmt.Errorf("%w: factor %d has %d rows, rectangle is %dx%d", ErrOversized, i, len(f.rows), r, s)
		}
		for _, row := range f.rows {
			if len(row) > s {
				return nil, fmt.Errorf("%w: factor %d has a row of %d entries, rectangle is %dx%d", ErrOversized, i, len(row), r, s)
			}
		}
	}

	return &Element{parent: tp, factors: append([]*Factor(nil), factors...)}, nil
}

// Parent returns the element's tensor-product parent.
func (e *Element) Parent() *TensorProduct { return e.parent }

// Len returns the number of tensor factors.
func (e *Element) Len() int { return len(e.factors) }

// Factor returns the i-th factor, leftmost first.
func (e *Element) Factor(i int) *Factor { return e.factors[i] }

// String renders the element in the classical nested-list form:
// "[[[-1]], [[2], [-1]]]".
func (e *Element) String() string {
	parts := make([]string, len(e.factors))
	for i, f := range e.factors {
		parts[i] = f.String()
	}

	return "[" + strings.Join(parts, ", ") + "]"
}

// Equal reports factorwise equality.
func (e *Element) Equal(o *Element) bool {
	if len(e.factors) != len(o.factors) {
		return false
	}
	for i := range e.factors {
		if !e.factors[i].Equal(o.factors[i]) {
			return false
		}
	}

	return true
}
