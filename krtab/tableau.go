package krtab

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/riggings/cartan"
	"github.com/katalvlaran/riggings/crystal"
)

// Tableau is one KR-tableau factor: a full Rows×Cols rectangle of alphabet
// letters over a fixed Cartan type. Immutable after construction.
type Tableau struct {
	typ   cartan.Type
	shape Shape
	rows  [][]int // row-major, rows[0] is the top row
}

// NewTableau builds a factor from row-major entries and validates alphabet
// membership, column order (strict, top to bottom) and — for family A —
// weak row order.
//
// Errors: ErrBadShape, ErrSymbolCount, ErrBadLetter, ErrColumnOrder, ErrRowOrder.
func NewTableau(t cartan.Type, shape Shape, rows [][]int) (*Tableau, error) {
	if shape.Rows <= 0 || shape.Cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadShape, shape.Rows, shape.Cols)
	}
	if len(rows) != shape.Rows {
		return nil, fmt.Errorf("%w: got %d rows, want %d", ErrSymbolCount, len(rows), shape.Rows)
	}

	cp := make([][]int, shape.Rows)
	for i, row := range rows {
		if len(row) != shape.Cols {
			return nil, fmt.Errorf("%w: row %d has %d entries, want %d", ErrSymbolCount, i, len(row), shape.Cols)
		}
		cp[i] = append([]int(nil), row...)
	}

	tab := &Tableau{typ: t, shape: shape, rows: cp}
	if err := tab.validate(); err != nil {
		return nil, err
	}

	return tab, nil
}

// TableauFromSymbols builds a factor from one raw symbol list in the
// classical pathlist reading: columns left to right, each column read
// bottom to top. For shape {2,1}, symbols [4, 1] is the column with 4 at
// the bottom and 1 on top, i.e. the tableau [[1], [4]].
func TableauFromSymbols(t cartan.Type, shape Shape, symbols []int) (*Tableau, error) {
	if shape.Rows <= 0 || shape.Cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadShape, shape.Rows, shape.Cols)
	}
	if len(symbols) != shape.Rows*shape.Cols {
		return nil, fmt.Errorf("%w: got %d symbols for %dx%d", ErrSymbolCount, len(symbols), shape.Rows, shape.Cols)
	}

	rows := make([][]int, shape.Rows)
	for i := range rows {
		rows[i] = make([]int, shape.Cols)
	}
	for c := 0; c < shape.Cols; c++ {
		for i := 0; i < shape.Rows; i++ {
			// Column c occupies symbols[c*r : (c+1)*r], bottom row first.
			rows[shape.Rows-1-i][c] = symbols[c*shape.Rows+i]
		}
	}

	tab := &Tableau{typ: t, shape: shape, rows: rows}
	if err := tab.validate(); err != nil {
		return nil, err
	}

	return tab, nil
}

// validate checks alphabet membership, strict column order, and weak row
// order (family A only — type D KR tableaux are not row-weak in general).
func (tb *Tableau) validate() error {
	for i, row := range tb.rows {
		for c, v := range row {
			if !tb.typ.ValidLetter(v) {
				return fmt.Errorf("%w: %d at row %d col %d in type %s", ErrBadLetter, v, i, c, tb.typ)
			}
		}
	}
	for c := 0; c < tb.shape.Cols; c++ {
		for i := 1; i < tb.shape.Rows; i++ {
			if !columnStep(tb.typ, tb.rows[i-1][c], tb.rows[i][c]) {
				return fmt.Errorf("%w: col %d rows %d-%d", ErrColumnOrder, c, i-1, i)
			}
		}
	}
	if tb.typ.Family == cartan.A {
		for i, row := range tb.rows {
			for c := 1; c < len(row); c++ {
				if row[c] < row[c-1] {
					return fmt.Errorf("%w: row %d cols %d-%d", ErrRowOrder, i, c-1, c)
				}
			}
		}
	}

	return nil
}

// Type returns the ambient Cartan type.
func (tb *Tableau) Type() cartan.Type { return tb.typ }

// Shape returns the factor's rectangle.
func (tb *Tableau) Shape() Shape { return tb.shape }

// At returns the entry at (row, col), both 0-indexed from the top-left.
func (tb *Tableau) At(row, col int) int { return tb.rows[row][col] }

// Column returns column c top to bottom.
func (tb *Tableau) Column(c int) []int {
	col := make([]int, tb.shape.Rows)
	for i := range col {
		col[i] = tb.rows[i][c]
	}

	return col
}

// Rows returns a copy of the row-major entries.
func (tb *Tableau) Rows() [][]int {
	cp := make([][]int, len(tb.rows))
	for i, row := range tb.rows {
		cp[i] = append([]int(nil), row...)
	}

	return cp
}

// String renders the factor as its row list, e.g. "[[1], [4]]".
func (tb *Tableau) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, row := range tb.rows {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('[')
		for c, v := range row {
			if c > 0 {
				b.WriteString(", ")
			}
			b.WriteString(strconv.Itoa(v))
		}
		b.WriteByte(']')
	}
	b.WriteByte(']')

	return b.String()
}

// Diagram renders the factor as equal-width lines, one per row, each entry
// right-aligned in a fixed cell. All lines of one tableau share a width —
// the rectangularity the tensor Diagram layout relies on.
func (tb *Tableau) Diagram() []string {
	cell := 3 // classical "  1" / " -1" cells; widened for long entries
	for _, row := range tb.rows {
		for _, v := range row {
			if w := len(strconv.Itoa(v)) + 1; w > cell {
				cell = w
			}
		}
	}

	lines := make([]string, len(tb.rows))
	for i, row := range tb.rows {
		var b strings.Builder
		for _, v := range row {
			fmt.Fprintf(&b, "%*d", cell, v)
		}
		lines[i] = b.String()
	}

	return lines
}

// ClassicalWeight returns the sum of the weights of all entries.
func (tb *Tableau) ClassicalWeight() cartan.Weight {
	w := cartan.ZeroWeight(tb.typ)
	for _, row := range tb.rows {
		for _, v := range row {
			w = w.Add(letterWeight(tb.typ, v))
		}
	}

	return w
}

// Equal reports equality of type, shape and entries.
func (tb *Tableau) Equal(o *Tableau) bool {
	if tb.typ != o.typ || tb.shape != o.shape {
		return false
	}
	for i := range tb.rows {
		for c := range tb.rows[i] {
			if tb.rows[i][c] != o.rows[i][c] {
				return false
			}
		}
	}

	return true
}

// ToKRCrystal applies the inverse filling map, recovering the underlying
// KR crystal element. The filling is the identity for every family A factor
// and for single-column and single-row factors of any supported type; other
// family D rectangles are outside this excerpt of the theory.
//
// Errors: ErrUnsupportedFilling.
func (tb *Tableau) ToKRCrystal() (*crystal.Factor, error) {
	identity := tb.typ.Family == cartan.A || tb.shape.Rows == 1 || tb.shape.Cols == 1
	if !identity {
		return nil, fmt.Errorf("%w: %s B^{%d,%d}", ErrUnsupportedFilling, tb.typ, tb.shape.Rows, tb.shape.Cols)
	}

	return crystal.NewFactor(tb.typ, tb.rows)
}
