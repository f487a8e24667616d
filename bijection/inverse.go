package bijection

import (
	"fmt"

	"github.com/katalvlaran/riggings/cartan"
	"github.com/katalvlaran/riggings/krtab"
	"github.com/katalvlaran/riggings/rigged"
)

// ToTensorProductOfKRTableaux performs the inverse bijection: it rebuilds
// the tensor product of KR tableaux that maps to rc under parent. The walk
// retraces the forward engine backwards — factors left to right, one column
// split off the leading rectangle at a time, letters bottom to top.
//
// Errors:
//   - ErrUnsupportedType — rc's family has no implemented bijection.
//   - ErrTypeMismatch    — rc and parent disagree on the Cartan type.
//   - ErrDimsMismatch    — rc was built against different rectangles.
//   - ErrNotInImage      — the walk exhausts with boxes left over, or the
//     extracted letters form no valid tableau.
func ToTensorProductOfKRTableaux(rc *rigged.Configuration, parent *krtab.TensorProduct) (*krtab.Element, error) {
	if rc.Type != parent.Type() {
		return nil, fmt.Errorf("%w: %s vs %s", ErrTypeMismatch, rc.Type, parent.Type())
	}
	if rc.Type.Family != cartan.A {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, rc.Type)
	}
	dims := parent.Dims()
	if len(rc.Dims) != len(dims) {
		return nil, fmt.Errorf("%w: %d rectangles vs %d", ErrDimsMismatch, len(rc.Dims), len(dims))
	}
	for i := range dims {
		if rc.Dims[i] != dims[i] {
			return nil, fmt.Errorf("%w: position %d is %v, parent wants %v", ErrDimsMismatch, i, rc.Dims[i], dims[i])
		}
	}

	w := workingFrom(rc)
	w.recompute() // trust dims, not the input's cached vacancy numbers

	factors := make([]*krtab.Tableau, parent.Len())
	for f := 0; f < parent.Len(); f++ {
		shape := parent.Shape(f)
		r, s := shape.Rows, shape.Cols
		rows := make([][]int, r)
		for i := range rows {
			rows[i] = make([]int, s)
		}
		for c := 0; c < s; c++ {
			if w.dims[0][1] > 1 {
				// Split one column off the leading rectangle; riggings
				// survive the split, vacancy numbers do not.
				w.dims[0][1]--
				w.prependDim([2]int{r, 1})
				w.recompute()
			}
			for h := r - 1; h >= 0; h-- {
				rows[h][c] = w.extractLetter(h)
			}
			// The column is used up.
			w.dims = w.dims[1:]
		}

		tab, err := krtab.NewTableau(parent.Type(), shape, rows)
		if err != nil {
			return nil, fmt.Errorf("%w: factor %d: %v", ErrNotInImage, f, err)
		}
		factors[f] = tab
	}

	for a, p := range w.nu {
		if !p.IsEmpty() {
			return nil, fmt.Errorf("%w: nu^(%d) has %d boxes left", ErrNotInImage, a+1, p.Boxes())
		}
	}

	return parent.FromFactors(factors...)
}

// extractLetter removes the letter at height h of the leading column: it
// follows the shortest singular string of weakly increasing length up from
// ν^(h+1); the first level with no candidate names the letter (n+1 when the
// walk clears ν^(n)), and every visited string loses one box.
func (w *working) extractLetter(h int) int {
	letter := w.n + 1
	selected := make([]int, 0, w.n-h)
	minLen := 0
	for a := h + 1; a <= w.n; a++ {
		j := w.findSingularMin(a-1, minLen)
		if j < 0 {
			letter = a

			break
		}
		minLen = w.nu[a-1].Rows[j]
		selected = append(selected, j)
	}

	for i, a := 0, h+1; a < letter; a, i = a+1, i+1 {
		w.removeBox(a-1, selected[i])
	}
	w.dims[0][0]--
	w.recompute()
	w.settle()

	return letter
}
