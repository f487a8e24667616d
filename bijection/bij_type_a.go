package bijection

import (
	"fmt"
	"io"
	"math"

	"github.com/katalvlaran/riggings/krtab"
	"github.com/katalvlaran/riggings/rigged"
)

// typeAEngine runs the forward bijection for A_n^(1).
//
// Walk order (the inverse map in inverse.go retraces it exactly backwards):
//  1. factors right to left;
//  2. columns of a factor right to left, each prepended to dims as [0,1]
//     and folded into the factor's dims entry once processed;
//  3. letters of a column top to bottom; the letter's box joins dims before
//     its insertion is settled.
//
// Inserting letter v at height h (h letters already placed above it) adds
// one box to a singular string of ν^(a) for a = v-1 down to h+1, each
// selection bounded by the previous string's pre-insertion length. Column
// strictness gives v ≥ h+1; v = h+1 adds nothing. After each letter the
// vacancy numbers are recomputed and the changed strings become singular.
type typeAEngine struct {
	elt *krtab.Element
}

// Run executes the bijection to completion and returns the terminal rigged
// configuration. steps, when non-nil, receives one block per letter placed.
func (en *typeAEngine) Run(steps io.Writer) (*rigged.Configuration, error) {
	parent := en.elt.Parent()
	w := newWorking(parent.Type())

	for f := en.elt.Len() - 1; f >= 0; f-- {
		tab := en.elt.Factor(f)
		r, s := tab.Shape().Rows, tab.Shape().Cols
		for c := s - 1; c >= 0; c-- {
			w.prependDim([2]int{0, 1})
			for h := 0; h < r; h++ {
				v := tab.At(h, c)
				if steps != nil {
					fmt.Fprintf(steps, "====================\nfactor %d, column %d, letter %d\n", f+1, c+1, v)
				}
				w.dims[0][0]++
				w.insertLetter(v, h)
				w.recompute()
				w.settle()
				if steps != nil {
					fmt.Fprintf(steps, "--------------------%s--------------------\n", currentState(w))
				}
			}
			if c < s-1 {
				// Fold the processed column back into the factor's rectangle.
				w.dims[1][1]++
				w.dims = w.dims[1:]
				w.recompute()
			}
		}
	}

	return rigged.New(parent.Type(), parent.Dims(), w.nu)
}

// insertLetter walks ν^(v-1) down to ν^(h+1), adding one box per level.
// Selections read the vacancy numbers settled before this letter's box
// joined dims; the caller recomputes and settles afterwards.
func (w *working) insertLetter(v, h int) {
	bound := math.MaxInt
	for a := v - 1; a >= h+1; a-- {
		bound = w.insertCell(a-1, bound)
	}
}

// currentState renders the working partitions for step tracing.
func currentState(w *working) string {
	rc := &rigged.Configuration{Type: w.typ, Dims: w.dims, Nu: w.nu}

	return rc.String()
}
