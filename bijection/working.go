package bijection

import (
	"github.com/katalvlaran/riggings/cartan"
	"github.com/katalvlaran/riggings/rigged"
)

// working is the engine's private rigged-partition state: the partitions
// under construction, the rectangles placed so far (dims[0] is the
// in-progress column), and per-row "pending" marks for strings whose
// rigging is not settled yet. Pending strings are never selected as
// singular within the step that changed them.
type working struct {
	typ     cartan.Type
	n       int
	nu      []*rigged.Partition
	pending [][]bool
	dims    [][2]int
}

// newWorking seeds an empty state for the forward run.
func newWorking(t cartan.Type) *working {
	n := t.ClassicalRank()
	w := &working{
		typ:     t,
		n:       n,
		nu:      rigged.EmptyPartitions(t),
		pending: make([][]bool, n),
	}

	return w
}

// workingFrom seeds the state from an existing configuration for the
// inverse run. Partitions and dims are deep-copied; the input stays intact.
func workingFrom(rc *rigged.Configuration) *working {
	n := rc.Type.ClassicalRank()
	w := &working{
		typ:     rc.Type,
		n:       n,
		nu:      make([]*rigged.Partition, n),
		pending: make([][]bool, n),
		dims:    make([][2]int, len(rc.Dims)),
	}
	copy(w.dims, rc.Dims)
	for a, p := range rc.Nu {
		w.nu[a] = p.Clone()
		w.pending[a] = make([]bool, p.Len())
	}

	return w
}

// insertCell adds one box to partition index a (0-indexed): to the longest
// non-pending singular string of length ≤ bound, or as a fresh length-1
// string when none qualifies. It returns the selected string's length
// before the insertion — the bound for the next level of the walk.
func (w *working) insertCell(a, bound int) int {
	p := w.nu[a]
	for j := 0; j < p.Len(); j++ { // canonical order: first hit is the longest
		if p.Rows[j] <= bound && !w.pending[a][j] && p.IsSingular(j) {
			p.Rows[j]++
			w.pending[a][j] = true

			return p.Rows[j] - 1
		}
	}

	p.Rows = append(p.Rows, 1)
	p.Riggings = append(p.Riggings, 0) // settled after the vacancy update
	p.Vacancies = append(p.Vacancies, 0)
	w.pending[a] = append(w.pending[a], true)

	return 0
}

// findSingularMin returns the index of the shortest non-pending singular
// string of partition index a with length ≥ minLen, or -1 when none exists.
func (w *working) findSingularMin(a, minLen int) int {
	p := w.nu[a]
	for j := p.Len() - 1; j >= 0; j-- { // canonical order: scan shortest first
		if p.Rows[j] >= minLen && !w.pending[a][j] && p.IsSingular(j) {
			return j
		}
	}

	return -1
}

// removeBox takes one box off string j of partition index a. A string
// shrunk to zero disappears; otherwise it is marked pending so settle will
// make it singular.
func (w *working) removeBox(a, j int) {
	p := w.nu[a]
	p.Rows[j]--
	if p.Rows[j] == 0 {
		p.Rows = append(p.Rows[:j], p.Rows[j+1:]...)
		p.Riggings = append(p.Riggings[:j], p.Riggings[j+1:]...)
		p.Vacancies = append(p.Vacancies[:j], p.Vacancies[j+1:]...)
		w.pending[a] = append(w.pending[a][:j], w.pending[a][j+1:]...)

		return
	}
	w.pending[a][j] = true
}

// recompute refreshes every vacancy number against the current dims.
func (w *working) recompute() {
	rigged.UpdateVacancies(w.typ, w.dims, w.nu)
}

// settle makes every pending string singular (rigging := vacancy), clears
// the marks, and restores canonical row order. Call after recompute.
func (w *working) settle() {
	for a, marks := range w.pending {
		changed := false
		for j, pend := range marks {
			if pend {
				w.nu[a].Riggings[j] = w.nu[a].Vacancies[j]
				marks[j] = false
				changed = true
			}
		}
		if changed {
			w.nu[a].Canonicalize()
		}
	}
}

// prependDim pushes d in front of the dims list.
func (w *working) prependDim(d [2]int) {
	w.dims = append([][2]int{d}, w.dims...)
}
