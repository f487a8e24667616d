package rigged

import (
	"sort"
	"strconv"
	"strings"
)

// NewPartition returns an empty rigged partition.
func NewPartition() *Partition {
	return &Partition{}
}

// Len returns the number of rows.
func (p *Partition) Len() int { return len(p.Rows) }

// IsEmpty reports whether the partition has no rows.
func (p *Partition) IsEmpty() bool { return len(p.Rows) == 0 }

// Boxes returns the total number of boxes, Σ_j λ_j.
func (p *Partition) Boxes() int {
	total := 0
	for _, r := range p.Rows {
		total += r
	}

	return total
}

// QNumber returns Q_i(λ) = Σ_j min(i, λ_j), the number of boxes in the
// first i columns of the partition.
func (p *Partition) QNumber(i int) int {
	q := 0
	for _, r := range p.Rows {
		if r < i {
			q += r
		} else {
			q += i
		}
	}

	return q
}

// IsSingular reports whether row j is singular, i.e. its rigging equals its
// vacancy number. Vacancy numbers must be current (see UpdateVacancies).
func (p *Partition) IsSingular(j int) bool {
	return p.Riggings[j] == p.Vacancies[j]
}

// Clone returns a deep copy.
func (p *Partition) Clone() *Partition {
	c := &Partition{
		Rows:      make([]int, len(p.Rows)),
		Riggings:  make([]int, len(p.Riggings)),
		Vacancies: make([]int, len(p.Vacancies)),
	}
	copy(c.Rows, p.Rows)
	copy(c.Riggings, p.Riggings)
	copy(c.Vacancies, p.Vacancies)

	return c
}

// Equal reports equality of rows and riggings. Vacancy numbers are derived
// data and do not participate.
func (p *Partition) Equal(o *Partition) bool {
	if len(p.Rows) != len(o.Rows) {
		return false
	}
	for j := range p.Rows {
		if p.Rows[j] != o.Rows[j] || p.Riggings[j] != o.Riggings[j] {
			return false
		}
	}

	return true
}

// Canonicalize sorts rows by length descending and, within a block of equal
// length, by rigging descending. Vacancy numbers travel with their rows.
// Every algorithm in package bijection keeps partitions in this order.
func (p *Partition) Canonicalize() {
	type row struct{ length, rig, vac int }
	rows := make([]row, len(p.Rows))
	for j := range p.Rows {
		rows[j] = row{p.Rows[j], p.Riggings[j], p.Vacancies[j]}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].length != rows[j].length {
			return rows[i].length > rows[j].length
		}

		return rows[i].rig > rows[j].rig
	})
	for j, r := range rows {
		p.Rows[j], p.Riggings[j], p.Vacancies[j] = r.length, r.rig, r.vac
	}
}

// String renders the partition block: one line per row in the form
// "<vacancy>[ ][ ]…<rigging>", or "(/)" for the empty partition.
func (p *Partition) String() string {
	if p.IsEmpty() {
		return "(/)"
	}

	var b strings.Builder
	for j, length := range p.Rows {
		if j > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(strconv.Itoa(p.Vacancies[j]))
		for c := 0; c < length; c++ {
			b.WriteString("[ ]")
		}
		b.WriteString(strconv.Itoa(p.Riggings[j]))
	}

	return b.String()
}

// validate checks the partition shape: strictly positive, weakly decreasing
// row lengths and parallel slice lengths.
func (p *Partition) validate() error {
	if len(p.Riggings) != len(p.Rows) || len(p.Vacancies) != len(p.Rows) {
		return ErrBadPartition
	}
	for j, length := range p.Rows {
		if length <= 0 {
			return ErrBadPartition
		}
		if j > 0 && p.Rows[j-1] < length {
			return ErrBadPartition
		}
	}

	return nil
}
