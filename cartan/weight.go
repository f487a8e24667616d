package cartan

import (
	"strconv"
	"strings"
)

// Weight is an integer vector in the ambient classical weight lattice.
// For family A the coordinates count occurrences of each letter 1..n+1;
// for family D coordinate k is (#k) - (#k̄). Weights add componentwise.
type Weight []int

// ZeroWeight returns the zero vector of the lattice of t.
func ZeroWeight(t Type) Weight {
	return make(Weight, t.WeightRank())
}

// Add returns w + u as a fresh vector. Vectors of differing lengths do not
// belong to one lattice; Add panics on a length mismatch, matching slice
// indexing behavior for programmer errors.
func (w Weight) Add(u Weight) Weight {
	if len(w) != len(u) {
		panic("cartan: weight rank mismatch")
	}

	sum := make(Weight, len(w))
	for i := range w {
		sum[i] = w[i] + u[i]
	}

	return sum
}

// Equal reports componentwise equality.
func (w Weight) Equal(u Weight) bool {
	if len(w) != len(u) {
		return false
	}
	for i := range w {
		if w[i] != u[i] {
			return false
		}
	}

	return true
}

// String renders the vector as "(2, 2, 1, 2)".
func (w Weight) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, c := range w {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(c))
	}
	b.WriteByte(')')

	return b.String()
}
