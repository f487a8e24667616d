package cartan

import "fmt"

// New constructs the affine type f_n^(1) after validating the rank:
// family A requires n ≥ 1, family D requires n ≥ 4 (D_3 is A_3 in disguise).
//
// Errors:
//   - ErrUnknownFamily — f is not one of the declared Family constants.
//   - ErrBadRank       — n is below the family minimum.
func New(f Family, n int) (Type, error) {
	switch f {
	case A:
		if n < 1 {
			return Type{}, fmt.Errorf("%w: A needs n >= 1, got %d", ErrBadRank, n)
		}
	case D:
		if n < 4 {
			return Type{}, fmt.Errorf("%w: D needs n >= 4, got %d", ErrBadRank, n)
		}
	default:
		return Type{}, ErrUnknownFamily
	}

	return Type{Family: f, Rank: n}, nil
}

// MustNew is New that panics on error; intended for tests and package examples.
func MustNew(f Family, n int) Type {
	t, err := New(f, n)
	if err != nil {
		panic(err)
	}

	return t
}

// String renders the affine type in compact form, e.g. "A3(1)".
func (t Type) String() string {
	return fmt.Sprintf("%s%d(1)", t.Family, t.Rank)
}

// ClassicalRank returns n, the number of classical Dynkin nodes.
// A rigged configuration over this type carries exactly n partitions.
func (t Type) ClassicalRank() int { return t.Rank }

// WeightRank returns the dimension of the ambient classical weight lattice:
// n+1 for family A (weights are content vectors of 1..n+1), n for family D.
func (t Type) WeightRank() int {
	if t.Family == A {
		return t.Rank + 1
	}

	return t.Rank
}

// ValidLetter reports whether v belongs to the crystal alphabet of t:
// family A admits 1..n+1; family D admits ±1..±n (0 is never a letter).
func (t Type) ValidLetter(v int) bool {
	switch t.Family {
	case A:
		return v >= 1 && v <= t.Rank+1
	case D:
		return v != 0 && v >= -t.Rank && v <= t.Rank
	default:
		return false
	}
}

// CartanEntry returns the classical Cartan matrix entry A_{ab}, 1-indexed.
// Family A is tridiagonal. Family D forks at node n-2: nodes n-1 and n are
// both neighbors of n-2 and are not neighbors of each other.
func (t Type) CartanEntry(a, b int) int {
	if a < 1 || a > t.Rank || b < 1 || b > t.Rank {
		return 0
	}
	if a == b {
		return 2
	}

	n := t.Rank
	switch t.Family {
	case A:
		if a-b == 1 || b-a == 1 {
			return -1
		}
	case D:
		// Chain 1—2—…—(n-1) plus the fork edge (n-2)—n.
		lo, hi := a, b
		if lo > hi {
			lo, hi = hi, lo
		}
		if hi-lo == 1 && hi <= n-1 {
			return -1
		}
		if lo == n-2 && hi == n {
			return -1
		}
	}

	return 0
}
