package krtab

import "github.com/katalvlaran/riggings/cartan"

// orderIndex places letter v on the total preorder used for column checks.
// Family A: 1 < 2 < … < n+1. Family D: 1 < … < n-1 < {n, n̄} < n̄-1 < … < 1̄,
// where n and n̄ share one index — the pair is mutually incomparable.
func orderIndex(t cartan.Type, v int) int {
	if t.Family == cartan.A || v > 0 {
		return v
	}

	return 2*t.Rank + v // v < 0: letter v̄ maps to 2n-|v|
}

// letterWeight returns the classical weight of a single letter:
// e_v in Z^{n+1} for family A; ±e_k in Z^n for letters ±k of family D.
func letterWeight(t cartan.Type, v int) cartan.Weight {
	w := cartan.ZeroWeight(t)
	if v > 0 {
		w[v-1] = 1
	} else {
		w[-v-1] = -1
	}

	return w
}

// columnStep reports whether letter lo may sit directly above letter hi in
// a column: strictly increasing in orderIndex, with the family D exception
// that n and n̄ (equal index, distinct letters) may neighbor in either order.
func columnStep(t cartan.Type, lo, hi int) bool {
	a, b := orderIndex(t, lo), orderIndex(t, hi)
	if a < b {
		return true
	}
	if a == b && lo != hi && t.Family == cartan.D {
		return true // the incomparable pair {n, n̄}
	}

	return false
}
