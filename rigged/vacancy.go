package rigged

import "github.com/katalvlaran/riggings/cartan"

// VacancyNumber computes p_i^(a) for row length i in partition ν^(a)
// (a is 1-indexed) against the rectangle list dims:
//
//	p_i^(a) = Σ_{(r,s)∈dims, r=a} min(i, s) − Σ_b A_{ab} · Q_i(ν^(b))
//
// where A is the classical Cartan matrix of t. Only the Dynkin neighbors of
// a contribute to the second sum, so one call costs O(rows) per neighbor.
func VacancyNumber(t cartan.Type, dims [][2]int, nu []*Partition, a, i int) int {
	p := 0
	for _, d := range dims {
		if d[0] != a {
			continue
		}
		if d[1] < i {
			p += d[1]
		} else {
			p += i
		}
	}
	for b := 1; b <= t.ClassicalRank(); b++ {
		if e := t.CartanEntry(a, b); e != 0 {
			p -= e * nu[b-1].QNumber(i)
		}
	}

	return p
}

// UpdateVacancies recomputes every vacancy number of nu in place against
// dims. Rows of equal length within one partition share a vacancy number;
// the per-row cache is what IsSingular reads.
func UpdateVacancies(t cartan.Type, dims [][2]int, nu []*Partition) {
	for a, part := range nu {
		lastLen, lastVac := -1, 0
		for j, length := range part.Rows {
			if length != lastLen {
				lastVac = VacancyNumber(t, dims, nu, a+1, length)
				lastLen = length
			}
			part.Vacancies[j] = lastVac
		}
	}
}
