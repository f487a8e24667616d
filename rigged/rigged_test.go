package rigged_test

import (
	"testing"

	"github.com/katalvlaran/riggings/cartan"
	"github.com/katalvlaran/riggings/rigged"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPartition_String renders the classical block form, one row per line.
func TestPartition_String(t *testing.T) {
	p := &rigged.Partition{Rows: []int{2, 1}, Riggings: []int{0, 1}, Vacancies: []int{0, 1}}
	assert.Equal(t, "0[ ][ ]0\n1[ ]1", p.String())

	assert.Equal(t, "(/)", rigged.NewPartition().String(), "empty partition renders as (/)")

	neg := &rigged.Partition{Rows: []int{1}, Riggings: []int{-1}, Vacancies: []int{-1}}
	assert.Equal(t, "-1[ ]-1", neg.String(), "negative labels render with their sign")
}

// TestPartition_QNumber checks Q_i(λ) = Σ_j min(i, λ_j).
func TestPartition_QNumber(t *testing.T) {
	p := &rigged.Partition{Rows: []int{3, 2, 1}, Riggings: []int{0, 0, 0}, Vacancies: []int{0, 0, 0}}
	assert.Equal(t, 0, p.QNumber(0))
	assert.Equal(t, 3, p.QNumber(1))
	assert.Equal(t, 5, p.QNumber(2))
	assert.Equal(t, 6, p.QNumber(3))
	assert.Equal(t, 6, p.QNumber(5), "Q saturates at the box count")
	assert.Equal(t, 6, p.Boxes())
}

// TestPartition_Canonicalize sorts by length descending, then rigging
// descending, with vacancy numbers traveling alongside their rows.
func TestPartition_Canonicalize(t *testing.T) {
	p := &rigged.Partition{
		Rows:      []int{1, 3, 2, 2},
		Riggings:  []int{5, 0, 1, 4},
		Vacancies: []int{9, 8, 7, 6},
	}
	p.Canonicalize()
	assert.Equal(t, []int{3, 2, 2, 1}, p.Rows)
	assert.Equal(t, []int{0, 4, 1, 5}, p.Riggings)
	assert.Equal(t, []int{8, 6, 7, 9}, p.Vacancies)
}

// TestPartition_EqualIgnoresVacancies verifies that equality reads rows and
// riggings only; vacancy numbers are derived data.
func TestPartition_EqualIgnoresVacancies(t *testing.T) {
	a := &rigged.Partition{Rows: []int{2, 1}, Riggings: []int{0, 1}, Vacancies: []int{0, 1}}
	b := &rigged.Partition{Rows: []int{2, 1}, Riggings: []int{0, 1}, Vacancies: []int{7, 7}}
	c := &rigged.Partition{Rows: []int{2, 1}, Riggings: []int{0, 0}, Vacancies: []int{0, 1}}
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

// TestPartition_Clone verifies the copy shares no slices with the original.
func TestPartition_Clone(t *testing.T) {
	p := &rigged.Partition{Rows: []int{2}, Riggings: []int{1}, Vacancies: []int{1}}
	c := p.Clone()
	c.Rows[0] = 9
	c.Riggings[0] = 9
	assert.Equal(t, 2, p.Rows[0])
	assert.Equal(t, 1, p.Riggings[0])
}

// TestNew_Validation covers the assembly errors.
func TestNew_Validation(t *testing.T) {
	a3 := cartan.MustNew(cartan.A, 3)

	_, err := rigged.New(a3, nil, []*rigged.Partition{rigged.NewPartition()})
	assert.ErrorIs(t, err, rigged.ErrRankMismatch, "A3 needs exactly 3 partitions")

	bad := &rigged.Partition{Rows: []int{1, 2}, Riggings: []int{0, 0}, Vacancies: []int{0, 0}}
	_, err = rigged.New(a3, nil, []*rigged.Partition{bad, rigged.NewPartition(), rigged.NewPartition()})
	assert.ErrorIs(t, err, rigged.ErrBadPartition, "rows must weakly decrease")

	rc, err := rigged.New(a3, [][2]int{{2, 1}}, rigged.EmptyPartitions(a3))
	require.NoError(t, err)
	assert.Equal(t, 0, rc.Boxes())
}

// TestConfiguration_String checks the full display form: leading newline,
// blank line between blocks, trailing newline.
func TestConfiguration_String(t *testing.T) {
	a3 := cartan.MustNew(cartan.A, 3)
	nu := []*rigged.Partition{
		{Rows: []int{1}, Riggings: []int{0}, Vacancies: []int{0}},
		{Rows: []int{1, 1}, Riggings: []int{1, 0}, Vacancies: []int{1, 1}},
		{Rows: []int{1}, Riggings: []int{0}, Vacancies: []int{0}},
	}
	rc, err := rigged.New(a3, [][2]int{{2, 1}, {2, 1}, {2, 1}}, nu)
	require.NoError(t, err)

	want := "\n0[ ]0\n\n1[ ]1\n1[ ]0\n\n0[ ]0\n"
	assert.Equal(t, want, rc.String())
}

// TestVacancyNumber reproduces hand-computed values of
// p_i^(a) = Σ_{r=a} min(i,s) − Σ_b A_{ab} Q_i(ν^(b)) for three B^{2,1}
// factors of A3(1).
func TestVacancyNumber(t *testing.T) {
	a3 := cartan.MustNew(cartan.A, 3)
	dims := [][2]int{{2, 1}, {2, 1}, {2, 1}}
	nu := []*rigged.Partition{
		{Rows: []int{1}, Riggings: []int{0}, Vacancies: []int{0}},
		{Rows: []int{1, 1}, Riggings: []int{1, 0}, Vacancies: []int{0, 0}},
		{Rows: []int{1}, Riggings: []int{0}, Vacancies: []int{0}},
	}

	// ν^(2) collects min(1,1) from each factor and loses 2·Q_1(ν^(2)).
	assert.Equal(t, 1, rigged.VacancyNumber(a3, dims, nu, 2, 1))
	// ν^(1) and ν^(3) see no factor rows but gain Q_1(ν^(2)) = 2.
	assert.Equal(t, 0, rigged.VacancyNumber(a3, dims, nu, 1, 1))
	assert.Equal(t, 0, rigged.VacancyNumber(a3, dims, nu, 3, 1))
}

// TestUpdateVacancies refreshes the per-row cache, sharing one computation
// among rows of equal length.
func TestUpdateVacancies(t *testing.T) {
	a3 := cartan.MustNew(cartan.A, 3)
	dims := [][2]int{{2, 1}, {2, 1}, {2, 1}}
	nu := []*rigged.Partition{
		{Rows: []int{1}, Riggings: []int{0}, Vacancies: []int{-9}},
		{Rows: []int{1, 1}, Riggings: []int{1, 0}, Vacancies: []int{-9, -9}},
		{Rows: []int{1}, Riggings: []int{0}, Vacancies: []int{-9}},
	}
	rigged.UpdateVacancies(a3, dims, nu)
	assert.Equal(t, []int{0}, nu[0].Vacancies)
	assert.Equal(t, []int{1, 1}, nu[1].Vacancies)
	assert.Equal(t, []int{0}, nu[2].Vacancies)

	assert.True(t, nu[0].IsSingular(0))
	assert.True(t, nu[1].IsSingular(0))
	assert.False(t, nu[1].IsSingular(1))
}

// TestConfiguration_CloneEqual covers deep copy and the equality contract.
func TestConfiguration_CloneEqual(t *testing.T) {
	a3 := cartan.MustNew(cartan.A, 3)
	nu := []*rigged.Partition{
		{Rows: []int{1}, Riggings: []int{0}, Vacancies: []int{0}},
		rigged.NewPartition(),
		rigged.NewPartition(),
	}
	rc, err := rigged.New(a3, [][2]int{{1, 1}}, nu)
	require.NoError(t, err)

	cp := rc.Clone()
	assert.True(t, rc.Equal(cp))

	cp.Nu[0].Riggings[0] = 5
	assert.False(t, rc.Equal(cp), "clone must not alias the original's rows")
	assert.Equal(t, 0, rc.Nu[0].Riggings[0])
}
