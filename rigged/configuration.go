package rigged

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/riggings/cartan"
)

// EmptyPartitions returns one empty rigged partition per classical Dynkin
// node of t — the seed state of the forward bijection.
func EmptyPartitions(t cartan.Type) []*Partition {
	nu := make([]*Partition, t.ClassicalRank())
	for a := range nu {
		nu[a] = NewPartition()
	}

	return nu
}

// New assembles a Configuration from one partition per node, validating the
// partition count against the classical rank and each partition's shape.
// The partitions are used as given, not cloned.
//
// Errors:
//   - ErrRankMismatch — len(nu) differs from t.ClassicalRank().
//   - ErrBadPartition — some partition has malformed rows.
func New(t cartan.Type, dims [][2]int, nu []*Partition) (*Configuration, error) {
	if len(nu) != t.ClassicalRank() {
		return nil, fmt.Errorf("%w: got %d partitions for %s", ErrRankMismatch, len(nu), t)
	}
	for a, p := range nu {
		if err := p.validate(); err != nil {
			return nil, fmt.Errorf("nu^(%d): %w", a+1, err)
		}
	}

	return &Configuration{Type: t, Dims: dims, Nu: nu}, nil
}

// Clone returns a deep copy of the configuration.
func (rc *Configuration) Clone() *Configuration {
	dims := make([][2]int, len(rc.Dims))
	copy(dims, rc.Dims)
	nu := make([]*Partition, len(rc.Nu))
	for a, p := range rc.Nu {
		nu[a] = p.Clone()
	}

	return &Configuration{Type: rc.Type, Dims: dims, Nu: nu}
}

// Equal reports equality of type, dims and every partition (rows and
// riggings; vacancy numbers are derived and ignored).
func (rc *Configuration) Equal(o *Configuration) bool {
	if rc.Type != o.Type || len(rc.Dims) != len(o.Dims) || len(rc.Nu) != len(o.Nu) {
		return false
	}
	for i := range rc.Dims {
		if rc.Dims[i] != o.Dims[i] {
			return false
		}
	}
	for a := range rc.Nu {
		if !rc.Nu[a].Equal(o.Nu[a]) {
			return false
		}
	}

	return true
}

// Boxes returns the total box count over all partitions.
func (rc *Configuration) Boxes() int {
	total := 0
	for _, p := range rc.Nu {
		total += p.Boxes()
	}

	return total
}

// String renders the configuration: a leading newline, then each partition
// block separated by blank lines, then a trailing newline. An empty
// partition renders as "(/)". This is the classical display form:
//
//	0[ ][ ]0
//	1[ ]1
//
//	1[ ][ ]0
//	...
func (rc *Configuration) String() string {
	blocks := make([]string, len(rc.Nu))
	for a, p := range rc.Nu {
		blocks[a] = p.String()
	}

	return "\n" + strings.Join(blocks, "\n\n") + "\n"
}
