// Package rigged defines the Partition and Configuration types plus
// sentinel errors for their assembly.
package rigged

import (
	"errors"

	"github.com/katalvlaran/riggings/cartan"
)

// Sentinel errors for configuration assembly.
var (
	// ErrRankMismatch indicates the partition count differs from the classical rank.
	ErrRankMismatch = errors.New("rigged: partition count must equal classical rank")
	// ErrBadPartition indicates rows that do not form a partition (negative or increasing lengths).
	ErrBadPartition = errors.New("rigged: rows must be positive and weakly decreasing")
)

// Partition is one rigged partition ν^(a): parallel slices holding row
// lengths (weakly decreasing), the rigging of each row, and its vacancy
// number. Riggings are data; vacancy numbers are derived via UpdateVacancies
// and cached here so singularity checks are O(1).
type Partition struct {
	Rows      []int
	Riggings  []int
	Vacancies []int
}

// Configuration is a full rigged configuration: one Partition per classical
// Dynkin node of Type, built against the rectangle list Dims (each entry is
// one B^{r,s} factor as [2]int{r, s}, leftmost factor first).
type Configuration struct {
	Type cartan.Type
	Dims [][2]int
	Nu   []*Partition
}
