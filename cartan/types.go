// Package cartan defines the Type value, family constants, and sentinel
// errors shared by the rest of github.com/katalvlaran/riggings.
package cartan

import "errors"

// Sentinel errors for Cartan type construction.
var (
	// ErrUnknownFamily indicates a family outside the supported set {A, D}.
	ErrUnknownFamily = errors.New("cartan: unknown classical family")
	// ErrBadRank indicates a classical rank below the family minimum.
	ErrBadRank = errors.New("cartan: classical rank too small for family")
)

// Family selects the classical family of an affine type X_n^(1).
type Family int

const (
	// A is the family A_n^(1): alphabet 1..n+1, weights in Z^{n+1}.
	A Family = iota
	// D is the family D_n^(1): alphabet ±1..±n, weights in Z^n.
	D
)

// String returns the family letter: "A" or "D".
func (f Family) String() string {
	switch f {
	case A:
		return "A"
	case D:
		return "D"
	default:
		return "?"
	}
}

// Type identifies one affine Cartan type X_n^(1).
// The zero value is A_0^(1), which is invalid; construct via New.
// A Type is comparable and safe to copy.
type Type struct {
	Family Family
	Rank   int // classical rank n
}
