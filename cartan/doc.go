// Package cartan provides the affine Cartan type metadata consumed by the
// Kirillov–Reshetikhin tableaux and rigged-configuration packages.
//
// 🚀 What is a Cartan type?
//
//	Every object in this library lives over an affine Lie algebra X_n^(1):
//	  • X — the classical family (A or D here)
//	  • n — the classical rank
//	The Cartan type fixes the crystal alphabet (which letters a tableau may
//	contain), the dimension of the classical weight lattice, and the classical
//	Cartan matrix that drives vacancy numbers of rigged configurations.
//
// ✨ What cartan gives you:
//   - Type construction with rank validation: New(A, 3) → A3(1)
//   - Crystal alphabet membership: ValidLetter
//   - Classical Cartan matrix entries: CartanEntry(a, b)
//   - Integer weight vectors in the ambient lattice: Weight, ZeroWeight
//
// ⚙️ Usage:
//
//	ct, err := cartan.New(cartan.A, 3) // affine type A_3^(1)
//	if err != nil { ... }
//	ct.ClassicalRank() // 3
//	ct.WeightRank()    // 4 — type A weights live in Z^{n+1}
//	ct.CartanEntry(1, 2) // -1
//
// All values are plain data; a Type is comparable and safe to copy.
package cartan
