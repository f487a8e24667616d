// Package riggings is an in-memory library for Kirillov–Reshetikhin (KR)
// tableaux, rigged configurations, and the bijection between them.
//
// 🚀 What is riggings?
//
//	A pure-Go implementation of a classical construction from algebraic
//	combinatorics: tensor products of KR tableaux over an affine type
//	X_n^(1) are in bijection with rigged configurations — sequences of
//	partitions whose rows carry integer riggings. The library models both
//	sides and the algorithm connecting them:
//		• cartan    — affine Cartan types, Cartan matrices, weight vectors
//		• krtab     — KR tableau factors and tensor-product elements
//		• rigged    — rigged partitions, vacancy numbers, configurations
//		• crystal   — tensor products of KR crystal elements (filling map)
//		• bijection — the KRT→RC engine family and the inverse map
//
// ✨ Why choose riggings?
//
//   - Faithful formats – renders match the classical textbook forms
//   - Immutable elements – safe concurrent reads, per-call engines
//   - Explicit errors – sentinel errors, nothing retried or swallowed
//   - Pure Go – no cgo, no hidden deps
//
// Quick example:
//
//	ct := cartan.MustNew(cartan.A, 3)
//	tp, _ := krtab.NewTensorProduct(ct,
//	    []krtab.Shape{{Rows: 2, Cols: 1}, {Rows: 2, Cols: 1}, {Rows: 2, Cols: 1}},
//	    krtab.WithEngine(bijection.Factory))
//	elt, _ := tp.FromSymbolLists([][]int{{4, 2}, {3, 1}, {2, 1}})
//	fmt.Println(elt) // [[2], [4]] (X) [[1], [3]] (X) [[1], [2]]
//	rc, _ := elt.ToRiggedConfiguration(nil)
//	fmt.Print(rc)    // the rigged configuration, block by block
//
// Dive into each package's doc.go for the underlying theory and the exact
// walk orders of the bijection.
//
//	go get github.com/katalvlaran/riggings
package riggings
