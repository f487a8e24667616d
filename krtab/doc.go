// Package krtab implements Kirillov–Reshetikhin (KR) tableaux and tensor
// products of them — the input side of the bijection with rigged
// configurations.
//
// 🚀 What is a tensor product of KR tableaux?
//
//	Fix an affine type X_n^(1) and a list of rectangles B^{r,s}. A KR tableau
//	is an r×s rectangle filled with crystal-alphabet letters (1..n+1 for
//	family A; ±1..±n for family D). An Element is an ordered, fixed-length
//	sequence of such factors sharing one Cartan type — order carries meaning,
//	this is a tensor product, not a multiset.
//
// ✨ What krtab gives you:
//   - TensorProduct — the parent: Cartan type + per-position rectangles,
//     acting as the factory for elements
//   - Two explicit construction paths: FromSymbolLists (raw per-factor
//     symbol lists, columns left to right, each read bottom to top) and
//     FromFactors (pre-built tableaux)
//   - Rendering: single-line "[[2]] (X) [[1], [4]]" and the aligned
//     multi-line Diagram
//   - ClassicalWeight — vector sum of factor weights
//   - ToRiggedConfiguration — delegation to an injected bijection engine
//   - ToKRCrystals — the per-factor filling-map inverse
//
// ⚙️ Usage:
//
//	ct := cartan.MustNew(cartan.A, 3)
//	tp, _ := krtab.NewTensorProduct(ct,
//	    []krtab.Shape{{1, 1}, {2, 1}},
//	    krtab.WithEngine(bijection.Factory))
//	elt, _ := tp.FromSymbolLists([][]int{{2}, {4, 1}})
//	fmt.Println(elt)                       // [[2]] (X) [[1], [4]]
//	rc, err := elt.ToRiggedConfiguration(nil)
//
// Elements and tableaux are immutable after construction: rendering, weight
// computation and bijection invocation are safe from concurrent readers.
// The engine is injected (WithEngine) rather than imported, so the container
// stays testable independent of engine correctness.
package krtab
