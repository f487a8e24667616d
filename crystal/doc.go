// Package crystal holds tensor products of (unreduced) Kirillov–Reshetikhin
// crystal elements — the image of the filling-map conversion from KR
// tableaux.
//
// 🚀 Why a separate package?
//
//	A KR tableau for B^{r,s} is always a full r×s rectangle. The underlying
//	crystal element is the classically-highest-weight picture of the same
//	object and may occupy a smaller shape; the filling map is what stretches
//	it back to the rectangle. Package krtab converts between the two; this
//	package only represents the crystal side.
//
// ✨ What crystal gives you:
//   - Factor — one KR crystal element (rows of alphabet letters)
//   - TensorProduct — the parent: Cartan type + per-position rectangles
//   - Element — an ordered sequence of factors with the classical
//     nested-list rendering: [[[-1]], [[2], [-1]]]
//
// Elements are immutable after construction; rendering never fails.
package crystal
