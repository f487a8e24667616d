// Package bijection implements the bijection between tensor products of
// Kirillov–Reshetikhin tableaux and rigged configurations, in both
// directions, with per-Cartan-type dispatch.
//
// 🚀 How the forward direction works
//
//	The engine walks the tensor product from the rightmost factor to the
//	leftmost, each factor column by column from right to left, each column
//	letter by letter from top to bottom. Placing the letter v at height h
//	adds one box to a singular string of ν^(a) for a = v−1 down to h+1:
//	always the longest singular string no longer than the previous
//	selection, or a fresh length-1 string when none qualifies. After every
//	letter the vacancy numbers are recomputed against the rectangles placed
//	so far, the changed strings become singular, and rows return to
//	canonical order. Multi-column factors are processed one column at a
//	time and folded back together afterwards.
//
//	The inverse direction retraces the same walk backwards: factors left to
//	right, columns left to right (splitting one column off the rectangle at
//	a time), letters bottom to top. Extracting at height h follows the
//	shortest singular string of weakly increasing length up from ν^(h+1);
//	the first level with no candidate names the letter, and the visited
//	strings each lose a box.
//
// ✨ What bijection gives you:
//   - New / Factory — engine construction with per-type dispatch
//     (implemented: A_n^(1), all rectangle lists; other families report
//     ErrUnsupportedType)
//   - ToRiggedConfiguration — one-call forward run
//   - ToTensorProductOfKRTableaux — the inverse map
//   - Step tracing via an io.Writer — one state block per letter placed
//
// ⚙️ Usage:
//
//	tp, _ := krtab.NewTensorProduct(ct, shapes, krtab.WithEngine(bijection.Factory))
//	elt, _ := tp.FromSymbolLists(pathlist)
//	rc, err := elt.ToRiggedConfiguration(nil)        // forward
//	back, err := bijection.ToTensorProductOfKRTableaux(rc, tp) // inverse
//	back.Equal(elt)                                  // true
//
// Engines are per-call objects: they treat the seeded element as read-only
// and keep all rigged-partition state in their own working copy, so
// concurrent runs over one element are safe.
//
// Complexity: O(letters · n · boxes) time for a tensor product over rank n;
// memory is the size of the resulting configuration.
package bijection
