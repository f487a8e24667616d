// Package rigged implements rigged partitions and rigged configurations —
// the combinatorial objects on the far side of the Kirillov–Reshetikhin
// bijection.
//
// 🚀 What is a rigged configuration?
//
//	Fix an affine type X_n^(1) and a list of rectangles B^{r,s}. A rigged
//	configuration is a sequence ν = (ν^(1), …, ν^(n)) of partitions, one per
//	classical Dynkin node, where every row of ν^(a) carries an integer label
//	(its "rigging"). Each row length i in ν^(a) also has a derived vacancy
//	number
//
//	    p_i^(a) = Σ_{(r,s): r=a} min(i, s) − Σ_b A_{ab} · Q_i(ν^(b)),
//
//	with Q_i(λ) = Σ_j min(i, λ_j) and A the classical Cartan matrix.
//	A row whose rigging equals its vacancy number is called singular;
//	singular rows are the pivots of the bijection algorithms in package
//	bijection.
//
// ✨ What rigged gives you:
//   - Partition — rows with riggings and vacancy numbers, canonical ordering
//   - Configuration — one partition per node, validated against the rank
//   - UpdateVacancies — recompute all vacancy numbers for a given rectangle list
//   - Text rendering in the classical "0[ ][ ]0" block form, "(/)" when empty
//
// ⚙️ Usage:
//
//	nu := rigged.EmptyPartitions(ct)          // one empty ν^(a) per node
//	rigged.UpdateVacancies(ct, dims, nu)      // p_i^(a) for the rectangles dims
//	rc, err := rigged.New(ct, dims, nu)       // assemble and validate
//	fmt.Print(rc)                             // block rendering
//
// Configurations are plain data: Clone before mutating a shared value.
package rigged
