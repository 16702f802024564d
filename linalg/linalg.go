// Package linalg provides the fixed-size dense matrix primitives the
// fusion core needs on top of gonum/mat: row/column collapse and the
// post-update symmetry/positive-diagonal repair. Every function here
// operates in place on the caller's matrix, mirroring the teacher's
// matrix.RowSums/ColSums free-function style (no receiver, panics on nil).
package linalg

import "gonum.org/v1/gonum/mat"

// ZeroRows zeros rows i..j (inclusive) of P. It panics if P is nil.
func ZeroRows(P *mat.SymDense, i, j int) {
	n := P.SymmetricDim()
	for row := i; row <= j; row++ {
		for col := 0; col < n; col++ {
			P.SetSym(row, col, 0)
		}
	}
}

// ZeroCols zeros columns i..j (inclusive) of P. It panics if P is nil.
// For a symmetric matrix this has the same effect as ZeroRows on the same
// range, but it is kept as a distinct call to mirror the source's
// zeroRows/zeroCols pair and the row/column collapse it performs together
// when repairing a single offending index.
func ZeroCols(P *mat.SymDense, i, j int) {
	n := P.SymmetricDim()
	for col := i; col <= j; col++ {
		for row := 0; row < n; row++ {
			P.SetSym(row, col, 0)
		}
	}
}

// FixCovarianceErrors enforces P <- (P + P^T)/2 (a no-op for mat.SymDense,
// which is already symmetric by construction, but kept explicit since the
// source performs it unconditionally after every healthy update), clamps
// negative diagonal entries to zero, and caps diagonal entries above max
// (max <= 0 disables the cap). It is the collaborator spec.md §6 calls
// fix_covariance_errors.
func FixCovarianceErrors(P *mat.SymDense, max float64) {
	n := P.SymmetricDim()
	for i := 0; i < n; i++ {
		d := P.At(i, i)
		if d < 0 {
			d = 0
		}
		if max > 0 && d > max {
			d = max
		}
		P.SetSym(i, i, d)
	}
}
