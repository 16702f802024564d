// Package kalman implements the sequential scalar Kalman update described
// in spec.md §4.4: for each accepted observation slot, compute the gain
// column, form the rank-1 covariance decrement, guard against a negative
// resulting variance, and either apply or abandon the update. The
// sequential form (rather than a batched 6x6 inverse) is mandated, not a
// rewrite opportunity: batching would couple health decisions across
// axes and change the repair semantics (spec.md §4.4).
package kalman

import (
	"gonum.org/v1/gonum/mat"

	"github.com/skyfusion/navekf/health"
	"github.com/skyfusion/navekf/linalg"
	"github.com/skyfusion/navekf/nav"
)

// FixFunc is the fix_covariance_errors collaborator from spec.md §6:
// symmetrise P and clamp negative/excessive diagonal entries.
type FixFunc func(P *mat.SymDense)

// FuseFunc is the fuse(K, innov) collaborator from spec.md §6: it applies
// the additive state correction x <- x + K*innov. It is a distinct
// primitive, rather than inline arithmetic here, because a real 24-state
// filter must renormalise the attitude quaternion afterwards - a concern
// this package does not own.
type FuseFunc func(K mat.Vector, innov float64)

// Updater performs the sequential per-slot Kalman update. Its gain/khp
// scratch matrices are struct fields reused across calls rather than
// reallocated each tick, matching the teacher's kf.KF/ekf.EKF pattern of
// holding pNext/inn/k as long-lived fields.
type Updater struct {
	fix  FixFunc
	fuse FuseFunc

	maxVariance float64

	gain *mat.VecDense
	khp  *mat.SymDense
}

// NewUpdater creates an Updater. fix must be non-nil; fuse may be nil and
// set per-tick with SetFuse, since it typically closes over that tick's
// state vector. maxVariance is stored on the Updater but ApplySlot does
// not use it: fix receives only P, so any variance cap is whatever fix
// applies itself (Core binds nav.Params.MaxVariance into its fix).
func NewUpdater(fix FixFunc, fuse FuseFunc, maxVariance float64) *Updater {
	return &Updater{
		fix:         fix,
		fuse:        fuse,
		maxVariance: maxVariance,
		gain:        mat.NewVecDense(nav.NumStates, nil),
		khp:         mat.NewSymDense(nav.NumStates, nil),
	}
}

// SetFuse rebinds the fuse collaborator, typically once per tick so it
// can close over that tick's state vector.
func (u *Updater) SetFuse(fuse FuseFunc) { u.fuse = fuse }

// ApplySlot attempts to fuse a single observation slot into cov (and,
// via the fuse collaborator, the state vector it was bound with). It is
// a no-op if the slot was not active or did not pass its gate. On a
// covariance degeneracy it collapses the offending rows/columns, marks
// the ledger's bad_* flag for this slot, and abandons the update for this
// slot only - subsequent slots still attempt fusion, per spec.md §4.4/§7.
func (u *Updater) ApplySlot(slot int, obs *nav.Observation, cov *nav.Covariance, ledger *health.Ledger) {
	s := &obs[slot]
	if !s.Fuse || !s.Pass {
		return
	}

	si := nav.StateIndex(slot)
	n := nav.NumStates
	P := cov.Mat()

	for r := 0; r < n; r++ {
		u.gain.SetVec(r, P.At(r, si)/s.InnovVar)
	}

	for r := 0; r < n; r++ {
		for c := r; c < n; c++ {
			u.khp.SetSym(r, c, u.gain.AtVec(r)*P.At(si, c))
		}
	}

	healthy := true
	for i := 0; i < n; i++ {
		if P.At(i, i) < u.khp.At(i, i) {
			linalg.ZeroRows(P, i, i)
			linalg.ZeroCols(P, i, i)
			healthy = false
		}
	}
	ledger.SetFault(slot, !healthy)

	if !healthy {
		return
	}

	for r := 0; r < n; r++ {
		for c := r; c < n; c++ {
			P.SetSym(r, c, P.At(r, c)-u.khp.At(r, c))
		}
	}

	u.fix(P)

	u.fuse(u.gain, s.Innovation)
}
