// Package navekf is the measurement-fusion core of a navigation state
// estimator: once per filter tick it corrects a predicted 24-state
// navigation estimate using velocity, position and height observations
// from heterogeneous sensors, gating each against the filter's own
// predicted uncertainty before folding it in via a sequential scalar
// Kalman update. See SPEC_FULL.md for the full component breakdown.
package navekf

import (
	"fmt"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/skyfusion/navekf/assemble"
	"github.com/skyfusion/navekf/diag"
	"github.com/skyfusion/navekf/estimate"
	"github.com/skyfusion/navekf/gate"
	"github.com/skyfusion/navekf/health"
	"github.com/skyfusion/navekf/kalman"
	"github.com/skyfusion/navekf/linalg"
	"github.com/skyfusion/navekf/nav"
)

// Core owns the fusion routine's long-lived scratch state. Its fields
// mirror the teacher's kf.KF/ekf.EKF struct shape: a validating New
// constructor and a reused Updater rather than per-tick allocation. Its
// accessors are Params, which returns a copy, and Ledger, which returns
// the shared ledger; x and P stay with the caller and come back from Fuse
// as defensive copies in Result.Estimate.
type Core struct {
	params nav.Params
	ledger *health.Ledger

	updater *kalman.Updater

	// quatRenorm is called after every individual slot's state correction
	// is applied, letting a real 24-state filter renormalise its attitude
	// quaternion without this package needing to know quaternion
	// conventions (spec.md §6's fuse(K, innov) is otherwise unaware of
	// indices 0-3).
	quatRenorm func(x *nav.State)
}

// New creates a Core. params is copied; ledger must be non-nil and is
// shared with the caller so it can be inspected between ticks. If
// quatRenorm is nil, no renormalisation hook runs.
func New(params nav.Params, ledger *health.Ledger, quatRenorm func(x *nav.State)) (*Core, error) {
	if ledger == nil {
		return nil, fmt.Errorf("navekf: ledger must not be nil")
	}
	if quatRenorm == nil {
		quatRenorm = func(*nav.State) {}
	}

	c := &Core{
		params:     params,
		ledger:     ledger,
		quatRenorm: quatRenorm,
	}

	fix := func(P *mat.SymDense) {
		linalg.FixCovarianceErrors(P, params.MaxVariance)
	}

	c.updater = kalman.NewUpdater(fix, nil, params.MaxVariance)
	return c, nil
}

// Result is the outcome of a single Fuse call: the mutated state and
// covariance (as an Estimate, for callers written against that
// convention) plus the populated observation record and diagnostic
// report.
type Result struct {
	Estimate    Estimate
	Observation nav.Observation
	Diagnostic  diag.Report
}

// Fuse runs one fusion tick. x and cov are mutated in place and also
// returned (wrapped) via Result.Estimate. samples, flags and now are
// read-only except for flags, whose one-shot request fields are cleared
// before Fuse returns (spec.md §3 "Lifetime").
//
// If all of flags.FuseHorVel, FuseHorVelAux, FuseVertVel, FusePos and
// FuseHeight are false on entry, Fuse is a no-op on x, cov and the
// ledger: it still returns a Result, but nothing is mutated (spec.md §8
// invariant 4).
func (c *Core) Fuse(x *nav.State, cov *nav.Covariance, samples *nav.Samples, flags *nav.ControlFlags, now time.Time) Result {
	var obs nav.Observation
	for i := range obs {
		obs[i].Innovation = samples.VelPosInnov[i]
	}

	velRequested := flags.FuseHorVel || flags.FuseHorVelAux || flags.FuseVertVel
	posRequested := flags.FusePos
	hgtRequested := flags.FuseHeight

	assemble.Velocity(&obs, samples, flags, &c.params)
	assemble.HorizontalPosition(&obs, samples, flags)
	heightResult := assemble.Height(&obs, x, samples, flags, &c.params)

	gate.Evaluate(&obs, cov, flags.TiltAlign)

	// Bind the fuse collaborator to this tick's x; the updater's own
	// scratch (gain, khp) is reused across calls, only the closure over x
	// changes per Fuse invocation.
	c.updater.SetFuse(func(K mat.Vector, innov float64) {
		for i := 0; i < nav.NumStates; i++ {
			x.Set(i, x.At(i)+K.AtVec(i)*innov)
		}
		c.quatRenorm(x)
	})

	for slot := 0; slot < nav.NumSlots; slot++ {
		c.updater.ApplySlot(slot, &obs, cov, c.ledger)
	}

	velPass := obs[nav.SlotVelN].Pass
	c.ledger.RecordVelocity(velRequested, velPass, now)

	posPass := obs[nav.SlotPosN].Pass
	c.ledger.RecordPosition(posRequested, posPass, flags.FuseHposAsOdom, now)

	hgtPass := obs[nav.SlotPosD].Pass
	c.ledger.RecordHeight(hgtRequested && obs[nav.SlotPosD].Fuse, hgtPass, now)

	flags.Reset()

	est, _ := estimate.NewBaseWithCov(x.Vec(), cov.Mat())

	report := diag.Report{
		Timestamp:              now,
		EstimatedPosDown:       x.PosDown(),
		BaroMeasurement:        heightResult.BaroMeasurement,
		RangefinderMeasurement: heightResult.RangefinderMeasurement,
		BaroHgtOffset:          samples.Offsets.BaroHgtOffset,
		HgtSensorOffset:        samples.Offsets.HgtSensorOffset,
		ActiveHeightSource:     heightResult.Source,
	}

	return Result{
		Estimate:    est,
		Observation: obs,
		Diagnostic:  report,
	}
}

// Ledger returns the Core's health ledger.
func (c *Core) Ledger() *health.Ledger { return c.ledger }

// Params returns a copy of the Core's tuning parameters.
func (c *Core) Params() nav.Params { return c.params }
