// Package health implements the per-sensor-class fusion ledger described
// in spec.md §4.5: last-fuse timestamps, reject flags and fault flags.
package health

import "time"

// Ledger is the fusion core's health and timing bookkeeping. It is
// created once at filter init and mutated only through the methods
// below; it never resets, so a caller can always tell how long it has
// been since a given sensor class last successfully fused.
type Ledger struct {
	TimeLastVelFuse    time.Time
	TimeLastPosFuse    time.Time
	TimeLastDelposFuse time.Time
	TimeLastHgtFuse    time.Time

	RejectVelNED bool
	RejectPosNE  bool
	RejectPosD   bool

	BadVelN, BadVelE, BadVelD bool
	BadPosN, BadPosE, BadPosD bool
}

// RecordVelocity stamps or rejects the velocity class. requested is true
// when any velocity slot was requested this tick; pass is the grouped
// gate decision. A tick where nothing was requested leaves the ledger
// untouched, per the request-flag idempotence invariant in spec.md §8.
func (l *Ledger) RecordVelocity(requested, pass bool, now time.Time) {
	if !requested {
		return
	}
	if pass {
		l.TimeLastVelFuse = now
		l.RejectVelNED = false
	} else {
		l.RejectVelNED = true
	}
}

// RecordPosition stamps or rejects the horizontal-position class,
// splitting between the ordinary position timestamp and the
// delta-position (odometry) timestamp depending on hposAsOdom.
func (l *Ledger) RecordPosition(requested, pass, hposAsOdom bool, now time.Time) {
	if !requested {
		return
	}
	if pass {
		if hposAsOdom {
			l.TimeLastDelposFuse = now
		} else {
			l.TimeLastPosFuse = now
		}
		l.RejectPosNE = false
	} else {
		l.RejectPosNE = true
	}
}

// RecordHeight stamps or rejects the height class.
func (l *Ledger) RecordHeight(requested, pass bool, now time.Time) {
	if !requested {
		return
	}
	if pass {
		l.TimeLastHgtFuse = now
		l.RejectPosD = false
	} else {
		l.RejectPosD = true
	}
}

// setFault sets or clears the bad_* flag for the given observation slot,
// per the per-slot fault bookkeeping in spec.md §4.4 step 3/4.
func (l *Ledger) setFault(slot int, bad bool) {
	switch slot {
	case 0:
		l.BadVelN = bad
	case 1:
		l.BadVelE = bad
	case 2:
		l.BadVelD = bad
	case 3:
		l.BadPosN = bad
	case 4:
		l.BadPosE = bad
	case 5:
		l.BadPosD = bad
	}
}

// SetFault is the exported form of setFault, called by the sequential
// updater when its positive-definiteness guard trips or clears for slot.
func (l *Ledger) SetFault(slot int, bad bool) {
	l.setFault(slot, bad)
}
