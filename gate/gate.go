// Package gate computes per-slot innovation test ratios and the grouped
// pass/fail decisions described in spec.md §4.3: horizontal velocity as a
// 3-axis group, horizontal position as a 2-axis group, height as a scalar.
package gate

import "github.com/skyfusion/navekf/nav"

// Evaluate computes InnovVar and TestRatio for every active slot from P
// and R, then applies the grouped pass rules. Pass is written to every
// slot of the velocity and horizontal-position groups, active or not (the
// updater skips slots that were never marked active); the height slot's
// Pass is written only when that slot is active.
func Evaluate(obs *nav.Observation, cov *nav.Covariance, tiltAlign bool) {
	for slot := 0; slot < nav.NumSlots; slot++ {
		s := &obs[slot]
		if !s.Fuse {
			continue
		}
		si := nav.StateIndex(slot)
		s.InnovVar = cov.Diag(si) + s.R
		s.TestRatio = (s.Innovation * s.Innovation) / (s.Gate * s.Gate * s.InnovVar)
	}

	velPass := passOrInactive(obs, nav.SlotVelN) &&
		passOrInactive(obs, nav.SlotVelE) &&
		passOrInactive(obs, nav.SlotVelD)
	obs[nav.SlotVelN].Pass = velPass
	obs[nav.SlotVelE].Pass = velPass
	obs[nav.SlotVelD].Pass = velPass

	posPass := (passOrInactive(obs, nav.SlotPosN) && passOrInactive(obs, nav.SlotPosE)) || !tiltAlign
	obs[nav.SlotPosN].Pass = posPass
	obs[nav.SlotPosE].Pass = posPass

	if obs[nav.SlotPosD].Fuse {
		obs[nav.SlotPosD].Pass = obs[nav.SlotPosD].TestRatio <= 1.0 || !tiltAlign
	}
}

// passOrInactive returns true for a slot that is not active this tick, so
// it never drags down a group pass decision it was never part of.
func passOrInactive(obs *nav.Observation, slot int) bool {
	s := &obs[slot]
	if !s.Fuse {
		return true
	}
	return s.TestRatio <= 1.0
}
