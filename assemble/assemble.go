// Package assemble builds the per-tick 6-slot observation record from
// sensor samples, control flags and tuning parameters, per spec.md §4.2.
package assemble

import (
	"math"

	"github.com/skyfusion/navekf/nav"
)

// Velocity populates the horizontal and vertical velocity slots (0,1,2) of
// obs from samples, flags and params. Slot innovations for horizontal
// velocity are assumed pre-computed by the prediction step and already
// copied into obs by the caller; Velocity overwrites slots 0 and 1 with
// the auxiliary source's pair when FuseHorVelAux is requested without
// FuseHorVel.
func Velocity(obs *nav.Observation, samples *nav.Samples, flags *nav.ControlFlags, params *nav.Params) {
	if flags.FuseHorVel || flags.FuseHorVelAux {
		obs[nav.SlotVelN].Fuse = true
		obs[nav.SlotVelE].Fuse = true

		if !flags.FuseHorVel {
			obs[nav.SlotVelN].Innovation = samples.AuxVel.North
			obs[nav.SlotVelE].Innovation = samples.AuxVel.East
		}

		obs[nav.SlotVelN].R = samples.VelObsVarNE.North
		obs[nav.SlotVelE].R = samples.VelObsVarNE.East
		obs[nav.SlotVelN].Gate = params.VelInnovGate
		obs[nav.SlotVelE].Gate = params.VelInnovGate
	}

	if flags.FuseVertVel {
		obs[nav.SlotVelD].Fuse = true

		r := math.Max(params.GPSVelNoise, math.Max(0.01, samples.GPS.SAcc))
		r = 1.5 * r
		obs[nav.SlotVelD].R = r * r
		obs[nav.SlotVelD].Gate = math.Max(params.VelInnovGate, 1.0)
	}
}

// HorizontalPosition populates the position slots (3,4) of obs.
func HorizontalPosition(obs *nav.Observation, samples *nav.Samples, flags *nav.ControlFlags) {
	if !flags.FusePos {
		return
	}

	obs[nav.SlotPosN].Fuse = true
	obs[nav.SlotPosE].Fuse = true

	r := samples.PosObsNoiseNE * samples.PosObsNoiseNE
	obs[nav.SlotPosN].R = r
	obs[nav.SlotPosE].R = r
	obs[nav.SlotPosN].Gate = samples.PosInnovGateNE
	obs[nav.SlotPosE].Gate = samples.PosInnovGateNE
}

// HeightResult reports which source, if any, was selected for the height
// slot this tick, and the two converted measurements the diagnostic
// surface publishes regardless of which branch matched.
type HeightResult struct {
	// Source is one of "baro", "gps", "range", "ev", or "" if none
	// matched (missing-height-source error case from spec.md §7).
	Source string
	// BaroMeasurement and RangefinderMeasurement are the sign-flipped,
	// offset-corrected conversions spec.md §9 / original_source publish
	// unconditionally whenever FuseHeight is requested, independent of
	// which source (if any) was actually selected.
	BaroMeasurement        float64
	RangefinderMeasurement float64
}

// Height populates the height slot (5) of obs from whichever single
// source is selected by priority baro > gps > range > ev, per
// spec.md §4.2 and §4.4 "Ordering and tie-breaks". It returns the
// diagnostic conversions described in SPEC_FULL.md §9 whenever
// flags.FuseHeight is set, whether or not a branch matched.
func Height(obs *nav.Observation, x *nav.State, samples *nav.Samples, flags *nav.ControlFlags, params *nav.Params) HeightResult {
	var res HeightResult
	if !flags.FuseHeight {
		return res
	}

	res.BaroMeasurement = -samples.Baro.Hgt - samples.Offsets.BaroHgtOffset - samples.Offsets.HgtSensorOffset
	rngGnd := math.Max(samples.Range.Rng*samples.RngToEarth22, params.RngGndClearance)
	res.RangefinderMeasurement = -rngGnd - samples.Offsets.HgtSensorOffset

	switch {
	case flags.Height.Baro:
		res.Source = "baro"
		obs[nav.SlotPosD].Fuse = true

		innov := x.PosDown() + samples.Baro.Hgt - samples.Offsets.BaroHgtOffset - samples.Offsets.HgtSensorOffset
		innov = applyGroundEffectDeadzone(innov, flags.GndEffect, params.GndEffectDeadzone)
		obs[nav.SlotPosD].Innovation = innov

		r := math.Max(params.BaroNoise, 0.01)
		obs[nav.SlotPosD].R = r * r

		// Open question (spec.md §9): the source gates the GPS-height
		// branch with baro_innov_gate too. Baro's own gate is the one
		// named for it, baro_innov_gate, so this branch is unaffected by
		// that quirk; it is reproduced in the GPS branch below.
		obs[nav.SlotPosD].Gate = math.Max(params.BaroInnovGate, 1.0)

	case flags.Height.GPS:
		res.Source = "gps"
		obs[nav.SlotPosD].Fuse = true

		obs[nav.SlotPosD].Innovation = x.PosDown() + samples.GPS.Hgt - samples.Offsets.GPSAltRef - samples.Offsets.HgtSensorOffset

		lower := math.Max(params.GPSPosNoise, 0.01)
		upper := math.Max(params.PosNoAidNoise, lower)
		vacc := clamp(samples.GPS.VAcc, lower, upper)
		r := 1.5 * vacc
		obs[nav.SlotPosD].R = r * r

		// Preserved as specified: this reuses baro_innov_gate, not a
		// gps-specific gate parameter. See spec.md §9 Open Question.
		obs[nav.SlotPosD].Gate = math.Max(params.BaroInnovGate, 1.0)

	case flags.Height.Range && samples.RngToEarth22 > params.RangeCosMaxTilt:
		res.Source = "range"
		obs[nav.SlotPosD].Fuse = true

		obs[nav.SlotPosD].Innovation = x.PosDown() - (-rngGnd) - samples.Offsets.HgtSensorOffset

		rn := params.RangeNoise*params.RangeNoise + (params.RangeNoiseScaler*samples.Range.Rng)*(params.RangeNoiseScaler*samples.Range.Rng)
		rn = rn * samples.RngToEarth22 * samples.RngToEarth22
		obs[nav.SlotPosD].R = math.Max(rn, 0.01)
		obs[nav.SlotPosD].Gate = math.Max(params.RangeInnovGate, 1.0)

	case flags.Height.EV:
		res.Source = "ev"
		obs[nav.SlotPosD].Fuse = true

		obs[nav.SlotPosD].Innovation = x.PosDown() - samples.EV.PosDown

		r := math.Max(samples.EV.PosErr, 0.01)
		obs[nav.SlotPosD].R = r * r
		obs[nav.SlotPosD].Gate = math.Max(params.EVInnovGate, 1.0)
	}

	return res
}

// applyGroundEffectDeadzone implements spec.md §4.2's ground-effect
// saturation: for innovation in (-d, 0] it is clamped to 0, for
// innovation <= -d it is shifted toward zero by d, for innovation >= 0 it
// is untouched. deadzone_start is hard-coded 0 per spec.md §9's second
// open question, preserved verbatim rather than generalised.
func applyGroundEffectDeadzone(innovation float64, gndEffect bool, deadzone float64) float64 {
	if !gndEffect {
		return innovation
	}
	if innovation < 0 {
		if innovation <= -deadzone {
			innovation += deadzone
		} else {
			innovation = 0
		}
	}
	return innovation
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
