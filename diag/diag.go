// Package diag defines the fusion core's optional diagnostic surface: a
// pure output data structure a caller may log, publish or plot, with no
// fusion behaviour depending on it being consumed (spec.md §6).
package diag

import "time"

// Report is a single tick's diagnostic snapshot.
type Report struct {
	Timestamp time.Time

	// EstimatedPosDown is the filter's height estimate (down-positive)
	// after this tick's fusion.
	EstimatedPosDown float64

	// BaroMeasurement and RangefinderMeasurement are the sign-flipped,
	// offset-corrected conversions described in SPEC_FULL.md §9,
	// published whenever height fusion was requested, regardless of
	// which source (if any) was actually selected.
	BaroMeasurement        float64
	RangefinderMeasurement float64

	BaroHgtOffset   float64
	HgtSensorOffset float64

	// ActiveHeightSource is "baro", "gps", "range", "ev", or "" if height
	// fusion was requested but no source's flag/tilt condition matched.
	ActiveHeightSource string
}
