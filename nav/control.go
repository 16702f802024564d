package nav

// HeightSource discriminates which single height-aiding source is active.
// Exactly one of these should be set at a time; priority on conflict is
// baro > gps > range > ev, applied by the assembler.
type HeightSource struct {
	Baro  bool
	GPS   bool
	Range bool
	EV    bool
}

// ControlFlags are the caller's one-shot fusion requests plus the
// read-only mode flags the assembler and gate consult. FuseHorVel,
// FuseHorVelAux, FuseVertVel, FusePos and FuseHeight are reset to false by
// Core.Fuse before it returns (one-shot request semantics).
type ControlFlags struct {
	FuseHorVel    bool
	FuseHorVelAux bool
	FuseVertVel   bool
	FusePos       bool
	FuseHeight    bool

	// FuseHposAsOdom routes a successful horizontal-position fusion to the
	// "delta position" timestamp instead of the ordinary position one.
	FuseHposAsOdom bool

	// TiltAlign is false during pre-alignment; while false, height and
	// horizontal-position gates force-pass to avoid stalling the filter.
	TiltAlign bool

	// GndEffect enables the baro ground-effect deadzone.
	GndEffect bool

	Height HeightSource
}

// Reset clears the one-shot fusion request flags. Mode flags (TiltAlign,
// GndEffect, FuseHposAsOdom, Height) are caller-owned and untouched.
func (f *ControlFlags) Reset() {
	f.FuseHorVel = false
	f.FuseHorVelAux = false
	f.FuseVertVel = false
	f.FusePos = false
	f.FuseHeight = false
}
