package nav

// NumSlots is the number of observation slots: VN, VE, VD, PN, PE, PD.
const NumSlots = 6

// Slot indices, matching spec.md's 0..5 ordering. StateIndex returns the
// corresponding entry in State/Covariance (slot+4).
const (
	SlotVelN = iota
	SlotVelE
	SlotVelD
	SlotPosN
	SlotPosE
	SlotPosD
)

// StateIndex returns the state/covariance index that observation slot i
// corresponds to.
func StateIndex(slot int) int { return slot + VelN }

// Slot is a single observation slot record: whether it is live this tick,
// its innovation, its observation variance, its gate size, and the three
// outputs the gate and updater populate.
type Slot struct {
	// Fuse is true when this slot is live this tick.
	Fuse bool
	// Innovation is measurement minus predicted measurement.
	Innovation float64
	// R is the observation variance (>= 0.0001 by construction).
	R float64
	// Gate is the innovation gate size, a dimensionless standard-deviation
	// multiplier (>= 1).
	Gate float64

	// InnovVar is P[state_index][state_index] + R, computed by the gate.
	InnovVar float64
	// TestRatio is Innovation^2 / (Gate^2 * InnovVar), computed by the gate.
	TestRatio float64
	// Pass is the gated, grouped accept/reject decision.
	Pass bool
}

// Observation is the fixed 6-slot record the assembler populates each tick.
type Observation [NumSlots]Slot
