package nav

// GPSSample is a delayed GPS measurement as consumed by the assembler.
type GPSSample struct {
	Hgt  float64 // ellipsoid/AMSL height, up-positive (opposite sign to pos_d)
	SAcc float64 // speed accuracy, m/s
	VAcc float64 // vertical accuracy, m
}

// BaroSample is a delayed barometric altitude measurement.
type BaroSample struct {
	Hgt float64
}

// RangeSample is a delayed downward rangefinder measurement.
type RangeSample struct {
	Rng float64 // slant range, meters
}

// EVSample is a delayed external-vision position measurement.
type EVSample struct {
	PosDown float64 // down-position component of posNED
	PosErr  float64
}

// AuxVelInnov is the auxiliary horizontal-velocity innovation pair,
// substituted for the primary velocity innovations when FuseHorVel is
// false and FuseHorVelAux is true.
type AuxVelInnov struct {
	North float64
	East  float64
}

// VelObsVarNE is the per-axis horizontal velocity observation variance
// supplied by the prediction/sample layer (e.g. GPS receiver-reported
// speed accuracy already split into N/E components).
type VelObsVarNE struct {
	North float64
	East  float64
}

// Offsets bundles the per-sensor bias/reference offsets applied when
// converting a raw sample into a height innovation.
type Offsets struct {
	BaroHgtOffset   float64
	GPSAltRef       float64
	HgtSensorOffset float64
}

// Samples bundles every sensor input the assembler may read this tick,
// plus the innovations the prediction step has already computed for
// velocity and horizontal position and the rotation term used by the
// rangefinder height branch.
type Samples struct {
	GPS   GPSSample
	Baro  BaroSample
	Range RangeSample
	EV    EVSample

	AuxVel         AuxVelInnov
	VelObsVarNE    VelObsVarNE
	PosObsNoiseNE  float64
	PosInnovGateNE float64

	// VelPosInnov holds the prediction step's pre-computed innovations for
	// slots 0..4 (VN, VE, VD, PN, PE); slot 5 (height) is computed by the
	// assembler itself from samples and is ignored here on input.
	VelPosInnov [NumSlots]float64

	// RngToEarth22 is the cosine of tilt used to gate and correct the
	// rangefinder height branch (R_rng_to_earth_2_2 in spec.md).
	RngToEarth22 float64

	Offsets Offsets
}
