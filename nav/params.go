package nav

// Params holds the fusion core's read-only tuning parameters. All fields
// are non-negative reals; DefaultParams returns values representative of
// a multirotor tuned for GPS+baro operation.
type Params struct {
	GPSVelNoise       float64
	VelInnovGate      float64
	BaroNoise         float64
	BaroInnovGate     float64
	GPSPosNoise       float64
	PosNoAidNoise     float64
	RangeNoise        float64
	RangeNoiseScaler  float64
	RngGndClearance   float64
	RangeCosMaxTilt   float64
	RangeInnovGate    float64
	EVInnovGate       float64
	GndEffectDeadzone float64

	// MaxVariance caps a diagonal covariance entry after FixCovarianceErrors
	// repairs symmetry and negative diagonals. Not part of the source's
	// documented behaviour in numeric terms, only named ("cap extreme
	// variances"); 1e6 is a generous ceiling that never binds in the
	// scenarios in spec.md §8 but prevents unbounded growth under sustained
	// sensor dropout.
	MaxVariance float64
}

// DefaultParams returns a set of parameters representative of a
// multirotor configured for GPS, baro and optional rangefinder aiding.
func DefaultParams() Params {
	return Params{
		GPSVelNoise:       0.3,
		VelInnovGate:      5.0,
		BaroNoise:         2.0,
		BaroInnovGate:     5.0,
		GPSPosNoise:       0.5,
		PosNoAidNoise:     10.0,
		RangeNoise:        0.1,
		RangeNoiseScaler:  0.05,
		RngGndClearance:   0.1,
		RangeCosMaxTilt:   0.7,
		RangeInnovGate:    5.0,
		EVInnovGate:       5.0,
		GndEffectDeadzone: 0.0,
		MaxVariance:       1.0e6,
	}
}
