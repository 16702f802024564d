package navsim

import (
	"gonum.org/v1/gonum/mat"

	"github.com/skyfusion/navekf"
	"github.com/skyfusion/navekf/noise"
)

// NoiseSpec configures the per-tick sensor noise Run perturbs baro, GPS
// height, rangefinder and external-vision samples with, before they ever
// reach assemble.Height. A zero-valued (or omitted) NoiseSpec produces
// noise.Zero, so a scenario that never mentions noise behaves exactly as
// it did before this field existed.
type NoiseSpec struct {
	BaroSigma   float64 `yaml:"baro_sigma"`
	GPSHgtSigma float64 `yaml:"gps_hgt_sigma"`
	RangeSigma  float64 `yaml:"range_sigma"`
	EVPosSigma  float64 `yaml:"ev_pos_sigma"`
}

// noiseChannels is the fixed order NoiseSpec's four sigmas, and the
// vector Build's source samples, are laid out in.
const noiseChannels = 4

// Build constructs the navekf.Noise source n describes: a diagonal
// 4-channel Gaussian over (baro, GPS height, range, EV position) if any
// sigma is nonzero, otherwise noise.Zero, mirroring the teacher's
// Gaussian/Zero split.
func (n NoiseSpec) Build() (navekf.Noise, error) {
	sigmas := [noiseChannels]float64{n.BaroSigma, n.GPSHgtSigma, n.RangeSigma, n.EVPosSigma}

	anyNonzero := false
	for _, sigma := range sigmas {
		if sigma != 0 {
			anyNonzero = true
			break
		}
	}
	if !anyNonzero {
		return noise.NewZero(noiseChannels)
	}

	mean := make([]float64, noiseChannels)
	cov := mat.NewSymDense(noiseChannels, nil)
	for i, sigma := range sigmas {
		cov.SetSym(i, i, sigma*sigma)
	}
	return noise.NewGaussian(mean, cov)
}

// perturb samples n and adds its four channels onto baroHgt, gpsHgt,
// rangeHgt and evPosDown, in that order. A noise source with fewer than
// noiseChannels components (any navekf.Noise implementation, not just
// this package's) contributes zero to the missing channels.
func perturb(n navekf.Noise, baroHgt, gpsHgt, rangeHgt, evPosDown float64) (float64, float64, float64, float64) {
	sample := n.Sample()
	at := func(i int) float64 {
		if i >= sample.Len() {
			return 0
		}
		return sample.AtVec(i)
	}
	return baroHgt + at(0), gpsHgt + at(1), rangeHgt + at(2), evPosDown + at(3)
}
