package navsim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"

	"github.com/skyfusion/navekf/gate"
	"github.com/skyfusion/navekf/nav"
	navrand "github.com/skyfusion/navekf/rand"
)

// TestGateMonotoneInInnovationMagnitude draws a large batch of random
// height innovations from a Gaussian and checks that gate.Evaluate's pass
// decision is monotone: within a fixed variance and gate size, a smaller
// |innovation| never fails when a larger one (of either sign) passes. This is a Monte Carlo restatement of spec.md §8's gate
// invariant, grounded on the teacher's rand.WithCovN sampling helper.
func TestGateMonotoneInInnovationMagnitude(t *testing.T) {
	assert := assert.New(t)

	cov := mat.NewSymDense(1, []float64{4.0})
	samples, err := navrand.WithCovN(cov, 200)
	assert.NoError(err)

	navCov := nav.ZeroCovariance()
	navCov.Mat().SetSym(nav.PosD, nav.PosD, 1.0)

	const gateSize = 3.0
	const r = 1.0

	rows, cols := samples.Dims()
	assert.Equal(1, rows)

	innovations := make([]float64, cols)
	for i := 0; i < cols; i++ {
		innovations[i] = samples.At(0, i)
	}

	for i := 0; i < cols; i++ {
		for j := 0; j < cols; j++ {
			if i == j {
				continue
			}
			if abs(innovations[i]) > abs(innovations[j]) {
				continue
			}
			// innovations[i] is the smaller magnitude: if j passes, i must too.
			var obsI, obsJ nav.Observation
			obsI[nav.SlotPosD] = nav.Slot{Fuse: true, Innovation: innovations[i], R: r, Gate: gateSize}
			obsJ[nav.SlotPosD] = nav.Slot{Fuse: true, Innovation: innovations[j], R: r, Gate: gateSize}

			gate.Evaluate(&obsI, navCov, true)
			gate.Evaluate(&obsJ, navCov, true)

			if obsJ[nav.SlotPosD].Pass {
				assert.True(obsI[nav.SlotPosD].Pass,
					"innovation %v passed but smaller-magnitude %v failed", innovations[j], innovations[i])
			}
		}
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
