package navsim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoiseSpecBuildZeroWhenUnset(t *testing.T) {
	assert := assert.New(t)

	n, err := NoiseSpec{}.Build()
	assert.NoError(err)

	sample := n.Sample()
	for i := 0; i < sample.Len(); i++ {
		assert.Equal(0.0, sample.AtVec(i))
	}
}

func TestNoiseSpecBuildGaussianWhenSet(t *testing.T) {
	assert := assert.New(t)

	spec := NoiseSpec{BaroSigma: 2.0, GPSHgtSigma: 0.5}
	n, err := spec.Build()
	assert.NoError(err)

	cov := n.Cov()
	assert.Equal(4.0, cov.At(0, 0))
	assert.Equal(0.25, cov.At(1, 1))
	assert.Equal(0.0, cov.At(2, 2))
	assert.Equal(0.0, cov.At(3, 3))
}

func TestPerturbAddsAllFourChannelsInOrder(t *testing.T) {
	assert := assert.New(t)

	n, err := NoiseSpec{}.Build() // Zero: contributes nothing to any channel
	assert.NoError(err)

	baro, gps, rng, ev := perturb(n, 1.0, 2.0, 3.0, 4.0)
	assert.Equal(1.0, baro)
	assert.Equal(2.0, gps)
	assert.Equal(3.0, rng)
	assert.Equal(4.0, ev)
}
