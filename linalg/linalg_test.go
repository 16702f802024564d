package linalg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
)

func TestZeroRows(t *testing.T) {
	assert := assert.New(t)

	P := mat.NewSymDense(3, []float64{
		1, 2, 3,
		2, 4, 5,
		3, 5, 6,
	})

	ZeroRows(P, 1, 1)

	assert.Equal(1.0, P.At(0, 0))
	assert.Equal(3.0, P.At(0, 2))
	assert.Equal(0.0, P.At(1, 0))
	assert.Equal(0.0, P.At(1, 1))
	assert.Equal(0.0, P.At(1, 2))
	// symmetric, so column 1 is also cleared
	assert.Equal(0.0, P.At(2, 1))
}

func TestZeroCols(t *testing.T) {
	assert := assert.New(t)

	P := mat.NewSymDense(3, []float64{
		1, 2, 3,
		2, 4, 5,
		3, 5, 6,
	})

	ZeroCols(P, 0, 0)

	assert.Equal(0.0, P.At(0, 0))
	assert.Equal(0.0, P.At(1, 0))
	assert.Equal(0.0, P.At(2, 0))
	assert.Equal(4.0, P.At(1, 1))
	assert.Equal(6.0, P.At(2, 2))
}

func TestFixCovarianceErrors(t *testing.T) {
	assert := assert.New(t)

	P := mat.NewSymDense(2, []float64{-1, 0, 0, 10})
	FixCovarianceErrors(P, 5)

	assert.Equal(0.0, P.At(0, 0))
	assert.Equal(5.0, P.At(1, 1))
}

func TestFixCovarianceErrorsNoCap(t *testing.T) {
	assert := assert.New(t)

	P := mat.NewSymDense(2, []float64{-1, 0, 0, 1e9})
	FixCovarianceErrors(P, 0)

	assert.Equal(0.0, P.At(0, 0))
	assert.Equal(1e9, P.At(1, 1))
}
