package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
)

func TestNewState(t *testing.T) {
	assert := assert.New(t)

	v := mat.NewVecDense(NumStates, nil)
	s, err := NewState(v)
	assert.NoError(err)
	assert.NotNil(s)

	s, err = NewState(mat.NewVecDense(3, nil))
	assert.Error(err)
	assert.Nil(s)

	s, err = NewState(nil)
	assert.Error(err)
	assert.Nil(s)
}

func TestStateAtSetPosDown(t *testing.T) {
	assert := assert.New(t)

	s := ZeroState()
	s.Set(PosD, -12.5)

	assert.Equal(-12.5, s.At(PosD))
	assert.Equal(-12.5, s.PosDown())
}

func TestNewCovariance(t *testing.T) {
	assert := assert.New(t)

	p := mat.NewSymDense(NumStates, nil)
	c, err := NewCovariance(p)
	assert.NoError(err)
	assert.NotNil(c)

	c, err = NewCovariance(mat.NewSymDense(3, nil))
	assert.Error(err)
	assert.Nil(c)
}

func TestCovarianceDiagAt(t *testing.T) {
	assert := assert.New(t)

	c := ZeroCovariance()
	c.Mat().SetSym(VelN, VelN, 2.5)

	assert.Equal(2.5, c.Diag(VelN))
	assert.Equal(2.5, c.At(VelN, VelN))
}
