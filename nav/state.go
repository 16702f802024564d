// Package nav defines the data types shared by the fusion core: the
// navigation state vector, its covariance, observation slots, control
// flags, tuning parameters and sensor samples described in the spec.
package nav

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// NumStates is the dimension of the filter's state vector and covariance.
// Only indices VelN..PosD are read or written by the fusion core; the
// remaining indices (attitude quaternion, biases, wind, ...) belong to the
// prediction step and are carried through untouched.
const NumStates = 24

// State indices for the six quantities the fusion core reads and writes.
// They are contiguous, matching the "slot + 4" rule from the spec: slot i
// corresponds to state index i+VelN.
const (
	VelN = 4 + iota
	VelE
	VelD
	PosN
	PosE
	PosD
)

// State is the filter's 24-entry navigation state vector. The fusion core
// owns it only for the duration of a single Fuse call; outside of that it
// belongs to the prediction step.
type State struct {
	x *mat.VecDense
}

// NewState wraps v as a State. v must have length NumStates.
func NewState(v *mat.VecDense) (*State, error) {
	if v == nil || v.Len() != NumStates {
		return nil, fmt.Errorf("nav: invalid state vector length: got %v, want %d", v, NumStates)
	}
	return &State{x: v}, nil
}

// ZeroState returns a new all-zero state.
func ZeroState() *State {
	return &State{x: mat.NewVecDense(NumStates, nil)}
}

// Vec returns the underlying vector. Callers mutating it must respect the
// Core's ownership window for the duration of Fuse.
func (s *State) Vec() *mat.VecDense { return s.x }

// At returns the state value at index i.
func (s *State) At(i int) float64 { return s.x.AtVec(i) }

// Set sets the state value at index i.
func (s *State) Set(i int, v float64) { s.x.SetVec(i, v) }

// PosDown returns the down-position component (index PosD), the quantity
// every height source's innovation is computed against.
func (s *State) PosDown() float64 { return s.x.AtVec(PosD) }

// Covariance is the filter's 24x24 state covariance. It is maintained
// symmetric and positive semi-definite across the filter's lifetime; the
// sequential updater may transiently violate that before repairing it.
type Covariance struct {
	p *mat.SymDense
}

// NewCovariance wraps p as a Covariance. p must be of dimension NumStates.
func NewCovariance(p *mat.SymDense) (*Covariance, error) {
	if p == nil || p.SymmetricDim() != NumStates {
		return nil, fmt.Errorf("nav: invalid covariance dimension: want %d", NumStates)
	}
	return &Covariance{p: p}, nil
}

// ZeroCovariance returns a new all-zero covariance.
func ZeroCovariance() *Covariance {
	return &Covariance{p: mat.NewSymDense(NumStates, nil)}
}

// Mat returns the underlying symmetric matrix.
func (c *Covariance) Mat() *mat.SymDense { return c.p }

// At returns P[i][j].
func (c *Covariance) At(i, j int) float64 { return c.p.At(i, j) }

// Diag returns P[i][i].
func (c *Covariance) Diag(i int) float64 { return c.p.At(i, i) }
