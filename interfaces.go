package navekf

import "gonum.org/v1/gonum/mat"

// Estimate is a snapshot of a filter's value and covariance. Core.Fuse's
// result implements it so callers already written against the teacher's
// Estimate convention can consume it unchanged.
type Estimate interface {
	// Val returns estimate value
	Val() mat.Vector
	// Cov returns estimate covariance
	Cov() mat.Symmetric
}

// Noise is a source of synthetic disturbance, used by package navsim to
// generate test sensor noise. The fusion core itself never samples noise;
// the interface only exists for test and simulation tooling that needs to
// stand in sensor error.
type Noise interface {
	// Mean returns noise mean
	Mean() []float64
	// Cov returns covariance matrix of the noise
	Cov() mat.Symmetric
	// Sample returns a sample of the noise
	Sample() mat.Vector
	// Reset resets the noise
	Reset()
}
