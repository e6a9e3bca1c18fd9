// SPDX-License-Identifier: MIT

package rbm

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/paths/mcmc"
)

// RBM holds the parameters of a Restricted Boltzmann Machine.
// A has length m, B has length n and W is m×n.
type RBM struct {
	A []float64
	B []float64
	W *mat.Dense
}

// New validates the parameter shapes and returns an RBM sharing a, b and w.
//
// Errors: ErrEmptyLayer, ErrWeightShape.
func New(a, b []float64, w *mat.Dense) (*RBM, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, ErrEmptyLayer
	}
	if w == nil {
		return nil, fmt.Errorf("rbm.New: nil weights: %w", ErrWeightShape)
	}
	if r, c := w.Dims(); r != len(a) || c != len(b) {
		return nil, fmt.Errorf("rbm.New: weights %dx%d, want %dx%d: %w", r, c, len(a), len(b), ErrWeightShape)
	}
	return &RBM{A: a, B: b, W: w}, nil
}

// FromFlat builds an RBM from row-major weights of length m·n. The weight
// slice becomes the backing store of W; it is not copied.
func FromFlat(a, b, w []float64) (*RBM, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, ErrEmptyLayer
	}
	if len(w) != len(a)*len(b) {
		return nil, fmt.Errorf("rbm.FromFlat: len(w)=%d, want %d: %w", len(w), len(a)*len(b), ErrWeightShape)
	}
	return New(a, b, mat.NewDense(len(a), len(b), w))
}

// M returns the number of visible units.
func (r *RBM) M() int { return len(r.A) }

// N returns the number of hidden units.
func (r *RBM) N() int { return len(r.B) }

// shape reports ErrWeightShape when A or B were resized after New.
func (r *RBM) shape() error {
	if r.W == nil {
		return fmt.Errorf("nil weights: %w", ErrWeightShape)
	}
	if rows, cols := r.W.Dims(); rows != len(r.A) || cols != len(r.B) {
		return fmt.Errorf("weights %dx%d, want %dx%d: %w", rows, cols, len(r.A), len(r.B), ErrWeightShape)
	}
	return nil
}

// Energy evaluates E(x) with the active-unit kernel.
func (r *RBM) Energy(x []int32) (float64, error) {
	if err := r.shape(); err != nil {
		return 0, fmt.Errorf("%s: %w", methodEnergy, err)
	}
	if err := check(x, r.M(), r.N(), r.M()*r.N()); err != nil {
		return 0, fmt.Errorf("%s: %w", methodEnergy, err)
	}
	raw := r.W.RawMatrix()
	return energy(x, r.A, r.B, raw.Data, raw.Stride), nil
}

// DenseEnergy evaluates −(a·v + b·h + vᵀWh) with dense linear algebra.
func (r *RBM) DenseEnergy(x []int32) (float64, error) {
	if err := r.shape(); err != nil {
		return 0, fmt.Errorf("rbm.DenseEnergy: %w", err)
	}
	m, n := r.M(), r.N()
	if err := check(x, m, n, m*n); err != nil {
		return 0, fmt.Errorf("rbm.DenseEnergy: %w", err)
	}
	v := mat.NewVecDense(m, nil)
	h := mat.NewVecDense(n, nil)
	for i := 0; i < m; i++ {
		v.SetVec(i, float64(x[i]))
	}
	for j := 0; j < n; j++ {
		h.SetVec(j, float64(x[m+j]))
	}
	a := mat.NewVecDense(m, r.A)
	b := mat.NewVecDense(n, r.B)
	return -(mat.Dot(a, v) + mat.Dot(b, h) + mat.Inner(v, r.W, h)), nil
}

// Draw returns a uniform random binary configuration of length m+n.
func (r *RBM) Draw(rng mcmc.Source) ([]int32, error) {
	if rng == nil {
		return nil, mcmc.ErrNilSource
	}
	x := make([]int32, r.M()+r.N())
	for k := range x {
		x[k] = int32(rng.Intn(2))
	}
	return x, nil
}
