// SPDX-License-Identifier: MIT

package rbm

import "fmt"

const methodEnergy = "rbm.Energy"

// Energy returns E(x) for visible biases a (length m), hidden biases b
// (length n) and row-major weights w (length m·n). x holds m visible then n
// hidden units, each 0 or 1.
//
// Errors: ErrConfigLength, ErrWeightShape, ErrInvalidUnit.
//
// Example: a=[1], b=[1], w=[2]:
//
//	x=[1,1] → −4,  x=[1,0] → −1,  x=[0,0] → 0.
func Energy(x []int32, a, b, w []float64) (float64, error) {
	m, n := len(a), len(b)
	if err := check(x, m, n, len(w)); err != nil {
		return 0, fmt.Errorf("%s: %w", methodEnergy, err)
	}
	return energy(x, a, b, w, n), nil
}

func check(x []int32, m, n, nw int) error {
	if len(x) != m+n {
		return fmt.Errorf("len(x)=%d, m+n=%d: %w", len(x), m+n, ErrConfigLength)
	}
	if nw != m*n {
		return fmt.Errorf("len(w)=%d, m*n=%d: %w", nw, m*n, ErrWeightShape)
	}
	for k, u := range x {
		if u != 0 && u != 1 {
			return fmt.Errorf("x[%d]=%d: %w", k, u, ErrInvalidUnit)
		}
	}
	return nil
}

// energy is the unchecked active-unit sum; stride is the distance between
// weight rows (n for a packed matrix). Terms are subtracted from +0 so an
// all-inactive configuration yields 0, not -0.
func energy(x []int32, a, b, w []float64, stride int) float64 {
	m, n := len(a), len(b)
	v, h := x[:m], x[m:]
	e := 0.0
	for i := 0; i < m; i++ {
		if v[i] != 1 {
			continue
		}
		e -= a[i]
		row := w[i*stride : i*stride+n]
		for j := 0; j < n; j++ {
			if h[j] == 1 {
				e -= row[j]
			}
		}
	}
	for j := 0; j < n; j++ {
		if h[j] == 1 {
			e -= b[j]
		}
	}
	return e
}
