package estimators

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

const (
	// DefaultHistogramTolerance is the relative log-likelihood change that
	// stops Histogram when tol ≤ 0.
	DefaultHistogramTolerance = 1e-10
	// DefaultHistogramIterations bounds Histogram when maxIter ≤ 0.
	DefaultHistogramIterations = 100000
)

// Histogram is the self-consistent density-of-states estimator over pooled
// forward and reverse work. Every work value is one point of a log
// histogram S on the forward-work axis (reverse work enters negated); the
// forward sample is weighted at inverse temperature −alpha and the reverse
// sample at 1 − alpha. S and the two log normalizers f are iterated
//
//	f_a = −logsumexp_k(−λ_a·w_k + S_k)
//	S_k = −logsumexp_a(−λ_a·w_k + f_a + log N_a),   λ = (−alpha, 1 − alpha),
//
// until the relative change of the log-likelihood −N·f − ΣS drops below tol
// (DefaultHistogramTolerance if tol ≤ 0). It returns
// ΔF = log Z(−alpha) − log Z(1 − alpha) of the resulting Entropy, which holds
// the pooled work as E and the normalized log histogram as S. alpha = 0 is
// the plain estimator.
//
// After maxIter iterations (DefaultHistogramIterations if maxIter ≤ 0) the
// current estimate is returned together with ErrNotConverged.
func Histogram(wf, wr []float64, alpha, tol float64, maxIter int) (float64, *Entropy, error) {
	if len(wf) == 0 || len(wr) == 0 {
		return 0, nil, fmt.Errorf("Histogram: %w", ErrEmptySample)
	}
	if tol <= 0 {
		tol = DefaultHistogramTolerance
	}
	if maxIter <= 0 {
		maxIter = DefaultHistogramIterations
	}

	n := len(wf) + len(wr)
	w := make([]float64, 0, n)
	w = append(w, wf...)
	for _, x := range wr {
		w = append(w, -x)
	}
	count := [2]float64{float64(len(wf)), float64(len(wr))}
	logN := [2]float64{math.Log(count[0]), math.Log(count[1])}
	lambda := [2]float64{-alpha, 1 - alpha}

	s := make([]float64, n)
	floats.AddConst(-math.Log(float64(n)), s)
	t := make([]float64, n)
	var f [2]float64

	prev, converged := 0.0, false
	for it := 0; it < maxIter; it++ {
		for a := range f {
			for k, x := range w {
				t[k] = -lambda[a]*x + s[k]
			}
			f[a] = -floats.LogSumExp(t)
		}
		ll := -(count[0]*f[0] + count[1]*f[1]) - floats.Sum(s)

		for k, x := range w {
			s[k] = -logAddExp(-lambda[0]*x+f[0]+logN[0], -lambda[1]*x+f[1]+logN[1])
		}
		floats.AddConst(-floats.LogSumExp(s), s)

		if it > 0 {
			d := math.Abs(prev - ll)
			if d == 0 || d < tol*math.Abs(prev+ll) {
				converged = true
				break
			}
		}
		prev = ll
	}

	h := &Entropy{E: w, S: s}
	dF := h.LogZ(-alpha) - h.LogZ(1-alpha)
	if !converged {
		return dF, h, fmt.Errorf("Histogram after %d iterations: %w", maxIter, ErrNotConverged)
	}
	return dF, h, nil
}

// logAddExp is log(e^a + e^b) without overflow.
func logAddExp(a, b float64) float64 {
	if a < b {
		a, b = b, a
	}
	if math.IsInf(a, -1) {
		return a
	}
	return a + math.Log1p(math.Exp(b-a))
}
