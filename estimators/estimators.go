package estimators

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

const (
	// DefaultTolerance is the BAR stopping tolerance used when tol ≤ 0.
	DefaultTolerance = 1e-4
	// MaxIterations bounds the BAR fixed-point iteration.
	MaxIterations = 10000
)

// LogSumExp returns log Σ exp(x_k) without overflow. It returns -Inf for an
// empty slice.
func LogSumExp(x []float64) float64 {
	if len(x) == 0 {
		return math.Inf(-1)
	}
	return floats.LogSumExp(x)
}

// Jarzynski estimates ΔF from forward work via the Jarzynski equality,
// log N − logsumexp(−w). This is the annealed importance sampling estimate.
func Jarzynski(w []float64) (float64, error) {
	if len(w) == 0 {
		return 0, fmt.Errorf("Jarzynski: %w", ErrEmptySample)
	}
	return jarzynski(w), nil
}

func jarzynski(w []float64) float64 {
	neg := make([]float64, len(w))
	floats.ScaleTo(neg, -1, w)
	return math.Log(float64(len(w))) - floats.LogSumExp(neg)
}

// Cumulant estimates ΔF from forward work by the second-order cumulant
// expansion mean(w) − var(w)/2. The variance is the population variance.
func Cumulant(w []float64) (float64, error) {
	if len(w) == 0 {
		return 0, fmt.Errorf("Cumulant: %w", ErrEmptySample)
	}
	mean, variance := stat.PopMeanVariance(w, nil)
	return mean - 0.5*variance, nil
}

// CumulantBidirectional combines forward work wf and reverse work wr:
//
//	½(mean wf − mean wr) − (var wf − var wr)/12.
func CumulantBidirectional(wf, wr []float64) (float64, error) {
	if len(wf) == 0 || len(wr) == 0 {
		return 0, fmt.Errorf("CumulantBidirectional: %w", ErrEmptySample)
	}
	mf, vf := stat.PopMeanVariance(wf, nil)
	mr, vr := stat.PopMeanVariance(wr, nil)
	return 0.5*(mf-mr) - (vf-vr)/12, nil
}

// BAR solves Bennett's acceptance ratio equation
//
//	Σ_f σ(ΔF − M − W_f) = Σ_r σ(M − ΔF − W_r),   σ(x) = 1/(1+e^{−x}),
//
// with M = log(n_f/n_r), in log space by fixed-point iteration, starting from
// the average of the forward and reverse Jarzynski estimates. For equal
// sample sizes M vanishes. wr is the reverse work itself, not its negation.
// The iteration stops once the update is below tol (DefaultTolerance if
// tol ≤ 0); after MaxIterations it returns the current estimate together
// with ErrNotConverged.
func BAR(wf, wr []float64, tol float64) (float64, error) {
	if len(wf) == 0 || len(wr) == 0 {
		return 0, fmt.Errorf("BAR: %w", ErrEmptySample)
	}
	if tol <= 0 {
		tol = DefaultTolerance
	}
	m := math.Log(float64(len(wf)) / float64(len(wr)))
	dF := 0.5 * (jarzynski(wf) - jarzynski(wr))

	lf := make([]float64, len(wf))
	lr := make([]float64, len(wr))
	for it := 0; it < MaxIterations; it++ {
		for k, w := range wf {
			lf[k] = -softplus(m + w - dF)
		}
		for k, w := range wr {
			lr[k] = -softplus(w + dF - m)
		}
		incr := floats.LogSumExp(lr) - floats.LogSumExp(lf)
		dF += incr
		if math.Abs(incr) < tol {
			return dF, nil
		}
	}
	return dF, fmt.Errorf("BAR after %d iterations: %w", MaxIterations, ErrNotConverged)
}

// softplus is log(1 + e^x), evaluated without overflow.
func softplus(x float64) float64 {
	if x > 0 {
		return x + math.Log1p(math.Exp(-x))
	}
	return math.Log1p(math.Exp(x))
}
