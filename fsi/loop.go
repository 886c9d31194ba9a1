package fsi

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/integrate/quad"
)

// Quadrature policy for the sharp-cutoff dispersive loop evaluation.
// The refinement bound is a documented choice: Gauss–Legendre node
// counts double from loopQuadNodes until two successive estimates
// agree to loopQuadTol in relative terms; exhausting
// loopQuadDoublings refinements is ErrConvergenceFailure.
const (
	loopQuadTol       = 1e-9
	loopQuadNodes     = 32
	loopQuadDoublings = 8
)

// lambdaEps is the relative tolerance below which the Källén
// discriminant counts as vanishing (threshold/pseudothreshold hit).
const lambdaEps = 1e-12

// kallen is the Källén triangle function λ(s, a, b) with a = m1²,
// b = m2². It vanishes at the threshold s = (m1+m2)² and the
// pseudothreshold s = (m1−m2)².
func kallen(s, a, b float64) float64 {
	return (s-a-b)*(s-a-b) - 4*a*b
}

// rho is the two-body phase-space density entering the dispersive
// representation: ρ(s) = √λ(s, m1², m2²) / (16π s).
func rho(s, m1, m2 float64) float64 {
	l := kallen(s, m1*m1, m2*m2)
	if l <= 0 {
		return 0
	}
	return math.Sqrt(l) / (16 * math.Pi * s)
}

// checkLoopKinematics rejects configurations on which the loop factor
// is undefined: non-positive invariants or masses, and kinematics at
// (or numerically indistinguishable from) the threshold s = (m1+m2)²
// or pseudothreshold s = (m1−m2)², where the discriminant vanishes and
// the closed form loses its branch.
func checkLoopKinematics(s, m1, m2 float64) error {
	if !(s > 0) || math.IsInf(s, 0) {
		return fmt.Errorf("%w: s=%g must be positive and finite", ErrSingularKinematics, s)
	}
	if !(m1 > 0) || !(m2 > 0) || math.IsInf(m1, 0) || math.IsInf(m2, 0) {
		return fmt.Errorf("%w: intermediate masses (%g, %g) must be positive and finite", ErrSingularKinematics, m1, m2)
	}
	l := kallen(s, m1*m1, m2*m2)
	scale := s + m1*m1 + m2*m2
	if math.Abs(l) <= lambdaEps*scale*scale {
		return fmt.Errorf("%w: s=%g sits on a threshold of the (%g, %g) pair", ErrSingularKinematics, s, m1, m2)
	}
	return nil
}

// Loop evaluates the closed-form two-body loop function L(s; m1, m2)
// for an intermediate pair of masses m1, m2 at invariant mass² s, at
// renormalization scale μ² = s:
//
//	16π²·L = 2 + ln(s/(m1·m2)) + ((m1²−m2²)/s)·ln(m2/m1) + f(s)
//
// where f carries the branch structure: a logarithm with +iπ√λ/s
// above threshold (the strong-phase source), an arctangent between
// pseudothreshold and threshold, and a real logarithm below the
// pseudothreshold. Returns ErrSingularKinematics exactly where
// checkLoopKinematics does.
func Loop(s, m1, m2 float64) (complex128, error) {
	if err := checkLoopKinematics(s, m1, m2); err != nil {
		return 0, err
	}

	a, b := m1*m1, m2*m2
	l := kallen(s, a, b)

	base := 2 + math.Log(s/(m1*m2)) + (a-b)/s*math.Log(m2/m1)

	var f complex128
	switch {
	case s > (m1+m2)*(m1+m2): // above threshold: open channel, imaginary part
		sq := math.Sqrt(l)
		f = complex(-sq/s*math.Log((s-a-b+sq)/(2*m1*m2)), math.Pi*sq/s)
	case s > (m1-m2)*(m1-m2): // between pseudothreshold and threshold
		sq := math.Sqrt(-l)
		f = complex(2*sq/s*math.Atan2(sq, a+b-s), 0)
	default: // below pseudothreshold
		sq := math.Sqrt(l)
		f = complex(-sq/s*math.Log((a+b-s+sq)/(2*m1*m2)), 0)
	}

	return (complex(base, 0) + f) / (16 * math.Pi * math.Pi), nil
}

// LoopCutoff evaluates the loop factor as a dispersive integral with a
// sharp cutoff Λ on the intermediate invariant mass:
//
//	Re L = (1/π) ∫_{s_th}^{Λ²} ds' ρ(s') / (s' − s)   (principal value)
//	Im L = ρ(s)·𝟙{s_th < s < Λ²}
//
// The principal value is computed by pole subtraction — the integrand
// (ρ(s')−ρ(s))/(s'−s) is smooth — plus the analytic remainder
// ρ(s)·ln((Λ²−s)/(s−s_th)). Quadrature is adaptive Gauss–Legendre
// under the package refinement policy; ErrConvergenceFailure reports
// an exhausted budget. Kinematics at the integration endpoints
// (s → s_th or s → Λ²) are ErrSingularKinematics: the remainder
// logarithm diverges there.
func LoopCutoff(s, m1, m2, cutoff float64) (complex128, error) {
	if err := checkLoopKinematics(s, m1, m2); err != nil {
		return 0, err
	}
	sth := (m1 + m2) * (m1 + m2)
	if !(cutoff > m1+m2) || math.IsInf(cutoff, 0) {
		return 0, fmt.Errorf("%w: cutoff=%g must exceed the threshold mass %g", ErrInvalidModelParameters, cutoff, m1+m2)
	}
	top := cutoff * cutoff
	if s >= top {
		return 0, fmt.Errorf("%w: s=%g at or above the cutoff edge %g", ErrSingularKinematics, s, top)
	}

	// Substitute s' = s_th + u²: ρ vanishes like √(s'−s_th) at the
	// threshold endpoint, and the substitution turns that square-root
	// branch into an analytic integrand, which Gauss–Legendre resolves
	// at spectral rate.
	umax := math.Sqrt(top - sth)

	if s < sth {
		// No pole inside the integration range: direct integral, no
		// absorptive part.
		re, err := adaptQuad(func(u float64) float64 {
			sp := sth + u*u
			return rho(sp, m1, m2) / (sp - s) * 2 * u
		}, 0, umax, loopQuadTol, loopQuadDoublings)
		if err != nil {
			return 0, err
		}
		return complex(re/math.Pi, 0), nil
	}

	rhoS := rho(s, m1, m2)
	smooth, err := adaptQuad(func(u float64) float64 {
		sp := sth + u*u
		d := sp - s
		if math.Abs(d) < 1e-9*s {
			// removable point: central-difference slope of ρ
			h := 1e-6 * s
			return (rho(s+h, m1, m2) - rho(s-h, m1, m2)) / (2 * h) * 2 * u
		}
		return (rho(sp, m1, m2) - rhoS) / d * 2 * u
	}, 0, umax, loopQuadTol, loopQuadDoublings)
	if err != nil {
		return 0, err
	}
	re := (smooth + rhoS*math.Log((top-s)/(s-sth))) / math.Pi

	return complex(re, rhoS), nil
}

// adaptQuad integrates f over [a, b] with Gauss–Legendre rules of
// doubling order until two successive estimates agree to tol in
// relative terms, or the doubling budget runs out.
func adaptQuad(f func(float64) float64, a, b, tol float64, doublings int) (float64, error) {
	n := loopQuadNodes
	prev := quad.Fixed(f, a, b, n, nil, 0)
	for i := 0; i < doublings; i++ {
		n *= 2
		cur := quad.Fixed(f, a, b, n, nil, 0)
		if math.Abs(cur-prev) <= tol*math.Max(math.Abs(cur), math.SmallestNonzeroFloat64) {
			return cur, nil
		}
		prev = cur
	}
	return 0, fmt.Errorf("%w: %d node doublings from %d exhausted at tol %g",
		ErrConvergenceFailure, doublings, loopQuadNodes, tol)
}
