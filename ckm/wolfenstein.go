package ckm

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/charmcp/amplitude"
)

// ErrInvalidParameters is returned when Wolfenstein inputs fall outside
// the domain of the expansion (λ∉(0,1), A≤0, or non-finite values).
var ErrInvalidParameters = errors.New("ckm: wolfenstein parameters out of domain")

// Wolfenstein holds the four real CKM parameters {λ, A, ρ, η}.
type Wolfenstein struct {
	Lambda float64 // sine of the Cabibbo angle, in (0, 1)
	A      float64 // > 0
	Rho    float64
	Eta    float64 // CP violation lives here
}

// PDG returns the central Wolfenstein values used throughout the
// calculation.
func PDG() Wolfenstein {
	return Wolfenstein{Lambda: 0.22519, A: 0.828, Rho: 0.1609, Eta: 0.3548}
}

// Couplings holds the three CKM combinations λ_q = V*_cq·V_uq (q=d,s,b)
// governing c→u transitions. λ_b is the CP-violating penguin factor;
// its relative phase against λ_d, λ_s is what a nonzero asymmetry
// requires.
type Couplings struct {
	LambdaD amplitude.Amplitude
	LambdaS amplitude.Amplitude
	LambdaB amplitude.Amplitude
}

// Couplings expands the CKM elements to O(λ⁵) and forms the λ_q
// combinations:
//
//	V_ud = 1 − λ²/2 − λ⁴/8
//	V_us = λ
//	V_ub = Aλ³(ρ − iη)
//	V_cd = −λ + A²λ⁵(1/2 − ρ − iη)
//	V_cs = 1 − λ²/2 − λ⁴(1+4A²)/8
//	V_cb = Aλ²
func (w Wolfenstein) Couplings() (Couplings, error) {
	if err := w.validate(); err != nil {
		return Couplings{}, err
	}

	l := w.Lambda
	l2, l3 := l*l, l*l*l
	l4, l5 := l2*l2, l2*l3

	vud := amplitude.New(1-l2/2-l4/8, 0)
	vus := amplitude.New(l, 0)
	vcd := amplitude.New(-l+w.A*w.A*l5*(0.5-w.Rho), -w.A*w.A*l5*w.Eta)
	vcs := amplitude.New(1-l2/2-l4*(1+4*w.A*w.A)/8, 0)
	vcb := amplitude.New(w.A*l2, 0)
	vub := amplitude.New(w.A*l3*w.Rho, -w.A*l3*w.Eta)

	return Couplings{
		LambdaD: vcd.Conj().Mul(vud),
		LambdaS: vcs.Conj().Mul(vus),
		LambdaB: vcb.Conj().Mul(vub),
	}, nil
}

func (w Wolfenstein) validate() error {
	if !(w.Lambda > 0 && w.Lambda < 1) {
		return fmt.Errorf("%w: Lambda=%g must lie in (0,1)", ErrInvalidParameters, w.Lambda)
	}
	if !(w.A > 0) {
		return fmt.Errorf("%w: A=%g must be positive", ErrInvalidParameters, w.A)
	}
	if !amplitude.New(w.Rho, w.Eta).IsFinite() {
		return fmt.Errorf("%w: Rho/Eta must be finite", ErrInvalidParameters)
	}
	return nil
}

// FromLambdas assembles Couplings from explicit complex λ_q values,
// e.g. independently published central values.
func FromLambdas(lambdaD, lambdaS, lambdaB amplitude.Amplitude) Couplings {
	return Couplings{LambdaD: lambdaD, LambdaS: lambdaS, LambdaB: lambdaB}
}

// Conjugate returns the CP-conjugated couplings: every CKM element is
// replaced by its complex conjugate, flipping all weak phases. Strong
// dynamics never pass through here.
func (c Couplings) Conjugate() Couplings {
	return Couplings{
		LambdaD: c.LambdaD.Conj(),
		LambdaS: c.LambdaS.Conj(),
		LambdaB: c.LambdaB.Conj(),
	}
}

// IsZero reports whether all three combinations vanish, i.e. no weak
// couplings were supplied at all.
func (c Couplings) IsZero() bool {
	return c.LambdaD == 0 && c.LambdaS == 0 && c.LambdaB == 0
}
