package fsi

import (
	"errors"

	"github.com/katalvlaran/charmcp/weak"
)

// ErrInvalidModelParameters is returned when a reduced FSI
// parameterization falls outside the domain its model defines it on.
var ErrInvalidModelParameters = errors.New("fsi: model parameters out of domain")

// ErrSingularKinematics is returned when the loop factor is undefined
// at the given masses (threshold or pseudothreshold kinematics).
var ErrSingularKinematics = errors.New("fsi: singular loop kinematics")

// ErrConvergenceFailure is returned when the bounded loop quadrature
// exhausts its refinement budget without meeting the tolerance.
var ErrConvergenceFailure = errors.New("fsi: loop quadrature did not converge")

// Model transforms bare weak-phase-carrying isospin amplitudes into
// physical amplitudes carrying FSI strong phases.
//
// Implementations hold only strong-dynamics data and must be applied
// unchanged to both the D⁰ and D̄⁰ amplitude sets of one evaluation;
// that shared application is what keeps the induced phases
// CP-conserving.
type Model interface {
	Apply(bare weak.Amplitudes) (weak.Amplitudes, error)
}
