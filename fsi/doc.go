// Package fsi implements the two final-state-interaction models that
// dress the bare weak amplitudes of D⁰→π⁺π⁻ / D⁰→K⁺K⁻ with
// CP-conserving strong phases. It provides interchangeable
// implementations of one capability — "given bare amplitudes, produce
// physical amplitudes" — behind the Model interface.
//
// The two models offered are:
//
//   - RescatterModel (coupled-channel rescattering matrix)
//
//   - Method: single 2×2 Omega matrix acting on the (ππ, KK) I=0
//     subspace; elastic phase factors on the exotic I=2 and I=1
//     amplitudes.
//
//   - Parameters: per-row inelasticity η∈[0,1] and mixing angle
//     θ∈[0,π/2] plus strong phases — never raw matrix entries, so
//     boundedness (redistribution of strength, not amplification)
//     holds by construction.
//
//   - Cost: one complex 2×2 multiply per Apply.
//
//   - TriangleModel (diagrammatic rescattering sum)
//
//   - Method: physical = bare + Σ over intermediate two-body states of
//     production coupling × loop factor L(m²_D; M1, M2) × rescattering
//     coupling.
//
//   - Loop factor: closed-form two-body loop function; with a sharp
//     cutoff the real part is the pole-subtracted dispersive integral
//     evaluated by adaptive Gauss–Legendre quadrature.
//
//   - Cost: loop factors are evaluated once at construction; Apply is
//     a handful of complex multiply-adds.
//
// # CP structure
//
// Both models are strictly flavor-blind: a Model value carries only
// strong-dynamics data, fixed at construction, and Apply performs the
// identical linear transformation on D⁰ and D̄⁰ amplitude sets. The
// weak phases ride through untouched; the strong phases injected here
// are what turns a weak-phase difference into an observable asymmetry.
// Construct one model and apply it to both flavors — decay.Evaluate
// enforces exactly that.
//
// # Trivial limits
//
// IdentityRescatterParams() and a TriangleModel with no intermediate
// states both reproduce the bare amplitudes exactly (the no-FSI limit).
//
// # Errors
//
//	ErrInvalidModelParameters — reduced parameterization out of domain
//	ErrSingularKinematics     — loop factor undefined at the given masses
//	ErrConvergenceFailure     — bounded quadrature did not converge
//
// All failures are immediate and final; no retry can succeed on the
// same deterministic inputs.
package fsi
