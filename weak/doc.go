// Package weak constructs the short-distance (tree + penguin) decay
// amplitudes of D⁰→π⁺π⁻ and D⁰→K⁺K⁻ in the isospin basis, together
// with their CP conjugates.
//
// # Construction paths
//
// Build computes the full short-distance amplitudes from physical
// constants: Wilson coefficients, quark and meson masses, decay
// constants, D→P form factors with vector-pole corrections, and the
// chiral penguin enhancement terms. BuildTopologies is the reduced
// alternative: one (magnitude, strong phase) pair per tree and penguin
// topology per channel, combined with the CKM weak factors.
//
// # CP conjugation
//
// The conjugate amplitudes are built from identical strong-dynamics
// inputs with only the CKM couplings conjugated. Nothing else differs
// between the D⁰ and D̄⁰ members of a Pair — that is the invariant the
// FSI models downstream rely on.
//
// # Errors
//
//	ErrInvalidConfiguration — a required coupling is absent, a magnitude
//	                          is negative, or a constant is out of domain.
package weak
