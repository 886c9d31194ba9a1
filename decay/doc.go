// Package decay evaluates the two-body decay channels D⁰→π⁺π⁻ and
// D⁰→K⁺K⁻ end to end: bare isospin amplitudes from the weak builder,
// final-state dressing through a single fsi.Model, Clebsch–Gordan
// combination into physical channel amplitudes, and the direct CP
// asymmetry of each channel.
//
// The pipeline is
//
//	weak.Build → model.Apply (D⁰ and D̄⁰) → combine → acp.Asymmetry
//
// with one model instance shared by both flavors. Strong dynamics is
// CP-even, so any difference between the flavors can enter only through
// the weak amplitudes; Evaluate enforces this structurally by refusing
// per-flavor models.
//
// Physical channel amplitudes use the isospin decomposition
//
//	A(π⁺π⁻) = t₀/√6 + t₂/(2√3)
//	A(K⁺K⁻) = (t₀ + t₁)/2.
package decay
