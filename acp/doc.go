// Package acp computes the direct CP asymmetry of a decay channel from
// a particle/antiparticle amplitude pair.
//
// The observable is the normalized rate difference
//
//	A_CP = (|A|² − |Ā|²) / (|A|² + |Ā|²),
//
// where A is the D⁰ amplitude and Ā the D̄⁰ amplitude for the same
// final state. A non-zero value requires both a weak (CP-odd) phase
// difference and a strong (CP-even) phase difference between at least
// two interfering contributions; either one alone gives A_CP = 0.
//
// The package never clamps: values outside [−1, 1] coming from
// inconsistent inputs are returned as computed, and a vanishing or
// non-finite total rate is reported as ErrDegenerateAmplitude rather
// than silently mapped to zero.
package acp
