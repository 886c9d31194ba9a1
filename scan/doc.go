// Package scan evaluates many FSI-model variants of the CP-asymmetry
// pipeline concurrently and summarizes the resulting asymmetry
// distributions.
//
// A scan is a list of labelled Cases, each carrying its own fsi.Model;
// the short-distance constants are shared by every case. Run fans the
// cases out over a bounded worker pool, preserves input order in the
// returned Outcomes, and records per-case failures in the Outcome
// instead of aborting the whole scan. Context cancellation stops the
// scan early.
//
// Summarize condenses a channel's asymmetries across the successful
// outcomes into mean, median, extrema and standard deviation, which is
// how strong-phase uncertainty bands are read off a grid scan (see
// StrongPhaseGrid).
package scan
