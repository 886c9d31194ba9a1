// Package amplitude provides the immutable complex value type shared by
// every stage of the decay pipeline: weak amplitudes, FSI-dressed
// physical amplitudes and the intermediate isospin components are all
// Amplitude values.
//
// Operations are pure and allocation-free; IEEE-754 special values
// (NaN, ±Inf) propagate unchanged so that a downstream consumer — the
// asymmetry evaluator — can reject them with a proper error instead of
// this package guessing at a default.
package amplitude
