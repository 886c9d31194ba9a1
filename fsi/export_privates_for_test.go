package fsi

// Test-only exports of private numerics, mirroring the public contract
// they back.

// AdaptQuad exposes the bounded adaptive quadrature for direct tests of
// the refinement policy.
var AdaptQuad = adaptQuad

// Rho exposes the two-body phase-space density used by the dispersive
// loop evaluation.
var Rho = rho

// Kallen exposes the Källén triangle function.
var Kallen = kallen
