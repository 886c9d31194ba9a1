// Package ckm provides the Wolfenstein parameterization of the CKM
// quark-mixing matrix and the λ_q = V*_cq·V_uq combinations that carry
// the weak phases of singly-Cabibbo-suppressed D⁰ decays.
//
// The expansion is carried to O(λ⁵), which is the first order at which
// λ_d acquires an imaginary part; λ_s stays real at that order. For
// reproducing published central values exactly, Couplings can also be
// assembled directly from explicit complex λ_q numbers.
package ckm
