// Package charmcp computes theoretical direct CP-violating asymmetries
// for the singly-Cabibbo-suppressed neutral charm decays D⁰→π⁺π⁻ and
// D⁰→K⁺K⁻, under two published treatments of final-state interactions.
//
// 🚀 What is charmcp?
//
//	A small, pure-computation library that chains three stages:
//		• Weak amplitudes: short-distance tree + penguin isospin
//		  amplitudes from CKM couplings and Wilson coefficients
//		• FSI dressing: one of two interchangeable rescattering models
//		  injects the CP-conserving strong phases
//		• Asymmetry: the normalized |A|²−|Ā|² observable per channel
//
// ✨ Why choose charmcp?
//
//   - Stateless – every evaluation is a pure function of its inputs,
//     safe for concurrent parameter scans
//   - Honest failures – sentinel errors for every invalid configuration,
//     singular kinematics, or non-converging loop integral; nothing is
//     clamped or silently defaulted
//   - Two models, one interface – the coupled-channel rescattering
//     matrix and the triangle-loop sum are drop-in alternatives
//
// Everything is organized under flat subpackages:
//
//	amplitude/ — immutable complex decay-amplitude value type
//	ckm/       — Wolfenstein parameterization, λ_q = V*_cq·V_uq combinations
//	weak/      — short-distance constants & bare isospin amplitude builder
//	fsi/       — the Model interface; rescattering matrix & triangle loop
//	acp/       — direct CP-asymmetry evaluator
//	decay/     — per-channel evaluation entry point
//	scan/      — concurrent strong-phase scans with summary statistics
//
// Data flows one way:
//
//	weak ──▶ fsi (matrix or triangle) ──▶ acp
//	          ▲
//	          └── identical strong dynamics for D⁰ and D̄⁰
//
// Plotting, data files and CLI glue live outside this module; the
// library exposes structured numeric results and nothing else.
//
//	go get github.com/katalvlaran/charmcp
package charmcp
