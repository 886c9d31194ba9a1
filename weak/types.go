package weak

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/charmcp/amplitude"
	"github.com/katalvlaran/charmcp/ckm"
)

// ErrInvalidConfiguration is returned when a required coupling is
// absent, a magnitude is negative, or a physical constant is outside
// its domain.
var ErrInvalidConfiguration = errors.New("weak: invalid configuration")

// fkOverFpi is the SU(3)-breaking ratio f_K/f_π used to derive the pion
// decay constant from f_K.
const fkOverFpi = 1.1934

// Constants collects the short-distance inputs of the calculation.
// All dimensionful quantities are in MeV (G_F in MeV⁻²). A Constants
// value is read-only after construction; Build never mutates it.
type Constants struct {
	// Wilson coefficients at 2 GeV.
	C1, C2, C3, C4, C5, C6 float64

	// Quark masses at 2 GeV; MLight is (m_u+m_d)/2.
	MU, MDown, MS, MC, MLight float64

	// Meson masses: D⁰, the D* and D*_s vector poles, π and K.
	MD0, MDStar, MDsStar, MPi, MK float64

	// Fermi constant and decay constants.
	GF, FK, FD float64

	// Chiral low-energy constants: L5 and the combination 2·L8+L5.
	L5, TwoL8PlusL5 float64

	// D→P form factors at q²=0.
	FDPi0, FDK0 float64

	// CKM combinations λ_q = V*_cq·V_uq.
	CKM ckm.Couplings
}

// DefaultConstants returns the central values of every short-distance
// input (Wilson coefficients and quark masses at 2 GeV, PDG meson
// masses and decay constants, and the λ_q central values).
func DefaultConstants() Constants {
	return Constants{
		C1: 1.18, C2: -0.32, C3: 0.011, C4: -0.031, C5: 0.0068, C6: -0.032,

		MU: 2.14, MDown: 4.7, MS: 93.46, MC: 1097, MLight: 3.427,

		MD0: 1864.84, MDStar: 2343, MDsStar: 2317.8, MPi: 139.57, MK: 496,

		GF: 1.1663788e-11, FK: 155.7, FD: 212.0,

		L5: 1.2e-3, TwoL8PlusL5: -0.15e-3,

		FDPi0: 0.612, FDK0: 0.7385,

		CKM: ckm.FromLambdas(
			amplitude.New(-0.22, 1.3e-4),
			amplitude.New(0.22, 6.9e-6),
			amplitude.New(6.1e-5, -1.4e-4),
		),
	}
}

func (c Constants) validate() error {
	positives := map[string]float64{
		"MU": c.MU, "MDown": c.MDown, "MS": c.MS, "MC": c.MC, "MLight": c.MLight,
		"MD0": c.MD0, "MDStar": c.MDStar, "MDsStar": c.MDsStar, "MPi": c.MPi, "MK": c.MK,
		"GF": c.GF, "FK": c.FK, "FD": c.FD,
		"FDPi0": c.FDPi0, "FDK0": c.FDK0,
	}
	for name, v := range positives {
		if !(v > 0) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s=%g must be positive and finite", ErrInvalidConfiguration, name, v)
		}
	}
	for name, v := range map[string]float64{
		"C1": c.C1, "C2": c.C2, "C3": c.C3, "C4": c.C4, "C5": c.C5, "C6": c.C6,
		"L5": c.L5, "TwoL8PlusL5": c.TwoL8PlusL5,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s must be finite", ErrInvalidConfiguration, name)
		}
	}
	if c.CKM.IsZero() {
		return fmt.Errorf("%w: CKM couplings are absent", ErrInvalidConfiguration)
	}
	if c.MPi >= c.MDStar || c.MK >= c.MDsStar || c.MPi >= c.MD0 || c.MK >= c.MD0 {
		return fmt.Errorf("%w: light-meson mass above its pole mass", ErrInvalidConfiguration)
	}
	return nil
}

// Amplitudes holds the bare isospin amplitudes for one flavor (D⁰ or
// D̄⁰). The ππ final state decomposes into I=0 and I=2, the KK final
// state into I=0 and I=1; KKI0 = −KKI1 for the short-distance builder.
type Amplitudes struct {
	PiPiI0 amplitude.Amplitude
	PiPiI2 amplitude.Amplitude
	KKI0   amplitude.Amplitude
	KKI1   amplitude.Amplitude
}

// IsFinite reports whether every component is finite.
func (a Amplitudes) IsFinite() bool {
	return a.PiPiI0.IsFinite() && a.PiPiI2.IsFinite() &&
		a.KKI0.IsFinite() && a.KKI1.IsFinite()
}

// Pair bundles the D⁰ amplitudes with their CP conjugates.
type Pair struct {
	D    Amplitudes // D⁰ decay amplitudes
	Dbar Amplitudes // D̄⁰ decay amplitudes (CKM conjugated, same strong inputs)
}

// Topology is a single-topology coupling: non-negative magnitude and a
// CP-conserving strong phase.
type Topology struct {
	Magnitude float64
	Phase     float64
}

func (t Topology) amplitude() amplitude.Amplitude {
	return amplitude.FromPolar(t.Magnitude, t.Phase)
}

// ChannelTopologies carries the tree and penguin couplings of one
// final state.
type ChannelTopologies struct {
	Tree    Topology
	Penguin Topology
}

// Topologies is the reduced input set: per-channel tree and penguin
// couplings plus the CKM weak factors that multiply them.
type Topologies struct {
	CKM  ckm.Couplings
	PiPi ChannelTopologies
	KK   ChannelTopologies
}

func (t Topologies) validate() error {
	if t.CKM.IsZero() {
		return fmt.Errorf("%w: CKM couplings are absent", ErrInvalidConfiguration)
	}
	for name, top := range map[string]Topology{
		"PiPi.Tree": t.PiPi.Tree, "PiPi.Penguin": t.PiPi.Penguin,
		"KK.Tree": t.KK.Tree, "KK.Penguin": t.KK.Penguin,
	} {
		if top.Magnitude < 0 || math.IsNaN(top.Magnitude) || math.IsInf(top.Magnitude, 0) {
			return fmt.Errorf("%w: %s magnitude=%g must be ≥ 0 and finite", ErrInvalidConfiguration, name, top.Magnitude)
		}
		if math.IsNaN(top.Phase) || math.IsInf(top.Phase, 0) {
			return fmt.Errorf("%w: %s phase must be finite", ErrInvalidConfiguration, name)
		}
	}
	return nil
}
