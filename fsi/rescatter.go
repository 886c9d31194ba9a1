package fsi

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/charmcp/amplitude"
	"github.com/katalvlaran/charmcp/weak"
)

// ChannelMixing is the reduced parameterization of one row of the
// coupled-channel Omega matrix:
//
//	row = η · ( cosθ·e^{iδ_el} , sinθ·e^{iδ_tr} )
//
// with the diagonal (elastic) entry on the channel's own column. The
// row modulus is η, so η ≤ 1 bounds the matrix to redistributing
// strength between channels — never amplifying it.
type ChannelMixing struct {
	Eta             float64 // inelasticity, in [0, 1]
	Theta           float64 // mixing angle, in [0, π/2]
	DeltaElastic    float64 // strong phase of the elastic entry
	DeltaTransition float64 // strong phase of the cross-channel entry
}

// MixingFromModuli converts published entry moduli (elastic,
// transition) and phases into the reduced form, rejecting rows whose
// modulus would exceed unity.
func MixingFromModuli(elastic, transition, deltaElastic, deltaTransition float64) (ChannelMixing, error) {
	if elastic < 0 || transition < 0 {
		return ChannelMixing{}, fmt.Errorf("%w: entry moduli (%g, %g) must be non-negative",
			ErrInvalidModelParameters, elastic, transition)
	}
	eta := math.Hypot(elastic, transition)
	if eta > 1 {
		return ChannelMixing{}, fmt.Errorf("%w: row modulus %g exceeds unity (amplification)",
			ErrInvalidModelParameters, eta)
	}
	return ChannelMixing{
		Eta:             eta,
		Theta:           math.Atan2(transition, elastic),
		DeltaElastic:    deltaElastic,
		DeltaTransition: deltaTransition,
	}, nil
}

func (m ChannelMixing) validate(row string) error {
	if !(m.Eta >= 0 && m.Eta <= 1) {
		return fmt.Errorf("%w: %s row Eta=%g must lie in [0,1]", ErrInvalidModelParameters, row, m.Eta)
	}
	if !(m.Theta >= 0 && m.Theta <= math.Pi/2) {
		return fmt.Errorf("%w: %s row Theta=%g must lie in [0,π/2]", ErrInvalidModelParameters, row, m.Theta)
	}
	for _, d := range []float64{m.DeltaElastic, m.DeltaTransition} {
		if math.IsNaN(d) || math.IsInf(d, 0) {
			return fmt.Errorf("%w: %s row strong phase must be finite", ErrInvalidModelParameters, row)
		}
	}
	return nil
}

// entries returns (elastic, transition) complex matrix entries.
func (m ChannelMixing) entries() (complex128, complex128) {
	el := complex128(amplitude.FromPolar(m.Eta*math.Cos(m.Theta), m.DeltaElastic))
	tr := complex128(amplitude.FromPolar(m.Eta*math.Sin(m.Theta), m.DeltaTransition))
	return el, tr
}

// RescatterParams configures the coupled-channel model: one mixing row
// per physical channel on the I=0 subspace, and elastic factors
// ω·e^{iδ} for the exotic isospin amplitudes (ππ I=2, KK I=1) that do
// not communicate with another channel.
type RescatterParams struct {
	PiPi ChannelMixing // row feeding the physical ππ I=0 amplitude
	KK   ChannelMixing // row feeding the physical KK I=0 amplitude

	OmegaI2 float64 // ππ I=2 elastic modulus, in [0, 1]
	DeltaI2 float64 // ππ I=2 strong phase
	OmegaI1 float64 // KK I=1 elastic modulus, in [0, 1]
	DeltaI1 float64 // KK I=1 strong phase
}

// IdentityRescatterParams returns the no-FSI limit: unit inelasticity,
// no mixing, all strong phases zero. Applying the resulting model
// reproduces the bare amplitudes exactly.
func IdentityRescatterParams() RescatterParams {
	return RescatterParams{
		PiPi:    ChannelMixing{Eta: 1},
		KK:      ChannelMixing{Eta: 1},
		OmegaI2: 1,
		OmegaI1: 1,
	}
}

func (p RescatterParams) validate() error {
	if err := p.PiPi.validate("PiPi"); err != nil {
		return err
	}
	if err := p.KK.validate("KK"); err != nil {
		return err
	}
	for name, w := range map[string]float64{"OmegaI2": p.OmegaI2, "OmegaI1": p.OmegaI1} {
		if !(w >= 0 && w <= 1) {
			return fmt.Errorf("%w: %s=%g must lie in [0,1]", ErrInvalidModelParameters, name, w)
		}
	}
	for name, d := range map[string]float64{"DeltaI2": p.DeltaI2, "DeltaI1": p.DeltaI1} {
		if math.IsNaN(d) || math.IsInf(d, 0) {
			return fmt.Errorf("%w: %s must be finite", ErrInvalidModelParameters, name)
		}
	}
	return nil
}

// RescatterModel is the coupled-channel rescattering-matrix model.
// One Omega matrix is built at construction and shared by every Apply
// call; there is deliberately no way to install per-flavor matrices.
type RescatterModel struct {
	omega    *mat.CDense // 2×2, rows: (ππ I=0, KK I=0)
	exoticI2 complex128
	exoticI1 complex128
}

// NewRescatterModel validates the reduced parameterization and builds
// the shared Omega matrix.
func NewRescatterModel(p RescatterParams) (*RescatterModel, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	piEl, piTr := p.PiPi.entries()
	kkEl, kkTr := p.KK.entries()

	// Row order matches the (ππ, KK) amplitude vector: the elastic
	// entry of the KK row sits on the second column.
	omega := mat.NewCDense(2, 2, []complex128{
		piEl, piTr,
		kkTr, kkEl,
	})

	return &RescatterModel{
		omega:    omega,
		exoticI2: complex128(amplitude.FromPolar(p.OmegaI2, p.DeltaI2)),
		exoticI1: complex128(amplitude.FromPolar(p.OmegaI1, p.DeltaI1)),
	}, nil
}

// Apply computes physical = Omega × bare on the coupled I=0 subspace
// and multiplies the exotic amplitudes by their elastic factors. The
// transformation is linear and identical for every call, so weak
// phases carried by the input survive untouched.
func (m *RescatterModel) Apply(bare weak.Amplitudes) (weak.Amplitudes, error) {
	in0 := complex128(bare.PiPiI0)
	in1 := complex128(bare.KKI0)
	out0 := m.omega.At(0, 0)*in0 + m.omega.At(0, 1)*in1
	out1 := m.omega.At(1, 0)*in0 + m.omega.At(1, 1)*in1

	return weak.Amplitudes{
		PiPiI0: amplitude.Amplitude(out0),
		PiPiI2: bare.PiPiI2.Mul(amplitude.Amplitude(m.exoticI2)),
		KKI0:   amplitude.Amplitude(out1),
		KKI1:   bare.KKI1.Mul(amplitude.Amplitude(m.exoticI1)),
	}, nil
}
