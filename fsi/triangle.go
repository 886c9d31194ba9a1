package fsi

import (
	"fmt"
	"math"

	"github.com/katalvlaran/charmcp/amplitude"
	"github.com/katalvlaran/charmcp/weak"
)

// Isospin selects one component of a weak.Amplitudes set; it names
// which bare amplitude feeds an intermediate state and which physical
// amplitude receives its rescattering contribution.
type Isospin int

const (
	PiPiI0 Isospin = iota // ππ, I=0
	PiPiI2                // ππ, I=2
	KKI0                  // KK, I=0
	KKI1                  // KK, I=1
)

func (i Isospin) valid() bool { return i >= PiPiI0 && i <= KKI1 }

func (i Isospin) String() string {
	switch i {
	case PiPiI0:
		return "PiPiI0"
	case PiPiI2:
		return "PiPiI2"
	case KKI0:
		return "KKI0"
	case KKI1:
		return "KKI1"
	default:
		return fmt.Sprintf("Isospin(%d)", int(i))
	}
}

func component(a weak.Amplitudes, i Isospin) amplitude.Amplitude {
	switch i {
	case PiPiI0:
		return a.PiPiI0
	case PiPiI2:
		return a.PiPiI2
	case KKI0:
		return a.KKI0
	default:
		return a.KKI1
	}
}

func addComponent(a *weak.Amplitudes, i Isospin, v amplitude.Amplitude) {
	switch i {
	case PiPiI0:
		a.PiPiI0 = a.PiPiI0.Add(v)
	case PiPiI2:
		a.PiPiI2 = a.PiPiI2.Add(v)
	case KKI0:
		a.KKI0 = a.KKI0.Add(v)
	case KKI1:
		a.KKI1 = a.KKI1.Add(v)
	}
}

// Coupling is a strong (CP-conserving) vertex factor: non-negative
// magnitude and a strong phase.
type Coupling struct {
	Magnitude float64
	Phase     float64
}

func (c Coupling) validate(name string) error {
	if c.Magnitude < 0 || math.IsNaN(c.Magnitude) || math.IsInf(c.Magnitude, 0) {
		return fmt.Errorf("%w: %s magnitude=%g must be ≥ 0 and finite", ErrInvalidModelParameters, name, c.Magnitude)
	}
	if math.IsNaN(c.Phase) || math.IsInf(c.Phase, 0) {
		return fmt.Errorf("%w: %s phase must be finite", ErrInvalidModelParameters, name)
	}
	return nil
}

func (c Coupling) amplitude() amplitude.Amplitude {
	return amplitude.FromPolar(c.Magnitude, c.Phase)
}

// IntermediateState describes one term of the diagrammatic sum: the
// bare Source amplitude produces the (M1, M2) two-body state with the
// Production coupling, the pair propagates through the loop, and the
// Rescattering coupling feeds the Target amplitude.
type IntermediateState struct {
	Label        string
	M1, M2       float64 // intermediate pair masses, > 0
	Source       Isospin // bare amplitude entering the loop
	Target       Isospin // physical amplitude receiving the term
	Production   Coupling
	Rescattering Coupling
}

// TriangleParams configures the triangle-rescattering model.
type TriangleParams struct {
	// MD is the decaying D⁰ mass; the loop factors are evaluated at
	// s = MD².
	MD float64

	// States lists the intermediate two-body states summed over.
	// An empty list is the no-FSI limit.
	States []IntermediateState

	// Cutoff, when positive, selects the sharp-cutoff dispersive loop
	// evaluation (see LoopCutoff); zero selects the closed form.
	Cutoff float64
}

// DefaultTriangleParams returns a configuration with the D⁰ mass set
// and no intermediate states; callers append States for the channels
// they model.
func DefaultTriangleParams() TriangleParams {
	return TriangleParams{MD: 1864.84}
}

func (p TriangleParams) validate() error {
	if !(p.MD > 0) || math.IsInf(p.MD, 0) {
		return fmt.Errorf("%w: MD=%g must be positive and finite", ErrInvalidModelParameters, p.MD)
	}
	if p.Cutoff < 0 || math.IsNaN(p.Cutoff) || math.IsInf(p.Cutoff, 0) {
		return fmt.Errorf("%w: Cutoff=%g must be ≥ 0 and finite", ErrInvalidModelParameters, p.Cutoff)
	}
	for i, st := range p.States {
		if !(st.M1 > 0) || !(st.M2 > 0) {
			return fmt.Errorf("%w: state %d (%s): masses (%g, %g) must be positive",
				ErrInvalidModelParameters, i, st.Label, st.M1, st.M2)
		}
		if !st.Source.valid() || !st.Target.valid() {
			return fmt.Errorf("%w: state %d (%s): unknown isospin selector",
				ErrInvalidModelParameters, i, st.Label)
		}
		if err := st.Production.validate(fmt.Sprintf("state %d (%s) production", i, st.Label)); err != nil {
			return err
		}
		if err := st.Rescattering.validate(fmt.Sprintf("state %d (%s) rescattering", i, st.Label)); err != nil {
			return err
		}
	}
	return nil
}

// triangleTerm is one precomputed term of the sum: factor already
// includes production coupling × loop × rescattering coupling.
type triangleTerm struct {
	source, target Isospin
	factor         amplitude.Amplitude
}

// TriangleModel is the triangle-rescattering model. All loop factors
// are evaluated once at construction from strong-dynamics inputs only,
// so Apply performs the identical linear correction on D⁰ and D̄⁰
// amplitude sets; the flavors can differ only through the weak
// amplitudes fed in.
type TriangleModel struct {
	terms []triangleTerm
}

// NewTriangleModel validates the parameters and evaluates every loop
// factor at s = MD². Kinematic and convergence failures surface here,
// before any amplitude is touched.
func NewTriangleModel(p TriangleParams) (*TriangleModel, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	s := p.MD * p.MD
	terms := make([]triangleTerm, 0, len(p.States))
	for i, st := range p.States {
		var (
			loop complex128
			err  error
		)
		if p.Cutoff > 0 {
			loop, err = LoopCutoff(s, st.M1, st.M2, p.Cutoff)
		} else {
			loop, err = Loop(s, st.M1, st.M2)
		}
		if err != nil {
			return nil, fmt.Errorf("state %d (%s): %w", i, st.Label, err)
		}
		factor := st.Production.amplitude().
			Mul(amplitude.Amplitude(loop)).
			Mul(st.Rescattering.amplitude())
		terms = append(terms, triangleTerm{source: st.Source, target: st.Target, factor: factor})
	}

	return &TriangleModel{terms: terms}, nil
}

// Apply computes physical = bare + Σ_i factor_i · bare[source_i] on
// the target components. With no intermediate states the bare
// amplitudes come back exactly.
func (m *TriangleModel) Apply(bare weak.Amplitudes) (weak.Amplitudes, error) {
	out := bare
	for _, t := range m.terms {
		addComponent(&out, t.target, component(bare, t.source).Mul(t.factor))
	}
	return out, nil
}
