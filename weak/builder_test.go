package weak_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/charmcp/amplitude"
	"github.com/katalvlaran/charmcp/ckm"
	"github.com/katalvlaran/charmcp/weak"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBuild_CentralValues pins the bare isospin amplitudes at the
// default short-distance inputs.
func TestBuild_CentralValues(t *testing.T) {
	pair, err := weak.Build(weak.DefaultConstants())
	require.NoError(t, err)

	assert.InEpsilon(t, 1.1004135207075406e-3, pair.D.PiPiI0.Re(), 1e-12, "Re t0_ππ")
	assert.InEpsilon(t, -1.103703108693728e-6, pair.D.PiPiI0.Im(), 1e-12, "Im t0_ππ")
	assert.InEpsilon(t, 4.992942545499314e-4, pair.D.PiPiI2.Re(), 1e-12, "Re t2_ππ")
	assert.InEpsilon(t, -2.950375140522322e-7, pair.D.PiPiI2.Im(), 1e-12, "Im t2_ππ")
	assert.InEpsilon(t, 8.336844013678401e-4, pair.D.KKI1.Re(), 1e-12, "Re t1_KK")
	assert.InEpsilon(t, 2.1992550886251522e-7, pair.D.KKI1.Im(), 1e-12, "Im t1_KK")
	assert.Equal(t, pair.D.KKI1.Scale(-1), pair.D.KKI0, "t0_KK = −t1_KK")
}

// TestBuild_ConjugateFlipsWeakPhasesOnly verifies the D̄⁰ amplitudes are
// the exact complex conjugates of the D⁰ ones: the bare amplitudes
// carry only weak phases, so conjugating the CKM inputs conjugates the
// whole amplitude.
func TestBuild_ConjugateFlipsWeakPhasesOnly(t *testing.T) {
	pair, err := weak.Build(weak.DefaultConstants())
	require.NoError(t, err)

	assert.Equal(t, pair.D.PiPiI0.Conj(), pair.Dbar.PiPiI0)
	assert.Equal(t, pair.D.PiPiI2.Conj(), pair.Dbar.PiPiI2)
	assert.Equal(t, pair.D.KKI0.Conj(), pair.Dbar.KKI0)
	assert.Equal(t, pair.D.KKI1.Conj(), pair.Dbar.KKI1)
}

// TestBuild_InvalidConstants exercises the InvalidConfiguration surface.
func TestBuild_InvalidConstants(t *testing.T) {
	base := weak.DefaultConstants()

	noCKM := base
	noCKM.CKM = ckm.Couplings{}

	negMass := base
	negMass.MPi = -1

	zeroGF := base
	zeroGF.GF = 0

	nanWilson := base
	nanWilson.C4 = math.NaN()

	poleBelow := base
	poleBelow.MDStar = 100 // below m_π: pole correction undefined

	for name, c := range map[string]weak.Constants{
		"absent CKM":      noCKM,
		"negative mass":   negMass,
		"zero G_F":        zeroGF,
		"NaN Wilson":      nanWilson,
		"pole below mass": poleBelow,
	} {
		_, err := weak.Build(c)
		assert.ErrorIs(t, err, weak.ErrInvalidConfiguration, name)
	}
}

// TestBuildTopologies_TreeOnly verifies the reduced builder: with no
// penguin the I=0 and I=2 ππ amplitudes share the tree weak factor.
func TestBuildTopologies_TreeOnly(t *testing.T) {
	top := weak.Topologies{
		CKM: ckm.FromLambdas(
			amplitude.New(-0.22, 1.3e-4),
			amplitude.New(0.22, 6.9e-6),
			amplitude.New(6.1e-5, -1.4e-4),
		),
		PiPi: weak.ChannelTopologies{Tree: weak.Topology{Magnitude: 1.5, Phase: 0.3}},
		KK:   weak.ChannelTopologies{Tree: weak.Topology{Magnitude: 0.9, Phase: -0.2}},
	}

	pair, err := weak.BuildTopologies(top)
	require.NoError(t, err)

	assert.Equal(t, pair.D.PiPiI0, pair.D.PiPiI2, "tree-only: I=0 and I=2 coincide")
	assert.Equal(t, pair.D.KKI1.Scale(-1), pair.D.KKI0, "t0_KK = −t1_KK")
	assert.InDelta(t, top.CKM.LambdaD.Abs2()*1.5*1.5, pair.D.PiPiI2.Abs2(), 1e-12, "|λ_d·T|²")
}

// TestBuildTopologies_Validation rejects negative magnitudes and
// absent couplings.
func TestBuildTopologies_Validation(t *testing.T) {
	valid := weak.Topologies{
		CKM:  ckm.FromLambdas(amplitude.New(-0.22, 0), amplitude.New(0.22, 0), amplitude.New(6e-5, -1e-4)),
		PiPi: weak.ChannelTopologies{Tree: weak.Topology{Magnitude: 1}},
		KK:   weak.ChannelTopologies{Tree: weak.Topology{Magnitude: 1}},
	}

	negative := valid
	negative.PiPi.Penguin = weak.Topology{Magnitude: -0.1}
	_, err := weak.BuildTopologies(negative)
	assert.ErrorIs(t, err, weak.ErrInvalidConfiguration, "negative magnitude")

	missing := valid
	missing.CKM = ckm.Couplings{}
	_, err = weak.BuildTopologies(missing)
	assert.ErrorIs(t, err, weak.ErrInvalidConfiguration, "absent CKM")

	nanPhase := valid
	nanPhase.KK.Tree.Phase = math.NaN()
	_, err = weak.BuildTopologies(nanPhase)
	assert.ErrorIs(t, err, weak.ErrInvalidConfiguration, "NaN phase")
}
